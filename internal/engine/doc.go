// Package engine contains the core search logic for simplefind. It compiles a
// pattern once, splits each in-memory file into lines, and returns one match
// record per occurrence. This package is internal; external consumers should
// use the stable facade in pkg/core.
package engine
