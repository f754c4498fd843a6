// Package simplefind provides the command-line interface for the simplefind
// tool. It configures subcommands (search, json, baseline, config), parses
// flags, and executes the selected command.
//
// Typical usage from a main package:
//
//	package main
//	import "github.com/simplefind/simplefind/cmd/simplefind"
//	func main() { simplefind.Execute() }
package simplefind
