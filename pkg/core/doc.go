// Package core provides a small, stable facade over simplefind's internal
// search engine for external integrations, plus the JSON binding used by
// hosts that exchange plain documents instead of Go values.
//
// Example:
//
//	files := []core.FileInput{{Path: "a.txt", Content: "hello"}}
//	matches, err := core.Search("hel+o", files, true)
//	if err != nil { /* handle */ }
//	_ = core.MarshalMatches(os.Stdout, matches)
package core
