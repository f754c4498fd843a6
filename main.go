package main

import "github.com/simplefind/simplefind/cmd/simplefind"

func main() { simplefind.Execute() }
