// Package main implements the extract CLI: run the task extractor over text
// from arguments or stdin and print the candidates as JSON.
package main

import (
	"os"
)

var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
