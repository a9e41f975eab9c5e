// Package main provides the gourava CLI, a local-first tool for grading
// items against named criteria and organizing them with tags.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitUserError)
	}
}
