// Package main provides the hdate command line tool for Hebrew and
// Gregorian date conversion, holiday lookup and custom day queries.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
