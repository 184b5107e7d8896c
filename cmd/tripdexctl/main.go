// Command tripdexctl runs tripdex flight and hotel searches offline against a
// catalog and prints the results as JSON.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
