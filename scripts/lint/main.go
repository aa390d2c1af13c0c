// If you are AI: This script enforces the source conventions: AI headers, function comments
// and the per-file line limit.

package main

import (
	"flag"
	"fmt"
	"os"
)

// main checks all Go files under the given directory and exits non-zero on any violation.
func main() {
	maxLines := flag.Int("max-lines", 300, "Maximum lines per Go file")
	flag.Parse()
	if flag.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s [-max-lines N] <directory>\n", os.Args[0])
		os.Exit(1)
	}

	failures, err := Check(flag.Arg(0), *maxLines)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error walking directory: %v\n", err)
		os.Exit(1)
	}

	if len(failures) > 0 {
		fmt.Fprintf(os.Stderr, "Convention violations:\n")
		for _, f := range failures {
			fmt.Fprintf(os.Stderr, "  %s\n", f)
		}
		os.Exit(1)
	}
}
