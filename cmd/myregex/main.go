package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	if err := Execute(); err != nil {
		// verdict errors have already been reported on stdout
		if !errors.Is(err, errRejected) && !errors.Is(err, errSuiteFailed) {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		os.Exit(1)
	}
}
