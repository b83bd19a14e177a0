// Command carbon-breakeven compares the lifetime carbon footprint of two GPUs
// and reports when replacing the current one pays off.
package main

import (
	"os"
)

func main() {
	if err := run(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	return newRootCmd().Execute()
}
