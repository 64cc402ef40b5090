// diagrail is a terminal diagram editor with pluggable diagram types.
//
// Run: go run ./cmd/diagrail/ --plugin sequence
package main

import (
	"fmt"
	"os"

	"github.com/wesen/diagrail/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
