// Command pagestate renders and demonstrates the page-state container.
package main

import (
	"fmt"
	"os"

	"github.com/go-drift/pagestate/cmd/pagestate/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
