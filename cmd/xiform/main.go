// Command xiform shows the demo form in a terminal or renders it to PNG.
package main

import (
	"fmt"
	"os"

	"github.com/xiform/xiform/cmd/xiform/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
