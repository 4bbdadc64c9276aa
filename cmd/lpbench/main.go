// Package main provides the entry point for lpbench.
//
// lpbench drives lpmap through sequential, concurrent and comparative
// workloads and reports throughput and table statistics.
package main

import (
	"fmt"
	"os"

	"github.com/homier/lpmap/internal/command"
)

func main() {
	app := command.App()

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
