// main is the entry point for the ladderboard CLI.
package main

import (
	"fmt"
	"os"

	"github.com/shriyae/ladderboard/cmd"
	"github.com/shriyae/ladderboard/internal/runstore"
)

func main() {
	err := cmd.Execute()

	// Close run tracking before deciding the exit code so a failed command
	// still flushes its history.
	runstore.CloseRunTracking()

	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
