// Package main provides the entry point for MemFront.
// MemFront is a cycle-accurate byte-granular load front-end simulator.
//
// For the full CLI, use: go run ./cmd/memfront
package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Println("MemFront - Byte-Granular Load Front-End Simulator")
	fmt.Println("")
	fmt.Println("Usage: memfront <command> [options]")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  read     Issue reads against a memory image")
	fmt.Println("  config   Write the default configuration to a JSON file")
	fmt.Println("")
	fmt.Println("Run 'go run ./cmd/memfront' for the full CLI.")

	if len(os.Args) > 1 {
		fmt.Println("\nNote: You provided arguments. Use 'go run ./cmd/memfront' instead.")
	}
}
