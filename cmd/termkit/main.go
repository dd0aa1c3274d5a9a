// Package main provides the termkit command.
//
// Usage:
//
//	termkit demo [-config file]   Run the interactive demo
//	termkit check-config file     Validate a config file
//	termkit help                  Show help
package main

import (
	"fmt"
	"os"
)

const version = "0.1.0"

const usage = `termkit - terminal view toolkit

Usage:
  termkit <command> [options]

Commands:
  demo          Run the interactive demo (Ctrl+Q quits)
  check-config  Validate a TOML config file and print the effective settings
  version       Print version information
  help          Show this help message

Options (demo):
  -config file  Load App settings from a TOML file
  -debug file   Write the debug log to file

Examples:
  termkit demo
  termkit demo -config termkit.toml
  termkit check-config termkit.toml
`

func main() {
	if len(os.Args) < 2 {
		fmt.Print(usage)
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "demo":
		if err := runDemo(args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "check-config":
		if err := runCheckConfig(args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "version":
		fmt.Printf("termkit version %s\n", version)
	case "help", "-h", "--help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", command)
		fmt.Print(usage)
		os.Exit(1)
	}
}
