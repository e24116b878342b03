// lmt-calc is a CLI tool for computing Local Mean Time offsets and
// working with place catalogs and alias registries.
package main

import (
	"fmt"
	"os"

	"github.com/solartime/lmt-go/cmd/lmt-calc/commands"
)

const (
	exitSuccess      = 0
	exitCommandError = 1
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(exitCommandError)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	var exitCode int
	switch cmd {
	case "offset":
		exitCode = commands.RunOffset(args, os.Stdout, os.Stderr)
	case "zone":
		exitCode = commands.RunZone(args, os.Stdout, os.Stderr)
	case "catalog":
		exitCode = commands.RunCatalog(args, os.Stdout, os.Stderr)
	case "interactive":
		exitCode = commands.RunInteractive(args, os.Stdout, os.Stderr)
	case "help", "-h", "--help":
		printUsage()
		exitCode = exitSuccess
	case "version", "-v", "--version":
		fmt.Println("lmt-calc version 0.1.0")
		exitCode = exitSuccess
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		printUsage()
		exitCode = exitCommandError
	}

	os.Exit(exitCode)
}

func printUsage() {
	fmt.Println(`lmt-calc - Local Mean Time offset calculator

Usage:
  lmt-calc <command> [options] [args...]

Commands:
  offset       Compute the LMT offset for a longitude
  zone         Show the full zone facts for a longitude
  catalog      List, validate, or register a YAML place catalog
  interactive  Explore zones and aliases in a readline session
  version      Print version information
  help         Show this help

Run 'lmt-calc <command> -h' for command-specific options.`)
}
