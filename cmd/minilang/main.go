// Command minilang is the command-line entry point spec.md §1 places out
// of scope as a trivial external collaborator: it reads one source file,
// optionally loads minilang.yml from the current directory, and streams
// any diagnostic to stderr. Grounded on the teacher's cmd/able/main.go
// run(args) int / os.Exit(run(...)) shape, trimmed to spec.md §6's exact
// contract (one positional file argument, no subcommands).
package main

import (
	"fmt"
	"os"

	"minilang/pkg/driver"
	"minilang/pkg/interpreter"
)

const cliToolVersion = "minilang 0.0.0-dev"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) == 0 {
		printUsage()
		return 1
	}

	switch args[0] {
	case "--help", "-h":
		printUsage()
		return 0
	case "--version", "-V":
		fmt.Fprintln(os.Stdout, cliToolVersion)
		return 0
	}

	if len(args) > 1 {
		fmt.Fprintf(os.Stderr, "unexpected arguments: %v\n", args[1:])
		return 1
	}

	return runFile(args[0])
}

func runFile(path string) int {
	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read %s: %v\n", path, err)
		return 1
	}

	// A missing minilang.yml is not fatal: direct file execution falls
	// back to defaults, mirroring the teacher's own manifest-not-found
	// fallback for direct file execution.
	diskOpts, err := driver.LoadOptions("minilang.yml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v; using defaults\n", err)
		diskOpts = driver.DefaultOptions()
	}

	opts := interpreter.DefaultOptions()
	opts.RecursionLimit = diskOpts.RecursionLimit
	opts.AllowBuiltinShadowing = diskOpts.AllowBuiltinShadowing
	opts.Output = os.Stdout

	if err := interpreter.Run(string(source), opts); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  minilang <file.mlang>")
	fmt.Fprintln(os.Stderr, "  minilang --help")
	fmt.Fprintln(os.Stderr, "  minilang --version")
}
