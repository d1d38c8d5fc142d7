/*
File    : golox/cmd/lox/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Command lox is the Lox interpreter's command-line driver: REPL by
// default, file execution given a path, patterned on go-mix's
// main/main.go (same flag handling and colored diagnostics, rebuilt
// around the Lox pipeline and its three-way exit code contract instead
// of go-mix's single generic error path).
package main

import (
	"fmt"
	"os"

	"github.com/akashmaji946/golox/internal/ast"
	"github.com/akashmaji946/golox/internal/diagnostics"
	"github.com/akashmaji946/golox/internal/interpreter"
	"github.com/akashmaji946/golox/internal/lexer"
	"github.com/akashmaji946/golox/internal/parser"
	"github.com/akashmaji946/golox/internal/replloop"
	"github.com/akashmaji946/golox/internal/resolver"
	"github.com/fatih/color"
)

const (
	version = "v0.1.0"
	prompt  = "lox >>> "
	banner  = `  __ __    ______  __ __
 / // /   / __/ /_/ // /
/ _  /   / _// __/_  _/
/_//_/   /___/\__/ /_/`
	line = "----------------------------------------------------------------"
)

var redColor = color.New(color.FgRed)

func main() {
	switch len(os.Args) {
	case 1:
		repl := replloop.New(banner, version, prompt, line, os.Stdout)
		if err := repl.Start(os.Stdout); err != nil {
			redColor.Fprintf(os.Stderr, "[REPL ERROR] %v\n", err)
			os.Exit(1)
		}
	case 2:
		switch os.Args[1] {
		case "--help", "-h":
			printHelp()
		case "--version", "-v":
			printVersion()
		case "--bench":
			fmt.Fprintln(os.Stderr, "lox: --bench is not implemented")
			os.Exit(1)
		default:
			os.Exit(runFile(os.Args[1]))
		}
	default:
		fmt.Fprintln(os.Stderr, "usage: lox [path]")
		os.Exit(64)
	}
}

func printHelp() {
	fmt.Println("lox - a tree-walking interpreter for the Lox language")
	fmt.Println()
	fmt.Println("usage:")
	fmt.Println("  lox                start the REPL")
	fmt.Println("  lox <path>         execute a Lox source file")
	fmt.Println("  lox --bench        run the benchmark suite (not implemented)")
	fmt.Println("  lox --help         show this message")
	fmt.Println("  lox --version      show version information")
}

func printVersion() {
	fmt.Printf("lox %s\n", version)
}

// runFile compiles and executes path, returning the process exit code
// per the CLI's contract: 0 on success, 65 on a compile-time error, 70
// on a runtime error, and 64 if the file cannot be read.
func runFile(path string) int {
	src, err := os.ReadFile(path)
	if err != nil {
		redColor.Fprintf(os.Stderr, "lox: could not read '%s': %v\n", path, err)
		return 64
	}

	sink := diagnostics.NewSink()

	lx := lexer.New(string(src), sink)
	tokens := lx.ScanTokens()

	p := parser.New(tokens, sink, &ast.IDGen{})
	stmts := p.Parse()

	if sink.HasErrors() {
		reportDiagnostics(sink)
		return 65
	}

	res := resolver.New(sink)
	res.Resolve(stmts)
	if sink.HasErrors() {
		reportDiagnostics(sink)
		return 65
	}

	interp := interpreter.New(os.Stdout, res.Resolutions)
	if rerr := interp.Interpret(stmts); rerr != nil {
		redColor.Fprintf(os.Stderr, "%s\n", rerr.Error())
		return 70
	}
	return 0
}

func reportDiagnostics(sink *diagnostics.Sink) {
	for _, d := range sink.Diagnostics() {
		redColor.Fprintln(os.Stderr, d.String())
	}
}
