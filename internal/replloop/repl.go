/*
File    : golox/internal/replloop/repl.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package replloop implements the interactive Read-Eval-Print Loop,
// patterned directly on go-mix's repl.Repl: same readline-backed line
// editing and colored output, rebuilt around parsing one line at a time
// into the Lox pipeline instead of go-mix's streaming parser.
package replloop

import (
	"fmt"
	"io"
	"strings"

	"github.com/akashmaji946/golox/internal/ast"
	"github.com/akashmaji946/golox/internal/diagnostics"
	"github.com/akashmaji946/golox/internal/interpreter"
	"github.com/akashmaji946/golox/internal/lexer"
	"github.com/akashmaji946/golox/internal/parser"
	"github.com/akashmaji946/golox/internal/resolver"
	"github.com/chzyer/readline"
	"github.com/fatih/color"
)

var (
	blueColor = color.New(color.FgBlue)
	redColor  = color.New(color.FgRed)
	cyanColor = color.New(color.FgCyan)
)

// Repl is one interactive session. Resolver and interpreter state
// persist across lines (per the REPL's external interface contract); a
// bad line only resets its own diagnostics, leaving prior declarations
// intact — a '.exit' command or EOF ends the session.
type Repl struct {
	Banner  string
	Version string
	Prompt  string
	Line    string

	ids     ast.IDGen
	resolve *resolver.Resolver
	interp  *interpreter.Interpreter
}

// New builds a Repl whose interpreter writes Lox print output to out.
func New(banner, version, prompt, line string, out io.Writer) *Repl {
	resolutions := make(map[ast.ExprID]int)
	return &Repl{
		Banner:  banner,
		Version: version,
		Prompt:  prompt,
		Line:    line,
		resolve: resolver.NewResuming(diagnostics.NewSink(), resolutions),
		interp:  interpreter.New(out, resolutions),
	}
}

func (r *Repl) printBanner(w io.Writer) {
	blueColor.Fprintf(w, "%s\n", r.Line)
	cyanColor.Fprintf(w, "%s\n", r.Banner)
	blueColor.Fprintf(w, "%s\n", r.Line)
	cyanColor.Fprintf(w, "lox %s — type '.exit' to quit\n", r.Version)
	blueColor.Fprintf(w, "%s\n", r.Line)
}

// Start runs the loop until EOF or '.exit', reading edited lines via
// readline (which draws the prompt itself) and writing the banner and
// diagnostics to out.
func (r *Repl) Start(out io.Writer) error {
	r.printBanner(out)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		return err
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			fmt.Fprintln(out, "Good bye!")
			return nil
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ".exit" {
			fmt.Fprintln(out, "Good bye!")
			return nil
		}
		rl.SaveHistory(line)

		r.evalLine(out, line)
	}
}

// evalLine runs one line through the whole pipeline, reporting
// diagnostics from whichever phase rejected it and leaving the
// session's persisted state untouched on failure.
func (r *Repl) evalLine(out io.Writer, line string) {
	sink := diagnostics.NewSink()

	lx := lexer.New(line, sink)
	tokens := lx.ScanTokens()

	p := parser.New(tokens, sink, &r.ids)
	stmts := p.Parse()

	if sink.HasErrors() {
		for _, d := range sink.Diagnostics() {
			redColor.Fprintln(out, d.String())
		}
		return
	}

	r.resolve.SetSink(sink)
	r.resolve.Resolve(stmts)
	if sink.HasErrors() {
		for _, d := range sink.Diagnostics() {
			redColor.Fprintln(out, d.String())
		}
		return
	}

	if rerr := r.interp.Interpret(stmts); rerr != nil {
		redColor.Fprintln(out, rerr.Error())
	}
}
