/*
File    : golox/internal/diagnostics/diagnostics.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package diagnostics is the shared error-reporting sink used by every
// compile-time phase (scanner/lexer, parser, resolver) and the carrier
// for runtime errors, with one stable printed shape for each.
package diagnostics

import (
	"fmt"

	"github.com/akashmaji946/golox/internal/token"
)

// Diagnostic is one compile-time error: a LEX_ERROR, PARSE_ERROR, or
// RESOLVE_ERROR. All three share the same printed shape:
//
//	[line N] Error[ at 'LEXEME']: MESSAGE
type Diagnostic struct {
	Line    int
	Where   string // "" (no location detail), " at end", or " at 'lexeme'"
	Message string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("[line %d] Error%s: %s", d.Line, d.Where, d.Message)
}

// Sink collects diagnostics across a single compile (scan+parse+resolve).
// Compile-time errors accumulate here; presence of any prevents execution.
type Sink struct {
	diags []Diagnostic
}

// NewSink returns an empty diagnostic sink.
func NewSink() *Sink {
	return &Sink{}
}

// LexError records a LEX_ERROR at line (unterminated string, unknown
// character).
func (s *Sink) LexError(line int, message string) {
	s.diags = append(s.diags, Diagnostic{Line: line, Message: message})
}

// ParseError records a PARSE_ERROR positioned at tok (token.EOF renders
// as "at end", per the book's convention).
func (s *Sink) ParseError(tok token.Token, message string) {
	where := fmt.Sprintf(" at '%s'", tok.Lexeme)
	if tok.Type == token.EOF {
		where = " at end"
	}
	s.diags = append(s.diags, Diagnostic{Line: tok.Line, Where: where, Message: message})
}

// ResolveError records a RESOLVE_ERROR positioned at tok.
func (s *Sink) ResolveError(tok token.Token, message string) {
	s.ParseError(tok, message)
}

// HasErrors reports whether any diagnostic has been recorded.
func (s *Sink) HasErrors() bool {
	return len(s.diags) > 0
}

// Diagnostics returns every diagnostic recorded so far, in report order.
func (s *Sink) Diagnostics() []Diagnostic {
	return s.diags
}

// Reset clears the sink. The REPL does not call it; it gives each line a
// fresh sink instead.
func (s *Sink) Reset() {
	s.diags = nil
}

// RuntimeError is a RUNTIME_ERROR: a type mismatch, arity mismatch,
// undefined variable/property, non-callable call, non-instance field
// access, or a failed assert_eq. It is distinct from the control-flow
// signals (return/break/continue), which never implement error.
type RuntimeError struct {
	Token   token.Token
	Message string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("%s\n[line %d]", e.Message, e.Token.Line)
}

// NewRuntimeError builds a RuntimeError at tok's line.
func NewRuntimeError(tok token.Token, format string, args ...interface{}) *RuntimeError {
	return &RuntimeError{Token: tok, Message: fmt.Sprintf(format, args...)}
}
