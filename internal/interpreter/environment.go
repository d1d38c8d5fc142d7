/*
File    : golox/internal/interpreter/environment.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package interpreter

import (
	"github.com/akashmaji946/golox/internal/diagnostics"
	"github.com/akashmaji946/golox/internal/token"
)

// Environment is one lexical frame: a name→value mapping plus a link to
// its enclosing frame. Go's garbage collector already tolerates the
// reference cycles a method closure can form with its owning class
// (closure → class environment → class → method closure), so frames
// need no back-link weakening or arena scheme; a plain pointer chain is
// enough for a frame to outlive the scope that created it.
type Environment struct {
	values    map[string]Value
	enclosing *Environment
}

// NewEnvironment creates a frame chained to enclosing, or a top-level
// globals frame if enclosing is nil.
func NewEnvironment(enclosing *Environment) *Environment {
	return &Environment{values: make(map[string]Value), enclosing: enclosing}
}

// Define binds name unconditionally in this frame, overwriting any
// existing binding — redeclaring a global is allowed.
func (e *Environment) Define(name string, value Value) {
	e.values[name] = value
}

// Get looks up name starting in this frame and walking outward, used
// only for unresolved (global) references.
func (e *Environment) Get(name token.Token) (Value, error) {
	if v, ok := e.values[name.Lexeme]; ok {
		return v, nil
	}
	if e.enclosing != nil {
		return e.enclosing.Get(name)
	}
	return nil, diagnostics.NewRuntimeError(name, "Undefined variable '%s'.", name.Lexeme)
}

// GetAt looks up name in the frame exactly depth steps outward. A miss
// at that exact frame would mean the resolver computed a wrong depth,
// which is a bug in this implementation rather than a user-facing
// runtime error, so it panics instead of returning one.
func (e *Environment) GetAt(depth int, name string) Value {
	v, ok := e.ancestor(depth).values[name]
	if !ok {
		panic("interpreter: resolver recorded a depth with no binding for " + name)
	}
	return v
}

// Assign rebinds name's value, walking outward; used only for
// unresolved (global) references.
func (e *Environment) Assign(name token.Token, value Value) error {
	if _, ok := e.values[name.Lexeme]; ok {
		e.values[name.Lexeme] = value
		return nil
	}
	if e.enclosing != nil {
		return e.enclosing.Assign(name, value)
	}
	return diagnostics.NewRuntimeError(name, "Undefined variable '%s'.", name.Lexeme)
}

// AssignAt rebinds name in the frame exactly depth steps outward.
func (e *Environment) AssignAt(depth int, name token.Token, value Value) {
	e.ancestor(depth).values[name.Lexeme] = value
}

func (e *Environment) ancestor(depth int) *Environment {
	env := e
	for i := 0; i < depth; i++ {
		env = env.enclosing
	}
	return env
}
