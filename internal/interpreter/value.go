/*
File    : golox/internal/interpreter/value.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package interpreter is the tree-walking evaluator: values, the
// environment chain, functions, classes and instances, and the visitor
// that drives execution all live here together. Go has no forward
// declarations, so a Function needs to know about Instance (for method
// binding) and a Class needs to know about Function (for its method
// table) — go-mix dodges the same cycle by merging GoMixObject,
// Builtin/Runtime, and GoMixStruct/GoMixObjectInstance into one "std"
// package; this package plays that role for Lox.
package interpreter

import (
	"math"
	"strconv"
)

// Value is any Lox runtime value. Primitives ride as their natural Go
// type: nil for Lox nil, bool, float64, string. Callable, *Class and
// *Instance cover the rest of the tagged domain from the data model.
type Value = interface{}

// Callable is anything that can appear on the left of a call
// expression: a user function, a native function, or a class (whose
// call constructs an instance).
type Callable interface {
	Arity() int
	Call(interp *Interpreter, args []Value) (Value, error)
	String() string
}

// isTruthy implements Lox truthiness: nil and false are falsey, every
// other value — including 0, "", and NaN — is truthy.
func isTruthy(v Value) bool {
	if v == nil {
		return false
	}
	if b, ok := v.(bool); ok {
		return b
	}
	return true
}

// isEqual implements Lox's same-tag equality. Go's == on float64
// already gives NaN != NaN for free; cross-tag comparisons return false,
// either through the primitive cases' type check on b or through the
// default case, whose == is false for different dynamic types.
func isEqual(a, b Value) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	switch av := a.(type) {
	case float64:
		bv, ok := b.(float64)
		return ok && av == bv
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	default:
		// Class, Instance and Callable values compare by identity: two
		// distinct instances are never equal even with identical fields.
		return a == b
	}
}

// stringify renders v in its canonical printed form, used by both the
// print statement and the str() native.
func stringify(v Value) string {
	switch val := v.(type) {
	case nil:
		return "nil"
	case bool:
		if val {
			return "true"
		}
		return "false"
	case string:
		return val
	case float64:
		return formatNumber(val)
	case interface{ String() string }:
		return val.String()
	default:
		return "nil"
	}
}

// formatNumber drops the decimal point entirely for integer-valued
// numbers, and otherwise prints the shortest decimal that round-trips
// back to the same float64 (the book's convention). No magnitude bound
// applies: a value with no fractional part always prints without a
// decimal point, however large.
func formatNumber(n float64) string {
	switch {
	case math.IsNaN(n):
		return "NaN"
	case math.IsInf(n, 1):
		return "inf"
	case math.IsInf(n, -1):
		return "-inf"
	}
	if n == math.Trunc(n) {
		return strconv.FormatFloat(n, 'f', -1, 64)
	}
	return strconv.FormatFloat(n, 'g', -1, 64)
}
