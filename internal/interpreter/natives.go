/*
File    : golox/internal/interpreter/natives.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package interpreter

import (
	"time"

	"github.com/akashmaji946/golox/internal/diagnostics"
)

// registerNatives binds the fixed set of native functions into globals.
func registerNatives(globals *Environment) {
	globals.Define("clock", NewNativeFunction("clock", 0, func(interp *Interpreter, args []Value) (Value, error) {
		return time.Since(interp.start).Seconds(), nil
	}))

	globals.Define("str", NewNativeFunction("str", 1, func(interp *Interpreter, args []Value) (Value, error) {
		return stringify(args[0]), nil
	}))

	globals.Define("assert_eq", NewNativeFunction("assert_eq", 2, func(interp *Interpreter, args []Value) (Value, error) {
		actual, expected := args[0], args[1]
		if isEqual(actual, expected) {
			return nil, nil
		}
		return nil, diagnostics.NewRuntimeError(interp.callSite,
			"assert_eq failed: expected %s but got %s.", stringify(expected), stringify(actual))
	}))
}
