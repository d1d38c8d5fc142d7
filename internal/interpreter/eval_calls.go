/*
File    : golox/internal/interpreter/eval_calls.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package interpreter

import (
	"github.com/akashmaji946/golox/internal/ast"
	"github.com/akashmaji946/golox/internal/diagnostics"
)

// VisitCallExpr evaluates the callee and each argument left-to-right,
// then dispatches to the callee's Call implementation — shared by user
// functions, native functions, bound methods and class constructors,
// since all of them satisfy Callable.
func (interp *Interpreter) VisitCallExpr(e *ast.Call) (Value, error) {
	callee, err := interp.evaluate(e.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]Value, 0, len(e.Arguments))
	for _, argExpr := range e.Arguments {
		arg, err := interp.evaluate(argExpr)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}

	callable, ok := callee.(Callable)
	if !ok {
		return nil, diagnostics.NewRuntimeError(e.Paren, "Can only call functions and classes.")
	}
	if len(args) != callable.Arity() {
		return nil, diagnostics.NewRuntimeError(e.Paren, "Expected %d arguments but got %d.", callable.Arity(), len(args))
	}

	interp.callSite = e.Paren
	return callable.Call(interp, args)
}
