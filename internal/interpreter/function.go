/*
File    : golox/internal/interpreter/function.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package interpreter

import (
	"github.com/akashmaji946/golox/internal/ast"
)

// Function is a user-defined Lox function or method: its declaration
// plus the environment it closed over at definition time.
type Function struct {
	declaration   *ast.FunctionStmt
	closure       *Environment
	isInitializer bool
}

// NewFunction builds a top-level or nested function closing over env.
func NewFunction(decl *ast.FunctionStmt, closure *Environment, isInitializer bool) *Function {
	return &Function{declaration: decl, closure: closure, isInitializer: isInitializer}
}

// Bind produces the bound-method form of a method: a new Function whose
// closure is a fresh frame with "this" defined, built lazily on Get
// rather than up front for every method on every instance.
func (f *Function) Bind(instance *Instance) *Function {
	env := NewEnvironment(f.closure)
	env.Define("this", instance)
	return &Function{declaration: f.declaration, closure: env, isInitializer: f.isInitializer}
}

func (f *Function) Arity() int { return len(f.declaration.Params) }

// Call runs the function body in a fresh frame enclosing its closure,
// catching the typed return signal a Return statement unwinds with.
// Initializers ignore whatever the body returned and hand back the
// bound instance instead.
func (f *Function) Call(interp *Interpreter, args []Value) (result Value, err error) {
	env := NewEnvironment(f.closure)
	for i, param := range f.declaration.Params {
		env.Define(param.Lexeme, args[i])
	}

	defer func() {
		if r := recover(); r != nil {
			ret, ok := r.(returnSignal)
			if !ok {
				panic(r)
			}
			if f.isInitializer {
				result, err = f.closure.GetAt(0, "this"), nil
				return
			}
			result, err = ret.value, nil
		}
	}()

	runErr := interp.executeBlock(f.declaration.Body, env)
	if runErr != nil {
		return nil, runErr
	}
	if f.isInitializer {
		return f.closure.GetAt(0, "this"), nil
	}
	return nil, nil
}

func (f *Function) String() string {
	return "<fn " + f.declaration.Name.Lexeme + ">"
}

// NativeFunction wraps a Go function as a Lox callable, per the
// uniform {arity, name, invoke} contract native functions share.
type NativeFunction struct {
	name string
	ar   int
	fn   func(interp *Interpreter, args []Value) (Value, error)
}

func NewNativeFunction(name string, arity int, fn func(interp *Interpreter, args []Value) (Value, error)) *NativeFunction {
	return &NativeFunction{name: name, ar: arity, fn: fn}
}

func (n *NativeFunction) Arity() int { return n.ar }

func (n *NativeFunction) Call(interp *Interpreter, args []Value) (Value, error) {
	return n.fn(interp, args)
}

func (n *NativeFunction) String() string {
	return "<native fn " + n.name + ">"
}
