/*
File    : golox/internal/interpreter/eval_classes.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package interpreter

import (
	"github.com/akashmaji946/golox/internal/ast"
	"github.com/akashmaji946/golox/internal/diagnostics"
)

func (interp *Interpreter) VisitGetExpr(e *ast.Get) (Value, error) {
	object, err := interp.evaluate(e.Object)
	if err != nil {
		return nil, err
	}
	instance, ok := object.(*Instance)
	if !ok {
		return nil, diagnostics.NewRuntimeError(e.Name, "Only instances have properties.")
	}
	return instance.getProperty(e.Name)
}

func (interp *Interpreter) VisitSetExpr(e *ast.Set) (Value, error) {
	object, err := interp.evaluate(e.Object)
	if err != nil {
		return nil, err
	}
	instance, ok := object.(*Instance)
	if !ok {
		return nil, diagnostics.NewRuntimeError(e.Name, "Only instances have fields.")
	}
	value, err := interp.evaluate(e.Value)
	if err != nil {
		return nil, err
	}
	instance.setProperty(e.Name, value)
	return value, nil
}

func (interp *Interpreter) VisitThisExpr(e *ast.This) (Value, error) {
	return interp.lookUpVariable(e.Keyword, e.ID)
}

// VisitSuperExpr resolves "super" at its recorded depth to reach the
// superclass, then "this" one frame closer (depth-1, the scope the
// resolver injected between the super-scope and the method body) to
// bind the method to the actual receiving instance.
func (interp *Interpreter) VisitSuperExpr(e *ast.Super) (Value, error) {
	depth := interp.resolutions[e.ID]
	superclass, _ := interp.environment.GetAt(depth, "super").(*Class)
	instance, _ := interp.environment.GetAt(depth-1, "this").(*Instance)

	method, ok := superclass.findMethod(e.Method.Lexeme)
	if !ok {
		return nil, diagnostics.NewRuntimeError(e.Method, "Undefined property '%s'.", e.Method.Lexeme)
	}
	return method.Bind(instance), nil
}

// VisitClassStmt evaluates a class declaration: resolve the optional
// superclass, wrap method closures in a "super"-defining frame when
// there is one, build the method table, and bind the Class value to
// the declaring name.
func (interp *Interpreter) VisitClassStmt(s *ast.ClassStmt) (Value, error) {
	var superclass *Class
	if s.Superclass != nil {
		v, err := interp.lookUpVariable(s.Superclass.Name, s.Superclass.ID)
		if err != nil {
			return nil, err
		}
		sc, ok := v.(*Class)
		if !ok {
			return nil, diagnostics.NewRuntimeError(s.Superclass.Name, "Superclass must be a class.")
		}
		superclass = sc
	}

	interp.environment.Define(s.Name.Lexeme, nil)

	methodEnv := interp.environment
	if superclass != nil {
		methodEnv = NewEnvironment(interp.environment)
		methodEnv.Define("super", superclass)
	}

	methods := make(map[string]*Function, len(s.Methods))
	for _, decl := range s.Methods {
		methods[decl.Name.Lexeme] = NewFunction(decl, methodEnv, decl.Name.Lexeme == "init")
	}

	class := NewClass(s.Name.Lexeme, superclass, methods)
	// The name was just Define'd above in this same frame, so the
	// lookup inside Assign always hits immediately; the error is
	// unreachable.
	_ = interp.environment.Assign(s.Name, class)
	return nil, nil
}
