/*
File    : golox/internal/interpreter/eval_statements.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package interpreter

import (
	"fmt"

	"github.com/akashmaji946/golox/internal/ast"
)

func (interp *Interpreter) VisitExpressionStmt(s *ast.ExpressionStmt) (Value, error) {
	_, err := interp.evaluate(s.Expression)
	return nil, err
}

func (interp *Interpreter) VisitPrintStmt(s *ast.PrintStmt) (Value, error) {
	value, err := interp.evaluate(s.Expression)
	if err != nil {
		return nil, err
	}
	fmt.Fprintln(interp.out, stringify(value))
	return nil, nil
}

func (interp *Interpreter) VisitVarStmt(s *ast.VarStmt) (Value, error) {
	var value Value
	if s.Initializer != nil {
		v, err := interp.evaluate(s.Initializer)
		if err != nil {
			return nil, err
		}
		value = v
	}
	interp.environment.Define(s.Name.Lexeme, value)
	return nil, nil
}

func (interp *Interpreter) VisitBlockStmt(s *ast.BlockStmt) (Value, error) {
	return nil, interp.executeBlock(s.Statements, NewEnvironment(interp.environment))
}

func (interp *Interpreter) VisitIfStmt(s *ast.IfStmt) (Value, error) {
	cond, err := interp.evaluate(s.Condition)
	if err != nil {
		return nil, err
	}
	if isTruthy(cond) {
		return nil, interp.execute(s.ThenBranch)
	}
	if s.ElseBranch != nil {
		return nil, interp.execute(s.ElseBranch)
	}
	return nil, nil
}

func (interp *Interpreter) VisitFunctionStmt(s *ast.FunctionStmt) (Value, error) {
	fn := NewFunction(s, interp.environment, false)
	interp.environment.Define(s.Name.Lexeme, fn)
	return nil, nil
}

func (interp *Interpreter) VisitReturnStmt(s *ast.ReturnStmt) (Value, error) {
	var value Value
	if s.Value != nil {
		v, err := interp.evaluate(s.Value)
		if err != nil {
			return nil, err
		}
		value = v
	}
	panic(returnSignal{value: value})
}
