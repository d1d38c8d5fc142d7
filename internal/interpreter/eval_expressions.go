/*
File    : golox/internal/interpreter/eval_expressions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package interpreter

import (
	"github.com/akashmaji946/golox/internal/ast"
	"github.com/akashmaji946/golox/internal/diagnostics"
	"github.com/akashmaji946/golox/internal/token"
)

func (interp *Interpreter) VisitLiteralExpr(e *ast.Literal) (Value, error) {
	return e.Value, nil
}

func (interp *Interpreter) VisitGroupingExpr(e *ast.Grouping) (Value, error) {
	return interp.evaluate(e.Expression)
}

func (interp *Interpreter) VisitUnaryExpr(e *ast.Unary) (Value, error) {
	right, err := interp.evaluate(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Operator.Type {
	case token.BANG:
		return !isTruthy(right), nil
	case token.MINUS:
		n, err := checkNumberOperand(e.Operator, right)
		if err != nil {
			return nil, err
		}
		return -n, nil
	}
	return nil, diagnostics.NewRuntimeError(e.Operator, "Unknown unary operator '%s'.", e.Operator.Lexeme)
}

func (interp *Interpreter) VisitBinaryExpr(e *ast.Binary) (Value, error) {
	left, err := interp.evaluate(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := interp.evaluate(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Operator.Type {
	case token.PLUS:
		return evalAdd(e.Operator, left, right)
	case token.MINUS:
		l, r, err := checkNumberOperands(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return l - r, nil
	case token.STAR:
		l, r, err := checkNumberOperands(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return l * r, nil
	case token.SLASH:
		l, r, err := checkNumberOperands(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return l / r, nil // division by zero yields IEEE +-Inf or NaN, not an error
	case token.GREATER:
		l, r, err := checkNumberOperands(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return l > r, nil
	case token.GREATER_EQUAL:
		l, r, err := checkNumberOperands(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return l >= r, nil
	case token.LESS:
		l, r, err := checkNumberOperands(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return l < r, nil
	case token.LESS_EQUAL:
		l, r, err := checkNumberOperands(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return l <= r, nil
	case token.EQUAL_EQUAL:
		return isEqual(left, right), nil
	case token.BANG_EQUAL:
		return !isEqual(left, right), nil
	}
	return nil, diagnostics.NewRuntimeError(e.Operator, "Unknown binary operator '%s'.", e.Operator.Lexeme)
}

// evalAdd implements "+" overloading: numeric addition for two
// numbers, concatenation for two strings, and a RuntimeError for any
// other combination.
func evalAdd(operator token.Token, left, right Value) (Value, error) {
	if l, ok := left.(float64); ok {
		if r, ok := right.(float64); ok {
			return l + r, nil
		}
	}
	if l, ok := left.(string); ok {
		if r, ok := right.(string); ok {
			return l + r, nil
		}
	}
	return nil, diagnostics.NewRuntimeError(operator, "Operands must be two numbers or two strings.")
}

func (interp *Interpreter) VisitLogicalExpr(e *ast.Logical) (Value, error) {
	left, err := interp.evaluate(e.Left)
	if err != nil {
		return nil, err
	}

	if e.Operator.Type == token.OR {
		if isTruthy(left) {
			return left, nil
		}
	} else { // AND
		if !isTruthy(left) {
			return left, nil
		}
	}
	return interp.evaluate(e.Right)
}

func (interp *Interpreter) VisitVariableExpr(e *ast.Variable) (Value, error) {
	return interp.lookUpVariable(e.Name, e.ID)
}

func (interp *Interpreter) VisitAssignExpr(e *ast.Assign) (Value, error) {
	value, err := interp.evaluate(e.Value)
	if err != nil {
		return nil, err
	}

	if depth, ok := interp.resolutions[e.ID]; ok {
		interp.environment.AssignAt(depth, e.Name, value)
	} else if err := interp.globals.Assign(e.Name, value); err != nil {
		return nil, err
	}
	return value, nil
}
