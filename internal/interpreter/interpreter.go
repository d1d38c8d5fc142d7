/*
File    : golox/internal/interpreter/interpreter.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package interpreter

import (
	"io"
	"time"

	"github.com/akashmaji946/golox/internal/ast"
	"github.com/akashmaji946/golox/internal/diagnostics"
	"github.com/akashmaji946/golox/internal/token"
)

// Interpreter walks a resolved AST, evaluating expressions and
// executing statements against a chain of environments. It implements
// both ast.ExprVisitor and ast.StmtVisitor.
type Interpreter struct {
	globals     *Environment
	environment *Environment
	resolutions map[ast.ExprID]int
	out         io.Writer
	start       time.Time

	// callSite is the closing-paren token of the call currently in
	// progress, set by VisitCallExpr. Native functions have no AST node
	// of their own to blame a RuntimeError on, so they borrow it.
	callSite token.Token
}

// New builds an Interpreter that writes print output to out and
// consults resolutions (the resolver's expr_id→depth side-table) for
// variable/assignment/this/super lookups.
func New(out io.Writer, resolutions map[ast.ExprID]int) *Interpreter {
	globals := NewEnvironment(nil)
	interp := &Interpreter{
		globals:     globals,
		environment: globals,
		resolutions: resolutions,
		out:         out,
		start:       time.Now(),
	}
	registerNatives(globals)
	return interp
}

// Interpret runs a whole program's statements in order, stopping at the
// first RuntimeError (a RuntimeError is the only error Execute-family
// methods ever return to a caller outside this package — return/break/
// continue unwind via panic and are fully caught before they escape).
func (interp *Interpreter) Interpret(stmts []ast.Stmt) *diagnostics.RuntimeError {
	for _, stmt := range stmts {
		if err := interp.execute(stmt); err != nil {
			if rerr, ok := err.(*diagnostics.RuntimeError); ok {
				return rerr
			}
			panic(err) // not a RuntimeError: a bug, since nothing else should surface here
		}
	}
	return nil
}

func (interp *Interpreter) execute(stmt ast.Stmt) error {
	_, err := stmt.Accept(interp)
	return err
}

func (interp *Interpreter) evaluate(expr ast.Expr) (Value, error) {
	return expr.Accept(interp)
}

// executeBlock runs stmts in env, restoring the previous environment
// before returning — including when a panic (a control-flow signal or
// a genuine Go panic) unwinds through it, so the environment stack
// never gets left pointing at a scope whose block has exited.
func (interp *Interpreter) executeBlock(stmts []ast.Stmt, env *Environment) error {
	previous := interp.environment
	interp.environment = env
	defer func() { interp.environment = previous }()

	for _, stmt := range stmts {
		if err := interp.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

// lookUpVariable reads name's value, consulting the resolver's
// resolutions table by id; an absent entry means a global reference.
func (interp *Interpreter) lookUpVariable(name token.Token, id ast.ExprID) (Value, error) {
	if depth, ok := interp.resolutions[id]; ok {
		return interp.environment.GetAt(depth, name.Lexeme), nil
	}
	return interp.globals.Get(name)
}

func checkNumberOperand(operator token.Token, operand Value) (float64, error) {
	if n, ok := operand.(float64); ok {
		return n, nil
	}
	return 0, diagnostics.NewRuntimeError(operator, "Operand must be a number.")
}

func checkNumberOperands(operator token.Token, left, right Value) (float64, float64, error) {
	l, lok := left.(float64)
	r, rok := right.(float64)
	if !lok || !rok {
		return 0, 0, diagnostics.NewRuntimeError(operator, "Operands must be numbers.")
	}
	return l, r, nil
}
