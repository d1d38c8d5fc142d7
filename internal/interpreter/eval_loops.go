/*
File    : golox/internal/interpreter/eval_loops.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package interpreter

import "github.com/akashmaji946/golox/internal/ast"

// VisitWhileStmt drives both literal while loops and desugared for
// loops. Increment is nil for a real while loop; for a for loop it is
// the original increment clause, run after the body on every iteration
// (including one ended by continue) and before the next condition test.
func (interp *Interpreter) VisitWhileStmt(s *ast.WhileStmt) (Value, error) {
	for {
		cond, err := interp.evaluate(s.Condition)
		if err != nil {
			return nil, err
		}
		if !isTruthy(cond) {
			return nil, nil
		}

		broke, err := interp.runLoopBody(s.Body)
		if err != nil {
			return nil, err
		}
		if broke {
			return nil, nil
		}

		if s.Increment != nil {
			if _, err := interp.evaluate(s.Increment); err != nil {
				return nil, err
			}
		}
	}
}

// runLoopBody executes one loop body, catching break and continue so
// they never escape past their enclosing loop. A caught break reports
// broke=true; a caught continue simply lets the loop proceed to its
// increment and next condition test, the same as falling off the end
// of the body normally would.
func (interp *Interpreter) runLoopBody(body ast.Stmt) (broke bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			switch r.(type) {
			case breakSignal:
				broke = true
			case continueSignal:
				// fall through to the increment/re-test, same as normal completion
			default:
				panic(r)
			}
		}
	}()
	return false, interp.execute(body)
}

func (interp *Interpreter) VisitBreakStmt(s *ast.BreakStmt) (Value, error) {
	panic(breakSignal{})
}

func (interp *Interpreter) VisitContinueStmt(s *ast.ContinueStmt) (Value, error) {
	panic(continueSignal{})
}
