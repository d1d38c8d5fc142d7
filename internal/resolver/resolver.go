/*
File    : golox/internal/resolver/resolver.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package resolver performs the single static pass that assigns each
// variable-referring expression a lexical scope distance and flags
// binding errors the parser's grammar can't catch on its own (reading a
// variable from its own initializer, "this" outside a class, and so on).
package resolver

import (
	"github.com/akashmaji946/golox/internal/ast"
	"github.com/akashmaji946/golox/internal/diagnostics"
	"github.com/akashmaji946/golox/internal/token"
)

type functionType int

const (
	noFunction functionType = iota
	inFunction
	inMethod
	inInitializer
)

type classType int

const (
	noClass classType = iota
	inClass
	inSubclass
)

// scope maps a name to whether it has been declared and whether its
// initializer has finished running, so "var a = a;" can be rejected.
type scope map[string]bool

// Resolver walks a parsed tree exactly once, producing Resolutions: a
// side-table from expression identity to scope distance. Absence of an
// entry for an expression id means "resolve against globals".
type Resolver struct {
	sink  *diagnostics.Sink
	scopes []scope

	currentFunction functionType
	currentClass    classType
	loopDepth       int

	Resolutions map[ast.ExprID]int
}

// New builds a Resolver reporting static errors to sink.
func New(sink *diagnostics.Sink) *Resolver {
	return &Resolver{sink: sink, Resolutions: make(map[ast.ExprID]int)}
}

// NewResuming builds a Resolver that reports to sink but accumulates
// into a resolutions map from a prior run, so a REPL can resolve one
// line at a time while keeping every earlier line's scope-distance
// entries intact.
func NewResuming(sink *diagnostics.Sink, resolutions map[ast.ExprID]int) *Resolver {
	return &Resolver{sink: sink, Resolutions: resolutions}
}

// SetSink redirects subsequent diagnostics to sink, so a single
// long-lived Resolver (REPL state persists across lines) can report
// each line's errors into that line's own sink.
func (r *Resolver) SetSink(sink *diagnostics.Sink) {
	r.sink = sink
}

// Resolve walks every top-level statement, populating Resolutions and
// reporting RESOLVE_ERROR diagnostics as it finds them.
func (r *Resolver) Resolve(stmts []ast.Stmt) {
	r.resolveStmts(stmts)
}

func (r *Resolver) resolveStmts(stmts []ast.Stmt) {
	for _, s := range stmts {
		r.resolveStmt(s)
	}
}

func (r *Resolver) resolveStmt(s ast.Stmt) {
	s.Accept(r)
}

func (r *Resolver) resolveExpr(e ast.Expr) {
	e.Accept(r)
}

func (r *Resolver) beginScope() { r.scopes = append(r.scopes, scope{}) }
func (r *Resolver) endScope()   { r.scopes = r.scopes[:len(r.scopes)-1] }

func (r *Resolver) declare(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	s := r.scopes[len(r.scopes)-1]
	if _, ok := s[name.Lexeme]; ok {
		r.sink.ResolveError(name, "Already a variable with this name in this scope.")
	}
	s[name.Lexeme] = false
}

func (r *Resolver) define(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name.Lexeme] = true
}

func (r *Resolver) resolveLocal(id ast.ExprID, name token.Token) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name.Lexeme]; ok {
			r.Resolutions[id] = len(r.scopes) - 1 - i
			return
		}
	}
	// Not found in any scope: treat as a global reference.
}

func (r *Resolver) resolveFunction(fn *ast.FunctionStmt, typ functionType) {
	enclosing := r.currentFunction
	r.currentFunction = typ
	defer func() { r.currentFunction = enclosing }()

	r.beginScope()
	defer r.endScope()
	for _, param := range fn.Params {
		r.declare(param)
		r.define(param)
	}
	r.resolveStmts(fn.Body)
}

// --- StmtVisitor ---

func (r *Resolver) VisitBlockStmt(s *ast.BlockStmt) (interface{}, error) {
	r.beginScope()
	r.resolveStmts(s.Statements)
	r.endScope()
	return nil, nil
}

func (r *Resolver) VisitVarStmt(s *ast.VarStmt) (interface{}, error) {
	r.declare(s.Name)
	if s.Initializer != nil {
		r.resolveExpr(s.Initializer)
	}
	r.define(s.Name)
	return nil, nil
}

func (r *Resolver) VisitFunctionStmt(s *ast.FunctionStmt) (interface{}, error) {
	r.declare(s.Name)
	r.define(s.Name)
	r.resolveFunction(s, inFunction)
	return nil, nil
}

func (r *Resolver) VisitExpressionStmt(s *ast.ExpressionStmt) (interface{}, error) {
	r.resolveExpr(s.Expression)
	return nil, nil
}

func (r *Resolver) VisitIfStmt(s *ast.IfStmt) (interface{}, error) {
	r.resolveExpr(s.Condition)
	r.resolveStmt(s.ThenBranch)
	if s.ElseBranch != nil {
		r.resolveStmt(s.ElseBranch)
	}
	return nil, nil
}

func (r *Resolver) VisitPrintStmt(s *ast.PrintStmt) (interface{}, error) {
	r.resolveExpr(s.Expression)
	return nil, nil
}

func (r *Resolver) VisitReturnStmt(s *ast.ReturnStmt) (interface{}, error) {
	if r.currentFunction == noFunction {
		r.sink.ResolveError(s.Keyword, "Can't return from top-level code.")
	}
	if s.Value != nil {
		if r.currentFunction == inInitializer {
			r.sink.ResolveError(s.Keyword, "Can't return a value from an initializer.")
		}
		r.resolveExpr(s.Value)
	}
	return nil, nil
}

func (r *Resolver) VisitWhileStmt(s *ast.WhileStmt) (interface{}, error) {
	r.resolveExpr(s.Condition)
	r.loopDepth++
	r.resolveStmt(s.Body)
	r.loopDepth--
	if s.Increment != nil {
		r.resolveExpr(s.Increment)
	}
	return nil, nil
}

func (r *Resolver) VisitBreakStmt(s *ast.BreakStmt) (interface{}, error) {
	if r.loopDepth == 0 {
		r.sink.ResolveError(s.Keyword, "Can't use 'break' outside a loop.")
	}
	return nil, nil
}

func (r *Resolver) VisitContinueStmt(s *ast.ContinueStmt) (interface{}, error) {
	if r.loopDepth == 0 {
		r.sink.ResolveError(s.Keyword, "Can't use 'continue' outside a loop.")
	}
	return nil, nil
}

func (r *Resolver) VisitClassStmt(s *ast.ClassStmt) (interface{}, error) {
	enclosingClass := r.currentClass
	r.currentClass = inClass
	defer func() { r.currentClass = enclosingClass }()

	r.declare(s.Name)
	r.define(s.Name)

	if s.Superclass != nil {
		if s.Superclass.Name.Lexeme == s.Name.Lexeme {
			r.sink.ResolveError(s.Superclass.Name, "A class can't inherit from itself.")
		}
		r.currentClass = inSubclass
		r.resolveExpr(s.Superclass)

		r.beginScope()
		r.scopes[len(r.scopes)-1]["super"] = true
		defer r.endScope()
	}

	r.beginScope()
	r.scopes[len(r.scopes)-1]["this"] = true
	defer r.endScope()

	for _, method := range s.Methods {
		declType := inMethod
		if method.Name.Lexeme == "init" {
			declType = inInitializer
		}
		r.resolveFunction(method, declType)
	}
	return nil, nil
}

// --- ExprVisitor ---

func (r *Resolver) VisitVariableExpr(e *ast.Variable) (interface{}, error) {
	if len(r.scopes) > 0 {
		if defined, ok := r.scopes[len(r.scopes)-1][e.Name.Lexeme]; ok && !defined {
			r.sink.ResolveError(e.Name, "Can't read local variable in its own initializer.")
		}
	}
	r.resolveLocal(e.ID, e.Name)
	return nil, nil
}

func (r *Resolver) VisitAssignExpr(e *ast.Assign) (interface{}, error) {
	r.resolveExpr(e.Value)
	r.resolveLocal(e.ID, e.Name)
	return nil, nil
}

func (r *Resolver) VisitBinaryExpr(e *ast.Binary) (interface{}, error) {
	r.resolveExpr(e.Left)
	r.resolveExpr(e.Right)
	return nil, nil
}

func (r *Resolver) VisitLogicalExpr(e *ast.Logical) (interface{}, error) {
	r.resolveExpr(e.Left)
	r.resolveExpr(e.Right)
	return nil, nil
}

func (r *Resolver) VisitCallExpr(e *ast.Call) (interface{}, error) {
	r.resolveExpr(e.Callee)
	for _, arg := range e.Arguments {
		r.resolveExpr(arg)
	}
	return nil, nil
}

func (r *Resolver) VisitGetExpr(e *ast.Get) (interface{}, error) {
	r.resolveExpr(e.Object)
	return nil, nil
}

func (r *Resolver) VisitSetExpr(e *ast.Set) (interface{}, error) {
	r.resolveExpr(e.Value)
	r.resolveExpr(e.Object)
	return nil, nil
}

func (r *Resolver) VisitGroupingExpr(e *ast.Grouping) (interface{}, error) {
	r.resolveExpr(e.Expression)
	return nil, nil
}

func (r *Resolver) VisitLiteralExpr(e *ast.Literal) (interface{}, error) {
	return nil, nil
}

func (r *Resolver) VisitUnaryExpr(e *ast.Unary) (interface{}, error) {
	r.resolveExpr(e.Right)
	return nil, nil
}

func (r *Resolver) VisitThisExpr(e *ast.This) (interface{}, error) {
	if r.currentClass == noClass {
		r.sink.ResolveError(e.Keyword, "Can't use 'this' outside of a class.")
		return nil, nil
	}
	r.resolveLocal(e.ID, e.Keyword)
	return nil, nil
}

func (r *Resolver) VisitSuperExpr(e *ast.Super) (interface{}, error) {
	switch r.currentClass {
	case noClass:
		r.sink.ResolveError(e.Keyword, "Can't use 'super' outside of a class.")
	case inClass:
		r.sink.ResolveError(e.Keyword, "Can't use 'super' in a class with no superclass.")
	}
	r.resolveLocal(e.ID, e.Keyword)
	return nil, nil
}
