/*
File    : golox/internal/parser/parser_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/golox/internal/ast"
	"github.com/akashmaji946/golox/internal/diagnostics"
	"github.com/akashmaji946/golox/internal/lexer"
)

func parse(t *testing.T, src string) ([]ast.Stmt, *diagnostics.Sink) {
	t.Helper()
	sink := diagnostics.NewSink()
	tokens := lexer.New(src, sink).ScanTokens()
	stmts := New(tokens, sink, &ast.IDGen{}).Parse()
	return stmts, sink
}

func TestParser_BinaryPrecedence(t *testing.T) {
	stmts, sink := parse(t, "1 + 2 * 3;")
	assert.False(t, sink.HasErrors())
	assert.Len(t, stmts, 1)

	exprStmt := stmts[0].(*ast.ExpressionStmt)
	bin := exprStmt.Expression.(*ast.Binary)
	assert.Equal(t, 1.0, bin.Left.(*ast.Literal).Value)
	mul := bin.Right.(*ast.Binary)
	assert.Equal(t, 2.0, mul.Left.(*ast.Literal).Value)
	assert.Equal(t, 3.0, mul.Right.(*ast.Literal).Value)
}

func TestParser_VarDeclarationWithoutInitializer(t *testing.T) {
	stmts, sink := parse(t, "var a;")
	assert.False(t, sink.HasErrors())
	v := stmts[0].(*ast.VarStmt)
	assert.Equal(t, "a", v.Name.Lexeme)
	assert.Nil(t, v.Initializer)
}

func TestParser_AssignmentRejectsNonLvalue(t *testing.T) {
	_, sink := parse(t, "1 = 2;")
	assert.True(t, sink.HasErrors())
}

func TestParser_ForDesugarsToWhileKeepingIncrement(t *testing.T) {
	stmts, sink := parse(t, "for (var i = 0; i < 3; i = i + 1) print i;")
	assert.False(t, sink.HasErrors())

	block := stmts[0].(*ast.BlockStmt)
	assert.Len(t, block.Statements, 2)
	assert.IsType(t, &ast.VarStmt{}, block.Statements[0])

	loop := block.Statements[1].(*ast.WhileStmt)
	assert.NotNil(t, loop.Condition)
	assert.NotNil(t, loop.Increment)
	assert.IsType(t, &ast.PrintStmt{}, loop.Body)
}

func TestParser_ForWithoutConditionDefaultsTrue(t *testing.T) {
	stmts, sink := parse(t, "for (;;) break;")
	assert.False(t, sink.HasErrors())
	loop := stmts[0].(*ast.WhileStmt)
	lit := loop.Condition.(*ast.Literal)
	assert.Equal(t, true, lit.Value)
}

func TestParser_ClassWithSuperclassAndMethods(t *testing.T) {
	stmts, sink := parse(t, `class B < A { greet() { print "hi"; } }`)
	assert.False(t, sink.HasErrors())

	class := stmts[0].(*ast.ClassStmt)
	assert.Equal(t, "B", class.Name.Lexeme)
	assert.Equal(t, "A", class.Superclass.Name.Lexeme)
	assert.Len(t, class.Methods, 1)
	assert.Equal(t, "greet", class.Methods[0].Name.Lexeme)
}

func TestParser_CallAndGetChain(t *testing.T) {
	stmts, sink := parse(t, "a.b.c(1, 2);")
	assert.False(t, sink.HasErrors())

	call := stmts[0].(*ast.ExpressionStmt).Expression.(*ast.Call)
	assert.Len(t, call.Arguments, 2)
	get := call.Callee.(*ast.Get)
	assert.Equal(t, "c", get.Name.Lexeme)
}

func TestParser_ExprIDsAreUniqueAndStable(t *testing.T) {
	stmts, sink := parse(t, "var a = 1; a = a + 1;")
	assert.False(t, sink.HasErrors())

	assign := stmts[1].(*ast.ExpressionStmt).Expression.(*ast.Assign)
	readInRHS := assign.Value.(*ast.Binary).Left.(*ast.Variable)
	assert.NotEqual(t, assign.ID, ast.ExprID(0))
	assert.NotEqual(t, readInRHS.ID, ast.ExprID(0))
	assert.NotEqual(t, assign.ID, readInRHS.ID)
}

func TestParser_PanicModeRecoversAtNextStatement(t *testing.T) {
	// The first statement is missing its initializer expression, which is
	// a parse error; the parser should still recover and parse the second one.
	stmts, sink := parse(t, "var a = ;\nvar b = 2;")
	assert.True(t, sink.HasErrors())
	assert.Len(t, stmts, 1)
	assert.Equal(t, "b", stmts[0].(*ast.VarStmt).Name.Lexeme)
}

func TestParser_TooManyArgumentsIsReportedButDoesNotAbort(t *testing.T) {
	src := "f("
	for i := 0; i < 256; i++ {
		if i > 0 {
			src += ", "
		}
		src += "1"
	}
	src += ");"

	stmts, sink := parse(t, src)
	assert.True(t, sink.HasErrors())
	assert.Len(t, stmts, 1) // still produced a usable AST
}
