/*
File    : golox/internal/resolver/resolver_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/golox/internal/ast"
	"github.com/akashmaji946/golox/internal/diagnostics"
	"github.com/akashmaji946/golox/internal/lexer"
	"github.com/akashmaji946/golox/internal/parser"
)

func resolve(t *testing.T, src string) (*Resolver, *diagnostics.Sink) {
	t.Helper()
	sink := diagnostics.NewSink()
	tokens := lexer.New(src, sink).ScanTokens()
	stmts := parser.New(tokens, sink, &ast.IDGen{}).Parse()
	r := New(sink)
	r.Resolve(stmts)
	return r, sink
}

func TestResolver_GlobalReferenceLeavesNoEntry(t *testing.T) {
	r, sink := resolve(t, "var a = 1; print a;")
	assert.False(t, sink.HasErrors())
	assert.Empty(t, r.Resolutions)
}

func TestResolver_LocalReferenceRecordsDepth(t *testing.T) {
	r, sink := resolve(t, "{ var a = 1; print a; }")
	assert.False(t, sink.HasErrors())
	assert.Len(t, r.Resolutions, 1)
	for _, depth := range r.Resolutions {
		assert.Equal(t, 0, depth)
	}
}

func TestResolver_NestedScopeDepth(t *testing.T) {
	r, sink := resolve(t, "{ var a = 1; { var b = 2; print a; } }")
	assert.False(t, sink.HasErrors())
	found := false
	for _, depth := range r.Resolutions {
		if depth == 1 {
			found = true
		}
	}
	assert.True(t, found, "reference to outer-block 'a' should resolve at depth 1")
}

func TestResolver_SelfInitializerReadIsRejected(t *testing.T) {
	_, sink := resolve(t, "{ var a = a; }")
	assert.True(t, sink.HasErrors())
	assert.Contains(t, sink.Diagnostics()[0].Message, "own initializer")
}

func TestResolver_RedeclarationInSameScopeIsRejected(t *testing.T) {
	_, sink := resolve(t, "{ var a = 1; var a = 2; }")
	assert.True(t, sink.HasErrors())
	assert.Contains(t, sink.Diagnostics()[0].Message, "Already a variable")
}

func TestResolver_ShadowingInNestedScopeIsAllowed(t *testing.T) {
	_, sink := resolve(t, "var a = 1; { var a = 2; }")
	assert.False(t, sink.HasErrors())
}

func TestResolver_ReturnOutsideFunctionIsRejected(t *testing.T) {
	_, sink := resolve(t, "return 1;")
	assert.True(t, sink.HasErrors())
	assert.Contains(t, sink.Diagnostics()[0].Message, "return from top-level")
}

func TestResolver_ReturnValueFromInitializerIsRejected(t *testing.T) {
	_, sink := resolve(t, "class C { init() { return 1; } }")
	assert.True(t, sink.HasErrors())
	assert.Contains(t, sink.Diagnostics()[0].Message, "return a value from an initializer")
}

func TestResolver_BareReturnFromInitializerIsAllowed(t *testing.T) {
	_, sink := resolve(t, "class C { init() { return; } }")
	assert.False(t, sink.HasErrors())
}

func TestResolver_BreakOutsideLoopIsRejected(t *testing.T) {
	_, sink := resolve(t, "break;")
	assert.True(t, sink.HasErrors())
	assert.Contains(t, sink.Diagnostics()[0].Message, "'break'")
}

func TestResolver_ContinueOutsideLoopIsRejected(t *testing.T) {
	_, sink := resolve(t, "continue;")
	assert.True(t, sink.HasErrors())
	assert.Contains(t, sink.Diagnostics()[0].Message, "'continue'")
}

func TestResolver_BreakInsideWhileIsAllowed(t *testing.T) {
	_, sink := resolve(t, "while (true) { break; }")
	assert.False(t, sink.HasErrors())
}

func TestResolver_ThisOutsideClassIsRejected(t *testing.T) {
	_, sink := resolve(t, "print this;")
	assert.True(t, sink.HasErrors())
	assert.Contains(t, sink.Diagnostics()[0].Message, "'this' outside")
}

func TestResolver_SuperOutsideClassIsRejected(t *testing.T) {
	_, sink := resolve(t, "print super.x;")
	assert.True(t, sink.HasErrors())
	assert.Contains(t, sink.Diagnostics()[0].Message, "'super' outside")
}

func TestResolver_SuperInClassWithoutSuperclassIsRejected(t *testing.T) {
	_, sink := resolve(t, "class A { m() { super.m(); } }")
	assert.True(t, sink.HasErrors())
	assert.Contains(t, sink.Diagnostics()[0].Message, "no superclass")
}

func TestResolver_SuperInSubclassIsAllowed(t *testing.T) {
	_, sink := resolve(t, "class A { m() {} } class B < A { m() { super.m(); } }")
	assert.False(t, sink.HasErrors())
}

func TestResolver_SelfInheritanceIsRejected(t *testing.T) {
	_, sink := resolve(t, "class A < A {}")
	assert.True(t, sink.HasErrors())
	assert.Contains(t, sink.Diagnostics()[0].Message, "inherit from itself")
}

func TestResolver_ThisInsideMethodIsAllowed(t *testing.T) {
	_, sink := resolve(t, "class A { m() { print this; } }")
	assert.False(t, sink.HasErrors())
}
