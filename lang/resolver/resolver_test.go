package resolver_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/radanskoric/golox/lang/ast"
	"github.com/radanskoric/golox/lang/parser"
	"github.com/radanskoric/golox/lang/resolver"
	"github.com/radanskoric/golox/lang/scanner"
)

func mustResolve(t *testing.T, src string) ([]ast.Stmt, resolver.Locals) {
	t.Helper()
	toks, err := scanner.ScanTokens(src)
	require.NoError(t, err)
	stmts, err := parser.Parse(toks)
	require.NoError(t, err)
	locals, err := resolver.Resolve(stmts)
	require.NoError(t, err)
	return stmts, locals
}

func TestResolveShadowingRecordsDistance(t *testing.T) {
	stmts, locals := mustResolve(t, `var a=1; { var a=2; print a; } print a;`)
	outerPrint := stmts[2].(*ast.PrintStmt)
	_, isLocal := locals[outerPrint.Expr]
	require.False(t, isLocal, "the outermost print refers to the global a")

	block := stmts[1].(*ast.BlockStmt)
	innerPrint := block.Stmts[1].(*ast.PrintStmt)
	dist, ok := locals[innerPrint.Expr]
	require.True(t, ok)
	require.Equal(t, 0, dist)
}

func TestResolveSelfReferenceInInitializerIsError(t *testing.T) {
	toks, err := scanner.ScanTokens("{ var a = a; }")
	require.NoError(t, err)
	stmts, err := parser.Parse(toks)
	require.NoError(t, err)

	_, err = resolver.Resolve(stmts)
	require.Error(t, err)
	require.Contains(t, err.Error(), "Can't read local variable in its own initializer")
}

func TestResolveDuplicateLocalDeclarationIsError(t *testing.T) {
	toks, _ := scanner.ScanTokens("{ var a = 1; var a = 2; }")
	stmts, _ := parser.Parse(toks)
	_, err := resolver.Resolve(stmts)
	require.Error(t, err)
	require.Contains(t, err.Error(), "Already a variable with this name in this scope")
}

func TestResolveReturnOutsideFunctionIsError(t *testing.T) {
	toks, _ := scanner.ScanTokens("return 1;")
	stmts, _ := parser.Parse(toks)
	_, err := resolver.Resolve(stmts)
	require.Error(t, err)
	require.Contains(t, err.Error(), "Can't return from top-level code")
}

func TestResolveReturnValueFromInitializerIsError(t *testing.T) {
	toks, _ := scanner.ScanTokens("class A { init() { return 1; } }")
	stmts, _ := parser.Parse(toks)
	_, err := resolver.Resolve(stmts)
	require.Error(t, err)
	require.Contains(t, err.Error(), "Can't return a value from an initializer")
}

func TestResolveThisOutsideClassIsError(t *testing.T) {
	toks, _ := scanner.ScanTokens("print this;")
	stmts, _ := parser.Parse(toks)
	_, err := resolver.Resolve(stmts)
	require.Error(t, err)
	require.Contains(t, err.Error(), "Can't use 'this' outside of a class")
}

func TestResolveSuperWithoutSuperclassIsError(t *testing.T) {
	toks, _ := scanner.ScanTokens("class A { method() { super.method(); } }")
	stmts, _ := parser.Parse(toks)
	_, err := resolver.Resolve(stmts)
	require.Error(t, err)
	require.Contains(t, err.Error(), "Can't use 'super' in a class with no superclass")
}

func TestResolveClassInheritingFromItselfIsError(t *testing.T) {
	toks, _ := scanner.ScanTokens("class A < A {}")
	stmts, _ := parser.Parse(toks)
	_, err := resolver.Resolve(stmts)
	require.Error(t, err)
	require.Contains(t, err.Error(), "A class can't inherit from itself")
}

func TestResolveClassWithSuperclassBindsThisAndSuper(t *testing.T) {
	_, locals := mustResolve(t, `class A { method() { print "a"; } }
class B < A { test() { super.method(); } }`)
	require.NotEmpty(t, locals, "super reference should be annotated with a distance")
}
