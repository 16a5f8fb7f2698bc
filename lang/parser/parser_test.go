package parser_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/radanskoric/golox/lang/ast"
	"github.com/radanskoric/golox/lang/parser"
	"github.com/radanskoric/golox/lang/scanner"
)

func mustParse(t *testing.T, src string) []ast.Stmt {
	t.Helper()
	toks, err := scanner.ScanTokens(src)
	require.NoError(t, err)
	stmts, err := parser.Parse(toks)
	require.NoError(t, err)
	return stmts
}

func TestParseExpressionPrecedence(t *testing.T) {
	stmts := mustParse(t, "print -123 * (35.67 + 10);")
	require.Len(t, stmts, 1)
	pr := stmts[0].(*ast.PrintStmt)
	bin := pr.Expr.(*ast.BinaryExpr)
	_, ok := bin.Left.(*ast.UnaryExpr)
	require.True(t, ok)
	group, ok := bin.Right.(*ast.GroupingExpr)
	require.True(t, ok)
	_, ok = group.Inner.(*ast.BinaryExpr)
	require.True(t, ok)
}

func TestParseForDesugaringEquivalentToHandWritten(t *testing.T) {
	forStmts := mustParse(t, "for (var i=0; i<10; i=i+1) print i;")
	wantStmts := mustParse(t, "{ var i=0; while (i<10) { print i; i=i+1; } }")

	require.True(t, reflect.DeepEqual(forStmts, wantStmts),
		"desugared for-loop AST should equal the hand-written while-loop AST")
}

func TestParseForOmittedClauses(t *testing.T) {
	stmts := mustParse(t, "for (;;) print 1;")
	wh := stmts[0].(*ast.WhileStmt)
	lit, ok := wh.Condition.(*ast.LiteralExpr)
	require.True(t, ok)
	require.Equal(t, true, lit.Value)
}

func TestParseAssignmentTargetError(t *testing.T) {
	toks, err := scanner.ScanTokens("a + b = c;")
	require.NoError(t, err)
	_, err = parser.Parse(toks)
	require.Error(t, err)
	require.Contains(t, err.Error(), "Invalid assignment target")
}

func TestParsePanicModeRecoversAtNextStatement(t *testing.T) {
	toks, err := scanner.ScanTokens("var = ; print 1;")
	require.NoError(t, err)
	stmts, err := parser.Parse(toks)
	require.Error(t, err)
	require.Len(t, stmts, 1)
	pr, ok := stmts[0].(*ast.PrintStmt)
	require.True(t, ok)
	lit := pr.Expr.(*ast.LiteralExpr)
	require.Equal(t, 1.0, lit.Value)
}

func TestParseClassWithSuperclass(t *testing.T) {
	stmts := mustParse(t, "class B < A { method() { return 1; } }")
	cls := stmts[0].(*ast.ClassStmt)
	require.Equal(t, "B", cls.Name.Lexeme)
	require.NotNil(t, cls.Superclass)
	require.Equal(t, "A", cls.Superclass.Name.Lexeme)
	require.Len(t, cls.Methods, 1)
}

func TestParseTooManyArgumentsRecordsErrorButContinues(t *testing.T) {
	src := "f("
	for i := 0; i < 260; i++ {
		if i > 0 {
			src += ","
		}
		src += "1"
	}
	src += ");"

	toks, err := scanner.ScanTokens(src)
	require.NoError(t, err)
	stmts, err := parser.Parse(toks)
	require.Error(t, err)
	require.Contains(t, err.Error(), "Can't have more than 255 arguments")
	require.Len(t, stmts, 1, "parsing continues after the arity error")
}
