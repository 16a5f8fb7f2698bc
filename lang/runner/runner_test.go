package runner_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/radanskoric/golox/lang/runner"
)

func TestRunPrintsStatementOutput(t *testing.T) {
	var out, errOut bytes.Buffer
	err := runner.Run(runner.ModeRun, `print -123 * (35.67 + 10);`, &out, &errOut)
	require.NoError(t, err)
	require.Equal(t, "-5617.41\n", out.String())
	require.Empty(t, errOut.String())
}

func TestRunLexicalErrorsAreHeadedAndIndented(t *testing.T) {
	var out, errOut bytes.Buffer
	err := runner.Run(runner.ModeRun, "print 1 @ 2;", &out, &errOut)
	require.Error(t, err)
	require.Contains(t, errOut.String(), "There were lexical errors:")
	require.Contains(t, errOut.String(), `  Unexpected character "@" on line 1`)
}

func TestRunSyntaxErrorsAreHeadedAndIndented(t *testing.T) {
	var out, errOut bytes.Buffer
	err := runner.Run(runner.ModeRun, "var = 1;", &out, &errOut)
	require.Error(t, err)
	require.Contains(t, errOut.String(), "There were syntax errors:")
	require.True(t, strings.Contains(errOut.String(), "  Error on line 1:"))
}

func TestRunCompileErrorFormat(t *testing.T) {
	var out, errOut bytes.Buffer
	err := runner.Run(runner.ModeRun, `{ var a = a; }`, &out, &errOut)
	require.Error(t, err)
	require.Contains(t, errOut.String(), "Compiler error on line 1:")
	require.Contains(t, errOut.String(), "Can't read local variable in its own initializer")
}

func TestRunRuntimeErrorFormatIncludesLexeme(t *testing.T) {
	var out, errOut bytes.Buffer
	err := runner.Run(runner.ModeRun, `4 + "foo";`, &out, &errOut)
	require.Error(t, err)
	require.Contains(t, errOut.String(), `Runtime error executing "+" on line 1:`)
	require.Contains(t, errOut.String(), "Operands must be two numbers or two strings")
}

func TestRunUndefinedVariableErrorNamesTheVariable(t *testing.T) {
	var out, errOut bytes.Buffer
	err := runner.Run(runner.ModeRun, `print nope;`, &out, &errOut)
	require.Error(t, err)
	require.Contains(t, errOut.String(), `Runtime error executing "nope" on line 1:`)
	require.Contains(t, errOut.String(), "Undefined variable 'nope'")
}

func TestModeTokenizePrintsTokensOnly(t *testing.T) {
	var out, errOut bytes.Buffer
	err := runner.Run(runner.ModeTokenize, `print 1;`, &out, &errOut)
	require.NoError(t, err)
	require.Contains(t, out.String(), "print")
	require.Contains(t, out.String(), "number")
}

func TestModeParsePrintsTreeWithoutExecuting(t *testing.T) {
	var out, errOut bytes.Buffer
	err := runner.Run(runner.ModeParse, `print 1;`, &out, &errOut)
	require.NoError(t, err)
	require.Contains(t, out.String(), "print")
	for _, line := range strings.Split(out.String(), "\n") {
		require.NotEqual(t, "1", strings.TrimSpace(line), "ModeParse must not execute and print the value 1")
	}
}

func TestRunREPLSharesStateAndPrompts(t *testing.T) {
	var out, errOut bytes.Buffer
	in := strings.NewReader("var a = 1;\nprint a;\n")
	runner.RunREPL(runner.ModeRun, in, &out, &errOut)
	require.Contains(t, out.String(), "> ")
	require.Contains(t, out.String(), "1\n")
	require.Empty(t, errOut.String())
}
