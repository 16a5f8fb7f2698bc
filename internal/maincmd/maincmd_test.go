package maincmd_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mna/mainer"
	"github.com/stretchr/testify/require"

	"github.com/radanskoric/golox/internal/maincmd"
)

func stdio(in string) (mainer.Stdio, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return mainer.Stdio{
		Stdin:  strings.NewReader(in),
		Stdout: &out,
		Stderr: &errOut,
	}, &out, &errOut
}

func TestHelpFlagPrintsUsageAndExitsSuccess(t *testing.T) {
	c := maincmd.Cmd{}
	sio, out, _ := stdio("")
	code := c.Main([]string{"-h"}, sio)
	require.Equal(t, mainer.Success, code)
	require.Contains(t, out.String(), "Tree-walking interpreter for the Lox programming language.")
}

func TestVersionFlagPrintsVersionAndExitsSuccess(t *testing.T) {
	c := maincmd.Cmd{BuildVersion: "1.2.3", BuildDate: "2026-01-01"}
	sio, out, _ := stdio("")
	code := c.Main([]string{"-v"}, sio)
	require.Equal(t, mainer.Success, code)
	require.Contains(t, out.String(), "golox 1.2.3 2026-01-01")
}

func TestTooManyArgsPrintsUsageAndExits64(t *testing.T) {
	c := maincmd.Cmd{}
	sio, _, errOut := stdio("")
	code := c.Main([]string{"a.lox", "b.lox"}, sio)
	require.Equal(t, mainer.ExitCode(64), code)
	require.Contains(t, errOut.String(), "Usage: golox [script]")
}

func TestRunningAScriptFileExecutesIt(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prog.lox")
	require.NoError(t, os.WriteFile(path, []byte(`print 1 + 2;`), 0600))

	c := maincmd.Cmd{}
	sio, out, errOut := stdio("")
	code := c.Main([]string{path}, sio)
	require.Equal(t, mainer.Success, code)
	require.Equal(t, "3\n", out.String())
	require.Empty(t, errOut.String())
}

func TestRunningAMissingScriptFileFails(t *testing.T) {
	c := maincmd.Cmd{}
	sio, _, errOut := stdio("")
	code := c.Main([]string{filepath.Join(t.TempDir(), "missing.lox")}, sio)
	require.Equal(t, mainer.Failure, code)
	require.NotEmpty(t, errOut.String())
}

func TestNoArgsStartsREPL(t *testing.T) {
	c := maincmd.Cmd{}
	sio, out, errOut := stdio("print 41 + 1;\n")
	code := c.Main(nil, sio)
	require.Equal(t, mainer.Success, code)
	require.Contains(t, out.String(), "> ")
	require.Contains(t, out.String(), "42\n")
	require.Empty(t, errOut.String())
}

func TestTokenizeFlagStopsBeforeExecuting(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prog.lox")
	require.NoError(t, os.WriteFile(path, []byte(`print 1;`), 0600))

	c := maincmd.Cmd{}
	sio, out, _ := stdio("")
	code := c.Main([]string{"--tokenize", path}, sio)
	require.Equal(t, mainer.Success, code)
	require.Contains(t, out.String(), "print")
	require.NotContains(t, out.String(), "1\n")
}

func TestConflictingDebugFlagsAreRejected(t *testing.T) {
	c := maincmd.Cmd{}
	sio, _, errOut := stdio("")
	code := c.Main([]string{"--tokenize", "--parse"}, sio)
	require.Equal(t, mainer.InvalidArgs, code)
	require.Contains(t, errOut.String(), "invalid arguments:")
}
