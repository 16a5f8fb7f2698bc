package runner_test

import (
	"bytes"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/radanskoric/golox/internal/filetest"
	"github.com/radanskoric/golox/lang/runner"
)

var testUpdateRunnerTests = flag.Bool("test.update-runner-tests", false, "If set, replace expected runner golden test results with actual results.")

// TestRunGolden runs every .lox file under testdata/ and diffs its stdout
// and stderr against the matching .want/.err golden file in the same
// directory. A missing golden file counts as empty expected output.
func TestRunGolden(t *testing.T) {
	const dir = "testdata"

	for _, fi := range filetest.SourceFiles(t, dir, ".lox") {
		t.Run(fi.Name(), func(t *testing.T) {
			src, err := os.ReadFile(filepath.Join(dir, fi.Name()))
			require.NoError(t, err)

			var out, errOut bytes.Buffer
			_ = runner.Run(runner.ModeRun, string(src), &out, &errOut)

			filetest.DiffOutput(t, fi, out.String(), dir, testUpdateRunnerTests)
			filetest.DiffErrors(t, fi, errOut.String(), dir, testUpdateRunnerTests)
		})
	}
}
