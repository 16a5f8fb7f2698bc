// Package maincmd wires command-line flags to the lang/runner pipeline,
// adapted to golox's single-script CLI contract instead of a
// multi-subcommand one: there is exactly one operation, "run", with
// optional debug flags that stop the pipeline early instead of separate
// subcommands.
package maincmd

import (
	"fmt"
	"os"

	"github.com/mna/mainer"

	"github.com/radanskoric/golox/lang/runner"
)

const binName = "golox"

var (
	shortUsage = fmt.Sprintf("Usage: %s [script]\n", binName)

	longUsage = fmt.Sprintf(`usage: %s [<option>...] [script]
       %[1]s -h|--help
       %[1]s -v|--version

Tree-walking interpreter for the Lox programming language.

With no script, %[1]s starts an interactive prompt: it reads one line at a
time from stdin, runs each line against a single interpreter shared across
lines, and stops at EOF. With a script argument, it reads the file as UTF-8
text and runs it as one program.

Valid flag options are:
       -h --help                 Show this help and exit.
       -v --version              Print version and exit.
       --tokenize                Stop after scanning and print the tokens.
       --parse                   Stop after parsing and print the AST.
       --resolve                 Stop after resolving and print the AST
                                 (resolver errors are still reported).
`, binName)
)

// Cmd is the golox command. It implements the shape mainer.Parser expects:
// flag-tagged fields, SetArgs for positional arguments, and Validate.
type Cmd struct {
	BuildVersion string
	BuildDate    string

	Help    bool `flag:"h,help"`
	Version bool `flag:"v,version"`

	Tokenize bool `flag:"tokenize"`
	Parse    bool `flag:"parse"`
	Resolve  bool `flag:"resolve"`

	args []string
}

func (c *Cmd) SetArgs(args []string) {
	c.args = args
}

func (c *Cmd) Validate() error {
	if c.Help || c.Version {
		return nil
	}

	n := 0
	for _, b := range []bool{c.Tokenize, c.Parse, c.Resolve} {
		if b {
			n++
		}
	}
	if n > 1 {
		return fmt.Errorf("only one of --tokenize, --parse, --resolve may be given")
	}
	return nil
}

func (c *Cmd) mode() runner.Mode {
	switch {
	case c.Tokenize:
		return runner.ModeTokenize
	case c.Parse:
		return runner.ModeParse
	case c.Resolve:
		return runner.ModeResolve
	default:
		return runner.ModeRun
	}
}

// Main parses args, dispatches to the REPL or single-file runner, and
// returns the process exit code. Scanning, parsing, resolving, and runtime
// faults are reported on stdio by lang/runner; for a script file they are
// turned into a non-zero exit code here, while the REPL always exits with
// success at EOF. Main itself never inspects their content.
func (c *Cmd) Main(args []string, stdio mainer.Stdio) mainer.ExitCode {
	p := mainer.Parser{
		EnvVars:   false,
		EnvPrefix: binName + "_",
	}
	if err := p.Parse(args, c); err != nil {
		fmt.Fprintf(stdio.Stderr, "invalid arguments: %s\n%s", err, shortUsage)
		return mainer.InvalidArgs
	}

	switch {
	case c.Help:
		fmt.Fprint(stdio.Stdout, longUsage)
		return mainer.Success

	case c.Version:
		fmt.Fprintf(stdio.Stdout, "%s %s %s\n", binName, c.BuildVersion, c.BuildDate)
		return mainer.Success
	}

	if len(c.args) > 1 {
		fmt.Fprint(stdio.Stderr, shortUsage)
		return mainer.ExitCode(64)
	}

	mode := c.mode()

	if len(c.args) == 0 {
		runner.RunREPL(mode, stdio.Stdin, stdio.Stdout, stdio.Stderr)
		return mainer.Success
	}

	src, err := os.ReadFile(c.args[0])
	if err != nil {
		fmt.Fprintf(stdio.Stderr, "%s\n", err)
		return mainer.Failure
	}

	if err := runner.Run(mode, string(src), stdio.Stdout, stdio.Stderr); err != nil {
		return mainer.Failure
	}
	return mainer.Success
}
