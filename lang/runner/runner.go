// Package runner glues the pipeline stages together: scan, parse, resolve,
// interpret, stopping at the first stage that reports an error and
// formatting it for display. It plays the thin boundary-layer role a
// compiler frontend's per-stage command glue normally plays, collapsed here
// into one entry point per debug Mode instead of one exported function per
// CLI subcommand.
package runner

import (
	"bufio"
	"fmt"
	goscanner "go/scanner"
	"io"

	"github.com/radanskoric/golox/lang/ast"
	"github.com/radanskoric/golox/lang/interp"
	"github.com/radanskoric/golox/lang/parser"
	"github.com/radanskoric/golox/lang/resolver"
	"github.com/radanskoric/golox/lang/scanner"
)

// Mode selects how far through the pipeline a call to Run goes.
type Mode int

const (
	// ModeRun scans, parses, resolves and interprets the program.
	ModeRun Mode = iota
	// ModeTokenize scans the program and prints its tokens.
	ModeTokenize
	// ModeParse scans and parses the program and prints the resulting AST.
	ModeParse
	// ModeResolve scans, parses and resolves the program and prints the
	// resulting AST (resolution errors, if any, are still reported).
	ModeResolve
)

// Run executes src in mode, writing print/debug output to stdout and
// formatted errors to stderr. It returns the first pipeline error
// encountered, if any.
func Run(mode Mode, src string, stdout, stderr io.Writer) error {
	toks, err := scanner.ScanTokens(src)
	if err != nil {
		printErrorList(stderr, "There were lexical errors:", err, func(e *goscanner.Error) string {
			return e.Msg
		})
		return err
	}
	if mode == ModeTokenize {
		for _, t := range toks {
			fmt.Fprintln(stdout, t.String())
		}
		return nil
	}

	stmts, err := parser.Parse(toks)
	if err != nil {
		printErrorList(stderr, "There were syntax errors:", err, func(e *goscanner.Error) string {
			return fmt.Sprintf("Error on line %d: %s", e.Pos.Line, e.Msg)
		})
		return err
	}
	if mode == ModeParse {
		return (&ast.Printer{Output: stdout}).Print(stmts)
	}

	locals, err := resolver.Resolve(stmts)
	if err != nil {
		rerr := err.(*resolver.Error)
		fmt.Fprintf(stderr, "Compiler error on line %d: %s\n", rerr.Line, rerr.Msg)
		return err
	}
	if mode == ModeResolve {
		return (&ast.Printer{Output: stdout}).Print(stmts)
	}

	in := interp.New(locals, stdout)
	if err := in.Interpret(stmts); err != nil {
		rterr := err.(*interp.RuntimeError)
		if rterr.Token.Lexeme != "" {
			fmt.Fprintf(stderr, "Runtime error executing %q on line %d: %s\n",
				rterr.Token.Lexeme, rterr.Token.Line, rterr.Msg)
		} else {
			fmt.Fprintf(stderr, "Runtime error: %s\n", rterr.Msg)
		}
		return err
	}
	return nil
}

// printErrorList prints header followed by each error in err (expected to
// be a go/scanner.ErrorList, as returned by lang/scanner and lang/parser),
// formatted by formatOne and indented by two spaces.
func printErrorList(w io.Writer, header string, err error, formatOne func(*goscanner.Error) string) {
	fmt.Fprintln(w, header)
	list, ok := err.(goscanner.ErrorList)
	if !ok {
		fmt.Fprintf(w, "  %s\n", err)
		return
	}
	for _, e := range list {
		fmt.Fprintf(w, "  %s\n", formatOne(e))
	}
}

// RunREPL reads one line at a time from stdin, running each as its own
// program against a single persistent Interpreter (so global state carries
// across lines), printing a "> " prompt before each read. It returns when
// stdin reaches EOF.
func RunREPL(mode Mode, stdin io.Reader, stdout, stderr io.Writer) {
	locals := resolver.Locals{}
	in := interp.New(locals, stdout)

	scan := bufio.NewScanner(stdin)
	for {
		fmt.Fprint(stdout, "> ")
		if !scan.Scan() {
			return
		}
		line := scan.Text()

		toks, err := scanner.ScanTokens(line)
		if err != nil {
			printErrorList(stderr, "There were lexical errors:", err, func(e *goscanner.Error) string {
				return e.Msg
			})
			continue
		}
		if mode == ModeTokenize {
			for _, t := range toks {
				fmt.Fprintln(stdout, t.String())
			}
			continue
		}

		stmts, err := parser.Parse(toks)
		if err != nil {
			printErrorList(stderr, "There were syntax errors:", err, func(e *goscanner.Error) string {
				return fmt.Sprintf("Error on line %d: %s", e.Pos.Line, e.Msg)
			})
			continue
		}
		if mode == ModeParse {
			_ = (&ast.Printer{Output: stdout}).Print(stmts)
			continue
		}

		lineLocals, err := resolver.Resolve(stmts)
		if err != nil {
			rerr := err.(*resolver.Error)
			fmt.Fprintf(stderr, "Compiler error on line %d: %s\n", rerr.Line, rerr.Msg)
			continue
		}
		for k, v := range lineLocals {
			locals[k] = v
		}
		if mode == ModeResolve {
			_ = (&ast.Printer{Output: stdout}).Print(stmts)
			continue
		}

		if err := in.Interpret(stmts); err != nil {
			rterr := err.(*interp.RuntimeError)
			if rterr.Token.Lexeme != "" {
				fmt.Fprintf(stderr, "Runtime error executing %q on line %d: %s\n",
					rterr.Token.Lexeme, rterr.Token.Line, rterr.Msg)
			} else {
				fmt.Fprintf(stderr, "Runtime error: %s\n", rterr.Msg)
			}
		}
	}
}
