package ast

import (
	"fmt"
	"io"
	"strings"
)

// Printer pretty-prints a tree of statements as an indented, one-node-per-
// line listing. It is used by the --parse/--resolve debug CLI flags
// (runner.ModeParse/ModeResolve) to inspect intermediate pipeline stages.
type Printer struct {
	// Output is the io.Writer to print to.
	Output io.Writer

	// NodeFmt is the format string used to print each node. The verb must be
	// 's' or 'v'; defaults to "%v".
	NodeFmt string
}

// Print pretty-prints every statement in stmts.
func (p *Printer) Print(stmts []Stmt) error {
	pp := &printer{w: p.Output, nodeFmt: p.NodeFmt}
	if pp.nodeFmt == "" {
		pp.nodeFmt = "%v"
	}
	for _, s := range stmts {
		Walk(pp, s)
		if pp.err != nil {
			return pp.err
		}
	}
	return nil
}

type printer struct {
	w       io.Writer
	nodeFmt string
	depth   int
	err     error
}

func (p *printer) Visit(n Node, dir VisitDirection) Visitor {
	if dir == VisitExit || p.err != nil {
		p.depth--
		return nil
	}
	p.depth++
	p.printNode(n, p.depth-1)
	return p
}

func (p *printer) printNode(n Node, indent int) {
	if p.err != nil {
		return
	}
	format := "%s" + p.nodeFmt + "\n"
	_, p.err = fmt.Fprintf(p.w, format, strings.Repeat(". ", indent), n)
}
