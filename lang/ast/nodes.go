// Package ast defines the tagged-variant abstract syntax tree produced by
// the parser and consumed by the resolver and interpreter. There is no
// subtype hierarchy: each expression or statement kind is its own struct
// carrying only the fields it needs, and consumers switch on the concrete
// type rather than double-dispatching through a per-kind visit method.
package ast

import (
	"fmt"
	"sort"
	"strings"
)

// Node is any node in the tree. Every Node implements fmt.Formatter so it
// can print a one-line description of itself (see format, below) and Walk so
// generic tools (currently only Printer) can traverse the tree without
// knowing every concrete node type.
type Node interface {
	fmt.Formatter
	Walk(v Visitor)
}

// Expr is any expression node.
type Expr interface {
	Node
	exprNode()
}

// Stmt is any statement node.
type Stmt interface {
	Node
	stmtNode()
}

// format renders a Node's debug label, honoring the same subset of fmt verbs
// and flags the node printer relies on: 'v'/'s' only, '#' to append child
// counts, a width to pad or truncate, '-' to pad right instead of left.
func format(f fmt.State, verb rune, n Node, label string, counts map[string]int) {
	if verb != 'v' && verb != 's' {
		fmt.Fprintf(f, "%%!%c(%T)", verb, n)
		return
	}

	label = strings.ReplaceAll(label, "\r\n", "⏎")
	label = strings.ReplaceAll(label, "\n", "⏎")
	label = strings.ReplaceAll(label, "\t", "⭾")

	if w, ok := f.Width(); ok {
		minus := f.Flag('-')
		runes := []rune(label)
		switch {
		case len(runes) >= w:
			runes = runes[:w]
		case minus:
			runes = append(runes, []rune(strings.Repeat(" ", w-len(runes)))...)
		default:
			runes = append([]rune(strings.Repeat(" ", w-len(runes))), runes...)
		}
		label = string(runes)
	}

	fmt.Fprint(f, label)
	if f.Flag('#') && len(counts) > 0 {
		keys := make([]string, 0, len(counts))
		for k := range counts {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		fmt.Fprint(f, " {")
		for i, k := range keys {
			if i > 0 {
				fmt.Fprint(f, ", ")
			}
			fmt.Fprintf(f, "%s=%d", k, counts[k])
		}
		fmt.Fprint(f, "}")
	}
}
