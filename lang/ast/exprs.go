package ast

import (
	"fmt"

	"github.com/radanskoric/golox/lang/token"
)

type (
	// BinaryExpr represents a binary arithmetic or comparison expression,
	// e.g. x + y.
	BinaryExpr struct {
		Left  Expr
		Op    token.Token
		Right Expr
	}

	// LogicalExpr represents an "and"/"or" expression. Unlike BinaryExpr, its
	// operands are evaluated lazily (short-circuit) and the result is one of
	// the operand values, not a coerced boolean.
	LogicalExpr struct {
		Left  Expr
		Op    token.Token
		Right Expr
	}

	// UnaryExpr represents a unary expression, e.g. -x or !x.
	UnaryExpr struct {
		Op    token.Token
		Right Expr
	}

	// GroupingExpr represents a parenthesized expression.
	GroupingExpr struct {
		Inner Expr
	}

	// LiteralExpr represents a literal value: nil, a bool, a float64, or a
	// string.
	LiteralExpr struct {
		Value interface{}
		// Tok is the literal's originating token, kept for error reporting and
		// AST printing.
		Tok token.Token
	}

	// VariableExpr represents a read of a variable by name.
	VariableExpr struct {
		Name token.Token
	}

	// AssignExpr represents an assignment to a variable, e.g. x = y.
	AssignExpr struct {
		Name  token.Token
		Value Expr
	}

	// CallExpr represents a function or method call, e.g. f(a, b).
	CallExpr struct {
		Callee Expr
		Paren  token.Token // closing ')', used for error line reporting
		Args   []Expr
	}

	// GetExpr represents a property read, e.g. obj.field.
	GetExpr struct {
		Object Expr
		Name   token.Token
	}

	// SetExpr represents a property write, e.g. obj.field = value.
	SetExpr struct {
		Object Expr
		Name   token.Token
		Value  Expr
	}

	// ThisExpr represents a use of "this" inside a method.
	ThisExpr struct {
		Keyword token.Token
	}

	// SuperExpr represents a "super.method" reference inside a subclass
	// method.
	SuperExpr struct {
		Keyword token.Token
		Method  token.Token
	}
)

func (*BinaryExpr) exprNode()   {}
func (*LogicalExpr) exprNode()  {}
func (*UnaryExpr) exprNode()    {}
func (*GroupingExpr) exprNode() {}
func (*LiteralExpr) exprNode()  {}
func (*VariableExpr) exprNode() {}
func (*AssignExpr) exprNode()   {}
func (*CallExpr) exprNode()     {}
func (*GetExpr) exprNode()      {}
func (*SetExpr) exprNode()      {}
func (*ThisExpr) exprNode()     {}
func (*SuperExpr) exprNode()    {}

func (n *BinaryExpr) Format(f fmt.State, verb rune) {
	format(f, verb, n, "binary "+n.Op.Kind.String(), nil)
}
func (n *BinaryExpr) Walk(v Visitor) { Walk(v, n.Left); Walk(v, n.Right) }

func (n *LogicalExpr) Format(f fmt.State, verb rune) {
	format(f, verb, n, "logical "+n.Op.Kind.String(), nil)
}
func (n *LogicalExpr) Walk(v Visitor) { Walk(v, n.Left); Walk(v, n.Right) }

func (n *UnaryExpr) Format(f fmt.State, verb rune) {
	format(f, verb, n, "unary "+n.Op.Kind.String(), nil)
}
func (n *UnaryExpr) Walk(v Visitor) { Walk(v, n.Right) }

func (n *GroupingExpr) Format(f fmt.State, verb rune) { format(f, verb, n, "grouping", nil) }
func (n *GroupingExpr) Walk(v Visitor)                { Walk(v, n.Inner) }

func (n *LiteralExpr) Format(f fmt.State, verb rune) {
	format(f, verb, n, fmt.Sprintf("literal %v", n.Value), nil)
}
func (n *LiteralExpr) Walk(_ Visitor) {}

func (n *VariableExpr) Format(f fmt.State, verb rune) {
	format(f, verb, n, "variable "+n.Name.Lexeme, nil)
}
func (n *VariableExpr) Walk(_ Visitor) {}

func (n *AssignExpr) Format(f fmt.State, verb rune) {
	format(f, verb, n, "assign "+n.Name.Lexeme, nil)
}
func (n *AssignExpr) Walk(v Visitor) { Walk(v, n.Value) }

func (n *CallExpr) Format(f fmt.State, verb rune) {
	format(f, verb, n, "call", map[string]int{"args": len(n.Args)})
}
func (n *CallExpr) Walk(v Visitor) {
	Walk(v, n.Callee)
	for _, a := range n.Args {
		Walk(v, a)
	}
}

func (n *GetExpr) Format(f fmt.State, verb rune) { format(f, verb, n, "get "+n.Name.Lexeme, nil) }
func (n *GetExpr) Walk(v Visitor)                { Walk(v, n.Object) }

func (n *SetExpr) Format(f fmt.State, verb rune) { format(f, verb, n, "set "+n.Name.Lexeme, nil) }
func (n *SetExpr) Walk(v Visitor)                { Walk(v, n.Object); Walk(v, n.Value) }

func (n *ThisExpr) Format(f fmt.State, verb rune) { format(f, verb, n, "this", nil) }
func (n *ThisExpr) Walk(_ Visitor)                {}

func (n *SuperExpr) Format(f fmt.State, verb rune) {
	format(f, verb, n, "super "+n.Method.Lexeme, nil)
}
func (n *SuperExpr) Walk(_ Visitor) {}
