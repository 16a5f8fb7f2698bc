package ast

import (
	"fmt"

	"github.com/radanskoric/golox/lang/token"
)

type (
	// ExpressionStmt represents an expression evaluated for its side effects.
	ExpressionStmt struct {
		Expr Expr
	}

	// PrintStmt represents a "print expr;" statement.
	PrintStmt struct {
		Keyword token.Token
		Expr    Expr
	}

	// VarStmt represents a "var name = initializer;" declaration. Initializer
	// is nil if the declaration has no initializer (the variable is bound to
	// nil).
	VarStmt struct {
		Name        token.Token
		Initializer Expr
	}

	// BlockStmt represents a "{ ... }" block, introducing a new lexical
	// scope.
	BlockStmt struct {
		Stmts []Stmt
	}

	// IfStmt represents an "if (cond) then [else else]" statement. Else is
	// nil if there is no else branch.
	IfStmt struct {
		Condition Expr
		Then      Stmt
		Else      Stmt
	}

	// WhileStmt represents a "while (cond) body" statement.
	WhileStmt struct {
		Condition Expr
		Body      Stmt
	}

	// FunctionStmt represents a function (or method) declaration.
	FunctionStmt struct {
		Name   token.Token
		Params []token.Token
		Body   *BlockStmt
	}

	// ReturnStmt represents a "return [value];" statement.
	ReturnStmt struct {
		Keyword token.Token
		Value   Expr // nil if the return has no value
	}

	// ClassStmt represents a class declaration, with an optional superclass
	// reference and a list of method declarations.
	ClassStmt struct {
		Name       token.Token
		Superclass *VariableExpr // nil if the class has no superclass
		Methods    []*FunctionStmt
	}
)

func (*ExpressionStmt) stmtNode() {}
func (*PrintStmt) stmtNode()      {}
func (*VarStmt) stmtNode()        {}
func (*BlockStmt) stmtNode()      {}
func (*IfStmt) stmtNode()         {}
func (*WhileStmt) stmtNode()      {}
func (*FunctionStmt) stmtNode()   {}
func (*ReturnStmt) stmtNode()     {}
func (*ClassStmt) stmtNode()      {}

func (n *ExpressionStmt) Format(f fmt.State, verb rune) { format(f, verb, n, "expr stmt", nil) }
func (n *ExpressionStmt) Walk(v Visitor)                { Walk(v, n.Expr) }

func (n *PrintStmt) Format(f fmt.State, verb rune) { format(f, verb, n, "print", nil) }
func (n *PrintStmt) Walk(v Visitor)                { Walk(v, n.Expr) }

func (n *VarStmt) Format(f fmt.State, verb rune) { format(f, verb, n, "var "+n.Name.Lexeme, nil) }
func (n *VarStmt) Walk(v Visitor) {
	if n.Initializer != nil {
		Walk(v, n.Initializer)
	}
}

func (n *BlockStmt) Format(f fmt.State, verb rune) {
	format(f, verb, n, "block", map[string]int{"stmts": len(n.Stmts)})
}
func (n *BlockStmt) Walk(v Visitor) {
	for _, s := range n.Stmts {
		Walk(v, s)
	}
}

func (n *IfStmt) Format(f fmt.State, verb rune) { format(f, verb, n, "if", nil) }
func (n *IfStmt) Walk(v Visitor) {
	Walk(v, n.Condition)
	Walk(v, n.Then)
	if n.Else != nil {
		Walk(v, n.Else)
	}
}

func (n *WhileStmt) Format(f fmt.State, verb rune) { format(f, verb, n, "while", nil) }
func (n *WhileStmt) Walk(v Visitor) {
	Walk(v, n.Condition)
	Walk(v, n.Body)
}

func (n *FunctionStmt) Format(f fmt.State, verb rune) {
	format(f, verb, n, "fun "+n.Name.Lexeme, map[string]int{"params": len(n.Params)})
}
func (n *FunctionStmt) Walk(v Visitor) { Walk(v, n.Body) }

func (n *ReturnStmt) Format(f fmt.State, verb rune) { format(f, verb, n, "return", nil) }
func (n *ReturnStmt) Walk(v Visitor) {
	if n.Value != nil {
		Walk(v, n.Value)
	}
}

func (n *ClassStmt) Format(f fmt.State, verb rune) {
	format(f, verb, n, "class "+n.Name.Lexeme, map[string]int{"methods": len(n.Methods)})
}
func (n *ClassStmt) Walk(v Visitor) {
	if n.Superclass != nil {
		Walk(v, n.Superclass)
	}
	for _, m := range n.Methods {
		Walk(v, m)
	}
}
