// Package resolver implements the static pass that walks the AST produced by
// the parser and annotates every local variable reference with its lexical
// scope distance, so the interpreter's environment lookups never have to
// search. It also enforces Lox's static rules (no reading a local in its own
// initializer, "this"/"super" only inside a class, "return" only inside a
// function).
package resolver

import (
	"fmt"

	"github.com/radanskoric/golox/lang/ast"
	"github.com/radanskoric/golox/lang/token"
)

// Error is a single static-resolution error, positioned by line.
type Error struct {
	Line int
	Msg  string
}

func (e *Error) Error() string { return fmt.Sprintf("line %d: %s", e.Line, e.Msg) }

type functionType int

const (
	functionNone functionType = iota
	functionFunction
	functionInitializer
	functionMethod
)

type classType int

const (
	classNone classType = iota
	classClass
	classSubclass
)

// Locals maps a resolved Variable/Assign/This/Super expression to its scope
// distance: 0 means the innermost enclosing scope. Expressions absent from
// the map are global references.
type Locals map[ast.Expr]int

// Resolve statically resolves stmts and returns the resulting Locals table.
// Resolution stops and returns at the first error found.
func Resolve(stmts []ast.Stmt) (locals Locals, err error) {
	r := &scopeResolver{locals: Locals{}}

	defer func() {
		if rec := recover(); rec != nil {
			rerr, ok := rec.(*Error)
			if !ok {
				panic(rec)
			}
			err = rerr
		}
	}()

	for _, s := range stmts {
		r.resolveStmt(s)
	}
	return r.locals, nil
}

type scopeResolver struct {
	scopes          []map[string]bool
	locals          Locals
	currentFunction functionType
	currentClass    classType
}

func (r *scopeResolver) fail(line int, format string, args ...interface{}) {
	panic(&Error{Line: line, Msg: fmt.Sprintf(format, args...)})
}

func (r *scopeResolver) beginScope() { r.scopes = append(r.scopes, map[string]bool{}) }
func (r *scopeResolver) endScope()   { r.scopes = r.scopes[:len(r.scopes)-1] }

func (r *scopeResolver) declare(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	scope := r.scopes[len(r.scopes)-1]
	if _, ok := scope[name.Lexeme]; ok {
		r.fail(name.Line, "Already a variable with this name in this scope.")
	}
	scope[name.Lexeme] = false
}

func (r *scopeResolver) define(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name.Lexeme] = true
}

// resolveLocal finds the innermost scope that declares name and records the
// distance from the current scope. If no scope declares it, the reference is
// left unannotated and treated as global.
func (r *scopeResolver) resolveLocal(expr ast.Expr, name string) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name]; ok {
			r.locals[expr] = len(r.scopes) - 1 - i
			return
		}
	}
}

func (r *scopeResolver) resolveStmts(stmts []ast.Stmt) {
	for _, s := range stmts {
		r.resolveStmt(s)
	}
}

func (r *scopeResolver) resolveStmt(stmt ast.Stmt) {
	switch s := stmt.(type) {
	case *ast.BlockStmt:
		r.beginScope()
		r.resolveStmts(s.Stmts)
		r.endScope()

	case *ast.VarStmt:
		r.declare(s.Name)
		if s.Initializer != nil {
			r.resolveExpr(s.Initializer)
		}
		r.define(s.Name)

	case *ast.FunctionStmt:
		r.declare(s.Name)
		r.define(s.Name)
		r.resolveFunction(s, functionFunction)

	case *ast.ExpressionStmt:
		r.resolveExpr(s.Expr)

	case *ast.IfStmt:
		r.resolveExpr(s.Condition)
		r.resolveStmt(s.Then)
		if s.Else != nil {
			r.resolveStmt(s.Else)
		}

	case *ast.PrintStmt:
		r.resolveExpr(s.Expr)

	case *ast.ReturnStmt:
		if r.currentFunction == functionNone {
			r.fail(s.Keyword.Line, "Can't return from top-level code.")
		}
		if s.Value != nil {
			if r.currentFunction == functionInitializer {
				r.fail(s.Keyword.Line, "Can't return a value from an initializer.")
			}
			r.resolveExpr(s.Value)
		}

	case *ast.WhileStmt:
		r.resolveExpr(s.Condition)
		r.resolveStmt(s.Body)

	case *ast.ClassStmt:
		r.resolveClass(s)

	default:
		panic(fmt.Sprintf("resolver: unhandled statement type %T", stmt))
	}
}

func (r *scopeResolver) resolveFunction(fn *ast.FunctionStmt, ft functionType) {
	enclosingFunction := r.currentFunction
	r.currentFunction = ft

	r.beginScope()
	for _, param := range fn.Params {
		r.declare(param)
		r.define(param)
	}
	r.resolveStmts(fn.Body.Stmts)
	r.endScope()

	r.currentFunction = enclosingFunction
}

func (r *scopeResolver) resolveClass(s *ast.ClassStmt) {
	enclosingClass := r.currentClass
	r.currentClass = classClass

	r.declare(s.Name)
	r.define(s.Name)

	if s.Superclass != nil {
		if s.Superclass.Name.Lexeme == s.Name.Lexeme {
			r.fail(s.Superclass.Name.Line, "A class can't inherit from itself.")
		}
		r.currentClass = classSubclass
		r.resolveExpr(s.Superclass)

		r.beginScope()
		r.scopes[len(r.scopes)-1]["super"] = true
	}

	r.beginScope()
	r.scopes[len(r.scopes)-1]["this"] = true

	for _, method := range s.Methods {
		ft := functionMethod
		if method.Name.Lexeme == "init" {
			ft = functionInitializer
		}
		r.resolveFunction(method, ft)
	}

	r.endScope() // this

	if s.Superclass != nil {
		r.endScope() // super
	}

	r.currentClass = enclosingClass
}

func (r *scopeResolver) resolveExpr(expr ast.Expr) {
	switch e := expr.(type) {
	case *ast.VariableExpr:
		if len(r.scopes) > 0 {
			if defined, ok := r.scopes[len(r.scopes)-1][e.Name.Lexeme]; ok && !defined {
				r.fail(e.Name.Line, "Can't read local variable in its own initializer.")
			}
		}
		r.resolveLocal(e, e.Name.Lexeme)

	case *ast.AssignExpr:
		r.resolveExpr(e.Value)
		r.resolveLocal(e, e.Name.Lexeme)

	case *ast.BinaryExpr:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)

	case *ast.LogicalExpr:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)

	case *ast.UnaryExpr:
		r.resolveExpr(e.Right)

	case *ast.GroupingExpr:
		r.resolveExpr(e.Inner)

	case *ast.LiteralExpr:
		// no subexpressions, no variables

	case *ast.CallExpr:
		r.resolveExpr(e.Callee)
		for _, a := range e.Args {
			r.resolveExpr(a)
		}

	case *ast.GetExpr:
		r.resolveExpr(e.Object)

	case *ast.SetExpr:
		r.resolveExpr(e.Value)
		r.resolveExpr(e.Object)

	case *ast.ThisExpr:
		if r.currentClass == classNone {
			r.fail(e.Keyword.Line, "Can't use 'this' outside of a class.")
		}
		r.resolveLocal(e, "this")

	case *ast.SuperExpr:
		switch r.currentClass {
		case classNone:
			r.fail(e.Keyword.Line, "Can't use 'super' outside of a class.")
		case classClass:
			r.fail(e.Keyword.Line, "Can't use 'super' in a class with no superclass.")
		}
		r.resolveLocal(e, "super")

	default:
		panic(fmt.Sprintf("resolver: unhandled expression type %T", expr))
	}
}
