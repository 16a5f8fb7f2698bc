package interp

import (
	"github.com/radanskoric/golox/lang/ast"
	"github.com/radanskoric/golox/lang/environment"
)

// Function is a user-declared function or method, paired with the
// environment it closed over at its declaration site.
type Function struct {
	Decl          *ast.FunctionStmt
	Closure       *environment.Environment[Value]
	IsInitializer bool
}

// NewFunction builds a Function declared by decl, closing over closure.
func NewFunction(decl *ast.FunctionStmt, closure *environment.Environment[Value], isInitializer bool) *Function {
	return &Function{Decl: decl, Closure: closure, IsInitializer: isInitializer}
}

var _ Callable = (*Function)(nil)

func (fn *Function) String() string { return "<fn " + fn.Decl.Name.Lexeme + ">" }
func (fn *Function) Type() string   { return "function" }
func (fn *Function) Arity() int     { return len(fn.Decl.Params) }

// Bind returns a copy of fn whose closure additionally defines "this" as
// instance.
func (fn *Function) Bind(instance *Instance) *Function {
	env := environment.NewEnclosedBy(fn.Closure)
	env.Define("this", Value(instance))
	return &Function{Decl: fn.Decl, Closure: env, IsInitializer: fn.IsInitializer}
}

// Call runs fn's body in a fresh environment enclosed by its closure, with
// parameters bound to args.
func (fn *Function) Call(in *Interpreter, args []Value) (Value, error) {
	env := environment.NewEnclosedBy(fn.Closure)
	for i, p := range fn.Decl.Params {
		env.Define(p.Lexeme, args[i])
	}

	result, err := in.executeBlock(fn.Decl.Body.Stmts, env)
	if err != nil {
		return nil, err
	}

	if fn.IsInitializer {
		// Always returns "this", whether the body falls through or executes
		// a bare "return;".
		this, _ := fn.Closure.GetAt(0, "this")
		return this, nil
	}
	if result.isReturn {
		return result.value, nil
	}
	return NilValue, nil
}
