package interp

import (
	"fmt"
	"io"
	"time"

	"github.com/radanskoric/golox/lang/ast"
	"github.com/radanskoric/golox/lang/environment"
	"github.com/radanskoric/golox/lang/resolver"
	"github.com/radanskoric/golox/lang/token"
)

// Interpreter walks a program's statement list, evaluating expressions and
// executing statements against a chain of Environments. One Interpreter can
// run multiple top-level calls to Interpret against the same globals, which
// is what lets a REPL persist state across lines.
type Interpreter struct {
	globals *environment.Environment[Value]
	env     *environment.Environment[Value]
	locals  resolver.Locals
	out     io.Writer
}

// New builds an Interpreter whose print output goes to out, annotated by
// locals (the Resolver's scope-distance table). The global environment is
// seeded with the "clock" native function.
func New(locals resolver.Locals, out io.Writer) *Interpreter {
	globals := environment.New[Value]()
	globals.Define("clock", &NativeFunction{
		Name:   "clock",
		ArityN: 0,
		Fn: func(_ *Interpreter, _ []Value) (Value, error) {
			return Number(float64(time.Now().UnixNano()) / 1e9), nil
		},
	})
	return &Interpreter{globals: globals, env: globals, locals: locals, out: out}
}

// Interpret executes stmts in order, stopping at the first runtime error.
func (in *Interpreter) Interpret(stmts []ast.Stmt) error {
	for _, s := range stmts {
		if _, err := in.execStmt(s); err != nil {
			return err
		}
	}
	return nil
}

// execResult carries a non-local return value up through nested statement
// execution: an explicit sentinel the call site checks, rather than a panic,
// so return never needs exception-style control flow. isReturn is false for
// every statement that doesn't terminate in a return.
type execResult struct {
	isReturn bool
	value    Value
}

var noResult = execResult{}

func (in *Interpreter) execStmt(stmt ast.Stmt) (execResult, error) {
	switch s := stmt.(type) {
	case *ast.ExpressionStmt:
		_, err := in.evalExpr(s.Expr)
		return noResult, err

	case *ast.PrintStmt:
		v, err := in.evalExpr(s.Expr)
		if err != nil {
			return noResult, err
		}
		fmt.Fprintln(in.out, stringify(v))
		return noResult, nil

	case *ast.VarStmt:
		var v Value = NilValue
		if s.Initializer != nil {
			var err error
			v, err = in.evalExpr(s.Initializer)
			if err != nil {
				return noResult, err
			}
		}
		in.env.Define(s.Name.Lexeme, v)
		return noResult, nil

	case *ast.BlockStmt:
		return in.executeBlock(s.Stmts, environment.NewEnclosedBy(in.env))

	case *ast.IfStmt:
		cond, err := in.evalExpr(s.Condition)
		if err != nil {
			return noResult, err
		}
		if truthy(cond) {
			return in.execStmt(s.Then)
		}
		if s.Else != nil {
			return in.execStmt(s.Else)
		}
		return noResult, nil

	case *ast.WhileStmt:
		for {
			cond, err := in.evalExpr(s.Condition)
			if err != nil {
				return noResult, err
			}
			if !truthy(cond) {
				return noResult, nil
			}
			result, err := in.execStmt(s.Body)
			if err != nil {
				return noResult, err
			}
			if result.isReturn {
				return result, nil
			}
		}

	case *ast.FunctionStmt:
		in.env.Define(s.Name.Lexeme, NewFunction(s, in.env, false))
		return noResult, nil

	case *ast.ReturnStmt:
		v := Value(NilValue)
		if s.Value != nil {
			var err error
			v, err = in.evalExpr(s.Value)
			if err != nil {
				return noResult, err
			}
		}
		return execResult{isReturn: true, value: v}, nil

	case *ast.ClassStmt:
		return noResult, in.execClassStmt(s)

	default:
		panic(fmt.Sprintf("interp: unhandled statement type %T", stmt))
	}
}

// executeBlock runs stmts in newEnv, restoring the interpreter's previous
// environment on return (whether normal or via a propagated return/error).
func (in *Interpreter) executeBlock(stmts []ast.Stmt, newEnv *environment.Environment[Value]) (execResult, error) {
	previous := in.env
	in.env = newEnv
	defer func() { in.env = previous }()

	for _, s := range stmts {
		result, err := in.execStmt(s)
		if err != nil {
			return noResult, err
		}
		if result.isReturn {
			return result, nil
		}
	}
	return noResult, nil
}

// execClassStmt defines the class's name first (so methods can refer to it
// recursively), evaluates the superclass expression if any, pushes a "super"
// scope around method-closure creation so each method's closure can see it,
// builds the class's method table, pops the "super" scope, and finally
// assigns the constructed Class back over the placeholder name.
func (in *Interpreter) execClassStmt(s *ast.ClassStmt) error {
	enclosing := in.env
	in.env.Define(s.Name.Lexeme, NilValue)

	var super *Class
	if s.Superclass != nil {
		v, err := in.evalExpr(s.Superclass)
		if err != nil {
			return err
		}
		sc, ok := v.(*Class)
		if !ok {
			return &RuntimeError{Token: s.Superclass.Name, Msg: "Superclass must be a class."}
		}
		super = sc
		in.env = environment.NewEnclosedBy(in.env)
		in.env.Define("super", Value(super))
	}

	methods := make(map[string]*Function, len(s.Methods))
	for _, m := range s.Methods {
		methods[m.Name.Lexeme] = NewFunction(m, in.env, m.Name.Lexeme == "init")
	}

	class := &Class{Name: s.Name.Lexeme, Superclass: super, Methods: methods}

	in.env = enclosing
	return in.env.Assign(s.Name.Lexeme, class)
}

func (in *Interpreter) evalExpr(expr ast.Expr) (Value, error) {
	switch e := expr.(type) {
	case *ast.LiteralExpr:
		return literalValue(e.Value), nil

	case *ast.GroupingExpr:
		return in.evalExpr(e.Inner)

	case *ast.UnaryExpr:
		return in.evalUnary(e)

	case *ast.BinaryExpr:
		return in.evalBinary(e)

	case *ast.LogicalExpr:
		left, err := in.evalExpr(e.Left)
		if err != nil {
			return nil, err
		}
		if e.Op.Kind == token.OR {
			if truthy(left) {
				return left, nil
			}
		} else if !truthy(left) {
			return left, nil
		}
		return in.evalExpr(e.Right)

	case *ast.VariableExpr:
		return in.lookUpVariable(e.Name, e)

	case *ast.AssignExpr:
		v, err := in.evalExpr(e.Value)
		if err != nil {
			return nil, err
		}
		if err := in.assignVariable(e.Name, e, v); err != nil {
			return nil, err
		}
		return v, nil

	case *ast.CallExpr:
		return in.evalCall(e)

	case *ast.GetExpr:
		obj, err := in.evalExpr(e.Object)
		if err != nil {
			return nil, err
		}
		inst, ok := obj.(*Instance)
		if !ok {
			return nil, &RuntimeError{Token: e.Name, Msg: "Only instances have properties."}
		}
		return inst.Get(e.Name)

	case *ast.SetExpr:
		obj, err := in.evalExpr(e.Object)
		if err != nil {
			return nil, err
		}
		inst, ok := obj.(*Instance)
		if !ok {
			return nil, &RuntimeError{Token: e.Name, Msg: "Only instances have fields."}
		}
		v, err := in.evalExpr(e.Value)
		if err != nil {
			return nil, err
		}
		inst.Set(e.Name, v)
		return v, nil

	case *ast.ThisExpr:
		return in.lookUpVariable(e.Keyword, e)

	case *ast.SuperExpr:
		return in.evalSuper(e)

	default:
		panic(fmt.Sprintf("interp: unhandled expression type %T", expr))
	}
}

func literalValue(v interface{}) Value {
	switch val := v.(type) {
	case nil:
		return NilValue
	case bool:
		return Bool(val)
	case float64:
		return Number(val)
	case string:
		return String(val)
	default:
		panic(fmt.Sprintf("interp: unhandled literal value %#v", v))
	}
}

func (in *Interpreter) evalUnary(e *ast.UnaryExpr) (Value, error) {
	right, err := in.evalExpr(e.Right)
	if err != nil {
		return nil, err
	}
	switch e.Op.Kind {
	case token.MINUS:
		n, ok := right.(Number)
		if !ok {
			return nil, &RuntimeError{Token: e.Op, Msg: "Operand must be a number."}
		}
		return -n, nil
	case token.BANG:
		return Bool(!truthy(right)), nil
	default:
		panic(fmt.Sprintf("interp: unhandled unary operator %s", e.Op.Kind))
	}
}

func (in *Interpreter) evalBinary(e *ast.BinaryExpr) (Value, error) {
	left, err := in.evalExpr(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := in.evalExpr(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Op.Kind {
	case token.PLUS:
		if ln, ok := left.(Number); ok {
			if rn, ok := right.(Number); ok {
				return ln + rn, nil
			}
		}
		if ls, ok := left.(String); ok {
			if rs, ok := right.(String); ok {
				return ls + rs, nil
			}
		}
		return nil, &RuntimeError{Token: e.Op, Msg: "Operands must be two numbers or two strings."}

	case token.MINUS, token.SLASH, token.STAR,
		token.GREATER, token.GREATER_EQ, token.LESS, token.LESS_EQ:
		ln, lok := left.(Number)
		rn, rok := right.(Number)
		if !lok || !rok {
			return nil, &RuntimeError{Token: e.Op, Msg: "Operands must be numbers."}
		}
		switch e.Op.Kind {
		case token.MINUS:
			return ln - rn, nil
		case token.SLASH:
			return ln / rn, nil
		case token.STAR:
			return ln * rn, nil
		case token.GREATER:
			return Bool(ln > rn), nil
		case token.GREATER_EQ:
			return Bool(ln >= rn), nil
		case token.LESS:
			return Bool(ln < rn), nil
		case token.LESS_EQ:
			return Bool(ln <= rn), nil
		}

	case token.BANG_EQ:
		return Bool(!isEqual(left, right)), nil
	case token.EQUAL_EQ:
		return Bool(isEqual(left, right)), nil
	}

	panic(fmt.Sprintf("interp: unhandled binary operator %s", e.Op.Kind))
}

func (in *Interpreter) evalCall(e *ast.CallExpr) (Value, error) {
	callee, err := in.evalExpr(e.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]Value, len(e.Args))
	for i, a := range e.Args {
		v, err := in.evalExpr(a)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	callable, ok := callee.(Callable)
	if !ok {
		return nil, &RuntimeError{Token: e.Paren, Msg: "Can only call functions and classes."}
	}
	if len(args) != callable.Arity() {
		return nil, &RuntimeError{
			Token: e.Paren,
			Msg:   fmt.Sprintf("Expected %d arguments but got %d.", callable.Arity(), len(args)),
		}
	}
	return callable.Call(in, args)
}

func (in *Interpreter) evalSuper(e *ast.SuperExpr) (Value, error) {
	dist := in.locals[e]

	superVal, err := in.env.GetAt(dist, "super")
	if err != nil {
		return nil, &RuntimeError{Token: e.Keyword, Msg: err.Error()}
	}
	thisVal, err := in.env.GetAt(dist-1, "this")
	if err != nil {
		return nil, &RuntimeError{Token: e.Keyword, Msg: err.Error()}
	}

	super := superVal.(*Class)
	instance := thisVal.(*Instance)

	method := super.FindMethod(e.Method.Lexeme)
	if method == nil {
		return nil, &RuntimeError{Token: e.Method, Msg: fmt.Sprintf("Undefined property '%s'.", e.Method.Lexeme)}
	}
	return method.Bind(instance), nil
}

func (in *Interpreter) lookUpVariable(name token.Token, expr ast.Expr) (Value, error) {
	if dist, ok := in.locals[expr]; ok {
		v, err := in.env.GetAt(dist, name.Lexeme)
		if err != nil {
			return nil, &RuntimeError{Token: name, Msg: err.Error()}
		}
		return v, nil
	}
	v, err := in.globals.Get(name.Lexeme)
	if err != nil {
		return nil, &RuntimeError{Token: name, Msg: err.Error()}
	}
	return v, nil
}

func (in *Interpreter) assignVariable(name token.Token, expr ast.Expr, value Value) error {
	if dist, ok := in.locals[expr]; ok {
		if err := in.env.AssignAt(dist, name.Lexeme, value); err != nil {
			return &RuntimeError{Token: name, Msg: err.Error()}
		}
		return nil
	}
	if err := in.globals.Assign(name.Lexeme, value); err != nil {
		return &RuntimeError{Token: name, Msg: err.Error()}
	}
	return nil
}
