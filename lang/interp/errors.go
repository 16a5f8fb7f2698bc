package interp

import "github.com/radanskoric/golox/lang/token"

// RuntimeError is a Lox runtime fault: a type mismatch, an undefined
// variable or property, an arity mismatch, or a call/get/set on a value
// that doesn't support it. Token is the token most relevant to the fault
// (an operator, a call's closing paren, a property name); the runner
// formats it as `Runtime error executing "LEXEME" on line N: MSG`.
type RuntimeError struct {
	Token token.Token
	Msg   string
}

func (e *RuntimeError) Error() string { return e.Msg }
