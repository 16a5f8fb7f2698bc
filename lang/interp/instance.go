package interp

import (
	"fmt"

	"github.com/dolthub/swiss"

	"github.com/radanskoric/golox/lang/token"
)

// Instance is a runtime instance of a Class: the class it was constructed
// from, plus a mutable field map keyed by property lexeme. Backed by a
// swiss-table map for its hot string-keyed lookups.
type Instance struct {
	Class  *Class
	fields *swiss.Map[string, Value]
}

// NewInstance constructs an Instance of class with no fields set.
func NewInstance(class *Class) *Instance {
	return &Instance{Class: class, fields: swiss.NewMap[string, Value](4)}
}

func (i *Instance) String() string { return i.Class.Name + " instance" }
func (i *Instance) Type() string   { return "instance" }

// Get resolves a property read: a field takes priority over a method of the
// same name; methods are bound to i before being returned.
func (i *Instance) Get(name token.Token) (Value, error) {
	if v, ok := i.fields.Get(name.Lexeme); ok {
		return v, nil
	}
	if m := i.Class.FindMethod(name.Lexeme); m != nil {
		return m.Bind(i), nil
	}
	return nil, &RuntimeError{Token: name, Msg: fmt.Sprintf("Undefined property '%s'.", name.Lexeme)}
}

// Set stores value into i's field map under name's lexeme, creating the
// field if it doesn't already exist.
func (i *Instance) Set(name token.Token, value Value) {
	i.fields.Put(name.Lexeme, value)
}
