// Package environment implements a lexically-scoped variable map chain:
// each Environment holds its own bindings and a reference to the scope it is
// nested in, and a distance-indexed lookup lets the interpreter resolve a
// variable read/write without searching by name once the resolver has
// annotated how many scopes to walk out.
//
// The value map is backed by a swiss-table (github.com/dolthub/swiss,
// replaced to github.com/mna/swiss) for its hot string-keyed lookups —
// variable scopes are exactly that here.
package environment

import (
	"fmt"

	"github.com/dolthub/swiss"
)

// UndefinedVariableError is returned by Get/Assign/GetAt/AssignAt when name
// is not bound in any reachable scope.
type UndefinedVariableError struct {
	Name string
}

func (e *UndefinedVariableError) Error() string {
	return fmt.Sprintf("Undefined variable '%s'.", e.Name)
}

// Environment is a single lexical scope: a name-to-value map, linked to the
// scope it is nested in (nil for the global scope).
type Environment[V any] struct {
	values    *swiss.Map[string, V]
	enclosing *Environment[V]
}

// New creates a scope with no enclosing scope (the global scope).
func New[V any]() *Environment[V] {
	return &Environment[V]{values: swiss.NewMap[string, V](8)}
}

// NewEnclosedBy creates a scope nested directly inside enclosing, e.g. for a
// block, function call, or method binding.
func NewEnclosedBy[V any](enclosing *Environment[V]) *Environment[V] {
	e := New[V]()
	e.enclosing = enclosing
	return e
}

// Define unconditionally binds name to value in this scope, shadowing any
// binding of the same name in an enclosing scope.
func (e *Environment[V]) Define(name string, value V) {
	e.values.Put(name, value)
}

// Get returns the value bound to name, searching this scope and then each
// enclosing scope in turn.
func (e *Environment[V]) Get(name string) (V, error) {
	if v, ok := e.values.Get(name); ok {
		return v, nil
	}
	if e.enclosing != nil {
		return e.enclosing.Get(name)
	}
	var zero V
	return zero, &UndefinedVariableError{Name: name}
}

// Assign updates the existing binding for name, searching this scope and
// then each enclosing scope in turn. It does not create a new binding.
func (e *Environment[V]) Assign(name string, value V) error {
	if _, ok := e.values.Get(name); ok {
		e.values.Put(name, value)
		return nil
	}
	if e.enclosing != nil {
		return e.enclosing.Assign(name, value)
	}
	return &UndefinedVariableError{Name: name}
}

func (e *Environment[V]) ancestor(distance int) *Environment[V] {
	env := e
	for i := 0; i < distance; i++ {
		env = env.enclosing
	}
	return env
}

// GetAt returns the value bound to name in the scope exactly distance
// enclosing links away (0 is this scope itself), as computed by the
// resolver. It does not search further out than that scope.
func (e *Environment[V]) GetAt(distance int, name string) (V, error) {
	env := e.ancestor(distance)
	if v, ok := env.values.Get(name); ok {
		return v, nil
	}
	var zero V
	return zero, &UndefinedVariableError{Name: name}
}

// AssignAt updates the binding for name in the scope exactly distance
// enclosing links away (0 is this scope itself).
func (e *Environment[V]) AssignAt(distance int, name string, value V) error {
	env := e.ancestor(distance)
	if _, ok := env.values.Get(name); !ok {
		return &UndefinedVariableError{Name: name}
	}
	env.values.Put(name, value)
	return nil
}
