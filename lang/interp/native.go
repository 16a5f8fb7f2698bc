package interp

// NativeFunction is a Callable implemented in Go rather than declared in
// Lox source. The only one golox's global environment seeds is "clock".
type NativeFunction struct {
	Name   string
	ArityN int
	Fn     func(in *Interpreter, args []Value) (Value, error)
}

var _ Callable = (*NativeFunction)(nil)

func (n *NativeFunction) String() string { return "<native fn " + n.Name + ">" }
func (n *NativeFunction) Type() string   { return "native function" }
func (n *NativeFunction) Arity() int     { return n.ArityN }

func (n *NativeFunction) Call(in *Interpreter, args []Value) (Value, error) {
	return n.Fn(in, args)
}
