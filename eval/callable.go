package eval

import "yazz/lexer"

// Callable is anything that can appear in callee position: natives,
// user functions and classes.
type Callable interface {
	Value
	Arity() int
	Call(in *Interpreter, args []Value, site lexer.Token) (Value, error)
}

type nativeFunc func(in *Interpreter, args []Value, site lexer.Token) (Value, error)

// NativeFunction represents a built-in function
type NativeFunction struct {
	name  string
	arity int
	call  nativeFunc
}

func newNative(name string, arity int, call nativeFunc) *NativeFunction {
	return &NativeFunction{
		name:  name,
		arity: arity,
		call:  call,
	}
}

func (n *NativeFunction) Name() string { return n.name }
func (n *NativeFunction) Arity() int   { return n.arity }

func (n *NativeFunction) Call(in *Interpreter, args []Value, site lexer.Token) (Value, error) {
	in.pushFunc(builtinCse{n})
	defer in.popFunc()
	return n.call(in, args, site)
}
