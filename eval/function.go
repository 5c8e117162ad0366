package eval

import (
	"yazz/lexer"
	"yazz/parser"
)

type Function struct {
	node          *parser.Function
	closure       *Environment
	isInitializer bool
	filename      string
}

func newFunction(filename string, node *parser.Function, closure *Environment, isInitializer bool) *Function {
	return &Function{
		node:          node,
		closure:       closure,
		isInitializer: isInitializer,
		filename:      filename,
	}
}

func (f *Function) Name() string { return f.node.Name.Lexeme }
func (f *Function) Arity() int   { return len(f.node.Params) }

// Bind returns a copy of f whose closure additionally defines `this'.
func (f *Function) Bind(instance *Instance) *Function {
	env := newEnvironment(f.closure)
	env.Define("this", instance)
	return newFunction(f.filename, f.node, env, f.isInitializer)
}

func (f *Function) Call(in *Interpreter, args []Value, site lexer.Token) (Value, error) {
	if in.maxDepth > 0 && len(in.stack) > in.maxDepth {
		return nil, ErrStackOverflow
	}
	in.pushFunc(functionCse{f})
	defer in.popFunc()

	env := newEnvironment(f.closure)
	for i, param := range f.node.Params {
		env.Define(param.Lexeme, args[i])
	}
	rv, err := in.executeBlock(f.node.Body, env)
	if err != nil {
		return nil, in.annotate(err)
	}
	if f.isInitializer {
		return f.closure.GetAt(0, "this"), nil
	}
	if ret, ok := rv.(Return); ok {
		return ret.value, nil
	}
	return NIL, nil
}
