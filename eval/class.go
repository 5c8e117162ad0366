package eval

import "yazz/lexer"

type Class struct {
	name       string
	superclass *Class
	methods    map[string]*Function
}

func newClass(name string, superclass *Class, methods map[string]*Function) *Class {
	return &Class{
		name:       name,
		superclass: superclass,
		methods:    methods,
	}
}

func (c *Class) Name() string { return c.name }

// FindMethod looks for an unbound method in the class, and then
// along the superclass chain.
func (c *Class) FindMethod(name string) *Function {
	for class := c; class != nil; class = class.superclass {
		if fn, ok := class.methods[name]; ok {
			return fn
		}
	}
	return nil
}

func (c *Class) Arity() int {
	if init := c.FindMethod("init"); init != nil {
		return init.Arity()
	}
	return 0
}

func (c *Class) Call(in *Interpreter, args []Value, site lexer.Token) (Value, error) {
	instance := newInstance(c)
	if init := c.FindMethod("init"); init != nil {
		if _, err := init.Bind(instance).Call(in, args, site); err != nil {
			return nil, err
		}
	}
	return instance, nil
}

type Instance struct {
	class  *Class
	fields map[string]Value
}

func newInstance(class *Class) *Instance {
	return &Instance{
		class:  class,
		fields: map[string]Value{},
	}
}

func (i *Instance) Class() *Class { return i.class }

// Get looks the name up in the fields first, so that a field
// shadows a method of the same name.
func (i *Instance) Get(name lexer.Token) (Value, error) {
	if v, ok := i.fields[name.Lexeme]; ok {
		return v, nil
	}
	if method := i.class.FindMethod(name.Lexeme); method != nil {
		return method.Bind(i), nil
	}
	return nil, newRuntimeError(UndefinedProperty, name, "Undefined property '%s'.", name.Lexeme)
}

func (i *Instance) Set(name lexer.Token, value Value) {
	i.fields[name.Lexeme] = value
}
