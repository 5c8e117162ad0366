package eval

import (
	"fmt"
	"yazz/lexer"
)

type Environment struct {
	store map[string]Value
	outer *Environment
}

func newEnvironment(outer *Environment) *Environment {
	return &Environment{
		store: map[string]Value{},
		outer: outer,
	}
}

// Define binds the given name to the given value, overwriting any
// existing binding in this frame.
func (e *Environment) Define(name string, value Value) {
	e.store[name] = value
}

// Get looks the name up in this frame only. It is used for globals,
// where the resolver recorded no distance.
func (e *Environment) Get(name lexer.Token) (Value, error) {
	if v, ok := e.store[name.Lexeme]; ok {
		return v, nil
	}
	return nil, newRuntimeError(UndefinedVariable, name, "Undefined variable '%s'.", name.Lexeme)
}

// Assign updates the nearest frame that defines the name.
func (e *Environment) Assign(name lexer.Token, value Value) error {
	for env := e; env != nil; env = env.outer {
		if _, ok := env.store[name.Lexeme]; ok {
			env.store[name.Lexeme] = value
			return nil
		}
	}
	return newRuntimeError(UndefinedVariable, name, "Undefined variable '%s'.", name.Lexeme)
}

// Ancestor returns the environment that is distance x
// away from the current environment.
func (e *Environment) Ancestor(distance int) *Environment {
	for distance > 0 {
		distance--
		e = e.outer
	}
	return e
}

// GetAt gets the variable name at the environment that is distance x
// away from the current environment.
func (e *Environment) GetAt(distance int, name string) Value {
	v, ok := e.Ancestor(distance).store[name]
	if !ok {
		panic(fmt.Sprintf("unresolved variable %q at distance %d", name, distance))
	}
	return v
}

func (e *Environment) AssignAt(distance int, name string, value Value) {
	env := e.Ancestor(distance)
	if _, ok := env.store[name]; !ok {
		panic(fmt.Sprintf("unresolved variable %q at distance %d", name, distance))
	}
	env.store[name] = value
}
