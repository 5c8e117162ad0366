package eval

import (
	"fmt"
	"yazz/parser"
)

// ==========
// Statements
// ==========
//
// execute returns NIL, or a Return signal that must be propagated up
// to the nearest function call.

func (in *Interpreter) execute(node parser.Stmt) (Value, error) {
	switch node := node.(type) {
	case *parser.ExprStmt:
		if _, err := in.evaluate(node.Expr); err != nil {
			return nil, err
		}
		return NIL, nil
	case *parser.Var:
		return in.execVar(node)
	case *parser.Block:
		return in.executeBlock(node.Stmts, newEnvironment(in.env))
	case *parser.If:
		return in.execIf(node)
	case *parser.While:
		return in.execWhile(node)
	case *parser.Print:
		return in.execPrint(node)
	case *parser.Return:
		return in.execReturn(node)
	case *parser.Function:
		fn := newFunction(in.currFunc().Filename(), node, in.env, false)
		in.env.Define(node.Name.Lexeme, fn)
		return NIL, nil
	case *parser.Class:
		return in.execClass(node)
	}
	panic(fmt.Sprintf("unhandled node %#+v", node))
}

// executeBlock runs the statements in the given environment, restoring
// the current one however the block is left.
func (in *Interpreter) executeBlock(stmts []parser.Stmt, env *Environment) (Value, error) {
	old_env := in.env
	in.env = env
	defer func() { in.env = old_env }()
	for _, stmt := range stmts {
		rv, err := in.execute(stmt)
		if err != nil || isReturn(rv) {
			return rv, err
		}
	}
	return NIL, nil
}

func (in *Interpreter) execVar(node *parser.Var) (Value, error) {
	value := Value(NIL)
	if node.Init != nil {
		v, err := in.evaluate(node.Init)
		if err != nil {
			return nil, err
		}
		value = v
	}
	in.env.Define(node.Name.Lexeme, value)
	return NIL, nil
}

func (in *Interpreter) execIf(node *parser.If) (Value, error) {
	cond, err := in.evaluate(node.Cond)
	if err != nil {
		return nil, err
	}
	if isTruthy(cond) {
		return in.execute(node.Then)
	}
	if node.Else != nil {
		return in.execute(node.Else)
	}
	return NIL, nil
}

func (in *Interpreter) execWhile(node *parser.While) (Value, error) {
	for {
		cond, err := in.evaluate(node.Cond)
		if err != nil {
			return nil, err
		}
		if !isTruthy(cond) {
			break
		}
		rv, err := in.execute(node.Body)
		if err != nil || isReturn(rv) {
			return rv, err
		}
	}
	return NIL, nil
}

func (in *Interpreter) execPrint(node *parser.Print) (Value, error) {
	v, err := in.evaluate(node.Expr)
	if err != nil {
		return nil, err
	}
	fmt.Fprintln(in.stdout, Stringify(v))
	return NIL, nil
}

func (in *Interpreter) execReturn(node *parser.Return) (Value, error) {
	if node.Value == nil {
		return Return{NIL}, nil
	}
	v, err := in.evaluate(node.Value)
	if err != nil {
		return nil, err
	}
	return Return{v}, nil
}

func (in *Interpreter) execClass(node *parser.Class) (Value, error) {
	var superclass *Class
	if node.Superclass != nil {
		v, err := in.evaluate(node.Superclass)
		if err != nil {
			return nil, err
		}
		class, ok := v.(*Class)
		if !ok {
			return nil, newRuntimeError(TypeError, node.Superclass.Name, "Superclass must be a class.")
		}
		superclass = class
	}

	in.env.Define(node.Name.Lexeme, NIL)

	env := in.env
	if superclass != nil {
		env = newEnvironment(env)
		env.Define("super", superclass)
	}

	filename := in.currFunc().Filename()
	methods := make(map[string]*Function, len(node.Methods))
	for _, method := range node.Methods {
		name := method.Name.Lexeme
		methods[name] = newFunction(filename, method, env, name == "init")
	}

	class := newClass(node.Name.Lexeme, superclass, methods)
	if err := in.env.Assign(node.Name, class); err != nil {
		return nil, err
	}
	return NIL, nil
}
