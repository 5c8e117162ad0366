package eval

import (
	"fmt"
	"yazz/lexer"
	"yazz/parser"
)

// ===========
// Expressions
// ===========

func (in *Interpreter) evaluate(node parser.Expr) (Value, error) {
	switch node := node.(type) {
	case *parser.Literal:
		return literal(node.Token), nil
	case *parser.Grouping:
		return in.evaluate(node.Expr)
	case *parser.Logical:
		return in.evalLogical(node)
	case *parser.Unary:
		right, err := in.evaluate(node.Right)
		if err != nil {
			return nil, err
		}
		return in.unary(node.Op, right)
	case *parser.Binary:
		return in.evalBinary(node)
	case *parser.Variable:
		return in.lookUpVariable(node.Name, node)
	case *parser.Assign:
		return in.evalAssign(node)
	case *parser.Call:
		return in.evalCall(node)
	case *parser.Get:
		return in.evalGet(node)
	case *parser.Set:
		return in.evalSet(node)
	case *parser.This:
		return in.lookUpVariable(node.Keyword, node)
	case *parser.Super:
		return in.evalSuper(node)
	}
	panic(fmt.Sprintf("unhandled node %#+v", node))
}

func literal(tok lexer.Token) Value {
	switch tok.Type {
	case lexer.STRING:
		return String(tok.Literal.(string))
	case lexer.NUMBER:
		return Number(tok.Literal.(float64))
	case lexer.TRUE:
		return TRUE
	case lexer.FALSE:
		return FALSE
	}
	return NIL
}

func (in *Interpreter) evalLogical(node *parser.Logical) (Value, error) {
	left, err := in.evaluate(node.Left)
	if err != nil {
		return nil, err
	}
	if node.Op.Type == lexer.OR {
		if isTruthy(left) {
			return left, nil
		}
	} else if !isTruthy(left) {
		return left, nil
	}
	return in.evaluate(node.Right)
}

func (in *Interpreter) evalBinary(node *parser.Binary) (Value, error) {
	left, err := in.evaluate(node.Left)
	if err != nil {
		return nil, err
	}
	right, err := in.evaluate(node.Right)
	if err != nil {
		return nil, err
	}
	return in.binary(node.Op, left, right)
}

func (in *Interpreter) lookUpVariable(name lexer.Token, node parser.Expr) (Value, error) {
	if distance, ok := in.locals[node]; ok {
		return in.env.GetAt(distance, name.Lexeme), nil
	}
	return in.globals.Get(name)
}

func (in *Interpreter) evalAssign(node *parser.Assign) (Value, error) {
	value, err := in.evaluate(node.Value)
	if err != nil {
		return nil, err
	}
	if distance, ok := in.locals[node]; ok {
		in.env.AssignAt(distance, node.Name.Lexeme, value)
		return value, nil
	}
	if err := in.globals.Assign(node.Name, value); err != nil {
		return nil, err
	}
	return value, nil
}

func (in *Interpreter) evalCall(node *parser.Call) (Value, error) {
	callee, err := in.evaluate(node.Callee)
	if err != nil {
		return nil, err
	}
	args := make([]Value, len(node.Args))
	for i, expr_node := range node.Args {
		arg, err := in.evaluate(expr_node)
		if err != nil {
			return nil, err
		}
		args[i] = arg
	}
	fn, ok := callee.(Callable)
	if !ok {
		return nil, newRuntimeError(TypeError, node.Paren, "Can only call functions and classes.")
	}
	if len(args) != fn.Arity() {
		return nil, newRuntimeError(ArityError, node.Paren, "Expected %d arguments but got %d.", fn.Arity(), len(args))
	}
	rv, err := fn.Call(in, args, node.Paren)
	if err != nil {
		return nil, in.addErrorStack(err, node.Paren)
	}
	return rv, nil
}

func (in *Interpreter) evalGet(node *parser.Get) (Value, error) {
	object, err := in.evaluate(node.Object)
	if err != nil {
		return nil, err
	}
	instance, ok := object.(*Instance)
	if !ok {
		return nil, newRuntimeError(TypeError, node.Name, "Only instances have properties.")
	}
	return instance.Get(node.Name)
}

func (in *Interpreter) evalSet(node *parser.Set) (Value, error) {
	object, err := in.evaluate(node.Object)
	if err != nil {
		return nil, err
	}
	instance, ok := object.(*Instance)
	if !ok {
		return nil, newRuntimeError(TypeError, node.Name, "Only instances have fields.")
	}
	value, err := in.evaluate(node.Value)
	if err != nil {
		return nil, err
	}
	instance.Set(node.Name, value)
	return value, nil
}

// evalSuper looks the method up starting from the superclass of the
// class the method was declared in, and binds it to the current `this'.
func (in *Interpreter) evalSuper(node *parser.Super) (Value, error) {
	distance := in.locals[node]
	superclass := in.env.GetAt(distance, "super").(*Class)
	this := in.env.GetAt(distance-1, "this").(*Instance)
	method := superclass.FindMethod(node.Method.Lexeme)
	if method == nil {
		return nil, newRuntimeError(UndefinedProperty, node.Method, "Undefined property '%s'.", node.Method.Lexeme)
	}
	return method.Bind(this), nil
}
