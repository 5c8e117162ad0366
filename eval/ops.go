package eval

import "yazz/lexer"

// =========
// Operators
// =========

type binOpInfo struct {
	op    lexer.TokenType
	left  ValueType
	right ValueType
}

type binOpImpl func(left, right Value) Value

var binOpTable = map[binOpInfo]binOpImpl{}

func init() {
	initBinOpTable()
}

func initBinOpTable() {
	num := func(op lexer.TokenType, f func(a, b Number) Value) {
		binOpTable[binOpInfo{op, VT_NUMBER, VT_NUMBER}] = func(left, right Value) Value {
			return f(left.(Number), right.(Number))
		}
	}
	num(lexer.PLUS, func(a, b Number) Value { return a + b })
	num(lexer.MINUS, func(a, b Number) Value { return a - b })
	num(lexer.STAR, func(a, b Number) Value { return a * b })
	num(lexer.SLASH, func(a, b Number) Value { return a / b })
	num(lexer.GREATER, func(a, b Number) Value { return Boolean(a > b) })
	num(lexer.GREATER_EQUAL, func(a, b Number) Value { return Boolean(a >= b) })
	num(lexer.LESS, func(a, b Number) Value { return Boolean(a < b) })
	num(lexer.LESS_EQUAL, func(a, b Number) Value { return Boolean(a <= b) })

	binOpTable[binOpInfo{lexer.PLUS, VT_STRING, VT_STRING}] = func(left, right Value) Value {
		return left.(String) + right.(String)
	}
}

func (in *Interpreter) binary(op lexer.Token, left, right Value) (Value, error) {
	switch op.Type {
	case lexer.EQUAL_EQUAL:
		return Boolean(isEqual(left, right)), nil
	case lexer.BANG_EQUAL:
		return Boolean(!isEqual(left, right)), nil
	}
	// Search the operator table.
	if impl, ok := binOpTable[binOpInfo{op.Type, left.Type(), right.Type()}]; ok {
		return impl(left, right), nil
	}
	// There really is no implementation.
	if op.Type == lexer.PLUS {
		return nil, newRuntimeError(TypeError, op, "Operands must be two numbers or two strings.")
	}
	return nil, newRuntimeError(TypeError, op, "Operands must be numbers.")
}

func (in *Interpreter) unary(op lexer.Token, right Value) (Value, error) {
	switch {
	case op.Type == lexer.BANG:
		return Boolean(!isTruthy(right)), nil
	case op.Type == lexer.MINUS && right.Type() == VT_NUMBER:
		return -right.(Number), nil
	}
	return nil, newRuntimeError(TypeError, op, "Operand must be a number.")
}
