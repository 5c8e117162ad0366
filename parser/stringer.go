package parser

import (
	"bytes"
	"strings"
)

func (node *Module) String() string {
	stmts := []string{}
	for _, stmt := range node.Stmts {
		stmts = append(stmts, stmt.String())
	}
	return strings.Join(stmts, "\n")
}

// Statements

func (node *ExprStmt) String() string { return node.Expr.String() + ";" }

func (node *Var) String() string {
	var buf bytes.Buffer
	buf.WriteString(node.Keyword.Lexeme)
	buf.WriteString(" ")
	buf.WriteString(node.Name.Lexeme)
	if node.Init != nil {
		buf.WriteString(" = ")
		buf.WriteString(node.Init.String())
	}
	buf.WriteString(";")
	return buf.String()
}

func (node *Block) String() string {
	var buf bytes.Buffer
	buf.WriteString("{")
	for _, stmt := range node.Stmts {
		buf.WriteString(stmt.String())
	}
	buf.WriteString("}")
	return buf.String()
}

func (node *If) String() string {
	var buf bytes.Buffer
	buf.WriteString(node.Keyword.Lexeme)
	buf.WriteString(" (")
	buf.WriteString(node.Cond.String())
	buf.WriteString(") ")
	buf.WriteString(node.Then.String())
	if node.Else != nil {
		buf.WriteString(" else ")
		buf.WriteString(node.Else.String())
	}
	return buf.String()
}

func (node *While) String() string {
	var buf bytes.Buffer
	buf.WriteString("while (")
	buf.WriteString(node.Cond.String())
	buf.WriteString(") ")
	buf.WriteString(node.Body.String())
	return buf.String()
}

func (node *Print) String() string { return "print " + node.Expr.String() + ";" }

func (node *Return) String() string {
	if node.Value == nil {
		return "return;"
	}
	return "return " + node.Value.String() + ";"
}

func (node *Function) String() string { return "fun " + node.signature() }

func (node *Function) signature() string {
	var buf bytes.Buffer
	buf.WriteString(node.Name.Lexeme)
	buf.WriteString("(")
	for i, param := range node.Params {
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(param.Lexeme)
	}
	buf.WriteString(") {")
	for _, stmt := range node.Body {
		buf.WriteString(stmt.String())
	}
	buf.WriteString("}")
	return buf.String()
}

func (node *Class) String() string {
	var buf bytes.Buffer
	buf.WriteString("class ")
	buf.WriteString(node.Name.Lexeme)
	if node.Superclass != nil {
		buf.WriteString(" < ")
		buf.WriteString(node.Superclass.String())
	}
	buf.WriteString(" {")
	for _, method := range node.Methods {
		buf.WriteString(method.signature())
	}
	buf.WriteString("}")
	return buf.String()
}

// Expressions

func (node *Assign) String() string {
	return "(" + node.Name.Lexeme + " = " + node.Value.String() + ")"
}

func (node *Binary) String() string {
	return infix(node.Left, node.Op.Lexeme, node.Right)
}

func (node *Logical) String() string {
	return infix(node.Left, node.Op.Lexeme, node.Right)
}

func (node *Unary) String() string {
	return "(" + node.Op.Lexeme + node.Right.String() + ")"
}

func (node *Grouping) String() string { return "(" + node.Expr.String() + ")" }

func (node *Call) String() string {
	var buf bytes.Buffer
	buf.WriteString(node.Callee.String())
	buf.WriteString("(")
	for i, arg := range node.Args {
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(arg.String())
	}
	buf.WriteString(")")
	return buf.String()
}

func (node *Get) String() string {
	return "(" + node.Object.String() + "." + node.Name.Lexeme + ")"
}

func (node *Set) String() string {
	return "(" + node.Object.String() + "." + node.Name.Lexeme + " = " + node.Value.String() + ")"
}

func (node *Super) String() string    { return "super." + node.Method.Lexeme }
func (node *This) String() string     { return node.Keyword.Lexeme }
func (node *Variable) String() string { return node.Name.Lexeme }
func (node *Literal) String() string  { return node.Token.Lexeme }

func infix(left Expr, op string, right Expr) string {
	var buf bytes.Buffer
	buf.WriteString("(")
	buf.WriteString(left.String())
	buf.WriteString(" ")
	buf.WriteString(op)
	buf.WriteString(" ")
	buf.WriteString(right.String())
	buf.WriteString(")")
	return buf.String()
}
