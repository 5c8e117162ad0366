package parser

import "yazz/lexer"

type Node interface {
	String() string
	Tok() lexer.Token
	node()
}

type Expr interface {
	Node
	expr()
}

type Stmt interface {
	Node
	stmt()
}

// Module is the root of a parsed source file.
type Module struct {
	Filename string
	Stmts    []Stmt
}

// ===========
// Expressions
// ===========

type Literal struct {
	Token lexer.Token // NUMBER, STRING, TRUE, FALSE or NIL
}

// Logical is a short-circuiting `and` / `or`.
type Logical struct {
	Left  Expr
	Op    lexer.Token
	Right Expr
}

type Unary struct {
	Op    lexer.Token
	Right Expr
}

type Binary struct {
	Left  Expr
	Op    lexer.Token
	Right Expr
}

type Grouping struct {
	LParen lexer.Token
	Expr   Expr
}

// Variable, Assign, This and Super are resolvable: the resolver records
// their scope distance keyed by the node pointer.
type Variable struct {
	Name lexer.Token
}

type Assign struct {
	Name  lexer.Token
	Value Expr
}

type Call struct {
	Callee Expr
	Paren  lexer.Token // the closing paren, used for error reporting
	Args   []Expr
}

type Get struct {
	Object Expr
	Name   lexer.Token
}

type Set struct {
	Object Expr
	Name   lexer.Token
	Value  Expr
}

type This struct {
	Keyword lexer.Token
}

type Super struct {
	Keyword lexer.Token
	Method  lexer.Token
}

// ==========
// Statements
// ==========

type ExprStmt struct {
	Expr Expr
}

type Var struct {
	Keyword lexer.Token
	Name    lexer.Token
	Init    Expr // may be nil
}

type Block struct {
	LBrace lexer.Token
	Stmts  []Stmt
}

type If struct {
	Keyword lexer.Token
	Cond    Expr
	Then    Stmt
	Else    Stmt // may be nil
}

type While struct {
	Keyword lexer.Token
	Cond    Expr
	Body    Stmt
}

type Print struct {
	Keyword lexer.Token
	Expr    Expr
}

type Return struct {
	Keyword lexer.Token
	Value   Expr // may be nil
}

type Function struct {
	Name   lexer.Token
	Params []lexer.Token
	Body   []Stmt
}

type Class struct {
	Keyword    lexer.Token
	Name       lexer.Token
	Superclass *Variable // may be nil
	Methods    []*Function
}

// ==========
// Interfaces
// ==========

func (node *Literal) Tok() lexer.Token  { return node.Token }
func (node *Logical) Tok() lexer.Token  { return node.Op }
func (node *Unary) Tok() lexer.Token    { return node.Op }
func (node *Binary) Tok() lexer.Token   { return node.Op }
func (node *Grouping) Tok() lexer.Token { return node.LParen }
func (node *Variable) Tok() lexer.Token { return node.Name }
func (node *Assign) Tok() lexer.Token   { return node.Name }
func (node *Call) Tok() lexer.Token     { return node.Paren }
func (node *Get) Tok() lexer.Token      { return node.Name }
func (node *Set) Tok() lexer.Token      { return node.Name }
func (node *This) Tok() lexer.Token     { return node.Keyword }
func (node *Super) Tok() lexer.Token    { return node.Keyword }
func (node *ExprStmt) Tok() lexer.Token { return node.Expr.Tok() }
func (node *Var) Tok() lexer.Token      { return node.Keyword }
func (node *Block) Tok() lexer.Token    { return node.LBrace }
func (node *If) Tok() lexer.Token       { return node.Keyword }
func (node *While) Tok() lexer.Token    { return node.Keyword }
func (node *Print) Tok() lexer.Token    { return node.Keyword }
func (node *Return) Tok() lexer.Token   { return node.Keyword }
func (node *Function) Tok() lexer.Token { return node.Name }
func (node *Class) Tok() lexer.Token    { return node.Keyword }

func (node *Literal) node()  {}
func (node *Logical) node()  {}
func (node *Unary) node()    {}
func (node *Binary) node()   {}
func (node *Grouping) node() {}
func (node *Variable) node() {}
func (node *Assign) node()   {}
func (node *Call) node()     {}
func (node *Get) node()      {}
func (node *Set) node()      {}
func (node *This) node()     {}
func (node *Super) node()    {}
func (node *ExprStmt) node() {}
func (node *Var) node()      {}
func (node *Block) node()    {}
func (node *If) node()       {}
func (node *While) node()    {}
func (node *Print) node()    {}
func (node *Return) node()   {}
func (node *Function) node() {}
func (node *Class) node()    {}

func (node *Literal) expr()  {}
func (node *Logical) expr()  {}
func (node *Unary) expr()    {}
func (node *Binary) expr()   {}
func (node *Grouping) expr() {}
func (node *Variable) expr() {}
func (node *Assign) expr()   {}
func (node *Call) expr()     {}
func (node *Get) expr()      {}
func (node *Set) expr()      {}
func (node *This) expr()     {}
func (node *Super) expr()    {}

func (node *ExprStmt) stmt() {}
func (node *Var) stmt()      {}
func (node *Block) stmt()    {}
func (node *If) stmt()       {}
func (node *While) stmt()    {}
func (node *Print) stmt()    {}
func (node *Return) stmt()   {}
func (node *Function) stmt() {}
func (node *Class) stmt()    {}
