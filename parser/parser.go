package parser

import "yazz/lexer"

type (
	unaryParser  func() Expr
	binaryParser func(Expr) Expr
)

// maxArgs is the maximum number of call arguments and function parameters.
const maxArgs = 255

type Parser struct {
	filename      string
	tokens        []lexer.Token
	Errors        []ParserError
	curr          int // how many we have consumed.
	unaryParsers  map[lexer.TokenType]unaryParser
	binaryParsers map[lexer.TokenType]binaryParser
	precedences   map[lexer.TokenType]int
}

const (
	PREC_LOWEST  = iota
	PREC_ASSIGN  // =
	PREC_OR      // or
	PREC_AND     // and
	PREC_EQ      // ==, !=
	PREC_CMP     // <=, <, >, >=
	PREC_SUM     // +, -
	PREC_PRODUCT // *, /
	PREC_UNARY   // !, -
	PREC_CALL    // (), .
)

// ====
// init
// ====

func New(fn string, tokens []lexer.Token) *Parser {
	p := &Parser{
		filename: fn,
		tokens:   tokens,
		Errors:   []ParserError{},
		curr:     0,
	}
	p.unaryParsers = map[lexer.TokenType]unaryParser{
		lexer.LEFT_PAREN: p.grouping,
		lexer.IDENTIFIER: p.variable,
		lexer.NUMBER:     p.literal,
		lexer.STRING:     p.literal,
		lexer.TRUE:       p.literal,
		lexer.FALSE:      p.literal,
		lexer.NIL:        p.literal,
		lexer.THIS:       p.this,
		lexer.SUPER:      p.super,
		lexer.BANG:       p.unary,
		lexer.MINUS:      p.unary,
	}
	// note: need to make sure that every entry in binaryParsers
	// has a corresponding entry in precedences.
	p.binaryParsers = map[lexer.TokenType]binaryParser{
		lexer.EQUAL:         p.assign,
		lexer.OR:            p.logical,
		lexer.AND:           p.logical,
		lexer.EQUAL_EQUAL:   p.binary,
		lexer.BANG_EQUAL:    p.binary,
		lexer.GREATER:       p.binary,
		lexer.GREATER_EQUAL: p.binary,
		lexer.LESS:          p.binary,
		lexer.LESS_EQUAL:    p.binary,
		lexer.PLUS:          p.binary,
		lexer.MINUS:         p.binary,
		lexer.STAR:          p.binary,
		lexer.SLASH:         p.binary,
		lexer.LEFT_PAREN:    p.call,
		lexer.DOT:           p.get,
	}
	p.precedences = map[lexer.TokenType]int{
		lexer.EQUAL:         PREC_ASSIGN,
		lexer.OR:            PREC_OR,
		lexer.AND:           PREC_AND,
		lexer.EQUAL_EQUAL:   PREC_EQ,
		lexer.BANG_EQUAL:    PREC_EQ,
		lexer.GREATER:       PREC_CMP,
		lexer.GREATER_EQUAL: PREC_CMP,
		lexer.LESS:          PREC_CMP,
		lexer.LESS_EQUAL:    PREC_CMP,
		lexer.PLUS:          PREC_SUM,
		lexer.MINUS:         PREC_SUM,
		lexer.STAR:          PREC_PRODUCT,
		lexer.SLASH:         PREC_PRODUCT,
		lexer.LEFT_PAREN:    PREC_CALL,
		lexer.DOT:           PREC_CALL,
	}
	return p
}

// =====
// utils
// =====

// consume consumes one token
func (p *Parser) consume() lexer.Token {
	if !p.isAtEnd() {
		p.curr++
	}
	return p.previous()
}

// previous returns the most recently consumed token
func (p *Parser) previous() lexer.Token { return p.tokens[p.curr-1] }

// peek returns the token to be consumed
func (p *Parser) peek() lexer.Token { return p.tokens[p.curr] }

// isAtEnd returns true if the current token is an EOF token
func (p *Parser) isAtEnd() bool { return p.peek().Type == lexer.EOF }

// check returns if the peek token matches the given type
func (p *Parser) check(t lexer.TokenType) bool {
	return !p.isAtEnd() && p.peek().Type == t
}

// match consumes the token if it matches any of the given types
func (p *Parser) match(types ...lexer.TokenType) bool {
	for _, t := range types {
		if p.check(t) {
			p.consume()
			return true
		}
	}
	return false
}

// ===========
// entry point
// ===========

// module → declaration* EOF

func (p *Parser) Parse() *Module {
	module := &Module{Filename: p.filename, Stmts: []Stmt{}}
	for !p.isAtEnd() {
		if stmt := p.declaration(); stmt != nil {
			module.Stmts = append(module.Stmts, stmt)
		}
	}
	return module
}

// =================
// statement parsing
// =================
//
//   declaration → class | fun | var | statement
//   statement   → for | while | if | print | return | block | exprStmt
//   class    → "class" IDENT ( "<" IDENT )? "{" function* "}"
//   fun      → "fun" function
//   function → IDENT "(" params? ")" block
//   var      → "var" IDENT ( "=" expression )? ";"
//   for      → "for" "(" ( var | exprStmt | ";" ) expression? ";" expression? ")" statement
//   while    → "while" "(" expression ")" statement
//   if       → "if" "(" expression ")" statement ( "else" statement )?
//   print    → "print" expression ";"
//   return   → "return" expression? ";"
//   block    → "{" declaration* "}"
//   exprStmt → expression ";"

func (p *Parser) declaration() (stmt Stmt) {
	defer func() {
		// This will be called repeatedly as we parse statements, so
		// this is a good place to synchronize(). We have to make
		// sure that all top-level calls to parse statements/expressions
		// have a recover.
		if rv := recover(); rv != nil {
			if _, ok := rv.(ParserError); ok {
				p.synchronize()
				stmt = nil
				return
			}
			panic(rv)
		}
	}()
	switch {
	case p.check(lexer.CLASS):
		stmt = p.classDecl()
	case p.check(lexer.FUN):
		p.consume()
		stmt = p.function("function")
	case p.check(lexer.VAR):
		stmt = p.varDecl()
	default:
		stmt = p.statement()
	}
	return
}

func (p *Parser) statement() Stmt {
	switch {
	case p.check(lexer.FOR):
		return p.forStmt()
	case p.check(lexer.WHILE):
		return p.whileStmt()
	case p.check(lexer.IF):
		return p.ifStmt()
	case p.check(lexer.PRINT):
		return p.printStmt()
	case p.check(lexer.RETURN):
		return p.returnStmt()
	case p.check(lexer.LEFT_BRACE):
		return p.blockStmt()
	}
	return p.exprStmt()
}

func (p *Parser) classDecl() Stmt {
	keyword := p.consume()
	name := p.expect(lexer.IDENTIFIER, "expected class name")
	var superclass *Variable
	if p.match(lexer.LESS) {
		superclass = &Variable{Name: p.expect(lexer.IDENTIFIER, "expected superclass name")}
	}
	p.expect(lexer.LEFT_BRACE, "expected { before class body")
	methods := []*Function{}
	for !p.isAtEnd() && !p.check(lexer.RIGHT_BRACE) {
		methods = append(methods, p.function("method"))
	}
	p.expect(lexer.RIGHT_BRACE, "expected } after class body")
	return &Class{Keyword: keyword, Name: name, Superclass: superclass, Methods: methods}
}

func (p *Parser) function(kind string) *Function {
	name := p.expect(lexer.IDENTIFIER, "expected %s name", kind)
	p.expect(lexer.LEFT_PAREN, "expected ( after %s name", kind)
	params := []lexer.Token{}
	if !p.check(lexer.RIGHT_PAREN) {
		for {
			if len(params) >= maxArgs {
				p.report(p.peek(), "can't have more than %d parameters", maxArgs)
			}
			params = append(params, p.expect(lexer.IDENTIFIER, "expected parameter name"))
			if !p.match(lexer.COMMA) {
				break
			}
		}
	}
	p.expect(lexer.RIGHT_PAREN, "expected ) after parameters")
	if !p.check(lexer.LEFT_BRACE) {
		p.error(p.peek(), "expected { before %s body", kind)
	}
	body := p.blockStmt().(*Block)
	return &Function{Name: name, Params: params, Body: body.Stmts}
}

func (p *Parser) varDecl() Stmt {
	keyword := p.consume()
	name := p.expect(lexer.IDENTIFIER, "expected variable name")
	var init Expr
	if p.match(lexer.EQUAL) {
		init = p.expression()
	}
	p.expect(lexer.SEMICOLON, "expected ; after variable declaration")
	return &Var{Keyword: keyword, Name: name, Init: init}
}

// forStmt desugars a for loop into a while loop:
//
//   for (init; cond; incr) body   →   { init; while (cond) { body; incr; } }
//
func (p *Parser) forStmt() Stmt {
	keyword := p.consume()
	p.expect(lexer.LEFT_PAREN, "expected ( after for")
	var init Stmt
	switch {
	case p.match(lexer.SEMICOLON):
	case p.check(lexer.VAR):
		init = p.varDecl()
	default:
		init = p.exprStmt()
	}
	var cond Expr
	if !p.check(lexer.SEMICOLON) {
		cond = p.expression()
	}
	p.expect(lexer.SEMICOLON, "expected ; after loop condition")
	var incr Expr
	if !p.check(lexer.RIGHT_PAREN) {
		incr = p.expression()
	}
	p.expect(lexer.RIGHT_PAREN, "expected ) after for clauses")
	body := p.statement()

	if incr != nil {
		body = &Block{LBrace: keyword, Stmts: []Stmt{body, &ExprStmt{Expr: incr}}}
	}
	if cond == nil {
		cond = &Literal{Token: lexer.Token{
			Type:   lexer.TRUE,
			Lexeme: "true",
			Line:   keyword.Line,
			Column: keyword.Column,
		}}
	}
	var loop Stmt = &While{Keyword: keyword, Cond: cond, Body: body}
	if init != nil {
		loop = &Block{LBrace: keyword, Stmts: []Stmt{init, loop}}
	}
	return loop
}

func (p *Parser) whileStmt() Stmt {
	keyword := p.consume()
	p.expect(lexer.LEFT_PAREN, "expected ( after while")
	cond := p.expression()
	p.expect(lexer.RIGHT_PAREN, "unclosed (")
	body := p.statement()
	return &While{Keyword: keyword, Cond: cond, Body: body}
}

func (p *Parser) ifStmt() Stmt {
	keyword := p.consume()
	p.expect(lexer.LEFT_PAREN, "expected ( after if")
	cond := p.expression()
	p.expect(lexer.RIGHT_PAREN, "unclosed (")
	then := p.statement()
	var elseStmt Stmt
	if p.match(lexer.ELSE) {
		elseStmt = p.statement()
	}
	return &If{Keyword: keyword, Cond: cond, Then: then, Else: elseStmt}
}

func (p *Parser) printStmt() Stmt {
	keyword := p.consume()
	expr := p.expression()
	p.expect(lexer.SEMICOLON, "expected ; after value")
	return &Print{Keyword: keyword, Expr: expr}
}

func (p *Parser) returnStmt() Stmt {
	keyword := p.consume()
	var value Expr
	if !p.check(lexer.SEMICOLON) {
		value = p.expression()
	}
	p.expect(lexer.SEMICOLON, "expected ; after return value")
	return &Return{Keyword: keyword, Value: value}
}

func (p *Parser) blockStmt() Stmt {
	token := p.consume()
	stmts := []Stmt{}
	for !p.isAtEnd() && !p.check(lexer.RIGHT_BRACE) {
		if stmt := p.declaration(); stmt != nil {
			stmts = append(stmts, stmt)
		}
	}
	p.expect(lexer.RIGHT_BRACE, "unmatched {")
	return &Block{LBrace: token, Stmts: stmts}
}

func (p *Parser) exprStmt() Stmt {
	expr := p.expression()
	p.expect(lexer.SEMICOLON, "expected ; after expression statement")
	return &ExprStmt{Expr: expr}
}

// ==================
// expression parsing
// ==================

// expression matches a single expression.
func (p *Parser) expression() Expr { return p.precedence(PREC_LOWEST) }
func (p *Parser) precedence(prec int) Expr {
	unary, ok := p.unaryParsers[p.peek().Type]
	if !ok {
		p.error(p.peek(), "expected expression")
	}
	expr := unary()
	for !p.check(lexer.SEMICOLON) && prec < p.peekPrecedence() {
		expr = p.binaryParsers[p.peek().Type](expr)
	}
	return expr
}

func (p *Parser) peekPrecedence() int {
	if prec, ok := p.precedences[p.peek().Type]; ok {
		return prec
	}
	return PREC_LOWEST
}

func (p *Parser) unary() Expr {
	tok := p.consume()
	return &Unary{Op: tok, Right: p.precedence(PREC_UNARY - 1)}
}

func (p *Parser) grouping() Expr {
	tok := p.consume()
	expr := p.expression()
	p.expect(lexer.RIGHT_PAREN, "unmatched (")
	return &Grouping{LParen: tok, Expr: expr}
}

func (p *Parser) assign(left Expr) Expr {
	tok := p.consume()
	right := p.precedence(PREC_ASSIGN - 1)
	switch left := left.(type) {
	case *Variable:
		return &Assign{Name: left.Name, Value: right}
	case *Get:
		return &Set{Object: left.Object, Name: left.Name, Value: right}
	}
	// this is not an error worth panicking over.
	// just move along -- we will put it in `.Errors'.
	p.report(tok, "invalid assignment target")
	return left
}

func (p *Parser) call(callee Expr) Expr {
	p.consume()
	args := []Expr{}
	if !p.check(lexer.RIGHT_PAREN) {
		for {
			if len(args) >= maxArgs {
				p.report(p.peek(), "can't have more than %d arguments", maxArgs)
			}
			args = append(args, p.expression())
			if !p.match(lexer.COMMA) {
				break
			}
		}
	}
	paren := p.expect(lexer.RIGHT_PAREN, "expected ) after arguments")
	return &Call{Callee: callee, Paren: paren, Args: args}
}

func (p *Parser) get(left Expr) Expr {
	p.consume()
	name := p.expect(lexer.IDENTIFIER, "expected property name after .")
	return &Get{Object: left, Name: name}
}

func (p *Parser) binary(left Expr) Expr {
	tok := p.consume()
	return &Binary{Left: left, Op: tok, Right: p.precedence(p.precedences[tok.Type])}
}

func (p *Parser) logical(left Expr) Expr {
	tok := p.consume()
	return &Logical{Left: left, Op: tok, Right: p.precedence(p.precedences[tok.Type])}
}

func (p *Parser) variable() Expr { return &Variable{Name: p.consume()} }
func (p *Parser) literal() Expr  { return &Literal{Token: p.consume()} }
func (p *Parser) this() Expr     { return &This{Keyword: p.consume()} }

func (p *Parser) super() Expr {
	keyword := p.consume()
	p.expect(lexer.DOT, "expected . after super")
	method := p.expect(lexer.IDENTIFIER, "expected superclass method name")
	return &Super{Keyword: keyword, Method: method}
}
