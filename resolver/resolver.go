// Package resolver implements identifier resolution semantic analysis,
// as well as some syntax checks (e.g. ensuring that returns are within
// a function, and that this/super are within a class). Identifier
// resolution works by recording the distance from the current
// environment where an identifier can be found. Identifiers that are
// not found in any enclosing block scope are left unresolved, and are
// looked up dynamically in the global environment at runtime.
package resolver

import (
	"errors"
	"fmt"
	"yazz/lexer"
	"yazz/parser"
)

var TooManyErrors = errors.New("too many errors")

const maxErrors = 10

type ResolverError struct {
	Filename string
	Token    lexer.Token
	Message  string
}

func (re ResolverError) Error() string { return re.String() }
func (re ResolverError) String() string {
	return fmt.Sprintf("%s:%d:%d: %s", re.Filename, re.Token.Line, re.Token.Column, re.Message)
}

// Locals receives the distance of every locally bound reference.
type Locals interface {
	Resolve(expr parser.Expr, depth int)
}

type Scope map[string]bool

// Control flags -- what kind of function and class we are in.
const (
	FUNC = 1 << iota
	INIT
	CLASS
	SUBCLASS
)

type Resolver struct {
	filename string
	locals   Locals
	// each scope is a map from varname to a boolean, corresponding
	// to whether the variable was already initialised.
	scopes []Scope
	Errors []error
	ctrl   uint8
}

func New(filename string, locals Locals) *Resolver {
	return &Resolver{
		filename: filename,
		locals:   locals,
		scopes:   []Scope{},
		Errors:   []error{},
		ctrl:     0,
	}
}

func (r *Resolver) curr() Scope { return r.scopes[len(r.scopes)-1] }
func (r *Resolver) push()       { r.scopes = append(r.scopes, Scope{}) }
func (r *Resolver) pop()        { r.scopes = r.scopes[:len(r.scopes)-1] }

func (r *Resolver) err(tok lexer.Token, msg string) {
	r.Errors = append(r.Errors, ResolverError{
		Filename: r.filename,
		Token:    tok,
		Message:  msg,
	})
}

// Resolve resolves the given statements.
func (r *Resolver) Resolve(stmts []parser.Stmt) {
	for _, stmt := range stmts {
		r.resolve(stmt)
		if len(r.Errors) >= maxErrors {
			r.Errors = append(r.Errors, TooManyErrors)
			break
		}
	}
	if len(r.scopes) != 0 || r.ctrl != 0 {
		panic("something gone wrong!")
	}
}

func (r *Resolver) resolve(node parser.Node) {
	switch node := node.(type) {
	// Statements
	case *parser.Var:
		r.resolveVar(node)
	case *parser.Block:
		r.resolveBlock(node)
	case *parser.While:
		r.resolve(node.Cond)
		r.resolve(node.Body)
	case *parser.If:
		r.resolveIf(node)
	case *parser.ExprStmt:
		r.resolve(node.Expr)
	case *parser.Print:
		r.resolve(node.Expr)
	case *parser.Return:
		r.resolveReturn(node)
	case *parser.Function:
		r.declare(node.Name)
		r.define(node.Name)
		r.resolveFunction(node, FUNC)
	case *parser.Class:
		r.resolveClass(node)
	// Expressions
	case *parser.Binary:
		r.resolve(node.Left)
		r.resolve(node.Right)
	case *parser.Logical:
		r.resolve(node.Left)
		r.resolve(node.Right)
	case *parser.Unary:
		r.resolve(node.Right)
	case *parser.Grouping:
		r.resolve(node.Expr)
	case *parser.Assign:
		r.resolve(node.Value)
		r.lookup(node, node.Name)
	case *parser.Get:
		r.resolve(node.Object)
	case *parser.Set:
		r.resolve(node.Value)
		r.resolve(node.Object)
	case *parser.Call:
		r.resolveCall(node)
	case *parser.Variable:
		r.resolveVariable(node)
	case *parser.This:
		r.resolveThis(node)
	case *parser.Super:
		r.resolveSuper(node)
	case *parser.Literal:
		return
	default:
		panic(fmt.Sprintf("unhandled node: %#+v", node))
	}
}

// ==========
// Statements
// ==========

func (r *Resolver) resolveVar(node *parser.Var) {
	r.declare(node.Name)
	if node.Init != nil {
		r.resolve(node.Init)
	}
	r.define(node.Name)
}

func (r *Resolver) resolveBlock(node *parser.Block) {
	r.push()
	for _, x := range node.Stmts {
		r.resolve(x)
	}
	r.pop()
}

func (r *Resolver) resolveIf(node *parser.If) {
	r.resolve(node.Cond)
	r.resolve(node.Then)
	if node.Else != nil {
		r.resolve(node.Else)
	}
}

func (r *Resolver) resolveReturn(node *parser.Return) {
	if r.ctrl&FUNC == 0 {
		r.err(node.Keyword, "Can't return from top-level code.")
	}
	if node.Value != nil {
		r.resolve(node.Value)
	}
}

func (r *Resolver) resolveClass(node *parser.Class) {
	ctrl := r.ctrl
	r.ctrl = (r.ctrl &^ SUBCLASS) | CLASS
	r.declare(node.Name)
	r.define(node.Name)

	if node.Superclass != nil {
		if node.Superclass.Name.Lexeme == node.Name.Lexeme {
			r.err(node.Superclass.Name, "A class can't inherit from itself.")
		}
		r.ctrl |= SUBCLASS
		r.resolveVariable(node.Superclass)
		r.push()
		r.curr()["super"] = true
	}

	r.push()
	r.curr()["this"] = true
	for _, method := range node.Methods {
		kind := uint8(FUNC)
		if method.Name.Lexeme == "init" {
			kind |= INIT
		}
		r.resolveFunction(method, kind)
	}
	r.pop()

	if node.Superclass != nil {
		r.pop()
	}
	r.ctrl = ctrl
}

// ===========
// Expressions
// ===========

func (r *Resolver) resolveCall(node *parser.Call) {
	r.resolve(node.Callee)
	for _, arg := range node.Args {
		r.resolve(arg)
	}
}

func (r *Resolver) resolveVariable(node *parser.Variable) {
	if len(r.scopes) != 0 {
		if initialised, ok := r.curr()[node.Name.Lexeme]; ok && !initialised {
			r.err(node.Name, "Can't read local variable in its own initializer.")
			return
		}
	}
	r.lookup(node, node.Name)
}

func (r *Resolver) resolveThis(node *parser.This) {
	if r.ctrl&CLASS == 0 {
		r.err(node.Keyword, "Can't use 'this' outside of a class.")
		return
	}
	r.lookup(node, node.Keyword)
}

func (r *Resolver) resolveSuper(node *parser.Super) {
	switch {
	case r.ctrl&CLASS == 0:
		r.err(node.Keyword, "Can't use 'super' outside of a class.")
		return
	case r.ctrl&SUBCLASS == 0:
		r.err(node.Keyword, "Can't use 'super' in a class with no superclass.")
		return
	}
	r.lookup(node, node.Keyword)
}

// resolveFunction pushes a new scope containing all of the parameters,
// and then resolves the body within that same scope.
func (r *Resolver) resolveFunction(node *parser.Function, kind uint8) {
	ctrl := r.ctrl
	r.ctrl = (r.ctrl &^ (FUNC | INIT)) | kind
	r.push()
	for _, param := range node.Params {
		r.declare(param)
		r.define(param)
	}
	for _, stmt := range node.Body {
		r.resolve(stmt)
	}
	r.pop()
	r.ctrl = ctrl
}

// =========
// Utilities
// =========

func (r *Resolver) declare(name lexer.Token) {
	if len(r.scopes) == 0 {
		return
	}
	curr := r.curr()
	if _, ok := curr[name.Lexeme]; ok {
		r.err(name, "Already a variable with this name in this scope.")
	}
	curr[name.Lexeme] = false
}

func (r *Resolver) define(name lexer.Token) {
	if len(r.scopes) == 0 {
		return
	}
	r.curr()[name.Lexeme] = true
}

// lookup finds the closest scope containing the name, and records
// its distance. Names not found in any scope are globals.
func (r *Resolver) lookup(node parser.Expr, token lexer.Token) {
	name := token.Lexeme
	curr := len(r.scopes) - 1
	for i := curr; i >= 0; i-- {
		if _, ok := r.scopes[i][name]; ok {
			r.locals.Resolve(node, curr-i)
			return
		}
	}
}
