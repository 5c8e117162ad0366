package eval

import (
	"strings"
	"yazz/lexer"
	"yazz/parser"
	"yazz/resolver"
)

// SyntaxErrors collects the static errors of one phase: lexing,
// parsing or resolving.
type SyntaxErrors []error

func (e SyntaxErrors) Error() string {
	msgs := make([]string, len(e))
	for i, err := range e {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "\n")
}

// Session runs successive pieces of source against the same
// interpreter, so that globals persist between them.
type Session struct {
	Filename string
	interp   *Interpreter
}

func NewSession(filename string, opts ...Option) *Session {
	opts = append([]Option{WithFilename(filename)}, opts...)
	return &Session{
		Filename: filename,
		interp:   New(opts...),
	}
}

func (s *Session) Interpreter() *Interpreter { return s.interp }

// Run lexes, parses, resolves and then interprets the source. If the
// last statement is an expression statement, its value is returned.
func (s *Session) Run(input string) (Value, error) {
	l := lexer.New(s.Filename, input)
	l.ScanTokens()
	if len(l.Errors) != 0 {
		errs := make(SyntaxErrors, len(l.Errors))
		for i, err := range l.Errors {
			errs[i] = err
		}
		return nil, errs
	}
	p := parser.New(s.Filename, l.Tokens)
	module := p.Parse()
	if len(p.Errors) != 0 {
		errs := make(SyntaxErrors, len(p.Errors))
		for i, err := range p.Errors {
			errs[i] = err
		}
		return nil, errs
	}
	res := resolver.New(s.Filename, s.interp)
	res.Resolve(module.Stmts)
	if len(res.Errors) != 0 {
		return nil, SyntaxErrors(res.Errors)
	}
	// Still no errors? we can run it.
	stmts := module.Stmts
	var last *parser.ExprStmt
	if n := len(stmts); n > 0 {
		if stmt, ok := stmts[n-1].(*parser.ExprStmt); ok {
			last = stmt
			stmts = stmts[:n-1]
		}
	}
	if err := s.interp.Interpret(stmts); err != nil {
		return nil, err
	}
	if last != nil {
		return s.interp.Evaluate(last.Expr)
	}
	return NIL, nil
}
