package resolver_test

import (
	"strings"
	"testing"
	"yazz/lexer"
	"yazz/parser"
	"yazz/resolver"
)

type locals map[parser.Expr]int

func (l locals) Resolve(expr parser.Expr, depth int) { l[expr] = depth }

func TestResolver(t *testing.T) {
	input := `
fun f(x) { f(x + 1); return x; }
f(1);
`
	module := lexAndParse(t, input)
	if module == nil {
		return
	}
	l := locals{}
	r := resolver.New("", l)
	r.Resolve(module.Stmts)
	if !noErrors(t, "resolver", r.Errors) {
		return
	}
	fn := module.Stmts[0].(*parser.Function)
	f_inside_func := fn.Body[0].(*parser.ExprStmt).Expr.(*parser.Call).Callee
	x_inside_call := fn.Body[0].(*parser.ExprStmt).Expr.(*parser.Call).Args[0].(*parser.Binary).Left
	x_returned := fn.Body[1].(*parser.Return).Value
	f_outside_func := module.Stmts[1].(*parser.ExprStmt).Expr.(*parser.Call).Callee
	if _, ok := l[f_inside_func]; ok {
		t.Errorf("expected f inside to be global")
	}
	if _, ok := l[f_outside_func]; ok {
		t.Errorf("expected f outside to be global")
	}
	if d, ok := l[x_inside_call]; !ok || d != 0 {
		t.Errorf("expected x to be 0, got=%d (%t)", d, ok)
	}
	if d, ok := l[x_returned]; !ok || d != 0 {
		t.Errorf("expected returned x to be 0, got=%d (%t)", d, ok)
	}
}

func TestResolverDistances(t *testing.T) {
	input := `
{
  var a = 1;
  {
    var b = a;
    fun g() { return a + b; }
  }
}
`
	module := lexAndParse(t, input)
	if module == nil {
		return
	}
	l := locals{}
	r := resolver.New("", l)
	r.Resolve(module.Stmts)
	if !noErrors(t, "resolver", r.Errors) {
		return
	}
	outer := module.Stmts[0].(*parser.Block)
	inner := outer.Stmts[1].(*parser.Block)
	bInit := inner.Stmts[0].(*parser.Var).Init
	sum := inner.Stmts[1].(*parser.Function).Body[0].(*parser.Return).Value.(*parser.Binary)
	tests := []struct {
		name string
		expr parser.Expr
		dist int
	}{
		{"a in b's initialiser", bInit, 1},
		{"a in g", sum.Left, 2},
		{"b in g", sum.Right, 1},
	}
	for _, test := range tests {
		if d, ok := l[test.expr]; !ok || d != test.dist {
			t.Errorf("%s: expected=%d, got=%d (%t)", test.name, test.dist, d, ok)
		}
	}
}

func TestResolverClass(t *testing.T) {
	input := `
class A { m() { return this; } }
class B < A { m() { return super.m(); } }
`
	module := lexAndParse(t, input)
	if module == nil {
		return
	}
	l := locals{}
	r := resolver.New("", l)
	r.Resolve(module.Stmts)
	if !noErrors(t, "resolver", r.Errors) {
		return
	}
	this := module.Stmts[0].(*parser.Class).Methods[0].Body[0].(*parser.Return).Value
	super := module.Stmts[1].(*parser.Class).Methods[0].Body[0].(*parser.Return).Value.(*parser.Call).Callee
	if d := l[this]; d != 1 {
		t.Errorf("expected this to be 1, got=%d", d)
	}
	if d := l[super]; d != 2 {
		t.Errorf("expected super to be 2, got=%d", d)
	}
}

func TestResolverErrors(t *testing.T) {
	tests := []struct {
		input string
		err   string
	}{
		{"return 1;", "Can't return from top-level code."},
		{"print this;", "Can't use 'this' outside of a class."},
		{"fun f() { return this; }", "Can't use 'this' outside of a class."},
		{"print super.x;", "Can't use 'super' outside of a class."},
		{"class A { m() { super.m(); } }", "Can't use 'super' in a class with no superclass."},
		{"class A < A {}", "A class can't inherit from itself."},
		{"{ var a = 1; var a = 2; }", "Already a variable with this name in this scope."},
		{"fun f(a, a) {}", "Already a variable with this name in this scope."},
		{"{ var a = a; }", "Can't read local variable in its own initializer."},
	}
	for i, test := range tests {
		module := lexAndParse(t, test.input)
		if module == nil {
			continue
		}
		r := resolver.New("test.yz", locals{})
		r.Resolve(module.Stmts)
		if len(r.Errors) != 1 {
			t.Errorf("tests[%d] (%q): expected 1 error, got=%d", i, test.input, len(r.Errors))
			continue
		}
		if msg := r.Errors[0].Error(); !strings.HasSuffix(msg, test.err) || !strings.HasPrefix(msg, "test.yz:1:") {
			t.Errorf("tests[%d] (%q): unexpected error %q", i, test.input, msg)
		}
	}
}

func TestResolverAllowed(t *testing.T) {
	tests := []string{
		// globals may be redeclared
		"var a = 1; var a = 2;",
		"var a = a;",
		// init may return a value; it is discarded at runtime
		"class A { init() { return 5; } }",
		"class A { init() { return; } }",
		"fun f() { fun g() { return 1; } return g; }",
	}
	for i, input := range tests {
		module := lexAndParse(t, input)
		if module == nil {
			continue
		}
		r := resolver.New("", locals{})
		r.Resolve(module.Stmts)
		if len(r.Errors) != 0 {
			t.Errorf("tests[%d] (%q): unexpected errors %v", i, input, r.Errors)
		}
	}
}

// utils

func lexAndParse(t *testing.T, input string) *parser.Module {
	fn := ""
	l := lexer.New(fn, input)
	l.ScanTokens()
	if len(l.Errors) != 0 {
		t.Errorf("got lexer errors: %v", l.Errors)
		return nil
	}
	p := parser.New(fn, l.Tokens)
	module := p.Parse()
	if len(p.Errors) != 0 {
		t.Errorf("got parser errors: %v", p.Errors)
		return nil
	}
	return module
}

func noErrors(t *testing.T, src string, errors []error) bool {
	if len(errors) != 0 {
		t.Errorf("got %s errors:\n", src)
		for _, x := range errors {
			t.Errorf("%s\n", x)
		}
		return false
	}
	return true
}
