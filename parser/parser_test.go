package parser_test

import (
	"testing"
	"yazz/lexer"
	"yazz/parser"
)

func TestParserValid(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"abcdef = 2;", "(abcdef = 2);"},
		{"a + b + c;", "((a + b) + c);"},
		{"a + b + (c = 7);", "((a + b) + ((c = 7)));"},
		{"a + b * c;", "(a + (b * c));"},
		{"a + b >= c == true;", "(((a + b) >= c) == true);"},
		{"a + !b or x;", "((a + (!b)) or x);"},
		{"a and b or c;", "((a and b) or c);"},
		{"a or b and c;", "(a or (b and c));"},
		{"a + -b * c / d;", "(a + (((-b) * c) / d));"},
		{"a / (c - f) / d + e;", "(((a / ((c - f))) / d) + e);"},
		{"a = b = c;", "(a = (b = c));"},
		{"-a.b;", "(-(a.b));"},
		{"a.b.c = d;", "((a.b).c = d);"},
		{"f(1, 2)(3);", "f(1, 2)(3);"},
		{"a.b(c).d;", "((a.b)(c).d);"},
		{"this.x = super.y(1);", "(this.x = super.y(1));"},
		{"var x;", "var x;"},
		{"var x = \"s\";", "var x = \"s\";"},
		{"print 1 + 2;", "print (1 + 2);"},
		{"{ var x = 2; print x; }", "{var x = 2;print x;}"},
		{"while (true) print 1;", "while (true) print 1;"},
		{"if (a) { x = 1; }", "if (a) {(x = 1);}"},
		{"if (a) { x = 1; } else nil;", "if (a) {(x = 1);} else nil;"},
		{"fun f(a, b) { return a + b; }", "fun f(a, b) {return (a + b);}"},
		{"fun f() { return; }", "fun f() {return;}"},
		{"class A < B { init(x) { this.x = x; } get() { return this.x; } }",
			"class A < B {init(x) {(this.x = x);}get() {return (this.x);}}"},
		{"for (var i = 0; i < 3; i = i + 1) print i;",
			"{var i = 0;while ((i < 3)) {print i;(i = (i + 1));}}"},
		{"for (;;) print 1;", "while (true) print 1;"},
	}
	for i, test := range tests {
		var tokens []lexer.Token
		if !checkLexerErrors(t, test.input, &tokens) {
			t.Errorf("tests[%d] (%q) failed", i, test.input)
			continue
		}
		p := parser.New("", tokens)
		module := p.Parse()
		if len(p.Errors) != 0 {
			t.Errorf("tests[%d] (%q)", i, test.input)
			t.Error("parser errors:")
			for _, err := range p.Errors {
				t.Error(err.String())
			}
			continue
		}
		if module.String() != test.expected {
			t.Errorf("tests[%d] (%q)", i, test.input)
			t.Errorf("expected=%q, got=%q", test.expected, module.String())
			continue
		}
	}
}

func TestParserInvalid(t *testing.T) {
	tests := []struct {
		input   string
		numErrs int
	}{
		{"abcdef = 2", 1},
		{"1 = 2; x", 2}, // should continue parsing
		{"!!;", 1},
		{"a + b = c;", 1},
		{"x.1;", 1},
		{"print; var = 1; fun () {}", 3},
		{"class A { 1 }", 1},
		{"super;", 1},
	}
	for i, test := range tests {
		var tokens []lexer.Token
		if !checkLexerErrors(t, test.input, &tokens) {
			t.Errorf("tests[%d] (%q) failed", i, test.input)
			continue
		}
		p := parser.New("", tokens)
		p.Parse()
		if len(p.Errors) != test.numErrs {
			t.Errorf("tests[%d] (%q)", i, test.input)
			t.Errorf("expected=%d errors, got=%d", test.numErrs, len(p.Errors))
			t.Errorf("%+v\n", p.Errors)
		}
	}
}

func TestParserNodeIdentity(t *testing.T) {
	// Two references to the same name must be distinct nodes, since the
	// evaluator keys its scope-distance table by node.
	var tokens []lexer.Token
	if !checkLexerErrors(t, "a + a;", &tokens) {
		return
	}
	p := parser.New("", tokens)
	module := p.Parse()
	bin := module.Stmts[0].(*parser.ExprStmt).Expr.(*parser.Binary)
	if bin.Left.(*parser.Variable) == bin.Right.(*parser.Variable) {
		t.Errorf("expected distinct variable nodes")
	}
}

func checkLexerErrors(t *testing.T, input string, out *[]lexer.Token) bool {
	l := lexer.New("", input)
	l.ScanTokens()
	if len(l.Errors) != 0 {
		t.Error("lexer errors:")
		for _, err := range l.Errors {
			t.Error(err.String())
		}
		return false
	}
	*out = l.Tokens
	return true
}
