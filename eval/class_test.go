package eval_test

import (
	"testing"
	"yazz/eval"
)

func TestClasses(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{`
class Point {
  init(x, y) { this.x = x; this.y = y; }
  sum() { return this.x + this.y; }
}
var p = Point(1, 2);
print p.sum();
p.x = 10;
print p.sum();
`, "3\n12\n"},
		// init that returns a value still yields the instance
		{`
class A { init() { this.v = 1; return 5; } }
print A();
print A().v;
`, "A instance\n1\n"},
		{`
class A { m() { return 5; } }
print A().m();
`, "5\n"},
		// calling init directly also yields the instance
		{`
class A { init() { this.n = 0; } }
var a = A();
print a.init() == a;
`, "true\n"},
		// a field shadows a method of the same name
		{`
class A { m() { return "method"; } }
var a = A();
print a.m();
a.m = "field";
print a.m;
`, "method\nfield\n"},
		// bound methods remember their receiver
		{`
class A { init(n) { this.n = n; } get() { return this.n; } }
var g = A(7).get;
print g();
`, "7\n"},
		{`
class A { say() { print "A"; } }
class B < A {}
B().say();
`, "A\n"},
		// super dispatches on the static superclass, not on the class of this
		{`
class A { method() { print "A method"; } }
class B < A {
  method() { print "B method"; }
  test() { super.method(); }
}
class C < B {}
C().test();
`, "A method\n"},
		{`
class A { name() { return "A"; } }
class B < A { name() { return "B" + super.name(); } }
class C < B { name() { return "C" + super.name(); } }
print C().name();
`, "CBA\n"},
		// methods can refer to their own class
		{`
class Node {
  init(n) { this.n = n; }
  next() { return Node(this.n + 1); }
}
print Node(1).next().next().n;
`, "3\n"},
		{`
class A { init() { this.x = 1; } }
class B < A { init() { super.init(); this.y = 2; } }
var b = B();
print b.x + b.y;
`, "3\n"},
		// identity equality
		{`
class A {}
var a = A(); var b = A();
print a == a; print a == b;
`, "true\nfalse\n"},
	}
	for i, test := range tests {
		expectOutput(t, i, test.input, test.expected)
	}
}

func TestClassArity(t *testing.T) {
	session := eval.NewSession("test.yz")
	v, err := session.Run("class A { init(a, b) {} } A;")
	if err != nil {
		t.Fatalf("unexpected error %s", err)
	}
	class, ok := v.(*eval.Class)
	if !ok {
		t.Fatalf("expected a class, got=%#+v", v)
	}
	if class.Arity() != 2 {
		t.Errorf("expected arity 2, got=%d", class.Arity())
	}
	if class.FindMethod("init") == nil || class.FindMethod("nope") != nil {
		t.Errorf("unexpected method lookup result")
	}
}
