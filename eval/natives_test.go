package eval_test

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"yazz/eval"
)

func TestNatives(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"print round(3.14159, 2);", "3.14\n"},
		{"print round(2.5, 0);", "3\n"},
		{"print round(-2.5, 0);", "-2\n"},
		{"print round(1234.5678, 1.9);", "1234.6\n"},
		{"print sqrt(16);", "4\n"},
		{"print pow(2, 10);", "1024\n"},
		{"print sin(30);", "0.5\n"},
		{"print cos(60);", "0.5\n"},
		{"print sin(90);", "1\n"},
		{"print tan(45);", "1\n"},
		{"print tan(0);", "0\n"},
		{`print cap("hello");`, "HELLO\n"},
		{`print uncap("HeLLo");`, "hello\n"},
		{`print cap("straße");`, "STRASSE\n"},
		{`print countChars("héllo");`, "5\n"},
		{`print countChars("");`, "0\n"},
		{`print editChar("cat", 1, "b");`, "bat\n"},
		{`print editChar("cat", 3, "rs");`, "cars\n"},
		{`print editChar("né", 2, "e");`, "ne\n"},
		{"print clock() > 0;", "true\n"},
		{"print sqrt;", "<native fn>\n"},
	}
	for i, test := range tests {
		expectOutput(t, i, test.input, test.expected)
	}
}

func TestNativeErrors(t *testing.T) {
	tests := []struct {
		input string
		kind  eval.ErrorKind
		msg   string
	}{
		{"sqrt(-1);", eval.DomainError, "Argument must be non-negative."},
		{"tan(90);", eval.DomainError, "Tangent is undefined for this angle."},
		{"tan(-270);", eval.DomainError, "Tangent is undefined for this angle."},
		{`editChar("cat", 0, "b");`, eval.DomainError, "Position out of bounds."},
		{`editChar("cat", 4, "b");`, eval.DomainError, "Position out of bounds."},
		{`sqrt("a");`, eval.TypeError, "Argument must be a number."},
		{`pow(2, "a");`, eval.TypeError, "The power must be a number."},
		{`round(1, nil);`, eval.TypeError, "Argument must be a number."},
		{"cap(1);", eval.TypeError, "Argument must be a string."},
		{`editChar(1, 1, "b");`, eval.TypeError, "First argument must be a string."},
		{`editChar("a", "1", "b");`, eval.TypeError, "Second argument must be a number."},
		{`editChar("a", 1, 2);`, eval.TypeError, "Third argument must be a string."},
		{"sqrt(1, 2);", eval.ArityError, "Expected 1 arguments but got 2."},
	}
	for i, test := range tests {
		expectRuntimeError(t, i, test.input, test.kind, test.msg)
	}
}

func TestNativeErrorTrace(t *testing.T) {
	input := "fun f() {\n  sqrt(-1);\n}\nf();"
	rerr := expectRuntimeError(t, 0, input, eval.DomainError, "Argument must be non-negative.")
	if rerr == nil {
		return
	}
	if len(rerr.Trace) != 2 {
		t.Fatalf("expected 2 trace entries, got=%+v", rerr.Trace)
	}
	if e := rerr.Trace[0]; e.Line != 2 || e.Column != 10 || e.Context != "[Function f]" {
		t.Errorf("unexpected trace entry %+v", e)
	}
}

func TestFileNatives(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.txt")
	input := fmt.Sprintf(`
var path = %q;
writeFile(path, "one");
writeFile(path, "two");
appendFile(path, 3);
appendFile(path, nil);
print readFile(path);
`, path)
	expectOutput(t, 0, input, "two3nil\n")

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("unexpected error %s", err)
	}
	if string(b) != "two3nil" {
		t.Errorf("expected=%q, got=%q", "two3nil", string(b))
	}
}

func TestFileNativeErrors(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing", "file.txt")
	tests := []struct {
		input  string
		prefix string
	}{
		{fmt.Sprintf("readFile(%q);", missing), "Failed to read file: "},
		{fmt.Sprintf("writeFile(%q, 1);", missing), "Failed to write to file: "},
		{fmt.Sprintf("appendFile(%q, 1);", missing), "Failed to append to file: "},
	}
	for i, test := range tests {
		_, err := run(test.input)
		var rerr *eval.RuntimeError
		if !errors.As(err, &rerr) {
			t.Errorf("tests[%d]: expected runtime error, got=%v", i, err)
			continue
		}
		if rerr.Kind != eval.IOFailure || !strings.HasPrefix(rerr.Message, test.prefix) {
			t.Errorf("tests[%d]: unexpected error %s", i, rerr)
		}
		if !errors.Is(err, os.ErrNotExist) {
			t.Errorf("tests[%d]: expected the cause to be kept, got=%v", i, rerr.Err)
		}
	}
}

func TestInput(t *testing.T) {
	var out bytes.Buffer
	stdin := strings.NewReader("first line\r\nsecond\nlast")
	session := eval.NewSession("test.yz", eval.WithStdout(&out), eval.WithStdin(stdin))
	_, err := session.Run("print input(); print input(); print input(); print input();")
	if err != nil {
		t.Fatalf("unexpected error %s", err)
	}
	expected := "first line\nsecond\nlast\nnil\n"
	if out.String() != expected {
		t.Errorf("expected=%q, got=%q", expected, out.String())
	}
}
