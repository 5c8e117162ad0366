package eval

import (
	"bufio"
	"io"
	"os"
	"yazz/parser"
)

const DefaultMaxDepth = 10000

type Interpreter struct {
	// stack contains the current call stack. we consult the call-stack to tell
	// us which function we're in, and augment that using an expression's token.
	stack []callStackEntry
	// the current environment we're executing, and the outermost one.
	env     *Environment
	globals *Environment
	// distance from the environment of use to the one of definition,
	// for every locally bound reference.
	locals   map[parser.Expr]int
	filename string
	stdout   io.Writer
	stdin    *bufio.Reader
	maxDepth int
}

type Option func(in *Interpreter)

func WithStdout(w io.Writer) Option {
	return func(in *Interpreter) { in.stdout = w }
}

func WithStdin(r io.Reader) Option {
	return func(in *Interpreter) { in.stdin = bufio.NewReader(r) }
}

// WithFilename sets the name under which top-level code and the
// functions it defines are reported in traces.
func WithFilename(filename string) Option {
	return func(in *Interpreter) { in.filename = filename }
}

// WithMaxDepth bounds the number of nested function calls; 0 means
// no bound other than the host stack.
func WithMaxDepth(depth int) Option {
	return func(in *Interpreter) { in.maxDepth = depth }
}

func New(opts ...Option) *Interpreter {
	globals := newEnvironment(nil)
	in := &Interpreter{
		stack:    make([]callStackEntry, 0, 8),
		env:      globals,
		globals:  globals,
		locals:   map[parser.Expr]int{},
		filename: "<stdin>",
		stdout:   os.Stdout,
		stdin:    bufio.NewReader(os.Stdin),
		maxDepth: DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(in)
	}
	in.pushFunc(moduleCse{in.filename})
	defineNatives(globals)
	return in
}

// Resolve records the scope distance of a locally bound reference.
func (in *Interpreter) Resolve(expr parser.Expr, depth int) {
	in.locals[expr] = depth
}

// Interpret executes the statements in order, stopping at the
// first runtime error.
func (in *Interpreter) Interpret(stmts []parser.Stmt) error {
	for _, stmt := range stmts {
		if _, err := in.execute(stmt); err != nil {
			return in.annotate(err)
		}
	}
	return nil
}

// Evaluate evaluates a single expression in the global environment.
func (in *Interpreter) Evaluate(expr parser.Expr) (Value, error) {
	v, err := in.evaluate(expr)
	if err != nil {
		return nil, in.annotate(err)
	}
	return v, nil
}
