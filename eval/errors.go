package eval

import (
	"bytes"
	"errors"
	"fmt"
	"yazz/lexer"
)

// This file implements error formatting and reporting mechanisms.
// The protocol around adding errors is:
//
//   1. Every time we call a function, we need to do in.pushFunc(...),
//      and returning from it similarly does an in.popFunc().
//
//   2. A runtime error is created without a trace. When it leaves the
//      frame it was raised in, we record where in that frame it
//      happened (its token), together with the frame's context.
//
//   3. Every call site it then propagates through adds the location
//      of the call, in the frame that made the call.

var ErrStackOverflow = errors.New("stack overflow")

type ErrorKind uint8

const (
	_ = ErrorKind(iota)
	TypeError
	ArityError
	UndefinedVariable
	UndefinedProperty
	DomainError
	IOFailure
)

var errorKindNames = [...]string{
	TypeError:         "TypeError",
	ArityError:        "ArityError",
	UndefinedVariable: "UndefinedVariable",
	UndefinedProperty: "UndefinedProperty",
	DomainError:       "DomainError",
	IOFailure:         "IOFailure",
}

func (k ErrorKind) String() string {
	if int(k) < len(errorKindNames) && errorKindNames[k] != "" {
		return errorKindNames[k]
	}
	return "Error"
}

type TraceEntry struct {
	Filename string
	Line     int
	Column   int
	Context  string // e.g. [Module] or [Function f]
}

type RuntimeError struct {
	Kind    ErrorKind
	Token   lexer.Token
	Message string
	Err     error // underlying cause, if any
	Trace   []TraceEntry
}

func newRuntimeError(kind ErrorKind, tok lexer.Token, s string, args ...interface{}) *RuntimeError {
	return &RuntimeError{
		Kind:    kind,
		Token:   tok,
		Message: fmt.Sprintf(s, args...),
		Trace:   []TraceEntry{},
	}
}

func wrapRuntimeError(kind ErrorKind, tok lexer.Token, err error, s string, args ...interface{}) *RuntimeError {
	e := newRuntimeError(kind, tok, s, args...)
	e.Err = err
	return e
}

func (e *RuntimeError) Error() string { return e.Kind.String() + ": " + e.Message }
func (e *RuntimeError) Unwrap() error { return e.Err }

func (e *RuntimeError) String() string {
	var buf bytes.Buffer
	buf.WriteString(e.Error())
	for _, ctx := range e.Trace {
		buf.WriteString(fmt.Sprintf("\n  at %s:%d:%d: %s", ctx.Filename, ctx.Line, ctx.Column, ctx.Context))
	}
	return buf.String()
}

// callStackEntry contains partial information about the function call;
// only including the filename and the string.
type callStackEntry interface {
	Filename() string
	Context() string
}

type moduleCse struct{ filename string }

func (m moduleCse) Filename() string { return m.filename }
func (m moduleCse) Context() string  { return "[Module]" }

type functionCse struct {
	function *Function
}

func (f functionCse) Filename() string { return f.function.filename }
func (f functionCse) Context() string  { return "[Function " + f.function.Name() + "]" }

type builtinCse struct {
	builtin *NativeFunction
}

func (b builtinCse) Filename() string { return "[builtin]" }
func (b builtinCse) Context() string  { return "[Function " + b.builtin.name + "]" }

func (in *Interpreter) pushFunc(e callStackEntry) { in.stack = append(in.stack, e) }
func (in *Interpreter) popFunc()                  { in.stack = in.stack[:len(in.stack)-1] }
func (in *Interpreter) currFunc() callStackEntry  { return in.stack[len(in.stack)-1] }

// addErrorStack records the given location, in the currently executing
// frame, on the error's trace.
func (in *Interpreter) addErrorStack(err error, tok lexer.Token) error {
	var e *RuntimeError
	if !errors.As(err, &e) {
		return err
	}
	cse := in.currFunc()
	e.Trace = append(e.Trace, TraceEntry{
		Filename: cse.Filename(),
		Line:     tok.Line,
		Column:   tok.Column,
		Context:  cse.Context(),
	})
	return err
}

// annotate adds the origin of an error to its trace, if it was raised
// in the current frame and has not been recorded yet.
func (in *Interpreter) annotate(err error) error {
	var e *RuntimeError
	if errors.As(err, &e) && len(e.Trace) == 0 {
		return in.addErrorStack(err, e.Token)
	}
	return err
}
