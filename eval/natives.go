package eval

import (
	"io"
	"math"
	"os"
	"strings"
	"time"
	"unicode/utf8"
	"yazz/lexer"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ================
// Native functions
// ================

var (
	upper = cases.Upper(language.Und)
	lower = cases.Lower(language.Und)
)

func defineNatives(env *Environment) {
	natives := []*NativeFunction{
		newNative("clock", 0, bi_clock),
		newNative("input", 0, bi_input),
		newNative("readFile", 1, bi_readFile),
		newNative("writeFile", 2, bi_writeFile),
		newNative("appendFile", 2, bi_appendFile),
		newNative("cap", 1, bi_cap),
		newNative("uncap", 1, bi_uncap),
		newNative("countChars", 1, bi_countChars),
		newNative("editChar", 3, bi_editChar),
		newNative("sqrt", 1, bi_sqrt),
		newNative("pow", 2, bi_pow),
		newNative("sin", 1, bi_sin),
		newNative("cos", 1, bi_cos),
		newNative("tan", 1, bi_tan),
		newNative("round", 2, bi_round),
	}
	for _, n := range natives {
		env.Define(n.name, n)
	}
}

// -----
// clock
// -----
func bi_clock(in *Interpreter, args []Value, site lexer.Token) (Value, error) {
	return Number(float64(time.Now().UnixNano()) / 1e9), nil
}

// -----
// input
// -----
func bi_input(in *Interpreter, args []Value, site lexer.Token) (Value, error) {
	line, err := in.stdin.ReadString('\n')
	if err == io.EOF && line == "" {
		return NIL, nil
	}
	if err != nil && err != io.EOF {
		return nil, wrapRuntimeError(IOFailure, site, err, "Error reading input from user.")
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return String(line), nil
}

// --------
// File I/O
// --------

func bi_readFile(in *Interpreter, args []Value, site lexer.Token) (Value, error) {
	path, err := expectString(site, args[0], "Argument must be a string.")
	if err != nil {
		return nil, err
	}
	b, ioErr := os.ReadFile(path)
	if ioErr != nil {
		return nil, wrapRuntimeError(IOFailure, site, ioErr, "Failed to read file: %s", ioErr)
	}
	return String(b), nil
}

func bi_writeFile(in *Interpreter, args []Value, site lexer.Token) (Value, error) {
	path, err := expectString(site, args[0], "First argument must be a string.")
	if err != nil {
		return nil, err
	}
	if ioErr := os.WriteFile(path, []byte(Stringify(args[1])), 0o644); ioErr != nil {
		return nil, wrapRuntimeError(IOFailure, site, ioErr, "Failed to write to file: %s", ioErr)
	}
	return NIL, nil
}

func bi_appendFile(in *Interpreter, args []Value, site lexer.Token) (Value, error) {
	path, err := expectString(site, args[0], "First argument must be a string.")
	if err != nil {
		return nil, err
	}
	if ioErr := appendFile(path, Stringify(args[1])); ioErr != nil {
		return nil, wrapRuntimeError(IOFailure, site, ioErr, "Failed to append to file: %s", ioErr)
	}
	return NIL, nil
}

func appendFile(path, content string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	if _, err := f.WriteString(content); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// -------
// Strings
// -------

func bi_cap(in *Interpreter, args []Value, site lexer.Token) (Value, error) {
	s, err := expectString(site, args[0], "Argument must be a string.")
	if err != nil {
		return nil, err
	}
	return String(upper.String(s)), nil
}

func bi_uncap(in *Interpreter, args []Value, site lexer.Token) (Value, error) {
	s, err := expectString(site, args[0], "Argument must be a string.")
	if err != nil {
		return nil, err
	}
	return String(lower.String(s)), nil
}

func bi_countChars(in *Interpreter, args []Value, site lexer.Token) (Value, error) {
	s, err := expectString(site, args[0], "Argument must be a string.")
	if err != nil {
		return nil, err
	}
	return Number(utf8.RuneCountInString(s)), nil
}

// editChar(s, pos, c) replaces the character at the 1-based
// position pos with c, which may be any string.
func bi_editChar(in *Interpreter, args []Value, site lexer.Token) (Value, error) {
	s, err := expectString(site, args[0], "First argument must be a string.")
	if err != nil {
		return nil, err
	}
	pos, err := expectNumber(site, args[1], "Second argument must be a number.")
	if err != nil {
		return nil, err
	}
	c, err := expectString(site, args[2], "Third argument must be a string.")
	if err != nil {
		return nil, err
	}
	runes := []rune(s)
	i := int(math.Trunc(pos)) - 1
	if math.IsNaN(pos) || i < 0 || i >= len(runes) {
		return nil, newRuntimeError(DomainError, site, "Position out of bounds.")
	}
	return String(string(runes[:i]) + c + string(runes[i+1:])), nil
}

// ----
// Math
// ----

func bi_sqrt(in *Interpreter, args []Value, site lexer.Token) (Value, error) {
	n, err := expectNumber(site, args[0], "Argument must be a number.")
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, newRuntimeError(DomainError, site, "Argument must be non-negative.")
	}
	return Number(math.Sqrt(n)), nil
}

func bi_pow(in *Interpreter, args []Value, site lexer.Token) (Value, error) {
	n, err := expectNumber(site, args[0], "Argument must be a number.")
	if err != nil {
		return nil, err
	}
	p, err := expectNumber(site, args[1], "The power must be a number.")
	if err != nil {
		return nil, err
	}
	return Number(math.Pow(n, p)), nil
}

func bi_sin(in *Interpreter, args []Value, site lexer.Token) (Value, error) {
	return trig(site, args[0], math.Sin)
}

func bi_cos(in *Interpreter, args []Value, site lexer.Token) (Value, error) {
	return trig(site, args[0], math.Cos)
}

func bi_tan(in *Interpreter, args []Value, site lexer.Token) (Value, error) {
	d, err := expectNumber(site, args[0], "Argument must be a number.")
	if err != nil {
		return nil, err
	}
	if math.Abs(math.Cos(radians(d))) < 1e-9 {
		return nil, newRuntimeError(DomainError, site, "Tangent is undefined for this angle.")
	}
	return Number(roundTo(math.Tan(radians(d)), 4)), nil
}

func bi_round(in *Interpreter, args []Value, site lexer.Token) (Value, error) {
	n, err := expectNumber(site, args[0], "Argument must be a number.")
	if err != nil {
		return nil, err
	}
	places, err := expectNumber(site, args[1], "Argument must be a number.")
	if err != nil {
		return nil, err
	}
	return Number(roundTo(n, math.Trunc(places))), nil
}

// trig takes an angle in degrees, and rounds the result to 4 places.
func trig(site lexer.Token, arg Value, f func(float64) float64) (Value, error) {
	d, err := expectNumber(site, arg, "Argument must be a number.")
	if err != nil {
		return nil, err
	}
	return Number(roundTo(f(radians(d)), 4)), nil
}

func radians(d float64) float64 { return d * math.Pi / 180 }

// roundTo rounds half-up to the given number of decimal places.
func roundTo(n, places float64) float64 {
	scale := math.Pow(10, places)
	return math.Floor(n*scale+0.5) / scale
}

// =========
// Utilities
// =========

func expectString(site lexer.Token, v Value, msg string) (string, error) {
	s, ok := v.(String)
	if !ok {
		return "", newRuntimeError(TypeError, site, "%s", msg)
	}
	return string(s), nil
}

func expectNumber(site lexer.Token, v Value, msg string) (float64, error) {
	n, ok := v.(Number)
	if !ok {
		return 0, newRuntimeError(TypeError, site, "%s", msg)
	}
	return float64(n), nil
}
