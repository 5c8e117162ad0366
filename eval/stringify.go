package eval

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// This file implements how values are printed: Stringify gives the form
// used by print, and Inspect the one the REPL echoes, which differs only
// in that strings are quoted.

type Stringer interface {
	String() string
}

func Stringify(v Value) string {
	if s, ok := v.(Stringer); ok {
		return s.String()
	}
	panic(fmt.Sprintf("cannot stringify: %#+v", v))
}

func Inspect(v Value) string {
	if s, ok := v.(String); ok {
		return strconv.Quote(string(s))
	}
	return Stringify(v)
}

func (v Nil) String() string { return "nil" }
func (v Boolean) String() string {
	if v {
		return "true"
	}
	return "false"
}
func (v String) String() string { return string(v) }

// Numbers print without a trailing ".0" when integral, and switch to
// exponent form for very large or very small magnitudes.
func (v Number) String() string {
	f := float64(v)
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		if math.Signbit(f) {
			return "-0"
		}
		return "0"
	}
	abs := math.Abs(f)
	if abs >= 1e21 || abs < 1e-6 {
		// 1e-07 => 1e-7
		s := strconv.FormatFloat(f, 'e', -1, 64)
		s = strings.Replace(s, "e-0", "e-", 1)
		return strings.Replace(s, "e+0", "e+", 1)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func (v *NativeFunction) String() string { return "<native fn>" }
func (v *Function) String() string       { return "<fn " + v.Name() + ">" }
func (v *Class) String() string          { return v.name }
func (v *Instance) String() string       { return v.class.name + " instance" }
