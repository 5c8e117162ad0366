package eval

type ValueType uint8

const (
	_ = ValueType(iota)
	// Real values
	VT_NIL
	VT_BOOLEAN
	VT_NUMBER
	VT_STRING
	VT_NATIVE
	VT_FUNCTION
	VT_CLASS
	VT_INSTANCE
	// Runtime Control
	VT_RETURN
)

var valueTypeNames = [...]string{
	VT_NIL:      "nil",
	VT_BOOLEAN:  "boolean",
	VT_NUMBER:   "number",
	VT_STRING:   "string",
	VT_NATIVE:   "native",
	VT_FUNCTION: "function",
	VT_CLASS:    "class",
	VT_INSTANCE: "instance",
	VT_RETURN:   "return",
}

func (t ValueType) String() string {
	if int(t) < len(valueTypeNames) && valueTypeNames[t] != "" {
		return valueTypeNames[t]
	}
	return "unknown"
}

type Value interface {
	Type() ValueType
}

// =======
// Objects
// =======
//
// When we speak of objects, they refer to the `real' values in the runtime,
// not control values. All `real' values additionally implement Stringer.

type Nil struct{}
type Boolean bool
type Number float64
type String string

func (v Nil) Type() ValueType       { return VT_NIL }
func (v Boolean) Type() ValueType   { return VT_BOOLEAN }
func (v Number) Type() ValueType    { return VT_NUMBER }
func (v String) Type() ValueType    { return VT_STRING }
func (v *Function) Type() ValueType { return VT_FUNCTION }
func (v *Class) Type() ValueType    { return VT_CLASS }
func (v *Instance) Type() ValueType { return VT_INSTANCE }

func (v *NativeFunction) Type() ValueType { return VT_NATIVE }

// ==========
// Singletons
// ==========

var (
	NIL   = Nil{}
	TRUE  = Boolean(true)
	FALSE = Boolean(false)
)

// ===============
// Runtime Control
// ===============

// Return is produced by a return statement and travels up through
// blocks, ifs and loops until the enclosing function call unwraps it.
type Return struct{ value Value }

func (v Return) Type() ValueType { return VT_RETURN }

func isReturn(v Value) bool {
	_, ok := v.(Return)
	return ok
}

func isTruthy(v Value) bool {
	switch v := v.(type) {
	case Nil:
		return false
	case Boolean:
		return bool(v)
	}
	return true
}

// isEqual compares values: nil equals only nil, numbers by value
// (so NaN is unequal to itself), strings by content, and everything
// else by identity.
func isEqual(a, b Value) bool {
	return a == b
}
