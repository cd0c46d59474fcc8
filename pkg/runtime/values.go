package runtime

import "minilang/pkg/ast"

// Kind identifies the runtime value category.
type Kind int

const (
	KindNumber Kind = iota
	KindString
	KindBool
	KindArray
	KindFunction
	KindNil
)

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindArray:
		return "array"
	case KindFunction:
		return "function"
	case KindNil:
		return "null"
	default:
		return "unknown"
	}
}

// Value is the shared behaviour for all runtime values.
type Value interface {
	Kind() Kind
}

//-----------------------------------------------------------------------------
// Scalars — copied by value, as spec.md requires for Number/String/Bool/Null.
//-----------------------------------------------------------------------------

type NumberValue struct {
	Val float64
}

func (v NumberValue) Kind() Kind { return KindNumber }

type StringValue struct {
	Val string
}

func (v StringValue) Kind() Kind { return KindString }

type BoolValue struct {
	Val bool
}

func (v BoolValue) Kind() Kind { return KindBool }

type NilValue struct{}

func (NilValue) Kind() Kind { return KindNil }

//-----------------------------------------------------------------------------
// Sharing-capable values — pointer receivers so every alias of a binding
// observes mutation through any other alias (spec.md §3 aliasing invariant).
//-----------------------------------------------------------------------------

// ArrayValue is a mutable, shared, ordered sequence of values. Index
// assignment mutates Elements in place; copying an ArrayValue pointer (by
// `let b = a`, by passing it as an argument, or by storing it in another
// array) never copies the backing slice.
type ArrayValue struct {
	Elements []Value
}

func (v *ArrayValue) Kind() Kind { return KindArray }

// FunctionValue is a user-defined function: a parameter list and a body.
// It does not carry a captured environment — minilang functions never
// capture their enclosing lexical scope (spec.md §4.3 "Name resolution").
type FunctionValue struct {
	Name   string
	Params []string
	Body   *ast.Block
}

func (v *FunctionValue) Kind() Kind { return KindFunction }

// BuiltinValue wraps a host-provided callable (spec.md §6 "print", "len")
// as a Value so it can flow through the same Ident-lookup and Call
// dispatch path as a user Function, grounded on the teacher's
// NativeFunctionValue (pkg/runtime/values.go).
type BuiltinValue struct {
	Name string
	Call func(line int, args []Value) (Value, error)
}

func (v BuiltinValue) Kind() Kind { return KindFunction }

// Truthy reports whether v may stand as a condition. Only Bool is
// truthy/falsy in minilang; callers must reject every other kind with a
// type error rather than coerce it (spec.md §4.3 "if / else").
func Truthy(v Value) (bool, bool) {
	b, ok := v.(BoolValue)
	if !ok {
		return false, false
	}
	return b.Val, true
}

// Equal implements the structural-for-scalars, always-false-for-arrays-and-
// functions equality table from spec.md §4.3.
func Equal(a, b Value) bool {
	switch av := a.(type) {
	case NumberValue:
		bv, ok := b.(NumberValue)
		return ok && av.Val == bv.Val
	case StringValue:
		bv, ok := b.(StringValue)
		return ok && av.Val == bv.Val
	case BoolValue:
		bv, ok := b.(BoolValue)
		return ok && av.Val == bv.Val
	case NilValue:
		_, ok := b.(NilValue)
		return ok
	default:
		// Arrays and Functions never satisfy ==, even against themselves.
		return false
	}
}
