package interpreter

import (
	"fmt"
	"io"

	"minilang/pkg/runtime"
)

// registerBuiltins populates the built-ins table (spec.md §6), grounded
// on the teacher's pattern of a builtins table consulted last during name
// resolution — here adapted from static-type registration
// (pkg/typechecker/builtins.go) to runtime values. print writes to out
// (Options.Output), defaulting to stdout.
func registerBuiltins(table *runtime.Frame, out io.Writer) {
	table.Define("print", runtime.BuiltinValue{Name: "print", Call: func(line int, args []runtime.Value) (runtime.Value, error) {
		return builtinPrint(out, line, args)
	}})
	table.Define("len", runtime.BuiltinValue{Name: "len", Call: builtinLen})
}

// builtinPrint writes v's human-readable representation followed by a
// line terminator (spec.md §6 "print formatting"; Open Question decision
// 4: one unconditional newline per call).
func builtinPrint(out io.Writer, line int, args []runtime.Value) (runtime.Value, error) {
	if len(args) != 1 {
		return nil, &ArityError{Line: line, Name: "print", Want: 1, Got: len(args)}
	}
	fmt.Fprintln(out, stringify(args[0]))
	return runtime.NilValue{}, nil
}

// builtinLen yields an Array's element count or a String's byte count
// (spec.md §6 "len").
func builtinLen(line int, args []runtime.Value) (runtime.Value, error) {
	if len(args) != 1 {
		return nil, &ArityError{Line: line, Name: "len", Want: 1, Got: len(args)}
	}
	switch v := args[0].(type) {
	case *runtime.ArrayValue:
		return runtime.NumberValue{Val: float64(len(v.Elements))}, nil
	case runtime.StringValue:
		return runtime.NumberValue{Val: float64(len(v.Val))}, nil
	default:
		return nil, &TypeError{Line: line, Message: fmt.Sprintf("len expects an array or string, got %s", v.Kind())}
	}
}
