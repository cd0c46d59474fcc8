package interpreter

import (
	"math"
	"strconv"
	"strings"

	"minilang/pkg/runtime"
)

// stringify formats a value for print (spec.md §6 "print formatting"),
// grounded on the teacher's valueToString (pkg/interpreter/interpreter_stringify.go)
// trimmed to minilang's six value kinds.
func stringify(v runtime.Value) string {
	switch val := v.(type) {
	case runtime.NumberValue:
		return formatNumber(val.Val)
	case runtime.StringValue:
		return val.Val
	case runtime.BoolValue:
		if val.Val {
			return "true"
		}
		return "false"
	case runtime.NilValue:
		return "null"
	case *runtime.ArrayValue:
		parts := make([]string, 0, len(val.Elements))
		for _, el := range val.Elements {
			parts = append(parts, stringify(el))
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case *runtime.FunctionValue:
		return "<fn>"
	case runtime.BuiltinValue:
		return "<fn>"
	default:
		return "<" + v.Kind().String() + ">"
	}
}

// formatNumber prints an integral value within the safe integer range
// without a decimal point, and otherwise with the shortest round-tripping
// decimal representation (spec.md §6 "print formatting", Number case).
func formatNumber(n float64) string {
	const maxSafeInt = 1 << 53
	if math.Trunc(n) == n && math.Abs(n) < maxSafeInt {
		return strconv.FormatInt(int64(n), 10)
	}
	return strconv.FormatFloat(n, 'g', -1, 64)
}
