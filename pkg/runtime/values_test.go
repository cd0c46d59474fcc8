package runtime

import "testing"

func TestEqual(t *testing.T) {
	cases := []struct {
		name string
		a, b Value
		want bool
	}{
		{"equal numbers", NumberValue{Val: 1}, NumberValue{Val: 1}, true},
		{"unequal numbers", NumberValue{Val: 1}, NumberValue{Val: 2}, false},
		{"equal strings", StringValue{Val: "a"}, StringValue{Val: "a"}, true},
		{"equal bools", BoolValue{Val: true}, BoolValue{Val: true}, true},
		{"nil equals nil", NilValue{}, NilValue{}, true},
		{"cross-type", NumberValue{Val: 1}, StringValue{Val: "1"}, false},
		{"arrays never equal", &ArrayValue{}, &ArrayValue{}, false},
		{"functions never equal", &FunctionValue{Name: "f"}, &FunctionValue{Name: "f"}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Equal(c.a, c.b); got != c.want {
				t.Fatalf("Equal(%#v, %#v) = %v, want %v", c.a, c.b, got, c.want)
			}
		})
	}
}

// TestArrayAliasing exercises spec.md §3: distinct ArrayValue bindings
// backed by the same pointer observe each other's mutations.
func TestArrayAliasing(t *testing.T) {
	a := &ArrayValue{Elements: []Value{NumberValue{Val: 1}, NumberValue{Val: 2}}}
	b := a
	a.Elements[0] = NumberValue{Val: 9}

	if got := b.Elements[0].(NumberValue).Val; got != 9 {
		t.Fatalf("expected aliased mutation to be visible, got %v", got)
	}
}

func TestKindString(t *testing.T) {
	cases := map[Kind]string{
		KindNumber:   "number",
		KindString:   "string",
		KindBool:     "bool",
		KindArray:    "array",
		KindFunction: "function",
		KindNil:      "null",
	}
	for k, want := range cases {
		if got := k.String(); got != want {
			t.Fatalf("Kind(%d).String() = %q, want %q", k, got, want)
		}
	}
}
