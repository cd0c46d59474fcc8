package interpreter

import (
	"fmt"
	"math"

	"minilang/pkg/ast"
	"minilang/pkg/runtime"
)

// evalExpr dispatches on the expression's concrete type, mirroring the
// teacher's evaluateExpression type switch (pkg/interpreter/eval_expressions.go).
func (i *Interpreter) evalExpr(node ast.Expression, env *runtime.Environment) (runtime.Value, error) {
	switch n := node.(type) {
	case *ast.Number:
		return runtime.NumberValue{Val: n.Value}, nil
	case *ast.String:
		return runtime.StringValue{Val: n.Value}, nil
	case *ast.Bool:
		return runtime.BoolValue{Val: n.Value}, nil
	case *ast.Ident:
		return i.evalIdent(n, env)
	case *ast.ArrayLit:
		return i.evalArrayLit(n, env)
	case *ast.Binary:
		return i.evalBinary(n, env)
	case *ast.Unary:
		return i.evalUnary(n, env)
	case *ast.Call:
		return i.evalCall(n, env)
	case *ast.Index:
		return i.evalIndex(n, env)
	default:
		return nil, fmt.Errorf("unsupported expression type: %s", n.NodeType())
	}
}

func (i *Interpreter) evalIdent(n *ast.Ident, env *runtime.Environment) (runtime.Value, error) {
	v, ok := env.Get(n.Name)
	if !ok {
		return nil, &NameError{Line: n.Line(), Name: n.Name}
	}
	return v, nil
}

func (i *Interpreter) evalArrayLit(n *ast.ArrayLit, env *runtime.Environment) (runtime.Value, error) {
	elems := make([]runtime.Value, 0, len(n.Elements))
	for _, e := range n.Elements {
		v, err := i.evalExpr(e, env)
		if err != nil {
			return nil, err
		}
		elems = append(elems, v)
	}
	return &runtime.ArrayValue{Elements: elems}, nil
}

// evalBinary evaluates left-to-right, short-circuiting `and`/`or` before
// either operand's value is otherwise needed (spec.md §4.3 "Binary
// operator semantics"; S4 depends on the right operand of a
// short-circuited `and` never being evaluated).
func (i *Interpreter) evalBinary(n *ast.Binary, env *runtime.Environment) (runtime.Value, error) {
	if n.Op == ast.OpAnd || n.Op == ast.OpOr {
		return i.evalLogic(n, env)
	}

	left, err := i.evalExpr(n.Left, env)
	if err != nil {
		return nil, err
	}
	right, err := i.evalExpr(n.Right, env)
	if err != nil {
		return nil, err
	}

	switch n.Op {
	case ast.OpAdd:
		return evalAdd(n.Line(), left, right)
	case ast.OpSub, ast.OpMul, ast.OpDiv, ast.OpMod:
		return evalArith(n.Line(), n.Op, left, right)
	case ast.OpEq:
		return runtime.BoolValue{Val: runtime.Equal(left, right)}, nil
	case ast.OpNeq:
		return runtime.BoolValue{Val: !runtime.Equal(left, right)}, nil
	case ast.OpLt, ast.OpLte, ast.OpGt, ast.OpGte:
		return evalCompare(n.Line(), n.Op, left, right)
	default:
		return nil, fmt.Errorf("unsupported binary operator %q", n.Op)
	}
}

func (i *Interpreter) evalLogic(n *ast.Binary, env *runtime.Environment) (runtime.Value, error) {
	left, err := i.evalExpr(n.Left, env)
	if err != nil {
		return nil, err
	}
	lb, ok := left.(runtime.BoolValue)
	if !ok {
		return nil, &TypeError{Line: n.Line(), Message: fmt.Sprintf("%s requires bool operands, got %s", n.Op, left.Kind())}
	}
	if n.Op == ast.OpAnd && !lb.Val {
		return lb, nil
	}
	if n.Op == ast.OpOr && lb.Val {
		return lb, nil
	}
	right, err := i.evalExpr(n.Right, env)
	if err != nil {
		return nil, err
	}
	rb, ok := right.(runtime.BoolValue)
	if !ok {
		return nil, &TypeError{Line: n.Line(), Message: fmt.Sprintf("%s requires bool operands, got %s", n.Op, right.Kind())}
	}
	return rb, nil
}

// evalAdd dispatches `+` on the pair of operand kinds (spec.md §9
// "Operator overloading on +": "dispatched on the pair of operand kinds
// rather than a single operand").
func evalAdd(line int, left, right runtime.Value) (runtime.Value, error) {
	switch l := left.(type) {
	case runtime.NumberValue:
		r, ok := right.(runtime.NumberValue)
		if !ok {
			return nil, typeMismatch(line, "+", left, right)
		}
		return runtime.NumberValue{Val: l.Val + r.Val}, nil
	case runtime.StringValue:
		r, ok := right.(runtime.StringValue)
		if !ok {
			return nil, typeMismatch(line, "+", left, right)
		}
		return runtime.StringValue{Val: l.Val + r.Val}, nil
	case *runtime.ArrayValue:
		r, ok := right.(*runtime.ArrayValue)
		if !ok {
			return nil, typeMismatch(line, "+", left, right)
		}
		combined := make([]runtime.Value, 0, len(l.Elements)+len(r.Elements))
		combined = append(combined, l.Elements...)
		combined = append(combined, r.Elements...)
		return &runtime.ArrayValue{Elements: combined}, nil
	default:
		return nil, typeMismatch(line, "+", left, right)
	}
}

func evalArith(line int, op ast.BinaryOp, left, right runtime.Value) (runtime.Value, error) {
	l, ok := left.(runtime.NumberValue)
	if !ok {
		return nil, typeMismatch(line, string(op), left, right)
	}
	r, ok := right.(runtime.NumberValue)
	if !ok {
		return nil, typeMismatch(line, string(op), left, right)
	}
	switch op {
	case ast.OpSub:
		return runtime.NumberValue{Val: l.Val - r.Val}, nil
	case ast.OpMul:
		return runtime.NumberValue{Val: l.Val * r.Val}, nil
	case ast.OpDiv:
		if r.Val == 0 {
			return nil, &ArithmeticError{Line: line, Op: "division"}
		}
		return runtime.NumberValue{Val: l.Val / r.Val}, nil
	case ast.OpMod:
		if r.Val == 0 {
			return nil, &ArithmeticError{Line: line, Op: "modulo"}
		}
		return runtime.NumberValue{Val: math.Mod(l.Val, r.Val)}, nil
	default:
		return nil, fmt.Errorf("unsupported arithmetic operator %q", op)
	}
}

func evalCompare(line int, op ast.BinaryOp, left, right runtime.Value) (runtime.Value, error) {
	var less, equal bool
	switch l := left.(type) {
	case runtime.NumberValue:
		r, ok := right.(runtime.NumberValue)
		if !ok {
			return nil, typeMismatch(line, string(op), left, right)
		}
		less, equal = l.Val < r.Val, l.Val == r.Val
	case runtime.StringValue:
		r, ok := right.(runtime.StringValue)
		if !ok {
			return nil, typeMismatch(line, string(op), left, right)
		}
		less, equal = l.Val < r.Val, l.Val == r.Val
	default:
		return nil, typeMismatch(line, string(op), left, right)
	}
	switch op {
	case ast.OpLt:
		return runtime.BoolValue{Val: less}, nil
	case ast.OpLte:
		return runtime.BoolValue{Val: less || equal}, nil
	case ast.OpGt:
		return runtime.BoolValue{Val: !less && !equal}, nil
	case ast.OpGte:
		return runtime.BoolValue{Val: !less}, nil
	default:
		return nil, fmt.Errorf("unsupported comparison operator %q", op)
	}
}

func (i *Interpreter) evalUnary(n *ast.Unary, env *runtime.Environment) (runtime.Value, error) {
	operand, err := i.evalExpr(n.Operand, env)
	if err != nil {
		return nil, err
	}
	switch n.Op {
	case ast.OpNeg:
		num, ok := operand.(runtime.NumberValue)
		if !ok {
			return nil, &TypeError{Line: n.Line(), Message: fmt.Sprintf("unary - requires a number, got %s", operand.Kind())}
		}
		return runtime.NumberValue{Val: -num.Val}, nil
	case ast.OpNot:
		b, ok := operand.(runtime.BoolValue)
		if !ok {
			return nil, &TypeError{Line: n.Line(), Message: fmt.Sprintf("not requires a bool, got %s", operand.Kind())}
		}
		return runtime.BoolValue{Val: !b.Val}, nil
	default:
		return nil, fmt.Errorf("unsupported unary operator %q", n.Op)
	}
}

// evalCall implements spec.md §4.3 "Call": evaluate the callee, then the
// arguments left-to-right, then dispatch on the callee's kind.
func (i *Interpreter) evalCall(n *ast.Call, env *runtime.Environment) (runtime.Value, error) {
	callee, err := i.evalExpr(n.Callee, env)
	if err != nil {
		return nil, err
	}
	args := make([]runtime.Value, 0, len(n.Args))
	for _, a := range n.Args {
		v, err := i.evalExpr(a, env)
		if err != nil {
			return nil, err
		}
		args = append(args, v)
	}

	switch fn := callee.(type) {
	case *runtime.FunctionValue:
		return i.invoke(n.Line(), fn, args)
	case runtime.BuiltinValue:
		return fn.Call(n.Line(), args)
	default:
		return nil, &TypeError{Line: n.Line(), Message: fmt.Sprintf("%s is not callable", callee.Kind())}
	}
}

// invoke pushes a fresh frame, binds parameters, and runs the function
// body (spec.md §4.3 "Call"). The frame is popped on every exit path via
// defer, matching the teacher's own "pop on every exit path" discipline.
func (i *Interpreter) invoke(line int, fn *runtime.FunctionValue, args []runtime.Value) (runtime.Value, error) {
	if len(args) != len(fn.Params) {
		return nil, &ArityError{Line: line, Name: fn.Name, Want: len(fn.Params), Got: len(args)}
	}
	if i.depth >= i.opts.RecursionLimit {
		return nil, &RecursionError{Line: line, Limit: i.opts.RecursionLimit}
	}

	frame := runtime.NewFrame()
	for idx, param := range fn.Params {
		frame.Define(param, args[idx])
	}

	pop := i.env.PushCall(frame)
	i.depth++
	defer func() {
		i.depth--
		pop()
	}()

	ctrl, err := i.execBlock(fn.Body, i.env)
	if err != nil {
		return nil, err
	}
	if ctrl.isReturn() {
		return ctrl.value, nil
	}
	return runtime.NilValue{}, nil
}

func (i *Interpreter) evalIndex(n *ast.Index, env *runtime.Environment) (runtime.Value, error) {
	target, err := i.evalExpr(n.Target, env)
	if err != nil {
		return nil, err
	}
	idxVal, err := i.evalExpr(n.Idx, env)
	if err != nil {
		return nil, err
	}
	switch t := target.(type) {
	case *runtime.ArrayValue:
		idx, err := arrayIndex(n.Line(), idxVal, len(t.Elements))
		if err != nil {
			return nil, err
		}
		return t.Elements[idx], nil
	case runtime.StringValue:
		// Open Question decision 2 (SPEC_FULL.md): string indexing is a
		// type error, matching original_source's Index evaluation, which
		// has no string case.
		return nil, &TypeError{Line: n.Line(), Message: "strings are not indexable"}
	default:
		return nil, &TypeError{Line: n.Line(), Message: fmt.Sprintf("%s is not indexable", target.Kind())}
	}
}

func typeMismatch(line int, op string, left, right runtime.Value) error {
	return &TypeError{Line: line, Message: fmt.Sprintf("%s does not support %s and %s", op, left.Kind(), right.Kind())}
}

// integralNumber requires v to be a Number with no fractional part,
// returning it as an int64 (spec.md §4.3 "for x in a..b": "both must be
// Number, integral").
func integralNumber(line int, v runtime.Value, ctx string) (int64, error) {
	n, ok := v.(runtime.NumberValue)
	if !ok {
		return 0, &TypeError{Line: line, Message: fmt.Sprintf("%s must be a number, got %s", ctx, v.Kind())}
	}
	if math.Trunc(n.Val) != n.Val {
		return 0, &TypeError{Line: line, Message: fmt.Sprintf("%s must be integral, got %g", ctx, n.Val)}
	}
	return int64(n.Val), nil
}

// arrayIndex requires idx to be a non-negative integral Number strictly
// less than length (spec.md §3 "Index operations require a non-negative
// integral index strictly less than the array length").
func arrayIndex(line int, idx runtime.Value, length int) (int, error) {
	n, ok := idx.(runtime.NumberValue)
	if !ok {
		return 0, &IndexError{Line: line, Message: fmt.Sprintf("index must be a number, got %s", idx.Kind())}
	}
	if math.Trunc(n.Val) != n.Val {
		return 0, &IndexError{Line: line, Message: fmt.Sprintf("index must be integral, got %g", n.Val)}
	}
	if n.Val < 0 || int(n.Val) >= length {
		return 0, &IndexError{Line: line, Message: fmt.Sprintf("index %g out of range for length %d", n.Val, length)}
	}
	return int(n.Val), nil
}
