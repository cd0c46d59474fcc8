package interpreter

import (
	"fmt"

	"minilang/pkg/ast"
	"minilang/pkg/runtime"
)

// execStatement dispatches on the statement's concrete type, mirroring
// the teacher's evaluateStatement type switch (pkg/interpreter/eval_statements.go),
// generalized to return the explicit control-flow variant spec.md §9
// calls for instead of smuggling it through error.
func (i *Interpreter) execStatement(node ast.Statement, env *runtime.Environment) (controlFlow, error) {
	switch n := node.(type) {
	case *ast.Let:
		return i.execLet(n, env)
	case *ast.Assign:
		return i.execAssign(n, env)
	case *ast.IndexAssign:
		return i.execIndexAssign(n, env)
	case *ast.If:
		return i.execIf(n, env)
	case *ast.While:
		return i.execWhile(n, env)
	case *ast.For:
		return i.execFor(n, env)
	case *ast.Fn:
		return i.execFn(n, env)
	case *ast.Return:
		return i.execReturn(n, env)
	case *ast.ExprStmt:
		_, err := i.evalExpr(n.Expr, env)
		return flowNone, err
	default:
		return flowNone, fmt.Errorf("unsupported statement type: %s", n.NodeType())
	}
}

// execBlock runs a block's statements in order without pushing a new
// frame (spec.md §4.3 "Block execution": "Blocks do not introduce a new
// frame"). It stops and propagates as soon as a statement returns.
func (i *Interpreter) execBlock(block *ast.Block, env *runtime.Environment) (controlFlow, error) {
	for _, stmt := range block.Statements {
		ctrl, err := i.execStatement(stmt, env)
		if err != nil {
			return flowNone, err
		}
		if ctrl.isReturn() {
			return ctrl, nil
		}
	}
	return flowNone, nil
}

func (i *Interpreter) execLet(n *ast.Let, env *runtime.Environment) (controlFlow, error) {
	if err := i.checkBuiltinShadowing(n.Line(), n.Name, env); err != nil {
		return flowNone, err
	}
	val, err := i.evalExpr(n.Expr, env)
	if err != nil {
		return flowNone, err
	}
	env.Define(n.Name, val)
	return flowNone, nil
}

// checkBuiltinShadowing enforces Options.AllowBuiltinShadowing (spec.md
// §6: built-ins are "not rebindable by let/fn at top level — or,
// equivalently, shadowable... implementations may choose either"). Only
// top-level bindings can collide with a built-in, since a call frame's
// own `let`/parameter bindings never share the built-ins tier.
func (i *Interpreter) checkBuiltinShadowing(line int, name string, env *runtime.Environment) error {
	if i.opts.AllowBuiltinShadowing || env.Active() != env.Global {
		return nil
	}
	if _, ok := env.Builtins.Get(name); ok {
		return &NameError{Line: line, Name: name}
	}
	return nil
}

func (i *Interpreter) execAssign(n *ast.Assign, env *runtime.Environment) (controlFlow, error) {
	val, err := i.evalExpr(n.Expr, env)
	if err != nil {
		return flowNone, err
	}
	if !env.Assign(n.Name, val) {
		return flowNone, &NameError{Line: n.Line(), Name: n.Name}
	}
	return flowNone, nil
}

func (i *Interpreter) execIndexAssign(n *ast.IndexAssign, env *runtime.Environment) (controlFlow, error) {
	target, ok := env.Get(n.Name)
	if !ok {
		return flowNone, &NameError{Line: n.Line(), Name: n.Name}
	}
	arr, ok := target.(*runtime.ArrayValue)
	if !ok {
		return flowNone, &TypeError{Line: n.Line(), Message: fmt.Sprintf("cannot index into %s", target.Kind())}
	}
	idxVal, err := i.evalExpr(n.Index, env)
	if err != nil {
		return flowNone, err
	}
	idx, err := arrayIndex(n.Line(), idxVal, len(arr.Elements))
	if err != nil {
		return flowNone, err
	}
	val, err := i.evalExpr(n.Value, env)
	if err != nil {
		return flowNone, err
	}
	arr.Elements[idx] = val
	return flowNone, nil
}

func (i *Interpreter) execIf(n *ast.If, env *runtime.Environment) (controlFlow, error) {
	cond, err := i.evalExpr(n.Cond, env)
	if err != nil {
		return flowNone, err
	}
	b, ok := cond.(runtime.BoolValue)
	if !ok {
		return flowNone, &TypeError{Line: n.Line(), Message: fmt.Sprintf("if condition must be a bool, got %s", cond.Kind())}
	}
	if b.Val {
		return i.execBlock(n.Then, env)
	}
	if n.Else != nil {
		return i.execBlock(n.Else, env)
	}
	return flowNone, nil
}

func (i *Interpreter) execWhile(n *ast.While, env *runtime.Environment) (controlFlow, error) {
	for {
		cond, err := i.evalExpr(n.Cond, env)
		if err != nil {
			return flowNone, err
		}
		b, ok := cond.(runtime.BoolValue)
		if !ok {
			return flowNone, &TypeError{Line: n.Line(), Message: fmt.Sprintf("while condition must be a bool, got %s", cond.Kind())}
		}
		if !b.Val {
			return flowNone, nil
		}
		ctrl, err := i.execBlock(n.Body, env)
		if err != nil {
			return flowNone, err
		}
		if ctrl.isReturn() {
			return ctrl, nil
		}
	}
}

// execFor implements `for x in a..b` (spec.md §4.3): both endpoints must
// be integral Numbers, x iterates a, a+1, ..., b-1, and x is left unbound
// when a >= b (Open Question decision 6 in SPEC_FULL.md, matching
// original_source's interpreter.rs, which only defines the loop variable
// inside the loop body).
func (i *Interpreter) execFor(n *ast.For, env *runtime.Environment) (controlFlow, error) {
	startVal, err := i.evalExpr(n.Start, env)
	if err != nil {
		return flowNone, err
	}
	endVal, err := i.evalExpr(n.End, env)
	if err != nil {
		return flowNone, err
	}
	start, err := integralNumber(n.Line(), startVal, "for-loop start")
	if err != nil {
		return flowNone, err
	}
	end, err := integralNumber(n.Line(), endVal, "for-loop end")
	if err != nil {
		return flowNone, err
	}
	for v := start; v < end; v++ {
		env.Define(n.Var, runtime.NumberValue{Val: float64(v)})
		ctrl, err := i.execBlock(n.Body, env)
		if err != nil {
			return flowNone, err
		}
		if ctrl.isReturn() {
			return ctrl, nil
		}
	}
	return flowNone, nil
}

func (i *Interpreter) execFn(n *ast.Fn, env *runtime.Environment) (controlFlow, error) {
	if err := i.checkBuiltinShadowing(n.Line(), n.Name, env); err != nil {
		return flowNone, err
	}
	env.Define(n.Name, &runtime.FunctionValue{Name: n.Name, Params: n.Params, Body: n.Body})
	return flowNone, nil
}

func (i *Interpreter) execReturn(n *ast.Return, env *runtime.Environment) (controlFlow, error) {
	var val runtime.Value = runtime.NilValue{}
	if n.Expr != nil {
		v, err := i.evalExpr(n.Expr, env)
		if err != nil {
			return flowNone, err
		}
		val = v
	}
	return flowReturn(val), nil
}
