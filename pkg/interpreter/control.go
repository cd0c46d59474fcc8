package interpreter

import "minilang/pkg/runtime"

// controlKind tags the two shapes a statement's evaluation can take
// (spec.md §9 "Return as non-local control flow": "a statement yields
// either 'fell through' or 'returning with value V'").
type controlKind int

const (
	controlNone controlKind = iota
	controlReturn
)

// controlFlow is the explicit result variant spec.md §9 calls for in
// place of an exception-flavored error signal: execStatement and
// execBlock return one alongside their error, and callers propagate it
// without needing a type switch on an error value.
type controlFlow struct {
	kind  controlKind
	value runtime.Value
}

var flowNone = controlFlow{kind: controlNone}

func flowReturn(v runtime.Value) controlFlow {
	return controlFlow{kind: controlReturn, value: v}
}

func (c controlFlow) isReturn() bool { return c.kind == controlReturn }
