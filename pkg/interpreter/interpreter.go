// Package interpreter implements minilang's tree-walking evaluator
// (spec.md §4.3), grounded on the teacher's eval_statements.go /
// eval_expressions.go type-switch-per-node-kind dispatch and
// executor.go's top-level entry point shape, generalized to minilang's
// explicit control-flow result variant (see control.go).
package interpreter

import (
	"fmt"
	"io"
	"os"

	"minilang/pkg/ast"
	"minilang/pkg/lexer"
	"minilang/pkg/parser"
	"minilang/pkg/runtime"
)

// Options configures a run (spec.md §5 "an implementation may impose an
// explicit recursion limit"; §6 "implementations may choose either" for
// built-in shadowing). New replaces a non-positive RecursionLimit and a nil
// Output with their defaults; AllowBuiltinShadowing is used as given, so a
// zero Options forbids shadowing, unlike DefaultOptions.
type Options struct {
	RecursionLimit        int
	AllowBuiltinShadowing bool
	Output                io.Writer
}

// DefaultOptions matches the corpus examples: built-ins are shadowable by
// a top-level let/fn, output goes to stdout, and recursion is bounded
// generously rather than left to the host call stack.
func DefaultOptions() Options {
	return Options{
		RecursionLimit:        4096,
		AllowBuiltinShadowing: true,
		Output:                os.Stdout,
	}
}

// Interpreter holds the environment and configuration for one run. It is
// not safe for concurrent use (spec.md §5: single-threaded by design).
type Interpreter struct {
	env   *runtime.Environment
	opts  Options
	depth int
}

// New constructs an Interpreter with its global frame and built-ins
// table populated (spec.md §4.3 "an environment seeded with the global
// frame and the built-ins table").
func New(opts Options) *Interpreter {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.RecursionLimit <= 0 {
		opts.RecursionLimit = DefaultOptions().RecursionLimit
	}
	i := &Interpreter{env: runtime.NewEnvironment(), opts: opts}
	registerBuiltins(i.env.Builtins, opts.Output)
	return i
}

// Run is the public entry point spec.md §6 describes: lex, parse, and
// execute source, yielding a diagnostic or nil on clean completion. File
// reading and exit-code wiring are the caller's responsibility
// (spec.md §1 "out of scope").
func Run(source string, opts Options) error {
	tokens, err := lexer.Tokenize(source)
	if err != nil {
		return fmt.Errorf("lex error: %w", err)
	}
	stmts, err := parser.Parse(tokens)
	if err != nil {
		return fmt.Errorf("parse error: %w", err)
	}
	interp := New(opts)
	if err := interp.ExecProgram(stmts); err != nil {
		return fmt.Errorf("runtime error: %w", err)
	}
	return nil
}

// ExecProgram executes a parsed program's statements in the global frame
// (spec.md §4.3 "Contract"). A return at the top level is a
// ControlFlowError, since no call boundary is open to catch it.
func (i *Interpreter) ExecProgram(stmts []ast.Statement) error {
	for _, stmt := range stmts {
		ctrl, err := i.execStatement(stmt, i.env)
		if err != nil {
			return err
		}
		if ctrl.isReturn() {
			return &ControlFlowError{Line: stmt.Line()}
		}
	}
	return nil
}
