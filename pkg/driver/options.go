// Package driver loads the optional on-disk configuration a minilang run
// may be pinned to, grounded on the teacher's package.yml manifest
// loader (originally pkg/driver/manifest.go), trimmed from a full
// package-manager manifest (targets, dependencies, workspace) down to
// the handful of knobs minilang itself exposes: a recursion limit and
// whether built-ins may be shadowed by top-level let/fn (spec.md §5,
// §6).
package driver

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Options mirrors minilang.yml on disk.
type Options struct {
	RecursionLimit        int  `yaml:"recursion_limit"`
	AllowBuiltinShadowing bool `yaml:"allow_builtin_shadowing"`
}

// DefaultOptions matches interpreter.DefaultOptions' values, kept as an
// independent copy since pkg/driver must not import pkg/interpreter (the
// dependency runs the other way, from cmd/minilang).
func DefaultOptions() Options {
	return Options{RecursionLimit: 4096, AllowBuiltinShadowing: true}
}

// LoadOptions parses minilang.yml from disk. A missing file is not an
// error — it yields DefaultOptions, matching the teacher's own "manifest
// not found is not fatal for direct file execution" fallback
// (cmd/able/main.go).
func LoadOptions(path string) (Options, error) {
	opts := DefaultOptions()
	if path == "" {
		return opts, nil
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return opts, fmt.Errorf("options: resolve %s: %w", path, err)
	}
	file, err := os.Open(absPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return opts, nil
		}
		return opts, fmt.Errorf("options: open %s: %w", absPath, err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)
	if err := decoder.Decode(&opts); err != nil {
		if errors.Is(err, io.EOF) {
			return DefaultOptions(), nil
		}
		return DefaultOptions(), fmt.Errorf("options: parse %s: %w", absPath, err)
	}
	return opts, nil
}
