package driver

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadOptionsMissingFileYieldsDefaults(t *testing.T) {
	opts, err := LoadOptions(filepath.Join(t.TempDir(), "minilang.yml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opts != DefaultOptions() {
		t.Fatalf("expected defaults, got %#v", opts)
	}
}

func TestLoadOptionsEmptyPathYieldsDefaults(t *testing.T) {
	opts, err := LoadOptions("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opts != DefaultOptions() {
		t.Fatalf("expected defaults, got %#v", opts)
	}
}

func TestLoadOptionsParsesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "minilang.yml")
	contents := "recursion_limit: 128\nallow_builtin_shadowing: false\n"
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	opts, err := LoadOptions(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opts.RecursionLimit != 128 || opts.AllowBuiltinShadowing {
		t.Fatalf("unexpected options: %#v", opts)
	}
}

func TestLoadOptionsRejectsUnknownFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "minilang.yml")
	contents := "recursion_limit: 128\nunknown_field: true\n"
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	if _, err := LoadOptions(path); err == nil {
		t.Fatalf("expected an error for an unknown field")
	}
}
