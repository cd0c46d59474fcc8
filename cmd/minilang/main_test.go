package main

import (
	"os"
	"path/filepath"
	"testing"
)

func writeSource(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "program.mlang")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	return path
}

func TestRunNoArgsPrintsUsageAndFails(t *testing.T) {
	if code := run(nil); code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
}

func TestRunHelp(t *testing.T) {
	if code := run([]string{"--help"}); code != 0 {
		t.Fatalf("expected exit code 0, got %d", code)
	}
}

func TestRunVersion(t *testing.T) {
	if code := run([]string{"--version"}); code != 0 {
		t.Fatalf("expected exit code 0, got %d", code)
	}
}

func TestRunTooManyArgumentsFails(t *testing.T) {
	path := writeSource(t, `print(1)`)
	if code := run([]string{path, "extra"}); code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
}

func TestRunMissingFileFails(t *testing.T) {
	if code := run([]string{filepath.Join(t.TempDir(), "missing.mlang")}); code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
}

func TestRunValidProgramSucceeds(t *testing.T) {
	path := writeSource(t, `print(1 + 1)`)
	if code := run([]string{path}); code != 0 {
		t.Fatalf("expected exit code 0, got %d", code)
	}
}

func TestRuntimeErrorExitsNonZero(t *testing.T) {
	path := writeSource(t, `print(1 / 0)`)
	if code := run([]string{path}); code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
}

func TestParseErrorExitsNonZero(t *testing.T) {
	path := writeSource(t, `let x = `)
	if code := run([]string{path}); code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
}
