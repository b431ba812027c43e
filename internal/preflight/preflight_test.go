package preflight

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"stlaunch/internal/config"
)

func TestCheckDirectoryAccess_OK(t *testing.T) {
	dir := t.TempDir()
	result := CheckDirectoryAccess("test", dir)
	if !result.Passed {
		t.Fatalf("expected pass for temp dir, got: %s", result.Detail)
	}
}

func TestCheckDirectoryAccess_NotExist(t *testing.T) {
	result := CheckDirectoryAccess("test", filepath.Join(t.TempDir(), "nope"))
	if result.Passed {
		t.Fatal("expected failure for missing dir")
	}
	if result.Detail == "" {
		t.Fatal("expected non-empty detail")
	}
}

func TestCheckDirectoryAccess_NotDir(t *testing.T) {
	f := filepath.Join(t.TempDir(), "file.txt")
	if err := os.WriteFile(f, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	result := CheckDirectoryAccess("test", f)
	if result.Passed {
		t.Fatal("expected failure for file path")
	}
}

func TestCheckDirectoryWritable_Missing(t *testing.T) {
	result := CheckDirectoryWritable("test", filepath.Join(t.TempDir(), "a", "b"))
	if !result.Passed {
		t.Fatalf("expected creatable dir to pass, got: %s", result.Detail)
	}
}

func TestCheckDirectoryWritable_UnderFile(t *testing.T) {
	f := filepath.Join(t.TempDir(), "file.txt")
	if err := os.WriteFile(f, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	result := CheckDirectoryWritable("test", filepath.Join(f, "sub"))
	if result.Passed {
		t.Fatal("expected failure when an ancestor is a file")
	}
}

func TestCheckDirectoryWritable_Empty(t *testing.T) {
	if CheckDirectoryWritable("test", "").Passed {
		t.Fatal("expected failure for empty path")
	}
}

func TestCheckExecutable(t *testing.T) {
	binDir := t.TempDir()
	stub := filepath.Join(binDir, "streamlit")
	if err := os.WriteFile(stub, []byte("#!/bin/sh\nexit 0\n"), 0o755); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PATH", binDir)

	if result := CheckExecutable("Server", "streamlit", false); !result.Passed || result.Detail != stub {
		t.Fatalf("expected pass with resolved path, got %+v", result)
	}
	if result := CheckExecutable("Server", "missing-binary", false); result.Passed {
		t.Fatal("expected failure for missing binary")
	}
}

func TestCheckEntryPoint(t *testing.T) {
	dir := t.TempDir()
	entry := filepath.Join(dir, "app.py")
	if err := os.WriteFile(entry, []byte("print('hi')\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if !CheckEntryPoint("Entry", entry).Passed {
		t.Fatal("expected existing entry point to pass")
	}
	if CheckEntryPoint("Entry", filepath.Join(dir, "missing.py")).Passed {
		t.Fatal("expected missing entry point to fail")
	}
	if CheckEntryPoint("Entry", dir).Passed {
		t.Fatal("expected directory entry point to fail")
	}
}

func TestRunAll_NilConfig(t *testing.T) {
	results := RunAll(context.Background(), nil)
	if results != nil {
		t.Fatal("expected nil results for nil config")
	}
}

func TestRunAll_AllPass(t *testing.T) {
	base := t.TempDir()
	binDir := filepath.Join(base, "bin")
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(binDir, "streamlit"), []byte("#!/bin/sh\nexit 0\n"), 0o755); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PATH", binDir)
	entry := filepath.Join(base, "app.py")
	if err := os.WriteFile(entry, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := config.Default()
	cfg.Paths.StreamlitDir = filepath.Join(base, "home", ".streamlit")
	cfg.Launch.EntryPoint = entry

	results := RunAll(context.Background(), &cfg)
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	for _, r := range results {
		if !r.Passed {
			t.Errorf("check %q failed: %s", r.Name, r.Detail)
		}
	}
	if Failed(results) {
		t.Fatal("expected no failures")
	}
}

func TestRunAll_IncludesLogDir(t *testing.T) {
	t.Setenv("PATH", t.TempDir())
	cfg := config.Default()
	cfg.Paths.StreamlitDir = t.TempDir()
	cfg.Paths.LogDir = t.TempDir()

	results := RunAll(context.Background(), &cfg)
	if len(results) != 4 {
		t.Fatalf("expected 4 results, got %d", len(results))
	}
	if results[3].Name != "Log directory" || !results[3].Passed {
		t.Fatalf("unexpected log dir result: %+v", results[3])
	}
	if !Failed(results) {
		t.Fatal("expected missing executable to fail the run")
	}
}

func TestRunAll_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	cfg := config.Default()
	if results := RunAll(ctx, &cfg); len(results) != 0 {
		t.Fatalf("expected no results after cancellation, got %d", len(results))
	}
}

func TestFailedIgnoresOptional(t *testing.T) {
	results := []Result{{Name: "a", Passed: true}, {Name: "b", Optional: true}}
	if Failed(results) {
		t.Fatal("optional failures must not fail the run")
	}
}
