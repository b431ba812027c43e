package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"stlaunch/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config rooted in a fresh temp HOME. The Streamlit
// directory is <home>/.streamlit and is not created; HOME is pointed at the
// temp home for the duration of the test.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	home := filepath.Join(base, "home")
	if err := os.MkdirAll(home, 0o755); err != nil {
		t.Fatalf("mkdir home: %v", err)
	}
	t.Setenv("HOME", home)

	cfgVal := config.Default()
	cfgVal.Paths.StreamlitDir = filepath.Join(home, ".streamlit")
	cfgVal.Launch.EntryPoint = filepath.Join(base, "app", "app.py")
	cfgVal.Logging.Format = "json"

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithPreflight toggles the executable check before launch.
func WithPreflight(enabled bool) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Launch.Preflight = enabled
	}
}

// WithEntryPoint writes an application file at the configured entry point.
func WithEntryPoint() ConfigOption {
	return func(b *configBuilder) {
		WriteFile(b.t, b.cfg.Launch.EntryPoint, "import streamlit as st\n")
	}
}

// WithStubbedBinaries writes stub executables for the provided names and
// makes them the only entries on PATH. If names is empty, the default
// server executable is stubbed.
func WithStubbedBinaries(names ...string) ConfigOption {
	return func(b *configBuilder) {
		if len(names) == 0 {
			names = []string{b.cfg.Launch.Executable}
		}
		binDir := filepath.Join(b.baseDir, "bin")
		for _, name := range names {
			WriteExecutable(b.t, filepath.Join(binDir, name))
		}
		b.t.Setenv("PATH", binDir)
	}
}

// WithEmptyPath leaves PATH pointing at an empty directory.
func WithEmptyPath() ConfigOption {
	return func(b *configBuilder) {
		binDir := filepath.Join(b.baseDir, "empty-bin")
		if err := os.MkdirAll(binDir, 0o755); err != nil {
			b.t.Fatalf("mkdir bin dir: %v", err)
		}
		b.t.Setenv("PATH", binDir)
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(filepath.Dir(cfg.Paths.StreamlitDir))
}
