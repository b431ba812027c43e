package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"stlaunch/internal/config"
	"stlaunch/internal/launcher"
	"stlaunch/internal/testsupport"
)

type cliTestEnv struct {
	cfg        *config.Config
	configPath string
	execs      [][]string
}

func setupCLITestEnv(t *testing.T, opts ...testsupport.ConfigOption) *cliTestEnv {
	t.Helper()

	cfg := testsupport.NewConfig(t, opts...)
	configPath := filepath.Join(testsupport.BaseDir(cfg), "stlaunch.toml")
	writeTestConfig(t, configPath, cfg)
	t.Setenv("PORT", "8502")

	return &cliTestEnv{cfg: cfg, configPath: configPath}
}

func (e *cliTestEnv) execer() launcher.Execer {
	return launcher.ExecFunc(func(path string, argv []string, env []string) error {
		e.execs = append(e.execs, append([]string{path}, argv...))
		return nil
	})
}

func runCLI(t *testing.T, env *cliTestEnv, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand(launcher.WithExecer(env.execer()))
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--config", env.configPath}, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeTestConfig(t *testing.T, path string, cfg *config.Config) {
	t.Helper()
	content := fmt.Sprintf(
		"[paths]\nstreamlit_dir = %q\n\n[launch]\nexecutable = %q\nentry_point = %q\npreflight = %t\n\n[logging]\nformat = %q\nlevel = %q\n",
		cfg.Paths.StreamlitDir,
		cfg.Launch.Executable,
		cfg.Launch.EntryPoint,
		cfg.Launch.Preflight,
		cfg.Logging.Format,
		cfg.Logging.Level,
	)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}
