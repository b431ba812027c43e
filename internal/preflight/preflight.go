package preflight

import (
	"context"

	"stlaunch/internal/config"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name     string
	Passed   bool
	Optional bool
	Detail   string
}

// RunAll executes every preflight check for the given config.
func RunAll(ctx context.Context, cfg *config.Config) []Result {
	if cfg == nil {
		return nil
	}

	checks := []func() Result{
		func() Result { return CheckDirectoryWritable("Streamlit config directory", cfg.Paths.StreamlitDir) },
		func() Result { return CheckExecutable("Server executable", cfg.Launch.Executable, false) },
		func() Result { return CheckEntryPoint("Entry point", cfg.Launch.EntryPoint) },
	}
	if cfg.Paths.LogDir != "" {
		checks = append(checks, func() Result { return CheckDirectoryWritable("Log directory", cfg.Paths.LogDir) })
	}

	results := make([]Result, 0, len(checks))
	for _, check := range checks {
		if ctx.Err() != nil {
			break
		}
		results = append(results, check())
	}
	return results
}

// Failed reports whether any required check did not pass.
func Failed(results []Result) bool {
	for _, r := range results {
		if !r.Passed && !r.Optional {
			return true
		}
	}
	return false
}
