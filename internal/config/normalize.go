package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeLaunch()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.StreamlitDir) == "" {
		c.Paths.StreamlitDir = defaultStreamlitDir
	}
	if c.Paths.StreamlitDir, err = expandPath(strings.TrimSpace(c.Paths.StreamlitDir)); err != nil {
		return fmt.Errorf("paths.streamlit_dir: %w", err)
	}
	if c.Paths.LogDir, err = expandPath(strings.TrimSpace(c.Paths.LogDir)); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeLaunch() {
	c.Launch.Executable = envOverride("STLAUNCH_EXECUTABLE", c.Launch.Executable)
	c.Launch.EntryPoint = envOverride("STLAUNCH_ENTRY_POINT", c.Launch.EntryPoint)
	c.Launch.Subcommand = strings.TrimSpace(c.Launch.Subcommand)
	c.Launch.PortEnv = strings.TrimSpace(c.Launch.PortEnv)
	c.Launch.DefaultPort = strings.TrimSpace(c.Launch.DefaultPort)
	if c.Launch.DefaultPort == "" {
		c.Launch.DefaultPort = defaultPort
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(envOverride("STLAUNCH_LOG_LEVEL", c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}

// envOverride returns the trimmed value of key when it is set and non-blank,
// otherwise the trimmed current value.
func envOverride(key, current string) string {
	if value, ok := os.LookupEnv(key); ok && strings.TrimSpace(value) != "" {
		return strings.TrimSpace(value)
	}
	return strings.TrimSpace(current)
}
