package main

import (
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"stlaunch/internal/config"
	"stlaunch/internal/launcher"
	"stlaunch/internal/logging"
)

type commandContext struct {
	configFlag *string
	launchOpts []launcher.Option

	configOnce sync.Once
	config     *config.Config
	configPath string
	configSeen bool
	configErr  error
}

func newCommandContext(configFlag *string, opts ...launcher.Option) *commandContext {
	return &commandContext{
		configFlag: configFlag,
		launchOpts: opts,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, path, exists, err := config.Load(c.flagPath())
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
		c.configPath = path
		c.configSeen = exists
	})
	return c.config, c.configErr
}

func (c *commandContext) flagPath() string {
	if c.configFlag == nil {
		return ""
	}
	return strings.TrimSpace(*c.configFlag)
}

// launcher builds a Launcher whose logs go to the command's stderr.
func (c *commandContext) launcher(cmd *cobra.Command) (*launcher.Launcher, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	logger, err := logging.NewFromConfig(cfg, cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}
	opts := append([]launcher.Option{launcher.WithLogger(logger)}, c.launchOpts...)
	return launcher.New(cfg, opts...), nil
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
