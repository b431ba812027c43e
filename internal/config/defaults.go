package config

const (
	defaultConfigPath   = "~/.config/stlaunch/config.toml"
	projectConfigName   = "stlaunch.toml"
	defaultStreamlitDir = "~/.streamlit"
	defaultExecutable   = "streamlit"
	defaultSubcommand   = "run"
	defaultEntryPoint   = "app/app.py"
	defaultPortEnv      = "PORT"
	defaultPort         = "8501"
	defaultLogFormat    = "auto"
	defaultLogLevel     = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			StreamlitDir: defaultStreamlitDir,
		},
		Launch: Launch{
			Executable:  defaultExecutable,
			Subcommand:  defaultSubcommand,
			EntryPoint:  defaultEntryPoint,
			PortEnv:     defaultPortEnv,
			DefaultPort: defaultPort,
			Preflight:   true,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
