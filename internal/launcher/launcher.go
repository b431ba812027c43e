package launcher

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"stlaunch/internal/config"
	"stlaunch/internal/deps"
	"stlaunch/internal/fileutil"
	"stlaunch/internal/logging"
	"stlaunch/internal/streamlit"
)

// settingsFileMode applies to a newly created settings file.
const settingsFileMode = 0o644

// Execer replaces the current process with argv[0] resolved to path.
// It only returns on failure.
type Execer interface {
	Exec(path string, argv []string, env []string) error
}

// ExecFunc adapts a function to Execer.
type ExecFunc func(path string, argv []string, env []string) error

func (f ExecFunc) Exec(path string, argv []string, env []string) error {
	return f(path, argv, env)
}

// Launcher writes the Streamlit settings file and starts the server.
type Launcher struct {
	cfg       *config.Config
	logger    *slog.Logger
	execer    Execer
	lookupEnv func(string) (string, bool)
	environ   func() []string
}

// Option customizes a Launcher.
type Option func(*Launcher)

// WithLogger sets the logger; nil keeps the no-op default.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Launcher) {
		if logger != nil {
			l.logger = logging.NewComponentLogger(logger, "launcher")
		}
	}
}

// WithExecer replaces the process-replacement step.
func WithExecer(execer Execer) Option {
	return func(l *Launcher) {
		if execer != nil {
			l.execer = execer
		}
	}
}

// WithEnv replaces the environment lookup used for the port and passed to the server.
func WithEnv(lookup func(string) (string, bool), environ func() []string) Option {
	return func(l *Launcher) {
		if lookup != nil {
			l.lookupEnv = lookup
		}
		if environ != nil {
			l.environ = environ
		}
	}
}

// New constructs a Launcher for cfg.
func New(cfg *config.Config, opts ...Option) *Launcher {
	l := &Launcher{
		cfg:       cfg,
		logger:    logging.NewNop(),
		execer:    defaultExecer(),
		lookupEnv: os.LookupEnv,
		environ:   os.Environ,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Command returns the server argv.
func (l *Launcher) Command() []string {
	return l.cfg.Argv()
}

// Port returns the port to write and whether it came from the environment.
func (l *Launcher) Port() (string, bool) {
	if value, ok := l.lookupEnv(l.cfg.Launch.PortEnv); ok && strings.TrimSpace(value) != "" {
		return value, true
	}
	return l.cfg.Launch.DefaultPort, false
}

// Render returns the settings file content for the current environment.
func (l *Launcher) Render() []byte {
	port, _ := l.Port()
	return streamlit.Render(streamlit.Defaults(port))
}

// WriteConfig ensures the configuration directory exists and overwrites the
// settings file. It returns the path written.
func (l *Launcher) WriteConfig(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	port, fromEnv := l.Port()
	if !fromEnv {
		logging.WarnWithContext(l.logger, "port variable unset; using default port", "port_default",
			logging.String("port_env", l.cfg.Launch.PortEnv),
			logging.String("port", port),
			logging.String(logging.FieldErrorHint, fmt.Sprintf("export %s to choose the server port", l.cfg.Launch.PortEnv)),
		)
	}

	dir := l.cfg.Paths.StreamlitDir
	if err := fileutil.EnsureDir(dir); err != nil {
		return "", &FilesystemError{Op: "create directory", Path: dir, Err: err}
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}

	path := streamlit.FilePath(dir)
	content := streamlit.Render(streamlit.Defaults(port))
	if err := fileutil.WriteFileAtomic(path, content, settingsFileMode); err != nil {
		return "", &FilesystemError{Op: "write", Path: path, Err: err}
	}

	l.logger.Info("streamlit config written",
		logging.String(logging.FieldEventType, "config_written"),
		logging.String("path", path),
		logging.String("port", port),
		logging.Int("bytes", len(content)),
	)
	return path, nil
}

// Run writes the settings file and replaces the process with the server.
// On success it does not return on platforms with exec.
func (l *Launcher) Run(ctx context.Context) error {
	if _, err := l.WriteConfig(ctx); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	argv := l.Command()
	path := argv[0]
	if l.cfg.Launch.Preflight {
		resolved, err := deps.Resolve(argv[0])
		if err != nil {
			logging.ErrorWithContext(l.logger, "server executable not found", "launch_preflight_failed",
				logging.String("executable", argv[0]),
				logging.Error(err),
				logging.String(logging.FieldErrorHint, "install streamlit or set launch.executable"),
			)
			return &LaunchError{Command: argv, Err: err}
		}
		path = resolved
	}

	l.logger.Info("starting server",
		logging.String(logging.FieldEventType, "server_exec"),
		logging.String("executable", path),
		logging.Strings("argv", argv),
	)
	if err := l.execer.Exec(path, argv, l.environ()); err != nil {
		var exitErr *ExitCodeError
		if errors.As(err, &exitErr) {
			return exitErr
		}
		return &LaunchError{Command: argv, Err: err}
	}
	return nil
}
