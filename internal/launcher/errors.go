package launcher

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"syscall"
)

// Exit codes for failures that happen before or instead of the exec.
const (
	ExitFailure       = 1
	ExitNotExecutable = 126
	ExitNotFound      = 127
)

// FilesystemError reports a failure to create the configuration directory or
// write the settings file.
type FilesystemError struct {
	Op   string
	Path string
	Err  error
}

func (e *FilesystemError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FilesystemError) Unwrap() error { return e.Err }

// LaunchError reports that the server executable could not be found or started.
type LaunchError struct {
	Command []string
	Err     error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("launch %q: %v", strings.Join(e.Command, " "), e.Err)
}

func (e *LaunchError) Unwrap() error { return e.Err }

// NotFound reports whether the executable could not be located.
func (e *LaunchError) NotFound() bool {
	return errors.Is(e.Err, exec.ErrNotFound) || errors.Is(e.Err, syscall.ENOENT)
}

// ExitCodeError carries the exit status of a server run as a child process.
type ExitCodeError struct {
	Code int
}

func (e *ExitCodeError) Error() string {
	return fmt.Sprintf("server exited with status %d", e.Code)
}

// ExitCode maps an error returned by Run to a process exit status.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *ExitCodeError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	var launchErr *LaunchError
	if errors.As(err, &launchErr) {
		if launchErr.NotFound() {
			return ExitNotFound
		}
		return ExitNotExecutable
	}
	return ExitFailure
}
