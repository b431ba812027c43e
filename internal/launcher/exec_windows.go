//go:build windows

package launcher

import (
	"errors"
	"os"
	"os/exec"
)

// defaultExecer runs the server as a child with inherited stdio and reports a
// non-zero exit status as an ExitCodeError, since Windows has no execve.
func defaultExecer() Execer {
	return ExecFunc(func(path string, argv []string, env []string) error {
		cmd := exec.Command(path, argv[1:]...)
		cmd.Env = env
		cmd.Stdin = os.Stdin
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
		err := cmd.Run()
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &ExitCodeError{Code: exitErr.ExitCode()}
		}
		return err
	})
}
