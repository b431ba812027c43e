//go:build !windows

package launcher

import (
	"os/exec"
	"strings"

	"golang.org/x/sys/unix"
)

// defaultExecer replaces the process image via execve. Bare command names are
// looked up on PATH first, since execve does not search it.
func defaultExecer() Execer {
	return ExecFunc(func(path string, argv []string, env []string) error {
		if !strings.ContainsRune(path, '/') {
			resolved, err := exec.LookPath(path)
			if err != nil {
				return err
			}
			path = resolved
		}
		return unix.Exec(path, argv, env)
	})
}
