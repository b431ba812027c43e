package deps

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// ErrNotConfigured reports a requirement without a command.
var ErrNotConfigured = errors.New("command not configured")

// Requirement defines an external executable the launcher relies on.
type Requirement struct {
	Name        string
	Command     string
	Description string
	Optional    bool
}

// Status reports the availability of a dependency.
type Status struct {
	Name        string
	Command     string
	Path        string
	Description string
	Optional    bool
	Available   bool
	Detail      string
}

// Resolve looks command up on PATH (or checks it directly when it contains a
// path separator) and returns the executable path.
func Resolve(command string) (string, error) {
	cmd := strings.TrimSpace(command)
	if cmd == "" {
		return "", ErrNotConfigured
	}
	path, err := exec.LookPath(cmd)
	if err != nil {
		return "", fmt.Errorf("binary %q not found: %w", cmd, err)
	}
	return path, nil
}

// CheckBinaries evaluates the provided requirements and reports availability.
func CheckBinaries(requirements []Requirement) []Status {
	results := make([]Status, 0, len(requirements))
	for _, req := range requirements {
		cmd := strings.TrimSpace(req.Command)
		status := Status{
			Name:        req.Name,
			Command:     cmd,
			Description: strings.TrimSpace(req.Description),
			Optional:    req.Optional,
		}
		if cmd == "" {
			status.Detail = ErrNotConfigured.Error()
			results = append(results, status)
			continue
		}
		path, err := exec.LookPath(cmd)
		if err != nil {
			status.Detail = fmt.Sprintf("binary %q not found", cmd)
			results = append(results, status)
			continue
		}
		status.Path = path
		status.Available = true
		results = append(results, status)
	}
	return results
}
