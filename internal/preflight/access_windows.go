//go:build windows

package preflight

import (
	"os"
	"path/filepath"
)

func accessRWX(path string) error {
	probe, err := os.CreateTemp(path, ".stlaunch-access-*")
	if err != nil {
		return err
	}
	name := probe.Name()
	_ = probe.Close()
	return os.Remove(filepath.Clean(name))
}
