package fileutil

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// EnsureDir creates dir and any missing parents with mode 0o755. An existing
// directory is left untouched.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	return nil
}

// WriteFileAtomic replaces path with data. The content is written to a temp
// file in the same directory and renamed over path, so readers see either the
// old file or the complete new one. The temp file is removed on any failure.
//
// A symlinked path is written through to its target, and an existing file
// keeps its permissions; mode applies only when the file is created.
func WriteFileAtomic(path string, data []byte, mode os.FileMode) (err error) {
	target, perm, err := resolveTarget(path, mode)
	if err != nil {
		return err
	}

	dir := filepath.Dir(target)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(target)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	written, err := tmp.Write(data)
	if err != nil {
		return err
	}
	if written != len(data) {
		return fmt.Errorf("short write: wrote %d of %d bytes", written, len(data))
	}
	if err = tmp.Sync(); err != nil {
		return err
	}
	if err = tmp.Chmod(perm); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmpName, target)
}

// resolveTarget follows symlinks at path and returns the file to replace and
// the permissions it should end up with.
func resolveTarget(path string, mode os.FileMode) (string, os.FileMode, error) {
	resolved, err := filepath.EvalSymlinks(path)
	switch {
	case err == nil:
		info, statErr := os.Stat(resolved)
		if statErr != nil {
			return "", 0, statErr
		}
		if info.IsDir() {
			return "", 0, fmt.Errorf("%s is a directory", resolved)
		}
		return resolved, info.Mode().Perm(), nil
	case errors.Is(err, fs.ErrNotExist):
		return danglingTarget(path, mode)
	default:
		return "", 0, err
	}
}

// danglingTarget handles a missing path, which may still be a symlink whose
// target does not exist yet.
func danglingTarget(path string, mode os.FileMode) (string, os.FileMode, error) {
	link, err := os.Readlink(path)
	if err != nil {
		return path, mode, nil
	}
	if !filepath.IsAbs(link) {
		link = filepath.Join(filepath.Dir(path), link)
	}
	return link, mode, nil
}
