// Package fsutil reads and atomically replaces the markdown files mdtodo
// manages.
package fsutil

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/natefinch/atomic"
)

const (
	dirMode  = 0o750
	fileMode = 0o644
)

// ReadFile returns the content of path. A missing file is not an error;
// exists reports whether the file was found.
func ReadFile(path string) (content string, exists bool, err error) {
	data, err := os.ReadFile(path) //nolint:gosec // path from config or flags
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), true, nil
}

// WriteFile replaces path with content via a temp file and rename, creating
// parent directories as needed.
func WriteFile(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), dirMode); err != nil {
		return fmt.Errorf("creating directory for %s: %w", path, err)
	}

	_, statErr := os.Stat(path)
	created := errors.Is(statErr, fs.ErrNotExist)

	if err := atomic.WriteFile(path, strings.NewReader(content)); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	// atomic.WriteFile leaves new files with temp-file permissions.
	if created {
		if err := os.Chmod(path, fileMode); err != nil {
			return fmt.Errorf("setting permissions on %s: %w", path, err)
		}
	}
	return nil
}

// Exists reports whether path exists.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
