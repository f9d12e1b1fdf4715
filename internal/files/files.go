// Package files contains filesystem helpers for client configuration files.
package files

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Nirdeo/AgenticHub/internal/perms"
)

// EnsureDir creates a directory (and any missing parents) with standard
// permissions if it doesn't exist, and verifies that an existing path is a
// real directory. Symlinked directories are rejected.
func EnsureDir(path string) error {
	if err := os.MkdirAll(path, perms.RegularDir); err != nil {
		return fmt.Errorf("could not ensure directory exists for '%s': %w", path, err)
	}

	info, err := os.Lstat(path)
	if err != nil {
		return fmt.Errorf("could not stat directory '%s': %w", path, err)
	}

	if info.Mode()&os.ModeSymlink != 0 {
		return fmt.Errorf("path '%s' is a symlink, not a directory", path)
	}

	if !info.IsDir() {
		return fmt.Errorf("path '%s' is not a directory", path)
	}

	return nil
}

// AtomicWrite writes data to path via a temporary file and rename, so an
// interrupted write leaves any existing file intact. The parent directory
// must already exist.
func AtomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)

	// Temp file must live in the same directory for the rename to be atomic.
	tmp, err := os.CreateTemp(dir, ".agentichub-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary file in '%s': %w", dir, err)
	}
	tmpPath := tmp.Name()
	defer func() {
		_ = os.Remove(tmpPath) // Clean up on any error.
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write temporary file: %w", err)
	}

	if err := tmp.Chmod(perms.RegularFile); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to set file permissions: %w", err)
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temporary file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to rename temporary file to '%s': %w", path, err)
	}

	return nil
}
