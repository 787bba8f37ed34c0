// Package filelock replaces report files atomically while holding an advisory
// lock, so two runs pointed at the same output never interleave.
package filelock

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// Report files are world-readable, their directories traversable.
const (
	fileMode = 0644
	dirMode  = 0755
)

// LockPath returns the lock file guarding target, a hidden sibling file.
func LockPath(target string) string {
	dir, base := filepath.Split(target)
	return filepath.Join(dir, "."+base+".lock")
}

// WriteLocked replaces path with data. The parent directory is created first,
// then the sibling lock is held while the content is renamed into place.
// The lock file stays on disk; unlinking it races with waiting writers.
func WriteLocked(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, dirMode); err != nil {
		return fmt.Errorf("failed to create report directory %s: %w", dir, err)
	}

	lock := flock.New(LockPath(path))
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("failed to lock report %s: %w", path, err)
	}
	defer lock.Unlock()

	return replace(dir, path, data)
}

// replace writes data to a temp file in dir and renames it over path.
// Readers see the old report or the new one, never a partial file.
func replace(dir, path string, data []byte) (err error) {
	tmp, err := os.CreateTemp(dir, ".report-*")
	if err != nil {
		return fmt.Errorf("failed to create temp report: %w", err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return fmt.Errorf("failed to write temp report: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("failed to sync temp report: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp report: %w", err)
	}
	if err = os.Chmod(tmp.Name(), fileMode); err != nil {
		return fmt.Errorf("failed to set report permissions: %w", err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to move report into %s: %w", path, err)
	}
	return nil
}
