package spool

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/afero"
)

// Scope owns the temporary objects of a single request. Every object allocated
// through a Scope is removed by Release, which the request handler defers on
// all exit paths. A Scope is never shared between requests, so it carries no
// locking.
type Scope struct {
	fs      afero.Fs
	baseDir string
	paths   []string
}

// NewScope creates a scope rooted at baseDir. The directory must exist; the
// environment layer creates it at startup.
func NewScope(fs afero.Fs, baseDir string) *Scope {
	return &Scope{
		fs:      fs,
		baseDir: baseDir,
	}
}

// Fs returns the filesystem the scope allocates on.
func (s *Scope) Fs() afero.Fs {
	return s.fs
}

// Create allocates a uniquely named object and returns its path and an open
// handle. The caller closes the handle; the scope removes the object.
func (s *Scope) Create(prefix, ext string) (string, afero.File, error) {
	path := filepath.Join(s.baseDir, fmt.Sprintf("%s_%s%s", prefix, uuid.New().String(), ext))

	f, err := s.fs.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return "", nil, fmt.Errorf("failed to allocate spool object: %w", err)
	}

	s.paths = append(s.paths, path)
	return path, f, nil
}

// WriteFile allocates a uniquely named object holding data.
func (s *Scope) WriteFile(prefix, ext string, data []byte) (string, error) {
	path := filepath.Join(s.baseDir, fmt.Sprintf("%s_%s%s", prefix, uuid.New().String(), ext))

	if err := afero.WriteFile(s.fs, path, data, 0o600); err != nil {
		return "", fmt.Errorf("failed to write spool object: %w", err)
	}

	s.paths = append(s.paths, path)
	return path, nil
}

// Rename moves a scope-owned object to carry a different extension and returns
// the new path. Tracking follows the rename.
func (s *Scope) Rename(oldPath, ext string) (string, error) {
	newPath := oldPath[:len(oldPath)-len(filepath.Ext(oldPath))] + ext
	if newPath == oldPath {
		return oldPath, nil
	}

	if err := s.fs.Rename(oldPath, newPath); err != nil {
		return "", fmt.Errorf("failed to rename spool object: %w", err)
	}

	for i, p := range s.paths {
		if p == oldPath {
			s.paths[i] = newPath
		}
	}
	return newPath, nil
}

// Release removes every object the scope allocated. Missing objects are not an
// error; removal failures are reported so callers can log them.
func (s *Scope) Release() error {
	var firstErr error
	for _, path := range s.paths {
		if err := s.fs.Remove(path); err != nil && !os.IsNotExist(err) {
			if firstErr == nil {
				firstErr = fmt.Errorf("failed to remove spool object %s: %w", path, err)
			}
		}
	}
	s.paths = nil
	return firstErr
}
