// Package storage manages the upload directory: filename sanitizing, the
// numeric-suffix collision probe, and file lifecycle.
package storage

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

var ErrUnsupportedFileType = errors.New("unsupported file type")

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// Store writes and serves files inside a single local directory.
type Store struct {
	dir     string
	allowed map[string]struct{}
}

// NewStore creates the directory if needed. Extensions are matched
// case-insensitively and without the leading dot.
func NewStore(dir string, allowedExts []string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	allowed := make(map[string]struct{}, len(allowedExts))
	for _, ext := range allowedExts {
		allowed[strings.ToLower(strings.TrimPrefix(ext, "."))] = struct{}{}
	}
	return &Store{dir: dir, allowed: allowed}, nil
}

func (s *Store) Dir() string { return s.dir }

// Allowed reports whether the filename has an extension from the allow-list.
func (s *Store) Allowed(filename string) bool {
	ext := filepath.Ext(filename)
	if ext == "" {
		return false
	}
	_, ok := s.allowed[strings.ToLower(strings.TrimPrefix(ext, "."))]
	return ok
}

// SecureFilename strips path components and collapses characters outside
// [A-Za-z0-9._-] into underscores.
func SecureFilename(name string) string {
	name = filepath.Base(filepath.ToSlash(name))
	name = strings.ReplaceAll(name, "\\", "_")
	name = unsafeChars.ReplaceAllString(name, "_")
	name = strings.Trim(name, "._")
	if name == "" {
		name = "file"
	}
	return name
}

// Save streams the upload to disk under a collision-resolved name and returns
// the name actually used. Each candidate slot is claimed with O_EXCL, so two
// concurrent uploads of the same original name cannot end up on the same path;
// the loser of the claim just advances to the next suffix.
func (s *Store) Save(originalName string, src io.Reader) (string, error) {
	if !s.Allowed(originalName) {
		return "", ErrUnsupportedFileType
	}
	candidate := SecureFilename(originalName)
	ext := filepath.Ext(candidate)
	base := strings.TrimSuffix(candidate, ext)

	for counter := 0; ; counter++ {
		if counter > 0 {
			candidate = fmt.Sprintf("%s_%d%s", base, counter, ext)
		}
		f, err := os.OpenFile(filepath.Join(s.dir, candidate), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if errors.Is(err, os.ErrExist) {
			continue
		}
		if err != nil {
			return "", fmt.Errorf("claim %s: %w", candidate, err)
		}
		if _, err := io.Copy(f, src); err != nil {
			f.Close()
			os.Remove(f.Name())
			return "", fmt.Errorf("write %s: %w", candidate, err)
		}
		if err := f.Close(); err != nil {
			os.Remove(f.Name())
			return "", err
		}
		return candidate, nil
	}
}

// Path returns the on-disk path for a stored name, refusing anything that
// would escape the directory.
func (s *Store) Path(storedName string) (string, error) {
	if storedName == "" || storedName != filepath.Base(storedName) {
		return "", os.ErrNotExist
	}
	p := filepath.Join(s.dir, storedName)
	if _, err := os.Stat(p); err != nil {
		return "", err
	}
	return p, nil
}

// Remove deletes a stored file. A missing file is not an error: the row may
// outlive the file when a previous delete failed halfway.
func (s *Store) Remove(storedName string) error {
	if storedName == "" || storedName != filepath.Base(storedName) {
		return nil
	}
	err := os.Remove(filepath.Join(s.dir, storedName))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
