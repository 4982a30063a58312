// SPDX-License-Identifier: EPL-2.0

// Package store persists encoded WAV artifacts to the local filesystem.
package store

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// MIMEType is the content type of WAV artifacts for callers that serve
// them over HTTP.
const MIMEType = "audio/wav"

// ErrEmptyName indicates a save request whose name sanitizes to nothing.
var ErrEmptyName = errors.New("artifact name is empty")

// FileStore saves WAV bytes under a local directory (default "audio").
type FileStore struct {
	Dir string
}

func NewFileStore(dir string) *FileStore {
	if dir == "" {
		dir = "audio"
	}
	return &FileStore{Dir: dir}
}

// SaveWAV writes data to {dir}/{name}.wav and returns the path. The name
// is sanitized to a flat filename; path separators and parent references
// are stripped.
func (fs *FileStore) SaveWAV(name string, data []byte) (string, error) {
	name = sanitize(name)
	if name == "" {
		return "", ErrEmptyName
	}

	if err := os.MkdirAll(fs.Dir, 0o755); err != nil {
		return "", err
	}

	path := filepath.Join(fs.Dir, name+".wav")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}

	return path, nil
}

// sanitize flattens a requested name into a safe filename stem.
func sanitize(name string) string {
	name = strings.TrimSuffix(strings.TrimSpace(name), ".wav")
	name = filepath.Base(name)
	if name == "." || name == string(filepath.Separator) || name == ".." {
		return ""
	}
	return name
}
