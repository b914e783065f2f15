package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/wmmead/fortythieves/internal/fileutil"
)

// File is a Store persisted as a single JSON object on disk. Every write
// rewrites the file through a temp-file rename, so a crash never leaves a
// half-written ledger. Access is assumed single-writer (one process); the
// mutex only guards in-process callers.
type File struct {
	path   string
	logger *log.Logger

	mu   sync.Mutex
	data map[string]string
}

// NewFile opens (or creates) a file-backed store at path. The parent
// directory is created if needed.
func NewFile(path string, logger *log.Logger) (*File, error) {
	if logger == nil {
		logger = log.Default()
	}
	f := &File{
		path:   path,
		logger: logger,
		data:   make(map[string]string),
	}
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return f, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open store %s: %w", path, err)
	}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &f.data); err != nil {
			return nil, fmt.Errorf("parse store %s: %w", path, err)
		}
	}
	return f, nil
}

// Get returns the value for key
func (f *File) Get(key string) (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.data[key]
	return v, ok
}

// Set stores value under key and persists
func (f *File) Set(key, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data[key] = value
	f.flush()
}

// Remove deletes key and persists
func (f *File) Remove(key string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.data, key)
	f.flush()
}

// flush writes the current map to disk. Write failures are logged, not
// propagated: the in-memory view stays authoritative for the session and
// the next successful flush repairs the file.
func (f *File) flush() {
	raw, err := json.MarshalIndent(f.data, "", "  ")
	if err != nil {
		f.logger.Error("store flush failed", "path", f.path, "error", err)
		return
	}
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		f.logger.Error("store flush failed", "path", f.path, "error", err)
		return
	}
	if err := fileutil.WriteFileAtomic(f.path, raw, 0o644); err != nil {
		f.logger.Error("store flush failed", "path", f.path, "error", err)
	}
}
