package persist

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// LocalAdapter persists each key as a JSON file under a data directory.
// There is no external change source, so Subscribe never fires.
type LocalAdapter struct {
	dir string
}

// NewLocalAdapter creates a file-backed adapter rooted at dir.
func NewLocalAdapter(dir string) *LocalAdapter {
	return &LocalAdapter{dir: dir}
}

func (a *LocalAdapter) path(key string) string {
	return filepath.Join(a.dir, key+".json")
}

// Load reads the blob for key. A missing file reports ok=false with no
// error; an unreadable or empty-but-present file surfaces an error so the
// caller can fall back to the bundled defaults.
func (a *LocalAdapter) Load(_ context.Context, key string) ([]byte, bool, error) {
	data, err := os.ReadFile(a.path(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("read %s: %w", key, err)
	}
	if len(data) == 0 {
		return nil, false, fmt.Errorf("read %s: empty blob", key)
	}
	return data, true, nil
}

// Write stores the blob atomically via a temp file and rename, so a crash
// mid-write never leaves a truncated blob behind.
func (a *LocalAdapter) Write(_ context.Context, key string, value []byte) error {
	if err := os.MkdirAll(a.dir, 0o750); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}
	return WriteFileAtomic(a.path(key), value)
}

// Subscribe is a no-op for the local backend.
func (a *LocalAdapter) Subscribe(_ context.Context, _ string, _ func([]byte)) (func(), error) {
	return func() {}, nil
}

// Close is a no-op for the local backend.
func (a *LocalAdapter) Close() error { return nil }

// WriteFileAtomic writes data to path through a temp file and rename.
func WriteFileAtomic(path string, data []byte) error {
	tmp := path + ".tmp"
	f, err := os.OpenFile(tmp, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("open tmp: %w", err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		_ = os.Remove(tmp)
		return fmt.Errorf("write tmp: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("close tmp: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("rename tmp: %w", err)
	}
	return nil
}
