package persist

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
)

// FileStore keeps each document as a pretty-printed JSON file in a
// dot directory, by default under the user home.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		dir = filepath.Join(home, ".mogul")
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, err
	}
	return &FileStore{dir: dir}, nil
}

func (f *FileStore) path(key string) string {
	return filepath.Join(f.dir, key+".json")
}

func (f *FileStore) Load(_ context.Context, key string) ([]byte, error) {
	raw, err := os.ReadFile(f.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if len(raw) == 0 {
		return nil, ErrNotFound
	}
	return raw, nil
}

func (f *FileStore) Save(_ context.Context, key string, doc []byte) error {
	// Re-indent so the on-disk save stays hand-inspectable.
	var buf any
	if err := json.Unmarshal(doc, &buf); err == nil {
		if pretty, err := json.MarshalIndent(buf, "", "  "); err == nil {
			doc = pretty
		}
	}
	return os.WriteFile(f.path(key), doc, 0o600)
}
