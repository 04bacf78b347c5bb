package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// FS keeps one file per key under a root directory. Writes go through a temp
// file and rename so readers never observe partial payloads; expiry is judged
// from the file modification time.
type FS struct {
	root string
	ttl  time.Duration
	now  func() time.Time
}

// NewFS creates the root directory if needed.
func NewFS(root string, ttl time.Duration) (*FS, error) {
	if root == "" {
		return nil, fmt.Errorf("cache dir required")
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, err
	}
	return &FS{root: root, ttl: ttl, now: time.Now}, nil
}

// Path returns the file backing key. Keys are hashed so any key is a safe file name.
func (f *FS) Path(key string) string {
	sum := sha256.Sum256([]byte(key))
	name := hex.EncodeToString(sum[:])
	if i := strings.IndexByte(key, ':'); i > 0 {
		return filepath.Join(f.root, key[:i], name+".json")
	}
	return filepath.Join(f.root, name+".json")
}

func (f *FS) Get(_ context.Context, key string) ([]byte, bool, error) {
	path := f.Path(key)
	info, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	if f.ttl > 0 && f.now().Sub(info.ModTime()) >= f.ttl {
		_ = os.Remove(path)
		return nil, false, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

func (f *FS) Set(_ context.Context, key string, value []byte) error {
	target := f.Path(key)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(target), filepath.Base(target)+".*.tmp")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(value); err != nil {
		tmp.Close()
		_ = os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return err
	}
	if err := os.Rename(tmp.Name(), target); err != nil {
		_ = os.Remove(tmp.Name())
		return err
	}
	return nil
}

func (f *FS) Close() error { return nil }
