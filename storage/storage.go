package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// MaxImageSize is the largest image payload accepted for upload.
const MaxImageSize = 5 * 1024 * 1024

// ObjectStore persists uploaded images under generated keys and returns a
// publicly fetchable URL for each.
type ObjectStore interface {
	Put(key string, r io.Reader) (string, error)
}

// NewImageKey generates a unique object key, keeping the original extension
// so the file is served with a sensible content type.
func NewImageKey(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	return uuid.NewString() + ext
}

// DiskStore keeps objects in a local directory served under baseURL.
type DiskStore struct {
	dir     string
	baseURL string
}

func NewDiskStore(dir, baseURL string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskStore{dir: dir, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

func (s *DiskStore) Put(key string, r io.Reader) (string, error) {
	if key == "" || key != filepath.Base(key) {
		return "", fmt.Errorf("invalid object key %q", key)
	}
	f, err := os.CreateTemp(s.dir, ".upload-*")
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", err
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", err
	}
	if err := os.Rename(f.Name(), filepath.Join(s.dir, key)); err != nil {
		os.Remove(f.Name())
		return "", err
	}
	return s.baseURL + "/images/" + key, nil
}

// Dir is the directory objects are stored in, for static file serving.
func (s *DiskStore) Dir() string {
	return s.dir
}
