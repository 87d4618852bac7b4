package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"lot-market/internal/marketerrors"
)

// ObjectStore holds uploaded lot images. Deletion is best-effort: callers get
// a per-key result instead of a single failure.
type ObjectStore interface {
	Put(key string, r io.Reader, contentType string) (string, error)
	Delete(keys []string) map[string]error
	KeyFromURL(url string) (string, bool)
}

// DiskStore is an ObjectStore backed by a local directory, served statically
// under /uploads.
type DiskStore struct {
	root    string
	baseURL string
}

// NewDiskStore creates the root directory if needed.
func NewDiskStore(root, baseURL string) (*DiskStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("init object store at %s: %w", root, err)
	}
	return &DiskStore{root: root, baseURL: strings.TrimSuffix(baseURL, "/")}, nil
}

// Put writes the object and returns its public URL.
func (s *DiskStore) Put(key string, r io.Reader, contentType string) (string, error) {
	path := filepath.Join(s.root, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("put object %s: %w", key, marketerrors.ErrStorage)
	}

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("put object %s: %w", key, marketerrors.ErrStorage)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("put object %s: %w", key, marketerrors.ErrStorage)
	}

	return s.baseURL + "/uploads/" + key, nil
}

// Delete removes the given objects. A missing object counts as deleted.
func (s *DiskStore) Delete(keys []string) map[string]error {
	results := make(map[string]error, len(keys))
	for _, key := range keys {
		path := filepath.Join(s.root, filepath.FromSlash(key))
		err := os.Remove(path)
		if err != nil && !os.IsNotExist(err) {
			results[key] = fmt.Errorf("delete object %s: %w", key, marketerrors.ErrStorage)
			continue
		}
		results[key] = nil
	}
	return results
}

// KeyFromURL maps a stored image URL back to its object key. URLs not served
// by this store return false.
func (s *DiskStore) KeyFromURL(url string) (string, bool) {
	prefix := s.baseURL + "/uploads/"
	if !strings.HasPrefix(url, prefix) {
		return "", false
	}
	return strings.TrimPrefix(url, prefix), true
}

// Root returns the directory backing the store, for static file serving.
func (s *DiskStore) Root() string {
	return s.root
}
