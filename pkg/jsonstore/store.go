package jsonstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"hr-chatbot-be/internal/pkg/apperrors"
)

// Store persists whole-file JSON documents in a single directory.
// Every document is a full snapshot; updates read, mutate in memory and
// rewrite the file. Writers are serialized per document name so two
// concurrent read-modify-write cycles on the same document cannot
// interleave their renames.
type Store struct {
	dir string

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create data dir %s: %w", dir, apperrors.ErrPersistence)
	}
	return &Store{
		dir:   dir,
		locks: make(map[string]*sync.Mutex),
	}, nil
}

func (s *Store) lock(name string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[name]
	if !ok {
		l = &sync.Mutex{}
		s.locks[name] = l
	}
	return l
}

// Read unmarshals the named document into v.
func (s *Store) Read(name string, v interface{}) error {
	l := s.lock(name)
	l.Lock()
	defer l.Unlock()
	return s.read(name, v)
}

func (s *Store) read(name string, v interface{}) error {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("document %s: %w", name, apperrors.ErrNotFound)
		}
		return fmt.Errorf("read %s: %v: %w", name, err, apperrors.ErrPersistence)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode %s: %v: %w", name, err, apperrors.ErrParse)
	}
	return nil
}

// Write serializes v and replaces the named document atomically: the
// payload is written to a temp file first and moved into place with a
// rename, so concurrent readers never observe a partial write.
func (s *Store) Write(name string, v interface{}) error {
	l := s.lock(name)
	l.Lock()
	defer l.Unlock()
	return s.write(name, v)
}

func (s *Store) write(name string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %v: %w", name, err, apperrors.ErrPersistence)
	}

	filePath := filepath.Join(s.dir, name)
	tempPath := filePath + ".tmp"

	if err := os.WriteFile(tempPath, data, 0644); err != nil {
		return fmt.Errorf("write %s: %v: %w", name, err, apperrors.ErrPersistence)
	}
	if err := os.Rename(tempPath, filePath); err != nil {
		return fmt.Errorf("rename %s: %v: %w", name, err, apperrors.ErrPersistence)
	}
	return nil
}

// Update applies fn to the decoded document and writes the result back,
// holding the per-document lock for the whole cycle. A missing file is
// passed to fn as the zero value of T so list documents can start empty.
func Update[T any](s *Store, name string, fn func(T) (T, error)) error {
	l := s.lock(name)
	l.Lock()
	defer l.Unlock()

	var current T
	if err := s.read(name, &current); err != nil && !apperrors.IsNotFound(err) {
		return err
	}

	next, err := fn(current)
	if err != nil {
		return err
	}
	return s.write(name, next)
}

// Append adds item to a JSON list document, creating the file when absent.
func Append[T any](s *Store, name string, item T) error {
	return Update(s, name, func(list []T) ([]T, error) {
		return append(list, item), nil
	})
}

// ReadText returns the raw contents of a plain-text document.
func (s *Store) ReadText(name string) (string, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("document %s: %w", name, apperrors.ErrNotFound)
		}
		return "", fmt.Errorf("read %s: %v: %w", name, err, apperrors.ErrPersistence)
	}
	return string(data), nil
}

// Path returns the absolute location of the named document. Used by the
// policy file watcher to match change events.
func (s *Store) Path(name string) string {
	return filepath.Join(s.dir, name)
}
