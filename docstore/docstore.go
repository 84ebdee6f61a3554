package docstore

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.etcd.io/bbolt"
)

// Store is a schemaless document store backed by a single bbolt file. Each
// collection is a bucket holding JSON documents keyed by document ID.
//
// The store deliberately offers no uniqueness constraints and no
// multi-document transactions: callers that need "at most one document per
// key" run a pre-write query and tolerate the resulting check-then-act
// window.
type Store struct {
	db *bbolt.DB
}

// Open opens (or creates) the store file and ensures the named collections
// exist.
func Open(path string, collections ...string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create store directory: %w", err)
		}
	}

	db, err := bbolt.Open(path, 0o600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		for _, name := range collections {
			if _, err := tx.CreateBucketIfNotExists([]byte(name)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create collections: %w", err)
	}

	return &Store{db: db}, nil
}

// Close releases the underlying store file.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the location of the store file.
func (s *Store) Path() string {
	return s.db.Path()
}

// Put writes a document under the given ID, replacing any previous version.
func Put[T any](s *Store, collection, id string, doc T) error {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(doc); err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(collection))
		if b == nil {
			return fmt.Errorf("no such collection: %s", collection)
		}
		return b.Put([]byte(id), buf.Bytes())
	})
}

// Get fetches a single document by ID. The second return value reports
// whether the document exists.
func Get[T any](s *Store, collection, id string) (T, bool, error) {
	var doc T
	found := false

	err := s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(collection))
		if b == nil {
			return fmt.Errorf("no such collection: %s", collection)
		}
		raw := b.Get([]byte(id))
		if raw == nil {
			return nil
		}
		found = true
		return json.Unmarshal(raw, &doc)
	})
	if err != nil {
		return doc, false, fmt.Errorf("failed to get document: %w", err)
	}

	return doc, found, nil
}

// All returns every document in the collection.
func All[T any](s *Store, collection string) ([]T, error) {
	return Select[T](s, collection, func(T) bool { return true })
}

// Select returns the documents matching the predicate. This is the only
// query shape the store supports; field-equality queries are predicates
// over decoded documents, which means every query is a full collection scan.
func Select[T any](s *Store, collection string, keep func(T) bool) ([]T, error) {
	docs := []T{}

	err := s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(collection))
		if b == nil {
			return fmt.Errorf("no such collection: %s", collection)
		}
		return b.ForEach(func(_, raw []byte) error {
			var doc T
			if err := json.Unmarshal(raw, &doc); err != nil {
				return err
			}
			if keep(doc) {
				docs = append(docs, doc)
			}
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan collection: %w", err)
	}

	return docs, nil
}

// Count returns the number of documents in the collection.
func Count(s *Store, collection string) (int, error) {
	var n int
	err := s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(collection))
		if b == nil {
			return fmt.Errorf("no such collection: %s", collection)
		}
		n = b.Stats().KeyN
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to count collection: %w", err)
	}
	return n, nil
}
