// Package bbolt implements the ports.TextCache interface using bbolt
// (embedded B+ tree). Extracted document text is stored under its content
// hash in a single bucket. Writes are transactional — a crash mid-write
// cannot corrupt previously committed entries.
package bbolt

import (
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"
)

var bucketTexts = []byte("texts")

// Store implements ports.TextCache backed by bbolt.
type Store struct {
	db *bolt.DB
}

// NewStore opens (or creates) a bbolt database at the given path and
// ensures the text bucket exists.
func NewStore(path string) (*Store, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("bbolt open: %w", err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketTexts)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("bbolt init: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying bbolt database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Get returns the cached text for key; the second result is false on miss.
func (s *Store) Get(key string) (string, bool, error) {
	var text string
	var found bool
	err := s.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket(bucketTexts).Get([]byte(key)); v != nil {
			text = string(v)
			found = true
		}
		return nil
	})
	if err != nil {
		return "", false, fmt.Errorf("bbolt get: %w", err)
	}
	return text, found, nil
}

// Put stores text under key, overwriting any prior entry.
func (s *Store) Put(key, text string) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketTexts).Put([]byte(key), []byte(text))
	})
	if err != nil {
		return fmt.Errorf("bbolt put: %w", err)
	}
	return nil
}
