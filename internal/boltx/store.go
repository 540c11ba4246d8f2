// Package boltx stores the app snapshot in a local bbolt file.
package boltx

import (
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"
)

var (
	bucketApp     = []byte("app")
	bucketBackups = []byte("backups")
)

// Store is a single-document snapshot store keyed by a fixed name.
type Store struct {
	db  *bolt.DB
	key []byte
}

// Open creates/opens the database file and the buckets.
func Open(path, key string) (*Store, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists(bucketApp); err != nil {
			return err
		}
		_, err := tx.CreateBucketIfNotExists(bucketBackups)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db, key: []byte(key)}, nil
}

func (s *Store) Close() error { return s.db.Close() }

func (s *Store) Save(raw []byte) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketApp).Put(s.key, raw)
	})
}

// Load returns the stored document, or nil when none exists yet.
func (s *Store) Load() ([]byte, error) {
	var out []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket(bucketApp).Get(s.key); v != nil {
			out = append([]byte(nil), v...)
		}
		return nil
	})
	return out, err
}

// Backup copies the current document under backups/<date>. One backup
// per calendar day; the nightly job calls this.
func (s *Store) Backup(date string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		v := tx.Bucket(bucketApp).Get(s.key)
		if v == nil {
			return nil
		}
		return tx.Bucket(bucketBackups).Put([]byte(date), v)
	})
}
