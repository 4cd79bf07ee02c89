package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	bolt "go.etcd.io/bbolt"

	"jot/internal/types"
)

var (
	bucketNotes = []byte("notes")
	keyNotes    = []byte("notes")
)

// BoltPersister keeps the collection under a single key in a bbolt bucket.
type BoltPersister struct {
	db *bolt.DB
}

func NewBoltPersister(path string) (*BoltPersister, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("bolt db path is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, err
	}
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: 2 * time.Second})
	if err != nil {
		return nil, err
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketNotes)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return &BoltPersister{db: db}, nil
}

func (p *BoltPersister) Close() error {
	return p.db.Close()
}

func (p *BoltPersister) Load() ([]types.Note, error) {
	var payload []byte
	err := p.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(bucketNotes)
		if bucket == nil {
			return nil
		}
		if value := bucket.Get(keyNotes); value != nil {
			payload = append([]byte(nil), value...)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return decodeNotes(payload), nil
}

func (p *BoltPersister) Persist(notes []types.Note) error {
	payload, err := json.Marshal(noteFile{Notes: notes})
	if err != nil {
		return err
	}
	return p.db.Update(func(tx *bolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists(bucketNotes)
		if err != nil {
			return err
		}
		return bucket.Put(keyNotes, payload)
	})
}
