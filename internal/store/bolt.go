package store

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"fjacquet/budget-form/internal/logging"
	"fjacquet/budget-form/internal/models"

	bolt "go.etcd.io/bbolt"
)

// Bucket names.
const (
	BucketDocuments  = "documents"
	BucketContainers = "containers"
)

// BoltStore is a Store kept in a single bbolt database file.
// Documents and containers live in two buckets keyed by their clean path.
type BoltStore struct {
	db  *bolt.DB
	log logging.Logger
}

// NewBoltStore opens (or creates) the database at dbPath and initializes its buckets.
func NewBoltStore(dbPath string, logger logging.Logger) (*BoltStore, error) {
	if logger == nil {
		logger = logging.Discard()
	}
	db, err := bolt.Open(dbPath, models.PermissionDatabase, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, bucket := range []string{BucketDocuments, BucketContainers} {
			if _, err := tx.CreateBucketIfNotExists([]byte(bucket)); err != nil {
				return fmt.Errorf("failed to create bucket %s: %w", bucket, err)
			}
		}
		return nil
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &BoltStore{db: db, log: logger}, nil
}

// Close closes the database.
func (s *BoltStore) Close() error {
	return s.db.Close()
}

func (s *BoltStore) Stat(_ context.Context, p string) (models.EntryKind, error) {
	p = Clean(p)
	if p == "" {
		return models.KindContainer, nil
	}
	kind := models.KindNone
	err := s.db.View(func(tx *bolt.Tx) error {
		kind = statTx(tx, p)
		return nil
	})
	return kind, err
}

func (s *BoltStore) Read(_ context.Context, p string) ([]byte, error) {
	p = Clean(p)
	var data []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(BucketDocuments))
		if !has(b, p) {
			return fmt.Errorf("read %s: %w", p, ErrNotFound)
		}
		// Values are only valid during the transaction.
		v := b.Get([]byte(p))
		data = make([]byte, len(v))
		copy(data, v)
		return nil
	})
	return data, err
}

func (s *BoltStore) List(_ context.Context, container string) ([]string, error) {
	container = Clean(container)
	var docs []string
	err := s.db.View(func(tx *bolt.Tx) error {
		if container != "" && statTx(tx, container) != models.KindContainer {
			return fmt.Errorf("list %s: %w", container, ErrNotFound)
		}

		prefix := ""
		if container != "" {
			prefix = container + "/"
		}
		c := tx.Bucket([]byte(BucketDocuments)).Cursor()
		for k, _ := c.Seek([]byte(prefix)); k != nil && bytes.HasPrefix(k, []byte(prefix)); k, _ = c.Next() {
			rest := string(k[len(prefix):])
			if strings.Contains(rest, "/") {
				continue
			}
			docs = append(docs, string(k))
		}
		return nil
	})
	return docs, err
}

func (s *BoltStore) CreateContainer(_ context.Context, p string) error {
	p = Clean(p)
	if p == "" {
		return nil
	}
	err := s.db.Update(func(tx *bolt.Tx) error {
		docs := tx.Bucket([]byte(BucketDocuments))
		containers := tx.Bucket([]byte(BucketContainers))
		for _, c := range append(Ancestors(p), p) {
			if has(docs, c) {
				return fmt.Errorf("create container %s: document %s: %w", p, c, ErrExists)
			}
			if err := containers.Put([]byte(c), []byte{1}); err != nil {
				return fmt.Errorf("create container %s: %w", c, err)
			}
		}
		return nil
	})
	if err == nil {
		s.log.Debug("Created container", logging.F(logging.FieldContainer, p))
	}
	return err
}

func (s *BoltStore) Create(_ context.Context, p string, content []byte) (models.Document, error) {
	p = Clean(p)
	err := s.db.Update(func(tx *bolt.Tx) error {
		if statTx(tx, p) != models.KindNone {
			return fmt.Errorf("create %s: %w", p, ErrExists)
		}
		if parent := parentOf(p); parent != "" && statTx(tx, parent) != models.KindContainer {
			return fmt.Errorf("create %s: parent %s: %w", p, parent, ErrNotFound)
		}
		return tx.Bucket([]byte(BucketDocuments)).Put([]byte(p), content)
	})
	if err != nil {
		return models.Document{}, err
	}
	return models.NewDocument(p), nil
}

func statTx(tx *bolt.Tx, p string) models.EntryKind {
	if has(tx.Bucket([]byte(BucketDocuments)), p) {
		return models.KindDocument
	}
	if has(tx.Bucket([]byte(BucketContainers)), p) {
		return models.KindContainer
	}
	return models.KindNone
}

// has distinguishes a missing key from a key holding an empty value.
func has(b *bolt.Bucket, key string) bool {
	k, _ := b.Cursor().Seek([]byte(key))
	return k != nil && string(k) == key
}

func parentOf(p string) string {
	if i := strings.LastIndex(p, "/"); i >= 0 {
		return p[:i]
	}
	return ""
}
