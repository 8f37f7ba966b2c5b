// Package memory persists semantic records, such as the content of Memorize
// actions, in a bbolt database.
package memory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	bolt "go.etcd.io/bbolt"
	"go.uber.org/zap"
	"golang.org/x/text/cases"

	"github.com/five82/facet/internal/semantic"
)

// ErrNotFound is returned when no record has the requested id.
var ErrNotFound = errors.New("memory: record not found")

const (
	bucketRecords = "records"
	openTimeout   = time.Second
)

// Store is a bbolt-backed record store. It is safe for concurrent use.
type Store struct {
	db  *bolt.DB
	log *zap.Logger
	now func() time.Time
}

// Open opens or creates the database at path.
func Open(path string, log *zap.Logger) (*Store, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create memory dir: %w", err)
	}
	db, err := bolt.Open(path, 0o644, &bolt.Options{Timeout: openTimeout})
	if err != nil {
		return nil, fmt.Errorf("open memory db: %w", err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketRecords))
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("initialize memory db: %w", err)
	}
	log.Debug("memory store opened", zap.String("path", path))
	return &Store{db: db, log: log, now: time.Now}, nil
}

// Close releases the database file.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save stores rec. A missing id, collection or timestamp is filled in; the
// stored record is returned.
func (s *Store) Save(ctx context.Context, rec semantic.Record) (semantic.Record, error) {
	if err := ctx.Err(); err != nil {
		return semantic.Record{}, err
	}
	if strings.TrimSpace(rec.ID) == "" {
		rec.ID = uuid.NewString()
	}
	if strings.TrimSpace(rec.Collection) == "" {
		rec.Collection = semantic.DefaultCollection
	}
	if rec.Timestamp.IsZero() {
		rec.Timestamp = s.now().UTC()
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return semantic.Record{}, fmt.Errorf("encode record: %w", err)
	}
	err = s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketRecords)).Put([]byte(rec.ID), data)
	})
	if err != nil {
		return semantic.Record{}, fmt.Errorf("save record: %w", err)
	}
	s.log.Debug("record saved", zap.String("id", rec.ID), zap.String("collection", rec.Collection))
	return rec, nil
}

// Get returns the record with the given id.
func (s *Store) Get(ctx context.Context, id string) (semantic.Record, error) {
	if err := ctx.Err(); err != nil {
		return semantic.Record{}, err
	}
	var rec semantic.Record
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(bucketRecords)).Get([]byte(id))
		if v == nil {
			return ErrNotFound
		}
		return json.Unmarshal(v, &rec)
	})
	if err != nil {
		return semantic.Record{}, fmt.Errorf("get record %s: %w", id, err)
	}
	return rec, nil
}

// Delete removes the record with the given id.
func (s *Store) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	err := s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketRecords))
		if b.Get([]byte(id)) == nil {
			return ErrNotFound
		}
		return b.Delete([]byte(id))
	})
	if err != nil {
		return fmt.Errorf("delete record %s: %w", id, err)
	}
	return nil
}

// List returns the records of collection, oldest first. An empty collection
// lists everything.
func (s *Store) List(ctx context.Context, collection string) ([]semantic.Record, error) {
	return s.filter(ctx, func(rec semantic.Record) bool {
		return collection == "" || rec.Collection == collection
	})
}

// Find returns records whose content or collection contains query, ignoring
// case. An empty query matches nothing.
func (s *Store) Find(ctx context.Context, query string) ([]semantic.Record, error) {
	fold := cases.Fold()
	needle := fold.String(strings.TrimSpace(query))
	if needle == "" {
		return nil, nil
	}
	return s.filter(ctx, func(rec semantic.Record) bool {
		return strings.Contains(fold.String(rec.Content), needle) ||
			strings.Contains(fold.String(rec.Collection), needle)
	})
}

func (s *Store) filter(ctx context.Context, keep func(semantic.Record) bool) ([]semantic.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var out []semantic.Record
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketRecords)).ForEach(func(k, v []byte) error {
			var rec semantic.Record
			if err := json.Unmarshal(v, &rec); err != nil {
				s.log.Warn("skipping undecodable record", zap.ByteString("id", k), zap.Error(err))
				return nil
			}
			if keep(rec) {
				out = append(out, rec)
			}
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("scan records: %w", err)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Timestamp.Equal(out[j].Timestamp) {
			return out[i].Timestamp.Before(out[j].Timestamp)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}
