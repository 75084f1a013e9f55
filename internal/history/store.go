package history

import (
	"encoding/binary"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"
)

var bucketCmds = []byte("cmds")

// Store is a List backed by a bbolt database. Commands are keyed by the
// bucket sequence number, big-endian, so iteration order is append order.
// Prior entries are never rewritten.
type Store struct {
	list *List
	db   *bolt.DB
}

// Open opens (or creates) the database at path and loads all persisted
// commands, oldest first.
func Open(path string) (*Store, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}

	var entries []string
	err = db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(bucketCmds)
		if err != nil {
			return err
		}
		return b.ForEach(func(k, v []byte) error {
			entries = append(entries, string(v))
			return nil
		})
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to load history: %w", err)
	}

	return &Store{list: NewList(entries), db: db}, nil
}

// NewMemory returns a store with no backing database, for sessions that
// must not touch the history file.
func NewMemory(entries []string) *Store {
	return &Store{list: NewList(entries)}
}

// Save appends cmd to the log and to the database. The in-memory append
// happens regardless, so navigation stays coherent even when the write
// fails.
func (s *Store) Save(cmd string) error {
	s.list.Append(cmd)
	if s.db == nil {
		return nil
	}
	err := s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketCmds)
		seq, err := b.NextSequence()
		if err != nil {
			return err
		}
		return b.Put(marshalSeq(seq), []byte(cmd))
	})
	if err != nil {
		return fmt.Errorf("failed to append history: %w", err)
	}
	return nil
}

// Prev navigates one entry toward the oldest. See List.Prev.
func (s *Store) Prev() string {
	return s.list.Prev()
}

// Next navigates one entry toward the newest. See List.Next.
func (s *Store) Next() string {
	return s.list.Next()
}

// Len returns the number of logged commands.
func (s *Store) Len() int {
	return s.list.Len()
}

// Close releases the database, if any.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func marshalSeq(seq uint64) []byte {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, seq)
	return buf
}
