package memory

import (
	"context"
	"sync"

	errs "github.com/amirhossein-jamali/digichron/internal/domain/error"
	"github.com/amirhossein-jamali/digichron/internal/domain/port/persistence"
)

// BlobStore keeps records in process memory. Nothing survives a restart.
type BlobStore struct {
	mu      sync.RWMutex
	records map[uint32][]byte
	closed  bool
}

// NewBlobStore creates an empty in-memory store
func NewBlobStore() *BlobStore {
	return &BlobStore{records: make(map[uint32][]byte)}
}

var _ persistence.BlobStore = (*BlobStore)(nil)

// Save stores a copy of data under key
func (s *BlobStore) Save(_ context.Context, key uint32, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return errs.NewPersistenceError("save", key, errs.ErrStoreUnavailable)
	}
	s.records[key] = append([]byte(nil), data...)
	return nil
}

// Load returns a copy of the record under key if it has the expected size
func (s *BlobStore) Load(_ context.Context, key uint32, size int) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, errs.NewPersistenceError("load", key, errs.ErrStoreUnavailable)
	}
	data, ok := s.records[key]
	if !ok {
		return nil, errs.NewPersistenceError("load", key, errs.ErrRecordNotFound)
	}
	if len(data) != size {
		return nil, errs.NewSizeMismatchError(key, size, len(data))
	}
	return append([]byte(nil), data...), nil
}

// Close makes every later call fail
func (s *BlobStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}
