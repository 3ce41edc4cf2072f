package persistence

import "context"

// BlobStore keeps fixed-size opaque records under stable integer keys
type BlobStore interface {
	// Save replaces whatever is stored under key
	//
	// Possible errors:
	// - ErrStoreUnavailable: If the backing store cannot be written
	Save(ctx context.Context, key uint32, data []byte) error

	// Load returns the record under key only if it is exactly size bytes long
	//
	// Possible errors:
	// - ErrRecordNotFound: Nothing is stored under key
	// - ErrRecordSizeMismatch: The stored record was written by another schema
	// - ErrStoreUnavailable: If the backing store cannot be read
	Load(ctx context.Context, key uint32, size int) ([]byte, error)

	// Close releases the backing store
	Close() error
}
