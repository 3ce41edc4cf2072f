package state

import (
	"context"
	"errors"

	"github.com/amirhossein-jamali/digichron/internal/domain/entity"
	errs "github.com/amirhossein-jamali/digichron/internal/domain/error"
	coreport "github.com/amirhossein-jamali/digichron/internal/domain/port/core"
	"github.com/amirhossein-jamali/digichron/internal/domain/port/persistence"
)

// Repository restores and persists face records through a BlobStore
type Repository struct {
	store  persistence.BlobStore
	logger coreport.Logger
}

// NewRepository creates a new Repository
func NewRepository(store persistence.BlobStore, logger coreport.Logger) *Repository {
	return &Repository{
		store:  store,
		logger: logger,
	}
}

// Restore loads the record stored under key into rec. It returns false and
// leaves rec untouched when nothing usable is stored: the record is missing,
// was written with another size, fails validation, or the store failed.
func (r *Repository) Restore(ctx context.Context, key uint32, rec entity.Record) bool {
	data, err := r.store.Load(ctx, key, rec.RecordSize())
	if err != nil {
		if errs.IsAbsent(err) {
			if errs.IsSizeMismatch(err) {
				r.logger.Info("Discarding stale record", logFields(key, err))
			}
			return false
		}
		r.logger.Error("Failed to load record", logFields(key, err))
		return false
	}

	if err := rec.UnmarshalBinary(data); err != nil {
		r.logger.Warn("Discarding invalid record", logFields(key, err))
		return false
	}

	return true
}

// Persist writes rec under key, replacing any previous record
func (r *Repository) Persist(ctx context.Context, key uint32, rec entity.Record) error {
	data, err := rec.MarshalBinary()
	if err != nil {
		return errs.NewPersistenceError("encode", key, err)
	}

	if err := r.store.Save(ctx, key, data); err != nil {
		r.logger.Error("Failed to save record", logFields(key, err))
		return err
	}

	r.logger.Debug("Record saved", map[string]any{
		"key":  key,
		"size": len(data),
	})
	return nil
}

func logFields(key uint32, err error) map[string]any {
	var persistErr *errs.PersistenceError
	if errors.As(err, &persistErr) {
		return persistErr.LogFields()
	}
	return map[string]any{
		"key":   key,
		"error": err.Error(),
	}
}
