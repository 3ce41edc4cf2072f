package repository

import (
	"context"
	"errors"

	errs "github.com/amirhossein-jamali/digichron/internal/domain/error"
	coreport "github.com/amirhossein-jamali/digichron/internal/domain/port/core"
	"github.com/amirhossein-jamali/digichron/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/digichron/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/digichron/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BlobRepository implements persistence.BlobStore using GORM
type BlobRepository struct {
	manager     *database.Manager
	logger      coreport.Logger
	retryConfig database.RetryConfig
	errorMapper *database.ErrorMapper
}

// NewBlobRepository creates a BlobRepository over a connected manager
func NewBlobRepository(manager *database.Manager, logger coreport.Logger) *BlobRepository {
	return &BlobRepository{
		manager:     manager,
		logger:      logger,
		retryConfig: database.DefaultRetryConfig(),
		errorMapper: database.NewErrorMapper(),
	}
}

var _ persistence.BlobStore = (*BlobRepository)(nil)

// Save upserts data under key
func (r *BlobRepository) Save(ctx context.Context, key uint32, data []byte) error {
	db := r.manager.DB()
	if db == nil {
		return errs.NewPersistenceError("save", key, errs.ErrStoreUnavailable)
	}

	record := model.BlobRecord{
		Key:  key,
		Size: len(data),
		Data: append([]byte(nil), data...),
	}

	opCtx, cancel := r.manager.WithTimeout(ctx)
	defer cancel()

	err := database.RetryOnTransientError(opCtx, r.retryConfig, func() error {
		return db.WithContext(opCtx).Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "record_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"size", "data", "updated_at"}),
		}).Create(&record).Error
	}, r.logger)
	if err != nil {
		return r.errorMapper.MapError(err, "save", key)
	}

	r.logger.Debug("Blob record upserted", map[string]any{
		"key":  key,
		"size": record.Size,
	})
	return nil
}

// Load returns the record under key if it is exactly size bytes long
func (r *BlobRepository) Load(ctx context.Context, key uint32, size int) ([]byte, error) {
	db := r.manager.DB()
	if db == nil {
		return nil, errs.NewPersistenceError("load", key, errs.ErrStoreUnavailable)
	}

	opCtx, cancel := r.manager.WithTimeout(ctx)
	defer cancel()

	var record model.BlobRecord
	err := database.RetryOnTransientError(opCtx, r.retryConfig, func() error {
		return db.WithContext(opCtx).Where("record_key = ?", key).First(&record).Error
	}, r.logger)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			r.logger.Error("Database error when loading blob record", map[string]any{
				"key":   key,
				"error": err.Error(),
			})
		}
		return nil, r.errorMapper.MapError(err, "load", key)
	}

	if len(record.Data) != size {
		return nil, errs.NewSizeMismatchError(key, size, len(record.Data))
	}
	return record.Data, nil
}

// Close closes the underlying connection
func (r *BlobRepository) Close() error {
	return r.manager.Close()
}
