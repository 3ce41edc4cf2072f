package repository

import (
	"context"
	"path/filepath"
	"testing"

	errs "github.com/amirhossein-jamali/digichron/internal/domain/error"
	"github.com/amirhossein-jamali/digichron/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/digichron/internal/infrastructure/adapter/database/migration"
	"github.com/amirhossein-jamali/digichron/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/digichron/internal/infrastructure/adapter/model"
	timeadapter "github.com/amirhossein-jamali/digichron/internal/infrastructure/adapter/time"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSQLiteRepository(t *testing.T, path string) *BlobRepository {
	t.Helper()

	config := database.DefaultConfig()
	config.Path = path
	config.LogLevel = "silent"
	config.RetryAttempts = 1

	manager := database.NewManager(config, logger.NewNoopLogger(), timeadapter.NewRealTimeProvider())
	_, err := manager.Connect(context.Background())
	require.NoError(t, err)

	return NewBlobRepository(manager, logger.NewNoopLogger())
}

func TestBlobRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("Save then load", func(t *testing.T) {
		repo := newSQLiteRepository(t, ":memory:")
		defer repo.Close()

		require.NoError(t, repo.Save(ctx, 0, []byte{1, 0, 0, 0, 1, 0, 0, 0}))
		data, err := repo.Load(ctx, 0, 8)
		require.NoError(t, err)
		assert.Equal(t, []byte{1, 0, 0, 0, 1, 0, 0, 0}, data)
	})

	t.Run("Save replaces the previous record", func(t *testing.T) {
		repo := newSQLiteRepository(t, ":memory:")
		defer repo.Close()

		require.NoError(t, repo.Save(ctx, 3, []byte{1, 2, 3}))
		require.NoError(t, repo.Save(ctx, 3, []byte{4, 5, 6, 7}))

		data, err := repo.Load(ctx, 3, 4)
		require.NoError(t, err)
		assert.Equal(t, []byte{4, 5, 6, 7}, data)

		var count int64
		require.NoError(t, repo.manager.DB().Model(&model.BlobRecord{}).Count(&count).Error)
		assert.Equal(t, int64(1), count)
	})

	t.Run("Missing key", func(t *testing.T) {
		repo := newSQLiteRepository(t, ":memory:")
		defer repo.Close()

		_, err := repo.Load(ctx, 9, 8)
		assert.ErrorIs(t, err, errs.ErrRecordNotFound)
	})

	t.Run("Size mismatch", func(t *testing.T) {
		repo := newSQLiteRepository(t, ":memory:")
		defer repo.Close()

		require.NoError(t, repo.Save(ctx, 2, make([]byte, 64)))
		_, err := repo.Load(ctx, 2, 128)
		assert.True(t, errs.IsSizeMismatch(err))

		var persistenceErr *errs.PersistenceError
		require.ErrorAs(t, err, &persistenceErr)
		assert.Equal(t, 64, persistenceErr.StoredSize)
		assert.Equal(t, 128, persistenceErr.ExpectedSize)
	})

	t.Run("Closed store is unavailable", func(t *testing.T) {
		repo := newSQLiteRepository(t, ":memory:")
		require.NoError(t, repo.Close())

		assert.ErrorIs(t, repo.Save(ctx, 1, []byte{1}), errs.ErrStoreUnavailable)
		_, err := repo.Load(ctx, 1, 1)
		assert.ErrorIs(t, err, errs.ErrStoreUnavailable)
		assert.NoError(t, repo.Close())
	})

	t.Run("Records survive reopening the file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "watch.db")

		repo := newSQLiteRepository(t, path)
		require.NoError(t, repo.Save(ctx, 4, []byte("countdown")))
		require.NoError(t, repo.Close())

		reopened := newSQLiteRepository(t, path)
		defer reopened.Close()

		data, err := reopened.Load(ctx, 4, len("countdown"))
		require.NoError(t, err)
		assert.Equal(t, []byte("countdown"), data)

		version, err := reopened.manager.MigrationManager().GetCurrentVersion(ctx)
		require.NoError(t, err)
		assert.Equal(t, migration.CurrentSchemaVersion, version)

		var versions int64
		require.NoError(t, reopened.manager.DB().Model(&model.MigrationVersion{}).Count(&versions).Error)
		assert.Equal(t, int64(1), versions)
	})
}

func TestManagerRejectsInvalidConfig(t *testing.T) {
	config := database.DefaultConfig()
	config.Driver = "oracle"

	manager := database.NewManager(config, logger.NewNoopLogger(), timeadapter.NewRealTimeProvider())
	_, err := manager.Connect(context.Background())
	assert.ErrorIs(t, err, errs.ErrInvalidConfig)
}
