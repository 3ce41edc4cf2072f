package database

import (
	"context"
	"fmt"
	"time"

	errs "github.com/amirhossein-jamali/digichron/internal/domain/error"
	coreport "github.com/amirhossein-jamali/digichron/internal/domain/port/core"
	"github.com/amirhossein-jamali/digichron/internal/infrastructure/adapter/database/migration"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Manager manages the database connection behind the gorm blob store
type Manager struct {
	config       *Config
	db           *gorm.DB
	logger       coreport.Logger
	migrationMgr *migration.MigrationManager
	timeProvider coreport.TimeProvider
}

// NewManager creates a new database manager
func NewManager(config *Config, logger coreport.Logger, timeProvider coreport.TimeProvider) *Manager {
	return &Manager{
		config:       config,
		logger:       logger,
		timeProvider: timeProvider,
	}
}

// Connect opens the database, retrying the initial connection, and migrates the schema
func (m *Manager) Connect(ctx context.Context) (*gorm.DB, error) {
	if err := m.config.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidConfig, err.Error())
	}

	m.logger.Info("Connecting to database", m.describe())

	gormConfig := &gorm.Config{
		Logger: NewDatabaseLogger(m.logger, m.timeProvider, m.config.LogLevel, m.config.SlowThreshold),
		NowFunc: func() time.Time {
			return m.timeProvider.Now()
		},
	}

	var err error
	var gormDB *gorm.DB
	attempts := m.config.RetryAttempts
	if attempts < 1 {
		attempts = 1
	}

	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			m.logger.Warn("Retrying database connection", map[string]any{
				"attempt": attempt + 1,
				"of":      attempts,
				"delay":   m.config.RetryDelay.String(),
			})
			select {
			case <-time.After(m.config.RetryDelay):
			case <-ctx.Done():
				return nil, errs.NewPersistenceError("connect", 0, fmt.Errorf("%w: %s", errs.ErrStoreUnavailable, ctx.Err()))
			}
		}

		gormDB, err = gorm.Open(m.dialector(), gormConfig)
		if err == nil {
			err = m.configurePool(gormDB)
		}
		if err == nil {
			break
		}

		m.logger.Error("Failed to connect to database", map[string]any{
			"error":   err.Error(),
			"attempt": attempt + 1,
		})
	}

	if err != nil {
		return nil, errs.NewPersistenceError("connect", 0,
			fmt.Errorf("%w: failed after %d attempts: %s", errs.ErrStoreUnavailable, attempts, err.Error()))
	}

	m.db = gormDB
	m.migrationMgr = migration.NewMigrationManager(gormDB, m.logger, m.timeProvider)

	migrateCtx, cancel := m.WithTimeout(ctx)
	defer cancel()
	if err := m.migrationMgr.MigrateAll(migrateCtx); err != nil {
		_ = m.Close()
		return nil, errs.NewPersistenceError("migrate", 0, fmt.Errorf("%w: %s", errs.ErrStoreUnavailable, err.Error()))
	}

	m.logger.Info("Successfully connected to database", m.describe())
	return m.db, nil
}

func (m *Manager) dialector() gorm.Dialector {
	if m.config.Driver == DriverPostgres {
		return postgres.Open(m.config.DSN())
	}
	return sqlite.Open(m.config.DSN())
}

func (m *Manager) configurePool(gormDB *gorm.DB) error {
	sqlDB, err := gormDB.DB()
	if err != nil {
		return fmt.Errorf("failed to get database connection: %w", err)
	}

	if m.config.Driver == DriverSQLite {
		// sqlite has a single writer and every in-memory connection is its own database
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)
		sqlDB.SetConnMaxLifetime(0)
		return nil
	}

	sqlDB.SetMaxOpenConns(4)
	sqlDB.SetMaxIdleConns(2)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := m.WithTimeout(context.Background())
	defer cancel()
	return sqlDB.PingContext(ctx)
}

func (m *Manager) describe() map[string]any {
	fields := map[string]any{
		"driver":          m.config.Driver,
		"query_timeout_s": m.config.QueryTimeout.Seconds(),
	}
	if m.config.Driver == DriverSQLite {
		fields["path"] = m.config.Path
	} else {
		fields["host"] = m.config.Host
		fields["port"] = m.config.Port
		fields["name"] = m.config.Database
	}
	return fields
}

// DB returns the GORM database instance
func (m *Manager) DB() *gorm.DB {
	return m.db
}

// Close closes the database connection
func (m *Manager) Close() error {
	if m.db == nil {
		return nil
	}
	m.logger.Info("Closing database connection", nil)

	sqlDB, err := m.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database connection: %w", err)
	}
	m.db = nil

	return sqlDB.Close()
}

// WithTimeout returns a context with timeout for database operations
func (m *Manager) WithTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, m.config.QueryTimeout)
}

// MigrationManager returns the migration manager
func (m *Manager) MigrationManager() *migration.MigrationManager {
	return m.migrationMgr
}
