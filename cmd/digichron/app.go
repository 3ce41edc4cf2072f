package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/amirhossein-jamali/digichron/internal/domain/entity"
	errs "github.com/amirhossein-jamali/digichron/internal/domain/error"
	coreport "github.com/amirhossein-jamali/digichron/internal/domain/port/core"
	"github.com/amirhossein-jamali/digichron/internal/domain/port/device"
	"github.com/amirhossein-jamali/digichron/internal/domain/port/display"
	"github.com/amirhossein-jamali/digichron/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/digichron/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/digichron/internal/domain/usecase/clock"
	"github.com/amirhossein-jamali/digichron/internal/domain/usecase/countdown"
	"github.com/amirhossein-jamali/digichron/internal/domain/usecase/dispatcher"
	"github.com/amirhossein-jamali/digichron/internal/domain/usecase/stopwatch"
	"github.com/amirhossein-jamali/digichron/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/digichron/internal/infrastructure/adapter/filestore"
	"github.com/amirhossein-jamali/digichron/internal/infrastructure/adapter/memory"
	"github.com/amirhossein-jamali/digichron/internal/infrastructure/adapter/repository"
	"github.com/amirhossein-jamali/digichron/internal/infrastructure/config"
)

// faceDeps is everything a face constructor may need
type faceDeps struct {
	display      display.Display
	vibrator     device.Vibrator
	timeProvider coreport.TimeProvider
	scheduler    coreport.Scheduler
	logger       coreport.Logger
}

// buildFaces creates the configured faces in cycling order and restores each
// one's record. A face whose record is missing or stale starts from defaults.
func buildFaces(ctx context.Context, faces []config.FaceConfig, deps faceDeps, states dispatcher.StateRepository) ([]usecase.Face, error) {
	built := make([]usecase.Face, 0, len(faces))
	for _, fc := range faces {
		info, err := entity.NewFaceInfo(fc.Name, fc.Key)
		if err != nil {
			return nil, err
		}

		faceLogger := deps.logger.With(map[string]any{"face": info.Name, "kind": fc.Kind})

		var face usecase.Face
		switch fc.Kind {
		case config.FaceKindClock:
			face = clock.New(info, deps.display, deps.timeProvider, faceLogger)
		case config.FaceKindCountdown:
			face = countdown.New(info, deps.display, deps.vibrator, deps.timeProvider, deps.scheduler, faceLogger)
		case config.FaceKindStopwatch:
			face = stopwatch.New(info, deps.display, deps.timeProvider, deps.scheduler, faceLogger)
		default:
			return nil, fmt.Errorf("%w: %q", errs.ErrUnknownFaceKind, fc.Kind)
		}

		restored := states.Restore(ctx, face.Key(), face.State())
		deps.logger.Debug("Face built", map[string]any{
			"face":     face.Name(),
			"key":      face.Key(),
			"restored": restored,
		})
		built = append(built, face)
	}
	return built, nil
}

// openStore opens the configured BlobStore
func openStore(ctx context.Context, cfg config.PersistenceConfig, logLevel string, logger coreport.Logger, timeProvider coreport.TimeProvider) (persistence.BlobStore, error) {
	switch cfg.Driver {
	case config.DriverMemory:
		return memory.NewBlobStore(), nil

	case config.DriverFile:
		return filestore.Open(cfg.Path)

	case config.DriverSQLite, config.DriverPostgres:
		dbConfig := &database.Config{
			Driver:        cfg.Driver,
			Path:          cfg.Path,
			Host:          cfg.Host,
			Port:          cfg.Port,
			Username:      cfg.Username,
			Password:      cfg.Password,
			Database:      cfg.Database,
			SSLMode:       cfg.SSLMode,
			QueryTimeout:  cfg.QueryTimeout,
			SlowThreshold: database.DefaultConfig().SlowThreshold,
			LogLevel:      gormLogLevel(logLevel),
			RetryAttempts: cfg.RetryAttempts,
			RetryDelay:    cfg.RetryDelay,
		}
		manager := database.NewManager(dbConfig, logger, timeProvider)
		if _, err := manager.Connect(ctx); err != nil {
			return nil, err
		}
		return repository.NewBlobRepository(manager, logger), nil

	default:
		return nil, fmt.Errorf("%w: unsupported persistence driver %q", errs.ErrInvalidConfig, cfg.Driver)
	}
}

// gormLogLevel keeps SQL tracing out of the log unless the app runs at debug
func gormLogLevel(level string) string {
	switch level {
	case "debug":
		return "info"
	case "error":
		return "error"
	default:
		return "warn"
	}
}

type teardownStep struct {
	name string
	fn   func(ctx context.Context) error
}

// teardown runs cleanup steps in reverse order of registration
type teardown struct {
	steps  []teardownStep
	logger coreport.Logger
}

func (t *teardown) push(name string, fn func(ctx context.Context) error) {
	t.steps = append(t.steps, teardownStep{name: name, fn: fn})
}

// run executes every step, last registered first, and joins the failures
func (t *teardown) run(ctx context.Context) error {
	var failures []error
	for i := len(t.steps) - 1; i >= 0; i-- {
		step := t.steps[i]
		if err := step.fn(ctx); err != nil {
			t.logger.Error("Teardown step failed", map[string]any{
				"step":  step.name,
				"error": err.Error(),
			})
			failures = append(failures, fmt.Errorf("%s: %w", step.name, err))
			continue
		}
		t.logger.Debug("Teardown step done", map[string]any{"step": step.name})
	}
	t.steps = nil
	return errors.Join(failures...)
}
