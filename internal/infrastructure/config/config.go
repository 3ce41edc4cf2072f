package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/amirhossein-jamali/digichron/internal/domain/entity"
	errs "github.com/amirhossein-jamali/digichron/internal/domain/error"
)

// Face kinds accepted in the faces list
const (
	FaceKindClock     = "clock"
	FaceKindCountdown = "countdown"
	FaceKindStopwatch = "stopwatch"
)

// Persistence drivers
const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverFile     = "file"
)

// Config holds all configuration for the application
type Config struct {
	Environment string            `mapstructure:"environment"`
	Logger      LoggerConfig      `mapstructure:"logger"`
	Persistence PersistenceConfig `mapstructure:"persistence"`
	Display     DisplayConfig     `mapstructure:"display"`
	Faces       []FaceConfig      `mapstructure:"faces"`
	Status      StatusConfig      `mapstructure:"status"`

	// DotEnvFile is the .env file that was loaded, if any
	DotEnvFile string `mapstructure:"-"`
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // json or console
	Output string `mapstructure:"output"` // file path, stdout or stderr
}

// PersistenceConfig selects and configures the state store
type PersistenceConfig struct {
	Driver        string        `mapstructure:"driver"`
	Path          string        `mapstructure:"path"` // sqlite database or YAML document
	Host          string        `mapstructure:"host"`
	Port          int           `mapstructure:"port"`
	Username      string        `mapstructure:"username"`
	Password      string        `mapstructure:"password"`
	Database      string        `mapstructure:"database"`
	SSLMode       string        `mapstructure:"sslMode"`
	QueryTimeout  time.Duration `mapstructure:"queryTimeout"`
	RetryAttempts int           `mapstructure:"retryAttempts"`
	RetryDelay    time.Duration `mapstructure:"retryDelay"`
}

// DisplayConfig contains display settings
type DisplayConfig struct {
	Use24Hour bool `mapstructure:"use24Hour"`
}

// FaceConfig declares one face in display order
type FaceConfig struct {
	Kind string `mapstructure:"kind"`
	Name string `mapstructure:"name"`
	Key  uint32 `mapstructure:"key"`
}

// StatusConfig seeds the simulated battery and Bluetooth source
type StatusConfig struct {
	BatteryPercent int    `mapstructure:"batteryPercent"`
	Charging       bool   `mapstructure:"charging"`
	Bluetooth      bool   `mapstructure:"bluetooth"`
	PowerSupplyDir string `mapstructure:"powerSupplyDir"`
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	switch c.Environment {
	case Development, Production, Test:
	default:
		return fmt.Errorf("%w: unknown environment %q", errs.ErrInvalidConfig, c.Environment)
	}

	switch strings.ToLower(c.Logger.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("%w: invalid log level %q", errs.ErrInvalidConfig, c.Logger.Level)
	}
	if c.Logger.Format != "json" && c.Logger.Format != "console" {
		return fmt.Errorf("%w: invalid log format %q", errs.ErrInvalidConfig, c.Logger.Format)
	}

	switch c.Persistence.Driver {
	case DriverMemory, DriverSQLite, DriverPostgres, DriverFile:
	default:
		return fmt.Errorf("%w: unsupported persistence driver %q", errs.ErrInvalidConfig, c.Persistence.Driver)
	}
	if (c.Persistence.Driver == DriverSQLite || c.Persistence.Driver == DriverFile) && c.Persistence.Path == "" {
		return fmt.Errorf("%w: persistence path is required for %s", errs.ErrInvalidConfig, c.Persistence.Driver)
	}

	if c.Status.BatteryPercent < 0 || c.Status.BatteryPercent > 100 {
		return fmt.Errorf("%w: battery percent %d out of range", errs.ErrInvalidConfig, c.Status.BatteryPercent)
	}

	return c.validateFaces()
}

func (c *Config) validateFaces() error {
	if len(c.Faces) == 0 {
		return fmt.Errorf("%w: %w", errs.ErrInvalidConfig, errs.ErrNoFaces)
	}

	keys := make(map[uint32]string, len(c.Faces))
	var problems []error
	for i, face := range c.Faces {
		switch face.Kind {
		case FaceKindClock, FaceKindCountdown, FaceKindStopwatch:
		default:
			problems = append(problems, fmt.Errorf("face %d: %w: %q", i, errs.ErrUnknownFaceKind, face.Kind))
			continue
		}
		if _, err := entity.NewFaceInfo(face.Name, face.Key); err != nil {
			problems = append(problems, fmt.Errorf("face %d: %w", i, err))
			continue
		}
		if other, ok := keys[face.Key]; ok {
			problems = append(problems, fmt.Errorf("face %d: %w: %q and %q share key %d",
				i, errs.ErrDuplicateFaceKey, other, face.Name, face.Key))
			continue
		}
		keys[face.Key] = face.Name
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %w", errs.ErrInvalidConfig, errors.Join(problems...))
	}
	return nil
}
