package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	errs "github.com/amirhossein-jamali/digichron/internal/domain/error"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// EnvPrefix prefixes every environment override, e.g. DC_PERSISTENCE_DRIVER
const EnvPrefix = "DC"

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"../.env",
	"./configs/.env",
	"../configs/.env",
}

// LoadConfig loads configs/<env>.yaml over the defaults and applies environment
// overrides. A missing file is not an error; the defaults apply.
func LoadConfig() (*Config, error) {
	dotEnv, err := loadDotEnvFile()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrInvalidConfig, err)
	}

	env := getEnvironment()

	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")
	for _, path := range ConfigPaths {
		v.AddConfigPath(path)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("%w: error reading config file: %w", errs.ErrInvalidConfig, err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	processEnvOverrides(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("%w: unable to decode config into struct: %w", errs.ErrInvalidConfig, err)
	}

	config.Environment = env
	config.DotEnvFile = dotEnv

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// loadDotEnvFile loads the first .env file found. Finding none is fine.
func loadDotEnvFile() (string, error) {
	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			return "", fmt.Errorf("could not load %s: %w", path, err)
		}
		return path, nil
	}
	return "", nil
}

// setDefaults sets the values used when no config file is present
func setDefaults(v *viper.Viper) {
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.output", "digichron.log")

	v.SetDefault("persistence.driver", DriverSQLite)
	v.SetDefault("persistence.path", "digichron.db")
	v.SetDefault("persistence.host", "")
	v.SetDefault("persistence.port", 5432)
	v.SetDefault("persistence.username", "")
	v.SetDefault("persistence.password", "")
	v.SetDefault("persistence.database", "digichron")
	v.SetDefault("persistence.sslMode", "disable")
	v.SetDefault("persistence.queryTimeout", 5*time.Second)
	v.SetDefault("persistence.retryAttempts", 3)
	v.SetDefault("persistence.retryDelay", time.Second)

	v.SetDefault("display.use24Hour", false)

	v.SetDefault("faces", []map[string]any{
		{"kind": FaceKindClock, "name": "MAIN", "key": 1},
		{"kind": FaceKindCountdown, "name": "TMR1", "key": 3},
		{"kind": FaceKindCountdown, "name": "TMR2", "key": 4},
		{"kind": FaceKindStopwatch, "name": "STW", "key": 2},
	})

	v.SetDefault("status.batteryPercent", 100)
	v.SetDefault("status.charging", false)
	v.SetDefault("status.bluetooth", true)
	v.SetDefault("status.powerSupplyDir", "/sys/class/power_supply")
}

// getEnvironment determines the environment to use based on DC_ENV
func getEnvironment() string {
	env := os.Getenv(EnvPrefix + "_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// processEnvOverrides maps the short database variables onto their config keys
func processEnvOverrides(v *viper.Viper) {
	overrides := map[string]string{
		"DC_DB_HOST":     "persistence.host",
		"DC_DB_USERNAME": "persistence.username",
		"DC_DB_PASSWORD": "persistence.password",
		"DC_DB_NAME":     "persistence.database",
		"DC_LOG_LEVEL":   "logger.level",
	}
	for env, key := range overrides {
		if value := os.Getenv(env); value != "" {
			v.Set(key, value)
		}
	}
}
