package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	errs "github.com/amirhossein-jamali/digichron/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points the loader at an empty temp directory for the test
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	oldConfigPaths, oldDotEnvPaths := ConfigPaths, DotEnvPaths
	ConfigPaths = []string{dir}
	DotEnvPaths = []string{filepath.Join(dir, ".env")}
	t.Cleanup(func() {
		ConfigPaths, DotEnvPaths = oldConfigPaths, oldDotEnvPaths
	})

	t.Setenv("DC_ENV", Test)
	return dir
}

func TestLoadConfigDefaults(t *testing.T) {
	isolate(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, Test, cfg.Environment)
	assert.Equal(t, DriverSQLite, cfg.Persistence.Driver)
	assert.Equal(t, 5*time.Second, cfg.Persistence.QueryTimeout)
	assert.Equal(t, time.Second, cfg.Persistence.RetryDelay)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, 100, cfg.Status.BatteryPercent)
	assert.True(t, cfg.Status.Bluetooth)
	assert.Empty(t, cfg.DotEnvFile)

	assert.Equal(t, []FaceConfig{
		{Kind: FaceKindClock, Name: "MAIN", Key: 1},
		{Kind: FaceKindCountdown, Name: "TMR1", Key: 3},
		{Kind: FaceKindCountdown, Name: "TMR2", Key: 4},
		{Kind: FaceKindStopwatch, Name: "STW", Key: 2},
	}, cfg.Faces)
}

func TestLoadConfigFileAndOverrides(t *testing.T) {
	dir := isolate(t)

	yaml := `
logger:
  level: debug
  format: json
persistence:
  driver: file
  path: /tmp/watch.yaml
  queryTimeout: 2s
display:
  use24Hour: true
faces:
  - kind: stopwatch
    name: LAPS
    key: 7
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test.yaml"), []byte(yaml), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("DC_DB_PASSWORD=from-dotenv\n"), 0o644))
	t.Setenv("DC_LOGGER_LEVEL", "warn")
	t.Cleanup(func() { os.Unsetenv("DC_DB_PASSWORD") })

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Logger.Level)
	assert.Equal(t, "json", cfg.Logger.Format)
	assert.Equal(t, DriverFile, cfg.Persistence.Driver)
	assert.Equal(t, 2*time.Second, cfg.Persistence.QueryTimeout)
	assert.Equal(t, "from-dotenv", cfg.Persistence.Password)
	assert.True(t, cfg.Display.Use24Hour)
	assert.Equal(t, []FaceConfig{{Kind: FaceKindStopwatch, Name: "LAPS", Key: 7}}, cfg.Faces)
	assert.Equal(t, filepath.Join(dir, ".env"), cfg.DotEnvFile)
}

func TestLoadConfigRejectsBrokenFile(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test.yaml"), []byte("logger: [unclosed\n"), 0o644))

	_, err := LoadConfig()
	assert.ErrorIs(t, err, errs.ErrInvalidConfig)
	assert.Equal(t, errs.ExitCodeConfig, errs.ExitCode(err))
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Environment: Development,
			Logger:      LoggerConfig{Level: "info", Format: "console"},
			Persistence: PersistenceConfig{Driver: DriverMemory},
			Faces:       []FaceConfig{{Kind: FaceKindClock, Name: "MAIN", Key: 1}},
			Status:      StatusConfig{BatteryPercent: 50},
		}
	}

	testCases := []struct {
		name   string
		mutate func(c *Config)
		target error
	}{
		{"Valid", func(c *Config) {}, nil},
		{"Unknown environment", func(c *Config) { c.Environment = "staging" }, errs.ErrInvalidConfig},
		{"Bad log level", func(c *Config) { c.Logger.Level = "trace" }, errs.ErrInvalidConfig},
		{"Bad log format", func(c *Config) { c.Logger.Format = "xml" }, errs.ErrInvalidConfig},
		{"Unknown driver", func(c *Config) { c.Persistence.Driver = "redis" }, errs.ErrInvalidConfig},
		{"File without path", func(c *Config) { c.Persistence.Driver = DriverFile }, errs.ErrInvalidConfig},
		{"Battery out of range", func(c *Config) { c.Status.BatteryPercent = 101 }, errs.ErrInvalidConfig},
		{"No faces", func(c *Config) { c.Faces = nil }, errs.ErrNoFaces},
		{"Unknown kind", func(c *Config) { c.Faces[0].Kind = "alarm" }, errs.ErrUnknownFaceKind},
		{"Name too long", func(c *Config) { c.Faces[0].Name = "MAINFACE" }, errs.ErrInvalidFaceName},
		{"Reserved key", func(c *Config) { c.Faces[0].Key = 0 }, errs.ErrReservedFaceKey},
		{"Duplicate key", func(c *Config) {
			c.Faces = append(c.Faces, FaceConfig{Kind: FaceKindStopwatch, Name: "STW", Key: 1})
		}, errs.ErrDuplicateFaceKey},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := valid()
			tc.mutate(c)
			err := c.Validate()
			if tc.target == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.target)
			assert.ErrorIs(t, err, errs.ErrInvalidConfig)
		})
	}
}
