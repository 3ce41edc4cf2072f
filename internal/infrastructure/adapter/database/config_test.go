package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestConfigValidate(t *testing.T) {
	postgresConfig := func() *Config {
		c := DefaultConfig()
		c.Driver = DriverPostgres
		c.Host = "localhost"
		c.Username = "watch"
		c.Database = "digichron"
		return c
	}

	testCases := []struct {
		name    string
		mutate  func() *Config
		wantErr string
	}{
		{"Default sqlite", DefaultConfig, ""},
		{"Postgres", postgresConfig, ""},
		{"Empty sqlite path", func() *Config { c := DefaultConfig(); c.Path = ""; return c }, "sqlite path is required"},
		{"Unknown driver", func() *Config { c := DefaultConfig(); c.Driver = "mysql"; return c }, "unsupported database driver: mysql"},
		{"Postgres without host", func() *Config { c := postgresConfig(); c.Host = ""; return c }, "database host is required"},
		{"Postgres bad port", func() *Config { c := postgresConfig(); c.Port = 70000; return c }, "invalid port number: 70000"},
		{"Postgres bad ssl mode", func() *Config { c := postgresConfig(); c.SSLMode = "sometimes"; return c }, "invalid SSL mode: sometimes"},
		{"Zero timeout", func() *Config { return DefaultConfig().WithQueryTimeout(0) }, "query timeout must be positive"},
		{"Negative retries", func() *Config { c := DefaultConfig(); c.RetryAttempts = -1; return c }, "retry attempts must be non-negative, got: -1"},
		{"Bad log level", func() *Config { c := DefaultConfig(); c.LogLevel = "loud"; return c }, "invalid log level: loud"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.mutate().Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tc.wantErr)
		})
	}
}

func TestConfigDSN(t *testing.T) {
	c := DefaultConfig().WithQueryTimeout(2 * time.Second)
	assert.Equal(t, "file:digichron.db?_busy_timeout=2000", c.DSN())

	c.Driver = DriverPostgres
	c.Host = "db"
	c.Username = "watch"
	c.Password = "secret"
	c.Database = "digichron"
	assert.Equal(t, "host=db port=5432 user=watch password=secret dbname=digichron sslmode=disable", c.DSN())
}
