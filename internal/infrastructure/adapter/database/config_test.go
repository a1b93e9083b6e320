package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validPostgresConfig() *Config {
	return &Config{
		Driver:        DriverPostgres,
		Host:          "localhost",
		Port:          5432,
		Username:      "tuition",
		Password:      "secret",
		Database:      "tuition_payment",
		SSLMode:       "disable",
		MaxOpenConns:  10,
		MaxIdleConns:  5,
		QueryTimeout:  5 * time.Second,
		LogLevel:      "info",
		RetryAttempts: 3,
		RetryDelay:    time.Second,
	}
}

func TestConfigValidate(t *testing.T) {
	t.Run("Valid postgres", func(t *testing.T) {
		assert.NoError(t, validPostgresConfig().Validate())
	})

	t.Run("Sqlite needs only a path", func(t *testing.T) {
		cfg := &Config{
			Driver:       DriverSQLite,
			Database:     "file:tuition.db",
			MaxOpenConns: 1,
			MaxIdleConns: 1,
			QueryTimeout: time.Second,
			LogLevel:     "silent",
		}
		assert.NoError(t, cfg.Validate())
	})

	testCases := []struct {
		name   string
		mutate func(c *Config)
		errMsg string
	}{
		{"Missing host", func(c *Config) { c.Host = "" }, "database host is required"},
		{"Bad port", func(c *Config) { c.Port = 70000 }, "invalid port number"},
		{"Bad driver", func(c *Config) { c.Driver = "mysql" }, "unsupported database driver"},
		{"Bad ssl mode", func(c *Config) { c.SSLMode = "sometimes" }, "invalid SSL mode"},
		{"Zero pool", func(c *Config) { c.MaxOpenConns = 0 }, "max open connections"},
		{"Bad log level", func(c *Config) { c.LogLevel = "verbose" }, "invalid log level"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validPostgresConfig()
			tc.mutate(cfg)
			err := cfg.Validate()
			assert.Error(t, err)
			assert.Contains(t, err.Error(), tc.errMsg)
		})
	}
}

func TestConfigDSN(t *testing.T) {
	cfg := validPostgresConfig()
	assert.Equal(t, "host=localhost port=5432 user=tuition password=secret dbname=tuition_payment sslmode=disable", cfg.DSN())
	assert.NotContains(t, cfg.SafeDSN(), "secret")

	cfg.Driver = DriverSQLite
	cfg.Database = "file::memory:"
	assert.Equal(t, "file::memory:", cfg.DSN())
}

func TestParsePort(t *testing.T) {
	assert.Equal(t, 5432, ParsePort("5432"))
	assert.Equal(t, 0, ParsePort("abc"))
}
