package config

import (
	"github.com/amirhossein-jamali/tuition-payment/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/tuition-payment/internal/infrastructure/adapter/logger"
)

// DatabaseOptions converts the database section for the database adapter
func (c *Config) DatabaseOptions() *database.Config {
	return &database.Config{
		Driver:          c.Database.Driver,
		Host:            c.Database.Host,
		Port:            database.ParsePort(c.Database.Port),
		Username:        c.Database.Username,
		Password:        c.Database.Password,
		Database:        c.Database.Database,
		SSLMode:         c.Database.SSLMode,
		MaxOpenConns:    c.Database.MaxOpenConns,
		MaxIdleConns:    c.Database.MaxIdleConns,
		ConnMaxLifetime: c.Database.ConnMaxLifetime,
		ConnMaxIdleTime: c.Database.ConnMaxIdleTime,
		QueryTimeout:    c.Database.QueryTimeout,
		LogLevel:        c.Database.LogLevel,
		RetryAttempts:   c.Database.RetryAttempts,
		RetryDelay:      c.Database.RetryDelay,
		IsolationLevel:  c.Database.IsolationLevel,
		MonitorInterval: c.Database.PoolMonitor,
	}
}

// LoggerOptions converts the logger section for the zap adapter
func (c *Config) LoggerOptions() logger.Options {
	return logger.Options{
		Production: c.Environment == Production,
		Level:      c.Logger.Level,
		Format:     c.Logger.Format,
		Output:     c.Logger.Output,
		CallerInfo: c.Logger.CallerInfo,
	}
}
