package config

import (
	"strings"
	"time"
)

// Config holds all configuration for the application
type Config struct {
	Environment string         `mapstructure:"environment"`
	Server      ServerConfig   `mapstructure:"server"`
	GRPC        GRPCConfig     `mapstructure:"grpc"`
	Database    DatabaseConfig `mapstructure:"database"`
	Logger      LoggerConfig   `mapstructure:"logger"`
	Payment     PaymentConfig  `mapstructure:"payment"`
	Redis       RedisConfig    `mapstructure:"redis"`
	Kafka       KafkaConfig    `mapstructure:"kafka"`
	Mail        MailConfig     `mapstructure:"mail"`
	Auth        AuthConfig     `mapstructure:"auth"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port"`
	ReadTimeout       time.Duration `mapstructure:"readTimeout"`       // seconds
	WriteTimeout      time.Duration `mapstructure:"writeTimeout"`      // seconds
	IdleTimeout       time.Duration `mapstructure:"idleTimeout"`       // seconds
	ReadHeaderTimeout time.Duration `mapstructure:"readHeaderTimeout"` // seconds
	ShutdownTimeout   time.Duration `mapstructure:"shutdownTimeout"`   // seconds
}

// GRPCConfig contains the health server settings. Port 0 disables it.
type GRPCConfig struct {
	Port int `mapstructure:"port"`
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver"`
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	Username        string        `mapstructure:"username"`
	Password        string        `mapstructure:"password"`
	Database        string        `mapstructure:"database"`
	SSLMode         string        `mapstructure:"sslMode"`
	MaxOpenConns    int           `mapstructure:"maxOpenConns"`
	MaxIdleConns    int           `mapstructure:"maxIdleConns"`
	ConnMaxLifetime time.Duration `mapstructure:"connMaxLifetime"` // minutes
	ConnMaxIdleTime time.Duration `mapstructure:"connMaxIdleTime"` // minutes
	QueryTimeout    time.Duration `mapstructure:"queryTimeout"`    // seconds
	RetryAttempts   int           `mapstructure:"retryAttempts"`
	RetryDelay      time.Duration `mapstructure:"retryDelay"` // seconds
	IsolationLevel  string        `mapstructure:"isolationLevel"`
	LogLevel        string        `mapstructure:"logLevel"`
	PoolMonitor     time.Duration `mapstructure:"poolMonitorInterval"` // seconds
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	Output     string `mapstructure:"output"`
	TimeFormat string `mapstructure:"timeFormat"`
	CallerInfo bool   `mapstructure:"callerInfo"`
}

// PaymentConfig contains the reservation and OTP settings
type PaymentConfig struct {
	LockTTL           time.Duration `mapstructure:"lockTTL"` // minutes
	OTPTTL            time.Duration `mapstructure:"otpTTL"`  // seconds
	OTPMaxAttempts    int           `mapstructure:"otpMaxAttempts"`
	LockSweepInterval time.Duration `mapstructure:"lockSweepInterval"` // seconds
}

// RedisConfig contains the OTP cache settings. An empty address disables the cache.
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Enabled reports whether a Redis address is configured
func (c RedisConfig) Enabled() bool {
	return strings.TrimSpace(c.Addr) != ""
}

// KafkaConfig contains the event publisher settings. No brokers disables Kafka.
type KafkaConfig struct {
	Brokers        []string `mapstructure:"brokers"`
	CompletedTopic string   `mapstructure:"completedTopic"`
	CancelledTopic string   `mapstructure:"cancelledTopic"`
}

// Enabled reports whether at least one broker is configured
func (c KafkaConfig) Enabled() bool {
	for _, broker := range c.Brokers {
		if strings.TrimSpace(broker) != "" {
			return true
		}
	}
	return false
}

// MailConfig contains SMTP settings
type MailConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	From     string `mapstructure:"from"`
	Timeout  int    `mapstructure:"timeout"` // seconds
}

// AuthConfig contains bearer token verification settings
type AuthConfig struct {
	JWTSecret string `mapstructure:"jwtSecret"`
	Issuer    string `mapstructure:"issuer"`
}
