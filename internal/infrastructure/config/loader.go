package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// EnvPrefix namespaces every environment override
const EnvPrefix = "TP"

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
	"../../.env",
	"./configs/.env",
	"../configs/.env",
	"../../configs/.env",
}

// LoadConfig loads configuration from file based on the environment
func LoadConfig() (*Config, error) {
	// .env is optional; a missing file is not an error
	_ = loadDotEnvFile()

	return LoadConfigFrom(getEnvironment(), ConfigPaths...)
}

// LoadConfigFrom reads <env>.yaml from the given directories and applies overrides
func LoadConfigFrom(env string, paths ...string) (*Config, error) {
	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")

	for _, path := range paths {
		v.AddConfigPath(path)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Set environment variables to override config
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	processEnvOverrides(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	config.Environment = env
	processDurations(&config)

	return &config, nil
}

// loadDotEnvFile loads the first .env file found in the search paths
func loadDotEnvFile() error {
	var lastError error

	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			lastError = err
			continue
		}
		return nil
	}

	if lastError != nil {
		return fmt.Errorf("could not load any .env file: %w", lastError)
	}
	return fmt.Errorf("no .env file found in search paths")
}

// setDefaults sets default values for non-critical configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.readTimeout", 15)       // seconds
	v.SetDefault("server.writeTimeout", 15)      // seconds
	v.SetDefault("server.idleTimeout", 60)       // seconds
	v.SetDefault("server.readHeaderTimeout", 10) // seconds
	v.SetDefault("server.shutdownTimeout", 10)   // seconds

	v.SetDefault("grpc.port", 0)

	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.maxOpenConns", 50)
	v.SetDefault("database.maxIdleConns", 25)
	v.SetDefault("database.connMaxLifetime", 30) // minutes
	v.SetDefault("database.connMaxIdleTime", 15) // minutes
	v.SetDefault("database.queryTimeout", 5)     // seconds
	v.SetDefault("database.retryAttempts", 3)
	v.SetDefault("database.retryDelay", 1) // seconds
	v.SetDefault("database.isolationLevel", "READ COMMITTED")
	v.SetDefault("database.logLevel", "warn")
	v.SetDefault("database.poolMonitorInterval", 30) // seconds

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")
	v.SetDefault("logger.output", "stdout")
	v.SetDefault("logger.callerInfo", true)

	v.SetDefault("payment.lockTTL", 10)           // minutes
	v.SetDefault("payment.otpTTL", 300)           // seconds
	v.SetDefault("payment.lockSweepInterval", 60) // seconds
	v.SetDefault("payment.otpMaxAttempts", 3)

	v.SetDefault("kafka.completedTopic", "tuition.payment.completed")
	v.SetDefault("kafka.cancelledTopic", "tuition.payment.cancelled")

	v.SetDefault("mail.enabled", false)
	v.SetDefault("mail.port", 587)
	v.SetDefault("mail.timeout", 10) // seconds
}

// getEnvironment determines the environment from TP_ENV, defaulting to development
func getEnvironment() string {
	env := os.Getenv(EnvPrefix + "_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// processEnvOverrides gives explicit environment variables priority over file values.
// AutomaticEnv only covers keys viper already knows about, so secrets that have no
// default are mapped here by hand.
func processEnvOverrides(v *viper.Viper) {
	stringOverrides := map[string]string{
		"TP_DB_HOST":        "database.host",
		"TP_DB_PORT":        "database.port",
		"TP_DB_USERNAME":    "database.username",
		"TP_DB_PASSWORD":    "database.password",
		"TP_DB_NAME":        "database.database",
		"TP_DB_SSL_MODE":    "database.sslMode",
		"TP_DB_DRIVER":      "database.driver",
		"TP_SERVER_HOST":    "server.host",
		"TP_LOGGER_LEVEL":   "logger.level",
		"TP_REDIS_ADDR":     "redis.addr",
		"TP_REDIS_PASSWORD": "redis.password",
		"TP_MAIL_HOST":      "mail.host",
		"TP_MAIL_USERNAME":  "mail.username",
		"TP_MAIL_PASSWORD":  "mail.password",
		"TP_MAIL_FROM":      "mail.from",
		"TP_JWT_SECRET":     "auth.jwtSecret",
		"TP_JWT_ISSUER":     "auth.issuer",
	}
	for env, key := range stringOverrides {
		if value := os.Getenv(env); value != "" {
			v.Set(key, value)
		}
	}

	if brokers := os.Getenv("TP_KAFKA_BROKERS"); brokers != "" {
		v.Set("kafka.brokers", splitList(brokers))
	}

	intOverrides := map[string]string{
		"TP_SERVER_PORT":          "server.port",
		"TP_GRPC_PORT":            "grpc.port",
		"TP_DB_MAX_OPEN_CONNS":    "database.maxOpenConns",
		"TP_DB_MAX_IDLE_CONNS":    "database.maxIdleConns",
		"TP_PAYMENT_LOCK_TTL_MIN": "payment.lockTTL",
		"TP_PAYMENT_OTP_TTL_SEC":  "payment.otpTTL",
		"TP_MAIL_PORT":            "mail.port",
	}
	for env, key := range intOverrides {
		if value, ok := getEnvInt(env); ok {
			v.Set(key, value)
		}
	}

	if enabled := os.Getenv("TP_MAIL_ENABLED"); enabled != "" {
		if parsed, err := strconv.ParseBool(enabled); err == nil {
			v.Set("mail.enabled", parsed)
		}
	}
}

// getEnvInt reads an integer environment variable
func getEnvInt(name string) (int, bool) {
	valStr := os.Getenv(name)
	if valStr == "" {
		return 0, false
	}

	val, err := strconv.Atoi(valStr)
	if err != nil {
		return 0, false
	}
	return val, true
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// processDurations converts time.Duration fields from their raw values to actual durations
func processDurations(config *Config) {
	// Seconds
	config.Server.ReadTimeout = time.Duration(config.Server.ReadTimeout) * time.Second
	config.Server.WriteTimeout = time.Duration(config.Server.WriteTimeout) * time.Second
	config.Server.IdleTimeout = time.Duration(config.Server.IdleTimeout) * time.Second
	config.Server.ReadHeaderTimeout = time.Duration(config.Server.ReadHeaderTimeout) * time.Second
	config.Server.ShutdownTimeout = time.Duration(config.Server.ShutdownTimeout) * time.Second
	config.Database.QueryTimeout = time.Duration(config.Database.QueryTimeout) * time.Second
	config.Database.RetryDelay = time.Duration(config.Database.RetryDelay) * time.Second
	config.Database.PoolMonitor = time.Duration(config.Database.PoolMonitor) * time.Second
	config.Payment.OTPTTL = time.Duration(config.Payment.OTPTTL) * time.Second
	config.Payment.LockSweepInterval = time.Duration(config.Payment.LockSweepInterval) * time.Second

	// Minutes
	config.Database.ConnMaxLifetime = time.Duration(config.Database.ConnMaxLifetime) * time.Minute
	config.Database.ConnMaxIdleTime = time.Duration(config.Database.ConnMaxIdleTime) * time.Minute
	config.Payment.LockTTL = time.Duration(config.Payment.LockTTL) * time.Minute
}
