package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	coreport "github.com/amirhossein-jamali/tuition-payment/internal/domain/port/core"
	"github.com/amirhossein-jamali/tuition-payment/internal/domain/port/gateway"
	"github.com/amirhossein-jamali/tuition-payment/internal/domain/usecase/account"
	"github.com/amirhossein-jamali/tuition-payment/internal/domain/usecase/lock"
	"github.com/amirhossein-jamali/tuition-payment/internal/domain/usecase/otp"
	"github.com/amirhossein-jamali/tuition-payment/internal/domain/usecase/payment"

	"github.com/amirhossein-jamali/tuition-payment/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/tuition-payment/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/tuition-payment/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/tuition-payment/internal/infrastructure/adapter/cache"
	"github.com/amirhossein-jamali/tuition-payment/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/tuition-payment/internal/infrastructure/adapter/events"
	grpcadapter "github.com/amirhossein-jamali/tuition-payment/internal/infrastructure/adapter/grpc"
	"github.com/amirhossein-jamali/tuition-payment/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/tuition-payment/internal/infrastructure/adapter/notification"
	timeProvider "github.com/amirhossein-jamali/tuition-payment/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/tuition-payment/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate essential configuration
	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger, err := logger.NewZapLoggerWithOptions(cfg.LoggerOptions())
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = appLogger.Flush() }()

	tp := timeProvider.NewRealTimeProvider()

	// Connect to the database
	dbManager := database.NewManager(cfg.DatabaseOptions(), appLogger, tp)
	if _, err := dbManager.Connect(); err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer dbManager.Close()

	// Run migrations
	startupCtx, cancelStartup := context.WithTimeout(context.Background(), time.Minute)
	if err := dbManager.MigrationManager().MigrateAll(startupCtx); err != nil {
		cancelStartup()
		appLogger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	otpCache, redisClient := buildOTPCache(startupCtx, cfg, appLogger)
	cancelStartup()
	if redisClient != nil {
		defer redisClient.Close()
	}

	publisher := buildPublisher(cfg, tp, appLogger)
	defer publisher.Close()

	notifier := buildNotifier(cfg, appLogger)

	// Initialize use cases
	uow := dbManager.CreateUnitOfWork()
	lockManager := lock.NewManager(uow, tp, appLogger)
	otpService := otp.NewService(uow, otpCache, otp.RandomGenerator{}, tp, appLogger, otp.Config{
		TTL:         cfg.Payment.OTPTTL,
		MaxAttempts: cfg.Payment.OTPMaxAttempts,
	})
	coordinator := payment.NewCoordinator(uow, lockManager, otpService, notifier, publisher, tp, appLogger, payment.Config{
		LockTTL: cfg.Payment.LockTTL,
	})
	accountService := account.NewService(uow, appLogger)

	// Background lock sweeper
	sweeper := lock.NewSweeper(lockManager, cfg.Payment.LockSweepInterval, appLogger)
	sweeper.Start(context.Background())

	// gRPC health
	healthServer := grpcadapter.NewHealthServer(cfg.GRPC.Port, appLogger)
	if err := healthServer.Start(); err != nil {
		appLogger.Error("Failed to start gRPC health server", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Initialize Gin router
	router := gin.New()
	routes.SetupMiddlewares(router, appLogger)
	routes.SetupRoutes(router, routes.Handlers{
		Payment: handler.NewPaymentHandler(coordinator, appLogger),
		User:    handler.NewUserHandler(accountService, appLogger),
		Health:  handler.NewHealthHandler(dbManager, tp, appLogger),
	}, middleware.Auth(middleware.NewTokenVerifier(cfg.Auth.JWTSecret, cfg.Auth.Issuer, tp), appLogger))

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	// Start the server in a goroutine
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"port": cfg.Server.Port,
			"env":  cfg.Environment,
		})

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)
	healthServer.SetServing(false)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	// The sweeper must stop before the pool closes
	sweeper.Stop()
	healthServer.Stop()

	appLogger.Info("Server exited gracefully", nil)
}

// buildOTPCache connects to Redis when configured. A failed connection degrades
// to the no-op cache because the cache is never the source of truth.
func buildOTPCache(ctx context.Context, cfg *config.Config, appLogger coreport.Logger) (gateway.OTPCache, *redis.Client) {
	if !cfg.Redis.Enabled() {
		appLogger.Info("Redis not configured, OTP cache disabled", nil)
		return cache.NewNoopOTPCache(), nil
	}

	client, err := cache.Connect(ctx, cache.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		appLogger.Warn("Redis unavailable, OTP cache disabled", map[string]any{
			"error": err.Error(),
		})
		return cache.NewNoopOTPCache(), nil
	}

	appLogger.Info("OTP cache connected", map[string]any{"addr": cfg.Redis.Addr})
	return cache.NewRedisOTPCache(client), client
}

// buildPublisher picks Kafka when brokers are configured, the log otherwise
func buildPublisher(cfg *config.Config, tp coreport.TimeProvider, appLogger coreport.Logger) gateway.EventPublisher {
	if !cfg.Kafka.Enabled() {
		return events.NewLoggingPublisher(appLogger)
	}

	publisher, err := events.NewKafkaPublisher(cfg.Kafka.Brokers, map[string]string{
		gateway.EventPaymentCompleted: cfg.Kafka.CompletedTopic,
		gateway.EventPaymentCancelled: cfg.Kafka.CancelledTopic,
	}, tp)
	if err != nil {
		appLogger.Warn("Kafka publisher unavailable, logging events instead", map[string]any{
			"error": err.Error(),
		})
		return events.NewLoggingPublisher(appLogger)
	}

	appLogger.Info("Kafka publisher configured", map[string]any{
		"brokers": strings.Join(cfg.Kafka.Brokers, ","),
	})
	return publisher
}

// buildNotifier picks SMTP when mail is enabled, the log otherwise
func buildNotifier(cfg *config.Config, appLogger coreport.Logger) gateway.NotificationGateway {
	if !cfg.Mail.Enabled {
		return notification.NewLoggingNotifier(appLogger)
	}
	return notification.NewSMTPNotifier(notification.SMTPConfig{
		Host:     cfg.Mail.Host,
		Port:     cfg.Mail.Port,
		Username: cfg.Mail.Username,
		Password: cfg.Mail.Password,
		From:     cfg.Mail.From,
		Timeout:  time.Duration(cfg.Mail.Timeout) * time.Second,
	}, appLogger)
}

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	var missingConfigs []string

	if cfg.Server.Port == 0 {
		missingConfigs = append(missingConfigs, "server.port")
	}
	if cfg.Server.ReadTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.readTimeout")
	}
	if cfg.Server.WriteTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.writeTimeout")
	}
	if cfg.Server.ShutdownTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.shutdownTimeout")
	}

	if err := cfg.DatabaseOptions().Validate(); err != nil {
		missingConfigs = append(missingConfigs, "database ("+err.Error()+")")
	}

	if cfg.Payment.LockTTL <= 0 {
		missingConfigs = append(missingConfigs, "payment.lockTTL")
	}
	if cfg.Payment.OTPTTL <= 0 {
		missingConfigs = append(missingConfigs, "payment.otpTTL")
	}
	if cfg.Payment.OTPMaxAttempts <= 0 {
		missingConfigs = append(missingConfigs, "payment.otpMaxAttempts")
	}

	if cfg.Auth.JWTSecret == "" {
		missingConfigs = append(missingConfigs, "auth.jwtSecret (or TP_JWT_SECRET environment variable)")
	}

	if cfg.Mail.Enabled {
		if cfg.Mail.Host == "" {
			missingConfigs = append(missingConfigs, "mail.host (or TP_MAIL_HOST environment variable)")
		}
		if cfg.Mail.From == "" {
			missingConfigs = append(missingConfigs, "mail.from (or TP_MAIL_FROM environment variable)")
		}
	}

	switch cfg.Environment {
	case config.Development, config.Production, config.Test:
	case "":
		missingConfigs = append(missingConfigs, "environment")
	default:
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			cfg.Environment, config.Development, config.Production, config.Test)
	}

	if cfg.Logger.Level == "" {
		missingConfigs = append(missingConfigs, "logger.level")
	}

	if len(missingConfigs) > 0 {
		return fmt.Errorf("missing required configurations: %v", missingConfigs)
	}

	// Production gets additional checks for sensitive settings
	if cfg.Environment == config.Production {
		var warnings []string

		sslMode := strings.ToLower(cfg.Database.SSLMode)
		if cfg.Database.Driver == database.DriverPostgres && sslMode != "require" && sslMode != "verify-ca" && sslMode != "verify-full" {
			warnings = append(warnings, "database.sslMode should be set to 'require', 'verify-ca', or 'verify-full' in production")
		}
		if cfg.Database.Driver == database.DriverSQLite {
			warnings = append(warnings, "database.driver sqlite is intended for local single-node runs")
		}
		if len(cfg.Auth.JWTSecret) < 32 {
			warnings = append(warnings, "auth.jwtSecret should be at least 32 bytes in production")
		}
		if cfg.Server.ReadTimeout < 5*time.Second {
			warnings = append(warnings, "server.readTimeout is too low for production")
		}

		if len(warnings) > 0 {
			log.Printf("Warning: potential security issues in production configuration: %v", warnings)
		}
	}

	return nil
}
