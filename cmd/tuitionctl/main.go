package main

import (
	"context"
	"fmt"
	"io"
	"os"

	coreport "github.com/amirhossein-jamali/tuition-payment/internal/domain/port/core"
	"github.com/amirhossein-jamali/tuition-payment/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/tuition-payment/internal/infrastructure/adapter/logger"
	timeProvider "github.com/amirhossein-jamali/tuition-payment/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/tuition-payment/internal/infrastructure/config"
	"github.com/spf13/cobra"
)

var Version = "dev"

// app is the database handle shared by every subcommand
type app struct {
	manager      *database.Manager
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
	out          io.Writer
	close        func()
}

// opener connects to the configured database
type opener func(ctx context.Context, out io.Writer) (*app, error)

func main() {
	if err := newRootCmd(openFromConfig).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd(open opener) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "tuitionctl",
		Short:         "Administration tool for the tuition payment service",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(migrateCmd(open))
	rootCmd.AddCommand(seedCmd(open))
	rootCmd.AddCommand(locksCmd(open))

	return rootCmd
}

// openFromConfig loads TP_ENV's configuration and connects without pool monitoring noise
func openFromConfig(ctx context.Context, out io.Writer) (*app, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	opts := cfg.LoggerOptions()
	opts.Format = "console"
	opts.Output = "stderr"
	appLogger, err := logger.NewZapLoggerWithOptions(opts)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	tp := timeProvider.NewRealTimeProvider()
	manager := database.NewManager(cfg.DatabaseOptions(), appLogger, tp)
	if _, err := manager.Connect(); err != nil {
		return nil, err
	}

	return &app{
		manager:      manager,
		logger:       appLogger,
		timeProvider: tp,
		out:          out,
		close: func() {
			_ = manager.Close()
			_ = appLogger.Flush()
		},
	}, nil
}

// withApp opens the database for the duration of one command
func withApp(cmd *cobra.Command, open opener, fn func(ctx context.Context, a *app) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	a, err := open(ctx, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	defer a.close()

	return fn(ctx, a)
}
