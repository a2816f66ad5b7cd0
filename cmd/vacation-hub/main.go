package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/username/vacation-hub/internal/calendar"
	"github.com/username/vacation-hub/internal/config"
	"github.com/username/vacation-hub/internal/repository"
	"github.com/username/vacation-hub/internal/vacation"
)

var (
	configPath string
	logger     *zap.Logger = zap.NewNop()
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "vacation-hub",
		Short: "Team vacation planner",
		Long:  "Track team vacations, quotas and absences against the Baden-Württemberg holiday calendar",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load config to get log settings
			cfg, err := config.Load(configPath)
			if err == nil && cfg.Logging.File != "" {
				logger, err = initFileLogger(cfg.Logging.File, cfg.Logging.Level)
				if err != nil {
					initLogger("info") // Fallback to console
				}
			} else if err == nil {
				initLogger(cfg.Logging.Level)
			} else {
				initLogger("info") // Default console logger
			}
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path (default: ./config.yaml if present)")

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(statsCmd())
	rootCmd.AddCommand(absenceCmd())
	rootCmd.AddCommand(collisionsCmd())
	rootCmd.AddCommand(holidaysCmd())
	rootCmd.AddCommand(exportCmd())
	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(configCmd())

	err := rootCmd.Execute()
	_ = logger.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// openManager loads config, starts the configured repository and builds the manager.
// The returned stop function closes the repository.
func openManager(ctx context.Context) (*config.Config, *vacation.Manager, func(), error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	repo, err := repository.New(ctx, cfg.Storage.Backend, logger, cfg)
	if err != nil {
		return nil, nil, nil, err
	}
	if err := repo.OnStart(ctx); err != nil {
		return nil, nil, nil, fmt.Errorf("failed to start %s repository: %w", cfg.Storage.Backend, err)
	}

	stop := func() {
		if err := repo.OnStop(context.Background()); err != nil {
			logger.Warn("Failed to stop repository", zap.Error(err))
		}
	}

	manager := vacation.NewManager(cfg, repo, calendar.NewRegionalCalendar(), logger)
	return cfg, manager, stop, nil
}

func initLogger(level string) {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err == nil {
		config.Level = zap.NewAtomicLevelAt(zapLevel)
	}

	var err error
	logger, err = config.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
}

func initFileLogger(logFile string, level string) (*zap.Logger, error) {
	// Setup lumberjack for log rotation
	logWriter := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    100,  // MB
		MaxBackups: 3,    // Keep max 3 old log files
		MaxAge:     28,   // days
		Compress:   true, // Compress old logs with gzip
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		zapLevel = zapcore.InfoLevel
	}

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(logWriter),
		zapLevel,
	)

	return zap.New(core), nil
}
