package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/username/jp-holidays/internal/calendar"
	"github.com/username/jp-holidays/internal/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	configPath string
	logger     *zap.Logger
)

func main() {
	rootCmd := newRootCmd()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "jp-holidays",
		Short:         "Japanese national holiday calendar",
		Long:          "Query the Cabinet Office holiday CSV and generate a static JSON API from it",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Config errors surface later in the command; log at info until then
			level := "info"
			cfg, err := config.Load(configPath)
			if err == nil {
				level = cfg.Log.Level
			}
			if err == nil && cfg.Log.File != "" {
				logger = newFileLogger(cfg.Log.File, level)
				return
			}
			logger = newConsoleLogger(level)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path")

	rootCmd.AddCommand(generateCmd())
	rootCmd.AddCommand(getCmd())
	rootCmd.AddCommand(listCmd())
	rootCmd.AddCommand(serveCmd())

	return rootCmd
}

// newSource wires the configured fetch chain: local file only, or download with optional file fallback
func newSource(cfg *config.Config) calendar.Source {
	if cfg.Source.File != "" {
		return calendar.NewFileSource(cfg.Source.File, logger)
	}

	var src calendar.Source = calendar.NewHTTPSource(
		cfg.Source.URL,
		cfg.Source.GetTimeout(),
		cfg.Source.Retries,
		logger,
	)
	if cfg.Source.FallbackFile != "" {
		src = calendar.NewFallbackSource(src, calendar.NewFileSource(cfg.Source.FallbackFile, logger), logger)
	}
	return src
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// logLevel maps the configured level name, defaulting to info
func logLevel(name string) zapcore.Level {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return zapcore.InfoLevel
	}
	return level
}

func encoderConfig() zapcore.EncoderConfig {
	cfg := zap.NewProductionEncoderConfig()
	cfg.TimeKey = "timestamp"
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	return cfg
}

func newConsoleLogger(level string) *zap.Logger {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(logLevel(level))
	cfg.EncoderConfig = encoderConfig()

	l, err := cfg.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	return l
}

// newFileLogger writes JSON logs to a size-rotated file
func newFileLogger(path, level string) *zap.Logger {
	rotator := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    50, // MB
		MaxBackups: 5,
		MaxAge:     30, // days
		Compress:   true,
	}

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig()),
		zapcore.AddSync(rotator),
		logLevel(level),
	)
	return zap.New(core)
}
