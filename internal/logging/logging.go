// Package logging provides structured logging functionality.
package logging

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// LogConfig holds logging configuration.
type LogConfig struct {
	Level      string
	Console    bool
	File       bool
	FilePath   string
	MaxSize    int // megabytes
	MaxBackups int
	MaxAge     int // days
}

// DefaultLogConfig returns the default logging configuration.
func DefaultLogConfig() LogConfig {
	home, _ := os.UserHomeDir()
	return LogConfig{
		Level:      "info",
		Console:    true,
		File:       true,
		FilePath:   filepath.Join(home, ".config", "trade-tracker", "logs", "tracker.log"),
		MaxSize:    50,
		MaxBackups: 5,
		MaxAge:     30,
	}
}

// NewLogger creates a new logger with default configuration.
func NewLogger() zerolog.Logger {
	return NewLoggerWithConfig(DefaultLogConfig())
}

// NewLoggerWithConfig creates a new logger with the specified configuration.
func NewLoggerWithConfig(cfg LogConfig) zerolog.Logger {
	var writers []io.Writer

	if cfg.Console {
		writers = append(writers, zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		})
	}

	if cfg.File {
		logDir := filepath.Dir(cfg.FilePath)
		if err := os.MkdirAll(logDir, 0755); err == nil {
			writers = append(writers, &lumberjack.Logger{
				Filename:   cfg.FilePath,
				MaxSize:    cfg.MaxSize,
				MaxBackups: cfg.MaxBackups,
				MaxAge:     cfg.MaxAge,
				Compress:   true,
			})
		}
	}

	var writer io.Writer
	switch len(writers) {
	case 0:
		writer = os.Stderr
	case 1:
		writer = writers[0]
	default:
		writer = zerolog.MultiLevelWriter(writers...)
	}

	zerolog.SetGlobalLevel(parseLevel(cfg.Level))

	return zerolog.New(writer).
		With().
		Timestamp().
		Logger()
}

func parseLevel(level string) zerolog.Level {
	switch level {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// SetDebugLevel sets the global log level to debug.
func SetDebugLevel() {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
}

// WithSymbol adds a symbol to the logger context.
func WithSymbol(logger zerolog.Logger, symbol string) zerolog.Logger {
	return logger.With().Str("symbol", symbol).Logger()
}

// LogTradeAdded logs a journal append.
func LogTradeAdded(logger zerolog.Logger, index int, symbol string, pnl *float64) {
	event := logger.Info().
		Str("event", "trade_added").
		Int("index", index).
		Str("symbol", symbol)
	if pnl != nil {
		event = event.Float64("pnl", *pnl)
	}
	event.Msg("Trade recorded")
}

// LogTradeUpdated logs an in-place record replacement.
func LogTradeUpdated(logger zerolog.Logger, index int, symbol string) {
	logger.Info().
		Str("event", "trade_updated").
		Int("index", index).
		Str("symbol", symbol).
		Msg("Trade updated")
}

// LogTradeDeleted logs a positional delete.
func LogTradeDeleted(logger zerolog.Logger, index int) {
	logger.Info().
		Str("event", "trade_deleted").
		Int("index", index).
		Msg("Trade deleted")
}

// LogImport logs the outcome of replacing the journal from interchange text.
func LogImport(logger zerolog.Logger, kept, dropped int) {
	logger.Info().
		Str("event", "import").
		Int("kept", kept).
		Int("dropped", dropped).
		Msg("Journal replaced from import")
}

// LogExport logs a serialization of the journal.
func LogExport(logger zerolog.Logger, count int, dest string) {
	logger.Info().
		Str("event", "export").
		Int("count", count).
		Str("dest", dest).
		Msg("Journal exported")
}
