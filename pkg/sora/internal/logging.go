package internal

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// DefaultLogPath is used when SetLogPath was never called.
const DefaultLogPath = "logs/sora.log"

var (
	logFile *os.File
	logPath string

	setupOnce sync.Once
	logOutput io.Writer

	loggerOnce sync.Once
	logger     *slog.Logger
	levelVar   = &slog.LevelVar{}

	internalLoggerOnce sync.Once
	internalLogger     *slog.Logger
	internalLevelVar   = &slog.LevelVar{}
)

// SetLogPath sets the full path of the log file. Parent directories are
// created on first use. Must be called before the first log line.
func SetLogPath(path string) {
	logPath = path
}

func setup() {
	setupOnce.Do(func() {
		target := logPath
		if target == "" {
			target = DefaultLogPath
		}

		if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
			logOutput = os.Stdout
			return
		}

		var err error
		logFile, err = os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			logOutput = os.Stdout
			return
		}

		logOutput = io.MultiWriter(os.Stdout, logFile)
	})
}

func newJSONLogger(level *slog.LevelVar, component string) *slog.Logger {
	setup()
	handler := slog.NewJSONHandler(logOutput, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With("component", component)
}

// GetLogger returns the application logger.
func GetLogger() *slog.Logger {
	loggerOnce.Do(func() {
		logger = newJSONLogger(levelVar, "app")
	})
	return logger
}

// GetInternalLogger returns the logger used by the UI runtime itself.
func GetInternalLogger() *slog.Logger {
	internalLoggerOnce.Do(func() {
		internalLogger = newJSONLogger(internalLevelVar, "sora")
	})
	return internalLogger
}

func SetLogLevel(level slog.Level) {
	levelVar.Set(level)
}

func SetInternalLogLevel(level slog.Level) {
	internalLevelVar.Set(level)
}

// ParseLogLevel maps debug, info, warn(ing) and error to a slog level.
// Unknown names report false and yield info.
func ParseLogLevel(raw string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}

// SetRawLogLevel sets both loggers from a level name.
func SetRawLogLevel(raw string) {
	level, ok := ParseLogLevel(raw)
	if !ok && raw != "" {
		GetInternalLogger().Warn("Unknown log level; using info", "level", raw)
	}
	SetLogLevel(level)
	SetInternalLogLevel(level)
}

func CloseLogger() {
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
}
