package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	logFile *os.File
	mu      sync.Mutex
	base    = newLogger()
)

const (
	maxLogSize = 5 * 1024 * 1024 // 5MB
	appName    = "fx"
)

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.InfoLevel)
	l.SetFormatter(&logrus.TextFormatter{
		DisableColors:   true,
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	return l
}

// Init opens <user config dir>/fx/fx.log for appending.
func Init() error {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return fmt.Errorf("cannot get config directory: %w", err)
	}
	return InitAt(filepath.Join(configDir, appName))
}

// InitAt opens fx.log inside logDir, rotating an oversized previous log.
func InitAt(logDir string) error {
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return fmt.Errorf("cannot create log directory: %w", err)
	}

	logPath := filepath.Join(logDir, appName+".log")

	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		oldPath := logPath + ".old"
		os.Remove(oldPath)
		os.Rename(logPath, oldPath)
	}

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("cannot open log file: %w", err)
	}

	mu.Lock()
	defer mu.Unlock()
	if logFile != nil {
		logFile.Close()
	}
	logFile = file
	base.SetOutput(file)
	return nil
}

// Close closes the log file
func Close() {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
	base.SetOutput(io.Discard)
}

// SetDebug toggles debug-level output.
func SetDebug(on bool) {
	if on {
		base.SetLevel(logrus.DebugLevel)
		return
	}
	base.SetLevel(logrus.InfoLevel)
}

// Error logs an error message
func Error(format string, args ...any) {
	log(logrus.ErrorLevel, format, args...)
}

// Warn logs a warning message
func Warn(format string, args ...any) {
	log(logrus.WarnLevel, format, args...)
}

// Info logs an informational message
func Info(format string, args ...any) {
	log(logrus.InfoLevel, format, args...)
}

// Debug logs a debug message
func Debug(format string, args ...any) {
	log(logrus.DebugLevel, format, args...)
}

func log(level logrus.Level, format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()

	if logFile == nil {
		return
	}
	base.Logf(level, format, args...)
}
