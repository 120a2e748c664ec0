// Package logger provides the leveled logger shared by the CLI, the
// generator, and the preview server.
package logger

import (
	"log"
	"os"

	"github.com/deckgen/deckgen/internal/domain/entities"
)

// Logger writes leveled, prefixed log lines.
type Logger struct {
	logger *log.Logger
	level  entities.LogLevel
}

// New creates a logger writing to stderr at the given level.
func New(level entities.LogLevel) *Logger {
	return &Logger{
		logger: log.New(os.Stderr, "", log.LstdFlags),
		level:  level,
	}
}

func (l *Logger) shouldLog(msgLevel entities.LogLevel) bool {
	levels := map[entities.LogLevel]int{
		entities.LogLevelDebug: 0,
		entities.LogLevelInfo:  1,
		entities.LogLevelWarn:  2,
		entities.LogLevelError: 3,
	}

	current, ok := levels[l.level]
	if !ok {
		current = 1
	}

	return levels[msgLevel] >= current
}

// Debug logs debug messages.
func (l *Logger) Debug(msg string, args ...interface{}) {
	if l.shouldLog(entities.LogLevelDebug) {
		l.logger.Printf("[DEBUG] "+msg, args...)
	}
}

// Info logs informational messages.
func (l *Logger) Info(msg string, args ...interface{}) {
	if l.shouldLog(entities.LogLevelInfo) {
		l.logger.Printf("[INFO] "+msg, args...)
	}
}

// Warn logs warning messages.
func (l *Logger) Warn(msg string, args ...interface{}) {
	if l.shouldLog(entities.LogLevelWarn) {
		l.logger.Printf("[WARN] "+msg, args...)
	}
}

// Error logs error messages.
func (l *Logger) Error(msg string, args ...interface{}) {
	if l.shouldLog(entities.LogLevelError) {
		l.logger.Printf("[ERROR] "+msg, args...)
	}
}
