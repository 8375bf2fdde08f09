package devserver

import (
	"fmt"
	"log"
	"os"
)

// Logger writes leveled lines to a file or, when no path is given, to stderr.
type Logger struct {
	file   *os.File
	logger *log.Logger
}

// NewLogger creates a logger writing to filePath. An empty filePath selects
// stderr.
func NewLogger(filePath string) (*Logger, error) {
	if filePath == "" {
		return &Logger{logger: log.New(os.Stderr, "", log.LstdFlags)}, nil
	}

	file, err := os.OpenFile(filePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0666)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	return &Logger{
		file:   file,
		logger: log.New(file, "", log.LstdFlags),
	}, nil
}

// The level goes into the message rather than the logger's prefix: the
// middleware logs from concurrent goroutines, and a shared mutable prefix
// could mislabel interleaved lines.

// Info logs an info message.
func (l *Logger) Info(msg string) {
	l.logger.Println("INFO: " + msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string) {
	l.logger.Println("WARN: " + msg)
}

// Error logs an error message.
func (l *Logger) Error(msg string) {
	l.logger.Println("ERROR: " + msg)
}

// Close closes the log file, if one is open.
func (l *Logger) Close() {
	if l.file != nil {
		l.file.Close()
	}
}
