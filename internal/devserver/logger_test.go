package devserver

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerLevelsLabelLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "greet.log")
	logger, err := NewLogger(path)
	require.NoError(t, err)

	logger.Info("started")
	logger.Warn("slow request")
	logger.Error("boom")
	logger.Close()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)

	assert.Contains(t, out, "INFO: started")
	assert.Contains(t, out, "WARN: slow request")
	assert.Contains(t, out, "ERROR: boom")
}

// TestLoggerConcurrentLabels verifies that lines logged from concurrent
// goroutines keep the level label matching their own message.
func TestLoggerConcurrentLabels(t *testing.T) {
	path := filepath.Join(t.TempDir(), "greet.log")
	logger, err := NewLogger(path)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			logger.Info("request served")
		}()
		go func() {
			defer wg.Done()
			logger.Error("request failed")
		}()
	}
	wg.Wait()
	logger.Close()

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	for _, line := range strings.Split(string(data), "\n") {
		if line == "" {
			continue
		}
		switch {
		case strings.Contains(line, "request served"):
			assert.Contains(t, line, "INFO: request served")
		case strings.Contains(line, "request failed"):
			assert.Contains(t, line, "ERROR: request failed")
		default:
			t.Errorf("unexpected log line: %q", line)
		}
	}
}
