package devserver

import (
	"os"

	"github.com/joho/godotenv"
)

// Environment variables understood by the dev server.
const (
	envAddr    = "GREET_ADDR"
	envWebDir  = "GREET_WEB_DIR"
	envLogFile = "GREET_LOG_FILE"
)

// envFileNames are loaded in order; the first value seen for a key wins.
var envFileNames = []string{".env.local", ".env"}

// Config holds the dev server's runtime settings.
type Config struct {
	Addr    string // listen address, e.g. ":8080"
	WebDir  string // directory holding index.html, app.wasm, wasm_exec.js
	LogFile string // log file path; empty means stderr
}

// LoadConfig reads configuration from optional .env files and the process
// environment. Missing .env files are not an error.
func LoadConfig() Config {
	for _, name := range envFileNames {
		if _, err := os.Stat(name); err == nil {
			// Load does not override variables already set in the environment.
			_ = godotenv.Load(name)
		}
	}

	return Config{
		Addr:    envOr(envAddr, ":8080"),
		WebDir:  envOr(envWebDir, "web"),
		LogFile: os.Getenv(envLogFile),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
