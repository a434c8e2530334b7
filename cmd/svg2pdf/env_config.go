package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
)

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string        // SVG2PDF_CONFIG: config file path
	InputPath  string        // SVG2PDF_INPUT: default input directory or zip
	Output     string        // SVG2PDF_OUTPUT: merged PDF path
	Pattern    string        // SVG2PDF_PATTERN: page number regex
	PageSize   string        // SVG2PDF_PAGE_SIZE: a4, letter, legal
	Timeout    time.Duration // SVG2PDF_TIMEOUT: per-page rendering timeout
	Workers    int           // SVG2PDF_WORKERS: parallel workers
	Strict     bool          // SVG2PDF_STRICT: fail on first conversion error
}

// knownEnvVars lists valid SVG2PDF_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"SVG2PDF_CONFIG":    true,
	"SVG2PDF_INPUT":     true,
	"SVG2PDF_OUTPUT":    true,
	"SVG2PDF_PATTERN":   true,
	"SVG2PDF_PAGE_SIZE": true,
	"SVG2PDF_TIMEOUT":   true,
	"SVG2PDF_WORKERS":   true,
	"SVG2PDF_STRICT":    true,
	"SVG2PDF_CONTAINER": true, // doctor's container-detection override
}

// loadEnvConfig reads configuration from environment variables.
// Invalid numeric or duration values are ignored (flags and config files
// are the strict layers; env overrides stay lenient).
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath: os.Getenv("SVG2PDF_CONFIG"),
		InputPath:  os.Getenv("SVG2PDF_INPUT"),
		Output:     os.Getenv("SVG2PDF_OUTPUT"),
		Pattern:    os.Getenv("SVG2PDF_PATTERN"),
		PageSize:   os.Getenv("SVG2PDF_PAGE_SIZE"),
	}

	if v := os.Getenv("SVG2PDF_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}

	if v := os.Getenv("SVG2PDF_WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.Workers = n
		}
	}

	if v := os.Getenv("SVG2PDF_STRICT"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Strict = b
		}
	}

	return cfg
}

// warnUnknownEnvVars reports SVG2PDF_* variables that are not recognized,
// catching typos like SVG2PDF_PATERN.
func warnUnknownEnvVars(w io.Writer) {
	for _, kv := range os.Environ() {
		name, _, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(name, "SVG2PDF_") {
			continue
		}
		if !knownEnvVars[name] {
			fmt.Fprintf(w, "Warning: unknown environment variable %s ignored\n", name)
		}
	}
}
