package main

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

// No t.Parallel here: t.Setenv is incompatible with parallel tests.

func TestLoadEnvConfig(t *testing.T) {
	t.Run("string variables", func(t *testing.T) {
		t.Setenv("SVG2PDF_CONFIG", "ci-config")
		t.Setenv("SVG2PDF_INPUT", "/scans")
		t.Setenv("SVG2PDF_OUTPUT", "/out/book.pdf")
		t.Setenv("SVG2PDF_PATTERN", `p(\d+)`)
		t.Setenv("SVG2PDF_PAGE_SIZE", "letter")

		cfg := loadEnvConfig()

		if cfg.ConfigPath != "ci-config" || cfg.InputPath != "/scans" {
			t.Errorf("paths = %q/%q", cfg.ConfigPath, cfg.InputPath)
		}
		if cfg.Output != "/out/book.pdf" || cfg.Pattern != `p(\d+)` || cfg.PageSize != "letter" {
			t.Errorf("cfg = %+v", cfg)
		}
	})

	t.Run("timeout parsed", func(t *testing.T) {
		t.Setenv("SVG2PDF_TIMEOUT", "90s")

		if got := loadEnvConfig().Timeout; got != 90*time.Second {
			t.Errorf("Timeout = %v, want 90s", got)
		}
	})

	t.Run("invalid timeout ignored", func(t *testing.T) {
		t.Setenv("SVG2PDF_TIMEOUT", "eventually")

		if got := loadEnvConfig().Timeout; got != 0 {
			t.Errorf("Timeout = %v, want 0", got)
		}
	})

	t.Run("negative timeout ignored", func(t *testing.T) {
		t.Setenv("SVG2PDF_TIMEOUT", "-5s")

		if got := loadEnvConfig().Timeout; got != 0 {
			t.Errorf("Timeout = %v, want 0", got)
		}
	})

	t.Run("workers parsed", func(t *testing.T) {
		t.Setenv("SVG2PDF_WORKERS", "3")

		if got := loadEnvConfig().Workers; got != 3 {
			t.Errorf("Workers = %d, want 3", got)
		}
	})

	t.Run("negative workers ignored", func(t *testing.T) {
		t.Setenv("SVG2PDF_WORKERS", "-2")

		if got := loadEnvConfig().Workers; got != 0 {
			t.Errorf("Workers = %d, want 0", got)
		}
	})

	t.Run("strict parsed", func(t *testing.T) {
		t.Setenv("SVG2PDF_STRICT", "true")

		if !loadEnvConfig().Strict {
			t.Error("Strict = false, want true")
		}
	})

	t.Run("invalid strict ignored", func(t *testing.T) {
		t.Setenv("SVG2PDF_STRICT", "definitely")

		if loadEnvConfig().Strict {
			t.Error("Strict = true, want false")
		}
	})
}

func TestWarnUnknownEnvVars(t *testing.T) {
	t.Run("typo reported", func(t *testing.T) {
		t.Setenv("SVG2PDF_PATERN", "oops")

		var buf bytes.Buffer
		warnUnknownEnvVars(&buf)

		if !strings.Contains(buf.String(), "SVG2PDF_PATERN") {
			t.Errorf("output = %q, want warning for SVG2PDF_PATERN", buf.String())
		}
	})

	t.Run("known vars silent", func(t *testing.T) {
		t.Setenv("SVG2PDF_PATTERN", `\d+`)
		t.Setenv("SVG2PDF_WORKERS", "2")

		var buf bytes.Buffer
		warnUnknownEnvVars(&buf)

		if strings.Contains(buf.String(), "SVG2PDF_PATTERN") || strings.Contains(buf.String(), "SVG2PDF_WORKERS") {
			t.Errorf("output = %q, known variables should not be reported", buf.String())
		}
	})
}
