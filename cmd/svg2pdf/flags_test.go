package main

import (
	"testing"
)

func TestParseConvertFlags(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()

		f, positional, err := parseConvertFlags(nil)
		if err != nil {
			t.Fatalf("parseConvertFlags() error = %v", err)
		}
		if len(positional) != 0 {
			t.Errorf("positional = %v, want empty", positional)
		}
		if f.output != "" || f.pattern != "" || f.workers != 0 || f.timeout != "" {
			t.Errorf("flags not at defaults: %+v", f)
		}
		if f.strict || f.keepPages {
			t.Errorf("boolean flags not at defaults: %+v", f)
		}
		if f.page.marginSet {
			t.Error("marginSet = true without --margin")
		}
	})

	t.Run("all flags", func(t *testing.T) {
		t.Parallel()

		args := []string{
			"--output", "book.pdf",
			"--pattern", `page_(\d+)`,
			"--workers", "4",
			"--timeout", "45s",
			"--strict",
			"--keep-pages",
			"--page-size", "letter",
			"--orientation", "landscape",
			"--margin", "0.5",
			"--config", "myconfig",
			"--quiet",
			"./scans",
		}

		f, positional, err := parseConvertFlags(args)
		if err != nil {
			t.Fatalf("parseConvertFlags() error = %v", err)
		}

		if f.output != "book.pdf" || f.pattern != `page_(\d+)` {
			t.Errorf("output/pattern = %q/%q", f.output, f.pattern)
		}
		if f.workers != 4 || f.timeout != "45s" {
			t.Errorf("workers/timeout = %d/%q", f.workers, f.timeout)
		}
		if !f.strict || !f.keepPages {
			t.Errorf("strict/keepPages = %v/%v", f.strict, f.keepPages)
		}
		if f.page.size != "letter" || f.page.orientation != "landscape" {
			t.Errorf("page = %+v", f.page)
		}
		if f.page.margin != 0.5 || !f.page.marginSet {
			t.Errorf("margin = (%v, set %v)", f.page.margin, f.page.marginSet)
		}
		if f.common.config != "myconfig" || !f.common.quiet {
			t.Errorf("common = %+v", f.common)
		}
		if len(positional) != 1 || positional[0] != "./scans" {
			t.Errorf("positional = %v", positional)
		}
	})

	t.Run("short flags", func(t *testing.T) {
		t.Parallel()

		f, positional, err := parseConvertFlags([]string{"-o", "out.pdf", "-w", "2", "-q", "input"})
		if err != nil {
			t.Fatalf("parseConvertFlags() error = %v", err)
		}
		if f.output != "out.pdf" || f.workers != 2 || !f.common.quiet {
			t.Errorf("flags = %+v", f)
		}
		if len(positional) != 1 || positional[0] != "input" {
			t.Errorf("positional = %v", positional)
		}
	})

	t.Run("explicit zero margin is tracked", func(t *testing.T) {
		t.Parallel()

		f, _, err := parseConvertFlags([]string{"--margin", "0"})
		if err != nil {
			t.Fatalf("parseConvertFlags() error = %v", err)
		}
		if f.page.margin != 0 || !f.page.marginSet {
			t.Errorf("margin = (%v, set %v), want (0, true)", f.page.margin, f.page.marginSet)
		}
	})

	t.Run("unknown flag", func(t *testing.T) {
		t.Parallel()

		_, _, err := parseConvertFlags([]string{"--bogus"})
		if err == nil {
			t.Error("parseConvertFlags() should reject unknown flags")
		}
	})
}
