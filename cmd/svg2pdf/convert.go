package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	svg2pdf "github.com/alnah/go-svg2pdf"
	"github.com/alnah/go-svg2pdf/internal/config"
	"github.com/alnah/go-svg2pdf/internal/pagekey"
	"github.com/alnah/go-svg2pdf/internal/source"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput            = errors.New("no input specified")
	ErrWritePDF           = errors.New("failed to write PDF file")
	ErrServiceInit        = errors.New("failed to initialize conversion service")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
	ErrInvalidTimeout     = errors.New("invalid timeout")
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// conversionParams groups parameters shared across batch conversion.
type conversionParams struct {
	extractor *pagekey.Extractor
	page      *svg2pdf.PageSettings
	strict    bool
}

// runConvert orchestrates the conversion process: enumerate, convert in
// parallel, sort by extracted key, merge, write.
func runConvert(ctx context.Context, positionalArgs []string, flags *convertFlags, envCfg *envConfig, pool Pool, env *Environment) error {
	// Load configuration
	cfg := config.DefaultConfig()
	var err error
	configPath := flags.common.config
	if configPath == "" {
		configPath = envCfg.ConfigPath
	}
	if configPath != "" {
		cfg, err = config.LoadConfig(configPath)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
	}

	// Layer env overrides, then CLI flags (flags win)
	applyEnvConfig(envCfg, cfg)
	mergeFlags(flags, cfg)

	// Resolve input path
	inputPath, err := resolveInputPath(positionalArgs, cfg)
	if err != nil {
		return err
	}

	// Compile the page number pattern
	extractor, err := pagekey.New(cfg.Pages.Pattern)
	if err != nil {
		return err
	}

	// Build page settings
	pageSettings, err := buildPageSettings(cfg)
	if err != nil {
		return err
	}

	// Enumerate SVG entries from directory or zip
	coll, err := source.Collect(inputPath)
	if err != nil {
		return fmt.Errorf("collecting input: %w", err)
	}

	outputPath := resolveOutputPath(cfg.Output.DefaultPath, coll.OutputName)

	params := &conversionParams{
		extractor: extractor,
		page:      pageSettings,
		strict:    cfg.Pages.Strict,
	}

	// Convert entries in parallel
	results := convertBatch(ctx, pool, coll.Entries, params)

	// A canceled run must not degrade into a document of blank pages.
	if err := ctx.Err(); err != nil {
		return err
	}

	if params.strict {
		for _, r := range results {
			if r.Err != nil {
				return fmt.Errorf("converting %s: %w", r.Name, r.Err)
			}
		}
	}

	// Stable sort: unmatched entries (key 0) keep enumeration order.
	sortResults(results)

	pages := make([][]byte, len(results))
	for i, r := range results {
		pages[i] = r.PDF
	}

	// Merge and write
	var merged bytes.Buffer
	if err := svg2pdf.MergeOrdered(pages, &merged); err != nil {
		return err
	}

	if err := writeOutput(outputPath, merged.Bytes()); err != nil {
		return err
	}

	if flags.keepPages {
		if err := writePageFiles(outputPath, results); err != nil {
			return err
		}
	}

	// Reading the page count back re-parses the document, which doubles
	// as an integrity check on the merge output.
	pageCount, err := svg2pdf.PageCount(merged.Bytes())
	if err != nil {
		return fmt.Errorf("verifying merged PDF: %w", err)
	}
	if pageCount != len(results) {
		return fmt.Errorf("merged PDF has %d pages, expected %d", pageCount, len(results))
	}

	printResults(results, outputPath, flags.common.quiet, flags.common.verbose, env)
	return nil
}

// applyEnvConfig layers environment overrides onto config file values.
func applyEnvConfig(envCfg *envConfig, cfg *config.Config) {
	if envCfg.InputPath != "" {
		cfg.Input.DefaultPath = envCfg.InputPath
	}
	if envCfg.Output != "" {
		cfg.Output.DefaultPath = envCfg.Output
	}
	if envCfg.Pattern != "" {
		cfg.Pages.Pattern = envCfg.Pattern
	}
	if envCfg.PageSize != "" {
		cfg.Page.Size = envCfg.PageSize
	}
	if envCfg.Strict {
		cfg.Pages.Strict = true
	}
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *convertFlags, cfg *config.Config) {
	if flags.output != "" {
		cfg.Output.DefaultPath = flags.output
	}
	if flags.pattern != "" {
		cfg.Pages.Pattern = flags.pattern
	}
	if flags.strict {
		cfg.Pages.Strict = true
	}
	if flags.page.size != "" {
		cfg.Page.Size = flags.page.size
	}
	if flags.page.orientation != "" {
		cfg.Page.Orientation = flags.page.orientation
	}
	if flags.page.marginSet {
		cfg.Page.Margin = flags.page.margin
	}
}

// resolveInputPath determines the input directory or zip archive.
// Priority: positional argument > config default.
func resolveInputPath(positionalArgs []string, cfg *config.Config) (string, error) {
	if len(positionalArgs) > 0 {
		return positionalArgs[0], nil
	}
	if cfg.Input.DefaultPath != "" {
		return cfg.Input.DefaultPath, nil
	}
	return "", ErrNoInput
}

// resolveOutputPath determines the merged PDF path.
// An explicit path pointing at a directory gets the derived name appended.
func resolveOutputPath(explicit, derivedName string) string {
	if explicit == "" {
		return derivedName
	}
	if strings.HasSuffix(explicit, string(os.PathSeparator)) || isDir(explicit) {
		return filepath.Join(explicit, derivedName)
	}
	return explicit
}

// isDir returns true if path exists and is a directory.
func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// buildPageSettings converts config page values into validated settings.
// Empty fields fall back to defaults.
func buildPageSettings(cfg *config.Config) (*svg2pdf.PageSettings, error) {
	settings := svg2pdf.DefaultPageSettings()
	if cfg.Page.Size != "" {
		settings.Size = cfg.Page.Size
	}
	if cfg.Page.Orientation != "" {
		settings.Orientation = cfg.Page.Orientation
	}
	if cfg.Page.Margin != 0 {
		settings.Margin = cfg.Page.Margin
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return settings, nil
}

// sortResults orders pages by extracted key; the stable sort preserves
// enumeration order for equal keys and unmatched entries.
func sortResults(results []PageResult) {
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Key < results[j].Key
	})
}

// writeOutput writes the merged PDF, creating parent directories as needed.
func writeOutput(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, dirPermissions); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	// #nosec G306 -- PDFs are meant to be readable
	if err := os.WriteFile(path, data, filePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWritePDF, err)
	}
	return nil
}

// writePageFiles writes each per-page PDF next to the merged output,
// named <stem>-page-NNNN.pdf in final page order.
func writePageFiles(outputPath string, results []PageResult) error {
	stem := strings.TrimSuffix(outputPath, filepath.Ext(outputPath))
	for i, r := range results {
		pagePath := fmt.Sprintf("%s-page-%04d.pdf", stem, i+1)
		// #nosec G306 -- PDFs are meant to be readable
		if err := os.WriteFile(pagePath, r.PDF, filePermissions); err != nil {
			return fmt.Errorf("%w: %v", ErrWritePDF, err)
		}
	}
	return nil
}

// validateWorkers checks that the worker count is within valid bounds.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, n)
	}
	if n > svg2pdf.MaxPoolSize {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, n, svg2pdf.MaxPoolSize)
	}
	return nil
}

// resolveTimeout picks the per-page timeout: flag > env > library default.
func resolveTimeout(flagValue string, envValue time.Duration) (time.Duration, error) {
	if flagValue != "" {
		d, err := time.ParseDuration(flagValue)
		if err != nil || d <= 0 {
			return 0, fmt.Errorf("%w: %q (use formats like 30s, 2m)", ErrInvalidTimeout, flagValue)
		}
		return d, nil
	}
	return envValue, nil
}
