// Package source enumerates SVG input files from a directory or zip archive.
package source

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Sentinel errors for input enumeration.
var (
	ErrUnsupportedInput = errors.New("directory or zip file is required")
	ErrNoSVGFiles       = errors.New("no svg files found")
)

// Entry is one SVG file read into memory.
// Index records the enumeration position for stable fallback ordering.
type Entry struct {
	Name  string
	Data  []byte
	Index int
}

// Collection holds the enumerated entries and the default output name
// derived from the input path (directory base or zip base with the
// extension replaced by .pdf).
type Collection struct {
	Entries    []Entry
	OutputName string
}

// Collect reads all SVG entries from path, which must be a directory or a
// zip archive. Directory walks are recursive; matching on the .svg
// extension is case-insensitive in both modes.
func Collect(path string) (*Collection, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	if info.IsDir() {
		return collectDir(path)
	}

	if isZipFile(path) {
		return collectZip(path)
	}

	return nil, fmt.Errorf("%w: %s", ErrUnsupportedInput, path)
}

// collectDir walks a directory tree and reads every SVG file.
func collectDir(dir string) (*Collection, error) {
	var entries []Entry

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		if d.IsDir() || !isSVGName(path) {
			return nil
		}

		data, err := os.ReadFile(path) // #nosec G304 -- discovered path
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}

		entries = append(entries, Entry{
			Name:  filepath.Base(path),
			Data:  data,
			Index: len(entries),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	if len(entries) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoSVGFiles, dir)
	}

	return &Collection{
		Entries:    entries,
		OutputName: filepath.Base(filepath.Clean(dir)) + ".pdf",
	}, nil
}

// collectZip reads every SVG entry from a zip archive.
func collectZip(path string) (*Collection, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("opening zip: %w", err)
	}
	defer zr.Close()

	var entries []Entry
	for _, f := range zr.File {
		if f.FileInfo().IsDir() || !isSVGName(f.Name) {
			continue
		}

		data, err := readZipEntry(f)
		if err != nil {
			return nil, fmt.Errorf("reading zip entry %s: %w", f.Name, err)
		}

		entries = append(entries, Entry{
			Name:  filepath.Base(f.Name),
			Data:  data,
			Index: len(entries),
		})
	}

	if len(entries) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoSVGFiles, path)
	}

	base := filepath.Base(path)
	stem := strings.TrimSuffix(base, filepath.Ext(base))

	return &Collection{
		Entries:    entries,
		OutputName: stem + ".pdf",
	}, nil
}

// readZipEntry reads one archive member into memory.
func readZipEntry(f *zip.File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	return io.ReadAll(rc)
}

// isSVGName matches the .svg extension case-insensitively.
func isSVGName(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ".svg")
}

// isZipFile probes the file for a zip header instead of trusting the
// extension, mirroring archive-type detection rather than name sniffing.
func isZipFile(path string) bool {
	f, err := os.Open(path) // #nosec G304 -- user-provided input path
	if err != nil {
		return false
	}
	defer f.Close()

	header := make([]byte, 4)
	if _, err := io.ReadFull(f, header); err != nil {
		return false
	}

	return string(header) == "PK\x03\x04"
}
