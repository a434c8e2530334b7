package source

import (
	"archive/zip"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// writeFile creates a file with parent directories under dir.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

// writeZip creates a zip archive containing the given name/content pairs.
func writeZip(t *testing.T, path string, files map[string]string) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	zw := zip.NewWriter(f)
	for name, content := range files {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := w.Write([]byte(content)); err != nil {
			t.Fatal(err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestCollect_Directory(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "scans")
	writeFile(t, dir, "page_1.svg", "<svg>1</svg>")
	writeFile(t, dir, "page_2.SVG", "<svg>2</svg>")
	writeFile(t, dir, "nested/page_3.svg", "<svg>3</svg>")
	writeFile(t, dir, "notes.txt", "ignored")

	coll, err := Collect(dir)
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}

	if len(coll.Entries) != 3 {
		t.Fatalf("got %d entries, want 3", len(coll.Entries))
	}
	if coll.OutputName != "scans.pdf" {
		t.Errorf("OutputName = %q, want %q", coll.OutputName, "scans.pdf")
	}

	for i, e := range coll.Entries {
		if e.Index != i {
			t.Errorf("entry %d has Index %d", i, e.Index)
		}
		if len(e.Data) == 0 {
			t.Errorf("entry %q has no data", e.Name)
		}
		if filepath.Ext(e.Name) == "" {
			t.Errorf("entry name %q should keep its extension", e.Name)
		}
	}
}

func TestCollect_DirectoryTrailingSlash(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "book")
	writeFile(t, dir, "p1.svg", "<svg/>")

	coll, err := Collect(dir + string(os.PathSeparator))
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	if coll.OutputName != "book.pdf" {
		t.Errorf("OutputName = %q, want %q", coll.OutputName, "book.pdf")
	}
}

func TestCollect_Zip(t *testing.T) {
	t.Parallel()

	zipPath := filepath.Join(t.TempDir(), "issue42.zip")
	writeZip(t, zipPath, map[string]string{
		"pages/page_1.svg": "<svg>1</svg>",
		"pages/page_2.svg": "<svg>2</svg>",
		"cover.SVG":        "<svg>cover</svg>",
		"README.md":        "ignored",
	})

	coll, err := Collect(zipPath)
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}

	if len(coll.Entries) != 3 {
		t.Fatalf("got %d entries, want 3", len(coll.Entries))
	}
	if coll.OutputName != "issue42.pdf" {
		t.Errorf("OutputName = %q, want %q", coll.OutputName, "issue42.pdf")
	}

	// Names are flattened to the base name for key extraction.
	for _, e := range coll.Entries {
		if filepath.Dir(e.Name) != "." {
			t.Errorf("entry name %q should be a base name", e.Name)
		}
	}
}

func TestCollect_ZipWithoutZipExtension(t *testing.T) {
	t.Parallel()

	// Detection reads the archive header, not the extension.
	zipPath := filepath.Join(t.TempDir(), "export.bin")
	writeZip(t, zipPath, map[string]string{"p1.svg": "<svg/>"})

	coll, err := Collect(zipPath)
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	if coll.OutputName != "export.pdf" {
		t.Errorf("OutputName = %q, want %q", coll.OutputName, "export.pdf")
	}
}

func TestCollect_Errors(t *testing.T) {
	t.Parallel()

	t.Run("missing path", func(t *testing.T) {
		t.Parallel()

		_, err := Collect(filepath.Join(t.TempDir(), "nope"))
		if !errors.Is(err, os.ErrNotExist) {
			t.Errorf("Collect() error = %v, want os.ErrNotExist", err)
		}
	})

	t.Run("regular file that is not a zip", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := writeFile(t, dir, "single.svg", "<svg/>")

		_, err := Collect(path)
		if !errors.Is(err, ErrUnsupportedInput) {
			t.Errorf("Collect() error = %v, want ErrUnsupportedInput", err)
		}
	})

	t.Run("directory without svg files", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFile(t, dir, "readme.txt", "nothing here")

		_, err := Collect(dir)
		if !errors.Is(err, ErrNoSVGFiles) {
			t.Errorf("Collect() error = %v, want ErrNoSVGFiles", err)
		}
	})

	t.Run("zip without svg entries", func(t *testing.T) {
		t.Parallel()

		zipPath := filepath.Join(t.TempDir(), "empty.zip")
		writeZip(t, zipPath, map[string]string{"readme.txt": "nothing"})

		_, err := Collect(zipPath)
		if !errors.Is(err, ErrNoSVGFiles) {
			t.Errorf("Collect() error = %v, want ErrNoSVGFiles", err)
		}
	})
}
