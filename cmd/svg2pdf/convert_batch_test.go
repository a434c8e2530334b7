package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	svg2pdf "github.com/alnah/go-svg2pdf"
	"github.com/alnah/go-svg2pdf/internal/pagekey"
	"github.com/alnah/go-svg2pdf/internal/source"
)

var errRenderBoom = errors.New("render boom")

// mockConverter fails any entry whose SVG content contains "fail",
// otherwise it returns the blank page so merge-level tests get valid PDFs.
type mockConverter struct{}

func (m *mockConverter) Convert(_ context.Context, input svg2pdf.Input) ([]byte, error) {
	if bytes.Contains(input.SVG, []byte("fail")) {
		return nil, errRenderBoom
	}
	return svg2pdf.BlankPage(), nil
}

// mockPool hands out a shared converter without browser involvement.
type mockPool struct {
	size    int
	conv    Converter
	nilConv bool
}

func (p *mockPool) Acquire() Converter {
	if p.nilConv {
		return nil
	}
	return p.conv
}

func (p *mockPool) Release(Converter) {}
func (p *mockPool) Size() int         { return p.size }
func (p *mockPool) Close() error      { return nil }

// Compile-time check that mockPool implements Pool.
var _ Pool = (*mockPool)(nil)

func testParams(t *testing.T) *conversionParams {
	t.Helper()
	extractor, err := pagekey.New("")
	if err != nil {
		t.Fatal(err)
	}
	return &conversionParams{
		extractor: extractor,
		page:      svg2pdf.DefaultPageSettings(),
	}
}

func entriesFromNames(names ...string) []source.Entry {
	entries := make([]source.Entry, len(names))
	for i, name := range names {
		entries[i] = source.Entry{Name: name, Data: []byte("<svg>" + name + "</svg>"), Index: i}
	}
	return entries
}

func TestConvertBatch(t *testing.T) {
	t.Parallel()

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()

		pool := &mockPool{size: 2, conv: &mockConverter{}}
		results := convertBatch(context.Background(), pool, nil, testParams(t))
		if results != nil {
			t.Errorf("convertBatch(nil entries) = %v, want nil", results)
		}
	})

	t.Run("results align with entries and carry keys", func(t *testing.T) {
		t.Parallel()

		entries := entriesFromNames("page_2.svg", "page_1.svg", "cover.svg")
		pool := &mockPool{size: 2, conv: &mockConverter{}}

		results := convertBatch(context.Background(), pool, entries, testParams(t))
		if len(results) != 3 {
			t.Fatalf("got %d results, want 3", len(results))
		}

		wantKeys := []struct {
			key     int
			matched bool
		}{{2, true}, {1, true}, {0, false}}

		for i, r := range results {
			if r.Name != entries[i].Name {
				t.Errorf("result %d name = %q, want %q", i, r.Name, entries[i].Name)
			}
			if r.Key != wantKeys[i].key || r.Matched != wantKeys[i].matched {
				t.Errorf("result %d key = (%d, %v), want (%d, %v)",
					i, r.Key, r.Matched, wantKeys[i].key, wantKeys[i].matched)
			}
			if r.Err != nil {
				t.Errorf("result %d unexpected error %v", i, r.Err)
			}
			if len(r.PDF) == 0 {
				t.Errorf("result %d has no PDF bytes", i)
			}
		}
	})

	t.Run("failed conversion substitutes blank page", func(t *testing.T) {
		t.Parallel()

		entries := []source.Entry{
			{Name: "page_1.svg", Data: []byte("<svg>ok</svg>"), Index: 0},
			{Name: "page_2.svg", Data: []byte("<svg>fail</svg>"), Index: 1},
		}
		pool := &mockPool{size: 1, conv: &mockConverter{}}

		results := convertBatch(context.Background(), pool, entries, testParams(t))

		if results[0].Err != nil || results[0].Blank {
			t.Errorf("result 0 = (err %v, blank %v), want clean", results[0].Err, results[0].Blank)
		}
		if !errors.Is(results[1].Err, errRenderBoom) {
			t.Errorf("result 1 error = %v, want errRenderBoom", results[1].Err)
		}
		if !results[1].Blank || !svg2pdf.IsBlankPage(results[1].PDF) {
			t.Error("failed page should be substituted with the blank page")
		}
	})

	t.Run("canceled context marks jobs", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		entries := entriesFromNames("page_1.svg", "page_2.svg")
		pool := &mockPool{size: 1, conv: &mockConverter{}}

		results := convertBatch(ctx, pool, entries, testParams(t))
		for i, r := range results {
			if !errors.Is(r.Err, context.Canceled) {
				t.Errorf("result %d error = %v, want context.Canceled", i, r.Err)
			}
		}
	})

	t.Run("nil converter marks jobs as service init failure", func(t *testing.T) {
		t.Parallel()

		entries := entriesFromNames("page_1.svg")
		pool := &mockPool{size: 1, nilConv: true}

		results := convertBatch(context.Background(), pool, entries, testParams(t))
		if !errors.Is(results[0].Err, ErrServiceInit) {
			t.Errorf("error = %v, want ErrServiceInit", results[0].Err)
		}
	})
}

func TestSummarize(t *testing.T) {
	t.Parallel()

	results := []PageResult{
		{Matched: true},
		{Matched: true, Blank: true, Err: errRenderBoom},
		{Matched: false},
	}

	got := summarize(results)
	want := ResultSummary{Pages: 3, Blank: 1, Unmatched: 1}
	if got != want {
		t.Errorf("summarize() = %+v, want %+v", got, want)
	}
}

func TestPrintResults(t *testing.T) {
	t.Parallel()

	results := []PageResult{
		{Name: "page_1.svg", Matched: true, Duration: 12 * time.Millisecond},
		{Name: "cover.svg", Matched: false, Duration: 9 * time.Millisecond},
		{Name: "page_3.svg", Matched: true, Blank: true, Err: errRenderBoom},
	}

	t.Run("default output", func(t *testing.T) {
		t.Parallel()

		var stdout, stderr bytes.Buffer
		env := &Environment{Stdout: &stdout, Stderr: &stderr}

		printResults(results, "book.pdf", false, false, env)

		if !strings.Contains(stdout.String(), "Created book.pdf (3 pages, 1 replaced with blank pages)") {
			t.Errorf("stdout = %q", stdout.String())
		}
		if !strings.Contains(stderr.String(), "page_3.svg") {
			t.Errorf("stderr should name the substituted page, got %q", stderr.String())
		}
		if !strings.Contains(stderr.String(), "cover.svg") {
			t.Errorf("stderr should warn about the unmatched name, got %q", stderr.String())
		}
	})

	t.Run("quiet shows errors only", func(t *testing.T) {
		t.Parallel()

		var stdout, stderr bytes.Buffer
		env := &Environment{Stdout: &stdout, Stderr: &stderr}

		printResults(results, "book.pdf", true, false, env)

		if stdout.Len() != 0 {
			t.Errorf("quiet stdout = %q, want empty", stdout.String())
		}
		if !strings.Contains(stderr.String(), "page_3.svg") {
			t.Error("quiet mode should still report substituted pages")
		}
	})

	t.Run("verbose shows timing", func(t *testing.T) {
		t.Parallel()

		var stdout, stderr bytes.Buffer
		env := &Environment{Stdout: &stdout, Stderr: &stderr}

		printResults(results, "book.pdf", false, true, env)

		if !strings.Contains(stdout.String(), "page_1.svg -> page 1 (12ms)") {
			t.Errorf("verbose stdout = %q", stdout.String())
		}
	})
}
