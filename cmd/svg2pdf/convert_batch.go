package main

import (
	"context"
	"fmt"
	"sync"
	"time"

	svg2pdf "github.com/alnah/go-svg2pdf"
	"github.com/alnah/go-svg2pdf/internal/source"
)

// Converter is the interface for the per-page conversion service.
type Converter interface {
	Convert(ctx context.Context, input svg2pdf.Input) ([]byte, error)
}

// Compile-time interface implementation check.
var _ Converter = (*svg2pdf.Service)(nil)

// Pool abstracts service pool operations for testability.
type Pool interface {
	Acquire() Converter
	Release(Converter)
	Size() int
	Close() error
}

// servicePool adapts svg2pdf.ServicePool to the Pool interface.
type servicePool struct {
	inner *svg2pdf.ServicePool
}

// Compile-time check that servicePool implements Pool.
var _ Pool = (*servicePool)(nil)

// newServicePool creates a pool backed by svg2pdf.ServicePool.
func newServicePool(n int, opts ...svg2pdf.Option) *servicePool {
	return &servicePool{inner: svg2pdf.NewServicePool(n, opts...)}
}

// Acquire returns an untyped nil after the pool is closed so callers can
// check against nil without knowing the concrete service type.
func (p *servicePool) Acquire() Converter {
	svc := p.inner.Acquire()
	if svc == nil {
		return nil
	}
	return svc
}

func (p *servicePool) Release(svc Converter) {
	if s, ok := svc.(*svg2pdf.Service); ok {
		p.inner.Release(s)
	}
}

func (p *servicePool) Size() int    { return p.inner.Size() }
func (p *servicePool) Close() error { return p.inner.Close() }

// PageResult holds the outcome of converting a single SVG entry.
type PageResult struct {
	Name     string
	Index    int  // enumeration position, used as sort tiebreak
	Key      int  // extracted page-order key
	Matched  bool // whether the pattern matched the filename
	PDF      []byte
	Blank    bool // conversion failed, blank page substituted
	Err      error
	Duration time.Duration
}

// convertBatch processes entries concurrently using the service pool.
// Failed conversions are substituted with the blank fallback page; strict
// handling is the caller's decision based on PageResult.Err.
func convertBatch(ctx context.Context, pool Pool, entries []source.Entry, params *conversionParams) []PageResult {
	if len(entries) == 0 {
		return nil
	}

	concurrency := pool.Size()
	if concurrency > len(entries) {
		concurrency = len(entries)
	}

	results := make([]PageResult, len(entries))
	var wg sync.WaitGroup
	jobs := make(chan int, len(entries))

	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			svc := pool.Acquire()
			if svc == nil {
				for idx := range jobs {
					results[idx] = failedResult(entries[idx], params, ErrServiceInit)
				}
				return
			}
			defer pool.Release(svc)

			for idx := range jobs {
				if ctx.Err() != nil {
					results[idx] = failedResult(entries[idx], params, ctx.Err())
					continue
				}
				results[idx] = convertEntry(ctx, svc, entries[idx], params)
			}
		}()
	}

	for i := range entries {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// convertEntry renders one SVG entry and returns the result.
func convertEntry(ctx context.Context, svc Converter, entry source.Entry, params *conversionParams) PageResult {
	start := time.Now()

	key, matched := params.extractor.Key(entry.Name)
	result := PageResult{
		Name:    entry.Name,
		Index:   entry.Index,
		Key:     key,
		Matched: matched,
	}

	pdf, err := svc.Convert(ctx, svg2pdf.Input{
		SVG:  entry.Data,
		Page: params.page,
	})
	if err != nil {
		result.Err = err
		result.Blank = true
		result.PDF = svg2pdf.BlankPage()
		result.Duration = time.Since(start)
		return result
	}

	result.PDF = pdf
	result.Duration = time.Since(start)
	return result
}

// failedResult builds a blank-substituted result without rendering.
func failedResult(entry source.Entry, params *conversionParams, err error) PageResult {
	key, matched := params.extractor.Key(entry.Name)
	return PageResult{
		Name:    entry.Name,
		Index:   entry.Index,
		Key:     key,
		Matched: matched,
		Blank:   true,
		PDF:     svg2pdf.BlankPage(),
		Err:     err,
	}
}

// ResultSummary holds the tally of a batch run.
type ResultSummary struct {
	Pages     int
	Blank     int
	Unmatched int
}

// summarize tallies converted, substituted, and unmatched pages.
func summarize(results []PageResult) ResultSummary {
	summary := ResultSummary{Pages: len(results)}
	for _, r := range results {
		if r.Blank {
			summary.Blank++
		}
		if !r.Matched {
			summary.Unmatched++
		}
	}
	return summary
}

// printResults outputs per-page diagnostics and the batch summary.
func printResults(results []PageResult, outputPath string, quiet, verbose bool, env *Environment) {
	for pageNo, r := range results {
		if r.Err != nil {
			fmt.Fprintf(env.Stderr, "WARN %s: %v (blank page substituted)\n", r.Name, r.Err)
			continue
		}
		if !r.Matched && !quiet {
			fmt.Fprintf(env.Stderr, "WARN %s: no page number match, placed at front\n", r.Name)
		}
		if verbose {
			fmt.Fprintf(env.Stdout, "%s -> page %d (%v)\n", r.Name, pageNo+1, r.Duration.Round(time.Millisecond))
		}
	}

	if quiet {
		return
	}

	summary := summarize(results)
	if summary.Blank > 0 {
		fmt.Fprintf(env.Stdout, "Created %s (%d pages, %d replaced with blank pages)\n",
			outputPath, summary.Pages, summary.Blank)
		return
	}
	fmt.Fprintf(env.Stdout, "Created %s (%d pages)\n", outputPath, summary.Pages)
}
