// Package svg2pdf batch-converts SVG files into a single merged PDF using
// headless Chrome.
//
// # Quick Start
//
// Create a service, convert an SVG buffer, and close when done:
//
//	svc := svg2pdf.New()
//	defer svc.Close()
//
//	page, err := svc.Convert(ctx, svg2pdf.Input{SVG: svgBytes})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Each Convert call produces one single-page PDF. Concatenate pages in
// order with MergeOrdered:
//
//	var out bytes.Buffer
//	err = svg2pdf.MergeOrdered([][]byte{page1, page2}, &out)
//
// # Conversion Pipeline
//
// The conversion process follows these stages:
//
//  1. SVG validation (non-empty input)
//  2. HTML shell wrapping (full-bleed, page-sized container)
//  3. PDF rendering via headless Chrome (go-rod)
//
// Merging is delegated to pdfcpu and preserves the order of the input
// slice; ordering by page number is the caller's responsibility.
//
// # Parallel Processing
//
// For batch conversion, use ServicePool to manage multiple browser
// instances:
//
//	pool := svg2pdf.NewServicePool(4)
//	defer pool.Close()
//
//	svc := pool.Acquire()
//	defer pool.Release(svc)
//	page, err := svc.Convert(ctx, input)
//
// # Browser Requirements
//
// PDF generation requires Chrome/Chromium. The go-rod library automatically
// downloads a managed Chromium instance on first run (~/.cache/rod/browser/).
//
// Use ROD_BROWSER_BIN to point at a pre-installed Chrome binary. When
// ROD_BROWSER_BIN is set or CI=true, the browser runs with --no-sandbox,
// which containerized environments require.
package svg2pdf
