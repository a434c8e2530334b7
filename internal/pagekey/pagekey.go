// Package pagekey extracts page-order keys from filenames.
//
// The key is the LAST substring of the base filename that matches a
// user-supplied regular expression, parsed as an integer. "page_003_v2"
// with the default pattern yields 2, not 3: the last match wins, which
// matches how scanners and export tools append counters.
package pagekey

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

// DefaultPattern matches the last group of digits in a filename.
const DefaultPattern = `\d+`

// ErrInvalidPattern reports a pattern that does not compile.
var ErrInvalidPattern = errors.New("invalid page number pattern")

// Extractor derives integer page keys from filenames.
type Extractor struct {
	re *regexp.Regexp
}

// New compiles pattern into an Extractor.
// An empty pattern falls back to DefaultPattern.
func New(pattern string) (*Extractor, error) {
	if pattern == "" {
		pattern = DefaultPattern
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPattern, err)
	}

	return &Extractor{re: re}, nil
}

// Pattern returns the source pattern of the compiled expression.
func (e *Extractor) Pattern() string {
	return e.re.String()
}

// Key returns the page-order key for name and whether the pattern matched.
// Unmatched names get key 0 so they sort to the front; callers decide how
// to report them. If the last match overflows int, it is treated as
// unmatched.
func (e *Extractor) Key(name string) (int, bool) {
	matches := e.re.FindAllString(name, -1)
	if len(matches) == 0 {
		return 0, false
	}

	last := matches[len(matches)-1]
	n, err := strconv.Atoi(last)
	if err != nil {
		return 0, false
	}

	return n, true
}
