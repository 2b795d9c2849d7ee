// Package pdf reads per-page plain text from PDF documents.
package pdf

import (
	"context"
	"fmt"
	"os"

	"github.com/fwojciec/schooldir"
	"github.com/ledongthuc/pdf"
)

// Ensure Extractor implements schooldir.TextExtractor at compile time.
var _ schooldir.TextExtractor = (*Extractor)(nil)

// Extractor extracts plain text from PDF files using github.com/ledongthuc/pdf.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract opens the PDF at path and returns the text of every page in page
// order. A page whose content cannot be decoded is returned with Err set and
// the remaining pages are still read.
func (e *Extractor) Extract(ctx context.Context, path string) ([]*schooldir.Page, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, r, err := open(path)
	if err != nil {
		return nil, schooldir.Errorf(schooldir.EINVALID, "cannot read PDF %q: %v", path, err)
	}
	defer f.Close()

	total := r.NumPage()
	pages := make([]*schooldir.Page, 0, total)
	for i := 1; i <= total; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		text, err := pageText(r, i)
		pages = append(pages, &schooldir.Page{Number: i, Text: text, Err: err})
	}

	return pages, nil
}

// open wraps pdf.Open, which panics on some truncated files instead of
// returning an error.
func open(path string) (f *os.File, r *pdf.Reader, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("malformed document: %v", p)
		}
	}()
	return pdf.Open(path)
}

// pageText returns the plain text of page i (1-based).
// A panic while walking a malformed page tree is reported as an error for
// the page.
func pageText(r *pdf.Reader, i int) (text string, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("page %d: malformed content: %v", i, p)
		}
	}()

	page := r.Page(i)
	if page.V.IsNull() || page.V.Key("Contents").Kind() == pdf.Null {
		return "", nil
	}

	text, err = page.GetPlainText(nil)
	if err != nil {
		return "", fmt.Errorf("page %d: %w", i, err)
	}
	return text, nil
}
