package schooldir

import (
	"context"
	"strings"
)

// Page holds the plain text of one page of a source document.
type Page struct {
	Number int
	Text   string

	// Err is set when the page could not be read. Its Text is empty.
	Err error
}

// TextExtractor reads per-page plain text from a document, in page order.
// A document that cannot be opened at all is an error; individual pages
// that fail are reported through Page.Err.
type TextExtractor interface {
	Extract(ctx context.Context, path string) ([]*Page, error)
}

// JoinPages concatenates the text of all readable pages, terminating each
// page with a newline. Pages with Err set are skipped.
func JoinPages(pages []*Page) string {
	var b strings.Builder
	for _, p := range pages {
		if p.Err != nil {
			continue
		}
		b.WriteString(p.Text)
		b.WriteString("\n")
	}
	return b.String()
}
