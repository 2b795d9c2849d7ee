package mock

import (
	"context"

	"github.com/fwojciec/schooldir"
)

// Compile-time interface verification.
var (
	_ schooldir.TextExtractor    = (*TextExtractor)(nil)
	_ schooldir.ListingExtractor = (*ListingExtractor)(nil)
)

// TextExtractor is a mock implementation of schooldir.TextExtractor.
type TextExtractor struct {
	ExtractFn func(ctx context.Context, path string) ([]*schooldir.Page, error)
}

func (e *TextExtractor) Extract(ctx context.Context, path string) ([]*schooldir.Page, error) {
	return e.ExtractFn(ctx, path)
}

// ListingExtractor is a mock implementation of schooldir.ListingExtractor.
type ListingExtractor struct {
	ExtractFn func(html string) ([]*schooldir.SchoolListing, error)
}

func (e *ListingExtractor) Extract(html string) ([]*schooldir.SchoolListing, error) {
	return e.ExtractFn(html)
}
