package mock

import (
	"context"

	"github.com/fwojciec/schooldir"
)

var _ schooldir.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of schooldir.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url, selector string) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url, selector string) (string, error) {
	return f.FetchFn(ctx, url, selector)
}

func (f *Fetcher) Close() error {
	return f.CloseFn()
}
