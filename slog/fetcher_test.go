package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/schooldir"
	"github.com/fwojciec/schooldir/mock"
	schslog "github.com/fwojciec/schooldir/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("logs fetch with selector, bytes and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url, selector string) (string, error) {
				return "<html>content</html>", nil
			},
		}

		fetcher := schslog.NewLoggingFetcher(inner, logger)
		html, err := fetcher.Fetch(context.Background(), "https://example.com/schools", ".schools-list li")

		require.NoError(t, err)
		assert.Equal(t, "<html>content</html>", html)
		output := buf.String()
		assert.Contains(t, output, "fetch")
		assert.Contains(t, output, "url=https://example.com/schools")
		assert.Contains(t, output, `selector=".schools-list li"`)
		assert.Contains(t, output, "bytes=20")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url, selector string) (string, error) {
				return "", errors.New("selector timeout")
			},
		}

		fetcher := schslog.NewLoggingFetcher(inner, logger)
		_, err := fetcher.Fetch(context.Background(), "https://example.com/schools", "li")

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "fetch")
		assert.Contains(t, output, "err=\"selector timeout\"")
	})
}

func TestLoggingFetcher_Close(t *testing.T) {
	t.Parallel()

	t.Run("delegates to inner fetcher", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		closeCalled := false
		inner := &mock.Fetcher{
			CloseFn: func() error {
				closeCalled = true
				return nil
			},
		}

		fetcher := schslog.NewLoggingFetcher(inner, logger)
		err := fetcher.Close()

		require.NoError(t, err)
		assert.True(t, closeCalled)
	})
}

func TestLoggingTextExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("logs page count and unreadable pages", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.TextExtractor{
			ExtractFn: func(ctx context.Context, path string) ([]*schooldir.Page, error) {
				return []*schooldir.Page{
					{Number: 1, Text: "Acme"},
					{Number: 2, Err: errors.New("bad stream")},
				}, nil
			},
		}

		extractor := schslog.NewLoggingTextExtractor(inner, logger)
		pages, err := extractor.Extract(context.Background(), "schools.pdf")

		require.NoError(t, err)
		assert.Len(t, pages, 2)
		output := buf.String()
		assert.Contains(t, output, "level=WARN")
		assert.Contains(t, output, "page=2")
		assert.Contains(t, output, "extract text")
		assert.Contains(t, output, "pages=2")
		assert.Contains(t, output, "failed=1")
	})
}

func TestLoggingStores(t *testing.T) {
	t.Parallel()

	t.Run("record store logs name and count", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.RecordStore{
			SaveRecordsFn: func(ctx context.Context, records []*schooldir.SchoolRecord) error {
				return nil
			},
		}

		store := schslog.NewLoggingRecordStore(inner, "csv", logger)
		err := store.SaveRecords(context.Background(), []*schooldir.SchoolRecord{{Name: "A"}, {Name: "B"}})

		require.NoError(t, err)
		output := buf.String()
		assert.Contains(t, output, "save records")
		assert.Contains(t, output, "store=csv")
		assert.Contains(t, output, "count=2")
	})

	t.Run("listing store logs error", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.ListingStore{
			SaveListingsFn: func(ctx context.Context, listings []*schooldir.SchoolListing) error {
				return errors.New("disk full")
			},
		}

		store := schslog.NewLoggingListingStore(inner, "sqlite", logger)
		err := store.SaveListings(context.Background(), nil)

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "save listings")
		assert.Contains(t, output, "store=sqlite")
		assert.Contains(t, output, "err=\"disk full\"")
	})
}
