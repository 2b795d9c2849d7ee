package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/schooldir"
)

// Compile-time interface verification.
var (
	_ schooldir.RecordStore  = (*LoggingRecordStore)(nil)
	_ schooldir.ListingStore = (*LoggingListingStore)(nil)
)

// LoggingRecordStore wraps a RecordStore with logging.
type LoggingRecordStore struct {
	next   schooldir.RecordStore
	name   string
	logger *slog.Logger
}

// NewLoggingRecordStore creates a new LoggingRecordStore. The name
// identifies the store in log entries.
func NewLoggingRecordStore(next schooldir.RecordStore, name string, logger *slog.Logger) *LoggingRecordStore {
	return &LoggingRecordStore{next: next, name: name, logger: logger}
}

// SaveRecords delegates to the wrapped store and logs the operation.
func (s *LoggingRecordStore) SaveRecords(ctx context.Context, records []*schooldir.SchoolRecord) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("save records",
			"store", s.name,
			"count", len(records),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.SaveRecords(ctx, records)
}

// LoggingListingStore wraps a ListingStore with logging.
type LoggingListingStore struct {
	next   schooldir.ListingStore
	name   string
	logger *slog.Logger
}

// NewLoggingListingStore creates a new LoggingListingStore. The name
// identifies the store in log entries.
func NewLoggingListingStore(next schooldir.ListingStore, name string, logger *slog.Logger) *LoggingListingStore {
	return &LoggingListingStore{next: next, name: name, logger: logger}
}

// SaveListings delegates to the wrapped store and logs the operation.
func (s *LoggingListingStore) SaveListings(ctx context.Context, listings []*schooldir.SchoolListing) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("save listings",
			"store", s.name,
			"count", len(listings),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.SaveListings(ctx, listings)
}
