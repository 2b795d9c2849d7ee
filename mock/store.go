package mock

import (
	"context"

	"github.com/fwojciec/schooldir"
)

// Compile-time interface verification.
var (
	_ schooldir.RecordStore  = (*RecordStore)(nil)
	_ schooldir.ListingStore = (*ListingStore)(nil)
)

// RecordStore is a mock implementation of schooldir.RecordStore.
type RecordStore struct {
	SaveRecordsFn func(ctx context.Context, records []*schooldir.SchoolRecord) error
}

func (s *RecordStore) SaveRecords(ctx context.Context, records []*schooldir.SchoolRecord) error {
	return s.SaveRecordsFn(ctx, records)
}

// ListingStore is a mock implementation of schooldir.ListingStore.
type ListingStore struct {
	SaveListingsFn func(ctx context.Context, listings []*schooldir.SchoolListing) error
}

func (s *ListingStore) SaveListings(ctx context.Context, listings []*schooldir.SchoolListing) error {
	return s.SaveListingsFn(ctx, listings)
}

var (
	_ schooldir.RecordArchive  = (*RecordArchive)(nil)
	_ schooldir.ListingArchive = (*ListingArchive)(nil)
)

// RecordArchive is a mock implementation of schooldir.RecordArchive.
type RecordArchive struct {
	RunsFn        func(ctx context.Context) ([]*schooldir.Run, error)
	FindRecordsFn func(ctx context.Context, runID string) ([]*schooldir.SchoolRecord, error)
}

func (a *RecordArchive) Runs(ctx context.Context) ([]*schooldir.Run, error) {
	return a.RunsFn(ctx)
}

func (a *RecordArchive) FindRecords(ctx context.Context, runID string) ([]*schooldir.SchoolRecord, error) {
	return a.FindRecordsFn(ctx, runID)
}

// ListingArchive is a mock implementation of schooldir.ListingArchive.
type ListingArchive struct {
	RunsFn         func(ctx context.Context) ([]*schooldir.Run, error)
	FindListingsFn func(ctx context.Context, runID string) ([]*schooldir.SchoolListing, error)
}

func (a *ListingArchive) Runs(ctx context.Context) ([]*schooldir.Run, error) {
	return a.RunsFn(ctx)
}

func (a *ListingArchive) FindListings(ctx context.Context, runID string) ([]*schooldir.SchoolListing, error) {
	return a.FindListingsFn(ctx, runID)
}
