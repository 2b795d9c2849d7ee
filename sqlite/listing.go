package sqlite

import (
	"context"
	"time"

	"github.com/fwojciec/schooldir"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var (
	_ schooldir.ListingStore   = (*ListingService)(nil)
	_ schooldir.ListingArchive = (*ListingService)(nil)
)

// ListingService stores school listings scraped from the directory page.
type ListingService struct {
	db  *DB
	now func() time.Time
}

// NewListingService creates a new ListingService.
func NewListingService(db *DB) *ListingService {
	return &ListingService{db: db, now: time.Now}
}

// SaveListings stores all listings as one run in a single transaction.
// An empty slice stores nothing.
func (s *ListingService) SaveListings(ctx context.Context, listings []*schooldir.SchoolListing) error {
	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer rollback(tx)

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO school_listings (id, run_id, position, name, link, address, phone, grades,
			charter_type, network, row_hash, extracted_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	runID := uuid.New().String()
	extractedAt := s.now().UTC().Format(time.RFC3339)
	for i, l := range listings {
		if _, err := stmt.ExecContext(ctx, uuid.New().String(), runID, i, l.Name, l.Link, l.Address,
			l.Phone, l.Grades, l.CharterType, l.Network, schooldir.ListingHash(l), extractedAt); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// Runs lists stored scrape runs, most recent first.
func (s *ListingService) Runs(ctx context.Context) ([]*schooldir.Run, error) {
	return findRuns(ctx, s.db, "school_listings")
}

// FindListings returns the listings of a run in their original order.
// Returns ENOTFOUND if the run does not exist.
func (s *ListingService) FindListings(ctx context.Context, runID string) ([]*schooldir.SchoolListing, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT name, link, address, phone, grades, charter_type, network
		FROM school_listings
		WHERE run_id = ?
		ORDER BY position
	`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var listings []*schooldir.SchoolListing
	for rows.Next() {
		var l schooldir.SchoolListing
		if err := rows.Scan(&l.Name, &l.Link, &l.Address, &l.Phone,
			&l.Grades, &l.CharterType, &l.Network); err != nil {
			return nil, err
		}
		listings = append(listings, &l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(listings) == 0 {
		return nil, schooldir.Errorf(schooldir.ENOTFOUND, "run %q not found", runID)
	}
	return listings, nil
}
