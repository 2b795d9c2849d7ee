package sqlite

import (
	"context"
	"time"

	"github.com/fwojciec/schooldir"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var (
	_ schooldir.RecordStore   = (*RecordService)(nil)
	_ schooldir.RecordArchive = (*RecordService)(nil)
)

// RecordService stores school records extracted from the PDF listing.
type RecordService struct {
	db  *DB
	now func() time.Time
}

// NewRecordService creates a new RecordService.
func NewRecordService(db *DB) *RecordService {
	return &RecordService{db: db, now: time.Now}
}

// SaveRecords stores all records as one run in a single transaction.
// Incomplete records are rejected and nothing is stored.
func (s *RecordService) SaveRecords(ctx context.Context, records []*schooldir.SchoolRecord) error {
	for i, r := range records {
		if !r.Complete() {
			return schooldir.Errorf(schooldir.EINVALID, "record %d: name and address required", i)
		}
	}

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer rollback(tx)

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO school_records (id, run_id, position, name, address, phone, charter_type,
			grade_levels, sqrp_rating, profile_url, row_hash, extracted_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	runID := uuid.New().String()
	extractedAt := s.now().UTC().Format(time.RFC3339)
	for i, r := range records {
		if _, err := stmt.ExecContext(ctx, uuid.New().String(), runID, i, r.Name, r.Address, r.Phone,
			r.CharterType, r.GradeLevels, r.SQRPRating, r.ProfileURL, schooldir.RecordHash(r), extractedAt); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// Runs lists stored extraction runs, most recent first.
func (s *RecordService) Runs(ctx context.Context) ([]*schooldir.Run, error) {
	return findRuns(ctx, s.db, "school_records")
}

// FindRecords returns the records of a run in their original order.
// Returns ENOTFOUND if the run does not exist.
func (s *RecordService) FindRecords(ctx context.Context, runID string) ([]*schooldir.SchoolRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT name, address, phone, charter_type, grade_levels, sqrp_rating, profile_url
		FROM school_records
		WHERE run_id = ?
		ORDER BY position
	`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*schooldir.SchoolRecord
	for rows.Next() {
		var r schooldir.SchoolRecord
		if err := rows.Scan(&r.Name, &r.Address, &r.Phone, &r.CharterType,
			&r.GradeLevels, &r.SQRPRating, &r.ProfileURL); err != nil {
			return nil, err
		}
		records = append(records, &r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(records) == 0 {
		return nil, schooldir.Errorf(schooldir.ENOTFOUND, "run %q not found", runID)
	}
	return records, nil
}
