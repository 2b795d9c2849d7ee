package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/fwojciec/schooldir"
)

// parseRFC3339 parses an RFC3339 formatted timestamp string.
// Returns an error if parsing fails with a descriptive message including the field name.
func parseRFC3339(value, fieldName string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse %s: %w", fieldName, err)
	}
	return t, nil
}

// findRuns lists the runs stored in table, most recent first.
// table is always a package constant, never user input.
func findRuns(ctx context.Context, db *DB, table string) ([]*schooldir.Run, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT run_id, COUNT(*), MIN(extracted_at)
		FROM `+table+`
		GROUP BY run_id
		ORDER BY MIN(extracted_at) DESC, run_id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []*schooldir.Run
	for rows.Next() {
		var run schooldir.Run
		var extractedAt string
		if err := rows.Scan(&run.ID, &run.Rows, &extractedAt); err != nil {
			return nil, err
		}
		if run.ExtractedAt, err = parseRFC3339(extractedAt, "extracted_at"); err != nil {
			return nil, err
		}
		runs = append(runs, &run)
	}
	return runs, rows.Err()
}

// rollback aborts tx unless it has already been committed.
func rollback(tx *sql.Tx) {
	_ = tx.Rollback()
}
