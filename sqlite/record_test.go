package sqlite_test

import (
	"context"
	"testing"

	"github.com/fwojciec/schooldir"
	"github.com/fwojciec/schooldir/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordService_SaveRecords(t *testing.T) {
	t.Parallel()

	t.Run("stores one run in order", func(t *testing.T) {
		t.Parallel()

		db := openDB(t)
		svc := sqlite.NewRecordService(db)
		ctx := context.Background()
		records := []*schooldir.SchoolRecord{
			{Name: "Zenith Academy Campus", Address: "2 Second St, Chicago, IL 60602", CharterType: "Charter", SQRPRating: "Level 1+"},
			{Name: "Acme Charter School", Address: "1 First St, Chicago, IL 60601", CharterType: "Charter", Phone: "(773) 555-0100"},
		}

		err := svc.SaveRecords(ctx, records)
		require.NoError(t, err)

		runs, err := svc.Runs(ctx)
		require.NoError(t, err)
		require.Len(t, runs, 1)
		assert.Equal(t, 2, runs[0].Rows)
		assert.False(t, runs[0].ExtractedAt.IsZero())

		got, err := svc.FindRecords(ctx, runs[0].ID)
		require.NoError(t, err)
		assert.Equal(t, records, got)
	})

	t.Run("stores row hashes", func(t *testing.T) {
		t.Parallel()

		db := openDB(t)
		ctx := context.Background()
		record := &schooldir.SchoolRecord{Name: "Acme Charter School", Address: "1 First St, Chicago, IL 60601"}

		require.NoError(t, sqlite.NewRecordService(db).SaveRecords(ctx, []*schooldir.SchoolRecord{record}))

		var hash string
		require.NoError(t, db.QueryRowContext(ctx, "SELECT row_hash FROM school_records").Scan(&hash))
		assert.Equal(t, schooldir.RecordHash(record), hash)
	})

	t.Run("each save is a separate run", func(t *testing.T) {
		t.Parallel()

		db := openDB(t)
		svc := sqlite.NewRecordService(db)
		ctx := context.Background()
		record := &schooldir.SchoolRecord{Name: "Acme Charter School", Address: "1 First St"}

		require.NoError(t, svc.SaveRecords(ctx, []*schooldir.SchoolRecord{record}))
		require.NoError(t, svc.SaveRecords(ctx, []*schooldir.SchoolRecord{record, record}))

		runs, err := svc.Runs(ctx)
		require.NoError(t, err)
		require.Len(t, runs, 2)
		assert.ElementsMatch(t, []int{1, 2}, []int{runs[0].Rows, runs[1].Rows})
	})

	t.Run("rejects incomplete records and stores nothing", func(t *testing.T) {
		t.Parallel()

		db := openDB(t)
		svc := sqlite.NewRecordService(db)
		ctx := context.Background()

		err := svc.SaveRecords(ctx, []*schooldir.SchoolRecord{
			{Name: "Acme Charter School", Address: "1 First St"},
			{Name: "No Address Academy"},
		})

		require.Error(t, err)
		assert.Equal(t, schooldir.EINVALID, schooldir.ErrorCode(err))
		runs, err := svc.Runs(ctx)
		require.NoError(t, err)
		assert.Empty(t, runs)
	})
}

func TestRecordService_FindRecords(t *testing.T) {
	t.Parallel()

	t.Run("returns not found for unknown run", func(t *testing.T) {
		t.Parallel()

		_, err := sqlite.NewRecordService(openDB(t)).FindRecords(context.Background(), "missing")

		require.Error(t, err)
		assert.Equal(t, schooldir.ENOTFOUND, schooldir.ErrorCode(err))
	})
}
