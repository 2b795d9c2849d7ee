package sqlite_test

import (
	"context"
	"testing"

	"github.com/fwojciec/schooldir"
	"github.com/fwojciec/schooldir/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListingService_SaveListings(t *testing.T) {
	t.Parallel()

	t.Run("stores sparse listings in order", func(t *testing.T) {
		t.Parallel()

		db := openDB(t)
		svc := sqlite.NewListingService(db)
		ctx := context.Background()
		listings := []*schooldir.SchoolListing{
			{
				Name:        "Acme Charter School",
				Link:        "https://www.incschools.org/school/acme/",
				Address:     "123 Main St, Chicago, IL 60601",
				Phone:       "(773) 555-0100",
				Grades:      "K-8",
				CharterType: "Charter",
				Network:     "Acme Schools",
			},
			{Name: "Zenith Academy"},
			{},
		}

		err := svc.SaveListings(ctx, listings)
		require.NoError(t, err)

		runs, err := svc.Runs(ctx)
		require.NoError(t, err)
		require.Len(t, runs, 1)
		assert.Equal(t, 3, runs[0].Rows)

		got, err := svc.FindListings(ctx, runs[0].ID)
		require.NoError(t, err)
		assert.Equal(t, listings, got)
	})

	t.Run("empty slice stores nothing", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewListingService(openDB(t))
		ctx := context.Background()

		require.NoError(t, svc.SaveListings(ctx, nil))

		runs, err := svc.Runs(ctx)
		require.NoError(t, err)
		assert.Empty(t, runs)
	})

	t.Run("respects cancelled context", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewListingService(openDB(t))
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := svc.SaveListings(ctx, []*schooldir.SchoolListing{{Name: "Acme"}})

		require.Error(t, err)
	})
}

func TestListingService_FindListings(t *testing.T) {
	t.Parallel()

	t.Run("returns not found for unknown run", func(t *testing.T) {
		t.Parallel()

		_, err := sqlite.NewListingService(openDB(t)).FindListings(context.Background(), "missing")

		require.Error(t, err)
		assert.Equal(t, schooldir.ENOTFOUND, schooldir.ErrorCode(err))
	})
}
