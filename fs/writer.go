package fs

import (
	"context"
	"encoding/csv"
	"io"
	"strings"

	"github.com/fwojciec/schooldir"
)

// Ensure writers implement the store interfaces at compile time.
var (
	_ schooldir.RecordStore  = (*RecordWriter)(nil)
	_ schooldir.ListingStore = (*ListingWriter)(nil)
)

// RecordWriter writes school records to a CSV file with every field quoted.
type RecordWriter struct {
	path string
}

// NewRecordWriter creates a new RecordWriter for the file at path.
func NewRecordWriter(path string) *RecordWriter {
	return &RecordWriter{path: path}
}

// SaveRecords writes the header and one row per record, replacing the file.
func (w *RecordWriter) SaveRecords(ctx context.Context, records []*schooldir.SchoolRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	f, err := createAtomic(w.path)
	if err != nil {
		return err
	}

	if err := writeQuotedRow(f.w, schooldir.RecordHeader); err != nil {
		_ = f.Abort()
		return err
	}
	for _, r := range records {
		if err := writeQuotedRow(f.w, r.Fields()); err != nil {
			_ = f.Abort()
			return err
		}
	}

	return f.Commit()
}

// writeQuotedRow writes fields as one CSV row, quoting every field.
// encoding/csv only quotes fields that need it.
func writeQuotedRow(w io.StringWriter, fields []string) error {
	var b strings.Builder
	for i, field := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(field, `"`, `""`))
		b.WriteByte('"')
	}
	b.WriteByte('\n')
	_, err := w.WriteString(b.String())
	return err
}

// ListingWriter writes school listings to a CSV file.
type ListingWriter struct {
	path string
}

// NewListingWriter creates a new ListingWriter for the file at path.
func NewListingWriter(path string) *ListingWriter {
	return &ListingWriter{path: path}
}

// SaveListings writes the header and one row per listing, replacing the file.
// An empty slice produces a header-only file.
func (w *ListingWriter) SaveListings(ctx context.Context, listings []*schooldir.SchoolListing) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	f, err := createAtomic(w.path)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(f.w)
	if err := cw.Write(schooldir.ListingHeader); err != nil {
		_ = f.Abort()
		return err
	}
	for _, l := range listings {
		if err := cw.Write(l.Fields()); err != nil {
			_ = f.Abort()
			return err
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		_ = f.Abort()
		return err
	}

	return f.Commit()
}
