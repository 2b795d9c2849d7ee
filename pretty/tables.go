package pretty

import (
	"io"
	"time"

	"github.com/fwojciec/schooldir"
	"github.com/jedib0t/go-pretty/v6/table"
)

// WriteRuns renders stored runs as a table.
func WriteRuns(w io.Writer, runs []*schooldir.Run) {
	t := newTable(w)
	t.AppendHeader(table.Row{"Run", "Rows", "Extracted"})
	for _, r := range runs {
		t.AppendRow(table.Row{r.ID, r.Rows, r.ExtractedAt.Format(time.RFC3339)})
	}
	t.Render()
}

// WriteRecords renders school records as a table with the CSV column names.
func WriteRecords(w io.Writer, records []*schooldir.SchoolRecord) {
	t := newTable(w)
	t.AppendHeader(row(schooldir.RecordHeader))
	for _, r := range records {
		t.AppendRow(row(r.Fields()))
	}
	t.Render()
}

// WriteListings renders school listings as a table with the CSV column names.
func WriteListings(w io.Writer, listings []*schooldir.SchoolListing) {
	t := newTable(w)
	t.AppendHeader(row(schooldir.ListingHeader))
	for _, l := range listings {
		t.AppendRow(row(l.Fields()))
	}
	t.Render()
}

func newTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	return t
}

func row(values []string) table.Row {
	r := make(table.Row, len(values))
	for i, v := range values {
		r[i] = v
	}
	return r
}
