// Package pretty renders extraction summaries as text tables.
package pretty

import (
	"fmt"
	"io"

	"github.com/fwojciec/schooldir"
	"github.com/jedib0t/go-pretty/v6/table"
)

// SummaryWriter writes a schooldir.Summary as human-readable tables.
type SummaryWriter struct {
	w io.Writer
}

// NewSummaryWriter creates a new SummaryWriter writing to w.
func NewSummaryWriter(w io.Writer) *SummaryWriter {
	return &SummaryWriter{w: w}
}

// Write renders the totals followed by the grade level and SQRP rating
// distributions.
func (s *SummaryWriter) Write(summary schooldir.Summary) {
	fmt.Fprintln(s.w)
	fmt.Fprintln(s.w, "=== EXTRACTION SUMMARY ===")
	fmt.Fprintf(s.w, "Total schools: %d\n", summary.Total)
	fmt.Fprintf(s.w, "Schools with phone numbers: %d\n", summary.WithPhone)
	fmt.Fprintf(s.w, "Schools with SQRP ratings: %d\n", summary.WithRating)

	s.distribution("Grade Level Distribution", "Grade Levels", summary.GradeLevels)
	s.distribution("SQRP Rating Distribution", "SQRP Rating", summary.Ratings)
}

func (s *SummaryWriter) distribution(title, column string, counts []schooldir.ValueCount) {
	t := table.NewWriter()
	t.SetOutputMirror(s.w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{column, "Schools"})
	for _, c := range counts {
		value := c.Value
		if value == "" {
			value = "(empty)"
		}
		t.AppendRow(table.Row{value, c.Count})
	}
	fmt.Fprintf(s.w, "\n%s:\n", title)
	t.Render()
}
