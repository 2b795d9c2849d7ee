package schooldir

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
)

// DefaultCharterType is the charter type assigned to every record that
// starts from a school name line.
const DefaultCharterType = "Charter"

// RecordHeader is the CSV header written for SchoolRecord rows.
var RecordHeader = []string{
	"School_Name",
	"Address",
	"Phone_Number",
	"Charter_Type",
	"Grade_Levels",
	"SQRP_Rating",
	"School_Profile_URL",
}

// SchoolRecord is a school assembled from the lines of the PDF listing.
type SchoolRecord struct {
	Name        string `json:"name"`
	Address     string `json:"address"`
	Phone       string `json:"phone"`
	CharterType string `json:"charterType"`
	GradeLevels string `json:"gradeLevels"`
	SQRPRating  string `json:"sqrpRating"`
	ProfileURL  string `json:"profileUrl"`
}

// Complete reports whether the record has the minimum fields needed to be
// emitted: a name and an address.
func (r *SchoolRecord) Complete() bool {
	return r.Name != "" && r.Address != ""
}

// Fields returns the record values in RecordHeader order.
func (r *SchoolRecord) Fields() []string {
	return []string{
		r.Name,
		r.Address,
		r.Phone,
		r.CharterType,
		r.GradeLevels,
		r.SQRPRating,
		r.ProfileURL,
	}
}

// ListingHeader is the CSV header written for SchoolListing rows.
var ListingHeader = []string{
	"name",
	"link",
	"address",
	"phone",
	"grades",
	"charter",
	"network",
}

// SchoolListing is a school read from one item of the rendered directory page.
// Every field is optional; a missing element yields an empty string.
type SchoolListing struct {
	Name        string `json:"name"`
	Link        string `json:"link"`
	Address     string `json:"address"`
	Phone       string `json:"phone"`
	Grades      string `json:"grades"`
	CharterType string `json:"charter"`
	Network     string `json:"network"`
}

// Fields returns the listing values in ListingHeader order.
func (l *SchoolListing) Fields() []string {
	return []string{
		l.Name,
		l.Link,
		l.Address,
		l.Phone,
		l.Grades,
		l.CharterType,
		l.Network,
	}
}

// RecordHash returns a stable hex hash of the record's field values.
func RecordHash(r *SchoolRecord) string {
	return hashFields(r.Fields())
}

// ListingHash returns a stable hex hash of the listing's field values.
func ListingHash(l *SchoolListing) string {
	return hashFields(l.Fields())
}

// hashFields joins values with the unit separator so that shifting text
// between adjacent fields changes the hash.
func hashFields(fields []string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(strings.Join(fields, "\x1f")))
}

// RecordStore persists the records produced by one extraction run.
type RecordStore interface {
	SaveRecords(ctx context.Context, records []*SchoolRecord) error
}

// ListingStore persists the listings produced by one scrape run.
type ListingStore interface {
	SaveListings(ctx context.Context, listings []*SchoolListing) error
}

// Run describes one extraction or scrape persisted to a store.
type Run struct {
	ID          string    `json:"id"`
	Rows        int       `json:"rows"`
	ExtractedAt time.Time `json:"extractedAt"`
}

// RecordArchive reads back records stored by earlier extraction runs.
type RecordArchive interface {
	// Runs lists stored runs, most recent first.
	Runs(ctx context.Context) ([]*Run, error)

	// FindRecords returns the records of a run in extraction order.
	// Returns ENOTFOUND if the run does not exist.
	FindRecords(ctx context.Context, runID string) ([]*SchoolRecord, error)
}

// ListingArchive reads back listings stored by earlier scrape runs.
type ListingArchive interface {
	Runs(ctx context.Context) ([]*Run, error)
	FindListings(ctx context.Context, runID string) ([]*SchoolListing, error)
}
