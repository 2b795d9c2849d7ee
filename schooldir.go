// Package schooldir extracts charter school directory data into CSV.
// It turns the text of a printed PDF listing into school records and
// scrapes the live find-a-school page into school listings.
//
// This package contains domain types, interfaces and the line-processing
// logic following Ben Johnson's Standard Package Layout. Implementations
// of external capabilities live in subdirectories named after their
// primary dependency (e.g., pdf/, rod/, goquery/, sqlite/).
package schooldir
