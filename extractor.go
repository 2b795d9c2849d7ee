package schooldir

// ListingExtractor reads school listings out of a rendered directory page.
type ListingExtractor interface {
	// Extract returns one listing per matched list item, in document order.
	Extract(html string) ([]*SchoolListing, error)
}
