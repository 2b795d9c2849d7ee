package schooldir

import "context"

// DefaultDirectoryURL is the find-a-charter-school page scraped by default.
const DefaultDirectoryURL = "https://www.incschools.org/find-a-charter-school/"

// DefaultListingSelector matches one list item per school on the rendered
// directory page.
const DefaultListingSelector = ".schools-list li"

// Fetcher retrieves rendered HTML from URLs.
// Implementations use browser automation to handle JavaScript-rendered content.
type Fetcher interface {
	// Fetch navigates to the URL, waits until an element matching selector
	// is present, and returns the rendered HTML.
	// The wait is bounded; exceeding it is an error, never a partial result.
	Fetch(ctx context.Context, url, selector string) (html string, err error)

	// Close releases browser resources.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}
