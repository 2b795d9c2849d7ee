package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/fwojciec/schooldir"
)

// Run executes the scrape command.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	fmt.Fprintf(deps.Stdout, "Navigating to %s...\n", c.URL)

	html, err := deps.Fetcher.Fetch(deps.Ctx, c.URL, c.Selector)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			fmt.Fprintf(deps.Stderr, "Could not find schools list after waiting: %v\n", err)
		} else {
			fmt.Fprintf(deps.Stderr, "error fetching %s: %v\n", c.URL, err)
		}
		return err
	}

	listings, err := deps.Extractor.Extract(html)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", schooldir.ErrorMessage(err))
		return err
	}
	fmt.Fprintf(deps.Stdout, "Found %d potential school list items.\n", len(listings))

	// An empty result still produces a header-only file.
	if err := deps.Listings.SaveListings(deps.Ctx, listings); err != nil {
		fmt.Fprintf(deps.Stderr, "error saving %s: %v\n", c.Output, err)
		return err
	}

	if deps.Archive != nil && len(listings) > 0 {
		if err := deps.Archive.SaveListings(deps.Ctx, listings); err != nil {
			fmt.Fprintf(deps.Stderr, "error archiving listings: %v\n", err)
			return err
		}
	}

	fmt.Fprintf(deps.Stdout, "Script finished. Total schools saved: %d\n", len(listings))
	return nil
}
