package main

import (
	"fmt"

	"github.com/fwojciec/schooldir"
	"github.com/fwojciec/schooldir/pretty"
)

// Run executes the records command.
func (c *RecordsCmd) Run(deps *Dependencies) error {
	records, err := deps.Records.FindRecords(deps.Ctx, c.RunID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", schooldir.ErrorMessage(err))
		return err
	}

	pretty.WriteRecords(deps.Stdout, records)
	return nil
}

// Run executes the listings command.
func (c *ListingsCmd) Run(deps *Dependencies) error {
	listings, err := deps.Listings.FindListings(deps.Ctx, c.RunID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", schooldir.ErrorMessage(err))
		return err
	}

	pretty.WriteListings(deps.Stdout, listings)
	return nil
}
