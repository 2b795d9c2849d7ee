package main

import (
	"fmt"

	"github.com/fwojciec/schooldir"
	"github.com/fwojciec/schooldir/pretty"
)

// Run executes the runs command.
func (c *RunsCmd) Run(deps *Dependencies) error {
	var runs []*schooldir.Run
	var err error
	if c.Listings {
		runs, err = deps.Listings.Runs(deps.Ctx)
	} else {
		runs, err = deps.Records.Runs(deps.Ctx)
	}
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", schooldir.ErrorMessage(err))
		return err
	}

	if len(runs) == 0 {
		tool := "pdf2csv"
		if c.Listings {
			tool = "incscrape"
		}
		fmt.Fprintf(deps.Stdout, "No runs found. Use '%s --db' to store one.\n", tool)
		return nil
	}

	pretty.WriteRuns(deps.Stdout, runs)
	return nil
}
