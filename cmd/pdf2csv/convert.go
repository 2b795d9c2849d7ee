package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fwojciec/schooldir"
)

// Run executes the convert command.
func (c *ConvertCmd) Run(deps *Dependencies) error {
	if err := c.checkInput(deps.Stderr); err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "Starting extraction from %s...\n", c.Input)

	fmt.Fprintln(deps.Stdout, "Step 1: Extracting text from PDF...")
	pages, err := deps.Extractor.Extract(deps.Ctx, c.Input)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "Error reading PDF: %s\n", schooldir.ErrorMessage(err))
		return err
	}
	for _, p := range pages {
		if p.Err != nil {
			fmt.Fprintf(deps.Stderr, "Error processing page %d: %v\n", p.Number, p.Err)
			continue
		}
		fmt.Fprintf(deps.Stdout, "Processed page %d\n", p.Number)
	}

	fmt.Fprintln(deps.Stdout, "Step 2: Cleaning text lines...")
	lines := deps.Cleaner.Clean(schooldir.JoinPages(pages))
	fmt.Fprintf(deps.Stdout, "Found %d lines to process\n", len(lines))

	fmt.Fprintln(deps.Stdout, "Step 3: Extracting school data...")
	records := schooldir.AssembleRecords(lines)

	fmt.Fprintln(deps.Stdout, "Step 4: Saving to CSV...")
	if len(records) == 0 {
		fmt.Fprintln(deps.Stderr, "No schools data to save!")
		return nil
	}

	if err := deps.Records.SaveRecords(deps.Ctx, records); err != nil {
		fmt.Fprintf(deps.Stderr, "error saving %s: %v\n", c.Output, err)
		return err
	}
	fmt.Fprintf(deps.Stdout, "Successfully saved %d schools to %s\n", len(records), c.Output)

	if deps.Archive != nil {
		if err := deps.Archive.SaveRecords(deps.Ctx, records); err != nil {
			fmt.Fprintf(deps.Stderr, "error archiving records: %v\n", err)
			return err
		}
	}

	deps.Summary.Write(schooldir.Summarize(records))

	fmt.Fprintf(deps.Stdout, "\nExtraction complete! Output saved to: %s\n", c.Output)
	return nil
}

// checkInput fails with ENOTFOUND when the input file does not exist.
func (c *ConvertCmd) checkInput(stderr io.Writer) error {
	if _, err := os.Stat(c.Input); err != nil {
		if os.IsNotExist(err) {
			fmt.Fprintf(stderr, "Error: Input file '%s' not found!\n", c.Input)
			return schooldir.Errorf(schooldir.ENOTFOUND, "input file %q not found", c.Input)
		}
		return err
	}
	return nil
}
