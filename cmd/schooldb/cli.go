package main

import (
	"context"
	"io"

	"github.com/fwojciec/schooldir"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Records  schooldir.RecordArchive
	Listings schooldir.ListingArchive
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	DB       string      `required:"" env:"SCHOOLDIR_DB" help:"SQLite database written by pdf2csv or incscrape"`
	Runs     RunsCmd     `cmd:"" help:"List stored runs"`
	Records  RecordsCmd  `cmd:"" help:"Show the records of a pdf2csv run"`
	Listings ListingsCmd `cmd:"" help:"Show the listings of an incscrape run"`
}

// RunsCmd is the "runs" subcommand.
type RunsCmd struct {
	Listings bool `short:"l" help:"List incscrape runs instead of pdf2csv runs"`
}

// RecordsCmd is the "records" subcommand.
type RecordsCmd struct {
	RunID string `arg:"" name:"run_id" help:"Run ID from 'schooldb runs'"`
}

// ListingsCmd is the "listings" subcommand.
type ListingsCmd struct {
	RunID string `arg:"" name:"run_id" help:"Run ID from 'schooldb runs --listings'"`
}
