package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/schooldir"
)

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Output   string        `arg:"" name:"output_csv" help:"CSV file to write"`
	URL      string        `default:"${directory_url}" help:"Directory page to render"`
	Selector string        `default:"${listing_selector}" help:"CSS selector of one school item"`
	Timeout  time.Duration `default:"${fetch_timeout}" help:"Maximum time to wait for the listing to render"`
	DB       string        `env:"SCHOOLDIR_DB" help:"Also store listings in this SQLite database"`
	Verbose  bool          `short:"v" help:"Log operations to stderr"`
}

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	Fetcher   schooldir.Fetcher
	Extractor schooldir.ListingExtractor
	Listings  schooldir.ListingStore

	// Archive optionally receives a copy of the listings. May be nil.
	Archive schooldir.ListingStore
}

// ScrapeCmd renders the directory page and saves its listings to CSV.
type ScrapeCmd struct {
	URL      string
	Selector string
	Output   string
}
