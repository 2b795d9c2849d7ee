package main

import (
	"context"
	"io"

	"github.com/fwojciec/schooldir"
	"github.com/fwojciec/schooldir/pretty"
)

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Input     string `arg:"" name:"input_pdf" help:"PDF listing of charter schools"`
	Output    string `arg:"" name:"output_csv" help:"CSV file to write"`
	DateStamp string `default:"${date_stamp}" help:"Print date that starts page header lines (empty disables)"`
	DB        string `env:"SCHOOLDIR_DB" help:"Also store records in this SQLite database"`
	Verbose   bool   `short:"v" help:"Log operations to stderr"`
}

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	Extractor schooldir.TextExtractor
	Cleaner   *schooldir.Cleaner
	Records   schooldir.RecordStore
	Summary   *pretty.SummaryWriter

	// Archive optionally receives a copy of the records. May be nil.
	Archive schooldir.RecordStore
}

// ConvertCmd extracts school records from a PDF listing into CSV.
type ConvertCmd struct {
	Input  string
	Output string
}
