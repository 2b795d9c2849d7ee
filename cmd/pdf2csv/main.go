package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/schooldir"
	"github.com/fwojciec/schooldir/fs"
	"github.com/fwojciec/schooldir/pdf"
	"github.com/fwojciec/schooldir/pretty"
	schslog "github.com/fwojciec/schooldir/slog"
	"github.com/fwojciec/schooldir/sqlite"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// SQLite database, opened only when a database path is configured.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("pdf2csv"),
		kong.Description("Extract charter school records from a PDF listing into CSV"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Vars{"date_stamp": schooldir.DefaultDateStamp},
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		fmt.Fprintln(stderr, usage)
		fmt.Fprintln(stderr, "Example: pdf2csv schools.pdf output.csv")
		return err
	}

	cmd := &ConvertCmd{
		Input:  cli.Input,
		Output: cli.Output,
	}

	// A missing input must not leave a database file behind.
	if err := cmd.checkInput(stderr); err != nil {
		return err
	}

	logger := newLogger(stderr, cli.Verbose)

	deps := &Dependencies{
		Ctx:       ctx,
		Stdout:    stdout,
		Stderr:    stderr,
		Extractor: schslog.NewLoggingTextExtractor(pdf.NewExtractor(), logger),
		Cleaner:   &schooldir.Cleaner{DateStamp: cli.DateStamp},
		Records:   schslog.NewLoggingRecordStore(fs.NewRecordWriter(cli.Output), "csv", logger),
		Summary:   pretty.NewSummaryWriter(stderr),
	}

	if cli.DB != "" {
		m.DB = sqlite.NewDB(cli.DB)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintln(stderr, "Hint: Set SCHOOLDIR_DB or --db to a writable path")
			return fmt.Errorf("failed to open database at %q: %w", cli.DB, err)
		}
		defer m.Close()
		deps.Archive = schslog.NewLoggingRecordStore(sqlite.NewRecordService(m.DB), "sqlite", logger)
	}

	return cmd.Run(deps)
}

const usage = "Usage: pdf2csv <input_pdf> <output_csv>"

// newLogger returns a text logger on w, or a logger that drops everything
// unless verbose is set.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	if !verbose {
		return slog.New(slog.DiscardHandler)
	}
	return slog.New(slog.NewTextHandler(w, nil))
}
