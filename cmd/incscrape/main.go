package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/schooldir"
	"github.com/fwojciec/schooldir/fs"
	"github.com/fwojciec/schooldir/goquery"
	"github.com/fwojciec/schooldir/rod"
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

	// NewFetcher starts the browser used to render the directory page.
	NewFetcher func(timeout time.Duration) (schooldir.Fetcher, error)
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		NewFetcher: func(timeout time.Duration) (schooldir.Fetcher, error) {
			return rod.NewFetcher(rod.WithFetchTimeout(timeout))
		},
	}
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
		kong.Name("incscrape"),
		kong.Description("Scrape the charter school directory into CSV"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Vars{
			"directory_url":    schooldir.DefaultDirectoryURL,
			"listing_selector": schooldir.DefaultListingSelector,
			"fetch_timeout":    rod.DefaultFetchTimeout.String(),
		},
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
		return err
	}

	if cli.Timeout <= 0 {
		return schooldir.Errorf(schooldir.EINVALID, "timeout must be positive")
	}

	logger := newLogger(stderr, cli.Verbose)

	extractor := goquery.NewListingExtractor()
	extractor.ItemSelector = cli.Selector

	deps := &Dependencies{
		Ctx:       ctx,
		Stdout:    stdout,
		Stderr:    stderr,
		Extractor: extractor,
		Listings:  schslog.NewLoggingListingStore(fs.NewListingWriter(cli.Output), "csv", logger),
	}

	if cli.DB != "" {
		m.DB = sqlite.NewDB(cli.DB)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintln(stderr, "Hint: Set SCHOOLDIR_DB or --db to a writable path")
			return fmt.Errorf("failed to open database at %q: %w", cli.DB, err)
		}
		defer m.Close()
		deps.Archive = schslog.NewLoggingListingStore(sqlite.NewListingService(m.DB), "sqlite", logger)
	}

	fetcher, err := m.NewFetcher(cli.Timeout)
	if err != nil {
		fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
		return fmt.Errorf("failed to start browser: %w", err)
	}
	defer fetcher.Close()
	deps.Fetcher = schslog.NewLoggingFetcher(fetcher, logger)

	cmd := &ScrapeCmd{
		URL:      cli.URL,
		Selector: cli.Selector,
		Output:   cli.Output,
	}

	return cmd.Run(deps)
}

const usage = "Usage: incscrape <output_csv>"

// newLogger returns a text logger on w, or a logger that drops everything
// unless verbose is set.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	if !verbose {
		return slog.New(slog.DiscardHandler)
	}
	return slog.New(slog.NewTextHandler(w, nil))
}
