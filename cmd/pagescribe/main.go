package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/pagescribe"
	"github.com/fwojciec/pagescribe/gofpdf"
	"github.com/fwojciec/pagescribe/goquery"
	pshttp "github.com/fwojciec/pagescribe/http"
	"github.com/fwojciec/pagescribe/readability"
	"github.com/fwojciec/pagescribe/rod"
	pslog "github.com/fwojciec/pagescribe/slog"
	"github.com/fwojciec/pagescribe/sqlite"
	"github.com/fwojciec/pagescribe/trafilatura"
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
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("pagescribe"),
		kong.Description("Scrape a web page into Markdown, plain text, or PDF"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle no arguments
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no arguments provided")
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	// Archive subcommands only need the store
	if strings.HasPrefix(kongCtx.Command(), "archive") {
		archive, err := openArchive(cli.Archive.DB)
		if err != nil {
			return err
		}
		defer archive.Close()
		deps.Archive = archive
		return kongCtx.Run(deps)
	}

	format, err := cli.Render.resolveFormat()
	if err != nil {
		return err
	}

	// Wire the extraction engine
	var extractor pagescribe.Extractor
	switch cli.Render.Engine {
	case "readability":
		extractor = readability.NewExtractor(goquery.WithMinParagraphLength(cli.Render.MinParagraph))
	case "trafilatura":
		extractor = trafilatura.NewExtractor(goquery.WithMinParagraphLength(cli.Render.MinParagraph))
	default:
		extractor = goquery.NewExtractor(goquery.WithMinParagraphLength(cli.Render.MinParagraph))
	}
	deps.Extractor = pslog.NewLoggingExtractor(extractor, logger)

	// Wire the fetcher
	var fetcher pagescribe.Fetcher
	if cli.Render.Browser {
		rodFetcher, err := rod.NewFetcher()
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
			return fmt.Errorf("failed to start browser: %w", err)
		}
		fetcher = rodFetcher
	} else {
		fetcher = pshttp.NewFetcher(pshttp.WithTimeout(cli.Render.Timeout))
	}
	deps.Fetcher = rod.NewLoggingFetcher(fetcher, logger)
	defer deps.Fetcher.Close()

	ctx, cancel := context.WithTimeout(ctx, cli.Render.Timeout)
	defer cancel()
	deps.Ctx = ctx

	if cli.Render.Archive != "" {
		archive, err := openArchive(cli.Render.Archive)
		if err != nil {
			return err
		}
		defer archive.Close()
		deps.Archive = archive
	}

	// The rasterizer is only launched for PDF output
	if format == pagescribe.FormatPDF {
		rasterizer, err := m.newRasterizer(cli, stderr)
		if err != nil {
			return err
		}
		defer rasterizer.Close()
		deps.Rasterizer = rod.NewLoggingRasterizer(rasterizer, logger)
	}

	return kongCtx.Run(deps)
}

// newRasterizer selects the PDF engine.
func (m *Main) newRasterizer(cli *CLI, stderr io.Writer) (pagescribe.Rasterizer, error) {
	switch cli.Render.PDFEngine {
	case "builtin":
		return gofpdf.NewRasterizer(), nil
	default:
		rasterizer, err := rod.NewRasterizer()
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed, or use --pdf-engine=builtin")
			return nil, fmt.Errorf("failed to start browser: %w", err)
		}
		return rasterizer, nil
	}
}

// openArchive opens the SQLite archive store at path.
func openArchive(path string) (*sqlite.ArchiveService, error) {
	db := sqlite.NewDB(path)
	if err := db.Open(); err != nil {
		return nil, err
	}
	return sqlite.NewArchiveService(db), nil
}
