package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/pagescribe"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	Fetcher    pagescribe.Fetcher
	Extractor  pagescribe.Extractor
	Rasterizer pagescribe.Rasterizer
	Archive    pagescribe.Archive
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Render  RenderCmd  `cmd:"" default:"withargs" help:"Scrape a page and render it (default command)"`
	Archive ArchiveCmd `cmd:"" help:"Inspect the scrape archive"`

	Verbose bool `short:"v" help:"Enable verbose logging."`
}

// RenderCmd is the default scrape-and-render command.
type RenderCmd struct {
	URL string `arg:"" help:"Page URL to scrape."`

	Format string `short:"f" enum:",markdown,text,html,pdf" default:"" help:"Output format: markdown, text, html, or pdf. Defaults from the --out extension, else markdown."`
	Out    string `short:"o" help:"Output file path. Text formats default to stdout; pdf derives a name from the URL."`
	Footer string `help:"Footer text appended to the output."`

	Engine       string `default:"structured" enum:"structured,readability,trafilatura" help:"Extraction engine."`
	MinParagraph int    `name:"min-paragraph" default:"3" help:"Minimum paragraph length in characters."`

	Archive string `help:"SQLite database path; scrapes with changed content are saved there."`

	Browser bool          `help:"Fetch with a headless browser (for JavaScript-rendered pages)."`
	Timeout time.Duration `default:"30s" help:"Overall fetch timeout."`

	PDFEngine string  `name:"pdf-engine" default:"chrome" enum:"chrome,builtin" help:"PDF engine: chrome print or builtin pure-Go layout."`
	PageSize  string  `name:"page-size" default:"A4" enum:"A4,Letter,Legal" help:"Page size for pdf output."`
	Margin    float64 `default:"0.75" help:"Page margin in inches for pdf output."`
}

// ArchiveCmd groups the archive inspection subcommands.
type ArchiveCmd struct {
	DB string `required:"" help:"Archive database path."`

	List   ArchiveListCmd   `cmd:"" help:"List archived documents"`
	Show   ArchiveShowCmd   `cmd:"" help:"Render an archived document"`
	Delete ArchiveDeleteCmd `cmd:"" help:"Remove a document from the archive"`
}

// ArchiveListCmd is the "archive list" subcommand.
type ArchiveListCmd struct{}

// ArchiveShowCmd is the "archive show" subcommand.
type ArchiveShowCmd struct {
	URL    string `arg:"" help:"Source URL of the archived document."`
	Format string `short:"f" enum:"markdown,text,html" default:"markdown" help:"Output format."`
	Footer string `help:"Footer text appended to the output."`
}

// ArchiveDeleteCmd is the "archive delete" subcommand.
type ArchiveDeleteCmd struct {
	URL string `arg:"" help:"Source URL of the archived document."`
}
