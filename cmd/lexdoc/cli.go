package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/lexdoc"
	"github.com/fwojciec/lexdoc/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	DB        *sqlite.DB
	Documents lexdoc.DocumentService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Clean CleanCmd `cmd:"" help:"Extract and clean text from legal PDFs"`
	List  ListCmd  `cmd:"" help:"List processed documents"`
}

// CleanCmd is the "clean" subcommand.
type CleanCmd struct {
	Source      string        `arg:"" help:"PDF file, directory of PDFs, or URL"`
	Out         string        `short:"o" default:"." help:"Output directory"`
	Format      string        `default:"docx" enum:"docx,markdown" help:"Output format (docx or markdown)"`
	Concurrency int           `short:"c" default:"4" help:"Concurrent processing limit for directories"`
	Timeout     time.Duration `default:"30s" help:"Download timeout for URL sources"`
	Force       bool          `short:"f" help:"Reprocess even if content is unchanged"`
	MinWords    int           `default:"3" help:"Minimum words for a line or paragraph to survive"`
	Threshold   int           `default:"2" help:"Occurrences before a line counts as repeated boilerplate"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct{}
