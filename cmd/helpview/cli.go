package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/helpview"
	"github.com/fwojciec/helpview/browse"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Config *Config
	Logger *slog.Logger

	Manuals  helpview.ManualService
	History  helpview.HistoryService
	Decoder  helpview.HelpsetDecoder
	Library  *browse.Library
	Searcher helpview.Searcher
	Renderer helpview.Renderer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Log operations to stderr"`

	Add     AddCmd     `cmd:"" help:"Register helpset files"`
	List    ListCmd    `cmd:"" help:"List registered manuals"`
	Remove  RemoveCmd  `cmd:"" help:"Unregister a manual"`
	Search  SearchCmd  `cmd:"" help:"Search the index, contents and documents"`
	Open    OpenCmd    `cmd:"" help:"Display the page for a target or location"`
	Back    BackCmd    `cmd:"" help:"Display the previous page"`
	Forward ForwardCmd `cmd:"" help:"Display the next page"`
	Home    HomeCmd    `cmd:"" help:"Display the home page"`
	TOC     TOCCmd     `cmd:"" name:"toc" help:"Print the table of contents"`
	Index   IndexCmd   `cmd:"" help:"Print the index"`
	Shell   ShellCmd   `cmd:"" help:"Browse interactively"`
}

// AddCmd is the "add" subcommand.
type AddCmd struct {
	Paths []string `arg:"" help:"Helpset files or glob patterns (** supported)"`
	Name  string   `short:"n" help:"Manual name (single helpset only; defaults to its title)"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct{}

// RemoveCmd is the "remove" subcommand.
type RemoveCmd struct {
	Name string `arg:"" help:"Manual name"`
}

// SearchCmd is the "search" subcommand. Flags enable options on top of the
// configured defaults.
type SearchCmd struct {
	Query         string `arg:"" help:"Text or pattern to search for"`
	CaseSensitive bool   `short:"c" help:"Match case"`
	WholeWord     bool   `short:"w" help:"Match whole words only"`
	Regex         bool   `short:"r" help:"Treat the query as a regular expression"`
	FullText      bool   `short:"f" help:"Also search document text"`
}

// OpenCmd is the "open" subcommand.
type OpenCmd struct {
	Target string `arg:"" help:"Target ID or document URL"`
	Find   string `help:"Highlight matches of this text"`
}

// BackCmd is the "back" subcommand.
type BackCmd struct{}

// ForwardCmd is the "forward" subcommand.
type ForwardCmd struct{}

// HomeCmd is the "home" subcommand.
type HomeCmd struct{}

// TOCCmd is the "toc" subcommand.
type TOCCmd struct{}

// IndexCmd is the "index" subcommand.
type IndexCmd struct {
	Entries bool `short:"e" help:"List cross-references under each term"`
}

// ShellCmd is the "shell" subcommand.
type ShellCmd struct{}
