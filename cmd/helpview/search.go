package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/fwojciec/helpview"
	"github.com/fwojciec/helpview/search"
	"golang.org/x/time/rate"
)

// progressInterval bounds how often search progress is redrawn.
const progressInterval = 100 * time.Millisecond

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	flags := c.flags(deps.Config.Search.Flags())

	runner := search.NewRunner(deps.Searcher)
	links, skipped, err := runSearch(deps.Ctx, runner, deps.Library.Catalog(), c.Query, flags, deps.Stderr)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", helpview.ErrorMessage(err))
		return err
	}

	printResults(deps.Stdout, links)
	if skipped > 0 {
		fmt.Fprintf(deps.Stderr, "warning: %d document(s) could not be read\n", skipped)
	}
	return nil
}

// flags enables the command's options on top of defaults.
func (c *SearchCmd) flags(defaults helpview.SearchFlags) helpview.SearchFlags {
	return helpview.SearchFlags{
		CaseSensitive: defaults.CaseSensitive || c.CaseSensitive,
		WholeWord:     defaults.WholeWord || c.WholeWord,
		Regex:         defaults.Regex || c.Regex,
		FullText:      defaults.FullText || c.FullText,
	}
}

// runSearch runs one search to completion, redrawing progress on w.
// It returns the results and the number of documents that could not be read.
func runSearch(ctx context.Context, runner *search.Runner, catalog *helpview.Catalog, query string, flags helpview.SearchFlags, w io.Writer) ([]helpview.LinkInfo, int, error) {
	_, events := runner.Start(ctx, catalog, query, flags)

	redraw := rate.Sometimes{First: 1, Interval: progressInterval}
	skipped := 0
	drawn := false
	for ev := range events {
		if ev.Final {
			if drawn {
				fmt.Fprintln(w)
			}
			return ev.Results, skipped, ev.Err
		}
		if ev.Progress.Error != nil {
			skipped++
		}
		redraw.Do(func() {
			drawn = true
			fmt.Fprintf(w, "\rSearching %d/%d", ev.Progress.Completed, ev.Progress.Total)
		})
	}

	if err := ctx.Err(); err != nil {
		return nil, skipped, err
	}
	return nil, skipped, helpview.Errorf(helpview.EINTERNAL, "search was canceled")
}
