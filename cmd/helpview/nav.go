package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/fwojciec/helpview"
	"github.com/fwojciec/helpview/browse"
	"github.com/fwojciec/helpview/search"
)

// Run executes the open command.
func (c *OpenCmd) Run(deps *Dependencies) error {
	var pattern *search.Pattern
	if c.Find != "" {
		p, err := search.Compile(c.Find, helpview.SearchFlags{})
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", helpview.ErrorMessage(err))
			return err
		}
		pattern = p
	}

	return navigate(deps, pattern, "", func(b *browse.Browser) (*helpview.Page, error) {
		return openTarget(deps.Ctx, b, c.Target)
	})
}

// Run executes the back command.
func (c *BackCmd) Run(deps *Dependencies) error {
	return navigate(deps, nil, "Already at the first page.", func(b *browse.Browser) (*helpview.Page, error) {
		return b.Back(deps.Ctx)
	})
}

// Run executes the forward command.
func (c *ForwardCmd) Run(deps *Dependencies) error {
	return navigate(deps, nil, "Already at the last page.", func(b *browse.Browser) (*helpview.Page, error) {
		return b.Forward(deps.Ctx)
	})
}

// Run executes the home command.
func (c *HomeCmd) Run(deps *Dependencies) error {
	return navigate(deps, nil, "", func(b *browse.Browser) (*helpview.Page, error) {
		return b.Home(deps.Ctx)
	})
}

// openTarget displays a target ID, or a location when s is a URL.
func openTarget(ctx context.Context, b *browse.Browser, s string) (*helpview.Page, error) {
	if strings.Contains(s, "://") {
		return b.Follow(ctx, helpview.Location(s))
	}
	return b.DisplayPageForTarget(ctx, s)
}

// navigate performs one navigation step against the saved history and
// saves the result. none is printed when the step has no page to show.
func navigate(deps *Dependencies, pattern *search.Pattern, none string, step func(*browse.Browser) (*helpview.Page, error)) error {
	history, err := deps.History.LoadHistory(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", helpview.ErrorMessage(err))
		return err
	}

	b := browse.NewBrowser(deps.Library, deps.Renderer)
	b.History = history

	page, err := step(b)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", helpview.ErrorMessage(err))
		return err
	}
	if page == nil {
		fmt.Fprintln(deps.Stdout, none)
		return nil
	}

	if err := deps.History.SaveHistory(deps.Ctx, b.History); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", helpview.ErrorMessage(err))
		return err
	}

	printPage(deps.Stdout, page, pattern)
	return nil
}
