package main

import (
	"fmt"

	"github.com/fwojciec/helpview"
)

// Run executes the remove command.
func (c *RemoveCmd) Run(deps *Dependencies) error {
	manuals, err := deps.Manuals.FindManuals(deps.Ctx, helpview.ManualFilter{Name: &c.Name})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", helpview.ErrorMessage(err))
		return err
	}

	if len(manuals) == 0 {
		fmt.Fprintf(deps.Stderr, "error: manual %q not found. Use 'helpview list' to see registered manuals.\n", c.Name)
		return helpview.Errorf(helpview.ENOTFOUND, "manual %q not found", c.Name)
	}

	manual := manuals[0]
	if err := deps.Manuals.DeleteManual(deps.Ctx, manual.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", helpview.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Removed manual %q\n", manual.Name)
	return nil
}
