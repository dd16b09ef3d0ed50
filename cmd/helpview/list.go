package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/fwojciec/helpview"
	"github.com/fwojciec/helpview/fs"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	manuals, err := deps.Manuals.FindManuals(deps.Ctx, helpview.ManualFilter{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", helpview.ErrorMessage(err))
		return err
	}

	if len(manuals) == 0 {
		fmt.Fprintln(deps.Stdout, "No manuals registered. Use 'helpview add' to register one.")
		return nil
	}

	for _, m := range manuals {
		fmt.Fprintf(deps.Stdout, "%d  %s  %s  %s  %s\n", m.Position, m.ID, m.Name, m.ConfigPath, manualStatus(m))
	}

	return nil
}

// manualStatus compares the helpset file with the checksum recorded when it
// was added.
func manualStatus(m *helpview.Manual) string {
	sum, err := fs.ChecksumFile(m.ConfigPath)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return "missing"
	case err != nil:
		return "unreadable"
	case sum != m.Checksum:
		return "stale"
	}
	return "ok"
}
