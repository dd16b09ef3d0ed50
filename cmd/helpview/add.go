package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fwojciec/helpview"
	"github.com/fwojciec/helpview/fs"
)

// Run executes the add command.
func (c *AddCmd) Run(deps *Dependencies) error {
	paths, err := expandPaths(c.Paths)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", helpview.ErrorMessage(err))
		return err
	}
	if len(paths) == 0 {
		fmt.Fprintln(deps.Stderr, "error: no helpset files matched")
		return helpview.Errorf(helpview.ENOTFOUND, "no helpset files matched")
	}
	if c.Name != "" && len(paths) > 1 {
		fmt.Fprintln(deps.Stderr, "error: --name requires a single helpset file")
		return helpview.Errorf(helpview.EINVALID, "--name requires a single helpset file")
	}

	for _, path := range paths {
		manual, err := c.register(deps, path)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s: %s\n", path, helpview.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stdout, "Added manual %q (%s)\n", manual.Name, manual.ID)
	}
	return nil
}

// register validates the helpset at path and records it as a manual.
func (c *AddCmd) register(deps *Dependencies, path string) (*helpview.Manual, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(abs)
	if err != nil {
		return nil, err
	}

	hs, err := deps.Decoder.DecodeHelpset(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	name := c.Name
	if name == "" {
		name = hs.Title
	}
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(abs), filepath.Ext(abs))
	}

	manual := &helpview.Manual{
		Name:       name,
		ConfigPath: abs,
		Checksum:   fs.Checksum(data),
	}
	if err := deps.Manuals.CreateManual(deps.Ctx, manual); err != nil {
		return nil, err
	}
	return manual, nil
}

// expandPaths expands glob patterns. Plain paths are kept as given even if
// they do not exist so that the read error names them.
func expandPaths(patterns []string) ([]string, error) {
	var paths []string
	for _, pattern := range patterns {
		if !strings.ContainsAny(pattern, "*?[{") {
			paths = append(paths, pattern)
			continue
		}
		matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, helpview.Errorf(helpview.EINVALID, "invalid pattern %q: %v", pattern, err)
		}
		slices.Sort(matches)
		paths = append(paths, matches...)
	}
	return slices.Compact(paths), nil
}
