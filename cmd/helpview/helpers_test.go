package main_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	main "github.com/fwojciec/helpview/cmd/helpview"
	"github.com/fwojciec/helpview/browse"
	"github.com/fwojciec/helpview/etree"
	"github.com/fwojciec/helpview/fs"
	"github.com/fwojciec/helpview/goquery"
	"github.com/fwojciec/helpview/search"
	"github.com/fwojciec/helpview/sqlite"
	"github.com/stretchr/testify/require"
)

const testHelpset = `<?xml version="1.0" encoding="UTF-8"?>
<configuration>
  <title>Printer Manual</title>
  <homeID>welcome</homeID>
  <documentMapping target="setup" url="pages/setup.html"/>
  <tocItem text="Welcome" target="welcome"/>
  <tocItem text="Setup" target="setup">
    <tocItem text="Paper" target="paper"/>
  </tocItem>
  <indexItem text="Toner" target="setup">
    <indexEntry text="Replacing toner" target="setup"/>
  </indexItem>
  <indexItem text="Paper jams" target="paper"/>
</configuration>`

var testPages = map[string]string{
	"welcome.html":     `<html><head><title>Welcome</title></head><body><h1>Welcome</h1><p>Start with <a href="pages/setup.html">printer setup</a>.</p></body></html>`,
	"pages/setup.html": `<html><head><title>Setup</title></head><body><p>Install the toner cartridge carefully.</p></body></html>`,
	"paper.html":       `<html><head><title>Paper</title></head><body><p>Load paper into the tray.</p></body></html>`,
}

// writeManual writes a helpset and its pages to a new directory and returns
// the helpset path.
func writeManual(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range testPages {
		path := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
	path := filepath.Join(dir, "helpset.xml")
	require.NoError(t, os.WriteFile(path, []byte(testHelpset), 0644))
	return path
}

// loadLibrary builds a library from the helpset at path.
func loadLibrary(t *testing.T, path string) *browse.Library {
	t.Helper()
	lib := browse.NewLibrary()
	lib.RegisterOpener("file", fs.NewOpener())

	base, err := fs.BaseURL(path)
	require.NoError(t, err)
	loader := &browse.Loader{Decoder: etree.NewDecoder()}
	require.NoError(t, loader.Load(context.Background(), lib, []browse.Source{{
		Name: "printer",
		Base: base,
		Open: func() (io.ReadCloser, error) { return os.Open(path) },
	}}))
	return lib
}

// testDeps returns dependencies wired to a loaded test manual, an in-memory
// database and plain-text page rendering.
func testDeps(t *testing.T) (*main.Dependencies, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()

	db := sqlite.NewDB(":memory:")
	require.NoError(t, db.Open())
	t.Cleanup(func() { db.Close() })

	lib := loadLibrary(t, writeManual(t))
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	deps := &main.Dependencies{
		Ctx:      context.Background(),
		Stdin:    &bytes.Buffer{},
		Stdout:   stdout,
		Stderr:   stderr,
		Config:   main.DefaultConfig(),
		Logger:   slog.New(slog.DiscardHandler),
		Manuals:  sqlite.NewManualService(db),
		History:  sqlite.NewHistoryService(db),
		Decoder:  etree.NewDecoder(),
		Library:  lib,
		Searcher: search.NewEngine(lib),
		Renderer: goquery.NewRenderer(nil),
	}
	return deps, stdout, stderr
}
