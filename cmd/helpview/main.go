package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/helpview"
	"github.com/fwojciec/helpview/browse"
	"github.com/fwojciec/helpview/etree"
	"github.com/fwojciec/helpview/fs"
	"github.com/fwojciec/helpview/goquery"
	"github.com/fwojciec/helpview/htmltomarkdown"
	hvhttp "github.com/fwojciec/helpview/http"
	"github.com/fwojciec/helpview/search"
	hvslog "github.com/fwojciec/helpview/slog"
	"github.com/fwojciec/helpview/sqlite"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Empty means the config file value or the default.
	DBPath string

	// Config file path. Set before calling Run().
	ConfigPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	ManualService  helpview.ManualService
	HistoryService helpview.HistoryService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath:     os.Getenv("HELPVIEW_DB"),
		ConfigPath: defaultConfigPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// libraryCommands need the registered manuals loaded into a library.
var libraryCommands = []string{"search", "open", "back", "forward", "home", "toc", "index", "shell"}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	config, err := LoadConfig(m.ConfigPath)
	if err != nil {
		fmt.Fprintf(stderr, "Hint: Set HELPVIEW_CONFIG to use a different config file\n")
		return fmt.Errorf("failed to load config %q: %w", m.ConfigPath, err)
	}

	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  stdin,
		Stdout: stdout,
		Stderr: stderr,
		Config: config,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("helpview"),
		kong.Description("Browse and search local help manuals."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'helpview --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd = kongCtx.Command()

	deps.Logger = newLogger(stderr, cli.Verbose, config.LogLevel)

	dbPath := m.DBPath
	if dbPath == "" {
		dbPath = config.DBPath
	}
	if dbPath == "" {
		dbPath = filepath.Join(dataDir(), "helpview.db")
	}

	m.DB = sqlite.NewDB(dbPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set HELPVIEW_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", dbPath, err)
	}
	defer m.Close()

	m.ManualService = sqlite.NewManualService(m.DB)
	m.HistoryService = sqlite.NewHistoryService(m.DB)
	deps.Manuals = m.ManualService
	deps.History = m.HistoryService
	deps.Decoder = etree.NewDecoder()

	if slices.Contains(libraryCommands, commandName(cmd)) {
		lib, err := openLibrary(ctx, m.ManualService, config, deps.Logger)
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Run 'helpview list' to check registered manuals")
			return fmt.Errorf("failed to load manuals: %w", err)
		}
		deps.Library = lib
		resolver := hvslog.NewLoggingContentResolver(lib, deps.Logger)
		deps.Searcher = hvslog.NewLoggingSearcher(search.NewEngine(resolver), deps.Logger)
		deps.Renderer = goquery.NewRenderer(htmltomarkdown.NewConverter())
	}

	return kongCtx.Run(deps)
}

// commandName returns the command word of a kong command path such as
// "open <target>".
func commandName(path string) string {
	name, _, _ := strings.Cut(path, " ")
	return name
}

// newLogger writes to stderr when verbose output is requested or a log
// level is configured. Otherwise log records are discarded.
func newLogger(stderr io.Writer, verbose bool, level string) *slog.Logger {
	if verbose {
		return slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	if lvl, ok := parseLogLevel(level); ok {
		return slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: lvl}))
	}
	return slog.New(slog.DiscardHandler)
}

// openLibrary loads every registered manual into a new library.
func openLibrary(ctx context.Context, manuals helpview.ManualService, config *Config, logger *slog.Logger) (lib *browse.Library, err error) {
	var list []*helpview.Manual
	defer func(begin time.Time) {
		logger.Info("library load",
			"manuals", len(list),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())

	list, err = manuals.FindManuals(ctx, helpview.ManualFilter{})
	if err != nil {
		return nil, err
	}

	lib = newLibrary(config)

	sources := make([]browse.Source, 0, len(list))
	for _, manual := range list {
		base, err := fs.BaseURL(manual.ConfigPath)
		if err != nil {
			return nil, fmt.Errorf("manual %s: %w", manual.Name, err)
		}
		path := manual.ConfigPath
		sources = append(sources, browse.Source{
			Name: manual.Name,
			Base: base,
			Open: func() (io.ReadCloser, error) { return os.Open(path) },
		})
	}

	loader := &browse.Loader{Decoder: etree.NewDecoder(), Concurrency: config.LoadConcurrency}
	if err := loader.Load(ctx, lib, sources); err != nil {
		return nil, err
	}
	return lib, nil
}

// newLibrary creates an empty library that reads file, http and https
// locations.
func newLibrary(config *Config) *browse.Library {
	lib := browse.NewLibrary()
	lib.RegisterOpener("file", fs.NewOpener())
	web := hvhttp.NewOpener(hvhttp.WithTimeout(config.HTTPTimeout.Duration))
	lib.RegisterOpener("http", web)
	lib.RegisterOpener("https", web)
	return lib
}
