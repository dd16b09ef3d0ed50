package main

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/fwojciec/helpview"
	"github.com/fwojciec/helpview/browse"
	"github.com/fwojciec/helpview/search"
)

const shellHelp = `Commands:
  open <target|url>     display a page
  follow <n>            follow link n of the current page
  back, forward, home   navigate
  toc                   print the table of contents
  index                 print the index with cross-references
  search [-c] [-w] [-r] [-f] <query>
                        search in the background; a new search replaces it
  find <text>           search document text for <text>
  cancel                stop the running search
  quit                  leave the shell`

// Run executes the shell command.
func (c *ShellCmd) Run(deps *Dependencies) error {
	sh := &shell{
		deps:    deps,
		browser: browse.NewBrowser(deps.Library, deps.Renderer),
		runner:  search.NewRunner(deps.Searcher),
	}

	sh.println(titleStyle.Render(deps.Config.Title) + "  (type 'help' for commands)")

	scanner := bufio.NewScanner(deps.Stdin)
	for {
		sh.print("> ")
		if !scanner.Scan() {
			sh.println("")
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if quit := sh.exec(line); quit {
			break
		}
	}

	// A search still in flight reports its results before the shell exits.
	sh.wg.Wait()
	return scanner.Err()
}

// shell is an interactive session with its own navigation history.
type shell struct {
	deps    *Dependencies
	browser *browse.Browser
	runner  *search.Runner
	wg      sync.WaitGroup

	mu      sync.Mutex // guards output, page and pattern
	page    *helpview.Page
	pattern *search.Pattern
}

func (sh *shell) print(s string) {
	sh.mu.Lock()
	defer sh.mu.Unlock()
	fmt.Fprint(sh.deps.Stdout, s)
}

func (sh *shell) println(s string) {
	sh.mu.Lock()
	defer sh.mu.Unlock()
	fmt.Fprintln(sh.deps.Stdout, s)
}

func (sh *shell) errorf(err error) {
	sh.println("error: " + helpview.ErrorMessage(err))
}

// exec runs one command line and reports whether the shell should exit.
func (sh *shell) exec(line string) bool {
	cmd, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)
	ctx := sh.deps.Ctx

	switch cmd {
	case "quit", "exit":
		return true
	case "help":
		sh.println(shellHelp)
	case "open":
		if arg == "" {
			sh.println("usage: open <target|url>")
			return false
		}
		sh.show(openTarget(ctx, sh.browser, arg))
	case "follow":
		sh.follow(arg)
	case "back":
		page, err := sh.browser.Back(ctx)
		sh.showOr(page, err, "Already at the first page.")
	case "forward":
		page, err := sh.browser.Forward(ctx)
		sh.showOr(page, err, "Already at the last page.")
	case "home":
		sh.show(sh.browser.Home(ctx))
	case "toc":
		sh.mu.Lock()
		printTOC(sh.deps.Stdout, sh.deps.Library.TOC(), 0)
		sh.mu.Unlock()
	case "index":
		sh.mu.Lock()
		printIndex(sh.deps.Stdout, browse.FlattenIndex(sh.deps.Library.Index()), true)
		sh.mu.Unlock()
	case "search":
		query, flags := parseSearchArgs(arg, sh.deps.Config.Search.Flags())
		sh.startSearch(query, flags)
	case "find":
		// Searching for selected text: document text, ignoring case, literally.
		sh.startSearch(arg, helpview.SearchFlags{FullText: true})
	case "cancel":
		sh.runner.Cancel()
	default:
		sh.println(fmt.Sprintf("unknown command %q (type 'help' for commands)", cmd))
	}
	return false
}

func (sh *shell) follow(arg string) {
	sh.mu.Lock()
	page := sh.page
	sh.mu.Unlock()

	n, err := strconv.Atoi(arg)
	if err != nil || page == nil || n < 1 || n > len(page.Links) {
		sh.println("usage: follow <n> with n a link number of the current page")
		return
	}
	sh.show(sh.browser.Follow(sh.deps.Ctx, helpview.Location(page.Links[n-1].Target)))
}

// show prints page, highlighting matches of the last search.
func (sh *shell) show(page *helpview.Page, err error) {
	if err != nil {
		sh.errorf(err)
		return
	}
	sh.mu.Lock()
	defer sh.mu.Unlock()
	sh.page = page
	printPage(sh.deps.Stdout, page, sh.pattern)
}

// showOr is show for navigation that may have no page to display.
func (sh *shell) showOr(page *helpview.Page, err error, none string) {
	if err == nil && page == nil {
		sh.println(none)
		return
	}
	sh.show(page, err)
}

// startSearch supersedes any running search with a new one. Results are
// printed when the run completes unless another search replaced it.
func (sh *shell) startSearch(query string, flags helpview.SearchFlags) {
	pattern, err := search.Compile(query, flags)
	if err != nil {
		sh.errorf(err)
		return
	}

	gen, events := sh.runner.Start(sh.deps.Ctx, sh.deps.Library.Catalog(), query, flags)
	sh.wg.Add(1)
	go func() {
		defer sh.wg.Done()
		for ev := range events {
			if !ev.Final {
				continue
			}
			sh.mu.Lock()
			if sh.runner.Current(gen) {
				if ev.Err != nil {
					fmt.Fprintf(sh.deps.Stdout, "error: %s\n", helpview.ErrorMessage(ev.Err))
				} else {
					fmt.Fprintf(sh.deps.Stdout, "Results for %q:\n", query)
					printResults(sh.deps.Stdout, ev.Results)
					sh.pattern = pattern
				}
			}
			sh.mu.Unlock()
		}
	}()
}

// parseSearchArgs splits leading option letters from the query. Options
// enable flags on top of defaults.
func parseSearchArgs(arg string, defaults helpview.SearchFlags) (string, helpview.SearchFlags) {
	flags := defaults
	rest := arg
	for {
		word, tail, _ := strings.Cut(rest, " ")
		switch word {
		case "-c":
			flags.CaseSensitive = true
		case "-w":
			flags.WholeWord = true
		case "-r":
			flags.Regex = true
		case "-f":
			flags.FullText = true
		default:
			return rest, flags
		}
		rest = strings.TrimLeft(tail, " ")
	}
}
