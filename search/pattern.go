package search

import (
	"regexp"
	"strings"

	"github.com/fwojciec/helpview"
)

// wordBoundary is the regular expression word boundary assertion.
const wordBoundary = `\b`

// Pattern is a compiled search query.
type Pattern struct {
	literal string
	fold    bool
	re      *regexp.Regexp
}

// Compile turns a raw query and flags into a Pattern.
//
// Without Regex or WholeWord the query is matched as a literal substring,
// case-folded on both sides unless CaseSensitive is set. WholeWord wraps the
// unescaped query in word boundaries and always compiles it as a regular
// expression; when Regex is also set, a boundary the query already starts
// or ends with is not added again. Regex compiles the query as is.
//
// Returns EPATTERN if the query is not a valid regular expression.
func Compile(query string, flags helpview.SearchFlags) (*Pattern, error) {
	if !flags.Regex && !flags.WholeWord {
		p := &Pattern{literal: query, fold: !flags.CaseSensitive}
		if p.fold {
			p.literal = strings.ToLower(query)
		}
		return p, nil
	}

	expr := query
	if flags.WholeWord {
		if !flags.Regex || !strings.HasPrefix(expr, wordBoundary) {
			expr = wordBoundary + expr
		}
		if !flags.Regex || !strings.HasSuffix(expr, wordBoundary) {
			expr = expr + wordBoundary
		}
	}
	if !flags.CaseSensitive {
		expr = "(?i)" + expr
	}

	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, helpview.Errorf(helpview.EPATTERN, "invalid search pattern %q: %v", query, err)
	}
	return &Pattern{re: re}, nil
}

// Match reports whether the pattern occurs anywhere in s.
func (p *Pattern) Match(s string) bool {
	if p.re != nil {
		return p.re.MatchString(s)
	}
	if p.fold {
		return strings.Contains(strings.ToLower(s), p.literal)
	}
	return strings.Contains(s, p.literal)
}

// FindAllIndex returns the byte ranges of all non-overlapping matches in s.
func (p *Pattern) FindAllIndex(s string) [][]int {
	if p.re != nil {
		return p.re.FindAllStringIndex(s, -1)
	}
	if p.literal == "" {
		return nil
	}

	haystack := s
	if p.fold {
		haystack = strings.ToLower(s)
		// Lowering may change byte lengths outside ASCII; fall back to
		// a case-insensitive expression to keep offsets valid for s.
		if len(haystack) != len(s) {
			re := regexp.MustCompile("(?i)" + regexp.QuoteMeta(p.literal))
			return re.FindAllStringIndex(s, -1)
		}
	}

	var matches [][]int
	for offset := 0; offset <= len(haystack); {
		i := strings.Index(haystack[offset:], p.literal)
		if i < 0 {
			break
		}
		start := offset + i
		end := start + len(p.literal)
		matches = append(matches, []int{start, end})
		offset = end
	}
	return matches
}
