package doctor

import (
	"errors"
	"fmt"
	"strings"

	"github.com/raphi011/nixpm/internal/nix"
	"github.com/sahilm/fuzzy"
)

// attrSource implements fuzzy.Source for attribute paths.
type attrSource []string

func (s attrSource) String(i int) string { return s[i] }
func (s attrSource) Len() int            { return len(s) }

// explainParseError renders a parse error. A missing attribute gets the
// closest attribute that is bound in src, if any.
func explainParseError(src string, err error) string {
	var attrErr *nix.AttributeError
	if !errors.As(err, &attrErr) {
		return err.Error()
	}
	names, listErr := nix.Attributes(src)
	if listErr != nil {
		return err.Error()
	}
	if s := suggestAttribute(attrErr.Attribute, names); s != "" {
		return fmt.Sprintf("%s (did you mean %q?)", err, s)
	}
	return err.Error()
}

// suggestAttribute picks the name closest to want.
//
// Names containing want as a subsequence are preferred (want is missing a
// character the file has), then names that are a subsequence of want (the
// file is missing one). Parents of want such as "homebrew" for
// "homebrew.brews" are never suggested.
func suggestAttribute(want string, names []string) string {
	var candidates attrSource
	for _, n := range names {
		if n == want || strings.HasPrefix(want, n+".") {
			continue
		}
		candidates = append(candidates, n)
	}
	if len(candidates) == 0 {
		return ""
	}

	if matches := fuzzy.FindFrom(want, candidates); len(matches) > 0 {
		return matches[0].Str
	}

	best, bestScore := "", 0
	for _, n := range candidates {
		// too short to be a near miss
		if 2*len(n) < len(want) {
			continue
		}
		matches := fuzzy.Find(n, []string{want})
		if len(matches) == 0 {
			continue
		}
		if len(n) > len(best) || (len(n) == len(best) && matches[0].Score > bestScore) {
			best, bestScore = n, matches[0].Score
		}
	}
	return best
}
