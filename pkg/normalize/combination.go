package normalize

import (
	"maps"
	"slices"
	"strings"

	"github.com/hazyhaar/unemph/pkg/textmatch"
)

// Combinations returns every de-emphasized spelling of token, sorted.
//
// Each run of three or more identical characters is first cut to two. Then,
// for each run in turn, the first remaining double of that character is cut
// to one, and from that reduction every run from the current one onward is
// cut once more. Replacements hit the first occurrence only, so later passes
// see the partially reduced string.
//
// A token without runs yields itself, or its cleaned stem when stem is set.
func Combinations(token string, stem bool) []string {
	return combinations(token, Clean(token), stem)
}

func combinations(token, cleaned string, stem bool) []string {
	runs := FindRuns(cleaned)
	if len(runs) == 0 {
		if stem {
			return []string{textmatch.Stem(cleaned)}
		}
		return []string{token}
	}

	set := make(map[string]struct{})
	add := func(s string) {
		if stem {
			s = textmatch.Stem(s)
		}
		set[s] = struct{}{}
	}

	totwo := cleaned
	for _, r := range runs {
		totwo = strings.Replace(totwo, r.Text, r.Clamp(2), 1)
	}
	add(totwo)

	for i, r := range runs {
		reduction := collapseDouble(totwo, r)
		add(reduction)
		for _, next := range runs[i:] {
			add(collapseDouble(reduction, next))
		}
	}

	return slices.Sorted(maps.Keys(set))
}

// collapseDouble replaces the first double of the run's character in s with
// a single character.
func collapseDouble(s string, r Run) string {
	double := r.Clamp(2)
	return strings.Replace(s, double, r.Clamp(1), 1)
}
