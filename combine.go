package etrie

import "sort"

// combine collapses a multiset of candidate matches produced by search
// into at most one Match per stored string, keeping the match with the
// fewest edits and breaking ties in favor of whichever was seen first.
// The result is sorted by stored string for deterministic output; callers
// must not otherwise depend on ordering.
func combine[V any](candidates []Match[V]) []Match[V] {
	best := make(map[string]Match[V], len(candidates))
	strings := make([]string, 0, len(candidates))
	for _, m := range candidates {
		existing, ok := best[m.String]
		if !ok {
			best[m.String] = m
			strings = append(strings, m.String)
			continue
		}
		if m.Edits < existing.Edits {
			best[m.String] = m
		}
	}
	sort.Strings(strings)
	result := make([]Match[V], 0, len(strings))
	for _, s := range strings {
		result = append(result, best[s])
	}
	return result
}
