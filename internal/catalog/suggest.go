package catalog

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Suggest returns up to max candidates closest to query by edit distance.
// Candidates further than a length-dependent limit are dropped.
func Suggest(query string, candidates []string, max int) []string {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" || max <= 0 {
		return nil
	}

	type scored struct {
		id   string
		dist int
	}
	var hits []scored
	for _, c := range candidates {
		d := levenshtein.ComputeDistance(query, strings.ToLower(c))
		if d > suggestLimit(len(c)) {
			continue
		}
		hits = append(hits, scored{id: c, dist: d})
	}

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].dist < hits[j].dist
	})

	out := make([]string, 0, max)
	for _, h := range hits {
		if len(out) == max {
			break
		}
		out = append(out, h.id)
	}
	return out
}

func suggestLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
