package ranking

import (
	"fmt"
	"sort"

	"github.com/antzucaro/matchr"
)

// Select returns the first record whose university name equals name exactly.
func Select(records []*Record, name string) (*Record, error) {
	for _, rec := range records {
		if rec.University == name {
			return rec, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUniversityNotFound, name)
}

// Names returns the university names in table order.
func Names(records []*Record) []string {
	names := make([]string, len(records))
	for i, rec := range records {
		names[i] = rec.University
	}
	return names
}

// Suggest returns up to n university names most similar to name, best first.
func Suggest(records []*Record, name string, n int) []string {
	type candidate struct {
		name       string
		similarity float64
	}

	candidates := make([]candidate, 0, len(records))
	for _, rec := range records {
		similarity := matchr.JaroWinkler(name, rec.University, false)
		if similarity > 0 {
			candidates = append(candidates, candidate{rec.University, similarity})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].similarity > candidates[j].similarity
	})

	if n > 0 && len(candidates) > n {
		candidates = candidates[:n]
	}

	names := make([]string, len(candidates))
	for i, c := range candidates {
		names[i] = c.name
	}
	return names
}
