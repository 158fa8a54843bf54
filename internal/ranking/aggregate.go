package ranking

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	// DefaultMarker selects state universities ("Devlet") for the baseline.
	DefaultMarker = "Devlet"
	// DefaultLimit caps how many matching universities enter the baseline.
	DefaultLimit = 10
)

// Baseline maps a year label to the mean rank of the baseline subset.
// A nil mean means no university in the subset had a rank that year.
type Baseline map[string]*float64

// dotless ı and the combining dot above İ collapse onto plain i
var dotFolder = strings.NewReplacer("ı", "i", "\u0307", "")

// foldTurkish lowercases s with Turkish rules so that I, ı, İ and i compare equal.
func foldTurkish(lower cases.Caser, s string) string {
	return dotFolder.Replace(lower.String(s))
}

// Filter returns the records whose university name contains marker, compared
// case-insensitively, in table order.
func Filter(records []*Record, marker string) []*Record {
	lower := cases.Lower(language.Turkish)
	needle := foldTurkish(lower, marker)

	matched := make([]*Record, 0)
	for _, rec := range records {
		if strings.Contains(foldTurkish(lower, rec.University), needle) {
			matched = append(matched, rec)
		}
	}
	return matched
}

// Aggregate averages ranks per year over the first limit records matching marker.
// A non-positive limit means no cap.
func Aggregate(records []*Record, marker string, limit int) Baseline {
	subset := Filter(records, marker)
	if limit > 0 && len(subset) > limit {
		subset = subset[:limit]
	}

	baseline := make(Baseline, len(Years))
	for _, year := range Years {
		var sum float64
		count := 0
		for _, rec := range subset {
			if v := rec.Rank(year); v != nil {
				sum += float64(*v)
				count++
			}
		}
		if count == 0 {
			baseline[year] = nil
			continue
		}
		mean := sum / float64(count)
		baseline[year] = &mean
	}
	return baseline
}
