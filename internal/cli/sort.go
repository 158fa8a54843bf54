package cli

import (
	"sort"

	"github.com/pfrederiksen/rank-trends/internal/ranking"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortOrder represents the available sorting options
type SortOrder string

const (
	SortByTable SortOrder = "table"
	SortByName  SortOrder = "name"
	SortByRank  SortOrder = "rank"
)

// sortRecords returns a sorted copy of records; the table itself keeps scrape order.
func sortRecords(records []*ranking.Record, order SortOrder) []*ranking.Record {
	sorted := make([]*ranking.Record, len(records))
	copy(sorted, records)

	switch order {
	case SortByName:
		coll := collate.New(language.Turkish)
		sort.SliceStable(sorted, func(i, j int) bool {
			return coll.CompareString(sorted[i].University, sorted[j].University) < 0
		})
	case SortByRank:
		sort.SliceStable(sorted, func(i, j int) bool {
			return compareByRank(sorted[i], sorted[j])
		})
	}

	return sorted
}

// compareByRank orders by the newest available rank, best first.
// Records without any rank go last.
func compareByRank(i, j *ranking.Record) bool {
	ri, rj := i.Latest(), j.Latest()

	if ri != nil && rj != nil {
		return *ri < *rj
	}
	return ri != nil && rj == nil
}
