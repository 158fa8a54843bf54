package ranking

import (
	"strings"
)

// NewRecord splits a row's raw rank text on newlines and assigns the tokens to
// Years by position. Missing tokens become nil; surplus tokens are ignored.
func NewRecord(row Row) *Record {
	tokens := strings.Split(row.RawRanks, "\n")
	ranks := make(map[string]*int, len(Years))
	for i, year := range Years {
		if i < len(tokens) {
			ranks[year] = ParseRank(tokens[i])
		} else {
			ranks[year] = nil
		}
	}
	return &Record{
		University: row.University,
		Ranks:      ranks,
	}
}

// Reshape converts scraped rows into records, preserving scrape order and dropping
// records without any rank.
func Reshape(rows []Row) []*Record {
	records := make([]*Record, 0, len(rows))
	for _, row := range rows {
		rec := NewRecord(row)
		if rec.IsEmpty() {
			continue
		}
		records = append(records, rec)
	}
	return records
}
