package ranking

import (
	"errors"
	"strconv"
	"strings"
)

// Years lists the year labels in the order the ranking page emits them (newest first).
var Years = []string{"2023", "2022", "2021", "2020"}

// ChartYears lists the year labels in presentation order (oldest first).
var ChartYears = []string{"2020", "2021", "2022", "2023"}

// ErrUniversityNotFound is returned when a selection does not match any record.
var ErrUniversityNotFound = errors.New("university not found")

// Row is a single scraped table row before any cleanup.
type Row struct {
	University string `json:"university"`
	RawRanks   string `json:"raw_ranks"` // newline-separated tokens, newest year first
}

// Record holds one university's rank per year. A nil rank means no value.
type Record struct {
	University string          `json:"university"`
	Ranks      map[string]*int `json:"ranks"`
}

// Rank returns the rank for a year label, or nil if absent.
func (r *Record) Rank(year string) *int {
	if r == nil || r.Ranks == nil {
		return nil
	}
	return r.Ranks[year]
}

// Latest returns the newest rank that has a value, or nil.
func (r *Record) Latest() *int {
	for _, year := range Years {
		if v := r.Rank(year); v != nil {
			return v
		}
	}
	return nil
}

// IsEmpty reports whether no year has a value.
func (r *Record) IsEmpty() bool {
	for _, year := range Years {
		if r.Rank(year) != nil {
			return false
		}
	}
	return true
}

// ParseRank strips '.' thousand separators and parses the token as an integer.
// Empty or unparsable tokens yield nil.
func ParseRank(token string) *int {
	cleaned := strings.ReplaceAll(strings.TrimSpace(token), ".", "")
	if cleaned == "" {
		return nil
	}
	n, err := strconv.Atoi(cleaned)
	if err != nil {
		return nil
	}
	return &n
}
