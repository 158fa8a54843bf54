package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/pfrederiksen/rank-trends/internal/config"
	"github.com/pfrederiksen/rank-trends/internal/logger"
	"github.com/pfrederiksen/rank-trends/internal/ranking"
	"github.com/pfrederiksen/rank-trends/internal/scraper"
)

// DepartmentNotFoundMessage is shown to users when the department page has no table.
const DepartmentNotFoundMessage = "The specified department could not be found. Please check the name and try again."

var (
	// ErrDepartmentNotFound is returned when the department page has no ranking table.
	ErrDepartmentNotFound = errors.New("department not found")

	// ErrNoRecords is returned when the table exists but no row has any rank.
	ErrNoRecords = errors.New("ranking table has no usable rows")
)

// SelectionError reports a university that is not in the table, with the closest names.
type SelectionError struct {
	University  string
	Suggestions []string
}

func (e *SelectionError) Error() string {
	msg := fmt.Sprintf("university %q not found in table", e.University)
	if len(e.Suggestions) > 0 {
		msg += "; did you mean: " + strings.Join(e.Suggestions, ", ")
	}
	return msg
}

func (e *SelectionError) Unwrap() error {
	return ranking.ErrUniversityNotFound
}

// RowFetcher fetches the ranking rows for a department and reports the URL used.
type RowFetcher interface {
	FetchRows(ctx context.Context, department string) (string, []ranking.Row, error)
}

// Table is the reshaped ranking table for one department plus its baseline.
type Table struct {
	Department   string            `json:"department"`
	URL          string            `json:"url"`
	Records      []*ranking.Record `json:"records"`
	Baseline     ranking.Baseline  `json:"baseline"`
	BaselineName string            `json:"baseline_name"`
}

// Pipeline wires a row fetcher to the ranking model.
type Pipeline struct {
	fetcher RowFetcher
	marker  string
	limit   int
}

// New creates a Pipeline. A nil cfg uses config defaults.
func New(fetcher RowFetcher, cfg *config.Config) *Pipeline {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	return &Pipeline{
		fetcher: fetcher,
		marker:  cfg.Marker,
		limit:   cfg.BaselineLimit,
	}
}

// NewScraper builds the default scraper-backed fetcher from cfg.
func NewScraper(cfg *config.Config) *scraper.Scraper {
	return scraper.NewWithOptions(scraper.Options{
		BaseURL:   cfg.BaseURL,
		MaxRows:   cfg.MaxRows,
		Timeout:   cfg.Timeout,
		UserAgent: cfg.UserAgent,
	})
}

// Load fetches and reshapes the table for department and computes its baseline.
// Run metrics are reset first, so they only describe this load.
func (p *Pipeline) Load(ctx context.Context, department string) (*Table, error) {
	logger.ResetMetrics()
	start := time.Now()
	defer func() {
		logger.RecordTiming("pipeline.load", time.Since(start))
	}()

	pageURL, rows, err := p.fetcher.FetchRows(ctx, department)
	if err != nil {
		if errors.Is(err, scraper.ErrTableNotFound) {
			return nil, fmt.Errorf("%w: %s (%s): %w", ErrDepartmentNotFound, department, pageURL, err)
		}
		logger.Error("fetch failed", logger.Fields{
			"department": department,
			"url":        pageURL,
		}, err)
		return nil, fmt.Errorf("loading %s: %w", department, err)
	}

	records := ranking.Reshape(rows)
	baseline := ranking.Aggregate(records, p.marker, p.limit)

	logger.SetGauge("records", float64(len(records)))
	logger.AddCounter("rows.dropped", int64(len(rows)-len(records)))
	logger.Info("loaded ranking table", logger.Fields{
		"department": department,
		"url":        pageURL,
		"rows":       len(rows),
		"records":    len(records),
	})

	return &Table{
		Department:   department,
		URL:          pageURL,
		Records:      records,
		Baseline:     baseline,
		BaselineName: ranking.BaselineName(p.marker, p.limit),
	}, nil
}

// Run loads the department table and returns the chart for university.
// An empty university selects the first record in table order.
func (p *Pipeline) Run(ctx context.Context, department, university string) (*ranking.Chart, error) {
	table, err := p.Load(ctx, department)
	if err != nil {
		return nil, err
	}
	return table.Chart(university)
}

// Chart selects university from the table and pairs it with the baseline.
func (t *Table) Chart(university string) (*ranking.Chart, error) {
	if len(t.Records) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoRecords, t.URL)
	}

	if university == "" {
		university = t.Records[0].University
	}

	selected, err := ranking.Select(t.Records, university)
	if err != nil {
		return nil, &SelectionError{
			University:  university,
			Suggestions: ranking.Suggest(t.Records, university, 3),
		}
	}

	return ranking.NewChart(selected, t.Baseline, t.BaselineName), nil
}
