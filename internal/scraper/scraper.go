package scraper

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"github.com/pfrederiksen/rank-trends/internal/logger"
	"github.com/pfrederiksen/rank-trends/internal/ranking"
	"github.com/pfrederiksen/rank-trends/internal/slug"
)

// MaxRows is the default number of data rows read after the header row.
const MaxRows = 50

var (
	// ErrTableNotFound is returned when the page has no table element.
	ErrTableNotFound = errors.New("ranking table not found")

	// ErrFetch wraps network-level failures (DNS, connection refused, timeouts).
	ErrFetch = errors.New("fetching page")
)

// Options configures a Scraper. Zero values keep the client defaults.
type Options struct {
	BaseURL string
	MaxRows int
	Timeout time.Duration
	// UserAgent replaces resty's default User-Agent when non-empty.
	UserAgent string
}

// Scraper fetches ranking pages and extracts their rows.
type Scraper struct {
	client  *resty.Client
	baseURL string
	maxRows int
}

// New creates a Scraper for the default site.
func New() *Scraper {
	return NewWithOptions(Options{})
}

// NewWithOptions creates a Scraper from opts.
func NewWithOptions(opts Options) *Scraper {
	client := resty.New()
	if opts.Timeout > 0 {
		client.SetTimeout(opts.Timeout)
	}
	if opts.UserAgent != "" {
		client.SetHeader("User-Agent", opts.UserAgent)
	}

	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = slug.DefaultBaseURL
	}
	maxRows := opts.MaxRows
	if maxRows <= 0 {
		maxRows = MaxRows
	}

	return &Scraper{
		client:  client,
		baseURL: baseURL,
		maxRows: maxRows,
	}
}

// URL returns the ranking page URL for a department.
func (s *Scraper) URL(department string) string {
	return slug.URL(s.baseURL, department)
}

// Fetch performs one GET and returns the body regardless of status code.
// Only network-level failures are errors.
func (s *Scraper) Fetch(ctx context.Context, pageURL string) ([]byte, error) {
	start := time.Now()
	resp, err := s.client.R().SetContext(ctx).Get(pageURL)
	logger.RecordTiming("fetch", time.Since(start))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetch, err)
	}

	fields := logger.Fields{
		"url":    pageURL,
		"status": resp.StatusCode(),
		"bytes":  len(resp.Body()),
	}
	if !resp.IsSuccess() {
		logger.Warn("unexpected status code, parsing body anyway", fields)
	} else {
		logger.Debug("fetched page", fields)
	}

	return resp.Body(), nil
}

// FetchRows fetches the department page and extracts its ranking rows.
// It returns the URL used alongside the rows so callers can report it.
func (s *Scraper) FetchRows(ctx context.Context, department string) (string, []ranking.Row, error) {
	pageURL := s.URL(department)

	body, err := s.Fetch(ctx, pageURL)
	if err != nil {
		return pageURL, nil, err
	}

	rows, err := ExtractRows(bytes.NewReader(body), s.maxRows)
	if err != nil {
		return pageURL, nil, err
	}
	return pageURL, rows, nil
}

// ExtractRows reads the first table in r and returns up to maxRows rows after
// the header row. Rows with fewer than two cells are skipped but still count
// toward maxRows.
func ExtractRows(r io.Reader, maxRows int) ([]ranking.Row, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	table := doc.Find("table").First()
	if table.Length() == 0 {
		return nil, ErrTableNotFound
	}

	if maxRows <= 0 {
		maxRows = MaxRows
	}

	trs := table.Find("tr")
	rows := make([]ranking.Row, 0, maxRows)

	trs.EachWithBreak(func(i int, tr *goquery.Selection) bool {
		// header
		if i == 0 {
			return true
		}
		if i > maxRows {
			return false
		}

		cells := tr.Find("td")
		if cells.Length() < 2 {
			logger.Debug("skipping malformed row", logger.Fields{
				"row":   i,
				"cells": cells.Length(),
			})
			logger.IncrCounter("rows.skipped")
			return true
		}

		rows = append(rows, ranking.Row{
			University: strings.TrimSpace(cells.First().Text()),
			RawRanks:   strings.TrimSpace(cells.Last().Text()),
		})
		return true
	})

	logger.AddCounter("rows.scraped", int64(len(rows)))
	return rows, nil
}
