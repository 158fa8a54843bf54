package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-runewidth"
	"github.com/nao1215/markdown"
	"github.com/pfrederiksen/rank-trends/internal/ranking"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText     OutputFormat = "text"
	FormatJSON     OutputFormat = "json"
	FormatMarkdown OutputFormat = "markdown"
)

const noValue = "-"

// ChartResult is the output of the compare command
type ChartResult struct {
	CheckedAt  time.Time      `json:"checked_at"`
	Department string         `json:"department"`
	URL        string         `json:"url"`
	Chart      *ranking.Chart `json:"chart"`
}

// ListResult is the output of the list command
type ListResult struct {
	CheckedAt    time.Time         `json:"checked_at"`
	Department   string            `json:"department"`
	URL          string            `json:"url"`
	Marker       string            `json:"marker"`
	Universities []*ranking.Record `json:"universities"`
	Baseline     ranking.Baseline  `json:"baseline"`
	BaselineName string            `json:"baseline_name"`
}

// WriteChart writes a compare result in the specified format
func WriteChart(w io.Writer, result *ChartResult, format OutputFormat) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, result)
	case FormatText:
		return writeChartText(w, result)
	case FormatMarkdown:
		return writeChartMarkdown(w, result)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// WriteList writes a list result in the specified format
func WriteList(w io.Writer, result *ListResult, format OutputFormat) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, result)
	case FormatText:
		return writeListText(w, result)
	case FormatMarkdown:
		return writeListMarkdown(w, result)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// writeJSON outputs results as JSON
func writeJSON(w io.Writer, result interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

// formatRank renders a rank with Turkish thousand separators ("12.345").
func formatRank(v *float64) string {
	if v == nil {
		return noValue
	}
	s := strconv.FormatInt(int64(*v+0.5), 10)
	if len(s) <= 3 {
		return s
	}

	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

func formatIntRank(v *int) string {
	if v == nil {
		return noValue
	}
	f := float64(*v)
	return formatRank(&f)
}

func chartRows(chart *ranking.Chart) [][]string {
	rows := make([][]string, len(chart.Selected.Points))
	for i, p := range chart.Selected.Points {
		var base *float64
		if i < len(chart.Baseline.Points) {
			base = chart.Baseline.Points[i].Value
		}
		rows[i] = []string{p.Year, formatRank(p.Value), formatRank(base)}
	}
	return rows
}

func writeTitle(w io.Writer, title string) {
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, strings.Repeat("=", runewidth.StringWidth(title)))
}

func newTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)
	// keep university names in their scraped casing
	t.Style().Format.Header = text.FormatDefault
	t.Style().Format.Footer = text.FormatDefault
	return t
}

// writeChartText outputs the comparison as a human-readable table
func writeChartText(w io.Writer, result *ChartResult) error {
	chart := result.Chart
	writeTitle(w, chart.Title)
	fmt.Fprintf(w, "Department: %s\nSource: %s\n\n", result.Department, result.URL)

	t := newTable(w)
	t.AppendHeader(table.Row{chart.XAxis, chart.Selected.Name, chart.Baseline.Name})
	for _, row := range chartRows(chart) {
		t.AppendRow(table.Row{row[0], row[1], row[2]})
	}
	t.Render()

	return nil
}

// writeListText outputs the university list as a human-readable table
func writeListText(w io.Writer, result *ListResult) error {
	writeTitle(w, fmt.Sprintf("%s: %d universities", result.Department, len(result.Universities)))
	fmt.Fprintf(w, "Source: %s\n\n", result.URL)

	t := newTable(w)
	header := table.Row{"#", "University"}
	for _, year := range ranking.ChartYears {
		header = append(header, year)
	}
	t.AppendHeader(header)

	for i, rec := range result.Universities {
		row := table.Row{i + 1, rec.University}
		for _, year := range ranking.ChartYears {
			row = append(row, formatIntRank(rec.Rank(year)))
		}
		t.AppendRow(row)
	}

	footer := table.Row{"", result.BaselineName}
	for _, year := range ranking.ChartYears {
		footer = append(footer, formatRank(result.Baseline[year]))
	}
	t.AppendFooter(footer)
	t.Render()

	return nil
}

// writeChartMarkdown outputs the comparison as a Markdown document
func writeChartMarkdown(w io.Writer, result *ChartResult) error {
	chart := result.Chart
	md := markdown.NewMarkdown(w)

	md.H1(chart.Title)
	md.PlainText("")
	md.PlainText(fmt.Sprintf("Department: %s  ", result.Department))
	md.PlainText(fmt.Sprintf("Source: <%s>", result.URL))
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{chart.XAxis, chart.Selected.Name, chart.Baseline.Name},
		Rows:   chartRows(chart),
	})

	return md.Build()
}

// writeListMarkdown outputs the university list as a Markdown document
func writeListMarkdown(w io.Writer, result *ListResult) error {
	md := markdown.NewMarkdown(w)

	md.H1(result.Department)
	md.PlainText("")
	md.PlainText(fmt.Sprintf("Source: <%s>", result.URL))
	md.PlainText("")

	header := append([]string{"University"}, ranking.ChartYears...)
	rows := make([][]string, 0, len(result.Universities)+1)
	for _, rec := range result.Universities {
		row := []string{rec.University}
		for _, year := range ranking.ChartYears {
			row = append(row, formatIntRank(rec.Rank(year)))
		}
		rows = append(rows, row)
	}

	baseline := []string{"**" + result.BaselineName + "**"}
	for _, year := range ranking.ChartYears {
		baseline = append(baseline, formatRank(result.Baseline[year]))
	}
	rows = append(rows, baseline)

	md.Table(markdown.TableSet{Header: header, Rows: rows})

	return md.Build()
}
