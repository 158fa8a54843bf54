// Package cli implements the command-line interface for rank-trends.
//
// The cli package provides the Cobra-based commands that stand in for the
// interactive front end: "compare" returns the chart data for one university
// against the baseline, and "list" shows the universities a selection can be made
// from. Output can be rendered as a text table, JSON or Markdown.
package cli
