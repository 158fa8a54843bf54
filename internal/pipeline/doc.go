// Package pipeline runs the full department-to-chart flow.
//
// Each call starts from scratch: build the slug, fetch the page, extract the table,
// reshape the rows, compute the baseline and select a university. Nothing is cached
// between calls, so every invocation hits the ranking site once.
package pipeline
