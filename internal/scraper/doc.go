// Package scraper fetches universitego.com ranking pages and extracts the
// success-rank table.
//
// Fetching is a single GET with no retry. The response body is handed to the
// extractor whatever the status code, so an error page simply ends up without a
// table. The extractor reads the first table in the document, skips its header row
// and returns the university name (first cell) and raw rank text (last cell) of up
// to MaxRows following rows.
package scraper
