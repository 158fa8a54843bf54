// Package ranking provides the tabular model for scraped university success ranks.
//
// Rows scraped from a ranking page are reshaped into Records holding one optional
// rank per year. A Baseline averages those ranks over a filtered, capped subset of
// records (state universities by default), and a Chart pairs one selected record
// with the baseline in oldest-to-newest year order for presentation.
//
// Missing or unparsable ranks are represented by nil pointers and never count as
// zero in any computation.
package ranking
