package ranking

import (
	"fmt"
)

// Point is one year on a chart series. A nil Value leaves a gap in the line.
type Point struct {
	Year  string   `json:"year"`
	Value *float64 `json:"value"`
}

// Series is a named line on the comparison chart.
type Series struct {
	Name   string  `json:"name"`
	Points []Point `json:"points"`
}

// Chart is the comparison handed to the presentation layer: the selected
// university against the baseline, both in ChartYears order.
type Chart struct {
	Title    string `json:"title"`
	XAxis    string `json:"x_axis"`
	YAxis    string `json:"y_axis"`
	Selected Series `json:"selected"`
	Baseline Series `json:"baseline"`
}

// BaselineName describes a baseline built from the first limit universities matching marker.
func BaselineName(marker string, limit int) string {
	if limit > 0 {
		return fmt.Sprintf("Top %d %s Üniversiteleri Ortalama Sıralaması", limit, marker)
	}
	return fmt.Sprintf("%s Üniversiteleri Ortalama Sıralaması", marker)
}

// NewChart builds the comparison chart for a selected record.
func NewChart(selected *Record, baseline Baseline, baselineName string) *Chart {
	sel := Series{Name: selected.University, Points: make([]Point, 0, len(ChartYears))}
	base := Series{Name: baselineName, Points: make([]Point, 0, len(ChartYears))}

	for _, year := range ChartYears {
		var value *float64
		if v := selected.Rank(year); v != nil {
			f := float64(*v)
			value = &f
		}
		sel.Points = append(sel.Points, Point{Year: year, Value: value})
		base.Points = append(base.Points, Point{Year: year, Value: baseline[year]})
	}

	return &Chart{
		Title:    fmt.Sprintf("Başarı Sırası for %s (Son 4 Yıl)", selected.University),
		XAxis:    "Yıl",
		YAxis:    "Başarı Sırası",
		Selected: sel,
		Baseline: base,
	}
}
