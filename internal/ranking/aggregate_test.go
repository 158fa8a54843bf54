package ranking

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func record(name string, ranks ...*int) *Record {
	rec := &Record{University: name, Ranks: make(map[string]*int)}
	for i, year := range Years {
		if i < len(ranks) {
			rec.Ranks[year] = ranks[i]
		}
	}
	return rec
}

func TestFilter(t *testing.T) {
	records := []*Record{
		record("ORTA DOĞU TEKNİK ÜNİVERSİTESİ (Devlet)", intPtr(1)),
		record("Koç Üniversitesi (Vakıf)", intPtr(2)),
		record("hacettepe üniversitesi (devlet)", intPtr(3)),
		record("GAZİ ÜNİVERSİTESİ (DEVLET)", intPtr(4)),
	}

	got := Names(Filter(records, "Devlet"))
	want := []string{
		"ORTA DOĞU TEKNİK ÜNİVERSİTESİ (Devlet)",
		"hacettepe üniversitesi (devlet)",
		"GAZİ ÜNİVERSİTESİ (DEVLET)",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Filter() mismatch (-want +got):\n%s", diff)
	}
}

func TestFilter_TurkishCase(t *testing.T) {
	tests := []struct {
		name       string
		university string
		marker     string
	}{
		{"upper marker, dotless name", "KOÇ ÜNİVERSİTESİ (Vakıf)", "VAKIF"},
		{"upper name, dotless marker", "Koç (VAKIF)", "Vakıf"},
		{"dotted capital İ", "ORTA DOĞU TEKNİK ÜNİVERSİTESİ", "Üniversite"},
		{"plain ascii", "x (DEVLET)", "devlet"},
		{"combining dot above", "GAZI\u0307 ÜNI\u0307VERSI\u0307TESI\u0307", "gazi"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter([]*Record{record(tt.university, intPtr(1))}, tt.marker)
			if len(got) != 1 {
				t.Errorf("Filter(%q, %q) matched %d records, want 1", tt.university, tt.marker, len(got))
			}
		})
	}

	if got := Filter([]*Record{record("Koç (Vakıf)", intPtr(1))}, "Devlet"); len(got) != 0 {
		t.Errorf("Filter() matched %d records for an absent marker, want 0", len(got))
	}
}

func TestAggregate(t *testing.T) {
	records := []*Record{
		record("A (Devlet)", intPtr(100), nil, intPtr(10)),
		record("B (Vakıf)", intPtr(9999), intPtr(9999), intPtr(9999), intPtr(9999)),
		record("C (Devlet)", nil, nil, intPtr(20)),
		record("D (Devlet)", intPtr(200), nil, intPtr(30)),
	}

	got := Aggregate(records, "devlet", 10)
	want := Baseline{
		"2023": floatPtr(150),
		"2022": nil,
		"2021": floatPtr(20),
		"2020": nil,
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Aggregate() mismatch (-want +got):\n%s", diff)
	}
}

func TestAggregate_Limit(t *testing.T) {
	records := make([]*Record, 0, 15)
	for i := 1; i <= 15; i++ {
		records = append(records, record(fmt.Sprintf("Devlet %d", i), intPtr(i*10)))
	}

	got := Aggregate(records, "Devlet", 10)

	// first ten: 10..100, mean 55
	if v := got["2023"]; v == nil || *v != 55 {
		t.Errorf("Aggregate() 2023 = %v, want 55", v)
	}

	uncapped := Aggregate(records, "Devlet", 0)
	if v := uncapped["2023"]; v == nil || *v != 80 {
		t.Errorf("Aggregate() uncapped 2023 = %v, want 80", v)
	}
}

func TestAggregate_NoMatches(t *testing.T) {
	records := []*Record{record("Koç Üniversitesi", intPtr(1), intPtr(2), intPtr(3), intPtr(4))}

	got := Aggregate(records, "Devlet", 10)

	if len(got) != len(Years) {
		t.Fatalf("Aggregate() returned %d years, want %d", len(got), len(Years))
	}
	for _, year := range Years {
		if got[year] != nil {
			t.Errorf("Aggregate()[%s] = %v, want no value", year, *got[year])
		}
	}
}
