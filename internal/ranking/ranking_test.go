package ranking

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func intPtr(n int) *int { return &n }

func floatPtr(f float64) *float64 { return &f }

func TestParseRank(t *testing.T) {
	tests := []struct {
		token string
		want  *int
	}{
		{"1.234", intPtr(1234)},
		{"987", intPtr(987)},
		{"1.234.567", intPtr(1234567)},
		{" 42 ", intPtr(42)},
		{"", nil},
		{"-", nil},
		{"abc", nil},
		{"12a", nil},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got := ParseRank(tt.token)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ParseRank(%q) mismatch (-want +got):\n%s", tt.token, diff)
			}
		})
	}
}

func TestRecord_Latest(t *testing.T) {
	rec := &Record{
		University: "Test Üniversitesi",
		Ranks: map[string]*int{
			"2023": nil,
			"2022": intPtr(500),
			"2021": intPtr(600),
			"2020": nil,
		},
	}

	if got := rec.Latest(); got == nil || *got != 500 {
		t.Errorf("Latest() = %v, want 500", got)
	}

	var empty *Record
	if empty.Latest() != nil {
		t.Error("Latest() on nil record should be nil")
	}
}

func TestRecord_IsEmpty(t *testing.T) {
	if !(&Record{Ranks: map[string]*int{}}).IsEmpty() {
		t.Error("record without ranks should be empty")
	}
	if (&Record{Ranks: map[string]*int{"2020": intPtr(1)}}).IsEmpty() {
		t.Error("record with a 2020 rank should not be empty")
	}
}
