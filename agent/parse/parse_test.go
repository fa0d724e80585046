package parse

import (
	"testing"
	"time"
)

func TestClockTimesParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw  string
		want string
	}{
		{"2pm", "14:00"},
		{"12am", "00:00"},
		{"12pm", "12:00"},
		{"9:30am", "09:30"},
		{"2:45PM", "14:45"},
		{"11am", "11:00"},
		{"12:30am", "00:30"},
		{" 3pm ", "15:00"},
		// no marker passes through as already-canonical
		{"14:00", "14:00"},
		{"09:15", "09:15"},
	}

	parser := ClockTimes{}
	for _, tt := range tests {
		got, err := parser.Parse(tt.raw)
		if err != nil {
			t.Fatalf("Parse(%q) error = %v", tt.raw, err)
		}
		if got != tt.want {
			t.Fatalf("Parse(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestClockTimesParseInvalid(t *testing.T) {
	t.Parallel()

	parser := ClockTimes{}
	for _, raw := range []string{"", "noonpm", "2:xxpm", "am"} {
		if _, err := parser.Parse(raw); err == nil {
			t.Fatalf("Parse(%q) expected error", raw)
		}
	}
}

func TestRelativeTourDatesParse(t *testing.T) {
	t.Parallel()

	parser := RelativeTourDates{
		Now: func() time.Time {
			return time.Date(2025, 6, 14, 9, 0, 0, 0, time.UTC)
		},
	}

	tests := []struct {
		raw  string
		want string
	}{
		{"tomorrow", "2025-06-15"},
		{"Tomorrow", "2025-06-15"},
		{"next week", "2025-06-21"},
		{"2025-06-20", "2025-06-20"},
		{"whenever", "whenever"},
	}
	for _, tt := range tests {
		got, err := parser.Parse(tt.raw)
		if err != nil {
			t.Fatalf("Parse(%q) error = %v", tt.raw, err)
		}
		if got != tt.want {
			t.Fatalf("Parse(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}

	if _, err := parser.Parse("   "); err == nil {
		t.Fatal("Parse(blank) expected error")
	}
}

func TestFixedMoveInDatesResolve(t *testing.T) {
	t.Parallel()

	tests := []struct {
		hint string
		want string
	}{
		{"july", "2025-07-01"},
		{"July", "2025-07-01"},
		{"august", "2025-08-01"},
		{"AUGUST", "2025-08-01"},
		// anything else passes through untouched, empty included
		{"2025-09-01", "2025-09-01"},
		{"september", "september"},
		{"", ""},
	}

	parser := FixedMoveInDates{}
	for _, tt := range tests {
		if got := parser.Resolve(tt.hint); got != tt.want {
			t.Fatalf("Resolve(%q) = %q, want %q", tt.hint, got, tt.want)
		}
	}
}
