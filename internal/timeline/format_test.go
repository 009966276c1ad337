package timeline

import (
	"testing"
	"time"
)

func TestFormatTimelineDate(t *testing.T) {
	tests := []struct {
		name string
		loc  *time.Location
		date string
		want string
	}{
		{name: "date only keeps its day", date: "2023-06-05", want: "Jun 5, 2023"},
		{name: "date time", date: "2023-12-31T23:59", want: "Dec 31, 2023"},
		{name: "offset converted to UTC", date: "2023-06-05T23:30:00-05:00", want: "Jun 6, 2023"},
		{name: "offset converted to location", loc: time.FixedZone("EST", -5*60*60), date: "2023-06-05T23:30:00-05:00", want: "Jun 5, 2023"},
		{name: "date only in location", loc: time.FixedZone("JST", 9*60*60), date: "2023-01-01", want: "Jan 1, 2023"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tl := New(WithLocation(tt.loc))
			got, err := tl.FormatTimelineDate(tt.date)
			if err != nil {
				t.Fatalf("FormatTimelineDate() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("FormatTimelineDate(%q) = %q, want %q", tt.date, got, tt.want)
			}
		})
	}
}

func TestFormatTimelineDate_Invalid(t *testing.T) {
	if _, err := New().FormatTimelineDate("not a date"); err == nil {
		t.Error("expected error for invalid date, got nil")
	}
}

func TestFormatDateRange(t *testing.T) {
	tl := New()

	tests := []struct {
		name  string
		start string
		end   string
		want  string
	}{
		{name: "closed range", start: "2023-06-01", end: "2023-06-10", want: "Jun 1, 2023 - Jun 10, 2023"},
		{name: "ongoing", start: "2023-06-01", end: "", want: "Jun 1, 2023 - Ongoing"},
		{name: "single day", start: "2023-06-01T09:00", end: "2023-06-01T18:00", want: "Jun 1, 2023"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tl.FormatDateRange(tt.start, tt.end)
			if err != nil {
				t.Fatalf("FormatDateRange() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("FormatDateRange() = %q, want %q", got, tt.want)
			}
		})
	}
}
