package timeline

import "fmt"

const displayLayout = "Jan 2, 2006"

// FormatTimelineDate formats a date string as "Jan 2, 2006".
// Dates without an offset keep their calendar day.
func (t *Timeline) FormatTimelineDate(date string) (string, error) {
	parsed, err := t.ParseDate(date)
	if err != nil {
		return "", err
	}
	return parsed.In(t.loc).Format(displayLayout), nil
}

// FormatDateRange formats an event window for display, e.g.
// "Jun 1, 2023 - Jun 10, 2023". Ongoing windows end in "Ongoing" and
// single-day windows print one date.
func (t *Timeline) FormatDateRange(startDate, endDate string) (string, error) {
	w, err := t.ParseWindow(startDate, endDate)
	if err != nil {
		return "", err
	}
	return t.FormatWindow(w), nil
}

// FormatWindow is FormatDateRange for an already parsed window.
func (t *Timeline) FormatWindow(w Window) string {
	start := w.Start.In(t.loc).Format(displayLayout)
	if w.End == nil {
		return fmt.Sprintf("%s - Ongoing", start)
	}
	end := w.End.In(t.loc).Format(displayLayout)
	if start == end {
		return start
	}
	return fmt.Sprintf("%s - %s", start, end)
}
