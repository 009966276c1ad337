package timeline

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mmynk/justsplit/internal/models"
)

var (
	// ErrInvalidDate is returned for empty or unparseable date strings.
	ErrInvalidDate = errors.New("invalid date")
	// ErrInvalidRange is returned when an end date precedes its start date.
	ErrInvalidRange = errors.New("end date is before start date")
)

// localLayouts are tried after RFC 3339 and are interpreted in the
// Timeline's location.
var localLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseDate parses an ISO-8601 date or date-time, interpreting strings
// without an offset as UTC.
func ParseDate(s string) (time.Time, error) {
	return parseDateIn(s, time.UTC)
}

// ParseDate parses s like the package-level ParseDate, using the Timeline's
// location for strings without an offset.
func (t *Timeline) ParseDate(s string) (time.Time, error) {
	return parseDateIn(s, t.loc)
}

func parseDateIn(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: empty date", ErrInvalidDate)
	}
	if parsed, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return parsed, nil
	}
	for _, layout := range localLayouts {
		if parsed, err := time.ParseInLocation(layout, s, loc); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
}

// Window is the interval expenses are positioned against.
// A nil End means the event is ongoing and ends at the clock's "now".
type Window struct {
	Start time.Time
	End   *time.Time
}

// NewWindow validates and returns a Window.
func NewWindow(start time.Time, end *time.Time) (Window, error) {
	if start.IsZero() {
		return Window{}, fmt.Errorf("%w: missing start date", ErrInvalidDate)
	}
	if end != nil {
		if end.IsZero() {
			return Window{}, fmt.Errorf("%w: zero end date", ErrInvalidDate)
		}
		if end.Before(start) {
			return Window{}, fmt.Errorf("%w: %s < %s", ErrInvalidRange,
				end.Format(time.RFC3339), start.Format(time.RFC3339))
		}
	}
	return Window{Start: start, End: end}, nil
}

// ParseWindow parses a start date and an optional end date.
// An empty endDate yields an ongoing window.
func (t *Timeline) ParseWindow(startDate, endDate string) (Window, error) {
	start, err := t.ParseDate(startDate)
	if err != nil {
		return Window{}, fmt.Errorf("start date: %w", err)
	}
	var end *time.Time
	if strings.TrimSpace(endDate) != "" {
		parsed, err := t.ParseDate(endDate)
		if err != nil {
			return Window{}, fmt.Errorf("end date: %w", err)
		}
		end = &parsed
	}
	return NewWindow(start, end)
}

// WindowFor returns the window of an event.
func WindowFor(event *models.Event) (Window, error) {
	if event == nil {
		return Window{}, fmt.Errorf("%w: no event", ErrInvalidDate)
	}
	return NewWindow(event.StartDate, event.EndDate)
}

// bounds resolves the window's end against now. An ongoing window whose
// start is still in the future collapses to zero duration.
func (t *Timeline) bounds(w Window) (start, end time.Time) {
	start = w.Start
	if w.End != nil {
		return start, *w.End
	}
	end = t.now()
	if end.Before(start) {
		end = start
	}
	return start, end
}
