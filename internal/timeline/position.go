package timeline

import (
	"fmt"
	"math"
	"time"
)

// CalculatePositionPercentage parses its arguments and returns the position
// of date within [startDate, endDate]. An empty endDate means the event is
// ongoing.
func (t *Timeline) CalculatePositionPercentage(date, startDate, endDate string) (float64, error) {
	target, err := t.ParseDate(date)
	if err != nil {
		return 0, err
	}
	w, err := t.ParseWindow(startDate, endDate)
	if err != nil {
		return 0, err
	}
	return t.Position(target, w), nil
}

// Position maps date onto the window's percentage axis. The result is
// always within [-20, 120]:
//
//   - before the start: -20 * min(days before, 30) / 30
//   - zero-length window: 50
//   - within an hour of the start: 1
//   - within an hour of an explicit end: 99
//   - inside the window: rounded linear position, clamped to [1, 99]
//   - after the end (explicit or now): 100 + 20 * min(days after, 30) / 30
func (t *Timeline) Position(date time.Time, w Window) float64 {
	start, end := t.bounds(w)

	switch {
	case date.Before(start):
		return -overflow(start.Sub(date))
	case date.After(end):
		if w.End != nil && date.Sub(end) < boundaryTolerance {
			return endPosition
		}
		return 100 + overflow(date.Sub(end))
	case end.Equal(start):
		return zeroDurationPosition
	case date.Sub(start) < boundaryTolerance:
		return startPosition
	case w.End != nil && end.Sub(date) < boundaryTolerance:
		return endPosition
	default:
		pct := float64(date.Sub(start)) / float64(end.Sub(start)) * 100
		return clamp(roundHalfUp(pct), startPosition, endPosition)
	}
}

// DateAtPosition is the inverse of the in-window mapping: it returns the
// instant at pct percent of the window. Values outside [0, 100] extrapolate.
func (t *Timeline) DateAtPosition(pct float64, w Window) time.Time {
	start, end := t.bounds(w)
	offset := time.Duration(math.Round(float64(end.Sub(start)) * pct / 100))
	return start.Add(offset)
}

// FormatPosition formats the date at pct percent of the window.
func (t *Timeline) FormatPosition(pct float64, w Window) string {
	return t.DateAtPosition(pct, w).In(t.loc).Format(displayLayout)
}

func overflow(d time.Duration) float64 {
	days := math.Min(d.Hours()/24, overflowDays)
	return math.Min(overflowPercent, overflowPercent*days/overflowDays)
}

func roundHalfUp(x float64) float64 {
	return math.Floor(x + 0.5)
}

func clamp(x, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, x))
}

// String implements fmt.Stringer for debugging output.
func (w Window) String() string {
	if w.End == nil {
		return fmt.Sprintf("[%s, now]", w.Start.Format(time.RFC3339))
	}
	return fmt.Sprintf("[%s, %s]", w.Start.Format(time.RFC3339), w.End.Format(time.RFC3339))
}
