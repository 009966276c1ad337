package timeline

// CalculateTimelineProgress returns how much of [startDate, endDate] has
// elapsed, in percent. An empty endDate means the event is ongoing.
func (t *Timeline) CalculateTimelineProgress(startDate, endDate string) (float64, error) {
	w, err := t.ParseWindow(startDate, endDate)
	if err != nil {
		return 0, err
	}
	return t.Progress(w), nil
}

// Progress returns 0 before the window starts, 100 once it has ended and
// the elapsed share in between. Ongoing windows are always at 100 once
// started since their end is now.
func (t *Timeline) Progress(w Window) float64 {
	now := t.now()
	if now.Before(w.Start) {
		return 0
	}
	start, end := t.bounds(w)
	if !now.Before(end) {
		return 100
	}
	pct := float64(now.Sub(start)) / float64(end.Sub(start)) * 100
	return clamp(pct, 0, 100)
}
