// Package timeline places expenses on an event's timeline.
//
// Positions are percentages on a normalized axis where 0 and 100 are the
// event's start and end markers. Expenses before the event land in
// [-20, 0) and expenses after it in (100, 120]; in-window expenses are kept
// inside [1, 99] so they never sit on top of a boundary marker. Nearby
// positions are merged into groups so the rendering layer can draw one
// marker per cluster.
//
// A Timeline is immutable after New and safe for concurrent use.
package timeline

import "time"

const (
	// DefaultProximityThreshold is the distance, in percentage points, below
	// which an expense joins an existing group.
	DefaultProximityThreshold = 5.0

	// boundaryTolerance is how close to a boundary an expense snaps to it.
	boundaryTolerance = time.Hour

	// overflowDays is how many days outside the window map to the full overflow.
	overflowDays = 30.0
	// overflowPercent is the width of the pre- and post-event zones.
	overflowPercent = 20.0

	startPosition        = 1.0
	endPosition          = 99.0
	zeroDurationPosition = 50.0
)

// Timeline computes positions, groups and progress against an injected clock.
type Timeline struct {
	now       func() time.Time
	threshold float64
	loc       *time.Location
}

// Option configures a Timeline.
type Option func(*Timeline)

// WithClock sets the time source used for ongoing events and progress.
func WithClock(now func() time.Time) Option {
	return func(t *Timeline) {
		if now != nil {
			t.now = now
		}
	}
}

// WithProximityThreshold overrides DefaultProximityThreshold.
// Non-positive values are ignored.
func WithProximityThreshold(threshold float64) Option {
	return func(t *Timeline) {
		if threshold > 0 {
			t.threshold = threshold
		}
	}
}

// WithLocation sets the location for date strings that carry no UTC offset.
func WithLocation(loc *time.Location) Option {
	return func(t *Timeline) {
		if loc != nil {
			t.loc = loc
		}
	}
}

// New returns a Timeline using the system clock, UTC and the default threshold.
func New(opts ...Option) *Timeline {
	t := &Timeline{
		now:       time.Now,
		threshold: DefaultProximityThreshold,
		loc:       time.UTC,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Now returns the current time according to the Timeline's clock.
func (t *Timeline) Now() time.Time {
	return t.now()
}

// Threshold returns the proximity threshold used for grouping.
func (t *Timeline) Threshold() float64 {
	return t.threshold
}
