package models

import "time"

// Event represents a shared period whose expenses are split among participants.
type Event struct {
	// ID is the unique identifier for the event (UUID format).
	ID string

	// Name is the display name of the event (e.g., "Lisbon Trip").
	Name string

	// StartDate is when the event begins.
	StartDate time.Time

	// EndDate is when the event ends.
	// nil means the event is ongoing and its window ends "now".
	EndDate *time.Time

	// Participants is the list of participant names sharing the event.
	Participants []string

	// CreatedAt is the Unix timestamp when the event was created.
	CreatedAt int64
}

// IsOngoing reports whether the event has no end date.
func (e *Event) IsOngoing() bool {
	return e.EndDate == nil
}

// HasParticipant reports whether name is listed on the event.
func (e *Event) HasParticipant(name string) bool {
	for _, p := range e.Participants {
		if p == name {
			return true
		}
	}
	return false
}
