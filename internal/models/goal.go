package models

import "time"

// Goal represents a measurable target, like "run 5 km daily".
type Goal struct {
	// ID is the unique identifier assigned by the storage backend.
	ID string

	// Type categorizes the goal (e.g. "fitness", "productivity").
	Type string

	// StartDate is the day the goal begins, in YYYY-MM-DD form.
	StartDate string

	// Value is the numeric target (e.g. 5 for "5 km").
	Value float64

	// Description is a short human-readable summary.
	Description string

	// Unit is the unit of Value (e.g. "km", "hours", "steps").
	Unit string

	// Frequency is how often the goal applies (e.g. "daily", "weekly").
	Frequency string

	// Progress counts progress toward Value. Always 0 at creation;
	// no mutator exists yet.
	Progress float64

	// CreatedAt is when the goal record was inserted.
	CreatedAt time.Time
}
