package models

import "time"

// Habit is a server-owned habit record. The client never computes or
// caches a streak value of its own: Streak is always the most recent
// value returned by the server.
type Habit struct {
	// ID is the server-assigned habit identifier.
	ID int64 `json:"id"`

	// Title is the habit name. Required on create and update.
	Title string `json:"title"`

	// Description is optional free-form text.
	Description string `json:"description,omitempty"`

	// Icon is the emoji or glyph shown next to the habit.
	Icon string `json:"icon"`

	// Colour is the display colour as a hex string (e.g. "#FCD34D").
	Colour string `json:"colour"`

	// Streak is the server-computed count of consecutive qualifying
	// check-in days. Never derived on the client.
	Streak int `json:"streak"`

	// CreatedAt is when the habit was created on the server.
	CreatedAt time.Time `json:"created_at"`
}

// HabitFields carries the client-editable subset of a habit used by the
// create and update calls. Everything else on [Habit] is server-derived.
type HabitFields struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Icon        string `json:"icon"`
	Colour      string `json:"colour"`
}
