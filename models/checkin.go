package models

import "time"

// CheckInDateLayout is the calendar-date wire format used for check-ins.
// The client submits its local calendar day in this layout and the server
// deduplicates on the submitted string.
const CheckInDateLayout = "2006-01-02"

// CheckIn records completion of a habit for one calendar date. The server
// enforces at most one check-in per (habit, date); a rejected duplicate is
// an expected business outcome, not a defect.
type CheckIn struct {
	// ID is the server-assigned check-in identifier.
	ID int64 `json:"id"`

	// HabitID identifies the habit this check-in belongs to.
	HabitID int64 `json:"habit_id"`

	// CheckInDate is the calendar date the check-in counts for, in
	// [CheckInDateLayout] form.
	CheckInDate string `json:"check_in_date"`

	// ImageURL is an optional photo attached to the check-in.
	ImageURL string `json:"image_url,omitempty"`

	// CreatedAt is when the check-in was recorded on the server.
	CreatedAt time.Time `json:"created_at"`
}

// LocalCheckInDate formats now as the calendar date to submit for a
// check-in, using the device's local timezone.
func LocalCheckInDate(now time.Time) string {
	return now.Local().Format(CheckInDateLayout)
}
