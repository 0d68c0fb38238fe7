package booking

import (
	"fmt"

	"healthtick/models"
)

// ConflictError signals that a candidate slot overlaps one or more effective
// bookings. It blocks the state transition; nothing is written.
type ConflictError struct {
	Date      string
	Time      string
	Duration  int
	Conflicts []models.LabeledBooking
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("time slot %s on %s conflicts with %d existing booking(s); a %d-minute call will not fit",
		e.Time, e.Date, len(e.Conflicts), e.Duration)
}
