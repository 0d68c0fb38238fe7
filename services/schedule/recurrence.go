package schedule

import "healthtick/models"

// ProjectRecurring returns the subset of recurring bookings whose anchor
// weekday (derived from each booking's stored date) equals the target date's
// weekday. The stored date only supplies the weekday anchor, never a single
// occurrence.
func ProjectRecurring(recurring []models.Booking, date string) ([]models.Booking, error) {
	target, err := Weekday(date)
	if err != nil {
		return nil, err
	}
	var projected []models.Booking
	for _, b := range recurring {
		anchor, err := Weekday(b.Date)
		if err != nil {
			return nil, err
		}
		if anchor == target {
			projected = append(projected, b)
		}
	}
	return projected, nil
}

// EffectiveBookings is the union of the date's one-off bookings and the
// weekday-matched projection of all recurring bookings.
func EffectiveBookings(oneOff, recurring []models.Booking, date string) ([]models.Booking, error) {
	projected, err := ProjectRecurring(recurring, date)
	if err != nil {
		return nil, err
	}
	effective := make([]models.Booking, 0, len(oneOff)+len(projected))
	effective = append(effective, oneOff...)
	effective = append(effective, projected...)
	return effective, nil
}
