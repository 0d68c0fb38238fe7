package schedule

import "healthtick/models"

// DaySchedule is the effective booking set for one date, ready for
// availability queries. It is a plain value owned by the caller; reloading
// from storage replaces it wholesale.
type DaySchedule struct {
	Date     string
	Bookings []models.Booking
}

// NewDaySchedule builds the schedule for date from the date's one-off
// bookings and the full recurring set.
func NewDaySchedule(date string, oneOff, recurring []models.Booking) (*DaySchedule, error) {
	effective, err := EffectiveBookings(oneOff, recurring, date)
	if err != nil {
		return nil, err
	}
	return &DaySchedule{Date: date, Bookings: effective}, nil
}

// SlotBooking returns the booking whose start time equals the grid slot
// exactly, or nil. This check deliberately ignores duration: it answers "does
// this exact slot already have a booking card", not "can a new call start
// here". A slot can look free here yet still be rejected by AvailableFor.
func (d *DaySchedule) SlotBooking(slot string) *models.Booking {
	for i := range d.Bookings {
		if d.Bookings[i].Time == slot {
			return &d.Bookings[i]
		}
	}
	return nil
}

// AvailableFor reports whether a new call of the given duration could start
// at the given time without overlapping any effective booking.
func (d *DaySchedule) AvailableFor(start string, duration int) (bool, error) {
	conflicts, err := d.Conflicts(start, duration)
	if err != nil {
		return false, err
	}
	return len(conflicts) == 0, nil
}

// Conflicts returns every effective booking whose interval overlaps
// [start, start+duration). Same test as AvailableFor, but the full colliding
// set is kept so the caller can explain the rejection.
func (d *DaySchedule) Conflicts(start string, duration int) ([]models.Booking, error) {
	candStart, err := ParseClock(start)
	if err != nil {
		return nil, err
	}
	candEnd := candStart + duration

	var colliding []models.Booking
	for _, b := range d.Bookings {
		bStart, err := ParseClock(b.Time)
		if err != nil {
			return nil, err
		}
		bDur, err := Duration(b.Type)
		if err != nil {
			return nil, err
		}
		if Overlaps(candStart, candEnd, bStart, bStart+bDur) {
			colliding = append(colliding, b)
		}
	}
	return colliding, nil
}

// Slots renders the fixed grid with exact-match occupancy for display.
func (d *DaySchedule) Slots() []models.TimeSlot {
	grid := TimeGrid()
	slots := make([]models.TimeSlot, 0, len(grid))
	for _, t := range grid {
		b := d.SlotBooking(t)
		slots = append(slots, models.TimeSlot{
			Time:      t,
			Available: b == nil,
			Booking:   b,
		})
	}
	return slots
}
