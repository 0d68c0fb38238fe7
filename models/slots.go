package models

// TimeSlot is one entry of the rendered day grid. Derived fresh from the
// current booking set on every request, never persisted.
type TimeSlot struct {
	Time      string   `json:"time"`
	Available bool     `json:"available"`
	Booking   *Booking `json:"booking,omitempty"`
}

// DayView is the full calendar payload for one date: the fixed grid with
// exact-match occupancy, plus the effective bookings labeled with client names.
type DayView struct {
	Date     string          `json:"date"`
	Slots    []TimeSlot      `json:"slots"`
	Bookings []LabeledBooking `json:"bookings"`
}

// LabeledBooking pairs a booking with its client's display fields.
type LabeledBooking struct {
	Booking
	ClientName  string `json:"clientName,omitempty"`
	ClientPhone string `json:"clientPhone,omitempty"`
}
