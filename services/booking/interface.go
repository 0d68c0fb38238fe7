package booking

import (
	"context"

	"healthtick/models"
)

// AvailabilityResult answers "can a new call of this type start here" together
// with the colliding bookings when it cannot.
type AvailabilityResult struct {
	Date      string                  `json:"date"`
	Time      string                  `json:"time"`
	Type      models.CallType         `json:"type"`
	Duration  int                     `json:"durationMinutes"`
	Available bool                    `json:"available"`
	Conflicts []models.LabeledBooking `json:"conflicts,omitempty"`
}

// CommitResult is the outcome of a committed create or delete: the mutated
// booking plus the day view re-derived wholesale from storage. The in-memory
// view is never patched incrementally.
type CommitResult struct {
	Booking *models.Booking `json:"booking,omitempty"`
	Day     *models.DayView `json:"day"`
}

// BookingService orchestrates the booking and deletion workflows. Each
// attempt moves slot-pick -> client-pick -> re-validate -> commit, performing
// exactly one storage mutation per completed attempt; every failure path
// drops the session (back to idle).
type BookingService interface {
	// DayView loads both booking sets and renders the grid for a date.
	DayView(ctx context.Context, date string) (*models.DayView, error)
	// CheckAvailability runs the duration-aware availability probe.
	CheckAvailability(ctx context.Context, date, start string, callType models.CallType) (*AvailabilityResult, error)

	// StartSession validates the candidate slot and opens a slot-chosen
	// session; a conflict reports its details and leaves no session behind.
	StartSession(ctx context.Context, date, start string, callType models.CallType) (*models.BookingSession, error)
	// ChooseClient attaches a directory client to a slot-chosen session.
	ChooseClient(ctx context.Context, sessionID, clientID string) (*models.BookingSession, error)
	// ConfirmBooking re-validates against freshly loaded bookings, persists
	// on success and reloads both sets.
	ConfirmBooking(ctx context.Context, sessionID string) (*CommitResult, error)
	// CancelSession abandons an attempt without touching storage.
	CancelSession(ctx context.Context, sessionID string) error

	// RequestDelete opens a confirm-pending session naming the exact booking.
	RequestDelete(ctx context.Context, bookingID string) (*models.DeleteConfirmation, error)
	// ConfirmDelete removes the booking by id and reloads both sets.
	ConfirmDelete(ctx context.Context, sessionID string) (*CommitResult, error)
}
