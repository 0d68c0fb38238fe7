package models

import "time"

// SessionState tracks a booking attempt through its lifecycle. One attempt
// performs at most one storage mutation; every failure path returns to idle
// (the session is dropped).
type SessionState string

const (
	StateSlotChosen     SessionState = "slot_chosen"
	StateClientChosen   SessionState = "client_chosen"
	StateConfirmPending SessionState = "confirm_pending" // deletion awaiting user confirmation
)

// BookingSession is a short-lived booking or deletion attempt, cached with a
// TTL between user steps.
type BookingSession struct {
	ID        string       `json:"id"`
	State     SessionState `json:"state"`
	Date      string       `json:"date"`
	Time      string       `json:"time"`
	Type      CallType     `json:"type"`
	ClientID  string       `json:"clientId,omitempty"`
	BookingID string       `json:"bookingId,omitempty"` // set for deletion attempts
	CreatedAt time.Time    `json:"createdAt"`
}

// DeleteConfirmation names the booking a deletion attempt is about to remove,
// so the user confirms against the exact record.
type DeleteConfirmation struct {
	SessionID  string   `json:"sessionId"`
	BookingID  string   `json:"bookingId"`
	Type       CallType `json:"type"`
	ClientName string   `json:"clientName"`
	Date       string   `json:"date"`
	Time       string   `json:"time"`
	Message    string   `json:"message"`
}
