package models

import (
	"fmt"
	"regexp"
	"time"
)

// CallType discriminates the two supported call kinds. Each type carries a
// fixed duration; anything else is rejected at the boundary.
type CallType string

const (
	CallTypeOnboarding CallType = "onboarding"
	CallTypeFollowUp   CallType = "follow-up"
)

// Valid reports whether the tag is one of the two known call types.
func (t CallType) Valid() bool {
	return t == CallTypeOnboarding || t == CallTypeFollowUp
}

// Booking represents a confirmed booking record.
type Booking struct {
	ID          string    `bson:"id" json:"id"`                   // Unique booking identifier (UUID)
	ClientID    string    `bson:"clientId" json:"clientId"`       // Client who was booked
	Type        CallType  `bson:"type" json:"type"`               // "onboarding" or "follow-up"
	Date        string    `bson:"date" json:"date"`               // Booking date in "YYYY-MM-DD" format
	Time        string    `bson:"time" json:"time"`               // Start time in "HH:mm" format
	IsRecurring bool      `bson:"isRecurring" json:"isRecurring"` // Weekly on the weekday of Date
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
}

var (
	timeRe = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)
	dateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// ValidClock reports whether s is a zero-padded "HH:mm" string with hours
// 00-23 and minutes 00-59.
func ValidClock(s string) bool {
	return timeRe.MatchString(s)
}

// ValidDate reports whether s matches "YYYY-MM-DD" and names a real calendar day.
func ValidDate(s string) bool {
	if !dateRe.MatchString(s) {
		return false
	}
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

// BookingInput is the payload for creating a booking. IDs and timestamps are
// assigned by the repository.
type BookingInput struct {
	ClientID    string   `json:"clientId" binding:"required"`
	Type        CallType `json:"type" binding:"required"`
	Date        string   `json:"date" binding:"required"`
	Time        string   `json:"time" binding:"required"`
	IsRecurring bool     `json:"isRecurring"`
}

// Validate checks the input shape before any storage call is made.
func (in BookingInput) Validate() error {
	if in.ClientID == "" {
		return &ValidationError{Field: "clientId", Reason: "missing client id"}
	}
	if !in.Type.Valid() {
		return &ValidationError{Field: "type", Reason: fmt.Sprintf("invalid call type %q, must be %q or %q", in.Type, CallTypeOnboarding, CallTypeFollowUp)}
	}
	if !ValidClock(in.Time) {
		return &ValidationError{Field: "time", Reason: fmt.Sprintf("invalid time %q, expected HH:mm", in.Time)}
	}
	if !ValidDate(in.Date) {
		return &ValidationError{Field: "date", Reason: fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", in.Date)}
	}
	return nil
}

// ValidationError signals malformed booking data rejected before any storage call.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
