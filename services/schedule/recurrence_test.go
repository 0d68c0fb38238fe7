package schedule

import (
	"testing"

	"healthtick/models"
)

func TestProjectRecurringWeekdayMatch(t *testing.T) {
	// Anchored on Wednesday 2025-08-06.
	recurring := []models.Booking{
		{ID: "r1", ClientID: "client-1", Type: models.CallTypeFollowUp, Date: "2025-08-06", Time: "11:30", IsRecurring: true},
	}

	wednesdays := []string{"2025-08-13", "2025-08-20", "2025-12-31"}
	for _, date := range wednesdays {
		got, err := ProjectRecurring(recurring, date)
		if err != nil {
			t.Fatalf("ProjectRecurring(%s): %v", date, err)
		}
		if len(got) != 1 || got[0].ID != "r1" {
			t.Errorf("recurring booking should appear on Wednesday %s, got %v", date, got)
		}
	}

	others := []string{"2025-08-07", "2025-08-12", "2025-08-10"}
	for _, date := range others {
		got, err := ProjectRecurring(recurring, date)
		if err != nil {
			t.Fatalf("ProjectRecurring(%s): %v", date, err)
		}
		if len(got) != 0 {
			t.Errorf("recurring booking must not appear on %s, got %v", date, got)
		}
	}
}

func TestProjectRecurringMondayAnchor(t *testing.T) {
	// Anchor date is a Monday; only the weekday matters, not the date itself.
	recurring := []models.Booking{
		{ID: "r2", ClientID: "client-2", Type: models.CallTypeFollowUp, Date: "2025-07-28", Time: "09:00", IsRecurring: true},
	}

	got, err := ProjectRecurring(recurring, "2025-08-04") // a later Monday
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected projection on a later Monday, got %d bookings", len(got))
	}
	if got[0].Time != "09:00" {
		t.Errorf("projected booking should keep time 09:00, got %s", got[0].Time)
	}

	got, err = ProjectRecurring(recurring, "2025-08-05") // Tuesday
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("recurring Monday booking must never appear on a Tuesday")
	}
}

func TestEffectiveBookingsUnion(t *testing.T) {
	oneOff := []models.Booking{
		{ID: "b1", Date: "2025-08-04", Time: "14:00", Type: models.CallTypeOnboarding},
	}
	recurring := []models.Booking{
		{ID: "r1", Date: "2025-07-28", Time: "09:00", Type: models.CallTypeFollowUp, IsRecurring: true},
		{ID: "r2", Date: "2025-07-29", Time: "09:00", Type: models.CallTypeFollowUp, IsRecurring: true},
	}

	got, err := EffectiveBookings(oneOff, recurring, "2025-08-04") // Monday
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected one-off + Monday recurring = 2 bookings, got %d", len(got))
	}
	ids := map[string]bool{}
	for _, b := range got {
		ids[b.ID] = true
	}
	if !ids["b1"] || !ids["r1"] || ids["r2"] {
		t.Errorf("unexpected effective set: %v", ids)
	}
}

func TestProjectRecurringBadDate(t *testing.T) {
	if _, err := ProjectRecurring(nil, "08/04/2025"); err == nil {
		t.Error("expected validation error for malformed target date")
	}
}
