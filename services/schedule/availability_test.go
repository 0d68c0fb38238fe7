package schedule

import (
	"testing"

	"healthtick/models"
)

func daySchedule(t *testing.T, date string, oneOff, recurring []models.Booking) *DaySchedule {
	t.Helper()
	d, err := NewDaySchedule(date, oneOff, recurring)
	if err != nil {
		t.Fatalf("NewDaySchedule: %v", err)
	}
	return d
}

func TestOnboardingBlocksFollowUpInside(t *testing.T) {
	// An onboarding call at 14:00 occupies [14:00, 14:40).
	d := daySchedule(t, "2025-08-01", nil, nil)

	ok, err := d.AvailableFor("14:00", OnboardingMinutes)
	if err != nil {
		t.Fatalf("AvailableFor: %v", err)
	}
	if !ok {
		t.Fatal("empty schedule should accept 14:00 onboarding")
	}

	d = daySchedule(t, "2025-08-01", []models.Booking{
		{ID: "b1", ClientID: "client-1", Type: models.CallTypeOnboarding, Date: "2025-08-01", Time: "14:00"},
	}, nil)

	ok, err = d.AvailableFor("14:20", FollowUpMinutes)
	if err != nil {
		t.Fatalf("AvailableFor: %v", err)
	}
	if ok {
		t.Error("follow-up at 14:20 overlaps the 14:00-14:40 onboarding and must be rejected")
	}

	conflicts, err := d.Conflicts("14:20", FollowUpMinutes)
	if err != nil {
		t.Fatalf("Conflicts: %v", err)
	}
	if len(conflicts) != 1 || conflicts[0].ID != "b1" {
		t.Errorf("expected the onboarding booking as the conflict, got %v", conflicts)
	}
}

func TestBackToBackAccepted(t *testing.T) {
	// Onboarding at 10:30 ends at 11:10; a follow-up starting 11:10 is legal.
	d := daySchedule(t, "2025-08-01", []models.Booking{
		{ID: "b1", Type: models.CallTypeOnboarding, Date: "2025-08-01", Time: "10:30"},
	}, nil)

	ok, err := d.AvailableFor("11:10", FollowUpMinutes)
	if err != nil {
		t.Fatalf("AvailableFor: %v", err)
	}
	if !ok {
		t.Error("exactly back-to-back follow-up at 11:10 must be accepted")
	}
}

func TestSlotBookingExactMatchOnly(t *testing.T) {
	d := daySchedule(t, "2025-08-01", []models.Booking{
		{ID: "b1", Type: models.CallTypeOnboarding, Date: "2025-08-01", Time: "14:00"},
	}, nil)

	if b := d.SlotBooking("14:00"); b == nil || b.ID != "b1" {
		t.Error("14:00 slot should report its booking")
	}
	// 14:20 falls inside the onboarding interval but occupancy is exact-match.
	if b := d.SlotBooking("14:20"); b != nil {
		t.Error("14:20 slot has no booking starting there, exact-match must report free")
	}
}

// A slot can show free in the grid yet be duration-rejected. Both answers are
// intentional and must coexist.
func TestGridFreeButDurationRejected(t *testing.T) {
	d := daySchedule(t, "2025-08-01", []models.Booking{
		{ID: "b1", Type: models.CallTypeFollowUp, Date: "2025-08-01", Time: "14:20"},
	}, nil)

	if b := d.SlotBooking("14:00"); b != nil {
		t.Fatal("14:00 grid slot should render free")
	}
	ok, err := d.AvailableFor("14:00", OnboardingMinutes)
	if err != nil {
		t.Fatalf("AvailableFor: %v", err)
	}
	if ok {
		t.Error("a 40-minute call at 14:00 overlaps the 14:20 follow-up and must be rejected")
	}
	ok, err = d.AvailableFor("14:00", FollowUpMinutes)
	if err != nil {
		t.Fatalf("AvailableFor: %v", err)
	}
	if !ok {
		t.Error("a 20-minute call at 14:00 ends exactly at 14:20 and must be accepted")
	}
}

func TestRecurringBookingOccupiesSlot(t *testing.T) {
	recurring := []models.Booking{
		{ID: "r1", Type: models.CallTypeFollowUp, Date: "2025-07-28", Time: "11:30", IsRecurring: true}, // Monday anchor
	}

	monday := daySchedule(t, "2025-08-11", nil, recurring)
	ok, err := monday.AvailableFor("11:30", FollowUpMinutes)
	if err != nil {
		t.Fatalf("AvailableFor: %v", err)
	}
	if ok {
		t.Error("recurring Monday follow-up must block 11:30 on a later Monday")
	}

	tuesday := daySchedule(t, "2025-08-12", nil, recurring)
	ok, err = tuesday.AvailableFor("11:30", FollowUpMinutes)
	if err != nil {
		t.Fatalf("AvailableFor: %v", err)
	}
	if !ok {
		t.Error("recurring Monday follow-up must not block a Tuesday")
	}
}

func TestSlotsRendering(t *testing.T) {
	d := daySchedule(t, "2025-08-01", []models.Booking{
		{ID: "b1", Type: models.CallTypeOnboarding, Date: "2025-08-01", Time: "10:30"},
	}, nil)

	slots := d.Slots()
	if len(slots) != 28 {
		t.Fatalf("expected 28 rendered slots, got %d", len(slots))
	}
	if slots[0].Available || slots[0].Booking == nil {
		t.Error("10:30 slot must render as occupied")
	}
	for _, s := range slots[1:] {
		if !s.Available {
			t.Errorf("slot %s should render free", s.Time)
		}
	}
}

func TestConflictsMalformedCandidate(t *testing.T) {
	d := daySchedule(t, "2025-08-01", nil, nil)
	if _, err := d.Conflicts("25:00", FollowUpMinutes); err == nil {
		t.Error("expected validation error for malformed candidate time")
	}
}
