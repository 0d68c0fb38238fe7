package models

import "testing"

func TestBookingInputValidate(t *testing.T) {
	valid := BookingInput{
		ClientID: "client-1",
		Type:     CallTypeOnboarding,
		Date:     "2025-08-01",
		Time:     "10:30",
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid input rejected: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*BookingInput)
	}{
		{"missing client", func(in *BookingInput) { in.ClientID = "" }},
		{"unknown type", func(in *BookingInput) { in.Type = "consultation" }},
		{"empty type", func(in *BookingInput) { in.Type = "" }},
		{"hours out of range", func(in *BookingInput) { in.Time = "24:00" }},
		{"minutes out of range", func(in *BookingInput) { in.Time = "10:60" }},
		{"unpadded hour", func(in *BookingInput) { in.Time = "9:30" }},
		{"bad date shape", func(in *BookingInput) { in.Date = "01-08-2025" }},
		{"impossible date", func(in *BookingInput) { in.Date = "2025-13-40" }},
	}
	for _, tc := range cases {
		in := valid
		tc.mutate(&in)
		err := in.Validate()
		if err == nil {
			t.Errorf("%s: expected validation error", tc.name)
			continue
		}
		if _, ok := err.(*ValidationError); !ok {
			t.Errorf("%s: expected *ValidationError, got %T", tc.name, err)
		}
	}
}

func TestValidClock(t *testing.T) {
	for _, s := range []string{"00:00", "10:30", "23:59"} {
		if !ValidClock(s) {
			t.Errorf("%q should be valid", s)
		}
	}
	for _, s := range []string{"24:00", "10:5", "10:30:00", ""} {
		if ValidClock(s) {
			t.Errorf("%q should be invalid", s)
		}
	}
}
