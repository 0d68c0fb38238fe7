package schedule

import (
	"errors"
	"testing"
	"time"

	"healthtick/models"
)

func TestParseClock(t *testing.T) {
	good := map[string]int{
		"00:00": 0,
		"10:30": 630,
		"14:20": 860,
		"23:59": 1439,
	}
	for s, want := range good {
		got, err := ParseClock(s)
		if err != nil {
			t.Errorf("ParseClock(%q): unexpected error %v", s, err)
			continue
		}
		if got != want {
			t.Errorf("ParseClock(%q) = %d, want %d", s, got, want)
		}
	}

	bad := []string{"", "9:30", "24:00", "10:60", "10-30", "1030", "aa:bb", "10:3"}
	for _, s := range bad {
		if _, err := ParseClock(s); err == nil {
			t.Errorf("ParseClock(%q): expected validation error", s)
		} else {
			var verr *models.ValidationError
			if !errors.As(err, &verr) {
				t.Errorf("ParseClock(%q): expected *models.ValidationError, got %T", s, err)
			}
		}
	}
}

func TestWeekday(t *testing.T) {
	wd, err := Weekday("2025-08-01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if wd != time.Friday {
		t.Errorf("2025-08-01 should be a Friday, got %s", wd)
	}
	if _, err := Weekday("not-a-date"); err == nil {
		t.Error("expected error for malformed date")
	}
}
