package schedule

import (
	"time"

	"healthtick/models"
)

// ParseClock converts an "HH:mm" string to minutes from midnight. Malformed
// strings fail with a validation error rather than producing a garbage offset.
func ParseClock(s string) (int, error) {
	if !models.ValidClock(s) {
		return 0, &models.ValidationError{Field: "time", Reason: "expected HH:mm with hours 00-23 and minutes 00-59, got " + s}
	}
	h := int(s[0]-'0')*10 + int(s[1]-'0')
	m := int(s[3]-'0')*10 + int(s[4]-'0')
	return h*60 + m, nil
}

// Weekday derives the weekday of a "YYYY-MM-DD" date string.
func Weekday(date string) (time.Weekday, error) {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		return 0, &models.ValidationError{Field: "date", Reason: "expected YYYY-MM-DD, got " + date}
	}
	return d.Weekday(), nil
}
