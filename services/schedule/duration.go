package schedule

import (
	"fmt"

	"healthtick/models"
)

// Fixed call durations in minutes.
const (
	OnboardingMinutes = 40
	FollowUpMinutes   = 20
)

// Duration maps a call type to its fixed duration in minutes. A tag outside
// the two defined variants is a caller error.
func Duration(t models.CallType) (int, error) {
	switch t {
	case models.CallTypeOnboarding:
		return OnboardingMinutes, nil
	case models.CallTypeFollowUp:
		return FollowUpMinutes, nil
	default:
		return 0, &models.ValidationError{Field: "type", Reason: fmt.Sprintf("unknown call type %q", t)}
	}
}
