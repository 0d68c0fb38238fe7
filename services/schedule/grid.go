package schedule

import "fmt"

// Fixed grid policy: bookable start times run from 10:30 to 19:30 inclusive
// in 20-minute steps.
const (
	GridStartMinutes = 10*60 + 30
	GridEndMinutes   = 19*60 + 30
	GridStepMinutes  = 20
)

// TimeGrid returns the ordered sequence of bookable start times for a day,
// each formatted as zero-padded "HH:mm". The grid is independent of bookings
// and identical on every call.
func TimeGrid() []string {
	var slots []string
	for m := GridStartMinutes; m <= GridEndMinutes; m += GridStepMinutes {
		slots = append(slots, FormatClock(m))
	}
	return slots
}

// FormatClock renders a minutes-from-midnight offset as "HH:mm".
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
