package schedule

// Overlaps reports whether two half-open intervals [aStart,aEnd) and
// [bStart,bEnd) intersect. All four values are minutes from midnight. A
// booking ending exactly when another starts does not conflict, so
// back-to-back bookings are legal.
func Overlaps(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && aEnd > bStart
}
