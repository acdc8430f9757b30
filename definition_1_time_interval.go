package scheduler

// TimeInterval is a half-open interval [TimeStart, TimeEnd).
type TimeInterval struct {
	TimeStart int64
	TimeEnd   int64
}

func (interval *TimeInterval) Duration() int64 {
	return interval.TimeEnd - interval.TimeStart
}

func (interval *TimeInterval) IsEmpty() bool {
	return interval.TimeStart >= interval.TimeEnd
}

// Overlaps reports whether the two intervals share at least one time unit.
// Exact touch (end == start) is not an overlap. Empty intervals overlap
// nothing, so zero-duration work never conflicts.
func (interval *TimeInterval) Overlaps(other *TimeInterval) bool {
	if interval.IsEmpty() || other.IsEmpty() {
		return false
	}

	return interval.TimeStart < other.TimeEnd &&
		other.TimeStart < interval.TimeEnd
}
