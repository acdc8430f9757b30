package scheduler

import (
	"fmt"
)

const _NoAvailability = int64(-1)

// debugCommitChecks turns Commit into a checked operation. Construction
// guarantees non-overlap on its own, so the production path stays cheap;
// tests flip this on to catch constructor regressions early.
var debugCommitChecks bool

// Timeline holds the committed intervals of one resource, a machine or an
// operator. A fresh Timeline belongs to exactly one construction run.
type Timeline struct {
	committed []TimeInterval
}

func NewTimeline() *Timeline {
	return &Timeline{}
}

// IsFree reports whether [timeStart, timeStart+duration) collides with no
// committed interval.
func (tl *Timeline) IsFree(timeStart, duration int64) bool {
	candidate := TimeInterval{
		TimeStart: timeStart,
		TimeEnd:   timeStart + duration,
	}

	for ix := range tl.committed {
		if tl.committed[ix].Overlaps(&candidate) {
			return false
		}
	}

	return true
}

// Commit appends [timeStart, timeStart+duration) without merging or
// validation. Callers must guarantee the slot is free.
func (tl *Timeline) Commit(timeStart, duration int64) {
	if debugCommitChecks && !tl.IsFree(timeStart, duration) {
		panic(
			fmt.Sprintf(
				"commit of busy interval [%d-%d)",

				timeStart,
				timeStart+duration,
			),
		)
	}

	tl.committed = append(
		tl.committed,
		TimeInterval{
			TimeStart: timeStart,
			TimeEnd:   timeStart + duration,
		},
	)
}

// EarliestFreeSlot returns the smallest start >= timeStart, not past the
// horizon, at which the resource is free for the full duration. The scan
// advances one time unit at a time; the returned value is contractual, any
// faster strategy must produce the identical minimum.
func (tl *Timeline) EarliestFreeSlot(timeStart, duration, horizon int64) int64 {
	for candidate := timeStart; candidate <= horizon; candidate++ {
		if tl.IsFree(candidate, duration) {
			return candidate
		}
	}

	return _NoAvailability
}
