package mood

import "time"

// NextCount computes the mood-update counter to store for a change at now,
// given the previous update time and counter. It returns ok=false when the
// daily limit is already exhausted, in which case nothing should be written.
//
// The counter only means anything relative to the calendar day of the last
// update: a change on a new local day restarts it at 1. Picking the mood the
// user already has still consumes a change.
func NextCount(last *time.Time, count, limit int, now time.Time) (int, bool) {
	if last != nil && sameDay(*last, now) {
		if count >= limit {
			return count, false
		}
		return count + 1, true
	}
	return 1, true
}

// Remaining reports how many mood changes are left today.
func Remaining(last *time.Time, count, limit int, now time.Time) int {
	if last == nil || !sameDay(*last, now) {
		return limit
	}
	if count >= limit {
		return 0
	}
	return limit - count
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Local().Date()
	by, bm, bd := b.Local().Date()
	return ay == by && am == bm && ad == bd
}
