package timeutil

import "time"

// followUpOffsets is the day each follow-up goes out, counted from the day
// the introduction email is sent.
var followUpOffsets = [...]int{7, 14, 21, 31, 41, 51, 61}

// FollowUpCount is the number of scheduled follow-up emails in a sequence.
const FollowUpCount = len(followUpOffsets)

// SendOffsetDays maps a zero-based follow-up index to its send offset in
// days. Out-of-range indices return 0 rather than panicking.
func SendOffsetDays(followUpIndex int) int {
	if followUpIndex < 0 || followUpIndex >= len(followUpOffsets) {
		return 0
	}
	return followUpOffsets[followUpIndex]
}

// DaysBetween returns the number of calendar days from one instant's date
// to another's, negative when to precedes from. Calendar-day arithmetic, so
// the answer is stable across DST transitions.
func DaysBetween(from, to time.Time) int {
	fromDay := startOfDay(from)
	toDay := startOfDay(to.In(from.Location()))

	days := 0
	for fromDay.Before(toDay) {
		fromDay = fromDay.AddDate(0, 0, 1)
		days++
	}
	for fromDay.After(toDay) {
		fromDay = fromDay.AddDate(0, 0, -1)
		days--
	}
	return days
}
