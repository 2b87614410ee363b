package domain

import "time"

// CompletedYears returns the whole years elapsed between birth and now,
// counting a year only once its month/day anniversary has been reached.
// Both values are read as calendar dates in their own location.
//
// Example:
//
//	birth := time.Date(2000, 6, 15, 0, 0, 0, 0, time.UTC)
//	CompletedYears(birth, time.Date(2020, 6, 14, 0, 0, 0, 0, time.UTC)) // 19
//	CompletedYears(birth, time.Date(2020, 6, 15, 0, 0, 0, 0, time.UTC)) // 20
func CompletedYears(birth, now time.Time) int {
	by, bm, bd := birth.Date()
	ny, nm, nd := now.Date()
	years := ny - by
	if nm < bm || (nm == bm && nd < bd) {
		years--
	}
	return years
}
