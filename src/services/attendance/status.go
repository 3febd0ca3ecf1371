package attendance

import (
	"time"

	"Backend-VentureHR/src/models"
)

// Rule cut-offs, in minutes since midnight (local clock).
const (
	OnTime          = 9*60 + 50 // 09:50 เข้างานตรงเวลา
	LateLimit       = 11 * 60   // 11:00
	HalfDayLimit    = 12 * 60   // 12:00
	AbsentLimit     = 14 * 60   // 14:00 หลังจากนี้นับขาดงาน
	FullDayCheckout = 18 * 60   // 18:00 ออกก่อนนี้นับครึ่งวัน
)

// MinuteOfDay returns t as minutes since midnight in t's location.
func MinuteOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// Derive maps a check-in/check-out pair to an attendance status.
//
// The rules are ordered and the first match wins: absence and early
// departure dominate the lateness classification. Both the checkout
// endpoint and the nightly sweep call this same function, so the live
// path and the reconciled path can never disagree on policy.
func Derive(checkIn, checkOut *time.Time) models.AttendanceStatus {
	if checkIn == nil {
		return models.StatusAbsent
	}
	in := MinuteOfDay(*checkIn)

	if in > AbsentLimit {
		return models.StatusAbsent
	}
	if checkOut != nil && MinuteOfDay(*checkOut) < FullDayCheckout {
		return models.StatusHalfDay
	}
	if in > HalfDayLimit && in < AbsentLimit {
		return models.StatusHalfDay
	}
	if in > OnTime && in < LateLimit {
		return models.StatusLate
	}
	if in <= OnTime {
		return models.StatusPresent
	}
	// check-in in the [LateLimit, HalfDayLimit] gap with no checkout yet
	return models.StatusPending
}

// IsWeekend reports whether d is Saturday or Sunday. Weekend dates never
// receive sweep defaults and are excluded from monthly summaries.
func IsWeekend(d time.Weekday) bool {
	return d == time.Saturday || d == time.Sunday
}
