package attendance

import (
	"testing"
	"time"

	"Backend-VentureHR/src/models"

	"github.com/stretchr/testify/assert"
)

// at builds a time on a fixed Monday at hh:mm.
func at(hh, mm int) time.Time {
	return time.Date(2025, 6, 2, hh, mm, 0, 0, time.UTC) // Monday
}

func atp(hh, mm int) *time.Time {
	t := at(hh, mm)
	return &t
}

func TestDeriveStatus(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  *time.Time
		checkOut *time.Time
		want     models.AttendanceStatus
	}{
		{"no check-in is absent", nil, nil, models.StatusAbsent},
		{"no check-in ignores checkout", nil, atp(18, 30), models.StatusAbsent},

		{"on time, full day", atp(9, 0), atp(18, 30), models.StatusPresent},
		{"exactly 09:50 counts as on time", atp(9, 50), atp(18, 0), models.StatusPresent},
		{"on time, no checkout yet", atp(9, 0), nil, models.StatusPresent},

		{"late window, full day", atp(10, 30), atp(18, 30), models.StatusLate},
		{"just after on-time cutoff", atp(9, 51), atp(19, 0), models.StatusLate},
		{"just before late limit", atp(10, 59), nil, models.StatusLate},

		{"early departure dominates on-time check-in", atp(9, 0), atp(17, 59), models.StatusHalfDay},
		{"early departure dominates late window", atp(10, 30), atp(17, 0), models.StatusHalfDay},
		{"afternoon check-in is half day", atp(12, 30), nil, models.StatusHalfDay},
		{"13:59 check-in is half day", atp(13, 59), nil, models.StatusHalfDay},

		{"check-in after absent limit", atp(14, 1), nil, models.StatusAbsent},
		{"very late check-in ignores checkout", atp(15, 0), atp(19, 0), models.StatusAbsent},

		{"gap between late and half-day limits stays pending", atp(11, 30), nil, models.StatusPending},
		{"exactly 11:00 stays pending", atp(11, 0), nil, models.StatusPending},
		{"exactly 12:00 stays pending", atp(12, 0), nil, models.StatusPending},
		{"gap check-in with full-day checkout resolves via fallback", atp(11, 30), atp(18, 0), models.StatusPending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Derive(tt.checkIn, tt.checkOut))
		})
	}
}

func TestDeriveStatusPresentForAllOnTimeMinutes(t *testing.T) {
	// every minute up to and including 09:50 with a full-day checkout is PRESENT
	out := atp(18, 0)
	for m := 0; m <= OnTime; m++ {
		in := at(m/60, m%60)
		assert.Equal(t, models.StatusPresent, Derive(&in, out), "minute %d", m)
	}
}

func TestDeriveStatusLateForWholeLateWindow(t *testing.T) {
	out := atp(18, 0)
	for m := OnTime + 1; m < LateLimit; m++ {
		in := at(m/60, m%60)
		assert.Equal(t, models.StatusLate, Derive(&in, out), "minute %d", m)
	}
}

func TestDeriveStatusAbsentAfterLimit(t *testing.T) {
	for m := AbsentLimit + 1; m < 24*60; m++ {
		in := at(m/60, m%60)
		assert.Equal(t, models.StatusAbsent, Derive(&in, nil), "minute %d", m)
		assert.Equal(t, models.StatusAbsent, Derive(&in, atp(19, 0)), "minute %d with checkout", m)
	}
}

func TestIsWeekend(t *testing.T) {
	assert.True(t, IsWeekend(time.Saturday))
	assert.True(t, IsWeekend(time.Sunday))
	assert.False(t, IsWeekend(time.Monday))
	assert.False(t, IsWeekend(time.Friday))
}
