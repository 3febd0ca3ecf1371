package leaves

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountDays(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		days  int
	}{
		{"single day", "2025-06-02", "2025-06-02", 1},
		{"two days", "2025-06-02", "2025-06-03", 2},
		{"full cap", "2025-06-02", "2025-06-04", 3},
		{"over cap", "2025-06-02", "2025-06-06", 5},
		{"across month boundary", "2025-06-30", "2025-07-01", 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			days, err := countDays(tt.start, tt.end)
			require.NoError(t, err)
			assert.Equal(t, tt.days, days)
		})
	}
}

func TestCountDaysInvalidPeriod(t *testing.T) {
	_, err := countDays("2025-06-05", "2025-06-02")
	assert.ErrorIs(t, err, ErrInvalidPeriod)
}

func TestCountDaysBadFormat(t *testing.T) {
	_, err := countDays("02/06/2025", "2025-06-03")
	assert.Error(t, err)
}
