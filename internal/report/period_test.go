package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePeriod(t *testing.T) {
	tests := []struct {
		name      string
		year      int
		month     int
		wantStart time.Time
		wantEnd   time.Time
	}{
		{
			name:      "mid-year month",
			year:      2025,
			month:     3,
			wantStart: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2025, 3, 31, 23, 59, 59, 0, time.UTC),
		},
		{
			name:      "february in a leap year",
			year:      2024,
			month:     2,
			wantStart: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2024, 2, 29, 23, 59, 59, 0, time.UTC),
		},
		{
			name:      "december rolls into next year",
			year:      2025,
			month:     12,
			wantStart: time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2025, 12, 31, 23, 59, 59, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			period, err := ResolvePeriod(tt.year, tt.month)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStart, period.Start)
			assert.Equal(t, tt.wantEnd, period.End)
			assert.True(t, period.End.After(period.Start))
		})
	}
}

func TestResolvePeriodEndIsOneSecondBeforeNextMonth(t *testing.T) {
	for month := 1; month <= 12; month++ {
		period, err := ResolvePeriod(2025, month)
		require.NoError(t, err)
		assert.Equal(t, period.Start.AddDate(0, 1, 0).Add(-time.Second), period.End, "month %d", month)
	}
}

func TestResolvePeriodRejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		month int
	}{
		{"month zero", 2025, 0},
		{"month thirteen", 2025, 13},
		{"negative month", 2025, -1},
		{"year zero", 0, 6},
		{"negative year", -4, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ResolvePeriod(tt.year, tt.month)
			assert.ErrorIs(t, err, ErrInvalidPeriod)
		})
	}
}

func TestPeriodLabel(t *testing.T) {
	period, err := ResolvePeriod(2025, 3)
	require.NoError(t, err)
	assert.Equal(t, "2025-03", period.Label())

	period, err = ResolvePeriod(987, 11)
	require.NoError(t, err)
	assert.Equal(t, "0987-11", period.Label())
}

func TestPeriodContainsBoundaries(t *testing.T) {
	period, err := ResolvePeriod(2025, 6)
	require.NoError(t, err)

	assert.True(t, period.Contains(period.Start))
	assert.True(t, period.Contains(period.End))
	assert.False(t, period.Contains(period.Start.Add(-time.Second)))
	assert.False(t, period.Contains(period.End.Add(time.Second)))
}
