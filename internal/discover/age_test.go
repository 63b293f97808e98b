package discover

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAge(t *testing.T) {
	birthdate := date(2004, time.June, 15)

	tests := []struct {
		name string
		at   time.Time
		want int
	}{
		{"on the birthday", date(2024, time.June, 15), 20},
		{"day before the birthday", date(2024, time.June, 14), 19},
		{"day after the birthday", date(2024, time.June, 16), 20},
		{"start of the year", date(2024, time.January, 1), 19},
		{"end of the year", date(2024, time.December, 31), 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Age(birthdate, tt.at))
		})
	}
}

func TestBirthdateRange(t *testing.T) {
	today := date(2026, time.March, 10)

	earliest, latest := BirthdateRange(18, 25, today)

	assert.Equal(t, date(2000, time.March, 11), earliest)
	assert.Equal(t, date(2008, time.March, 10), latest)

	// The bounds are inclusive on both ends
	assert.Equal(t, 25, Age(earliest, today))
	assert.Equal(t, 18, Age(latest, today))

	// One day outside either bound falls out of the window
	assert.Equal(t, 26, Age(earliest.AddDate(0, 0, -1), today))
	assert.Equal(t, 17, Age(latest.AddDate(0, 0, 1), today))
}
