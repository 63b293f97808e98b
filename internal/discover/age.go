// internal/discover/age.go
// Calendar-aware age arithmetic used by the eligibility filter

package discover

import "time"

// Age returns whole years between birthdate and at. Someone whose birthday
// falls later in the year than at is one year younger than the plain year
// difference.
func Age(birthdate, at time.Time) int {
	years := at.Year() - birthdate.Year()

	anniversary := time.Date(at.Year(), birthdate.Month(), birthdate.Day(), 0, 0, 0, 0, at.Location())
	if at.Before(anniversary) {
		years--
	}

	return years
}

// BirthdateRange returns the inclusive birthdate window whose members are
// aged within [minAge, maxAge] as of today. The earliest bound is one day
// after the (maxAge+1)th birthday threshold, so someone exactly maxAge+1
// years old falls outside; the latest bound is exactly minAge years ago.
func BirthdateRange(minAge, maxAge int, today time.Time) (earliest, latest time.Time) {
	earliest = today.AddDate(-(maxAge + 1), 0, 0).AddDate(0, 0, 1)
	latest = today.AddDate(-minAge, 0, 0)
	return earliest, latest
}
