package discover

import "github.com/campusmatch/campusmatch-backend/internal/profile"

// ScoredCandidate pairs a candidate profile with its computed compatibility
// score. It exists only for the duration of one feed request and is never
// persisted.
type ScoredCandidate struct {
	*profile.Profile
	CompatibilityScore int `json:"compatibility_score"`
}
