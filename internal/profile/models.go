package profile

import (
	"time"

	"github.com/lib/pq"
)

// Relationship intents a profile can state
const (
	IntentSeriousRelationship = "serious_relationship"
	IntentCasualDating        = "casual_dating"
	IntentFriendship          = "friendship"
	IntentStudyPartner        = "study_partner"
	IntentHookup              = "hookup"
	IntentUnsure              = "unsure"
)

// Profile is a user's dating profile, one per account. It cascades with
// account deletion and is never hard-deleted on its own.
type Profile struct {
	UserID            string         `json:"user_id" db:"user_id"`
	Birthdate         time.Time      `json:"birthdate" db:"birthdate"`
	Gender            string         `json:"gender" db:"gender"`
	Pronouns          *string        `json:"pronouns,omitempty" db:"pronouns"`
	SexualOrientation string         `json:"sexual_orientation" db:"sexual_orientation"`
	UniversityID      string         `json:"university_id" db:"university_id"`
	Bio               *string        `json:"bio,omitempty" db:"bio"`
	Interests         pq.StringArray `json:"interests" db:"interests"`
	GenderPreference  pq.StringArray `json:"gender_preference" db:"gender_preference"`
	MinAge            int            `json:"min_age" db:"min_age"`
	MaxAge            int            `json:"max_age" db:"max_age"`
	Intent            string         `json:"intent" db:"intent"`
	AvatarURL         *string        `json:"avatar_url,omitempty" db:"avatar_url"`
	Photos            pq.StringArray `json:"photos" db:"photos"`
	CreatedAt         time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at" db:"updated_at"`
}

// Block is a directed block record. Directionality is preserved for audit;
// filtering treats the pair symmetrically.
type Block struct {
	BlockerID string    `json:"blocker_id" db:"blocker_id"`
	BlockedID string    `json:"blocked_id" db:"blocked_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// CandidateCriteria is the coarse pre-pass filter for discovery candidates.
// All conditions must hold; the result is a bounded pool for scoring, not
// the final ranked feed.
type CandidateCriteria struct {
	RequesterID       string
	ExcludeUserIDs    []string
	UniversityID      string
	AcceptedGenders   []string // requester's gender preference
	RequesterGender   string   // must appear in the candidate's preference
	RequesterAge      int      // must lie in the candidate's stated range
	EarliestBirthdate time.Time
	LatestBirthdate   time.Time
	Limit             int
}
