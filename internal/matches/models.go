package matches

import "time"

// Match is an undirected edge stored as an ordered pair: user1_id sorts
// before user2_id so each unordered pair maps to exactly one row. A match is
// created only when reciprocal likes exist at creation time, and is removed
// only by explicit unmatch (removing a like later does not retract it).
type Match struct {
	ID        int64     `json:"id" db:"id"`
	User1ID   string    `json:"user1_id" db:"user1_id"`
	User2ID   string    `json:"user2_id" db:"user2_id"`
	MatchedAt time.Time `json:"matched_at" db:"matched_at"`

	// Joined counterpart summary, populated on list reads
	MatchedUser *MatchedUser `json:"matched_user,omitempty"`
}

// MatchedUser is the counterpart profile summary shown in match lists
type MatchedUser struct {
	UserID    string  `json:"user_id" db:"user_id"`
	Bio       *string `json:"bio,omitempty" db:"bio"`
	AvatarURL *string `json:"avatar_url,omitempty" db:"avatar_url"`
}

// NormalizePair orders two user IDs into storage order
func NormalizePair(a, b string) (string, string) {
	if a > b {
		return b, a
	}
	return a, b
}

// Counterpart returns the other user in the match
func (m *Match) Counterpart(userID string) string {
	if m.User1ID == userID {
		return m.User2ID
	}
	return m.User1ID
}

// Involves reports whether userID is one of the two matched users
func (m *Match) Involves(userID string) bool {
	return m.User1ID == userID || m.User2ID == userID
}
