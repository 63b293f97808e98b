package likes

// DTOs for API requests/responses

type CreateLikeRequest struct {
	ToUserID    string `json:"to_user" validate:"required,uuid"`
	IsSuperlike bool   `json:"is_superlike"`
}

// CreateLikeResult reports the persisted like and whether it completed a
// reciprocal pair into a match.
type CreateLikeResult struct {
	Like         *Like  `json:"like"`
	MatchCreated bool   `json:"match_created"`
	MatchID      *int64 `json:"match_id,omitempty"`
}

// SuperlikesRemainingResponse reports today's unused superlike budget
type SuperlikesRemainingResponse struct {
	Remaining int `json:"remaining"`
	DailyCap  int `json:"daily_cap"`
}
