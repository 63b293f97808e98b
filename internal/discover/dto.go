package discover

// FeedResponse is the paginated discovery feed payload
type FeedResponse struct {
	Profiles []*ScoredCandidate `json:"profiles"`
	Count    int                `json:"count"`
	Limit    int                `json:"limit"`
	Offset   int                `json:"offset"`
	// HasMore is an approximation: true whenever the page came back full.
	// A full final page reports true once more than strictly necessary.
	HasMore bool `json:"has_more"`
}
