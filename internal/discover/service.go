// internal/discover/service.go
// Discovery feed orchestration: eligibility filtering, scoring, tiered
// randomized ranking, and pagination.

package discover

import (
	"context"
	"math/rand"
	"time"

	"github.com/campusmatch/campusmatch-backend/internal/common/apperr"
	"github.com/campusmatch/campusmatch-backend/internal/profile"
)

const (
	// candidatePoolLimit caps the eligibility pre-pass. The filter is a
	// coarse SQL pass; scoring and ranking handle the rest in memory.
	candidatePoolLimit = 200

	// Feed page bounds
	DefaultLimit = 20
	MaxLimit     = 50
)

// ProfileRepository is the slice of the profile repository the feed needs
type ProfileRepository interface {
	GetProfileByUserID(ctx context.Context, userID string) (*profile.Profile, error)
	FindCandidates(ctx context.Context, criteria *profile.CandidateCriteria) ([]*profile.Profile, error)
	FindBlockedUserIDs(ctx context.Context, userID string) ([]string, error)
}

// LikeRepository exposes the like edges needed to build the exclusion set
type LikeRepository interface {
	FindLikedUserIDs(ctx context.Context, fromUserID string) ([]string, error)
}

// MatchRepository exposes the match edges needed to build the exclusion set
type MatchRepository interface {
	FindMatchedUserIDs(ctx context.Context, userID string) ([]string, error)
}

// Service is the discovery feed interface
type Service interface {
	GetDiscoverProfiles(ctx context.Context, userID string, limit, offset int) (*FeedResponse, error)
}

type service struct {
	profiles ProfileRepository
	likes    LikeRepository
	matches  MatchRepository

	// newRand supplies the shuffle source; tests inject a seeded one. A
	// fresh source per request keeps ranking safe under concurrent feeds.
	newRand func() *rand.Rand
	now     func() time.Time
}

// NewService creates the discovery service
func NewService(profiles ProfileRepository, likes LikeRepository, matches MatchRepository) Service {
	return &service{
		profiles: profiles,
		likes:    likes,
		matches:  matches,
		newRand: func() *rand.Rand {
			return rand.New(rand.NewSource(time.Now().UnixNano()))
		},
		now: time.Now,
	}
}

func (s *service) GetDiscoverProfiles(ctx context.Context, userID string, limit, offset int) (*FeedResponse, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	if offset < 0 {
		return nil, apperr.Validation("offset must not be negative")
	}

	requester, err := s.profiles.GetProfileByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	candidates, err := s.getEligibleCandidates(ctx, userID, requester)
	if err != nil {
		return nil, err
	}

	scored := make([]*ScoredCandidate, 0, len(candidates))
	for _, candidate := range candidates {
		score := CompatibilityScore(requester, candidate)
		RecordCompatibilityScore(score)
		scored = append(scored, &ScoredCandidate{
			Profile:            candidate,
			CompatibilityScore: score,
		})
	}

	ranked := RankWithRandomization(scored, s.newRand())
	page := paginate(ranked, offset, limit)

	RecordFeedRequest(len(candidates))

	return &FeedResponse{
		Profiles: page,
		Count:    len(page),
		Limit:    limit,
		Offset:   offset,
		HasMore:  len(page) == limit,
	}, nil
}

// getEligibleCandidates runs the hard filters: a stated gender preference is
// required, and everyone already liked, matched, or blocked is excluded
// before the mutual-preference SQL pass.
func (s *service) getEligibleCandidates(ctx context.Context, userID string, requester *profile.Profile) ([]*profile.Profile, error) {
	if len(requester.GenderPreference) == 0 {
		return nil, apperr.Validation("set a gender preference to discover people")
	}

	liked, err := s.likes.FindLikedUserIDs(ctx, userID)
	if err != nil {
		return nil, err
	}

	matched, err := s.matches.FindMatchedUserIDs(ctx, userID)
	if err != nil {
		return nil, err
	}

	blocked, err := s.profiles.FindBlockedUserIDs(ctx, userID)
	if err != nil {
		return nil, err
	}

	exclude := make([]string, 0, len(liked)+len(matched)+len(blocked))
	exclude = append(exclude, liked...)
	exclude = append(exclude, matched...)
	exclude = append(exclude, blocked...)

	today := s.now()
	earliest, latest := BirthdateRange(requester.MinAge, requester.MaxAge, today)

	return s.profiles.FindCandidates(ctx, &profile.CandidateCriteria{
		RequesterID:       userID,
		ExcludeUserIDs:    exclude,
		UniversityID:      requester.UniversityID,
		AcceptedGenders:   requester.GenderPreference,
		RequesterGender:   requester.Gender,
		RequesterAge:      Age(requester.Birthdate, today),
		EarliestBirthdate: earliest,
		LatestBirthdate:   latest,
		Limit:             candidatePoolLimit,
	})
}

func paginate(ranked []*ScoredCandidate, offset, limit int) []*ScoredCandidate {
	if offset >= len(ranked) {
		return []*ScoredCandidate{}
	}

	end := offset + limit
	if end > len(ranked) {
		end = len(ranked)
	}
	return ranked[offset:end]
}
