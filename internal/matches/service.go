// internal/matches/service.go

package matches

import (
	"context"

	"github.com/campusmatch/campusmatch-backend/internal/common/apperr"
)

const defaultListLimit = 50

// Service interface
type Service interface {
	GetMatches(ctx context.Context, userID string, limit, offset int) ([]*Match, error)
	Unmatch(ctx context.Context, matchID int64, userID string) error
	IsMatched(ctx context.Context, userA, userB string) (bool, error)
}

type service struct {
	repo Repository
}

// NewService creates the matches service
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetMatches(ctx context.Context, userID string, limit, offset int) ([]*Match, error) {
	if limit <= 0 || limit > defaultListLimit {
		limit = defaultListLimit
	}
	if offset < 0 {
		offset = 0
	}

	return s.repo.ListMatchesFor(ctx, userID, limit, offset)
}

// Unmatch removes a match. Only a participant may do so.
func (s *service) Unmatch(ctx context.Context, matchID int64, userID string) error {
	match, err := s.repo.GetMatch(ctx, matchID)
	if err != nil {
		return err
	}

	if !match.Involves(userID) {
		return apperr.Authorization("only a participant can remove a match")
	}

	return s.repo.DeleteMatch(ctx, matchID)
}

func (s *service) IsMatched(ctx context.Context, userA, userB string) (bool, error) {
	return s.repo.IsMatched(ctx, userA, userB)
}
