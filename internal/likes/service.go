// internal/likes/service.go
// Like creation and the atomic mutual-like-to-match transition.

package likes

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/campusmatch/campusmatch-backend/internal/common/apperr"
	"github.com/campusmatch/campusmatch-backend/internal/common/database"
	"github.com/campusmatch/campusmatch-backend/internal/matches"
	"github.com/campusmatch/campusmatch-backend/internal/profile"
)

// SuperlikeDailyCap is the number of superlikes a user may send per
// calendar day. Regular likes are not capped.
const SuperlikeDailyCap = 5

const defaultListLimit = 50

// ProfileRepository is the slice of the profile repository like validation
// needs.
type ProfileRepository interface {
	GetProfileByUserID(ctx context.Context, userID string) (*profile.Profile, error)
	IsBlockedBetween(ctx context.Context, userA, userB string) (bool, error)
}

// Service interface
type Service interface {
	CreateLike(ctx context.Context, fromUserID, toUserID string, isSuperlike bool) (*CreateLikeResult, error)
	GetLikes(ctx context.Context, userID, listType string, limit, offset int) ([]*Like, error)
	RemoveLike(ctx context.Context, callerID, fromUserID, toUserID string) error
	GetMutualLike(ctx context.Context, userA, userB string) (*MutualLike, error)
	SuperlikesRemaining(ctx context.Context, userID string) (int, error)
}

type service struct {
	repo     Repository
	matches  matches.Repository
	profiles ProfileRepository
	tx       database.Transactor
	now      func() time.Time
}

// NewService creates the likes service
func NewService(repo Repository, matchRepo matches.Repository, profiles ProfileRepository, tx database.Transactor) Service {
	return &service{
		repo:     repo,
		matches:  matchRepo,
		profiles: profiles,
		tx:       tx,
		now:      time.Now,
	}
}

// CreateLike validates the request, persists the like, and creates a match
// when a reciprocal like exists. The duplicate check, superlike cap, like
// insert, reciprocal lookup, and match creation all run inside one
// transaction: either everything commits or nothing does.
func (s *service) CreateLike(ctx context.Context, fromUserID, toUserID string, isSuperlike bool) (*CreateLikeResult, error) {
	if fromUserID == toUserID {
		return nil, apperr.Validation("you cannot like yourself")
	}

	fromProfile, err := s.profiles.GetProfileByUserID(ctx, fromUserID)
	if err != nil {
		return nil, err
	}

	toProfile, err := s.profiles.GetProfileByUserID(ctx, toUserID)
	if err != nil {
		return nil, err
	}

	if fromProfile.UniversityID != toProfile.UniversityID {
		return nil, apperr.PolicyViolation("you can only like students at your own university")
	}

	blocked, err := s.profiles.IsBlockedBetween(ctx, fromUserID, toUserID)
	if err != nil {
		return nil, err
	}
	if blocked {
		return nil, apperr.PolicyViolation("you cannot like this user")
	}

	result := &CreateLikeResult{}

	err = s.tx.InTx(ctx, func(tx *sqlx.Tx) error {
		likeRepo := s.repo.WithTx(tx)
		matchRepo := s.matches.WithTx(tx)

		if err := likeRepo.AcquirePairLock(ctx, fromUserID, toUserID); err != nil {
			return err
		}

		exists, err := likeRepo.LikeExists(ctx, fromUserID, toUserID)
		if err != nil {
			return err
		}
		if exists {
			return apperr.Conflict("you already liked this user")
		}

		if isSuperlike {
			count, err := likeRepo.CountSuperlikesSince(ctx, fromUserID, startOfDay(s.now()))
			if err != nil {
				return err
			}
			if count >= SuperlikeDailyCap {
				return apperr.PolicyViolation("daily superlike limit reached")
			}
		}

		like := &Like{
			FromUserID:  fromUserID,
			ToUserID:    toUserID,
			IsSuperlike: isSuperlike,
		}
		if err := likeRepo.CreateLike(ctx, like); err != nil {
			return err
		}
		result.Like = like

		reciprocal, err := likeRepo.LikeExists(ctx, toUserID, fromUserID)
		if err != nil {
			return err
		}
		if !reciprocal {
			return nil
		}

		// A failed match creation aborts the whole transaction: a committed
		// like with a silently dropped match would be an undetectable
		// inconsistency.
		match, err := matchRepo.GetMatchByUsers(ctx, fromUserID, toUserID)
		if apperr.IsKind(err, apperr.KindNotFound) {
			match, err = matchRepo.CreateMatch(ctx, fromUserID, toUserID)
		}
		if err != nil {
			return err
		}

		result.MatchCreated = true
		result.MatchID = &match.ID
		return nil
	})
	if err != nil {
		return nil, err
	}

	RecordLike(isSuperlike)
	if result.MatchCreated {
		RecordMatch()
	}

	return result, nil
}

func (s *service) GetLikes(ctx context.Context, userID, listType string, limit, offset int) ([]*Like, error) {
	if limit <= 0 || limit > defaultListLimit {
		limit = defaultListLimit
	}
	if offset < 0 {
		offset = 0
	}

	switch listType {
	case "sent":
		return s.repo.ListSent(ctx, userID, limit, offset)
	case "received":
		return s.repo.ListReceived(ctx, userID, limit, offset)
	default:
		return nil, apperr.Validation("type must be 'sent' or 'received'")
	}
}

// RemoveLike deletes a like. Only its sender may remove it. Any match the
// like produced is deliberately left in place.
func (s *service) RemoveLike(ctx context.Context, callerID, fromUserID, toUserID string) error {
	if callerID != fromUserID {
		return apperr.Authorization("only the sender can remove a like")
	}

	return s.repo.DeleteLike(ctx, fromUserID, toUserID)
}

// GetMutualLike returns both directions of a reciprocal pair, or NotFound
// when either direction is missing.
func (s *service) GetMutualLike(ctx context.Context, userA, userB string) (*MutualLike, error) {
	outbound, err := s.repo.GetLike(ctx, userA, userB)
	if err != nil {
		return nil, err
	}

	inbound, err := s.repo.GetLike(ctx, userB, userA)
	if err != nil {
		return nil, err
	}

	return &MutualLike{Outbound: outbound, Inbound: inbound}, nil
}

func (s *service) SuperlikesRemaining(ctx context.Context, userID string) (int, error) {
	count, err := s.repo.CountSuperlikesSince(ctx, userID, startOfDay(s.now()))
	if err != nil {
		return 0, err
	}

	remaining := SuperlikeDailyCap - count
	if remaining < 0 {
		remaining = 0
	}
	return remaining, nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
