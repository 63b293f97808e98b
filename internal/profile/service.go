// internal/profile/service.go

package profile

import (
	"context"
	"time"

	"github.com/campusmatch/campusmatch-backend/internal/common/apperr"
)

// Service interface
type Service interface {
	GetMyProfile(ctx context.Context, userID string) (*Profile, error)
	GetProfile(ctx context.Context, requesterID, userID string) (*Profile, error)
	CreateProfile(ctx context.Context, userID string, req *CreateProfileRequest) (*Profile, error)
	UpdateProfile(ctx context.Context, userID string, req *UpdateProfileRequest) (*Profile, error)
	BlockUser(ctx context.Context, userID, targetID string) error
	UnblockUser(ctx context.Context, userID, targetID string) error
}

type service struct {
	repo Repository
}

// NewService creates the profile service
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetMyProfile(ctx context.Context, userID string) (*Profile, error) {
	return s.repo.GetProfileByUserID(ctx, userID)
}

// GetProfile returns another user's profile. Profiles on either side of a
// block are invisible to each other and read as not found.
func (s *service) GetProfile(ctx context.Context, requesterID, userID string) (*Profile, error) {
	if requesterID != userID {
		blocked, err := s.repo.IsBlockedBetween(ctx, requesterID, userID)
		if err != nil {
			return nil, err
		}
		if blocked {
			return nil, apperr.NotFound("profile not found")
		}
	}

	return s.repo.GetProfileByUserID(ctx, userID)
}

func (s *service) CreateProfile(ctx context.Context, userID string, req *CreateProfileRequest) (*Profile, error) {
	birthdate, err := time.Parse("2006-01-02", req.Birthdate)
	if err != nil {
		return nil, apperr.Validation("birthdate must be in YYYY-MM-DD format")
	}

	if req.MinAge > req.MaxAge {
		return nil, apperr.Validation("min_age must not exceed max_age")
	}

	p := &Profile{
		UserID:            userID,
		Birthdate:         birthdate,
		Gender:            req.Gender,
		SexualOrientation: req.SexualOrientation,
		UniversityID:      req.UniversityID,
		Interests:         req.Interests,
		GenderPreference:  req.GenderPreference,
		MinAge:            req.MinAge,
		MaxAge:            req.MaxAge,
		Intent:            req.Intent,
		Photos:            req.Photos,
	}
	if req.Pronouns != "" {
		p.Pronouns = &req.Pronouns
	}
	if req.Bio != "" {
		p.Bio = &req.Bio
	}
	if req.AvatarURL != "" {
		p.AvatarURL = &req.AvatarURL
	}

	if err := s.repo.CreateProfile(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}

func (s *service) UpdateProfile(ctx context.Context, userID string, req *UpdateProfileRequest) (*Profile, error) {
	p, err := s.repo.GetProfileByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Bio != nil {
		p.Bio = req.Bio
	}
	if req.Pronouns != nil {
		p.Pronouns = req.Pronouns
	}
	if req.Interests != nil {
		p.Interests = req.Interests
	}
	if req.GenderPreference != nil {
		p.GenderPreference = req.GenderPreference
	}
	if req.MinAge != nil {
		p.MinAge = *req.MinAge
	}
	if req.MaxAge != nil {
		p.MaxAge = *req.MaxAge
	}
	if req.Intent != nil {
		p.Intent = *req.Intent
	}
	if req.AvatarURL != nil {
		p.AvatarURL = req.AvatarURL
	}
	if req.Photos != nil {
		p.Photos = req.Photos
	}

	if p.MinAge > p.MaxAge {
		return nil, apperr.Validation("min_age must not exceed max_age")
	}

	if err := s.repo.UpdateProfile(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}

func (s *service) BlockUser(ctx context.Context, userID, targetID string) error {
	if userID == targetID {
		return apperr.Validation("cannot block yourself")
	}

	// Target must exist so typos surface instead of creating dangling blocks
	if _, err := s.repo.GetProfileByUserID(ctx, targetID); err != nil {
		return err
	}

	return s.repo.BlockUser(ctx, userID, targetID)
}

func (s *service) UnblockUser(ctx context.Context, userID, targetID string) error {
	if userID == targetID {
		return apperr.Validation("cannot unblock yourself")
	}

	return s.repo.UnblockUser(ctx, userID, targetID)
}
