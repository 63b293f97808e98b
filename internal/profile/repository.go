// internal/profile/repository.go

package profile

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/campusmatch/campusmatch-backend/internal/common/apperr"
)

// Repository defines the profile repository interface
type Repository interface {
	// Profile CRUD
	GetProfileByUserID(ctx context.Context, userID string) (*Profile, error)
	CreateProfile(ctx context.Context, p *Profile) error
	UpdateProfile(ctx context.Context, p *Profile) error

	// Discovery pre-pass
	FindCandidates(ctx context.Context, criteria *CandidateCriteria) ([]*Profile, error)

	// Blocking
	BlockUser(ctx context.Context, blockerID, blockedID string) error
	UnblockUser(ctx context.Context, blockerID, blockedID string) error
	FindBlockedUserIDs(ctx context.Context, userID string) ([]string, error)
	IsBlockedBetween(ctx context.Context, userA, userB string) (bool, error)
}

// postgresRepository implements Repository using PostgreSQL
type postgresRepository struct {
	db *sqlx.DB
}

// NewPostgresRepository creates a new PostgreSQL repository
func NewPostgresRepository(db *sqlx.DB) Repository {
	return &postgresRepository{db: db}
}

const profileColumns = `
	user_id, birthdate, gender, pronouns, sexual_orientation, university_id,
	bio, interests, gender_preference, min_age, max_age, intent,
	avatar_url, photos, created_at, updated_at`

// GetProfileByUserID retrieves a profile by user ID
func (r *postgresRepository) GetProfileByUserID(ctx context.Context, userID string) (*Profile, error) {
	var p Profile
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE user_id = $1`

	err := r.db.GetContext(ctx, &p, query, userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperr.NotFound("profile not found")
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	return &p, nil
}

// CreateProfile inserts a new profile created during onboarding
func (r *postgresRepository) CreateProfile(ctx context.Context, p *Profile) error {
	query := `
		INSERT INTO profiles (
			user_id, birthdate, gender, pronouns, sexual_orientation, university_id,
			bio, interests, gender_preference, min_age, max_age, intent,
			avatar_url, photos
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING created_at, updated_at`

	err := r.db.QueryRowxContext(
		ctx, query,
		p.UserID, p.Birthdate, p.Gender, p.Pronouns, p.SexualOrientation, p.UniversityID,
		p.Bio, p.Interests, p.GenderPreference, p.MinAge, p.MaxAge, p.Intent,
		p.AvatarURL, p.Photos,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return apperr.Conflict("profile already exists")
		}
		return fmt.Errorf("failed to create profile: %w", err)
	}

	return nil
}

// UpdateProfile persists user-editable profile fields
func (r *postgresRepository) UpdateProfile(ctx context.Context, p *Profile) error {
	query := `
		UPDATE profiles
		SET bio = $2, pronouns = $3, interests = $4, gender_preference = $5,
		    min_age = $6, max_age = $7, intent = $8, avatar_url = $9, photos = $10,
		    updated_at = CURRENT_TIMESTAMP
		WHERE user_id = $1
		RETURNING updated_at`

	err := r.db.QueryRowxContext(
		ctx, query,
		p.UserID, p.Bio, p.Pronouns, p.Interests, p.GenderPreference,
		p.MinAge, p.MaxAge, p.Intent, p.AvatarURL, p.Photos,
	).Scan(&p.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return apperr.NotFound("profile not found")
		}
		return fmt.Errorf("failed to update profile: %w", err)
	}

	return nil
}

// FindCandidates returns profiles passing every hard discovery filter:
// same institution, mutual gender preference, mutual age containment,
// non-empty preferences and interests, and not in the exclusion set.
func (r *postgresRepository) FindCandidates(ctx context.Context, criteria *CandidateCriteria) ([]*Profile, error) {
	query := `
		SELECT ` + profileColumns + `
		FROM profiles p
		WHERE p.user_id <> $1
		  AND p.user_id <> ALL($2::uuid[])
		  AND p.university_id = $3
		  AND p.gender = ANY($4)
		  AND $5 = ANY(p.gender_preference)
		  AND p.birthdate BETWEEN $6 AND $7
		  AND p.min_age <= $8 AND p.max_age >= $8
		  AND cardinality(p.gender_preference) > 0
		  AND cardinality(p.interests) > 0
		LIMIT $9`

	var candidates []*Profile
	err := r.db.SelectContext(
		ctx, &candidates, query,
		criteria.RequesterID,
		pq.Array(criteria.ExcludeUserIDs),
		criteria.UniversityID,
		pq.Array(criteria.AcceptedGenders),
		criteria.RequesterGender,
		criteria.EarliestBirthdate,
		criteria.LatestBirthdate,
		criteria.RequesterAge,
		criteria.Limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to find candidates: %w", err)
	}

	return candidates, nil
}

// BlockUser records a directed block
func (r *postgresRepository) BlockUser(ctx context.Context, blockerID, blockedID string) error {
	query := `
		INSERT INTO blocks (blocker_id, blocked_id)
		VALUES ($1, $2)
		ON CONFLICT (blocker_id, blocked_id) DO NOTHING`

	if _, err := r.db.ExecContext(ctx, query, blockerID, blockedID); err != nil {
		return fmt.Errorf("failed to block user: %w", err)
	}
	return nil
}

// UnblockUser removes a directed block
func (r *postgresRepository) UnblockUser(ctx context.Context, blockerID, blockedID string) error {
	query := `DELETE FROM blocks WHERE blocker_id = $1 AND blocked_id = $2`

	if _, err := r.db.ExecContext(ctx, query, blockerID, blockedID); err != nil {
		return fmt.Errorf("failed to unblock user: %w", err)
	}
	return nil
}

// FindBlockedUserIDs returns every user on either side of a block involving
// userID.
func (r *postgresRepository) FindBlockedUserIDs(ctx context.Context, userID string) ([]string, error) {
	query := `
		SELECT CASE WHEN blocker_id = $1 THEN blocked_id ELSE blocker_id END
		FROM blocks
		WHERE blocker_id = $1 OR blocked_id = $1`

	var ids []string
	if err := r.db.SelectContext(ctx, &ids, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list blocked users: %w", err)
	}
	return ids, nil
}

// IsBlockedBetween reports whether a block exists in either direction
func (r *postgresRepository) IsBlockedBetween(ctx context.Context, userA, userB string) (bool, error) {
	var exists bool
	query := `
		SELECT EXISTS(
			SELECT 1 FROM blocks
			WHERE (blocker_id = $1 AND blocked_id = $2)
			   OR (blocker_id = $2 AND blocked_id = $1)
		)`

	if err := r.db.GetContext(ctx, &exists, query, userA, userB); err != nil {
		return false, fmt.Errorf("failed to check block: %w", err)
	}
	return exists, nil
}
