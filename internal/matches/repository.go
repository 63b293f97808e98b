// internal/matches/repository.go

package matches

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/campusmatch/campusmatch-backend/internal/common/apperr"
	"github.com/campusmatch/campusmatch-backend/internal/common/database"
)

// Repository defines the matches repository interface. WithTx binds the
// repository to an open transaction so match creation can share the like
// transaction.
type Repository interface {
	WithTx(tx *sqlx.Tx) Repository

	CreateMatch(ctx context.Context, userA, userB string) (*Match, error)
	GetMatch(ctx context.Context, id int64) (*Match, error)
	GetMatchByUsers(ctx context.Context, userA, userB string) (*Match, error)
	ListMatchesFor(ctx context.Context, userID string, limit, offset int) ([]*Match, error)
	DeleteMatch(ctx context.Context, id int64) error
	FindMatchedUserIDs(ctx context.Context, userID string) ([]string, error)
	IsMatched(ctx context.Context, userA, userB string) (bool, error)
}

type postgresRepository struct {
	db *sqlx.DB
	q  database.Querier
}

// NewPostgresRepository creates a new PostgreSQL repository
func NewPostgresRepository(db *sqlx.DB) Repository {
	return &postgresRepository{db: db, q: db}
}

func (r *postgresRepository) WithTx(tx *sqlx.Tx) Repository {
	return &postgresRepository{db: r.db, q: tx}
}

// CreateMatch inserts the ordered pair. The conflict clause makes creation
// idempotent: a concurrent or earlier insert for the same pair yields the
// existing row instead of an error or a duplicate.
func (r *postgresRepository) CreateMatch(ctx context.Context, userA, userB string) (*Match, error) {
	user1, user2 := NormalizePair(userA, userB)

	query := `
		INSERT INTO matches (user1_id, user2_id)
		VALUES ($1, $2)
		ON CONFLICT (user1_id, user2_id) DO UPDATE SET user1_id = EXCLUDED.user1_id
		RETURNING id, user1_id, user2_id, matched_at`

	var match Match
	err := r.q.QueryRowxContext(ctx, query, user1, user2).StructScan(&match)
	if err != nil {
		return nil, fmt.Errorf("failed to create match: %w", err)
	}

	return &match, nil
}

func (r *postgresRepository) GetMatch(ctx context.Context, id int64) (*Match, error) {
	var match Match
	query := `SELECT id, user1_id, user2_id, matched_at FROM matches WHERE id = $1`

	err := r.q.GetContext(ctx, &match, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperr.NotFound("match not found")
		}
		return nil, fmt.Errorf("failed to get match: %w", err)
	}

	return &match, nil
}

func (r *postgresRepository) GetMatchByUsers(ctx context.Context, userA, userB string) (*Match, error) {
	user1, user2 := NormalizePair(userA, userB)

	var match Match
	query := `SELECT id, user1_id, user2_id, matched_at FROM matches WHERE user1_id = $1 AND user2_id = $2`

	err := r.q.GetContext(ctx, &match, query, user1, user2)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperr.NotFound("match not found")
		}
		return nil, fmt.Errorf("failed to get match: %w", err)
	}

	return &match, nil
}

// ListMatchesFor returns the user's matches with the counterpart profile
// summary joined in, newest first.
func (r *postgresRepository) ListMatchesFor(ctx context.Context, userID string, limit, offset int) ([]*Match, error) {
	query := `
		SELECT m.id, m.user1_id, m.user2_id, m.matched_at,
		       p.user_id AS "matched_user.user_id",
		       p.bio AS "matched_user.bio",
		       p.avatar_url AS "matched_user.avatar_url"
		FROM matches m
		JOIN profiles p
		  ON p.user_id = CASE WHEN m.user1_id = $1 THEN m.user2_id ELSE m.user1_id END
		WHERE m.user1_id = $1 OR m.user2_id = $1
		ORDER BY m.matched_at DESC
		LIMIT $2 OFFSET $3`

	rows, err := r.q.QueryxContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}
	defer rows.Close()

	var results []*Match
	for rows.Next() {
		var match Match
		var counterpart MatchedUser

		err := rows.Scan(
			&match.ID, &match.User1ID, &match.User2ID, &match.MatchedAt,
			&counterpart.UserID, &counterpart.Bio, &counterpart.AvatarURL,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan match row: %w", err)
		}

		match.MatchedUser = &counterpart
		results = append(results, &match)
	}

	return results, rows.Err()
}

func (r *postgresRepository) DeleteMatch(ctx context.Context, id int64) error {
	result, err := r.q.ExecContext(ctx, `DELETE FROM matches WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete match: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return apperr.NotFound("match not found")
	}

	return nil
}

func (r *postgresRepository) FindMatchedUserIDs(ctx context.Context, userID string) ([]string, error) {
	query := `
		SELECT CASE WHEN user1_id = $1 THEN user2_id ELSE user1_id END
		FROM matches
		WHERE user1_id = $1 OR user2_id = $1`

	var ids []string
	if err := r.q.SelectContext(ctx, &ids, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list matched users: %w", err)
	}
	return ids, nil
}

func (r *postgresRepository) IsMatched(ctx context.Context, userA, userB string) (bool, error) {
	user1, user2 := NormalizePair(userA, userB)

	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM matches WHERE user1_id = $1 AND user2_id = $2)`

	if err := r.q.GetContext(ctx, &exists, query, user1, user2); err != nil {
		return false, fmt.Errorf("failed to check match: %w", err)
	}
	return exists, nil
}
