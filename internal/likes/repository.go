// internal/likes/repository.go

package likes

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/campusmatch/campusmatch-backend/internal/common/apperr"
	"github.com/campusmatch/campusmatch-backend/internal/common/database"
)

// Repository defines the likes repository interface. WithTx binds the
// repository to an open transaction; the like insert, reciprocal lookup,
// and match creation must all observe the same transaction.
type Repository interface {
	WithTx(tx *sqlx.Tx) Repository

	// AcquirePairLock serializes concurrent like attempts between the same
	// two users for the remainder of the transaction.
	AcquirePairLock(ctx context.Context, userA, userB string) error

	CreateLike(ctx context.Context, like *Like) error
	GetLike(ctx context.Context, fromUserID, toUserID string) (*Like, error)
	LikeExists(ctx context.Context, fromUserID, toUserID string) (bool, error)
	DeleteLike(ctx context.Context, fromUserID, toUserID string) error
	ListSent(ctx context.Context, userID string, limit, offset int) ([]*Like, error)
	ListReceived(ctx context.Context, userID string, limit, offset int) ([]*Like, error)
	CountSuperlikesSince(ctx context.Context, userID string, since time.Time) (int, error)
	FindLikedUserIDs(ctx context.Context, fromUserID string) ([]string, error)
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

// AcquirePairLock takes a transaction-scoped advisory lock keyed on the
// unordered pair, so two users liking each other in the same instant cannot
// both miss the reciprocal like.
func (r *postgresRepository) AcquirePairLock(ctx context.Context, userA, userB string) error {
	if userA > userB {
		userA, userB = userB, userA
	}

	query := `SELECT pg_advisory_xact_lock(hashtextextended($1 || ':' || $2, 0))`
	if _, err := r.q.ExecContext(ctx, query, userA, userB); err != nil {
		return fmt.Errorf("failed to lock pair: %w", err)
	}
	return nil
}

func (r *postgresRepository) CreateLike(ctx context.Context, like *Like) error {
	query := `
		INSERT INTO likes (from_user_id, to_user_id, is_superlike)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`

	err := r.q.QueryRowxContext(ctx, query, like.FromUserID, like.ToUserID, like.IsSuperlike).
		Scan(&like.ID, &like.CreatedAt)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return apperr.Conflict("you already liked this user")
		}
		return fmt.Errorf("failed to create like: %w", err)
	}

	return nil
}

func (r *postgresRepository) GetLike(ctx context.Context, fromUserID, toUserID string) (*Like, error) {
	var like Like
	query := `
		SELECT id, from_user_id, to_user_id, is_superlike, created_at
		FROM likes
		WHERE from_user_id = $1 AND to_user_id = $2`

	err := r.q.GetContext(ctx, &like, query, fromUserID, toUserID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperr.NotFound("like not found")
		}
		return nil, fmt.Errorf("failed to get like: %w", err)
	}

	return &like, nil
}

func (r *postgresRepository) LikeExists(ctx context.Context, fromUserID, toUserID string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM likes WHERE from_user_id = $1 AND to_user_id = $2)`

	if err := r.q.GetContext(ctx, &exists, query, fromUserID, toUserID); err != nil {
		return false, fmt.Errorf("failed to check like: %w", err)
	}
	return exists, nil
}

func (r *postgresRepository) DeleteLike(ctx context.Context, fromUserID, toUserID string) error {
	result, err := r.q.ExecContext(ctx,
		`DELETE FROM likes WHERE from_user_id = $1 AND to_user_id = $2`,
		fromUserID, toUserID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete like: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return apperr.NotFound("like not found")
	}

	return nil
}

func (r *postgresRepository) ListSent(ctx context.Context, userID string, limit, offset int) ([]*Like, error) {
	query := `
		SELECT id, from_user_id, to_user_id, is_superlike, created_at
		FROM likes
		WHERE from_user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`

	var results []*Like
	if err := r.q.SelectContext(ctx, &results, query, userID, limit, offset); err != nil {
		return nil, fmt.Errorf("failed to list sent likes: %w", err)
	}
	return results, nil
}

func (r *postgresRepository) ListReceived(ctx context.Context, userID string, limit, offset int) ([]*Like, error) {
	query := `
		SELECT id, from_user_id, to_user_id, is_superlike, created_at
		FROM likes
		WHERE to_user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`

	var results []*Like
	if err := r.q.SelectContext(ctx, &results, query, userID, limit, offset); err != nil {
		return nil, fmt.Errorf("failed to list received likes: %w", err)
	}
	return results, nil
}

func (r *postgresRepository) CountSuperlikesSince(ctx context.Context, userID string, since time.Time) (int, error) {
	var count int
	query := `
		SELECT COUNT(*)
		FROM likes
		WHERE from_user_id = $1 AND is_superlike = TRUE AND created_at >= $2`

	if err := r.q.GetContext(ctx, &count, query, userID, since); err != nil {
		return 0, fmt.Errorf("failed to count superlikes: %w", err)
	}
	return count, nil
}

func (r *postgresRepository) FindLikedUserIDs(ctx context.Context, fromUserID string) ([]string, error) {
	var ids []string
	query := `SELECT to_user_id FROM likes WHERE from_user_id = $1`

	if err := r.q.SelectContext(ctx, &ids, query, fromUserID); err != nil {
		return nil, fmt.Errorf("failed to list liked users: %w", err)
	}
	return ids, nil
}
