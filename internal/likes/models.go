package likes

import "time"

// Like is a directed edge from one user to another. At most one like exists
// per ordered pair; likes are never updated, only created and deleted.
type Like struct {
	ID          int64     `json:"id" db:"id"`
	FromUserID  string    `json:"from_user_id" db:"from_user_id"`
	ToUserID    string    `json:"to_user_id" db:"to_user_id"`
	IsSuperlike bool      `json:"is_superlike" db:"is_superlike"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// MutualLike holds both directions of a reciprocal like pair
type MutualLike struct {
	Outbound *Like `json:"outbound"`
	Inbound  *Like `json:"inbound"`
}
