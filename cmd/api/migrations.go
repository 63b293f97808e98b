// cmd/api/migrations.go
// Idempotent schema setup run at startup

package main

import (
	"fmt"
	"log"

	"github.com/jmoiron/sqlx"
)

// runMigrations creates the schema if it does not exist yet. Every
// statement is idempotent so repeated startups are safe.
func runMigrations(db *sqlx.DB) error {
	log.Println("   - Creating/updating tables...")

	migrations := []string{
		// Dating profiles, one per account. user_id comes from the external
		// auth service, so there is no local users table to reference.
		`CREATE TABLE IF NOT EXISTS profiles (
			user_id UUID PRIMARY KEY,
			birthdate DATE NOT NULL,
			gender VARCHAR(50) NOT NULL,
			pronouns VARCHAR(50),
			sexual_orientation VARCHAR(50) NOT NULL,
			university_id TEXT NOT NULL,
			bio TEXT,
			interests TEXT[] NOT NULL DEFAULT '{}',
			gender_preference TEXT[] NOT NULL DEFAULT '{}',
			min_age INTEGER NOT NULL CHECK (min_age >= 18),
			max_age INTEGER NOT NULL CHECK (max_age >= min_age),
			intent VARCHAR(50) NOT NULL,
			avatar_url TEXT,
			photos TEXT[] NOT NULL DEFAULT '{}',
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE TABLE IF NOT EXISTS blocks (
			blocker_id UUID NOT NULL,
			blocked_id UUID NOT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (blocker_id, blocked_id),
			CHECK (blocker_id <> blocked_id)
		)`,

		// At most one like per ordered pair
		`CREATE TABLE IF NOT EXISTS likes (
			id BIGSERIAL PRIMARY KEY,
			from_user_id UUID NOT NULL,
			to_user_id UUID NOT NULL,
			is_superlike BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			UNIQUE (from_user_id, to_user_id),
			CHECK (from_user_id <> to_user_id)
		)`,

		// Matches store the pair in sorted order so each unordered pair maps
		// to exactly one row
		`CREATE TABLE IF NOT EXISTS matches (
			id BIGSERIAL PRIMARY KEY,
			user1_id UUID NOT NULL,
			user2_id UUID NOT NULL,
			matched_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			UNIQUE (user1_id, user2_id),
			CHECK (user1_id < user2_id)
		)`,

		// Discovery pre-pass indexes
		`CREATE INDEX IF NOT EXISTS idx_profiles_university ON profiles(university_id)`,
		`CREATE INDEX IF NOT EXISTS idx_profiles_birthdate ON profiles(birthdate)`,

		`CREATE INDEX IF NOT EXISTS idx_likes_to_user ON likes(to_user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_likes_superlikes ON likes(from_user_id, created_at) WHERE is_superlike`,

		`CREATE INDEX IF NOT EXISTS idx_matches_user1 ON matches(user1_id)`,
		`CREATE INDEX IF NOT EXISTS idx_matches_user2 ON matches(user2_id)`,

		`CREATE INDEX IF NOT EXISTS idx_blocks_blocked ON blocks(blocked_id)`,
	}

	for i, migration := range migrations {
		if _, err := db.Exec(migration); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}

	return nil
}
