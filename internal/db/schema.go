package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// schema is applied at startup; all statements are idempotent.
//
// votes.user_id is UNIQUE: each user has at most one logical current vote,
// and saving a ranking replaces its items rather than accumulating history.
const schema = `
CREATE TABLE IF NOT EXISTS users (
	id            TEXT PRIMARY KEY,
	name          TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	role          TEXT NOT NULL DEFAULT 'user',
	created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS videos (
	id           TEXT PRIMARY KEY,
	url          TEXT NOT NULL,
	title        TEXT,
	description  TEXT,
	channel_name TEXT,
	is_active    BOOLEAN NOT NULL DEFAULT TRUE,
	created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS video_cast (
	video_id TEXT NOT NULL REFERENCES videos(id) ON DELETE CASCADE,
	user_id  TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	PRIMARY KEY (video_id, user_id)
);

CREATE TABLE IF NOT EXISTS votes (
	id           TEXT PRIMARY KEY,
	user_id      TEXT NOT NULL UNIQUE REFERENCES users(id) ON DELETE CASCADE,
	is_submitted BOOLEAN NOT NULL DEFAULT FALSE,
	submitted_at TIMESTAMPTZ,
	updated_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS vote_items (
	vote_id  TEXT NOT NULL REFERENCES votes(id) ON DELETE CASCADE,
	video_id TEXT NOT NULL REFERENCES videos(id) ON DELETE CASCADE,
	rank     INTEGER NOT NULL CHECK (rank >= 1),
	PRIMARY KEY (vote_id, video_id),
	UNIQUE (vote_id, rank)
);

CREATE TABLE IF NOT EXISTS comments (
	id         TEXT PRIMARY KEY,
	video_id   TEXT NOT NULL REFERENCES videos(id) ON DELETE CASCADE,
	user_id    TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	body       TEXT NOT NULL DEFAULT '',
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	UNIQUE (video_id, user_id)
);

CREATE INDEX IF NOT EXISTS idx_vote_items_video ON vote_items(video_id);
CREATE INDEX IF NOT EXISTS idx_video_cast_user ON video_cast(user_id);
`

// EnsureSchema creates all tables and indexes if they do not exist yet.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}
