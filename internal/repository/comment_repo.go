package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/riku-2004/video-voting-app-AI/internal/model"
)

type CommentRepo struct {
	pool *pgxpool.Pool
}

func NewCommentRepo(pool *pgxpool.Pool) *CommentRepo {
	return &CommentRepo{pool: pool}
}

// Get returns the comment body for (videoID, userID), or "" if none exists.
// A missing comment is not an error.
func (r *CommentRepo) Get(ctx context.Context, videoID, userID string) (string, error) {
	var body string
	err := r.pool.QueryRow(ctx,
		`SELECT body FROM comments WHERE video_id = $1 AND user_id = $2`,
		videoID, userID).Scan(&body)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", nil
	}
	return body, err
}

// Upsert stores the comment body for (videoID, userID), overwriting any
// previous body. The (video_id, user_id) unique constraint keeps this to
// exactly one row per pair.
func (r *CommentRepo) Upsert(ctx context.Context, videoID, userID, body string) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO comments (id, video_id, user_id, body)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (video_id, user_id) DO UPDATE
		SET body = EXCLUDED.body, updated_at = NOW()`,
		uuid.NewString(), videoID, userID, body)
	return err
}

// ListAll returns every comment, for results aggregation.
func (r *CommentRepo) ListAll(ctx context.Context) ([]model.Comment, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, video_id, user_id, body, updated_at FROM comments`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []model.Comment
	for rows.Next() {
		var c model.Comment
		if err := rows.Scan(&c.ID, &c.VideoID, &c.UserID, &c.Body, &c.UpdatedAt); err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}
