package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/riku-2004/video-voting-app-AI/internal/model"
)

type VideoRepo struct {
	pool *pgxpool.Pool
}

func NewVideoRepo(pool *pgxpool.Pool) *VideoRepo {
	return &VideoRepo{pool: pool}
}

const videoColumns = `id, url, title, description, channel_name, is_active, created_at`

func scanVideos(rows pgxRows) ([]model.Video, error) {
	var videos []model.Video
	for rows.Next() {
		var v model.Video
		err := rows.Scan(&v.ID, &v.URL, &v.Title, &v.Description, &v.ChannelName, &v.IsActive, &v.CreatedAt)
		if err != nil {
			return nil, err
		}
		videos = append(videos, v)
	}
	return videos, rows.Err()
}

// pgxRows is the subset of pgx.Rows used by scanVideos.
type pgxRows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

// ListEligible returns all active videos the given user may rank: the active
// catalog minus every video the user is cast in. Ordered by creation time.
func (r *VideoRepo) ListEligible(ctx context.Context, userID string) ([]model.Video, error) {
	query := `
		SELECT ` + videoColumns + `
		FROM videos v
		WHERE v.is_active = TRUE
		  AND NOT EXISTS (
			SELECT 1 FROM video_cast vc
			WHERE vc.video_id = v.id AND vc.user_id = $1
		  )
		ORDER BY v.created_at ASC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanVideos(rows)
}

// EligibleIDs returns the set of video ids the user may rank.
func (r *VideoRepo) EligibleIDs(ctx context.Context, userID string) (map[string]struct{}, error) {
	query := `
		SELECT v.id
		FROM videos v
		WHERE v.is_active = TRUE
		  AND NOT EXISTS (
			SELECT 1 FROM video_cast vc
			WHERE vc.video_id = v.id AND vc.user_id = $1
		  )`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := make(map[string]struct{})
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids[id] = struct{}{}
	}
	return ids, rows.Err()
}

// ListAll returns the full catalog, active or not, for admin management and
// for results aggregation.
func (r *VideoRepo) ListAll(ctx context.Context) ([]model.Video, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+videoColumns+` FROM videos ORDER BY created_at ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanVideos(rows)
}

// ListCast returns every (video, user) cast link.
func (r *VideoRepo) ListCast(ctx context.Context) ([]model.VideoCast, error) {
	rows, err := r.pool.Query(ctx, `SELECT video_id, user_id FROM video_cast`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cast []model.VideoCast
	for rows.Next() {
		var c model.VideoCast
		if err := rows.Scan(&c.VideoID, &c.UserID); err != nil {
			return nil, err
		}
		cast = append(cast, c)
	}
	return cast, rows.Err()
}

// Create inserts a video and its cast links in one transaction.
func (r *VideoRepo) Create(ctx context.Context, req model.CreateVideoRequest) (*model.Video, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	v := &model.Video{
		ID:          uuid.NewString(),
		URL:         req.URL,
		Title:       req.Title,
		Description: req.Description,
		ChannelName: req.ChannelName,
		IsActive:    true,
	}

	err = tx.QueryRow(ctx, `
		INSERT INTO videos (id, url, title, description, channel_name, is_active)
		VALUES ($1, $2, $3, $4, $5, TRUE)
		RETURNING created_at`,
		v.ID, v.URL, v.Title, v.Description, v.ChannelName).Scan(&v.CreatedAt)
	if err != nil {
		return nil, err
	}

	for _, userID := range req.CastUserIDs {
		_, err = tx.Exec(ctx, `
			INSERT INTO video_cast (video_id, user_id)
			VALUES ($1, $2)
			ON CONFLICT (video_id, user_id) DO NOTHING`,
			v.ID, userID)
		if err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return v, nil
}
