package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/riku-2004/video-voting-app-AI/internal/model"
)

type VoteRepo struct {
	pool *pgxpool.Pool
}

func NewVoteRepo(pool *pgxpool.Pool) *VoteRepo {
	return &VoteRepo{pool: pool}
}

// CurrentRanking returns the user's ranked items ordered by rank, or an empty
// slice if the user has not saved a ranking yet.
func (r *VoteRepo) CurrentRanking(ctx context.Context, userID string) ([]model.VoteItem, error) {
	query := `
		SELECT vi.video_id, vi.rank
		FROM vote_items vi
		JOIN votes v ON v.id = vi.vote_id
		WHERE v.user_id = $1
		ORDER BY vi.rank ASC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []model.VoteItem{}
	for rows.Next() {
		var it model.VoteItem
		if err := rows.Scan(&it.VideoID, &it.Rank); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// ReplaceRanking atomically swaps the user's ranked items for the given
// ordered video ids (rank = 1-based position). The vote row itself is kept,
// so is_submitted and submitted_at survive ranking edits; a fresh vote
// starts as a draft.
func (r *VoteRepo) ReplaceRanking(ctx context.Context, userID string, videoIDs []string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var voteID string
	err = tx.QueryRow(ctx, `SELECT id FROM votes WHERE user_id = $1 FOR UPDATE`, userID).Scan(&voteID)
	if errors.Is(err, pgx.ErrNoRows) {
		voteID = uuid.NewString()
		_, err = tx.Exec(ctx, `INSERT INTO votes (id, user_id) VALUES ($1, $2)`, voteID, userID)
	}
	if err != nil {
		return err
	}

	_, err = tx.Exec(ctx, `DELETE FROM vote_items WHERE vote_id = $1`, voteID)
	if err != nil {
		return err
	}

	for i, videoID := range videoIDs {
		_, err = tx.Exec(ctx, `
			INSERT INTO vote_items (vote_id, video_id, rank)
			VALUES ($1, $2, $3)`,
			voteID, videoID, i+1)
		if err != nil {
			return err
		}
	}

	_, err = tx.Exec(ctx, `UPDATE votes SET updated_at = NOW() WHERE id = $1`, voteID)
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// Submit marks the user's vote as submitted, overwriting the timestamp on
// resubmission. Returns pgx.ErrNoRows if the user has no saved ranking.
func (r *VoteRepo) Submit(ctx context.Context, userID string) error {
	var id string
	return r.pool.QueryRow(ctx, `
		UPDATE votes
		SET is_submitted = TRUE, submitted_at = NOW()
		WHERE user_id = $1
		RETURNING id`,
		userID).Scan(&id)
}

// Status reports whether the user has a saved ranking and whether it has
// been submitted.
func (r *VoteRepo) Status(ctx context.Context, userID string) (model.SubmissionStatus, error) {
	var status model.SubmissionStatus
	err := r.pool.QueryRow(ctx,
		`SELECT is_submitted FROM votes WHERE user_id = $1`, userID).Scan(&status.IsSubmitted)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.SubmissionStatus{}, nil
	}
	if err != nil {
		return model.SubmissionStatus{}, err
	}
	status.HasVote = true
	return status, nil
}

// LoadAll returns every stored vote with its items and the voter's name.
// When includeDrafts is false, only submitted votes are returned.
func (r *VoteRepo) LoadAll(ctx context.Context, includeDrafts bool) ([]model.VoteWithItems, error) {
	query := `
		SELECT v.id, v.user_id, v.is_submitted, v.submitted_at, u.name
		FROM votes v
		JOIN users u ON u.id = v.user_id
		WHERE ($1 OR v.is_submitted)
		ORDER BY v.updated_at ASC`

	rows, err := r.pool.Query(ctx, query, includeDrafts)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var votes []model.VoteWithItems
	index := make(map[string]int)
	for rows.Next() {
		var v model.VoteWithItems
		if err := rows.Scan(&v.ID, &v.UserID, &v.IsSubmitted, &v.SubmittedAt, &v.UserName); err != nil {
			return nil, err
		}
		index[v.ID] = len(votes)
		votes = append(votes, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	itemRows, err := r.pool.Query(ctx, `
		SELECT vote_id, video_id, rank
		FROM vote_items
		ORDER BY vote_id, rank ASC`)
	if err != nil {
		return nil, err
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var voteID string
		var it model.VoteItem
		if err := itemRows.Scan(&voteID, &it.VideoID, &it.Rank); err != nil {
			return nil, err
		}
		if i, ok := index[voteID]; ok {
			votes[i].Items = append(votes[i].Items, it)
		}
	}
	return votes, itemRows.Err()
}
