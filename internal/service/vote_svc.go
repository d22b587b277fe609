package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/riku-2004/video-voting-app-AI/internal/apperr"
	"github.com/riku-2004/video-voting-app-AI/internal/model"
	"github.com/riku-2004/video-voting-app-AI/internal/repository"
)

// VoteService owns the vote lifecycle: saving rankings (draft), explicit
// submission, and status queries.
type VoteService struct {
	votes  *repository.VoteRepo
	videos *repository.VideoRepo
	cache  *CacheService
}

func NewVoteService(votes *repository.VoteRepo, videos *repository.VideoRepo, cache *CacheService) *VoteService {
	return &VoteService{votes: votes, videos: videos, cache: cache}
}

// SaveRanking validates and stores a user's ordered ranking. Position in
// videoIDs becomes the 1-based rank. The previous items are discarded
// wholesale; submission state is untouched.
func (s *VoteService) SaveRanking(ctx context.Context, userID string, videoIDs []string) error {
	eligible, err := s.videos.EligibleIDs(ctx, userID)
	if err != nil {
		return err
	}

	if err := ValidateRanking(videoIDs, eligible); err != nil {
		return err
	}

	if err := s.votes.ReplaceRanking(ctx, userID, videoIDs); err != nil {
		return err
	}

	if s.cache != nil {
		s.cache.InvalidateLeaderboard(ctx)
	}
	return nil
}

// ValidateRanking checks a ranking payload against the caller's eligible
// set: non-empty, no duplicate ids, every id eligible. Returns an
// apperr.ErrValidation-wrapped error on the first violation.
func ValidateRanking(videoIDs []string, eligible map[string]struct{}) error {
	if len(videoIDs) == 0 {
		return fmt.Errorf("%w: ranking must contain at least one video", apperr.ErrValidation)
	}

	seen := make(map[string]struct{}, len(videoIDs))
	for _, id := range videoIDs {
		if id == "" {
			return fmt.Errorf("%w: empty video id", apperr.ErrValidation)
		}
		if _, dup := seen[id]; dup {
			return fmt.Errorf("%w: duplicate video id %q", apperr.ErrValidation, id)
		}
		seen[id] = struct{}{}
		if _, ok := eligible[id]; !ok {
			return fmt.Errorf("%w: video %q is not rankable by this user", apperr.ErrValidation, id)
		}
	}
	return nil
}

// CurrentRanking returns the user's saved ranking in rank order; empty if
// the user has not saved one yet.
func (s *VoteService) CurrentRanking(ctx context.Context, userID string) ([]model.VoteItem, error) {
	return s.votes.CurrentRanking(ctx, userID)
}

// Submit marks the user's vote as submitted and stamps the time, overwriting
// the stamp on resubmission. A ranking must have been saved first.
func (s *VoteService) Submit(ctx context.Context, userID string) error {
	err := s.votes.Submit(ctx, userID)
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%w: save a ranking before submitting", apperr.ErrNoVote)
	}
	if err != nil {
		return err
	}

	if s.cache != nil {
		s.cache.InvalidateLeaderboard(ctx)
	}
	return nil
}

// Status reports the user's submission state.
func (s *VoteService) Status(ctx context.Context, userID string) (model.SubmissionStatus, error) {
	return s.votes.Status(ctx, userID)
}
