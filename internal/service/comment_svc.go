package service

import (
	"context"
	"fmt"

	"github.com/riku-2004/video-voting-app-AI/internal/apperr"
	"github.com/riku-2004/video-voting-app-AI/internal/repository"
)

// CommentService owns the per-(user,video) freeform notes. Comments live
// outside the vote lifecycle and survive ranking edits.
type CommentService struct {
	comments *repository.CommentRepo
	cache    *CacheService
}

func NewCommentService(comments *repository.CommentRepo, cache *CacheService) *CommentService {
	return &CommentService{comments: comments, cache: cache}
}

// Get returns the user's comment body for a video; "" if none exists.
func (s *CommentService) Get(ctx context.Context, videoID, userID string) (string, error) {
	if videoID == "" {
		return "", fmt.Errorf("%w: videoId is required", apperr.ErrValidation)
	}
	return s.comments.Get(ctx, videoID, userID)
}

// Save upserts the user's comment on a video. Saving the same body twice
// leaves exactly one row with the latest body.
func (s *CommentService) Save(ctx context.Context, videoID, userID, body string) error {
	if videoID == "" {
		return fmt.Errorf("%w: videoId is required", apperr.ErrValidation)
	}

	if err := s.comments.Upsert(ctx, videoID, userID, body); err != nil {
		return err
	}

	if s.cache != nil {
		s.cache.InvalidateLeaderboard(ctx)
	}
	return nil
}
