package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/riku-2004/video-voting-app-AI/internal/apperr"
	"github.com/riku-2004/video-voting-app-AI/internal/model"
	"github.com/riku-2004/video-voting-app-AI/internal/repository"
)

// VideoService owns catalog reads and admin video management. The eligible
// view is recomputed from video_cast on every call; it is never stored
// per user.
type VideoService struct {
	videos *repository.VideoRepo
	users  *repository.UserRepo
	cache  *CacheService
}

func NewVideoService(videos *repository.VideoRepo, users *repository.UserRepo, cache *CacheService) *VideoService {
	return &VideoService{videos: videos, users: users, cache: cache}
}

// EligibleVideos returns the active videos the user may rank: the catalog
// minus every video the user appears in as cast. Admins acting as voters go
// through the same rule.
func (s *VideoService) EligibleVideos(ctx context.Context, userID string) ([]model.Video, error) {
	videos, err := s.videos.ListEligible(ctx, userID)
	if err != nil {
		return nil, err
	}
	if videos == nil {
		videos = []model.Video{}
	}
	return videos, nil
}

// AdminView returns the full catalog with cast links and all users, without
// exclusion. Callers must have checked the admin role.
func (s *VideoService) AdminView(ctx context.Context) (*model.AdminVideosResponse, error) {
	videos, err := s.videos.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	cast, err := s.videos.ListCast(ctx)
	if err != nil {
		return nil, err
	}
	users, err := s.users.ListWithRole(ctx)
	if err != nil {
		return nil, err
	}

	if videos == nil {
		videos = []model.Video{}
	}
	if cast == nil {
		cast = []model.VideoCast{}
	}
	return &model.AdminVideosResponse{Videos: videos, VideoCast: cast, Users: users}, nil
}

// CreateVideo registers a new video with optional cast links.
func (s *VideoService) CreateVideo(ctx context.Context, req model.CreateVideoRequest) (*model.Video, error) {
	req.URL = strings.TrimSpace(req.URL)
	if req.URL == "" {
		return nil, fmt.Errorf("%w: url is required", apperr.ErrValidation)
	}

	video, err := s.videos.Create(ctx, req)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.InvalidateLeaderboard(ctx)
	}
	return video, nil
}
