package service

import (
	"context"
	"encoding/json"
	"math"
	"sort"

	"github.com/riku-2004/video-voting-app-AI/internal/model"
	"github.com/riku-2004/video-voting-app-AI/internal/repository"
)

// ResultsService recomputes the per-video leaderboard from all stored votes
// and comments. There is no persisted aggregate; the Redis entry is a pure
// cache and is invalidated by every vote/comment write.
type ResultsService struct {
	votes    *repository.VoteRepo
	comments *repository.CommentRepo
	videos   *repository.VideoRepo
	users    *repository.UserRepo
	cache    *CacheService

	// includeDrafts keeps unsubmitted rankings in the leaderboard,
	// matching the historical behavior.
	includeDrafts bool
}

func NewResultsService(
	votes *repository.VoteRepo,
	comments *repository.CommentRepo,
	videos *repository.VideoRepo,
	users *repository.UserRepo,
	cache *CacheService,
	includeDrafts bool,
) *ResultsService {
	return &ResultsService{
		votes:         votes,
		comments:      comments,
		videos:        videos,
		users:         users,
		cache:         cache,
		includeDrafts: includeDrafts,
	}
}

// Leaderboard returns the aggregated results, recomputed from the current
// vote snapshot (cache-aside).
func (s *ResultsService) Leaderboard(ctx context.Context) (*model.ResultsResponse, error) {
	if s.cache != nil {
		if data, err := s.cache.GetLeaderboard(ctx); err == nil && data != nil {
			var cached model.ResultsResponse
			if err := json.Unmarshal(data, &cached); err == nil {
				return &cached, nil
			}
		}
	}

	votes, err := s.votes.LoadAll(ctx, s.includeDrafts)
	if err != nil {
		return nil, err
	}
	comments, err := s.comments.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	videos, err := s.videos.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	participants, err := s.users.ListParticipants(ctx)
	if err != nil {
		return nil, err
	}

	results := BuildLeaderboard(videos, votes, comments, participants)

	if s.cache != nil {
		_ = s.cache.SetLeaderboard(ctx, results)
	}
	return results, nil
}

type commentKey struct {
	videoID string
	userID  string
}

// BuildLeaderboard is the pure aggregation over a loaded snapshot. Each
// user's scores are derived from the length of their own ranking, so a
// cast-excluded user's 3-item list and another user's 5-item list both
// average to 10 on their own terms. Sorting by average score is stable:
// ties keep catalog order.
func BuildLeaderboard(
	videos []model.Video,
	votes []model.VoteWithItems,
	comments []model.Comment,
	participants []model.UserRef,
) *model.ResultsResponse {
	commentBodies := make(map[commentKey]string, len(comments))
	for _, c := range comments {
		commentBodies[commentKey{c.VideoID, c.UserID}] = c.Body
	}

	results := make([]model.VideoResult, 0, len(videos))
	for _, video := range videos {
		title := "Untitled"
		if video.Title != nil && *video.Title != "" {
			title = *video.Title
		}

		scores := []model.VideoScore{}
		for _, vote := range votes {
			totalItems := len(vote.Items)
			for _, item := range vote.Items {
				if item.VideoID != video.ID {
					continue
				}
				scores = append(scores, model.VideoScore{
					UserName: vote.UserName,
					Score:    ScoreFor(item.Rank, totalItems),
					Comment:  commentBodies[commentKey{video.ID, vote.UserID}],
				})
				break
			}
		}

		total := 0
		for _, sc := range scores {
			total += sc.Score
		}
		average := 0.0
		if len(scores) > 0 {
			average = math.Round(float64(total)/float64(len(scores))*100) / 100
		}

		results = append(results, model.VideoResult{
			VideoID:      video.ID,
			VideoTitle:   title,
			ChannelName:  video.ChannelName,
			Votes:        scores,
			TotalScore:   total,
			AverageScore: average,
			VoteCount:    len(scores),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].AverageScore > results[j].AverageScore
	})

	// "Submitted" here means "has a stored vote", independent of the
	// is_submitted flag — kept as-is from the original results view.
	submitted := make([]model.SubmittedUser, 0, len(votes))
	voted := make(map[string]struct{}, len(votes))
	for _, v := range votes {
		submitted = append(submitted, model.SubmittedUser{
			ID:          v.UserID,
			Name:        v.UserName,
			SubmittedAt: v.SubmittedAt,
		})
		voted[v.UserID] = struct{}{}
	}

	pending := []model.UserRef{}
	for _, u := range participants {
		if _, ok := voted[u.ID]; !ok {
			pending = append(pending, u)
		}
	}

	return &model.ResultsResponse{
		VideoResults:   results,
		SubmittedUsers: submitted,
		PendingUsers:   pending,
		TotalUsers:     len(participants),
		SubmittedCount: len(submitted),
	}
}
