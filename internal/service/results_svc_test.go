package service

import (
	"testing"
	"time"

	"github.com/riku-2004/video-voting-app-AI/internal/model"
)

func strptr(s string) *string { return &s }

func video(id, title string) model.Video {
	return model.Video{ID: id, URL: "https://example.com/" + id, Title: strptr(title), IsActive: true}
}

func vote(userID, userName string, videoIDs ...string) model.VoteWithItems {
	v := model.VoteWithItems{UserName: userName}
	v.UserID = userID
	v.ID = "vote-" + userID
	for i, id := range videoIDs {
		v.Items = append(v.Items, model.VoteItem{VideoID: id, Rank: i + 1})
	}
	return v
}

func findResult(t *testing.T, results []model.VideoResult, videoID string) model.VideoResult {
	t.Helper()
	for _, r := range results {
		if r.VideoID == videoID {
			return r
		}
	}
	t.Fatalf("video %s not in results", videoID)
	return model.VideoResult{}
}

func TestBuildLeaderboard_TwoVotersNoExclusions(t *testing.T) {
	videos := []model.Video{video("v1", "First"), video("v2", "Second")}
	votes := []model.VoteWithItems{
		vote("u1", "alice", "v1", "v2"), // v1=11, v2=9
		vote("u2", "bob", "v2", "v1"),   // v2=11, v1=9
	}
	participants := []model.UserRef{{ID: "u1", Name: "alice"}, {ID: "u2", Name: "bob"}}

	got := BuildLeaderboard(videos, votes, nil, participants)

	r1 := findResult(t, got.VideoResults, "v1")
	r2 := findResult(t, got.VideoResults, "v2")

	if r1.TotalScore != 20 || r1.AverageScore != 10 || r1.VoteCount != 2 {
		t.Errorf("v1 = total %d avg %.2f count %d, want 20/10.00/2", r1.TotalScore, r1.AverageScore, r1.VoteCount)
	}
	if r2.TotalScore != 20 || r2.AverageScore != 10 || r2.VoteCount != 2 {
		t.Errorf("v2 = total %d avg %.2f count %d, want 20/10.00/2", r2.TotalScore, r2.AverageScore, r2.VoteCount)
	}

	// Tied averages keep catalog order (stable sort).
	if got.VideoResults[0].VideoID != "v1" || got.VideoResults[1].VideoID != "v2" {
		t.Errorf("tie not stable: got order %s, %s", got.VideoResults[0].VideoID, got.VideoResults[1].VideoID)
	}
}

func TestBuildLeaderboard_SortsByAverageDescending(t *testing.T) {
	videos := []model.Video{video("v1", "A"), video("v2", "B"), video("v3", "C")}
	votes := []model.VoteWithItems{
		vote("u1", "alice", "v3", "v1", "v2"), // v3=11, v1=10, v2=9
	}

	got := BuildLeaderboard(videos, votes, nil, nil)

	order := []string{got.VideoResults[0].VideoID, got.VideoResults[1].VideoID, got.VideoResults[2].VideoID}
	want := []string{"v3", "v1", "v2"}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("sort order = %v, want %v", order, want)
		}
	}
}

func TestBuildLeaderboard_ScoresUsePerUserListLength(t *testing.T) {
	// alice ranks 3 videos, bob is cast in v3 and ranks only 2. Each list is
	// scored against its own length.
	videos := []model.Video{video("v1", "A"), video("v2", "B"), video("v3", "C")}
	votes := []model.VoteWithItems{
		vote("u1", "alice", "v1", "v2", "v3"), // scores 11, 10, 9
		vote("u2", "bob", "v2", "v1"),         // scores 11, 9
	}

	got := BuildLeaderboard(videos, votes, nil, nil)

	r1 := findResult(t, got.VideoResults, "v1")
	if r1.TotalScore != 11+9 {
		t.Errorf("v1 total = %d, want 20", r1.TotalScore)
	}
	r2 := findResult(t, got.VideoResults, "v2")
	if r2.TotalScore != 10+11 {
		t.Errorf("v2 total = %d, want 21", r2.TotalScore)
	}
	r3 := findResult(t, got.VideoResults, "v3")
	if r3.VoteCount != 1 || r3.TotalScore != 9 {
		t.Errorf("v3 = count %d total %d, want 1/9 (bob excluded)", r3.VoteCount, r3.TotalScore)
	}
}

func TestBuildLeaderboard_AverageRoundedToTwoDecimals(t *testing.T) {
	videos := []model.Video{video("v1", "A"), video("v2", "B"), video("v3", "C")}
	votes := []model.VoteWithItems{
		vote("u1", "alice", "v1", "v2", "v3"), // v1=11
		vote("u2", "bob", "v2", "v1", "v3"),   // v1=10
		vote("u3", "carol", "v3", "v1", "v2"), // v1=10
	}

	got := BuildLeaderboard(videos, votes, nil, nil)

	r1 := findResult(t, got.VideoResults, "v1")
	// (11+10+10)/3 = 10.333... → 10.33
	if r1.AverageScore != 10.33 {
		t.Errorf("v1 average = %v, want 10.33", r1.AverageScore)
	}
}

func TestBuildLeaderboard_CommentsAttachedPerUserAndVideo(t *testing.T) {
	videos := []model.Video{video("v1", "A"), video("v2", "B")}
	votes := []model.VoteWithItems{
		vote("u1", "alice", "v1", "v2"),
		vote("u2", "bob", "v1", "v2"),
	}
	comments := []model.Comment{
		{ID: "c1", VideoID: "v1", UserID: "u1", Body: "great"},
		{ID: "c2", VideoID: "v2", UserID: "u2", Body: "meh"},
	}

	got := BuildLeaderboard(videos, votes, comments, nil)

	r1 := findResult(t, got.VideoResults, "v1")
	for _, vs := range r1.Votes {
		switch vs.UserName {
		case "alice":
			if vs.Comment != "great" {
				t.Errorf("alice comment on v1 = %q, want %q", vs.Comment, "great")
			}
		case "bob":
			// No comment from bob on v1 → empty string, not an error.
			if vs.Comment != "" {
				t.Errorf("bob comment on v1 = %q, want empty", vs.Comment)
			}
		}
	}
}

func TestBuildLeaderboard_VideoWithNoVotes(t *testing.T) {
	videos := []model.Video{video("v1", "A")}

	got := BuildLeaderboard(videos, nil, nil, nil)

	r1 := findResult(t, got.VideoResults, "v1")
	if r1.VoteCount != 0 || r1.TotalScore != 0 || r1.AverageScore != 0 {
		t.Errorf("unvoted video = count %d total %d avg %v, want zeros", r1.VoteCount, r1.TotalScore, r1.AverageScore)
	}
}

func TestBuildLeaderboard_UntitledFallback(t *testing.T) {
	videos := []model.Video{{ID: "v1", URL: "https://example.com/v1", IsActive: true}}

	got := BuildLeaderboard(videos, nil, nil, nil)

	if got.VideoResults[0].VideoTitle != "Untitled" {
		t.Errorf("title = %q, want %q", got.VideoResults[0].VideoTitle, "Untitled")
	}
}

func TestBuildLeaderboard_SubmittedMeansHasVote(t *testing.T) {
	// A participant with a saved but never-submitted ranking still shows up
	// in submittedUsers: the results view partitions on "has a vote", not on
	// the is_submitted flag. Kept as-is from the original behavior.
	videos := []model.Video{video("v1", "A")}
	draft := vote("u1", "alice", "v1") // IsSubmitted stays false
	participants := []model.UserRef{
		{ID: "u1", Name: "alice"},
		{ID: "u2", Name: "bob"},
	}

	got := BuildLeaderboard(videos, []model.VoteWithItems{draft}, nil, participants)

	if len(got.SubmittedUsers) != 1 || got.SubmittedUsers[0].ID != "u1" {
		t.Fatalf("submittedUsers = %+v, want exactly alice", got.SubmittedUsers)
	}
	if got.SubmittedUsers[0].SubmittedAt != nil {
		t.Errorf("draft vote should carry no submittedAt")
	}
	if len(got.PendingUsers) != 1 || got.PendingUsers[0].ID != "u2" {
		t.Fatalf("pendingUsers = %+v, want exactly bob", got.PendingUsers)
	}
	if got.TotalUsers != 2 || got.SubmittedCount != 1 {
		t.Errorf("totals = %d/%d, want 2 users, 1 submitted", got.TotalUsers, got.SubmittedCount)
	}
}

func TestBuildLeaderboard_SubmittedAtCarriedThrough(t *testing.T) {
	videos := []model.Video{video("v1", "A")}
	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	v := vote("u1", "alice", "v1")
	v.IsSubmitted = true
	v.SubmittedAt = &at

	got := BuildLeaderboard(videos, []model.VoteWithItems{v}, nil, nil)

	if got.SubmittedUsers[0].SubmittedAt == nil || !got.SubmittedUsers[0].SubmittedAt.Equal(at) {
		t.Errorf("submittedAt = %v, want %v", got.SubmittedUsers[0].SubmittedAt, at)
	}
}
