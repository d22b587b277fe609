package model

import "time"

// VideoScore is one participant's contribution to a video's aggregate.
type VideoScore struct {
	UserName string `json:"userName"`
	Score    int    `json:"score"`
	Comment  string `json:"comment"`
}

// VideoResult is the per-video leaderboard row.
type VideoResult struct {
	VideoID      string       `json:"videoId"`
	VideoTitle   string       `json:"videoTitle"`
	ChannelName  *string      `json:"channelName,omitempty"`
	Votes        []VideoScore `json:"votes"`
	TotalScore   int          `json:"totalScore"`
	AverageScore float64      `json:"averageScore"`
	VoteCount    int          `json:"voteCount"`
}

// SubmittedUser is a participant with a stored vote. Note: "submitted" here
// means "has a vote", independent of the submit flag; the status endpoint
// uses the stricter notion.
type SubmittedUser struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	SubmittedAt *time.Time `json:"submittedAt,omitempty"`
}

// ResultsResponse is the admin leaderboard payload.
type ResultsResponse struct {
	VideoResults   []VideoResult   `json:"videoResults"`
	SubmittedUsers []SubmittedUser `json:"submittedUsers"`
	PendingUsers   []UserRef       `json:"pendingUsers"`
	TotalUsers     int             `json:"totalUsers"`
	SubmittedCount int             `json:"submittedCount"`
}
