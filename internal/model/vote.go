package model

import "time"

// Vote is a user's current ranking. There is at most one per user; saving a
// new ranking replaces the items wholesale.
type Vote struct {
	ID          string     `json:"id"`
	UserID      string     `json:"userId"`
	IsSubmitted bool       `json:"isSubmitted"`
	SubmittedAt *time.Time `json:"submittedAt,omitempty"`
}

// VoteItem is one ranked video within a vote. Rank is 1-based; rank 1 is the
// user's favorite.
type VoteItem struct {
	VideoID string `json:"videoId"`
	Rank    int    `json:"rank"`
}

// VoteWithItems is a vote joined with its items and the voter's name, as
// loaded for aggregation.
type VoteWithItems struct {
	Vote
	UserName string     `json:"userName"`
	Items    []VoteItem `json:"items"`
}

// SaveRankingRequest is the request body for saving a ranking. Order matters:
// position in the slice becomes the rank.
type SaveRankingRequest struct {
	VideoIDs []string `json:"videoIds"`
}

// SubmissionStatus reports where a user sits in the vote lifecycle.
type SubmissionStatus struct {
	HasVote     bool `json:"hasVote"`
	IsSubmitted bool `json:"isSubmitted"`
}
