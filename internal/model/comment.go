package model

import "time"

// Comment is a freeform per-(user,video) note. At most one exists per pair;
// saving again overwrites the body.
type Comment struct {
	ID        string    `json:"id"`
	VideoID   string    `json:"videoId"`
	UserID    string    `json:"userId"`
	Body      string    `json:"body"`
	UpdatedAt time.Time `json:"-"`
}

// SaveCommentRequest is the request body for upserting a comment.
type SaveCommentRequest struct {
	VideoID string `json:"videoId"`
	Comment string `json:"comment"`
}

// CommentResponse carries a comment body; empty string when none exists.
type CommentResponse struct {
	Body string `json:"body"`
}
