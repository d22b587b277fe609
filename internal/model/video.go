package model

import "time"

// Video represents a rankable video.
type Video struct {
	ID          string    `json:"id"`
	URL         string    `json:"url"`
	Title       *string   `json:"title,omitempty"`
	Description *string   `json:"description,omitempty"`
	ChannelName *string   `json:"channelName,omitempty"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
}

// VideoCast marks a user as appearing in a video. A cast member never sees
// that video in their eligible list and cannot rank it.
type VideoCast struct {
	VideoID string `json:"videoId"`
	UserID  string `json:"userId"`
}

// CreateVideoRequest is the admin request body for registering a video.
type CreateVideoRequest struct {
	URL         string   `json:"url"`
	Title       *string  `json:"title,omitempty"`
	Description *string  `json:"description,omitempty"`
	ChannelName *string  `json:"channelName,omitempty"`
	CastUserIDs []string `json:"castUserIds,omitempty"`
}

// AdminVideosResponse is the admin management view: the full catalog with
// cast links and every user.
type AdminVideosResponse struct {
	Videos    []Video     `json:"videos"`
	VideoCast []VideoCast `json:"videoCast"`
	Users     []AdminUser `json:"users"`
}

// AdminUser is a user row in the admin views.
type AdminUser struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}
