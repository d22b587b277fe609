package model

import "time"

// Roles a user can hold. Admins manage videos/users and read results;
// regular users rank videos.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User represents a participant or administrator.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"-"`
}

// UserRef is the minimal public identity of a user.
type UserRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// LoginRequest is the API request body for logging in.
type LoginRequest struct {
	UserID   string `json:"userId"`
	Password string `json:"password"`
}

// LoginResponse is returned after a successful login.
type LoginResponse struct {
	Success bool    `json:"success"`
	Token   string  `json:"token"`
	User    UserRef `json:"user"`
	Role    string  `json:"role"`
}

// CreateUserRequest is the admin request body for creating a user.
type CreateUserRequest struct {
	Name     string `json:"name"`
	Role     string `json:"role,omitempty"`
	Password string `json:"password,omitempty"`
}

// CreateUserResponse echoes the created user and the password it was
// provisioned with (defaults to the user's name when none was given).
type CreateUserResponse struct {
	Success         bool    `json:"success"`
	User            UserRef `json:"user"`
	Role            string  `json:"role"`
	DefaultPassword string  `json:"defaultPassword"`
}

// ChangePasswordRequest is the request body for a self-service password change.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// ResetPasswordRequest is the admin request body for resetting a user's password.
type ResetPasswordRequest struct {
	UserID      string `json:"userId"`
	NewPassword string `json:"newPassword"`
}
