package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/riku-2004/video-voting-app-AI/internal/apperr"
	"github.com/riku-2004/video-voting-app-AI/internal/model"
	"github.com/riku-2004/video-voting-app-AI/internal/repository"
)

const (
	sessionTTL        = 7 * 24 * time.Hour
	minPasswordLength = 4
)

// Session is the identity carried by a verified token. The core trusts it
// and performs its own role checks per operation.
type Session struct {
	UserID string
	Name   string
	Role   string
}

// AuthService issues and verifies session tokens and manages passwords.
type AuthService struct {
	users  *repository.UserRepo
	secret []byte
}

func NewAuthService(users *repository.UserRepo, jwtSecret string) *AuthService {
	return &AuthService{users: users, secret: []byte(jwtSecret)}
}

// Login verifies credentials and returns a signed session token.
func (s *AuthService) Login(ctx context.Context, userID, password string) (*model.LoginResponse, error) {
	if userID == "" || password == "" {
		return nil, fmt.Errorf("%w: missing credentials", apperr.ErrValidation)
	}

	user, err := s.users.FindByID(ctx, userID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: user not found", apperr.ErrUnauthorized)
	}
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("%w: invalid password", apperr.ErrUnauthorized)
	}

	token, err := s.IssueToken(user)
	if err != nil {
		return nil, err
	}

	return &model.LoginResponse{
		Success: true,
		Token:   token,
		User:    model.UserRef{ID: user.ID, Name: user.Name},
		Role:    user.Role,
	}, nil
}

// IssueToken signs an HS256 session token for the user.
func (s *AuthService) IssueToken(user *model.User) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"name":    user.Name,
		"role":    user.Role,
		"iat":     now.Unix(),
		"exp":     now.Add(sessionTTL).Unix(),
	})
	return token.SignedString(s.secret)
}

// VerifyToken parses and validates a session token, returning the session it
// carries.
func (s *AuthService) VerifyToken(tokenString string) (*Session, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("%w: invalid token", apperr.ErrUnauthorized)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("%w: invalid token claims", apperr.ErrUnauthorized)
	}

	userID, _ := claims["user_id"].(string)
	name, _ := claims["name"].(string)
	role, _ := claims["role"].(string)
	if userID == "" || role == "" {
		return nil, fmt.Errorf("%w: incomplete token claims", apperr.ErrUnauthorized)
	}

	return &Session{UserID: userID, Name: name, Role: role}, nil
}

// ChangePassword lets a user rotate their own password after verifying the
// current one.
func (s *AuthService) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	if currentPassword == "" || newPassword == "" {
		return fmt.Errorf("%w: current and new password are required", apperr.ErrValidation)
	}
	if len(newPassword) < minPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", apperr.ErrValidation, minPasswordLength)
	}

	user, err := s.users.FindByID(ctx, userID)
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%w: user not found", apperr.ErrNotFound)
	}
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)); err != nil {
		return fmt.Errorf("%w: current password is incorrect", apperr.ErrUnauthorized)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	_, err = s.users.UpdatePassword(ctx, userID, string(hash))
	return err
}

// ResetPassword sets a user's password without verifying the old one.
// Callers must have checked the admin role.
func (s *AuthService) ResetPassword(ctx context.Context, userID, newPassword string) error {
	if userID == "" || newPassword == "" {
		return fmt.Errorf("%w: userId and password are required", apperr.ErrValidation)
	}
	if len(newPassword) < minPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", apperr.ErrValidation, minPasswordLength)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	affected, err := s.users.UpdatePassword(ctx, userID, string(hash))
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%w: user not found", apperr.ErrNotFound)
	}
	return nil
}
