package service

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/riku-2004/video-voting-app-AI/internal/apperr"
	"github.com/riku-2004/video-voting-app-AI/internal/model"
	"github.com/riku-2004/video-voting-app-AI/internal/repository"
)

// UserService owns admin user provisioning.
type UserService struct {
	users *repository.UserRepo
}

func NewUserService(users *repository.UserRepo) *UserService {
	return &UserService{users: users}
}

// List returns every user's public identity, for the login dropdown.
func (s *UserService) List(ctx context.Context) ([]model.UserRef, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []model.UserRef{}
	}
	return users, nil
}

// Create provisions a new user. Names are unique; the password defaults to
// the name when not supplied.
func (s *UserService) Create(ctx context.Context, req model.CreateUserRequest) (*model.CreateUserResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", apperr.ErrValidation)
	}

	exists, err := s.users.NameExists(ctx, name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%w: user name %q is already taken", apperr.ErrConflict, name)
	}

	role := model.RoleUser
	if req.Role == model.RoleAdmin {
		role = model.RoleAdmin
	}

	password := req.Password
	if password == "" {
		password = name
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user, err := s.users.Create(ctx, name, string(hash), role)
	if err != nil {
		return nil, err
	}

	return &model.CreateUserResponse{
		Success:         true,
		User:            model.UserRef{ID: user.ID, Name: user.Name},
		Role:            user.Role,
		DefaultPassword: password,
	}, nil
}

// Delete removes a user. A caller cannot delete themselves.
func (s *UserService) Delete(ctx context.Context, callerID, userID string) error {
	if userID == "" {
		return fmt.Errorf("%w: userId is required", apperr.ErrValidation)
	}
	if userID == callerID {
		return fmt.Errorf("%w: cannot delete yourself", apperr.ErrValidation)
	}

	affected, err := s.users.Delete(ctx, userID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%w: user not found", apperr.ErrNotFound)
	}
	return nil
}
