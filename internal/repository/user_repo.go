package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/riku-2004/video-voting-app-AI/internal/model"
)

type UserRepo struct {
	pool *pgxpool.Pool
}

func NewUserRepo(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

// FindByID returns a single user. Returns pgx.ErrNoRows if absent.
func (r *UserRepo) FindByID(ctx context.Context, userID string) (*model.User, error) {
	query := `
		SELECT id, name, password_hash, role, created_at
		FROM users
		WHERE id = $1`

	var u model.User
	err := r.pool.QueryRow(ctx, query, userID).Scan(
		&u.ID, &u.Name, &u.PasswordHash, &u.Role, &u.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// FindByName returns a single user by their unique name.
func (r *UserRepo) FindByName(ctx context.Context, name string) (*model.User, error) {
	query := `
		SELECT id, name, password_hash, role, created_at
		FROM users
		WHERE name = $1`

	var u model.User
	err := r.pool.QueryRow(ctx, query, name).Scan(
		&u.ID, &u.Name, &u.PasswordHash, &u.Role, &u.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// List returns every user's public identity, for the login dropdown.
func (r *UserRepo) List(ctx context.Context) ([]model.UserRef, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name FROM users ORDER BY created_at ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []model.UserRef
	for rows.Next() {
		var u model.UserRef
		if err := rows.Scan(&u.ID, &u.Name); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// ListWithRole returns every user including their role, for admin views.
func (r *UserRepo) ListWithRole(ctx context.Context) ([]model.AdminUser, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name, role FROM users ORDER BY created_at ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []model.AdminUser
	for rows.Next() {
		var u model.AdminUser
		if err := rows.Scan(&u.ID, &u.Name, &u.Role); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// ListParticipants returns all non-admin users.
func (r *UserRepo) ListParticipants(ctx context.Context) ([]model.UserRef, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name FROM users WHERE role = $1 ORDER BY created_at ASC`, model.RoleUser)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []model.UserRef
	for rows.Next() {
		var u model.UserRef
		if err := rows.Scan(&u.ID, &u.Name); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// Create inserts a new user and returns it with a generated ID.
func (r *UserRepo) Create(ctx context.Context, name, passwordHash, role string) (*model.User, error) {
	u := &model.User{
		ID:           uuid.NewString(),
		Name:         name,
		PasswordHash: passwordHash,
		Role:         role,
	}
	err := r.pool.QueryRow(ctx, `
		INSERT INTO users (id, name, password_hash, role)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at`,
		u.ID, u.Name, u.PasswordHash, u.Role).Scan(&u.CreatedAt)
	if err != nil {
		return nil, err
	}
	return u, nil
}

// NameExists reports whether a user with the given name already exists.
func (r *UserRepo) NameExists(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE name = $1)`, name).Scan(&exists)
	return exists, err
}

// Delete removes a user. Votes, comments and cast links cascade.
// Returns the number of rows deleted (0 when the user did not exist).
func (r *UserRepo) Delete(ctx context.Context, userID string) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, userID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// UpdatePassword replaces a user's password hash.
// Returns the number of rows updated (0 when the user did not exist).
func (r *UserRepo) UpdatePassword(ctx context.Context, userID, passwordHash string) (int64, error) {
	tag, err := r.pool.Exec(ctx,
		`UPDATE users SET password_hash = $1 WHERE id = $2`, passwordHash, userID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
