package service

import (
	"errors"
	"testing"

	"github.com/riku-2004/video-voting-app-AI/internal/apperr"
	"github.com/riku-2004/video-voting-app-AI/internal/model"
)

func TestAuthService_TokenRoundTrip(t *testing.T) {
	svc := NewAuthService(nil, "test-secret")

	user := &model.User{ID: "u1", Name: "alice", Role: model.RoleUser}
	token, err := svc.IssueToken(user)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	session, err := svc.VerifyToken(token)
	if err != nil {
		t.Fatalf("verify token: %v", err)
	}

	if session.UserID != "u1" || session.Name != "alice" || session.Role != model.RoleUser {
		t.Errorf("session = %+v, want u1/alice/user", session)
	}
}

func TestAuthService_RejectsWrongSecret(t *testing.T) {
	issuer := NewAuthService(nil, "secret-a")
	verifier := NewAuthService(nil, "secret-b")

	token, err := issuer.IssueToken(&model.User{ID: "u1", Name: "alice", Role: model.RoleUser})
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	_, err = verifier.VerifyToken(token)
	if !errors.Is(err, apperr.ErrUnauthorized) {
		t.Fatalf("got %v, want unauthorized", err)
	}
}

func TestAuthService_RejectsGarbageToken(t *testing.T) {
	svc := NewAuthService(nil, "test-secret")

	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := svc.VerifyToken(token); !errors.Is(err, apperr.ErrUnauthorized) {
			t.Errorf("VerifyToken(%q) = %v, want unauthorized", token, err)
		}
	}
}

func TestAuthService_AdminRoleSurvivesRoundTrip(t *testing.T) {
	svc := NewAuthService(nil, "test-secret")

	token, err := svc.IssueToken(&model.User{ID: "a1", Name: "Admin", Role: model.RoleAdmin})
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	session, err := svc.VerifyToken(token)
	if err != nil {
		t.Fatalf("verify token: %v", err)
	}
	if session.Role != model.RoleAdmin {
		t.Errorf("role = %q, want admin", session.Role)
	}
}
