package service

import (
	"errors"
	"testing"

	"github.com/riku-2004/video-voting-app-AI/internal/apperr"
)

func eligibleSet(ids ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

func TestValidateRanking(t *testing.T) {
	tests := []struct {
		name     string
		videoIDs []string
		eligible map[string]struct{}
		wantErr  bool
	}{
		{"single video", []string{"v1"}, eligibleSet("v1"), false},
		{"full eligible set", []string{"v2", "v1", "v3"}, eligibleSet("v1", "v2", "v3"), false},
		{"subset of eligible", []string{"v3"}, eligibleSet("v1", "v2", "v3"), false},
		{"empty payload", []string{}, eligibleSet("v1"), true},
		{"nil payload", nil, eligibleSet("v1"), true},
		{"duplicate id", []string{"v1", "v2", "v1"}, eligibleSet("v1", "v2"), true},
		{"empty id", []string{"v1", ""}, eligibleSet("v1"), true},
		{"unknown video", []string{"v1", "nope"}, eligibleSet("v1", "v2"), true},
		{"cast-excluded video", []string{"v1", "v9"}, eligibleSet("v1", "v2"), true},
		{"nothing eligible", []string{"v1"}, eligibleSet(), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRanking(tt.videoIDs, tt.eligible)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got none")
				}
				if !errors.Is(err, apperr.ErrValidation) {
					t.Errorf("error %v is not a validation error", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidateRanking_RejectsBeforeFirstViolation(t *testing.T) {
	// A mixed payload with one ineligible id fails wholesale; ranks would
	// otherwise no longer be a contiguous 1..N permutation.
	err := ValidateRanking([]string{"v1", "v2", "excluded", "v3"}, eligibleSet("v1", "v2", "v3"))
	if !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("got %v, want validation error", err)
	}
}
