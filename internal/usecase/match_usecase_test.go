package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"skill-swap/internal/domain/matching"
	"skill-swap/internal/domain/user"
)

func TestComputeMatches_UserNotFound(t *testing.T) {
	uc := NewMatchUsecase(newMockUserRepo())
	_, err := uc.ComputeMatches(context.Background(), uuid.New())
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestComputeMatches_SkipsIncompleteProfiles(t *testing.T) {
	me := testUser("alice", []string{"Guitar"}, []string{"Spanish"})

	noAvailability := testUser("bob", []string{"Spanish"}, []string{"Guitar"})
	noAvailability.Availability = nil

	noOffered := testUser("carol", nil, []string{"Guitar"})
	noWanted := testUser("dave", []string{"Spanish"}, nil)

	complete := testUser("erin", []string{"Spanish"}, []string{"Guitar"})

	uc := NewMatchUsecase(newMockUserRepo(me, noAvailability, noOffered, noWanted, complete))

	res, err := uc.ComputeMatches(context.Background(), me.ID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.TotalMatches != 1 {
		t.Fatalf("expected 1 match, got %d", res.TotalMatches)
	}
	if res.Matches[0].User.ID != complete.ID {
		t.Fatalf("expected the complete profile to match")
	}
}

func TestComputeMatches_DropsZeroScores(t *testing.T) {
	me := testUser("alice", []string{"Guitar"}, []string{"Spanish"})
	me.Availability = &user.Availability{Weekends: true}

	unrelated := testUser("bob", []string{"Welding"}, []string{"Pottery"})
	unrelated.Availability = &user.Availability{Weekdays: true}

	uc := NewMatchUsecase(newMockUserRepo(me, unrelated))

	res, err := uc.ComputeMatches(context.Background(), me.ID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.TotalMatches != 0 {
		t.Fatalf("expected no matches, got %d", res.TotalMatches)
	}
	if res.Matches == nil {
		t.Fatalf("matches must be an empty slice, not nil")
	}
}

func TestComputeMatches_ScoresAndOrdering(t *testing.T) {
	me := testUser("alice", []string{"Guitar"}, []string{"Spanish"})

	// One point: availability only.
	basic := testUser("bob", []string{"Welding"}, []string{"Pottery"})

	// Three points: availability plus both skill directions.
	perfect := testUser("carol", []string{"Spanish"}, []string{"Guitar"})

	// Two points: availability and offered-match.
	good := testUser("dave", []string{"Spanish"}, []string{"Pottery"})

	uc := NewMatchUsecase(newMockUserRepo(me, basic, perfect, good))

	res, err := uc.ComputeMatches(context.Background(), me.ID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.TotalMatches != 3 {
		t.Fatalf("expected 3 matches, got %d", res.TotalMatches)
	}

	wantOrder := []struct {
		id        uuid.UUID
		count     int
		matchType string
	}{
		{perfect.ID, 3, matching.MatchTypePerfect},
		{good.ID, 2, matching.MatchTypeGood},
		{basic.ID, 1, matching.MatchTypeBasic},
	}
	for i, want := range wantOrder {
		got := res.Matches[i]
		if got.User.ID != want.id || got.MatchCount != want.count || got.MatchType != want.matchType {
			t.Fatalf("match %d: got (%s, %d, %s)", i, got.User.Name, got.MatchCount, got.MatchType)
		}
	}
	if res.CurrentUser.ID != me.ID {
		t.Fatalf("expected currentUser to be the caller")
	}
	if res.CurrentUser.PasswordHash != "" || res.Matches[0].User.PasswordHash != "" {
		t.Fatalf("password hashes must be stripped")
	}
}

func TestComputeMatches_ExcludesHiddenAndBanned(t *testing.T) {
	me := testUser("alice", []string{"Guitar"}, []string{"Spanish"})

	hidden := testUser("bob", []string{"Spanish"}, []string{"Guitar"})
	hidden.IsPublic = false

	banned := testUser("carol", []string{"Spanish"}, []string{"Guitar"})
	banned.IsBanned = true

	uc := NewMatchUsecase(newMockUserRepo(me, hidden, banned))

	res, err := uc.ComputeMatches(context.Background(), me.ID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.TotalMatches != 0 {
		t.Fatalf("expected hidden and banned users excluded, got %d", res.TotalMatches)
	}
}

func TestComputeMatches_CallerGapsScoreAsEmpty(t *testing.T) {
	me := testUser("alice", nil, nil)
	me.Availability = nil

	candidate := testUser("bob", []string{"Spanish"}, []string{"Guitar"})

	uc := NewMatchUsecase(newMockUserRepo(me, candidate))

	// A caller with no stored fields still gets a result; nothing can score.
	res, err := uc.ComputeMatches(context.Background(), me.ID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.TotalMatches != 0 {
		t.Fatalf("expected 0 matches, got %d", res.TotalMatches)
	}
}
