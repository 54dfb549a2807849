package user

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("user not found")

// CandidateFilter is the only query shape the match sweep needs: everyone
// except the caller, restricted to visible profiles.
type CandidateFilter struct {
	ExcludeID     uuid.UUID
	OnlyPublic    bool
	ExcludeBanned bool
}

// ProfilePatch carries the fields the profile-update path may change.
// Nil pointers leave the stored value untouched.
type ProfilePatch struct {
	Name          *string
	Location      *string
	IsPublic      *bool
	SkillsOffered []string
	SkillsWanted  []string
	Availability  *Availability
	ProfilePhoto  *string
}

type Repository interface {
	Create(ctx context.Context, u User) error
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ListCandidates(ctx context.Context, f CandidateFilter) ([]User, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, patch ProfilePatch) (User, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
}
