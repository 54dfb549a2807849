package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"skill-swap/internal/domain/user"
)

var ErrInvalidInput = errors.New("invalid input")

type UpdateProfileInput struct {
	Name          *string
	Location      *string
	IsPublic      *bool
	SkillsOffered []string
	SkillsWanted  []string
	Availability  *user.Availability
	ProfilePhoto  *string
}

type UserUsecase interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (user.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, in UpdateProfileInput) (user.User, error)
	ListPublicUsers(ctx context.Context, exclude uuid.UUID) ([]user.User, error)
}

type Users struct {
	users user.Repository
}

func NewUserUsecase(users user.Repository) *Users {
	return &Users{users: users}
}

func (u *Users) GetProfile(ctx context.Context, userID uuid.UUID) (user.User, error) {
	usr, err := u.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, ErrInternal
	}
	usr.PasswordHash = ""
	return usr, nil
}

func (u *Users) UpdateProfile(ctx context.Context, userID uuid.UUID, in UpdateProfileInput) (user.User, error) {
	if in.Name != nil && strings.TrimSpace(*in.Name) == "" {
		return user.User{}, ErrInvalidInput
	}

	// Skill lists are stored as submitted: duplicates are not collapsed,
	// the scoring and validation paths treat them as membership sets.
	patch := user.ProfilePatch{
		Name:          trimmed(in.Name),
		Location:      trimmed(in.Location),
		IsPublic:      in.IsPublic,
		SkillsOffered: cleanSkills(in.SkillsOffered),
		SkillsWanted:  cleanSkills(in.SkillsWanted),
		Availability:  in.Availability,
		ProfilePhoto:  in.ProfilePhoto,
	}

	usr, err := u.users.UpdateProfile(ctx, userID, patch)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, ErrInternal
	}
	usr.PasswordHash = ""
	return usr, nil
}

// ListPublicUsers returns browsable profiles: public and not banned, caller
// excluded.
func (u *Users) ListPublicUsers(ctx context.Context, exclude uuid.UUID) ([]user.User, error) {
	users, err := u.users.ListCandidates(ctx, user.CandidateFilter{
		ExcludeID:     exclude,
		OnlyPublic:    true,
		ExcludeBanned: true,
	})
	if err != nil {
		return nil, ErrInternal
	}
	for i := range users {
		users[i].PasswordHash = ""
	}
	return users, nil
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	return &t
}

func cleanSkills(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		out = append(out, s)
	}
	return out
}
