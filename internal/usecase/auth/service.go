package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"skill-swap/internal/domain/user"
)

var (
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrInvalidInput           = errors.New("invalid input")
	ErrAccountNotFound        = errors.New("account not found")
	ErrPetNameMismatch        = errors.New("pet name does not match")
	ErrInternal               = errors.New("internal error")
)

type RegisterInput struct {
	Name          string
	Email         string
	Password      string
	PetName       string
	Location      string
	SkillsOffered []string
	SkillsWanted  []string
	Availability  *user.Availability
	IsPublic      bool
	ProfilePhoto  *string
}

type LoginInput struct {
	Email    string
	Password string
}

type ResetPasswordInput struct {
	Email       string
	PetName     string
	NewPassword string
}

type Service struct {
	users user.Repository
}

func NewService(users user.Repository) *Service {
	return &Service{users: users}
}

func (s *Service) Register(ctx context.Context, in RegisterInput) (user.User, error) {
	email := normalizeEmail(in.Email)
	if email == "" || strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.PetName) == "" {
		return user.User{}, ErrInvalidInput
	}
	if !isValidPassword(in.Password) {
		return user.User{}, ErrInvalidInput
	}

	exists, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return user.User{}, ErrInternal
	}
	if exists {
		return user.User{}, ErrEmailAlreadyRegistered
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.User{}, ErrInternal
	}

	u := user.User{
		ID:            uuid.New(),
		Role:          user.RoleRegular,
		Name:          strings.TrimSpace(in.Name),
		Email:         email,
		PasswordHash:  string(hash),
		PetName:       strings.TrimSpace(in.PetName),
		Location:      strings.TrimSpace(in.Location),
		ProfilePhoto:  in.ProfilePhoto,
		SkillsOffered: in.SkillsOffered,
		SkillsWanted:  in.SkillsWanted,
		Availability:  in.Availability,
		IsPublic:      in.IsPublic,
	}

	if err := s.users.Create(ctx, u); err != nil {
		exists, exErr := s.users.ExistsByEmail(ctx, email)
		if exErr == nil && exists {
			return user.User{}, ErrEmailAlreadyRegistered
		}
		return user.User{}, ErrInternal
	}

	created, err := s.users.GetByID(ctx, u.ID)
	if err != nil {
		return user.User{}, ErrInternal
	}
	return sanitizeUser(created), nil
}

// Login always verifies the password hash. There is no bypass path.
func (s *Service) Login(ctx context.Context, in LoginInput) (user.User, error) {
	email := normalizeEmail(in.Email)
	if email == "" || in.Password == "" {
		return user.User{}, ErrInvalidCredentials
	}

	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, ErrInvalidCredentials
		}
		return user.User{}, ErrInternal
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)); err != nil {
		return user.User{}, ErrInvalidCredentials
	}

	return sanitizeUser(u), nil
}

// VerifyPetName is the recovery check behind forgot-password: the stored pet
// name must match exactly.
func (s *Service) VerifyPetName(ctx context.Context, email, petName string) error {
	email = normalizeEmail(email)
	if email == "" || strings.TrimSpace(petName) == "" {
		return ErrInvalidInput
	}

	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return ErrAccountNotFound
		}
		return ErrInternal
	}

	if u.PetName != strings.TrimSpace(petName) {
		return ErrPetNameMismatch
	}
	return nil
}

func (s *Service) ResetPassword(ctx context.Context, in ResetPasswordInput) error {
	if !isValidPassword(in.NewPassword) {
		return ErrInvalidInput
	}
	if err := s.VerifyPetName(ctx, in.Email, in.PetName); err != nil {
		return err
	}

	u, err := s.users.GetByEmail(ctx, normalizeEmail(in.Email))
	if err != nil {
		return ErrInternal
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return ErrInternal
	}

	if err := s.users.UpdatePassword(ctx, u.ID, string(hash)); err != nil {
		return ErrInternal
	}
	return nil
}

func normalizeEmail(email string) string {
	email = strings.TrimSpace(email)
	if email == "" {
		return ""
	}
	return strings.ToLower(email)
}

func isValidPassword(pw string) bool {
	return len(strings.TrimSpace(pw)) >= 6
}

func sanitizeUser(u user.User) user.User {
	u.PasswordHash = ""
	return u
}
