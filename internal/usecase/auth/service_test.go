package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"skill-swap/internal/domain/user"
)

type memoryUserRepo struct {
	users     map[uuid.UUID]user.User
	createErr error
}

func newMemoryUserRepo() *memoryUserRepo {
	return &memoryUserRepo{users: map[uuid.UUID]user.User{}}
}

func (m *memoryUserRepo) Create(_ context.Context, u user.User) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.users[u.ID] = u
	return nil
}

func (m *memoryUserRepo) GetByID(_ context.Context, id uuid.UUID) (user.User, error) {
	u, ok := m.users[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (m *memoryUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (m *memoryUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := m.GetByEmail(ctx, email)
	if errors.Is(err, user.ErrNotFound) {
		return false, nil
	}
	return err == nil, err
}

func (m *memoryUserRepo) ListCandidates(context.Context, user.CandidateFilter) ([]user.User, error) {
	return nil, nil
}

func (m *memoryUserRepo) UpdateProfile(_ context.Context, id uuid.UUID, _ user.ProfilePatch) (user.User, error) {
	u, ok := m.users[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (m *memoryUserRepo) UpdatePassword(_ context.Context, id uuid.UUID, hash string) error {
	u, ok := m.users[id]
	if !ok {
		return user.ErrNotFound
	}
	u.PasswordHash = hash
	m.users[id] = u
	return nil
}

func registered(t *testing.T, repo *memoryUserRepo) user.User {
	t.Helper()
	svc := NewService(repo)
	u, err := svc.Register(context.Background(), RegisterInput{
		Name:     "Alice",
		Email:    "Alice@Example.com",
		Password: "secret123",
		PetName:  "Buddy",
		IsPublic: true,
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	return u
}

func TestRegister_NormalizesAndHashes(t *testing.T) {
	repo := newMemoryUserRepo()
	u := registered(t, repo)

	if u.Email != "alice@example.com" {
		t.Fatalf("expected lowercased email, got %q", u.Email)
	}
	if u.PasswordHash != "" {
		t.Fatalf("returned user must not carry the password hash")
	}

	stored := repo.users[u.ID]
	if stored.PasswordHash == "" || stored.PasswordHash == "secret123" {
		t.Fatalf("stored password must be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secret123")); err != nil {
		t.Fatalf("stored hash does not verify: %v", err)
	}
}

func TestRegister_Validation(t *testing.T) {
	svc := NewService(newMemoryUserRepo())

	cases := []struct {
		name string
		in   RegisterInput
	}{
		{"empty name", RegisterInput{Email: "a@b.com", Password: "secret123", PetName: "Buddy"}},
		{"empty email", RegisterInput{Name: "A", Password: "secret123", PetName: "Buddy"}},
		{"empty pet name", RegisterInput{Name: "A", Email: "a@b.com", Password: "secret123"}},
		{"short password", RegisterInput{Name: "A", Email: "a@b.com", Password: "12345", PetName: "Buddy"}},
		{"whitespace password", RegisterInput{Name: "A", Email: "a@b.com", Password: "      ", PetName: "Buddy"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Register(context.Background(), tc.in); !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo := newMemoryUserRepo()
	registered(t, repo)

	svc := NewService(repo)
	_, err := svc.Register(context.Background(), RegisterInput{
		Name:     "Other",
		Email:    "alice@example.com",
		Password: "secret123",
		PetName:  "Rex",
	})
	if !errors.Is(err, ErrEmailAlreadyRegistered) {
		t.Fatalf("expected ErrEmailAlreadyRegistered, got %v", err)
	}
}

func TestLogin(t *testing.T) {
	repo := newMemoryUserRepo()
	registered(t, repo)
	svc := NewService(repo)

	u, err := svc.Login(context.Background(), LoginInput{Email: "ALICE@example.com", Password: "secret123"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if u.PasswordHash != "" {
		t.Fatalf("login response must not carry the password hash")
	}

	if _, err := svc.Login(context.Background(), LoginInput{Email: "alice@example.com", Password: "wrong-pass"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for wrong password, got %v", err)
	}
	if _, err := svc.Login(context.Background(), LoginInput{Email: "nobody@example.com", Password: "secret123"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", err)
	}
	if _, err := svc.Login(context.Background(), LoginInput{Email: "alice@example.com"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for empty password, got %v", err)
	}
}

func TestVerifyPetName(t *testing.T) {
	repo := newMemoryUserRepo()
	registered(t, repo)
	svc := NewService(repo)

	if err := svc.VerifyPetName(context.Background(), "alice@example.com", "Buddy"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if err := svc.VerifyPetName(context.Background(), "alice@example.com", "buddy"); !errors.Is(err, ErrPetNameMismatch) {
		t.Fatalf("pet name comparison is case-sensitive, got %v", err)
	}
	if err := svc.VerifyPetName(context.Background(), "nobody@example.com", "Buddy"); !errors.Is(err, ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}

func TestResetPassword(t *testing.T) {
	repo := newMemoryUserRepo()
	registered(t, repo)
	svc := NewService(repo)

	err := svc.ResetPassword(context.Background(), ResetPasswordInput{
		Email:       "alice@example.com",
		PetName:     "Buddy",
		NewPassword: "next-secret",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if _, err := svc.Login(context.Background(), LoginInput{Email: "alice@example.com", Password: "secret123"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("old password must stop working, got %v", err)
	}
	if _, err := svc.Login(context.Background(), LoginInput{Email: "alice@example.com", Password: "next-secret"}); err != nil {
		t.Fatalf("new password must work, got %v", err)
	}

	err = svc.ResetPassword(context.Background(), ResetPasswordInput{
		Email:       "alice@example.com",
		PetName:     "Rex",
		NewPassword: "another-secret",
	})
	if !errors.Is(err, ErrPetNameMismatch) {
		t.Fatalf("expected ErrPetNameMismatch, got %v", err)
	}

	err = svc.ResetPassword(context.Background(), ResetPasswordInput{
		Email:       "alice@example.com",
		PetName:     "Buddy",
		NewPassword: "123",
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for short password, got %v", err)
	}
}
