package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"skill-swap/internal/database"
	"skill-swap/internal/domain/user"
)

const userColumns = `id, role, name, email, password_hash, pet_name, location, profile_photo,
skills_offered, skills_wanted, availability, is_public, is_banned, created_at, updated_at`

type UserRepository struct {
	db database.DB
}

func NewUserRepository(db database.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, u user.User) error {
	avail, err := marshalAvailability(u.Availability)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO users (id, role, name, email, password_hash, pet_name, location, profile_photo,
			skills_offered, skills_wanted, availability, is_public, is_banned)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		u.ID, string(u.Role), u.Name, u.Email, u.PasswordHash, u.PetName, u.Location, u.ProfilePhoto,
		u.SkillsOffered, u.SkillsWanted, avail, u.IsPublic, u.IsBanned,
	)
	return err
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (user.User, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return scanUser(row)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (user.User, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	return scanUser(row)
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`, email).Scan(&exists)
	return exists, err
}

func (r *UserRepository) ListCandidates(ctx context.Context, f user.CandidateFilter) ([]user.User, error) {
	q := `SELECT ` + userColumns + ` FROM users WHERE id <> $1`
	if f.OnlyPublic {
		q += ` AND is_public = TRUE`
	}
	if f.ExcludeBanned {
		q += ` AND is_banned = FALSE`
	}
	q += ` ORDER BY created_at ASC, id ASC`

	rows, err := r.db.Query(ctx, q, f.ExcludeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]user.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *UserRepository) UpdateProfile(ctx context.Context, id uuid.UUID, patch user.ProfilePatch) (user.User, error) {
	sets := make([]string, 0, 8)
	args := make([]any, 0, 8)
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if patch.Name != nil {
		sets = append(sets, "name = "+arg(*patch.Name))
	}
	if patch.Location != nil {
		sets = append(sets, "location = "+arg(*patch.Location))
	}
	if patch.IsPublic != nil {
		sets = append(sets, "is_public = "+arg(*patch.IsPublic))
	}
	if patch.SkillsOffered != nil {
		sets = append(sets, "skills_offered = "+arg(patch.SkillsOffered))
	}
	if patch.SkillsWanted != nil {
		sets = append(sets, "skills_wanted = "+arg(patch.SkillsWanted))
	}
	if patch.Availability != nil {
		avail, err := marshalAvailability(patch.Availability)
		if err != nil {
			return user.User{}, err
		}
		sets = append(sets, "availability = "+arg(avail))
	}
	if patch.ProfilePhoto != nil {
		sets = append(sets, "profile_photo = "+arg(*patch.ProfilePhoto))
	}

	if len(sets) == 0 {
		return r.GetByID(ctx, id)
	}

	sets = append(sets, "updated_at = now()")
	q := `UPDATE users SET ` + strings.Join(sets, ", ") + ` WHERE id = ` + arg(id) + ` RETURNING ` + userColumns

	return scanUser(r.db.QueryRow(ctx, q, args...))
}

func (r *UserRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	affected, err := r.db.Exec(
		ctx,
		`UPDATE users SET password_hash = $2, updated_at = now() WHERE id = $1`,
		id, passwordHash,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return user.ErrNotFound
	}
	return nil
}

func scanUser(row database.Row) (user.User, error) {
	var u user.User
	var role string
	var availRaw []byte

	err := row.Scan(
		&u.ID, &role, &u.Name, &u.Email, &u.PasswordHash, &u.PetName, &u.Location, &u.ProfilePhoto,
		&u.SkillsOffered, &u.SkillsWanted, &availRaw, &u.IsPublic, &u.IsBanned, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, err
	}

	u.Role = user.Role(role)
	if len(availRaw) > 0 {
		var a user.Availability
		if err := json.Unmarshal(availRaw, &a); err != nil {
			return user.User{}, err
		}
		u.Availability = &a
	}
	return u, nil
}

func marshalAvailability(a *user.Availability) ([]byte, error) {
	if a == nil {
		return nil, nil
	}
	return json.Marshal(a)
}
