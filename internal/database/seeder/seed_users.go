package seeder

import (
	"context"
	"encoding/json"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"skill-swap/internal/database"
	"skill-swap/internal/domain/user"
)

// UsersSeeder inserts a handful of demo accounts so a fresh install has
// browsable profiles. Existing emails are left untouched.
type UsersSeeder struct{}

func (UsersSeeder) Name() string { return "users" }

func (UsersSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "users",
		"id", "role", "name", "email", "password_hash", "pet_name",
		"location", "profile_photo", "skills_offered", "skills_wanted",
		"availability", "is_public", "is_banned", "created_at", "updated_at",
	); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	items := []struct {
		Name          string
		Email         string
		PetName       string
		Location      string
		SkillsOffered []string
		SkillsWanted  []string
		Availability  user.Availability
	}{
		{
			Name:          "John Doe",
			Email:         "john.doe@example.com",
			PetName:       "Buddy",
			Location:      "New York, NY",
			SkillsOffered: []string{"JavaScript", "React", "Node.js"},
			SkillsWanted:  []string{"Python", "Machine Learning"},
			Availability:  user.Availability{Weekdays: true},
		},
		{
			Name:          "Jane Smith",
			Email:         "jane.smith@example.com",
			PetName:       "Fluffy",
			Location:      "Los Angeles, CA",
			SkillsOffered: []string{"Python", "Data Analysis", "SQL"},
			SkillsWanted:  []string{"JavaScript", "Web Development"},
			Availability:  user.Availability{Weekends: true},
		},
		{
			Name:          "Mike Johnson",
			Email:         "mike.johnson@example.com",
			PetName:       "Max",
			Location:      "Chicago, IL",
			SkillsOffered: []string{"Java", "Spring Boot", "Docker"},
			SkillsWanted:  []string{"React", "Frontend Development"},
			Availability:  user.Availability{Weekdays: true, Weekends: true},
		},
		{
			Name:          "Sarah Wilson",
			Email:         "sarah.wilson@example.com",
			PetName:       "Luna",
			Location:      "Miami, FL",
			SkillsOffered: []string{"UI/UX Design", "Figma", "Adobe Creative Suite"},
			SkillsWanted:  []string{"JavaScript", "React"},
			Availability:  user.Availability{Custom: true, CustomText: "Available on request"},
		},
		{
			Name:          "David Brown",
			Email:         "david.brown@example.com",
			PetName:       "Rocky",
			Location:      "Seattle, WA",
			SkillsOffered: []string{"DevOps", "AWS", "Kubernetes"},
			SkillsWanted:  []string{"Python", "Data Science"},
			Availability:  user.Availability{Weekdays: true},
		},
	}

	for _, it := range items {
		avail, err := json.Marshal(it.Availability)
		if err != nil {
			return err
		}
		affected, err := tx.Exec(
			ctx,
			`INSERT INTO users (id, role, name, email, password_hash, pet_name, location, skills_offered, skills_wanted, availability, is_public, is_banned)
			 VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, $6, $7, $8, $9, TRUE, FALSE)
			 ON CONFLICT (email) DO NOTHING`,
			string(user.RoleRegular),
			it.Name,
			it.Email,
			string(hash),
			it.PetName,
			it.Location,
			it.SkillsOffered,
			it.SkillsWanted,
			avail,
		)
		if err != nil {
			return err
		}
		_ = affected
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
