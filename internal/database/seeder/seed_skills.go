package seeder

import (
	"context"
	"fmt"

	"skill-swap/internal/database"
)

type SkillsSeeder struct{}

func (SkillsSeeder) Name() string { return "skills" }

func (SkillsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "skills", "id", "name", "category", "created_at"); err != nil {
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
		Name     string
		Category string
	}{
		{Name: "JavaScript", Category: "Programming"},
		{Name: "Python", Category: "Programming"},
		{Name: "Java", Category: "Programming"},
		{Name: "React", Category: "Frontend"},
		{Name: "Frontend Development", Category: "Frontend"},
		{Name: "Web Development", Category: "Frontend"},
		{Name: "Node.js", Category: "Backend"},
		{Name: "Spring Boot", Category: "Backend"},
		{Name: "SQL", Category: "Data"},
		{Name: "Data Analysis", Category: "Data"},
		{Name: "Data Science", Category: "Data"},
		{Name: "Machine Learning", Category: "Data"},
		{Name: "Docker", Category: "DevOps"},
		{Name: "Kubernetes", Category: "DevOps"},
		{Name: "DevOps", Category: "DevOps"},
		{Name: "AWS", Category: "Cloud"},
		{Name: "UI/UX Design", Category: "Design"},
		{Name: "Figma", Category: "Design"},
		{Name: "Adobe Creative Suite", Category: "Design"},
	}

	for _, it := range items {
		affected, err := tx.Exec(
			ctx,
			`INSERT INTO skills (id, name, category) VALUES (gen_random_uuid(), $1, $2) ON CONFLICT (name) DO NOTHING`,
			it.Name,
			it.Category,
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
