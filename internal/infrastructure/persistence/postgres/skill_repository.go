package postgres

import (
	"context"

	"skill-swap/internal/database"
	"skill-swap/internal/domain/skill"
)

type SkillRepository struct {
	db database.DB
}

func NewSkillRepository(db database.DB) *SkillRepository {
	return &SkillRepository{db: db}
}

func (r *SkillRepository) ListAll(ctx context.Context) ([]skill.Skill, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, category, created_at FROM skills ORDER BY category ASC, name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]skill.Skill, 0)
	for rows.Next() {
		var s skill.Skill
		if err := rows.Scan(&s.ID, &s.Name, &s.Category, &s.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
