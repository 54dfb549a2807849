package dto

import (
	"skill-swap/internal/domain/skill"
)

type SkillResponse struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

func NewSkillListResponse(items []skill.Skill) []SkillResponse {
	out := make([]SkillResponse, 0, len(items))
	for _, s := range items {
		out = append(out, SkillResponse{Name: s.Name, Category: s.Category})
	}
	return out
}
