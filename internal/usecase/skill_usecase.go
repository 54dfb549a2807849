package usecase

import (
	"context"
	"time"

	"skill-swap/internal/domain/skill"
)

const skillCatalogCacheKey = "skills:catalog"

// CatalogCache is the slice of the Redis cache the skill catalog needs. A
// nil cache is a valid always-miss implementation.
type CatalogCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
}

type SkillUsecase interface {
	ListSkills(ctx context.Context) ([]skill.Skill, error)
}

type Skills struct {
	skills skill.Repository
	cache  CatalogCache
	ttl    time.Duration
}

func NewSkillUsecase(skills skill.Repository, cache CatalogCache) *Skills {
	return &Skills{skills: skills, cache: cache, ttl: 10 * time.Minute}
}

func (u *Skills) ListSkills(ctx context.Context) ([]skill.Skill, error) {
	if u.cache != nil {
		var cached []skill.Skill
		if hit, err := u.cache.GetJSON(ctx, skillCatalogCacheKey, &cached); err == nil && hit {
			return cached, nil
		}
	}

	items, err := u.skills.ListAll(ctx)
	if err != nil {
		return nil, ErrInternal
	}

	if u.cache != nil {
		_ = u.cache.SetJSON(ctx, skillCatalogCacheKey, items, u.ttl)
	}
	return items, nil
}
