package skill

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Skill is one entry in the curated catalog offered to profile forms.
type Skill struct {
	ID        uuid.UUID
	Name      string
	Category  string
	CreatedAt time.Time
}

type Repository interface {
	ListAll(ctx context.Context) ([]Skill, error)
}
