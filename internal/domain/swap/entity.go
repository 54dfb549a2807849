package swap

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusAccepted  Status = "accepted"
	StatusRejected  Status = "rejected"
	StatusCancelled Status = "cancelled"
)

// ParseStatus returns the Status for raw, or false for anything outside the
// four enum values.
func ParseStatus(raw string) (Status, bool) {
	switch Status(raw) {
	case StatusPending, StatusAccepted, StatusRejected, StatusCancelled:
		return Status(raw), true
	}
	return "", false
}

// Terminal reports whether no further transition is defined from s.
func (s Status) Terminal() bool {
	return s == StatusAccepted || s == StatusRejected || s == StatusCancelled
}

type Request struct {
	ID             uuid.UUID
	RequesterID    uuid.UUID
	RecipientID    uuid.UUID
	SkillOffered   string
	SkillRequested string
	Message        string
	Status         Status
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
