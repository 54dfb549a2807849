package user

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleRegular Role = "regular"
	RoleAdmin   Role = "admin"
)

// Availability mirrors the profile's declared time slots. A nil
// *Availability on User means the profile never filled the section in.
type Availability struct {
	Weekdays   bool   `json:"weekdays"`
	Weekends   bool   `json:"weekends"`
	Custom     bool   `json:"custom"`
	CustomText string `json:"customText"`
}

type User struct {
	ID            uuid.UUID
	Role          Role
	Name          string
	Email         string
	PasswordHash  string
	PetName       string
	Location      string
	ProfilePhoto  *string
	SkillsOffered []string
	SkillsWanted  []string
	Availability  *Availability
	IsPublic      bool
	IsBanned      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Offers reports whether the user lists skill in SkillsOffered.
// Exact, case-sensitive comparison; duplicates in the list are harmless.
func (u User) Offers(skill string) bool {
	for _, s := range u.SkillsOffered {
		if s == skill {
			return true
		}
	}
	return false
}

// Summary is the public projection embedded in swap-request and match
// payloads.
type Summary struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Location     string    `json:"location"`
	ProfilePhoto *string   `json:"profilePhoto"`
}

func (u User) Summary() Summary {
	return Summary{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		Location:     u.Location,
		ProfilePhoto: u.ProfilePhoto,
	}
}
