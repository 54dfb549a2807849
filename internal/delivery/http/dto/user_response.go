package dto

import (
	"time"

	"github.com/google/uuid"

	"skill-swap/internal/domain/user"
)

type UserResponse struct {
	ID            uuid.UUID          `json:"id"`
	Role          string             `json:"role"`
	Name          string             `json:"name"`
	Email         string             `json:"email"`
	Location      string             `json:"location"`
	ProfilePhoto  *string            `json:"profilePhoto"`
	SkillsOffered []string           `json:"skillsOffered"`
	SkillsWanted  []string           `json:"skillsWanted"`
	Availability  *user.Availability `json:"availability"`
	IsPublic      bool               `json:"isPublic"`
	CreatedAt     time.Time          `json:"createdAt"`
}

func NewUserResponse(u user.User) UserResponse {
	return UserResponse{
		ID:            u.ID,
		Role:          string(u.Role),
		Name:          u.Name,
		Email:         u.Email,
		Location:      u.Location,
		ProfilePhoto:  u.ProfilePhoto,
		SkillsOffered: u.SkillsOffered,
		SkillsWanted:  u.SkillsWanted,
		Availability:  u.Availability,
		IsPublic:      u.IsPublic,
		CreatedAt:     u.CreatedAt,
	}
}

func NewUserListResponse(users []user.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, NewUserResponse(u))
	}
	return out
}
