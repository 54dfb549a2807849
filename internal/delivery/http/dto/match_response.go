package dto

import (
	"github.com/google/uuid"

	"skill-swap/internal/domain/user"
	"skill-swap/internal/usecase"
)

// MatchProfileResponse is the public summary used for both the caller and
// each scored candidate.
type MatchProfileResponse struct {
	ID            uuid.UUID          `json:"id"`
	Name          string             `json:"name"`
	Email         string             `json:"email"`
	Location      string             `json:"location"`
	ProfilePhoto  *string            `json:"profilePhoto"`
	SkillsOffered []string           `json:"skillsOffered"`
	SkillsWanted  []string           `json:"skillsWanted"`
	Availability  *user.Availability `json:"availability"`
}

type MatchCandidateResponse struct {
	MatchProfileResponse
	MatchCount int    `json:"matchCount"`
	MatchType  string `json:"matchType"`
}

type MatchResultResponse struct {
	CurrentUser  MatchProfileResponse     `json:"currentUser"`
	Matches      []MatchCandidateResponse `json:"matches"`
	TotalMatches int                      `json:"totalMatches"`
}

func NewMatchResultResponse(res usecase.MatchResult) MatchResultResponse {
	out := MatchResultResponse{
		CurrentUser:  newMatchProfile(res.CurrentUser),
		Matches:      make([]MatchCandidateResponse, 0, len(res.Matches)),
		TotalMatches: res.TotalMatches,
	}
	for _, m := range res.Matches {
		out.Matches = append(out.Matches, MatchCandidateResponse{
			MatchProfileResponse: newMatchProfile(m.User),
			MatchCount:           m.MatchCount,
			MatchType:            m.MatchType,
		})
	}
	return out
}

func newMatchProfile(u user.User) MatchProfileResponse {
	return MatchProfileResponse{
		ID:            u.ID,
		Name:          u.Name,
		Email:         u.Email,
		Location:      u.Location,
		ProfilePhoto:  u.ProfilePhoto,
		SkillsOffered: u.SkillsOffered,
		SkillsWanted:  u.SkillsWanted,
		Availability:  u.Availability,
	}
}
