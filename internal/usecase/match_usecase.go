package usecase

import (
	"context"
	"errors"
	"sort"

	"github.com/google/uuid"

	"skill-swap/internal/domain/matching"
	"skill-swap/internal/domain/user"
)

var ErrUserNotFound = errors.New("user not found")

// MatchCandidate is one scored user: MatchCount is always 1..3, zero-score
// candidates are dropped before results are assembled.
type MatchCandidate struct {
	User       user.User
	MatchCount int
	MatchType  string
}

type MatchResult struct {
	CurrentUser  user.User
	Matches      []MatchCandidate
	TotalMatches int
}

type MatchUsecase interface {
	ComputeMatches(ctx context.Context, currentUserID uuid.UUID) (MatchResult, error)
}

type Match struct {
	users user.Repository
}

func NewMatchUsecase(users user.Repository) *Match {
	return &Match{users: users}
}

// ComputeMatches runs a full single-pass sweep over all visible users. The
// pool is not paginated; scoring is O(n) per call and read-only.
func (m *Match) ComputeMatches(ctx context.Context, currentUserID uuid.UUID) (MatchResult, error) {
	current, err := m.users.GetByID(ctx, currentUserID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return MatchResult{}, ErrUserNotFound
		}
		return MatchResult{}, ErrInternal
	}

	candidates, err := m.users.ListCandidates(ctx, user.CandidateFilter{
		ExcludeID:     currentUserID,
		OnlyPublic:    true,
		ExcludeBanned: true,
	})
	if err != nil {
		return MatchResult{}, ErrInternal
	}

	callerProfile := callerScoringProfile(current)

	matches := make([]MatchCandidate, 0, len(candidates))
	for _, c := range candidates {
		p := scoringProfile(c)
		if !matching.Scorable(p) {
			continue
		}

		score := matching.Score(callerProfile, p)
		if score == 0 {
			continue
		}

		c.PasswordHash = ""
		matches = append(matches, MatchCandidate{
			User:       c,
			MatchCount: score,
			MatchType:  matching.TypeForScore(score),
		})
	}

	// Stable: ties keep scan order.
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].MatchCount > matches[j].MatchCount
	})

	current.PasswordHash = ""
	return MatchResult{
		CurrentUser:  current,
		Matches:      matches,
		TotalMatches: len(matches),
	}, nil
}

func scoringProfile(u user.User) matching.Profile {
	var avail *matching.Availability
	if u.Availability != nil {
		avail = &matching.Availability{
			Weekdays:   u.Availability.Weekdays,
			Weekends:   u.Availability.Weekends,
			Custom:     u.Availability.Custom,
			CustomText: u.Availability.CustomText,
		}
	}
	return matching.Profile{
		Availability:  avail,
		SkillsOffered: u.SkillsOffered,
		SkillsWanted:  u.SkillsWanted,
	}
}

// callerScoringProfile fills gaps in the caller's own record with empty
// values: a caller with no availability simply never matches on that check,
// while candidates with gaps are skipped outright.
func callerScoringProfile(u user.User) matching.Profile {
	p := scoringProfile(u)
	if p.Availability == nil {
		p.Availability = &matching.Availability{}
	}
	if p.SkillsOffered == nil {
		p.SkillsOffered = []string{}
	}
	if p.SkillsWanted == nil {
		p.SkillsWanted = []string{}
	}
	return p
}
