package matching

type Availability struct {
	Weekdays   bool
	Weekends   bool
	Custom     bool
	CustomText string
}

// Profile is the slice of a user record the scoring sweep looks at. A nil
// Availability or nil skill list marks the field as absent from the stored
// record, not as empty.
type Profile struct {
	Availability  *Availability
	SkillsOffered []string
	SkillsWanted  []string
}

const (
	MatchTypeBasic   = "basic"
	MatchTypeGood    = "good"
	MatchTypePerfect = "perfect"
)

const MaxScore = 3

// Scorable reports whether p carries every field the score function reads.
// Profiles failing this are skipped by callers, not scored as zero.
func Scorable(p Profile) bool {
	return p.Availability != nil && p.SkillsOffered != nil && p.SkillsWanted != nil
}

// Score computes the compatibility of candidate against caller: one point
// per independent check, at most three.
//
//  1. Availability overlap: shared weekday or weekend slot, or both custom
//     with the exact same custom text.
//  2. Offered-match: the candidate offers something the caller wants.
//  3. Wanted-match: the candidate wants something the caller offers.
//
// Both profiles must be Scorable; Score does not re-check.
func Score(caller, candidate Profile) int {
	score := 0

	if availabilityOverlap(*caller.Availability, *candidate.Availability) {
		score++
	}
	if anyInCommon(candidate.SkillsOffered, caller.SkillsWanted) {
		score++
	}
	if anyInCommon(candidate.SkillsWanted, caller.SkillsOffered) {
		score++
	}

	return score
}

// TypeForScore maps a non-zero score to its label. Zero-score candidates
// never surface, so the empty string marks the out-of-range case.
func TypeForScore(score int) string {
	switch score {
	case 3:
		return MatchTypePerfect
	case 2:
		return MatchTypeGood
	case 1:
		return MatchTypeBasic
	default:
		return ""
	}
}

// availabilityOverlap is a single boolean: matching on both weekday and
// weekend slots still counts once.
func availabilityOverlap(a, b Availability) bool {
	if a.Weekdays && b.Weekdays {
		return true
	}
	if a.Weekends && b.Weekends {
		return true
	}
	return a.Custom && b.Custom && a.CustomText == b.CustomText
}

func anyInCommon(candidates, pool []string) bool {
	if len(candidates) == 0 || len(pool) == 0 {
		return false
	}
	set := make(map[string]struct{}, len(pool))
	for _, s := range pool {
		set[s] = struct{}{}
	}
	for _, s := range candidates {
		if _, ok := set[s]; ok {
			return true
		}
	}
	return false
}
