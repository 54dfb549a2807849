package matching

import "testing"

func avail(weekdays, weekends, custom bool, text string) *Availability {
	return &Availability{Weekdays: weekdays, Weekends: weekends, Custom: custom, CustomText: text}
}

func TestScorable(t *testing.T) {
	cases := []struct {
		name string
		p    Profile
		want bool
	}{
		{"complete", Profile{Availability: avail(true, false, false, ""), SkillsOffered: []string{}, SkillsWanted: []string{}}, true},
		{"nil availability", Profile{SkillsOffered: []string{"Go"}, SkillsWanted: []string{"SQL"}}, false},
		{"nil skills offered", Profile{Availability: avail(true, false, false, ""), SkillsWanted: []string{}}, false},
		{"nil skills wanted", Profile{Availability: avail(true, false, false, ""), SkillsOffered: []string{}}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Scorable(tc.p); got != tc.want {
				t.Fatalf("Scorable=%v, want %v", got, tc.want)
			}
		})
	}
}

func TestScore_AllThreeChecks(t *testing.T) {
	caller := Profile{
		Availability:  avail(true, false, false, ""),
		SkillsOffered: []string{"Guitar"},
		SkillsWanted:  []string{"Spanish"},
	}
	candidate := Profile{
		Availability:  avail(true, true, false, ""),
		SkillsOffered: []string{"Spanish"},
		SkillsWanted:  []string{"Guitar"},
	}

	if got := Score(caller, candidate); got != 3 {
		t.Fatalf("Score=%d, want 3", got)
	}
	if got := TypeForScore(3); got != MatchTypePerfect {
		t.Fatalf("TypeForScore(3)=%q, want %q", got, MatchTypePerfect)
	}
}

func TestScore_AvailabilityCountsOnce(t *testing.T) {
	// Overlap on both weekdays and weekends is still a single point.
	caller := Profile{
		Availability:  avail(true, true, false, ""),
		SkillsOffered: []string{},
		SkillsWanted:  []string{},
	}
	candidate := Profile{
		Availability:  avail(true, true, false, ""),
		SkillsOffered: []string{},
		SkillsWanted:  []string{},
	}

	if got := Score(caller, candidate); got != 1 {
		t.Fatalf("Score=%d, want 1", got)
	}
}

func TestScore_CustomTextExactMatch(t *testing.T) {
	cases := []struct {
		name       string
		callerText string
		candText   string
		want       int
	}{
		{"identical text", "evenings only", "evenings only", 1},
		{"different case", "Evenings only", "evenings only", 0},
		{"different text", "evenings only", "mornings", 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			caller := Profile{
				Availability:  avail(false, false, true, tc.callerText),
				SkillsOffered: []string{},
				SkillsWanted:  []string{},
			}
			candidate := Profile{
				Availability:  avail(false, false, true, tc.candText),
				SkillsOffered: []string{},
				SkillsWanted:  []string{},
			}
			if got := Score(caller, candidate); got != tc.want {
				t.Fatalf("Score=%d, want %d", got, tc.want)
			}
		})
	}
}

func TestScore_SkillDirections(t *testing.T) {
	caller := Profile{
		Availability:  avail(false, false, false, ""),
		SkillsOffered: []string{"Go", "SQL"},
		SkillsWanted:  []string{"Photography"},
	}

	cases := []struct {
		name      string
		candidate Profile
		want      int
	}{
		{
			"offered match only",
			Profile{
				Availability:  avail(true, false, false, ""),
				SkillsOffered: []string{"Photography"},
				SkillsWanted:  []string{"Painting"},
			},
			1,
		},
		{
			"wanted match only",
			Profile{
				Availability:  avail(true, false, false, ""),
				SkillsOffered: []string{"Painting"},
				SkillsWanted:  []string{"SQL"},
			},
			1,
		},
		{
			"both directions",
			Profile{
				Availability:  avail(true, false, false, ""),
				SkillsOffered: []string{"Photography"},
				SkillsWanted:  []string{"Go"},
			},
			2,
		},
		{
			"no overlap anywhere",
			Profile{
				Availability:  avail(true, false, false, ""),
				SkillsOffered: []string{"Painting"},
				SkillsWanted:  []string{"Painting"},
			},
			0,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Score(caller, tc.candidate); got != tc.want {
				t.Fatalf("Score=%d, want %d", got, tc.want)
			}
		})
	}
}

func TestTypeForScore(t *testing.T) {
	cases := []struct {
		score int
		want  string
	}{
		{3, MatchTypePerfect},
		{2, MatchTypeGood},
		{1, MatchTypeBasic},
		{0, ""},
		{4, ""},
	}
	for _, tc := range cases {
		if got := TypeForScore(tc.score); got != tc.want {
			t.Fatalf("TypeForScore(%d)=%q, want %q", tc.score, got, tc.want)
		}
	}
}
