package game

import "time"

type RequirementKind string

const (
	RequireMissions RequirementKind = "missions"
	RequireStreak   RequirementKind = "streak"
	RequireStat     RequirementKind = "stat"
	RequireJutsu    RequirementKind = "jutsu"
	RequireRank     RequirementKind = "rank"
)

// Requirement is the unlock condition of an achievement. Stat is only set
// for RequireStat.
type Requirement struct {
	Kind  RequirementKind `json:"kind"`
	Value int             `json:"value"`
	Stat  Stat            `json:"stat,omitempty"`
}

type Achievement struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Icon        string      `json:"icon"`
	Requirement Requirement `json:"requirement"`
	Unlocked    bool        `json:"unlocked"`
	UnlockedAt  *time.Time  `json:"unlockedAt,omitempty"`
}

// DefaultAchievements returns the badge catalog, all locked.
func DefaultAchievements() []Achievement {
	return []Achievement{
		{
			ID:          "first_mission",
			Title:       "First Steps",
			Description: "Complete your first mission",
			Icon:        "🎯",
			Requirement: Requirement{Kind: RequireMissions, Value: 1},
		},
		{
			ID:          "week_streak",
			Title:       "Dedicated Ninja",
			Description: "Maintain a 7-day mission streak",
			Icon:        "🔥",
			Requirement: Requirement{Kind: RequireStreak, Value: 7},
		},
		{
			ID:          "chakra_master",
			Title:       "Chakra Master",
			Description: "Reach 200 Chakra points",
			Icon:        "💙",
			Requirement: Requirement{Kind: RequireStat, Value: 200, Stat: StatChakra},
		},
		{
			ID:          "strength_warrior",
			Title:       "Strength Warrior",
			Description: "Reach 200 Strength points",
			Icon:        "💪",
			Requirement: Requirement{Kind: RequireStat, Value: 200, Stat: StatStrength},
		},
		{
			ID:          "intelligence_sage",
			Title:       "Intelligence Sage",
			Description: "Reach 200 Intelligence points",
			Icon:        "🧠",
			Requirement: Requirement{Kind: RequireStat, Value: 200, Stat: StatIntelligence},
		},
		{
			ID:          "first_jutsu",
			Title:       "Jutsu Apprentice",
			Description: "Unlock your first jutsu technique",
			Icon:        "⚡",
			Requirement: Requirement{Kind: RequireJutsu, Value: 1},
		},
		{
			ID:          "mission_master",
			Title:       "Mission Master",
			Description: "Complete 50 missions",
			Icon:        "🏆",
			Requirement: Requirement{Kind: RequireMissions, Value: 50},
		},
		{
			ID:          "genin_rank",
			Title:       "Genin Graduate",
			Description: "Reach Genin rank",
			Icon:        "🥋",
			Requirement: Requirement{Kind: RequireRank, Value: 100},
		},
	}
}

// Tracker holds the achievement collection and unlocks badges by comparing
// progress aggregates against each requirement. It reads engine state but
// never writes it; unlocks are monotonic.
type Tracker struct {
	achievements []Achievement
	onUnlock     func(Achievement)
	now          func() time.Time
}

// NewTracker builds a tracker over the default badge catalog. onUnlock may
// be nil; when set it fires once per achievement, on the evaluation that
// first satisfies it.
func NewTracker(onUnlock func(Achievement)) *Tracker {
	return &Tracker{
		achievements: DefaultAchievements(),
		onUnlock:     onUnlock,
		now:          time.Now,
	}
}

// Achievements returns a copy of the collection.
func (t *Tracker) Achievements() []Achievement {
	out := make([]Achievement, len(t.achievements))
	copy(out, t.achievements)
	return out
}

// progressMetrics are the aggregates every requirement kind is checked
// against.
type progressMetrics struct {
	completedMissions int
	maxStreak         int
	unlockedJutsu     int
	stats             UserStats
}

func collectMetrics(stats UserStats, missions []Mission, jutsu []Jutsu) progressMetrics {
	m := progressMetrics{stats: stats}
	for _, ms := range missions {
		if ms.Completed {
			m.completedMissions++
		}
		if ms.Streak > m.maxStreak {
			m.maxStreak = ms.Streak
		}
	}
	for _, j := range jutsu {
		if j.Unlocked {
			m.unlockedJutsu++
		}
	}
	return m
}

func (r Requirement) metric(m progressMetrics) int {
	switch r.Kind {
	case RequireMissions:
		return m.completedMissions
	case RequireStreak:
		return m.maxStreak
	case RequireStat:
		return m.stats.Get(r.Stat)
	case RequireJutsu:
		return m.unlockedJutsu
	case RequireRank:
		return m.stats.Experience
	default:
		return 0
	}
}

// Evaluate checks every locked achievement against the given state and
// unlocks the ones whose requirement is now met. Already-unlocked
// achievements are never re-locked, even when the metric has dropped.
// Returns the achievements unlocked by this call.
func (t *Tracker) Evaluate(stats UserStats, missions []Mission, jutsu []Jutsu) []Achievement {
	m := collectMetrics(stats, missions, jutsu)

	var newly []Achievement
	for i := range t.achievements {
		a := &t.achievements[i]
		if a.Unlocked {
			continue
		}
		if a.Requirement.metric(m) < a.Requirement.Value {
			continue
		}
		a.Unlocked = true
		ts := t.now()
		a.UnlockedAt = &ts
		newly = append(newly, *a)
		if t.onUnlock != nil {
			t.onUnlock(*a)
		}
	}
	return newly
}

// Progress returns 0-100 percent toward the achievement's threshold.
// Unlocked achievements report 100 regardless of the current metric.
func (t *Tracker) Progress(id string, stats UserStats, missions []Mission, jutsu []Jutsu) int {
	for _, a := range t.achievements {
		if a.ID != id {
			continue
		}
		if a.Unlocked {
			return 100
		}
		if a.Requirement.Value <= 0 {
			return 100
		}
		m := collectMetrics(stats, missions, jutsu)
		p := 100 * a.Requirement.metric(m) / a.Requirement.Value
		if p > 100 {
			p = 100
		}
		if p < 0 {
			p = 0
		}
		return p
	}
	return 0
}

// UnlockedCount returns how many achievements have been earned.
func (t *Tracker) UnlockedCount() int {
	n := 0
	for _, a := range t.achievements {
		if a.Unlocked {
			n++
		}
	}
	return n
}
