package game

import "time"

// Engine owns the user's stats, the mission list, and the derived jutsu
// unlock flags. It is constructed explicitly and passed to callers; there is
// no package-level instance. All mutation goes through its methods, and each
// mutation leaves the state fully consistent before returning.
type Engine struct {
	stats    UserStats
	missions []Mission
	jutsu    []Jutsu

	now func() time.Time
}

// NewEngine seeds an engine from the built-in catalogs.
func NewEngine() *Engine {
	e := &Engine{
		stats:    DefaultStats(),
		missions: DefaultMissions(),
		jutsu:    DefaultJutsu(),
		now:      time.Now,
	}
	e.refreshJutsu()
	return e
}

// NewEngineWithMissions seeds an engine with a custom mission catalog.
// The catalog must pass ValidateMissions.
func NewEngineWithMissions(missions []Mission) (*Engine, error) {
	if err := ValidateMissions(missions); err != nil {
		return nil, err
	}
	e := NewEngine()
	e.missions = make([]Mission, len(missions))
	for i, m := range missions {
		e.missions[i] = cloneMission(m)
	}
	return e, nil
}

// cloneMission copies a mission including its rewards slice, so neither side
// of the engine boundary can alias the other's backing array.
func cloneMission(m Mission) Mission {
	out := m
	out.StatRewards = append([]Reward(nil), m.StatRewards...)
	return out
}

// Stats returns a copy of the current user stats.
func (e *Engine) Stats() UserStats { return e.stats }

// Missions returns a copy of the mission list in catalog order.
func (e *Engine) Missions() []Mission {
	out := make([]Mission, len(e.missions))
	for i, m := range e.missions {
		out[i] = cloneMission(m)
	}
	return out
}

// Jutsu returns a copy of the jutsu list with current unlock flags.
func (e *Engine) Jutsu() []Jutsu {
	out := make([]Jutsu, len(e.jutsu))
	copy(out, e.jutsu)
	return out
}

// ToggleResult reports what a toggle did. Found is false when the mission id
// did not match anything, in which case nothing changed.
type ToggleResult struct {
	Found     bool
	Mission   Mission
	Completed bool // state after the toggle
	RankUp    bool
	RankDown  bool
	Rank      NinjaRank
	// Jutsu whose unlock flag flipped as a consequence of this toggle.
	UnlockedJutsu []Jutsu
	RelockedJutsu []Jutsu
}

// ToggleMission flips the completion flag of the given mission and applies
// (or reverts) its rewards in the same call.
//
// Completing adds every stat reward, adds the experience reward, bumps the
// streak, and stamps LastCompleted. Un-completing subtracts the same amounts
// with a zero floor but leaves Streak and LastCompleted alone: the streak
// records how many times the mission has ever been completed.
//
// An unknown id is a silent no-op.
func (e *Engine) ToggleMission(id string) ToggleResult {
	idx := -1
	for i := range e.missions {
		if e.missions[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ToggleResult{}
	}

	rankBefore := CurrentRank(e.stats.Experience)
	m := &e.missions[idx]

	if !m.Completed {
		for _, r := range m.StatRewards {
			e.stats.add(r.Stat, r.Amount)
		}
		e.stats.Experience += m.ExperienceReward
		m.Completed = true
		m.Streak++
		t := e.now()
		m.LastCompleted = &t
	} else {
		for _, r := range m.StatRewards {
			e.stats.sub(r.Stat, r.Amount)
		}
		e.stats.Experience -= m.ExperienceReward
		if e.stats.Experience < 0 {
			e.stats.Experience = 0
		}
		m.Completed = false
	}

	// Unlock flags are a pure function of stats; re-derive before anyone
	// can observe the new stats.
	unlocked, relocked := e.refreshJutsu()

	rankAfter := CurrentRank(e.stats.Experience)
	return ToggleResult{
		Found:         true,
		Mission:       cloneMission(*m),
		Completed:     m.Completed,
		RankUp:        rankAfter.MinExperience > rankBefore.MinExperience,
		RankDown:      rankAfter.MinExperience < rankBefore.MinExperience,
		Rank:          rankAfter,
		UnlockedJutsu: unlocked,
		RelockedJutsu: relocked,
	}
}

// refreshJutsu re-derives every unlock flag from current stats and reports
// which jutsu flipped. A jutsu whose required stat drops back below the
// threshold is re-locked; unlocks are not sticky.
func (e *Engine) refreshJutsu() (unlocked, relocked []Jutsu) {
	for i := range e.jutsu {
		j := &e.jutsu[i]
		want := e.stats.Get(j.RequiredStat) >= j.RequiredValue
		if want == j.Unlocked {
			continue
		}
		j.Unlocked = want
		if want {
			unlocked = append(unlocked, *j)
		} else {
			relocked = append(relocked, *j)
		}
	}
	return unlocked, relocked
}

// CompletedToday counts missions that are completed and whose LastCompleted
// falls on today's calendar date in local time. A mission completed
// yesterday and never un-completed does not count.
func (e *Engine) CompletedToday() int {
	ty, tm, td := e.now().Date()
	n := 0
	for _, m := range e.missions {
		if !m.Completed || m.LastCompleted == nil {
			continue
		}
		y, mo, d := m.LastCompleted.Local().Date()
		if y == ty && mo == tm && d == td {
			n++
		}
	}
	return n
}

// TotalActiveStreaks sums the streak counters of every mission, completed or
// not. Streaks survive un-completion, so this counts lifetime completions.
func (e *Engine) TotalActiveStreaks() int {
	total := 0
	for _, m := range e.missions {
		total += m.Streak
	}
	return total
}
