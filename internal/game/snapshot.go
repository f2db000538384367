package game

import "time"

// MissionProgress is the persisted mutable part of a mission. Static catalog
// fields stay out of the snapshot so catalog fixes apply on next load.
type MissionProgress struct {
	ID            string     `json:"id"`
	Completed     bool       `json:"completed"`
	Streak        int        `json:"streak"`
	LastCompleted *time.Time `json:"lastCompleted,omitempty"`
}

type JutsuProgress struct {
	ID       string     `json:"id"`
	LastUsed *time.Time `json:"lastUsed,omitempty"`
}

// Snapshot is the serializable engine state.
type Snapshot struct {
	Stats    UserStats         `json:"stats"`
	Missions []MissionProgress `json:"missions"`
	Jutsu    []JutsuProgress   `json:"jutsu"`
}

// Snapshot captures the engine's current state for persistence.
func (e *Engine) Snapshot() Snapshot {
	snap := Snapshot{Stats: e.stats}
	for _, m := range e.missions {
		snap.Missions = append(snap.Missions, MissionProgress{
			ID:            m.ID,
			Completed:     m.Completed,
			Streak:        m.Streak,
			LastCompleted: m.LastCompleted,
		})
	}
	for _, j := range e.jutsu {
		snap.Jutsu = append(snap.Jutsu, JutsuProgress{ID: j.ID, LastUsed: j.LastUsed})
	}
	return snap
}

// RestoreSnapshot applies persisted progress on top of the seeded catalogs.
// Progress rows for ids no longer in the catalog are dropped; unlock flags
// are re-derived from the restored stats rather than trusted from disk.
func (e *Engine) RestoreSnapshot(snap Snapshot) {
	stats := snap.Stats
	clampStats(&stats)
	e.stats = stats

	byMission := make(map[string]MissionProgress, len(snap.Missions))
	for _, p := range snap.Missions {
		byMission[p.ID] = p
	}
	for i := range e.missions {
		if p, ok := byMission[e.missions[i].ID]; ok {
			e.missions[i].Completed = p.Completed
			e.missions[i].Streak = p.Streak
			e.missions[i].LastCompleted = p.LastCompleted
		}
	}

	byJutsu := make(map[string]JutsuProgress, len(snap.Jutsu))
	for _, p := range snap.Jutsu {
		byJutsu[p.ID] = p
	}
	for i := range e.jutsu {
		if p, ok := byJutsu[e.jutsu[i].ID]; ok {
			e.jutsu[i].LastUsed = p.LastUsed
		}
	}

	e.refreshJutsu()
}

func clampStats(u *UserStats) {
	for _, s := range Stats {
		if v := u.Get(s); v < 0 {
			u.add(s, -v)
		}
	}
	if u.Experience < 0 {
		u.Experience = 0
	}
	if u.Level < 0 {
		u.Level = 0
	}
}

// AchievementProgress is the persisted unlock state of one achievement.
type AchievementProgress struct {
	ID         string     `json:"id"`
	Unlocked   bool       `json:"unlocked"`
	UnlockedAt *time.Time `json:"unlockedAt,omitempty"`
}

// Snapshot captures unlock state so monotonicity holds across sessions.
func (t *Tracker) Snapshot() []AchievementProgress {
	out := make([]AchievementProgress, 0, len(t.achievements))
	for _, a := range t.achievements {
		out = append(out, AchievementProgress{ID: a.ID, Unlocked: a.Unlocked, UnlockedAt: a.UnlockedAt})
	}
	return out
}

// RestoreSnapshot re-applies persisted unlocks. Unlocks only ever flow from
// disk to memory here; a record claiming "locked" cannot re-lock anything.
func (t *Tracker) RestoreSnapshot(progress []AchievementProgress) {
	byID := make(map[string]AchievementProgress, len(progress))
	for _, p := range progress {
		byID[p.ID] = p
	}
	for i := range t.achievements {
		a := &t.achievements[i]
		if p, ok := byID[a.ID]; ok && p.Unlocked {
			a.Unlocked = true
			a.UnlockedAt = p.UnlockedAt
		}
	}
}
