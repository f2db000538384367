package game

import (
	"testing"
	"time"
)

func TestToggleMissionAppliesRewards(t *testing.T) {
	e := NewEngine()

	res := e.ToggleMission("1")
	if !res.Found {
		t.Fatalf("mission 1 not found")
	}
	if !res.Completed {
		t.Fatalf("expected mission to be completed")
	}

	stats := e.Stats()
	if stats.Chakra != 60 {
		t.Fatalf("chakra=%d, want 60", stats.Chakra)
	}
	if stats.Stamina != 40 {
		t.Fatalf("stamina=%d, want 40", stats.Stamina)
	}
	if stats.Experience != 165 {
		t.Fatalf("experience=%d, want 165", stats.Experience)
	}
	if res.Mission.Streak != 1 {
		t.Fatalf("streak=%d, want 1", res.Mission.Streak)
	}
	if res.Mission.LastCompleted == nil {
		t.Fatalf("expected LastCompleted to be set")
	}
}

func TestDoubleToggleRevertsStatsButNotStreak(t *testing.T) {
	e := NewEngine()
	before := e.Stats()

	e.ToggleMission("1")
	res := e.ToggleMission("1")
	if res.Completed {
		t.Fatalf("expected mission to be incomplete after second toggle")
	}

	after := e.Stats()
	if after.Chakra != before.Chakra {
		t.Fatalf("chakra=%d, want %d", after.Chakra, before.Chakra)
	}
	if after.Stamina != before.Stamina {
		t.Fatalf("stamina=%d, want %d", after.Stamina, before.Stamina)
	}
	if after.Experience != before.Experience {
		t.Fatalf("experience=%d, want %d", after.Experience, before.Experience)
	}

	// The asymmetry: streak and LastCompleted survive the undo.
	if res.Mission.Streak != 1 {
		t.Fatalf("streak=%d, want 1 (not reverted)", res.Mission.Streak)
	}
	if res.Mission.LastCompleted == nil {
		t.Fatalf("expected LastCompleted to survive the undo")
	}
}

func TestToggleUnknownMissionIsNoop(t *testing.T) {
	e := NewEngine()
	before := e.Stats()

	res := e.ToggleMission("nope")
	if res.Found {
		t.Fatalf("expected Found=false for unknown id")
	}
	if e.Stats() != before {
		t.Fatalf("stats changed on unknown mission toggle")
	}
}

func TestStatsNeverNegative(t *testing.T) {
	e := NewEngine()

	// Force a state where undoing would go below zero.
	e.RestoreSnapshot(Snapshot{
		Stats: UserStats{Chakra: 2, Experience: 5},
		Missions: []MissionProgress{
			{ID: "1", Completed: true, Streak: 3},
		},
	})

	e.ToggleMission("1") // undo: chakra -10, stamina -5, xp -15

	stats := e.Stats()
	for _, s := range Stats {
		if stats.Get(s) < 0 {
			t.Fatalf("stat %s=%d, want >= 0", s, stats.Get(s))
		}
	}
	if stats.Experience != 0 {
		t.Fatalf("experience=%d, want 0 (clamped)", stats.Experience)
	}
}

func TestJutsuUnlockDerivation(t *testing.T) {
	e := NewEngine()

	// Raise chakra to 200 via completions: missions 1, 3, 5, 6 give
	// 10+3+8+10 = 31 chakra on top of 50 is not enough, so push via snapshot
	// the way a long-running save would.
	e.RestoreSnapshot(Snapshot{Stats: UserStats{Chakra: 195, Experience: 150}})
	if rasengan := findJutsu(t, e, "5"); rasengan.Unlocked {
		t.Fatalf("Rasengan unlocked at chakra 195")
	}

	res := e.ToggleMission("1") // chakra 195 -> 205
	if len(res.UnlockedJutsu) == 0 {
		t.Fatalf("expected a jutsu unlock at chakra 205")
	}
	if rasengan := findJutsu(t, e, "5"); !rasengan.Unlocked {
		t.Fatalf("Rasengan still locked at chakra 205")
	}

	// Invariant: every flag matches the fresh derivation.
	stats := e.Stats()
	for _, j := range e.Jutsu() {
		want := stats.Get(j.RequiredStat) >= j.RequiredValue
		if j.Unlocked != want {
			t.Fatalf("jutsu %s unlocked=%v, want %v", j.Name, j.Unlocked, want)
		}
	}

	// Undoing drops chakra back below 200 and revokes the unlock.
	res = e.ToggleMission("1")
	if len(res.RelockedJutsu) == 0 {
		t.Fatalf("expected Rasengan to re-lock when chakra dropped")
	}
	if rasengan := findJutsu(t, e, "5"); rasengan.Unlocked {
		t.Fatalf("Rasengan unlocked at chakra 195 after undo")
	}
}

func findJutsu(t *testing.T, e *Engine, id string) Jutsu {
	t.Helper()
	for _, j := range e.Jutsu() {
		if j.ID == id {
			return j
		}
	}
	t.Fatalf("jutsu %s not in catalog", id)
	return Jutsu{}
}

func TestCompletedTodayUsesCalendarDate(t *testing.T) {
	e := NewEngine()
	now := time.Date(2026, 3, 10, 9, 30, 0, 0, time.Local)
	e.now = func() time.Time { return now }

	e.ToggleMission("1")
	if got := e.CompletedToday(); got != 1 {
		t.Fatalf("CompletedToday=%d, want 1", got)
	}

	// A mission completed yesterday, still marked complete, is excluded
	// from today's count but its streak still counts.
	yesterday := now.AddDate(0, 0, -1)
	e.RestoreSnapshot(Snapshot{
		Stats: e.Stats(),
		Missions: []MissionProgress{
			{ID: "1", Completed: true, Streak: 1, LastCompleted: &yesterday},
			{ID: "2", Completed: true, Streak: 4, LastCompleted: &now},
		},
	})

	if got := e.CompletedToday(); got != 1 {
		t.Fatalf("CompletedToday=%d, want 1 (yesterday excluded)", got)
	}
	if got := e.TotalActiveStreaks(); got != 5 {
		t.Fatalf("TotalActiveStreaks=%d, want 5", got)
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	e := NewEngine()
	e.ToggleMission("1")
	e.ToggleMission("2")
	if _, err := e.ActivateJutsu("1"); err != nil {
		// Shadow Clone needs chakra 100; default 50 + mission rewards may
		// not reach it, so a locked error here is fine for the round trip.
		if _, ok := err.(LockedError); !ok {
			t.Fatalf("ActivateJutsu: %v", err)
		}
	}
	snap := e.Snapshot()

	restored := NewEngine()
	restored.RestoreSnapshot(snap)

	if restored.Stats() != e.Stats() {
		t.Fatalf("stats differ after restore: %+v vs %+v", restored.Stats(), e.Stats())
	}
	want := e.Missions()
	got := restored.Missions()
	for i := range want {
		if got[i].Completed != want[i].Completed || got[i].Streak != want[i].Streak {
			t.Fatalf("mission %s progress differs after restore", want[i].ID)
		}
	}
	for i, j := range restored.Jutsu() {
		if j.Unlocked != e.Jutsu()[i].Unlocked {
			t.Fatalf("jutsu %s unlock flag differs after restore", j.Name)
		}
	}
}

func TestMissionCopiesDoNotAliasRewards(t *testing.T) {
	e := NewEngine()

	// Writing through a returned copy must not reach engine state.
	missions := e.Missions()
	missions[0].StatRewards[0].Amount = 999

	res := e.ToggleMission("1")
	if got := e.Stats().Chakra; got != 60 {
		t.Fatalf("chakra=%d after toggle, want 60 (reward mutated through copy)", got)
	}

	// The result carries its own copy too.
	res.Mission.StatRewards[0].Amount = 999
	if got := e.Missions()[0].StatRewards[0].Amount; got != 10 {
		t.Fatalf("engine reward=%d, want 10", got)
	}

	// A custom catalog is copied on the way in as well.
	catalog := []Mission{{
		ID:               "train",
		Title:            "Shuriken drills",
		Category:         CategoryPhysical,
		Difficulty:       DifficultyEasy,
		StatRewards:      []Reward{{Stat: StatAgility, Amount: 5}},
		ExperienceReward: 10,
	}}
	e2, err := NewEngineWithMissions(catalog)
	if err != nil {
		t.Fatalf("NewEngineWithMissions: %v", err)
	}
	catalog[0].StatRewards[0].Amount = 999
	if got := e2.Missions()[0].StatRewards[0].Amount; got != 5 {
		t.Fatalf("catalog reward=%d, want 5", got)
	}
}

func TestNewEngineWithMissionsValidates(t *testing.T) {
	_, err := NewEngineWithMissions([]Mission{{ID: "x"}})
	if err == nil {
		t.Fatalf("expected validation error for incomplete mission")
	}

	e, err := NewEngineWithMissions([]Mission{{
		ID:               "train",
		Title:            "Shuriken drills",
		Category:         CategoryPhysical,
		Difficulty:       DifficultyEasy,
		StatRewards:      []Reward{{Stat: StatAgility, Amount: 5}},
		ExperienceReward: 10,
	}})
	if err != nil {
		t.Fatalf("NewEngineWithMissions: %v", err)
	}
	if len(e.Missions()) != 1 {
		t.Fatalf("missions=%d, want 1", len(e.Missions()))
	}
}
