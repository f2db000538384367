package store

import (
	"context"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"shinobi/internal/game"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := Open(ctx, path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	return New(db, zap.NewNop())
}

func TestRecordRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	type payload struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	var got payload
	found, err := s.GetRecord(ctx, "missing", &got)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if found {
		t.Fatalf("expected missing record")
	}

	want := payload{Name: "kakashi", Count: 3}
	if err := s.PutRecord(ctx, "test", want); err != nil {
		t.Fatalf("put: %v", err)
	}
	found, err = s.GetRecord(ctx, "test", &got)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !found || got != want {
		t.Fatalf("got %+v found=%v, want %+v", got, found, want)
	}

	// Upsert overwrites.
	want.Count = 9
	if err := s.PutRecord(ctx, "test", want); err != nil {
		t.Fatalf("put again: %v", err)
	}
	if _, err := s.GetRecord(ctx, "test", &got); err != nil {
		t.Fatalf("get again: %v", err)
	}
	if got.Count != 9 {
		t.Fatalf("count=%d, want 9", got.Count)
	}

	if err := s.DeleteRecord(ctx, "test"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if found, _ := s.GetRecord(ctx, "test", &got); found {
		t.Fatalf("record survived delete")
	}
}

func TestMalformedRecordFallsBack(t *testing.T) {
	cases := []struct {
		name  string
		value string
	}{
		{"invalid syntax", `{not json`},
		// Valid up to the wrong-typed field: nothing decoded before the
		// error may leak into the returned state.
		{"wrong field type", `{"name":"Corrupted","age":"not-a-number"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestStore(t)
			ctx := context.Background()

			if _, err := s.db.ExecContext(ctx,
				`INSERT INTO records (key, value) VALUES (?, ?)`, KeyOnboarding, tc.value); err != nil {
				t.Fatalf("insert garbage: %v", err)
			}

			ob, err := s.LoadOnboarding(ctx)
			if err != nil {
				t.Fatalf("LoadOnboarding: %v", err)
			}
			if ob != game.DefaultOnboarding() {
				t.Fatalf("expected defaults on malformed record, got %+v", ob)
			}
		})
	}
}

func TestOnboardingAndTutorialPersistence(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	ob := game.DefaultOnboarding()
	if err := ob.SetName("Itachi"); err != nil {
		t.Fatalf("SetName: %v", err)
	}
	if err := ob.Complete(); err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if err := s.SaveOnboarding(ctx, ob); err != nil {
		t.Fatalf("SaveOnboarding: %v", err)
	}
	got, err := s.LoadOnboarding(ctx)
	if err != nil {
		t.Fatalf("LoadOnboarding: %v", err)
	}
	if got.Name != "Itachi" || !got.IsCompleted || got.NinjaID != ob.NinjaID {
		t.Fatalf("onboarding round trip mismatch: %+v", got)
	}

	ts := game.DefaultTutorialState()
	ts.Start("dashboard")
	ts.Complete("dashboard")
	if err := s.SaveTutorial(ctx, ts); err != nil {
		t.Fatalf("SaveTutorial: %v", err)
	}
	ts2, err := s.LoadTutorial(ctx)
	if err != nil {
		t.Fatalf("LoadTutorial: %v", err)
	}
	if !ts2.IsCompleted("dashboard") {
		t.Fatalf("tutorial completion lost across persistence")
	}
}

func TestEngineProgressPersistence(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	eng, err := s.LoadEngine(ctx, nil)
	if err != nil {
		t.Fatalf("LoadEngine: %v", err)
	}
	tracker, err := s.LoadTracker(ctx, nil)
	if err != nil {
		t.Fatalf("LoadTracker: %v", err)
	}

	eng.ToggleMission("1")
	tracker.Evaluate(eng.Stats(), eng.Missions(), eng.Jutsu())
	if err := s.SaveProgress(ctx, eng.Snapshot(), tracker.Snapshot()); err != nil {
		t.Fatalf("SaveProgress: %v", err)
	}

	eng2, err := s.LoadEngine(ctx, nil)
	if err != nil {
		t.Fatalf("LoadEngine again: %v", err)
	}
	if eng2.Stats() != eng.Stats() {
		t.Fatalf("stats differ after reload: %+v vs %+v", eng2.Stats(), eng.Stats())
	}
	if eng2.TotalActiveStreaks() != 1 {
		t.Fatalf("streaks=%d after reload, want 1", eng2.TotalActiveStreaks())
	}

	tracker2, err := s.LoadTracker(ctx, nil)
	if err != nil {
		t.Fatalf("LoadTracker again: %v", err)
	}
	for _, a := range tracker.Achievements() {
		if !a.Unlocked {
			continue
		}
		match := false
		for _, b := range tracker2.Achievements() {
			if b.ID == a.ID && b.Unlocked {
				match = true
			}
		}
		if !match {
			t.Fatalf("achievement %s lost across reload", a.ID)
		}
	}
}
