package store

import (
	"context"
	"database/sql"

	"shinobi/internal/game"
)

// LoadOnboarding returns the persisted enrollment record, or defaults when
// missing or malformed.
func (s *Store) LoadOnboarding(ctx context.Context) (game.Onboarding, error) {
	ob := game.DefaultOnboarding()
	if _, err := s.GetRecord(ctx, KeyOnboarding, &ob); err != nil {
		return game.DefaultOnboarding(), err
	}
	return ob, nil
}

func (s *Store) SaveOnboarding(ctx context.Context, ob game.Onboarding) error {
	return s.PutRecord(ctx, KeyOnboarding, ob)
}

// LoadTutorial returns the persisted walkthrough state, or defaults.
func (s *Store) LoadTutorial(ctx context.Context) (game.TutorialState, error) {
	ts := game.DefaultTutorialState()
	if _, err := s.GetRecord(ctx, KeyTutorial, &ts); err != nil {
		return game.DefaultTutorialState(), err
	}
	if ts.CompletedTutorials == nil {
		ts.CompletedTutorials = []string{}
	}
	return ts, nil
}

func (s *Store) SaveTutorial(ctx context.Context, ts game.TutorialState) error {
	return s.PutRecord(ctx, KeyTutorial, ts)
}

// LoadEngine seeds an engine from the given catalog (nil for built-in) and
// applies the persisted snapshot on top, when one exists.
func (s *Store) LoadEngine(ctx context.Context, missions []game.Mission) (*game.Engine, error) {
	var (
		eng *game.Engine
		err error
	)
	if missions == nil {
		eng = game.NewEngine()
	} else {
		eng, err = game.NewEngineWithMissions(missions)
		if err != nil {
			return nil, err
		}
	}

	var snap game.Snapshot
	found, err := s.GetRecord(ctx, KeyGameState, &snap)
	if err != nil {
		return nil, err
	}
	if found {
		eng.RestoreSnapshot(snap)
	}
	return eng, nil
}

// LoadTracker builds an achievement tracker with persisted unlocks applied.
func (s *Store) LoadTracker(ctx context.Context, onUnlock func(game.Achievement)) (*game.Tracker, error) {
	tracker := game.NewTracker(onUnlock)
	var progress []game.AchievementProgress
	found, err := s.GetRecord(ctx, KeyAchievements, &progress)
	if err != nil {
		return nil, err
	}
	if found {
		tracker.RestoreSnapshot(progress)
	}
	return tracker, nil
}

// SaveProgress writes the engine snapshot and achievement unlocks in one
// transaction so a reader never sees stats from one toggle and achievements
// from another.
func (s *Store) SaveProgress(ctx context.Context, snap game.Snapshot, achievements []game.AchievementProgress) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		if err := putRecord(ctx, tx, KeyGameState, snap); err != nil {
			return err
		}
		return putRecord(ctx, tx, KeyAchievements, achievements)
	})
}
