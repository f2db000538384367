package game

import "testing"

func TestCurrentAndNextRank(t *testing.T) {
	if got := CurrentRank(150).Name; got != "Genin" {
		t.Fatalf("CurrentRank(150)=%q, want Genin", got)
	}
	next := NextRank(150)
	if next == nil || next.Name != "Chunin" {
		t.Fatalf("NextRank(150)=%v, want Chunin", next)
	}

	if got := CurrentRank(0).Name; got != "Academy Student" {
		t.Fatalf("CurrentRank(0)=%q, want Academy Student", got)
	}
	if got := CurrentRank(99).Name; got != "Academy Student" {
		t.Fatalf("CurrentRank(99)=%q, want Academy Student", got)
	}
	if got := CurrentRank(100).Name; got != "Genin" {
		t.Fatalf("CurrentRank(100)=%q, want Genin", got)
	}
	if got := CurrentRank(10000).Name; got != "Kage" {
		t.Fatalf("CurrentRank(10000)=%q, want Kage", got)
	}
	if NextRank(10000) != nil {
		t.Fatalf("NextRank at top rank should be nil")
	}
}

func TestRankMonotonicity(t *testing.T) {
	prev := -1
	for xp := 0; xp <= 12000; xp += 7 {
		cur := CurrentRank(xp).MinExperience
		if cur < prev {
			t.Fatalf("rank threshold decreased at xp=%d: %d < %d", xp, cur, prev)
		}
		prev = cur
	}
}

func TestRankThresholdsStrictlyIncreasing(t *testing.T) {
	for i := 1; i < len(NinjaRanks); i++ {
		if NinjaRanks[i].MinExperience <= NinjaRanks[i-1].MinExperience {
			t.Fatalf("thresholds not strictly increasing at %q", NinjaRanks[i].Name)
		}
	}
	if NinjaRanks[0].MinExperience != 0 {
		t.Fatalf("lowest tier must start at 0")
	}
}

func TestRankProgress(t *testing.T) {
	if got := RankProgress(0); got != 0 {
		t.Fatalf("RankProgress(0)=%d, want 0", got)
	}
	// Genin at 100, Chunin at 500: xp 300 is halfway.
	if got := RankProgress(300); got != 50 {
		t.Fatalf("RankProgress(300)=%d, want 50", got)
	}
	if got := RankProgress(20000); got != 100 {
		t.Fatalf("RankProgress(top)=%d, want 100", got)
	}
}
