package game

import "sort"

// VillageStats is a leaderboard row. The numbers are static seed data; there
// is no server to compute live standings from.
type VillageStats struct {
	ID                string
	Name              string
	Symbol            string
	TotalMembers      int
	TotalExperience   int
	AverageLevel      int
	CompletedMissions int
	Color             string
}

var villageLeaderboard = []VillageStats{
	{ID: "leaf", Name: "Hidden Leaf Village", Symbol: "🍃", TotalMembers: 1247, TotalExperience: 2847392, AverageLevel: 23, CompletedMissions: 18493, Color: "#2ECC71"},
	{ID: "sand", Name: "Hidden Sand Village", Symbol: "🏜️", TotalMembers: 892, TotalExperience: 1923847, AverageLevel: 21, CompletedMissions: 12847, Color: "#F39C12"},
	{ID: "mist", Name: "Hidden Mist Village", Symbol: "🌊", TotalMembers: 743, TotalExperience: 1647293, AverageLevel: 22, CompletedMissions: 9847, Color: "#3498DB"},
	{ID: "cloud", Name: "Hidden Cloud Village", Symbol: "⚡", TotalMembers: 634, TotalExperience: 1384729, AverageLevel: 20, CompletedMissions: 8293, Color: "#9B59B6"},
	{ID: "stone", Name: "Hidden Stone Village", Symbol: "🗻", TotalMembers: 567, TotalExperience: 1192847, AverageLevel: 19, CompletedMissions: 7384, Color: "#95A5A6"},
}

type LeaderboardMetric string

const (
	MetricExperience LeaderboardMetric = "experience"
	MetricMissions   LeaderboardMetric = "missions"
	MetricMembers    LeaderboardMetric = "members"
)

func (m LeaderboardMetric) IsValid() bool {
	switch m {
	case MetricExperience, MetricMissions, MetricMembers:
		return true
	default:
		return false
	}
}

func metricValue(v VillageStats, m LeaderboardMetric) int {
	switch m {
	case MetricMissions:
		return v.CompletedMissions
	case MetricMembers:
		return v.TotalMembers
	default:
		return v.TotalExperience
	}
}

// VillageLeaderboard returns the villages sorted descending by the metric.
func VillageLeaderboard(metric LeaderboardMetric) []VillageStats {
	out := make([]VillageStats, len(villageLeaderboard))
	copy(out, villageLeaderboard)
	sort.SliceStable(out, func(i, j int) bool {
		return metricValue(out[i], metric) > metricValue(out[j], metric)
	})
	return out
}

// VillageRank returns the 1-based position of the village under the metric,
// or 0 when the village is unknown.
func VillageRank(villageID string, metric LeaderboardMetric) int {
	for i, v := range VillageLeaderboard(metric) {
		if v.ID == villageID {
			return i + 1
		}
	}
	return 0
}
