package game

// NinjaRanks is the static rank ladder. Thresholds are strictly increasing
// and start at 0, so every non-negative experience value maps to a rank.
var NinjaRanks = []NinjaRank{
	{Name: "Academy Student", MinExperience: 0, Color: "#95A5A6", Badge: "🎓"},
	{Name: "Genin", MinExperience: 100, Color: "#3498DB", Badge: "🥋"},
	{Name: "Chunin", MinExperience: 500, Color: "#9B59B6", Badge: "⚔️"},
	{Name: "Special Jonin", MinExperience: 1200, Color: "#E67E22", Badge: "🗡️"},
	{Name: "Jonin", MinExperience: 2500, Color: "#E74C3C", Badge: "🛡️"},
	{Name: "ANBU", MinExperience: 5000, Color: "#2C3E50", Badge: "🎭"},
	{Name: "Kage", MinExperience: 10000, Color: "#F1C40F", Badge: "👑"},
}

// CurrentRank returns the highest rank whose threshold the experience meets.
func CurrentRank(experience int) NinjaRank {
	rank := NinjaRanks[0]
	for _, r := range NinjaRanks {
		if experience >= r.MinExperience {
			rank = r
		}
	}
	return rank
}

// NextRank returns the tier above the current one, or nil at the top.
func NextRank(experience int) *NinjaRank {
	cur := CurrentRank(experience)
	for i := range NinjaRanks {
		if NinjaRanks[i].Name == cur.Name && i+1 < len(NinjaRanks) {
			next := NinjaRanks[i+1]
			return &next
		}
	}
	return nil
}

// RankProgress returns 0-100 percent progress from the current rank threshold
// toward the next one. At the top rank it reports 100.
func RankProgress(experience int) int {
	cur := CurrentRank(experience)
	next := NextRank(experience)
	if next == nil {
		return 100
	}
	span := next.MinExperience - cur.MinExperience
	if span <= 0 {
		return 100
	}
	p := 100 * (experience - cur.MinExperience) / span
	if p < 0 {
		p = 0
	}
	if p > 100 {
		p = 100
	}
	return p
}
