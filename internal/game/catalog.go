package game

import "fmt"

// DefaultStats is the academy enrollment baseline.
func DefaultStats() UserStats {
	return UserStats{
		Chakra:       50,
		Strength:     30,
		Intelligence: 40,
		Agility:      25,
		Stamina:      35,
		Charisma:     20,
		Experience:   150,
		Level:        1,
	}
}

// DefaultMissions returns the built-in mission catalog. Missions are seeded
// incomplete with no streak; catalog order is display order.
func DefaultMissions() []Mission {
	return []Mission{
		{
			ID:         "1",
			Title:      "Morning Meditation Training",
			Category:   CategoryChakraControl,
			Difficulty: DifficultyEasy,
			StatRewards: []Reward{
				{Stat: StatChakra, Amount: 10},
				{Stat: StatStamina, Amount: 5},
			},
			ExperienceReward: 15,
		},
		{
			ID:         "2",
			Title:      "Physical Conditioning",
			Category:   CategoryPhysical,
			Difficulty: DifficultyMedium,
			StatRewards: []Reward{
				{Stat: StatStrength, Amount: 15},
				{Stat: StatStamina, Amount: 10},
			},
			ExperienceReward: 25,
		},
		{
			ID:         "3",
			Title:      "Knowledge Scroll Study",
			Category:   CategoryMental,
			Difficulty: DifficultyEasy,
			StatRewards: []Reward{
				{Stat: StatIntelligence, Amount: 12},
				{Stat: StatChakra, Amount: 3},
			},
			ExperienceReward: 18,
		},
		{
			ID:         "4",
			Title:      "Team Building Exercise",
			Category:   CategorySocial,
			Difficulty: DifficultyMedium,
			StatRewards: []Reward{
				{Stat: StatCharisma, Amount: 15},
				{Stat: StatIntelligence, Amount: 5},
			},
			ExperienceReward: 22,
		},
		{
			ID:         "5",
			Title:      "Stealth Movement Practice",
			Category:   CategoryStealth,
			Difficulty: DifficultyHard,
			StatRewards: []Reward{
				{Stat: StatAgility, Amount: 20},
				{Stat: StatChakra, Amount: 8},
			},
			ExperienceReward: 35,
		},
		{
			ID:         "6",
			Title:      "Medical Ninjutsu Training",
			Category:   CategoryMedical,
			Difficulty: DifficultyMedium,
			StatRewards: []Reward{
				{Stat: StatIntelligence, Amount: 10},
				{Stat: StatChakra, Amount: 10},
				{Stat: StatStamina, Amount: 5},
			},
			ExperienceReward: 28,
		},
	}
}

// DefaultJutsu returns the built-in jutsu catalog, all locked.
func DefaultJutsu() []Jutsu {
	return []Jutsu{
		{
			ID:            "1",
			Name:          "Shadow Clone Technique",
			Description:   "Create shadow clones to help with multiple tasks",
			RequiredStat:  StatChakra,
			RequiredValue: 100,
			Effect:        "Complete 2 missions simultaneously for the next hour",
			CooldownHours: 24,
		},
		{
			ID:            "2",
			Name:          "Leaf Hurricane",
			Description:   "Protect your mission streaks with powerful winds",
			RequiredStat:  StatStrength,
			RequiredValue: 80,
			Effect:        "Streak protection - prevents streak loss for 24 hours",
			CooldownHours: 48,
		},
		{
			ID:            "3",
			Name:          "Mind Transfer Jutsu",
			Description:   "Transfer your consciousness to skip difficult tasks",
			RequiredStat:  StatIntelligence,
			RequiredValue: 120,
			Effect:        "Skip one mission without breaking your streak",
			CooldownHours: 168,
		},
		{
			ID:            "4",
			Name:          "Body Flicker Technique",
			Description:   "Move at incredible speed to complete tasks faster",
			RequiredStat:  StatAgility,
			RequiredValue: 90,
			Effect:        "Reduce all mission cooldowns by 50% for 2 hours",
			CooldownHours: 72,
		},
		{
			ID:            "5",
			Name:          "Rasengan",
			Description:   "Channel your chakra into a powerful spinning sphere",
			RequiredStat:  StatChakra,
			RequiredValue: 200,
			Effect:        "Double XP and stat gains for the next 3 missions",
			CooldownHours: 48,
		},
	}
}

// ValidateMissions checks a mission catalog before the engine accepts it.
// Used for custom catalogs loaded from config; the built-in catalog passes
// by construction.
func ValidateMissions(missions []Mission) error {
	if len(missions) == 0 {
		return fmt.Errorf("mission catalog is empty")
	}
	seen := make(map[string]bool, len(missions))
	for i, m := range missions {
		if m.ID == "" {
			return fmt.Errorf("mission %d: id is required", i)
		}
		if seen[m.ID] {
			return fmt.Errorf("mission %d: duplicate id %q", i, m.ID)
		}
		seen[m.ID] = true
		if m.Title == "" {
			return fmt.Errorf("mission %s: title is required", m.ID)
		}
		if !m.Category.IsValid() {
			return fmt.Errorf("mission %s: invalid category %q", m.ID, m.Category)
		}
		if !m.Difficulty.IsValid() {
			return fmt.Errorf("mission %s: invalid difficulty %q", m.ID, m.Difficulty)
		}
		if len(m.StatRewards) == 0 {
			return fmt.Errorf("mission %s: at least one stat reward is required", m.ID)
		}
		for _, r := range m.StatRewards {
			if !r.Stat.IsValid() {
				return fmt.Errorf("mission %s: invalid reward stat %q", m.ID, r.Stat)
			}
			if r.Amount <= 0 {
				return fmt.Errorf("mission %s: reward for %s must be positive", m.ID, r.Stat)
			}
		}
		if m.ExperienceReward <= 0 {
			return fmt.Errorf("mission %s: experience reward must be positive", m.ID)
		}
	}
	return nil
}
