package game

import "time"

type Stat string

const (
	StatChakra       Stat = "chakra"
	StatStrength     Stat = "strength"
	StatIntelligence Stat = "intelligence"
	StatAgility      Stat = "agility"
	StatStamina      Stat = "stamina"
	StatCharisma     Stat = "charisma"
)

// Stats lists every stat in display order.
var Stats = []Stat{
	StatChakra,
	StatStrength,
	StatIntelligence,
	StatAgility,
	StatStamina,
	StatCharisma,
}

func (s Stat) IsValid() bool {
	switch s {
	case StatChakra, StatStrength, StatIntelligence, StatAgility, StatStamina, StatCharisma:
		return true
	default:
		return false
	}
}

type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	default:
		return false
	}
}

type Category string

const (
	CategoryChakraControl Category = "Chakra Control"
	CategoryPhysical      Category = "Physical Training"
	CategoryMental        Category = "Mental Training"
	CategorySocial        Category = "Social Bonds"
	CategoryStealth       Category = "Stealth Operations"
	CategoryMedical       Category = "Medical Jutsu"
)

func (c Category) IsValid() bool {
	switch c {
	case CategoryChakraControl, CategoryPhysical, CategoryMental, CategorySocial, CategoryStealth, CategoryMedical:
		return true
	default:
		return false
	}
}

// UserStats holds the six ninja attributes plus cumulative experience.
// Every field is kept >= 0 by the engine; nothing outside the engine
// mutates it.
type UserStats struct {
	Chakra       int `json:"chakra"`
	Strength     int `json:"strength"`
	Intelligence int `json:"intelligence"`
	Agility      int `json:"agility"`
	Stamina      int `json:"stamina"`
	Charisma     int `json:"charisma"`
	Experience   int `json:"experience"`
	Level        int `json:"level"`
}

// Get returns the value of the named stat. Invalid stats return 0, but
// catalog construction rejects them so this does not happen for seeded data.
func (u UserStats) Get(s Stat) int {
	switch s {
	case StatChakra:
		return u.Chakra
	case StatStrength:
		return u.Strength
	case StatIntelligence:
		return u.Intelligence
	case StatAgility:
		return u.Agility
	case StatStamina:
		return u.Stamina
	case StatCharisma:
		return u.Charisma
	default:
		return 0
	}
}

func (u *UserStats) add(s Stat, amount int) {
	switch s {
	case StatChakra:
		u.Chakra += amount
	case StatStrength:
		u.Strength += amount
	case StatIntelligence:
		u.Intelligence += amount
	case StatAgility:
		u.Agility += amount
	case StatStamina:
		u.Stamina += amount
	case StatCharisma:
		u.Charisma += amount
	}
}

// sub subtracts with a zero floor.
func (u *UserStats) sub(s Stat, amount int) {
	cur := u.Get(s)
	next := cur - amount
	if next < 0 {
		next = 0
	}
	u.add(s, next-cur)
}

// Reward is a single stat delta granted by a mission.
type Reward struct {
	Stat   Stat `json:"stat"`
	Amount int  `json:"amount"`
}

type Mission struct {
	ID               string     `json:"id"`
	Title            string     `json:"title"`
	Category         Category   `json:"category"`
	Difficulty       Difficulty `json:"difficulty"`
	StatRewards      []Reward   `json:"statRewards"`
	ExperienceReward int        `json:"experienceReward"`
	Completed        bool       `json:"completed"`
	Streak           int        `json:"streak"`
	LastCompleted    *time.Time `json:"lastCompleted,omitempty"`
}

type Jutsu struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Description   string     `json:"description"`
	RequiredStat  Stat       `json:"requiredStat"`
	RequiredValue int        `json:"requiredValue"`
	Effect        string     `json:"effect"`
	CooldownHours int        `json:"cooldownHours"`
	LastUsed      *time.Time `json:"lastUsed,omitempty"`
	Unlocked      bool       `json:"unlocked"`
}

// NinjaRank is one tier of the static rank ladder.
type NinjaRank struct {
	Name          string
	MinExperience int
	Color         string
	Badge         string
}
