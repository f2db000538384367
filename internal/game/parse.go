package game

import (
	"fmt"
	"strings"
)

// ParseStat parses user or catalog input to a Stat.
// Matching is case-insensitive; unknown names are an error rather than a
// silent no-op.
func ParseStat(input string) (Stat, error) {
	s := Stat(strings.TrimSpace(strings.ToLower(input)))
	if !s.IsValid() {
		return "", fmt.Errorf("invalid stat: %q", input)
	}
	return s, nil
}

func ParseDifficulty(input string) (Difficulty, error) {
	switch strings.TrimSpace(strings.ToLower(input)) {
	case "easy":
		return DifficultyEasy, nil
	case "medium":
		return DifficultyMedium, nil
	case "hard":
		return DifficultyHard, nil
	default:
		return "", fmt.Errorf("invalid difficulty: %q", input)
	}
}

func ParseCategory(input string) (Category, error) {
	t := strings.TrimSpace(input)
	for _, c := range []Category{
		CategoryChakraControl, CategoryPhysical, CategoryMental,
		CategorySocial, CategoryStealth, CategoryMedical,
	} {
		if strings.EqualFold(t, string(c)) {
			return c, nil
		}
	}
	return "", fmt.Errorf("invalid category: %q", input)
}
