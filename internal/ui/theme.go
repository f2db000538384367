package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"shinobi/internal/game"
)

// Shinobi theme (CLI + TUI).
// Kept intentionally small: reusable styles and a few emojis.

const (
	IconLeaf     = "🍃"
	IconSparkle  = "✨"
	IconDone     = "✅"
	IconTodo     = "⬜"
	IconTrophy   = "🏆"
	IconBolt     = "⚡"
	IconFire     = "🔥"
	IconScroll   = "📜"
	IconLock     = "🔒"
	IconWarn     = "⚠️"
	IconError    = "🧨"
	IconShuriken = "🌀"
)

var (
	cPrimary = lipgloss.Color("208") // orange
	cAccent  = lipgloss.Color("205") // magenta
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // amber
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)

	SelectedRow = lipgloss.NewStyle().Bold(true).Foreground(cGold).Background(cPrimary)

	BadgeRankUp = lipgloss.NewStyle().Bold(true).Foreground(cGold).Render("RANK UP")
)

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

// RankText renders a rank with its ladder color and badge.
func RankText(r game.NinjaRank) string {
	style := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(r.Color))
	return r.Badge + " " + style.Render(r.Name)
}

func DifficultyText(d game.Difficulty) string {
	switch d {
	case game.DifficultyEasy:
		return Good.Render("Easy")
	case game.DifficultyMedium:
		return Warn.Render("Medium")
	case game.DifficultyHard:
		return Bad.Render("Hard")
	default:
		return Muted.Render(string(d))
	}
}

// CategoryIcon maps mission categories to their display glyphs.
func CategoryIcon(c game.Category) string {
	switch c {
	case game.CategoryChakraControl:
		return "🌀"
	case game.CategoryPhysical:
		return "💪"
	case game.CategoryMental:
		return "📚"
	case game.CategorySocial:
		return "🤝"
	case game.CategoryStealth:
		return "🥷"
	case game.CategoryMedical:
		return "💊"
	default:
		return "🗒️"
	}
}

func StatIcon(s game.Stat) string {
	switch s {
	case game.StatChakra:
		return "🌀"
	case game.StatStrength:
		return "💪"
	case game.StatIntelligence:
		return "🧠"
	case game.StatAgility:
		return "💨"
	case game.StatStamina:
		return "🔋"
	case game.StatCharisma:
		return "🗣️"
	default:
		return "•"
	}
}

// ProgressBar renders value/total as a fixed-width bar.
func ProgressBar(value, total, width int) string {
	if width <= 0 {
		width = 20
	}
	if total <= 0 {
		total = 1
	}
	if value < 0 {
		value = 0
	}
	if value > total {
		value = total
	}
	filled := width * value / total
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", width-filled) + "]"
}
