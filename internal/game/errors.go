package game

import (
	"fmt"
	"time"
)

// ValidationError is returned for user-facing input problems
// (currently only the onboarding name rules).
type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// LockedError indicates a jutsu whose stat requirement is not met yet.
type LockedError struct {
	Jutsu         string
	RequiredStat  Stat
	RequiredValue int
	CurrentValue  int
}

func (e LockedError) Error() string {
	return fmt.Sprintf("jutsu '%s' is locked (%s %d/%d)", e.Jutsu, e.RequiredStat, e.CurrentValue, e.RequiredValue)
}

// CooldownError indicates a jutsu that was used too recently.
type CooldownError struct {
	Jutsu     string
	Remaining time.Duration
}

func (e CooldownError) Error() string {
	return fmt.Sprintf("jutsu '%s' is on cooldown for %s", e.Jutsu, formatCooldown(e.Remaining))
}

func formatCooldown(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	if h > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	return fmt.Sprintf("%dm", m)
}
