package game

import "time"

// JutsuOnCooldown reports whether the jutsu was used within its cooldown
// window. A jutsu never used is not on cooldown.
func JutsuOnCooldown(j Jutsu, now time.Time) bool {
	if j.LastUsed == nil {
		return false
	}
	end := j.LastUsed.Add(time.Duration(j.CooldownHours) * time.Hour)
	return now.Before(end)
}

// JutsuCooldownRemaining returns how long until the jutsu can be used again,
// or zero when it is ready.
func JutsuCooldownRemaining(j Jutsu, now time.Time) time.Duration {
	if j.LastUsed == nil {
		return 0
	}
	end := j.LastUsed.Add(time.Duration(j.CooldownHours) * time.Hour)
	rem := end.Sub(now)
	if rem < 0 {
		return 0
	}
	return rem
}

// ActivateJutsu stamps LastUsed on an unlocked, off-cooldown jutsu.
// The cooldown itself only gates activation; the effect text is flavor.
func (e *Engine) ActivateJutsu(id string) (Jutsu, error) {
	for i := range e.jutsu {
		j := &e.jutsu[i]
		if j.ID != id {
			continue
		}
		if !j.Unlocked {
			return Jutsu{}, LockedError{
				Jutsu:         j.Name,
				RequiredStat:  j.RequiredStat,
				RequiredValue: j.RequiredValue,
				CurrentValue:  e.stats.Get(j.RequiredStat),
			}
		}
		now := e.now()
		if JutsuOnCooldown(*j, now) {
			return Jutsu{}, CooldownError{
				Jutsu:     j.Name,
				Remaining: JutsuCooldownRemaining(*j, now),
			}
		}
		j.LastUsed = &now
		return *j, nil
	}
	return Jutsu{}, ValidationError{Field: "jutsu", Reason: "unknown id " + id}
}
