package game

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Village is one of the five hidden villages a ninja can enroll with.
type Village struct {
	ID     string
	Name   string
	Symbol string
}

var Villages = []Village{
	{ID: "leaf", Name: "Hidden Leaf Village", Symbol: "🍃"},
	{ID: "sand", Name: "Hidden Sand Village", Symbol: "🏜️"},
	{ID: "mist", Name: "Hidden Mist Village", Symbol: "🌊"},
	{ID: "cloud", Name: "Hidden Cloud Village", Symbol: "⚡"},
	{ID: "stone", Name: "Hidden Stone Village", Symbol: "🗻"},
}

// Onboarding is the enrollment record gating first-run flows.
type Onboarding struct {
	NinjaID     string `json:"ninjaId,omitempty"`
	Name        string `json:"name"`
	Avatar      string `json:"avatar"`
	Age         int    `json:"age"`
	Village     string `json:"village"`
	IsCompleted bool   `json:"isCompleted"`
}

func DefaultOnboarding() Onboarding {
	return Onboarding{Age: 18, Village: "leaf"}
}

const (
	minNinjaNameLen = 2
	maxNinjaNameLen = 15
)

// ValidateNinjaName enforces the 2-15 character name rule and returns the
// trimmed name. This is the only user-surfaced validation in the core.
func ValidateNinjaName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if len(trimmed) < minNinjaNameLen {
		return "", ValidationError{
			Field:  "name",
			Reason: fmt.Sprintf("must be at least %d characters", minNinjaNameLen),
		}
	}
	if len(trimmed) > maxNinjaNameLen {
		return "", ValidationError{
			Field:  "name",
			Reason: fmt.Sprintf("must be at most %d characters", maxNinjaNameLen),
		}
	}
	return trimmed, nil
}

// VillageByID looks up a village, nil when unknown.
func VillageByID(id string) *Village {
	for i := range Villages {
		if Villages[i].ID == id {
			return &Villages[i]
		}
	}
	return nil
}

// SetName validates and records the ninja name.
func (o *Onboarding) SetName(name string) error {
	n, err := ValidateNinjaName(name)
	if err != nil {
		return err
	}
	o.Name = n
	return nil
}

// SetVillage records the chosen village; unknown ids are rejected.
func (o *Onboarding) SetVillage(id string) error {
	if VillageByID(id) == nil {
		return ValidationError{Field: "village", Reason: "unknown village " + id}
	}
	o.Village = id
	return nil
}

// Complete marks enrollment done and mints the ninja id on first completion.
func (o *Onboarding) Complete() error {
	if o.Name == "" {
		return ValidationError{Field: "name", Reason: "name is required before completing enrollment"}
	}
	if o.NinjaID == "" {
		o.NinjaID = uuid.NewString()
	}
	o.IsCompleted = true
	return nil
}
