package game

import (
	"strings"
	"testing"
)

func TestValidateNinjaName(t *testing.T) {
	if _, err := ValidateNinjaName("A"); err == nil {
		t.Fatalf("1-char name should fail")
	}
	if _, err := ValidateNinjaName("  x  "); err == nil {
		t.Fatalf("name trimming to 1 char should fail")
	}
	if _, err := ValidateNinjaName(strings.Repeat("a", 16)); err == nil {
		t.Fatalf("16-char name should fail")
	}

	got, err := ValidateNinjaName("  Naruto  ")
	if err != nil {
		t.Fatalf("ValidateNinjaName: %v", err)
	}
	if got != "Naruto" {
		t.Fatalf("got %q, want trimmed %q", got, "Naruto")
	}
	if _, err := ValidateNinjaName(strings.Repeat("a", 15)); err != nil {
		t.Fatalf("15-char name should pass: %v", err)
	}
}

func TestOnboardingFlow(t *testing.T) {
	ob := DefaultOnboarding()
	if ob.IsCompleted {
		t.Fatalf("default onboarding should be incomplete")
	}
	if ob.Village != "leaf" {
		t.Fatalf("default village=%q, want leaf", ob.Village)
	}

	if err := ob.Complete(); err == nil {
		t.Fatalf("completing without a name should fail")
	}
	if err := ob.SetVillage("rain"); err == nil {
		t.Fatalf("unknown village should fail")
	}

	if err := ob.SetName("Sakura"); err != nil {
		t.Fatalf("SetName: %v", err)
	}
	if err := ob.SetVillage("sand"); err != nil {
		t.Fatalf("SetVillage: %v", err)
	}
	if err := ob.Complete(); err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if !ob.IsCompleted {
		t.Fatalf("expected IsCompleted")
	}
	if ob.NinjaID == "" {
		t.Fatalf("expected a ninja id on completion")
	}

	// Completing again keeps the same id.
	id := ob.NinjaID
	if err := ob.Complete(); err != nil {
		t.Fatalf("Complete again: %v", err)
	}
	if ob.NinjaID != id {
		t.Fatalf("ninja id changed on re-completion")
	}
}
