package services

import (
	"testing"

	"github.com/yungbote/daypilot-backend/internal/types"
)

func TestApplyProfileDefaults(t *testing.T) {
	var user types.User
	applyProfile(&user, UserProfileInput{Name: "Ada"})

	if user.WakeTime != "06:30" || user.SleepTime != "22:30" {
		t.Fatalf("expected default wake/sleep, got %q/%q", user.WakeTime, user.SleepTime)
	}
	if user.AvailableHoursPerDay != 8 {
		t.Fatalf("expected 8 available hours, got %v", user.AvailableHoursPerDay)
	}
	if user.BreakFrequencyMinutes != 90 {
		t.Fatalf("expected 90 minute break frequency, got %d", user.BreakFrequencyMinutes)
	}
	if !user.DeepWorkPreference {
		t.Fatalf("deep work preference should default to true")
	}
	if user.Timezone != "UTC" || user.PeakEnergyPeriod != "morning" {
		t.Fatalf("expected default timezone/peak period, got %q/%q", user.Timezone, user.PeakEnergyPeriod)
	}
}

func TestApplyProfileExplicitFalseSurvives(t *testing.T) {
	var user types.User
	deepWork := false
	applyProfile(&user, UserProfileInput{Name: "Ada", DeepWorkPreference: &deepWork})
	if user.DeepWorkPreference {
		t.Fatalf("explicit false must not be replaced by the default")
	}
}
