package services

import (
	"testing"
	"time"

	"github.com/yungbote/daypilot-backend/internal/types"
)

func TestComputeBurnoutRiskNoCheckins(t *testing.T) {
	risk := computeBurnoutRisk(nil, map[string]float64{"work": 70}, 7)
	if risk != 0 {
		t.Fatalf("no check-ins must mean zero risk, got %v", risk)
	}
}

func TestComputeBurnoutRiskFixedPoint(t *testing.T) {
	// avg mood 5, avg focus 5, half the days low energy, 5 work hours/day:
	// 0.35*0.5 + 0.25*0.5 + 0.20*0.5 + 0.20*0.5 = 0.5
	checkins := []types.DailyCheckin{
		{MoodScore: 5, FocusScore: 5, EnergyLevel: types.EnergyLow},
		{MoodScore: 5, FocusScore: 5, EnergyLevel: types.EnergyMedium},
	}
	hours := map[string]float64{"work": 21, "study": 14}
	risk := computeBurnoutRisk(checkins, hours, 7)
	if risk != 0.5 {
		t.Fatalf("expected 0.5, got %v", risk)
	}
}

func TestComputeBurnoutRiskRoundsToThreeDecimals(t *testing.T) {
	// avg mood 20/3, perfect focus, no low energy, no work load:
	// 0.35*(1-2/3) = 0.11666... -> 0.117
	checkins := []types.DailyCheckin{
		{MoodScore: 6, FocusScore: 10, EnergyLevel: types.EnergyHigh},
		{MoodScore: 7, FocusScore: 10, EnergyLevel: types.EnergyHigh},
		{MoodScore: 7, FocusScore: 10, EnergyLevel: types.EnergyHigh},
	}
	risk := computeBurnoutRisk(checkins, nil, 7)
	if risk != 0.117 {
		t.Fatalf("expected 0.117, got %v", risk)
	}
}

func TestComputeBurnoutRiskWorkLoadSaturates(t *testing.T) {
	// 200 work hours in a week saturates the load term at 0.20.
	checkins := []types.DailyCheckin{
		{MoodScore: 10, FocusScore: 10, EnergyLevel: types.EnergyHigh},
	}
	risk := computeBurnoutRisk(checkins, map[string]float64{"work": 200}, 7)
	if risk != 0.2 {
		t.Fatalf("expected load term capped at 0.2, got %v", risk)
	}
}

func TestClassifyGoalsBoundaryIsOnTrack(t *testing.T) {
	today, _ := time.Parse("2006-01-02", "2026-08-20")
	// 7-day window, 7 days left: required = 50, threshold = 42.5 inclusive.
	goals := []types.Goal{
		{Title: "exact", ProgressPercent: 42.5, TargetDate: "2026-08-27"},
		{Title: "behind", ProgressPercent: 42.49, TargetDate: "2026-08-27"},
	}
	onTrack, atRisk := classifyGoals(goals, today, 7)
	if len(onTrack) != 1 || onTrack[0] != "exact" {
		t.Fatalf("expected goal at threshold to be on track, got %v", onTrack)
	}
	if len(atRisk) != 1 || atRisk[0] != "behind" {
		t.Fatalf("expected goal below threshold at risk, got %v", atRisk)
	}
}

func TestClassifyGoalsOpenEnded(t *testing.T) {
	today, _ := time.Parse("2006-01-02", "2026-08-20")
	// No target date reads as 999 days of runway: threshold ~0.59%.
	goals := []types.Goal{
		{Title: "fresh", ProgressPercent: 0},
		{Title: "moving", ProgressPercent: 1},
	}
	onTrack, atRisk := classifyGoals(goals, today, 7)
	if len(atRisk) != 1 || atRisk[0] != "fresh" {
		t.Fatalf("untouched open-ended goal should be at risk, got %v", atRisk)
	}
	if len(onTrack) != 1 || onTrack[0] != "moving" {
		t.Fatalf("any real progress should keep an open-ended goal on track, got %v", onTrack)
	}
}

func TestClassifyGoalsPastDeadline(t *testing.T) {
	today, _ := time.Parse("2006-01-02", "2026-08-20")
	goals := []types.Goal{
		{Title: "late", ProgressPercent: 84, TargetDate: "2026-08-01"},
		{Title: "done enough", ProgressPercent: 85, TargetDate: "2026-08-01"},
	}
	onTrack, atRisk := classifyGoals(goals, today, 7)
	if len(atRisk) != 1 || atRisk[0] != "late" {
		t.Fatalf("past-deadline goal under 85%% should be at risk, got %v", atRisk)
	}
	if len(onTrack) != 1 || onTrack[0] != "done enough" {
		t.Fatalf("past-deadline goal at 85%% should be on track, got %v", onTrack)
	}
}
