package services

import (
	"testing"

	"github.com/yungbote/daypilot-backend/internal/types"
)

func TestApplyHabitCheckinCompleted(t *testing.T) {
	habit := &types.Habit{StreakCount: 4, LastCompleted: "2026-08-27"}
	applyHabitCheckin(habit, "2026-08-28", true)
	if habit.StreakCount != 5 {
		t.Fatalf("expected streak 5, got %d", habit.StreakCount)
	}
	if habit.LastCompleted != "2026-08-28" {
		t.Fatalf("expected last_completed stamped, got %q", habit.LastCompleted)
	}
}

func TestApplyHabitCheckinMissResetsStreak(t *testing.T) {
	habit := &types.Habit{StreakCount: 12, LastCompleted: "2026-08-27"}
	applyHabitCheckin(habit, "2026-08-28", false)
	if habit.StreakCount != 0 {
		t.Fatalf("a miss must zero the streak, got %d", habit.StreakCount)
	}
	if habit.LastCompleted != "2026-08-27" {
		t.Fatalf("a miss must not touch last_completed, got %q", habit.LastCompleted)
	}
}
