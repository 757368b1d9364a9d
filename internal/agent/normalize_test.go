package agent

import (
	"testing"

	"github.com/google/uuid"

	"github.com/yungbote/daypilot-backend/internal/types"
)

func TestValidHHMM(t *testing.T) {
	valid := []string{"00:00", "06:30", "13:05", "23:59"}
	for _, v := range valid {
		if !ValidHHMM(v) {
			t.Fatalf("%q should be valid", v)
		}
	}
	invalid := []string{"24:00", "9:30", "12:60", "noon", "", "12:3"}
	for _, v := range invalid {
		if ValidHHMM(v) {
			t.Fatalf("%q should be invalid", v)
		}
	}
}

func TestNormalizeTimeBlocksFillsMissingID(t *testing.T) {
	out := NormalizeTimeBlocks([]types.TimeBlock{
		{Title: "Deep work", StartTime: "09:00", EndTime: "10:30"},
	})
	if len(out) != 1 {
		t.Fatalf("expected 1 block, got %d", len(out))
	}
	if _, err := uuid.Parse(out[0].BlockID); err != nil {
		t.Fatalf("expected generated UUID block_id, got %q", out[0].BlockID)
	}
}

func TestNormalizeTimeBlocksClampsEnums(t *testing.T) {
	out := NormalizeTimeBlocks([]types.TimeBlock{
		{
			BlockID:        "b1",
			StartTime:      "09:00",
			EndTime:        "10:00",
			Priority:       "critical",
			EnergyRequired: "extreme",
			Status:         "done",
		},
	})
	b := out[0]
	if b.Priority != types.PriorityMedium {
		t.Fatalf("expected priority clamped to medium, got %q", b.Priority)
	}
	if b.EnergyRequired != types.EnergyMedium {
		t.Fatalf("expected energy clamped to medium, got %q", b.EnergyRequired)
	}
	if b.Status != types.TaskPending {
		t.Fatalf("expected status clamped to pending, got %q", b.Status)
	}
}

func TestNormalizeTimeBlocksRepairsTimesAndCategory(t *testing.T) {
	out := NormalizeTimeBlocks([]types.TimeBlock{
		{BlockID: "b1", StartTime: "9am", EndTime: "25:99", Status: types.TaskPending,
			Priority: types.PriorityHigh, EnergyRequired: types.EnergyHigh},
	})
	b := out[0]
	if b.StartTime != "00:00" || b.EndTime != "00:00" {
		t.Fatalf("expected malformed times collapsed to 00:00, got %q-%q", b.StartTime, b.EndTime)
	}
	if b.Category != "other" {
		t.Fatalf("expected empty category defaulted to other, got %q", b.Category)
	}
}

func TestNormalizeTimeBlocksPreservesOrderAndValues(t *testing.T) {
	in := []types.TimeBlock{
		{BlockID: "b2", Title: "Lunch", StartTime: "12:00", EndTime: "12:45",
			Category: "meal", Priority: types.PriorityLow, EnergyRequired: types.EnergyLow, Status: types.TaskPending},
		{BlockID: "b1", Title: "Gym", StartTime: "07:00", EndTime: "08:00",
			Category: "fitness", Priority: types.PriorityHigh, EnergyRequired: types.EnergyHigh, Status: types.TaskCompleted},
	}
	out := NormalizeTimeBlocks(in)
	if out[0].BlockID != "b2" || out[1].BlockID != "b1" {
		t.Fatalf("normalization must not reorder blocks")
	}
	if out[1].Status != types.TaskCompleted {
		t.Fatalf("valid values must survive normalization")
	}
}
