package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/daypilot-backend/internal/agent"
	"github.com/yungbote/daypilot-backend/internal/platform/logger"
	"github.com/yungbote/daypilot-backend/internal/types"
)

func block(id string, status types.TaskStatus, end string) types.TimeBlock {
	return types.TimeBlock{BlockID: id, Status: status, StartTime: "08:00", EndTime: end}
}

func TestSplitBlocksForReschedulePartition(t *testing.T) {
	blocks := []types.TimeBlock{
		block("done", types.TaskCompleted, "09:00"),
		block("missed-pending", types.TaskPending, "10:00"),
		block("missed-skipped", types.TaskSkipped, "11:00"),
		block("upcoming", types.TaskPending, "15:00"),
		block("skipped-future", types.TaskSkipped, "16:00"),
		block("in-progress", types.TaskInProgress, "13:00"),
	}

	completed, missed, remaining := splitBlocksForReschedule(blocks, "12:00")

	if len(completed) != 1 || completed[0].BlockID != "done" {
		t.Fatalf("completed partition wrong: %v", completed)
	}
	if len(missed) != 2 || missed[0].BlockID != "missed-pending" || missed[1].BlockID != "missed-skipped" {
		t.Fatalf("missed partition wrong: %v", missed)
	}
	if len(remaining) != 1 || remaining[0].BlockID != "upcoming" {
		t.Fatalf("remaining partition wrong: %v", remaining)
	}
}

func TestSplitBlocksForRescheduleEndAtNowIsRemaining(t *testing.T) {
	blocks := []types.TimeBlock{block("edge", types.TaskPending, "12:00")}
	_, missed, remaining := splitBlocksForReschedule(blocks, "12:00")
	if len(missed) != 0 {
		t.Fatalf("block ending exactly now must not count as missed")
	}
	if len(remaining) != 1 {
		t.Fatalf("block ending exactly now must count as remaining")
	}
}

func TestSplitBlocksForRescheduleNothingMissed(t *testing.T) {
	blocks := []types.TimeBlock{
		block("done", types.TaskCompleted, "09:00"),
		block("later", types.TaskPending, "18:00"),
	}
	_, missed, _ := splitBlocksForReschedule(blocks, "10:00")
	if len(missed) != 0 {
		t.Fatalf("expected no missed blocks, got %v", missed)
	}
}

type fakeScheduleRepo struct {
	schedule *types.Schedule
	upserts  int
	updates  int
}

func (f *fakeScheduleRepo) Upsert(ctx context.Context, tx *gorm.DB, schedule *types.Schedule) error {
	f.upserts++
	return nil
}

func (f *fakeScheduleRepo) GetByUserDate(ctx context.Context, tx *gorm.DB, userID uuid.UUID, date string) (*types.Schedule, error) {
	if f.schedule == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return f.schedule, nil
}

func (f *fakeScheduleRepo) ListByUserRange(ctx context.Context, tx *gorm.DB, userID uuid.UUID, from, to string) ([]types.Schedule, error) {
	return nil, nil
}

func (f *fakeScheduleRepo) Update(ctx context.Context, tx *gorm.DB, schedule *types.Schedule) error {
	f.updates++
	return nil
}

type refusingGenerator struct {
	calls int
}

func (g *refusingGenerator) GenerateText(ctx context.Context, system, user string) (string, error) {
	g.calls++
	return "", errors.New("model must not be reached")
}

func TestRescheduleNothingMissedSkipsModelAndSave(t *testing.T) {
	log, err := logger.New("dev")
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	gen := &refusingGenerator{}
	userID := uuid.New()

	blocks := []types.TimeBlock{
		block("done", types.TaskCompleted, "09:00"),
		block("later", types.TaskPending, "23:59"),
	}
	repo := &fakeScheduleRepo{schedule: &types.Schedule{
		ID:             uuid.New(),
		UserID:         userID,
		Date:           time.Now().Format("2006-01-02"),
		TimeBlocksJSON: encodeBlocks(blocks),
	}}

	svc := NewScheduleService(nil, log, agent.NewPlanner(gen, log), repo, nil, nil)
	got, err := svc.Reschedule(context.Background(), userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gen.calls != 0 {
		t.Fatalf("reschedule with nothing missed must not call the model, got %d calls", gen.calls)
	}
	if repo.updates != 0 || repo.upserts != 0 {
		t.Fatalf("reschedule with nothing missed must not rewrite the schedule")
	}
	if len(got.TimeBlocks) != 2 || got.TimeBlocks[0].BlockID != "done" || got.TimeBlocks[1].BlockID != "later" {
		t.Fatalf("schedule must come back unchanged, got %v", got.TimeBlocks)
	}
}

func TestFilterGoalsByID(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	goals := []types.Goal{{ID: a, Title: "a"}, {ID: b, Title: "b"}}

	if got := filterGoalsByID(goals, nil); len(got) != 2 {
		t.Fatalf("empty filter should keep all goals, got %d", len(got))
	}
	got := filterGoalsByID(goals, []uuid.UUID{b})
	if len(got) != 1 || got[0].Title != "b" {
		t.Fatalf("expected only goal b, got %v", got)
	}
	if got := filterGoalsByID(goals, []uuid.UUID{uuid.New()}); len(got) != 0 {
		t.Fatalf("unknown id should filter everything out, got %v", got)
	}
}
