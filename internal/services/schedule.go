package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/daypilot-backend/internal/agent"
	"github.com/yungbote/daypilot-backend/internal/platform/apierr"
	"github.com/yungbote/daypilot-backend/internal/platform/logger"
	"github.com/yungbote/daypilot-backend/internal/repos"
	"github.com/yungbote/daypilot-backend/internal/types"
)

type ScheduleGenerateInput struct {
	UserID  uuid.UUID   `json:"user_id"`
	Date    string      `json:"date"` // YYYY-MM-DD
	Goals   []uuid.UUID `json:"goals"`
	Context string      `json:"context"`
}

type TaskStatusInput struct {
	BlockID               string           `json:"block_id"`
	Status                types.TaskStatus `json:"status"`
	CompletionNote        string           `json:"completion_note"`
	ActualDurationMinutes int              `json:"actual_duration_minutes"`
}

// scheduleDraft is the shape the planner is asked to return for both full
// generation and rescheduling.
type scheduleDraft struct {
	TimeBlocks     []types.TimeBlock `json:"time_blocks"`
	TotalWorkHours float64           `json:"total_work_hours"`
	AINotes        string            `json:"ai_notes"`
}

type ScheduleService struct {
	db           *gorm.DB
	log          *logger.Logger
	planner      *agent.Planner
	scheduleRepo repos.ScheduleRepo
	goalRepo     repos.GoalRepo
	userRepo     repos.UserRepo
}

func NewScheduleService(
	db *gorm.DB,
	log *logger.Logger,
	planner *agent.Planner,
	scheduleRepo repos.ScheduleRepo,
	goalRepo repos.GoalRepo,
	userRepo repos.UserRepo,
) *ScheduleService {
	return &ScheduleService{
		db:           db,
		log:          log.With("service", "ScheduleService"),
		planner:      planner,
		scheduleRepo: scheduleRepo,
		goalRepo:     goalRepo,
		userRepo:     userRepo,
	}
}

// Generate builds an AI day plan and persists it, replacing any existing
// schedule for the same user and date.
func (s *ScheduleService) Generate(ctx context.Context, input ScheduleGenerateInput) (*types.Schedule, error) {
	if _, err := time.Parse("2006-01-02", input.Date); err != nil {
		return nil, apierr.New(400, "INVALID_DATE", errors.New("date must be YYYY-MM-DD"))
	}

	user, err := s.userRepo.GetByID(ctx, nil, input.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierr.NotFound("USER_NOT_FOUND", errors.New("user not found"))
		}
		return nil, apierr.New(500, "USER_FETCH_FAILED", err)
	}

	goals, err := s.goalRepo.ListByUser(ctx, nil, input.UserID, "active")
	if err != nil {
		return nil, apierr.New(500, "GOAL_LIST_FAILED", err)
	}
	goals = filterGoalsByID(goals, input.Goals)

	goalData := make([]map[string]interface{}, 0, len(goals))
	for _, g := range goals {
		goalData = append(goalData, goalForSchedulePrompt(g))
	}

	prompt := agent.BuildSchedulePrompt(input.Date, profileForPrompt(user), goalData, input.Context)
	raw, err := s.planner.RunPlanner(ctx, prompt)
	if err != nil {
		return nil, apierr.New(502, "SCHEDULE_GENERATION_FAILED", err)
	}

	var draft scheduleDraft
	if ext := agent.ExtractJSON(raw, &draft); !ext.OK() {
		s.log.Warn("schedule extraction fell back to empty day",
			"user_id", input.UserID.String(), "date", input.Date, "error", ext.Err)
		draft = scheduleDraft{TimeBlocks: []types.TimeBlock{}, AINotes: "Parsing failed."}
	}
	draft.TimeBlocks = agent.NormalizeTimeBlocks(draft.TimeBlocks)

	now := time.Now().UTC()
	schedule := &types.Schedule{
		ID:             uuid.New(),
		UserID:         input.UserID,
		Date:           input.Date,
		TimeBlocksJSON: encodeBlocks(draft.TimeBlocks),
		TotalWorkHours: draft.TotalWorkHours,
		AINotes:        draft.AINotes,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.scheduleRepo.Upsert(ctx, nil, schedule); err != nil {
		return nil, apierr.New(500, "SCHEDULE_SAVE_FAILED", err)
	}

	schedule.TimeBlocks = draft.TimeBlocks
	s.log.Info("schedule generated",
		"user_id", input.UserID.String(), "date", input.Date, "blocks", len(draft.TimeBlocks))
	return schedule, nil
}

func (s *ScheduleService) Get(ctx context.Context, userID uuid.UUID, date string) (*types.Schedule, error) {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, apierr.New(400, "INVALID_DATE", errors.New("date must be YYYY-MM-DD"))
	}
	schedule, err := s.scheduleRepo.GetByUserDate(ctx, nil, userID, date)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierr.NotFound("SCHEDULE_NOT_FOUND", errors.New("no schedule found for that date"))
		}
		return nil, apierr.New(500, "SCHEDULE_FETCH_FAILED", err)
	}
	schedule.TimeBlocks = decodeBlocks(schedule.TimeBlocksJSON)
	return schedule, nil
}

// UpdateTaskStatus flips a single block's status within today's schedule.
func (s *ScheduleService) UpdateTaskStatus(ctx context.Context, userID uuid.UUID, input TaskStatusInput) (*types.TimeBlock, error) {
	if input.BlockID == "" {
		return nil, apierr.New(400, "INVALID_TASK_UPDATE", errors.New("block_id is required"))
	}
	if !input.Status.Valid() {
		return nil, apierr.New(400, "INVALID_TASK_UPDATE", errors.New("unknown task status"))
	}

	today := time.Now().Format("2006-01-02")
	schedule, err := s.scheduleRepo.GetByUserDate(ctx, nil, userID, today)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierr.NotFound("SCHEDULE_NOT_FOUND", errors.New("no schedule found for today"))
		}
		return nil, apierr.New(500, "SCHEDULE_FETCH_FAILED", err)
	}

	blocks := decodeBlocks(schedule.TimeBlocksJSON)
	var updated *types.TimeBlock
	for i := range blocks {
		if blocks[i].BlockID != input.BlockID {
			continue
		}
		blocks[i].Status = input.Status
		if input.CompletionNote != "" {
			blocks[i].CompletionNote = input.CompletionNote
		}
		if input.ActualDurationMinutes > 0 {
			blocks[i].ActualDurationMinutes = input.ActualDurationMinutes
		}
		updated = &blocks[i]
		break
	}
	if updated == nil {
		return nil, apierr.NotFound("BLOCK_NOT_FOUND", errors.New("block not found in today's schedule"))
	}

	schedule.TimeBlocksJSON = encodeBlocks(blocks)
	schedule.UpdatedAt = time.Now().UTC()
	if err := s.scheduleRepo.Update(ctx, nil, schedule); err != nil {
		return nil, apierr.New(500, "SCHEDULE_SAVE_FAILED", err)
	}
	return updated, nil
}

// Reschedule rebuilds the rest of today around missed blocks. With nothing
// missed the stored schedule comes back untouched and no model call is made.
func (s *ScheduleService) Reschedule(ctx context.Context, userID uuid.UUID) (*types.Schedule, error) {
	today := time.Now().Format("2006-01-02")
	schedule, err := s.Get(ctx, userID, today)
	if err != nil {
		return nil, err
	}

	nowHHMM := time.Now().Format("15:04")
	completed, missed, remaining := splitBlocksForReschedule(schedule.TimeBlocks, nowHHMM)
	if len(missed) == 0 {
		return schedule, nil
	}

	prompt := agent.BuildReschedulePrompt(nowHHMM, missed, len(missed), remaining)
	raw, err := s.planner.RunPlanner(ctx, prompt)
	if err != nil {
		return nil, apierr.New(502, "RESCHEDULE_FAILED", err)
	}

	var draft scheduleDraft
	if ext := agent.ExtractJSON(raw, &draft); !ext.OK() {
		s.log.Warn("reschedule extraction fell back to remaining blocks",
			"user_id", userID.String(), "error", ext.Err)
		draft = scheduleDraft{TimeBlocks: remaining, AINotes: "No change."}
	}

	newBlocks := append(completed, agent.NormalizeTimeBlocks(draft.TimeBlocks)...)
	schedule.TimeBlocksJSON = encodeBlocks(newBlocks)
	schedule.TimeBlocks = newBlocks
	schedule.AINotes = draft.AINotes
	schedule.UpdatedAt = time.Now().UTC()

	if err := s.scheduleRepo.Update(ctx, nil, schedule); err != nil {
		return nil, apierr.New(500, "SCHEDULE_SAVE_FAILED", err)
	}
	s.log.Info("day rescheduled", "user_id", userID.String(), "missed", len(missed))
	return schedule, nil
}

// splitBlocksForReschedule partitions a day at the current clock time.
// Completed blocks are preserved verbatim. A block counts as missed when it is
// pending or skipped and its end time has already passed; it counts as
// remaining when it is pending and still ahead. The HH:MM format makes plain
// string comparison equivalent to chronological comparison.
func splitBlocksForReschedule(blocks []types.TimeBlock, now string) (completed, missed, remaining []types.TimeBlock) {
	completed = []types.TimeBlock{}
	missed = []types.TimeBlock{}
	remaining = []types.TimeBlock{}
	for _, b := range blocks {
		switch {
		case b.Status == types.TaskCompleted:
			completed = append(completed, b)
		case (b.Status == types.TaskPending || b.Status == types.TaskSkipped) && b.EndTime < now:
			missed = append(missed, b)
		case b.Status == types.TaskPending && b.EndTime >= now:
			remaining = append(remaining, b)
		}
	}
	return completed, missed, remaining
}

func filterGoalsByID(goals []types.Goal, ids []uuid.UUID) []types.Goal {
	if len(ids) == 0 {
		return goals
	}
	want := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	out := make([]types.Goal, 0, len(goals))
	for _, g := range goals {
		if want[g.ID] {
			out = append(out, g)
		}
	}
	return out
}
