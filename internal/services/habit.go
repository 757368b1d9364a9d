package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/daypilot-backend/internal/agent"
	"github.com/yungbote/daypilot-backend/internal/platform/apierr"
	"github.com/yungbote/daypilot-backend/internal/platform/logger"
	"github.com/yungbote/daypilot-backend/internal/repos"
	"github.com/yungbote/daypilot-backend/internal/types"
)

type HabitCreateInput struct {
	Title           string               `json:"title"`
	Description     string               `json:"description"`
	GoalID          *uuid.UUID           `json:"goal_id"`
	Frequency       types.HabitFrequency `json:"frequency"`
	PreferredTime   string               `json:"preferred_time"`
	DurationMinutes int                  `json:"duration_minutes"`
	Reminder        *bool                `json:"reminder"`
	Cue             string               `json:"cue"`
	Reward          string               `json:"reward"`
}

type HabitCheckInInput struct {
	HabitID   uuid.UUID `json:"habit_id"`
	Date      string    `json:"date"` // YYYY-MM-DD
	Completed bool      `json:"completed"`
	Note      string    `json:"note"`
}

// HabitSuggestion is one AI-proposed habit in cue-routine-reward form.
type HabitSuggestion struct {
	Title           string `json:"title"`
	Description     string `json:"description"`
	Cue             string `json:"cue"`
	Routine         string `json:"routine"`
	Reward          string `json:"reward"`
	DurationMinutes int    `json:"duration_minutes"`
	BestTime        string `json:"best_time"`
	LinkedGoal      string `json:"linked_goal"`
}

type HabitService struct {
	db           *gorm.DB
	log          *logger.Logger
	planner      *agent.Planner
	habitRepo    repos.HabitRepo
	habitLogRepo repos.HabitLogRepo
	goalRepo     repos.GoalRepo
	userRepo     repos.UserRepo
}

func NewHabitService(
	db *gorm.DB,
	log *logger.Logger,
	planner *agent.Planner,
	habitRepo repos.HabitRepo,
	habitLogRepo repos.HabitLogRepo,
	goalRepo repos.GoalRepo,
	userRepo repos.UserRepo,
) *HabitService {
	return &HabitService{
		db:           db,
		log:          log.With("service", "HabitService"),
		planner:      planner,
		habitRepo:    habitRepo,
		habitLogRepo: habitLogRepo,
		goalRepo:     goalRepo,
		userRepo:     userRepo,
	}
}

func (s *HabitService) Create(ctx context.Context, userID uuid.UUID, input HabitCreateInput) (*types.Habit, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, apierr.New(400, "INVALID_HABIT", errors.New("title is required"))
	}
	if input.Frequency == "" {
		input.Frequency = types.FrequencyDaily
	}
	if !input.Frequency.Valid() {
		return nil, apierr.New(400, "INVALID_HABIT", errors.New("unknown frequency"))
	}
	if input.DurationMinutes <= 0 {
		input.DurationMinutes = 15
	}
	reminder := true
	if input.Reminder != nil {
		reminder = *input.Reminder
	}

	now := time.Now().UTC()
	habit := &types.Habit{
		ID:              uuid.New(),
		UserID:          userID,
		Title:           strings.TrimSpace(input.Title),
		Description:     input.Description,
		GoalID:          input.GoalID,
		Frequency:       input.Frequency,
		PreferredTime:   input.PreferredTime,
		DurationMinutes: input.DurationMinutes,
		Reminder:        reminder,
		Cue:             input.Cue,
		Reward:          input.Reward,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := s.habitRepo.Create(ctx, nil, habit); err != nil {
		return nil, apierr.New(500, "HABIT_CREATE_FAILED", err)
	}
	return habit, nil
}

func (s *HabitService) List(ctx context.Context, userID uuid.UUID) ([]types.Habit, error) {
	habits, err := s.habitRepo.ListByUser(ctx, nil, userID)
	if err != nil {
		return nil, apierr.New(500, "HABIT_LIST_FAILED", err)
	}
	return habits, nil
}

// CheckIn logs a completion (or a miss) and applies the streak rule: a miss
// resets the streak to zero, a completion extends it and stamps the date.
func (s *HabitService) CheckIn(ctx context.Context, userID uuid.UUID, input HabitCheckInInput) (*types.HabitLog, error) {
	if _, err := time.Parse("2006-01-02", input.Date); err != nil {
		return nil, apierr.New(400, "INVALID_DATE", errors.New("date must be YYYY-MM-DD"))
	}

	habit, err := s.habitRepo.GetByID(ctx, nil, input.HabitID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierr.NotFound("HABIT_NOT_FOUND", errors.New("habit not found"))
		}
		return nil, apierr.New(500, "HABIT_FETCH_FAILED", err)
	}
	if habit.UserID != userID {
		return nil, apierr.NotFound("HABIT_NOT_FOUND", errors.New("habit not found"))
	}

	log := &types.HabitLog{
		ID:        uuid.New(),
		HabitID:   habit.ID,
		UserID:    userID,
		Date:      input.Date,
		Completed: input.Completed,
		Note:      input.Note,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.habitLogRepo.Create(ctx, nil, log); err != nil {
		return nil, apierr.New(500, "HABIT_LOG_FAILED", err)
	}

	applyHabitCheckin(habit, input.Date, input.Completed)
	if completedCount, total, cerr := s.habitLogRepo.CountCompleted(ctx, nil, habit.ID); cerr == nil && total > 0 {
		habit.CompletionRate = float64(completedCount) / float64(total)
	}
	habit.UpdatedAt = time.Now().UTC()
	if err := s.habitRepo.Update(ctx, nil, habit); err != nil {
		return nil, apierr.New(500, "HABIT_UPDATE_FAILED", err)
	}
	return log, nil
}

// SuggestHabits asks the planner for five habits grounded in the user's
// active goals. A malformed reply yields an empty list, not an error.
func (s *HabitService) SuggestHabits(ctx context.Context, userID uuid.UUID) ([]HabitSuggestion, error) {
	goals, err := s.goalRepo.ListByUser(ctx, nil, userID, "active")
	if err != nil {
		return nil, apierr.New(500, "GOAL_LIST_FAILED", err)
	}
	goalData := make([]map[string]interface{}, 0, len(goals))
	for _, g := range goals {
		goalData = append(goalData, map[string]interface{}{
			"title":    g.Title,
			"category": g.Category,
			"priority": g.Priority,
		})
	}

	profile := map[string]interface{}{}
	if user, uerr := s.userRepo.GetByID(ctx, nil, userID); uerr == nil {
		profile = profileForPrompt(user)
	}

	raw, err := s.planner.RunPlanner(ctx, agent.BuildHabitSuggestPrompt(goalData, profile))
	if err != nil {
		return nil, apierr.New(502, "HABIT_SUGGEST_FAILED", err)
	}

	suggestions := []HabitSuggestion{}
	if ext := agent.ExtractJSON(raw, &suggestions); !ext.OK() {
		s.log.Warn("habit suggestion extraction fell back to empty", "user_id", userID.String(), "error", ext.Err)
		return []HabitSuggestion{}, nil
	}
	return suggestions, nil
}

// Delete removes a habit along with its check-in logs.
func (s *HabitService) Delete(ctx context.Context, userID, habitID uuid.UUID) error {
	habit, err := s.habitRepo.GetByID(ctx, nil, habitID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierr.NotFound("HABIT_NOT_FOUND", errors.New("habit not found"))
		}
		return apierr.New(500, "HABIT_FETCH_FAILED", err)
	}
	if habit.UserID != userID {
		return apierr.NotFound("HABIT_NOT_FOUND", errors.New("habit not found"))
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.habitLogRepo.DeleteByHabit(ctx, tx, habitID); err != nil {
			return apierr.New(500, "HABIT_DELETE_FAILED", err)
		}
		if err := s.habitRepo.Delete(ctx, tx, habitID); err != nil {
			return apierr.New(500, "HABIT_DELETE_FAILED", err)
		}
		return nil
	})
}

// applyHabitCheckin is the streak rule: completed=false zeroes the streak and
// leaves last_completed alone; completed=true increments and stamps the date.
func applyHabitCheckin(habit *types.Habit, date string, completed bool) {
	if !completed {
		habit.StreakCount = 0
		return
	}
	habit.StreakCount++
	habit.LastCompleted = date
}
