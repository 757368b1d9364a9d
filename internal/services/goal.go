package services

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/yungbote/daypilot-backend/internal/agent"
	"github.com/yungbote/daypilot-backend/internal/platform/apierr"
	"github.com/yungbote/daypilot-backend/internal/platform/logger"
	"github.com/yungbote/daypilot-backend/internal/repos"
	"github.com/yungbote/daypilot-backend/internal/types"
)

type GoalCreateInput struct {
	Title                  string             `json:"title"`
	Description            string             `json:"description"`
	Category               types.GoalCategory `json:"category"`
	Priority               types.Priority     `json:"priority"`
	TargetDate             string             `json:"target_date"`
	DailyTimeBudgetMinutes int                `json:"daily_time_budget_minutes"`
	Milestones             []string           `json:"milestones"`
}

type ScenarioInput struct {
	ScenarioDescription string `json:"scenario_description"`
	TimeframeDays       int    `json:"timeframe_days"`
}

// SimulationResult mirrors the JSON the planner is asked to produce for a
// what-if scenario. On extraction fallback only Scenario and Recommendation
// are populated, the latter with the raw model text.
type SimulationResult struct {
	Scenario                string            `json:"scenario"`
	ProjectedGoalCompletion map[string]string `json:"projected_goal_completion,omitempty"`
	TimeReallocation        map[string]string `json:"time_reallocation,omitempty"`
	Tradeoffs               []string          `json:"tradeoffs,omitempty"`
	Recommendation          string            `json:"recommendation"`
}

type GoalService struct {
	db       *gorm.DB
	log      *logger.Logger
	planner  *agent.Planner
	goalRepo repos.GoalRepo
	userRepo repos.UserRepo
}

func NewGoalService(
	db *gorm.DB,
	log *logger.Logger,
	planner *agent.Planner,
	goalRepo repos.GoalRepo,
	userRepo repos.UserRepo,
) *GoalService {
	return &GoalService{
		db:       db,
		log:      log.With("service", "GoalService"),
		planner:  planner,
		goalRepo: goalRepo,
		userRepo: userRepo,
	}
}

// Create persists a goal after asking the planner for a weekly roadmap. A
// roadmap that fails extraction becomes an empty roadmap, never an error.
func (s *GoalService) Create(ctx context.Context, userID uuid.UUID, input GoalCreateInput) (*types.Goal, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, apierr.New(400, "INVALID_GOAL", errors.New("title is required"))
	}
	if !input.Category.Valid() {
		return nil, apierr.New(400, "INVALID_GOAL", errors.New("unknown category"))
	}
	if input.Priority == "" {
		input.Priority = types.PriorityMedium
	}
	if !input.Priority.Valid() {
		return nil, apierr.New(400, "INVALID_GOAL", errors.New("unknown priority"))
	}
	if input.DailyTimeBudgetMinutes <= 0 {
		input.DailyTimeBudgetMinutes = 60
	}

	profile := map[string]interface{}{}
	if user, err := s.userRepo.GetByID(ctx, nil, userID); err == nil {
		profile = profileForPrompt(user)
	}

	goalPrompt := map[string]interface{}{
		"title":                     input.Title,
		"description":               input.Description,
		"category":                  input.Category,
		"priority":                  input.Priority,
		"target_date":               input.TargetDate,
		"daily_time_budget_minutes": input.DailyTimeBudgetMinutes,
		"milestones":                input.Milestones,
	}

	roadmap := []types.RoadmapWeek{}
	raw, err := s.planner.RunPlanner(ctx, agent.BuildRoadmapPrompt(goalPrompt, profile, input.DailyTimeBudgetMinutes))
	if err != nil {
		return nil, apierr.New(502, "ROADMAP_GENERATION_FAILED", err)
	}
	if ext := agent.ExtractJSON(raw, &roadmap); !ext.OK() {
		s.log.Warn("roadmap extraction fell back to empty", "user_id", userID.String(), "error", ext.Err)
		roadmap = []types.RoadmapWeek{}
	}

	now := time.Now().UTC()
	goal := &types.Goal{
		ID:                     uuid.New(),
		UserID:                 userID,
		Title:                  strings.TrimSpace(input.Title),
		Description:            input.Description,
		Category:               input.Category,
		Priority:               input.Priority,
		TargetDate:             input.TargetDate,
		DailyTimeBudgetMinutes: input.DailyTimeBudgetMinutes,
		Milestones:             mustJSONBlob(input.Milestones),
		Roadmap:                mustJSONBlob(roadmap),
		ProgressPercent:        0,
		Status:                 "active",
		CreatedAt:              now,
		UpdatedAt:              now,
	}

	if err := s.goalRepo.Create(ctx, nil, goal); err != nil {
		return nil, apierr.New(500, "GOAL_CREATE_FAILED", err)
	}
	s.log.Info("goal created", "user_id", userID.String(), "goal_id", goal.ID.String())
	return goal, nil
}

func (s *GoalService) List(ctx context.Context, userID uuid.UUID) ([]types.Goal, error) {
	goals, err := s.goalRepo.ListByUser(ctx, nil, userID, "")
	if err != nil {
		return nil, apierr.New(500, "GOAL_LIST_FAILED", err)
	}
	return goals, nil
}

func (s *GoalService) Get(ctx context.Context, userID, goalID uuid.UUID) (*types.Goal, error) {
	goal, err := s.goalRepo.GetByID(ctx, nil, goalID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierr.NotFound("GOAL_NOT_FOUND", errors.New("goal not found"))
		}
		return nil, apierr.New(500, "GOAL_FETCH_FAILED", err)
	}
	if goal.UserID != userID {
		return nil, apierr.NotFound("GOAL_NOT_FOUND", errors.New("goal not found"))
	}
	return goal, nil
}

func (s *GoalService) UpdateProgress(ctx context.Context, userID, goalID uuid.UUID, progressPercent float64) (*types.Goal, error) {
	if progressPercent < 0 || progressPercent > 100 {
		return nil, apierr.New(400, "INVALID_PROGRESS", errors.New("progress_percent must be within [0, 100]"))
	}
	goal, err := s.Get(ctx, userID, goalID)
	if err != nil {
		return nil, err
	}
	goal.ProgressPercent = progressPercent
	goal.UpdatedAt = time.Now().UTC()
	if err := s.goalRepo.Update(ctx, nil, goal); err != nil {
		return nil, apierr.New(500, "GOAL_UPDATE_FAILED", err)
	}
	return goal, nil
}

func (s *GoalService) Delete(ctx context.Context, userID, goalID uuid.UUID) error {
	if _, err := s.Get(ctx, userID, goalID); err != nil {
		return err
	}
	if err := s.goalRepo.Delete(ctx, nil, goalID); err != nil {
		return apierr.New(500, "GOAL_DELETE_FAILED", err)
	}
	return nil
}

// Simulate projects a what-if scenario across the user's current goals.
func (s *GoalService) Simulate(ctx context.Context, userID uuid.UUID, input ScenarioInput) (*SimulationResult, error) {
	if strings.TrimSpace(input.ScenarioDescription) == "" {
		return nil, apierr.New(400, "INVALID_SCENARIO", errors.New("scenario_description is required"))
	}
	if input.TimeframeDays <= 0 {
		input.TimeframeDays = 30
	}

	goals, err := s.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	profile := map[string]interface{}{}
	if user, uerr := s.userRepo.GetByID(ctx, nil, userID); uerr == nil {
		profile = profileForPrompt(user)
	}

	prompt := agent.BuildSimulationPrompt(input.ScenarioDescription, input.TimeframeDays, goals, profile)
	raw, err := s.planner.RunPlanner(ctx, prompt)
	if err != nil {
		return nil, apierr.New(502, "SIMULATION_FAILED", err)
	}

	var result SimulationResult
	if ext := agent.ExtractJSON(raw, &result); !ext.OK() {
		s.log.Warn("simulation extraction fell back to raw text", "user_id", userID.String(), "error", ext.Err)
		return &SimulationResult{
			Scenario:       input.ScenarioDescription,
			Recommendation: raw,
		}, nil
	}
	return &result, nil
}

func mustJSONBlob(v interface{}) datatypes.JSON {
	b, err := json.Marshal(v)
	if err != nil {
		return datatypes.JSON([]byte("[]"))
	}
	return datatypes.JSON(b)
}
