package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/daypilot-backend/internal/agent"
	"github.com/yungbote/daypilot-backend/internal/platform/apierr"
	"github.com/yungbote/daypilot-backend/internal/platform/cache"
	"github.com/yungbote/daypilot-backend/internal/platform/logger"
	"github.com/yungbote/daypilot-backend/internal/repos"
	"github.com/yungbote/daypilot-backend/internal/types"
)

const summaryCacheTTL = 5 * time.Minute

type CheckinInput struct {
	UserID      uuid.UUID         `json:"user_id"`
	Date        string            `json:"date"` // YYYY-MM-DD
	EnergyLevel types.EnergyLevel `json:"energy_level"`
	MoodScore   int               `json:"mood_score"`
	FocusScore  int               `json:"focus_score"`
	Notes       string            `json:"notes"`
}

// ProgressSummary aggregates a user's recent window into one payload.
type ProgressSummary struct {
	UserID            string             `json:"user_id"`
	Period            string             `json:"period"`
	CompletionRate    float64            `json:"completion_rate"`
	GoalsOnTrack      []string           `json:"goals_on_track"`
	GoalsAtRisk       []string           `json:"goals_at_risk"`
	HabitStreaks      map[string]int     `json:"habit_streaks"`
	TimeAllocation    map[string]float64 `json:"time_allocation"`
	ProductivityTrend []float64          `json:"productivity_trend"`
	BurnoutRiskScore  float64            `json:"burnout_risk_score"`
	AIInsights        string             `json:"ai_insights"`
}

type ProgressService struct {
	db           *gorm.DB
	log          *logger.Logger
	planner      *agent.Planner
	cache        *cache.RedisCache
	checkinRepo  repos.CheckinRepo
	scheduleRepo repos.ScheduleRepo
	goalRepo     repos.GoalRepo
	habitRepo    repos.HabitRepo
}

func NewProgressService(
	db *gorm.DB,
	log *logger.Logger,
	planner *agent.Planner,
	summaryCache *cache.RedisCache,
	checkinRepo repos.CheckinRepo,
	scheduleRepo repos.ScheduleRepo,
	goalRepo repos.GoalRepo,
	habitRepo repos.HabitRepo,
) *ProgressService {
	return &ProgressService{
		db:           db,
		log:          log.With("service", "ProgressService"),
		planner:      planner,
		cache:        summaryCache,
		checkinRepo:  checkinRepo,
		scheduleRepo: scheduleRepo,
		goalRepo:     goalRepo,
		habitRepo:    habitRepo,
	}
}

func (s *ProgressService) LogCheckin(ctx context.Context, input CheckinInput) (*types.DailyCheckin, string, error) {
	if _, err := time.Parse("2006-01-02", input.Date); err != nil {
		return nil, "", apierr.New(400, "INVALID_CHECKIN", errors.New("date must be YYYY-MM-DD"))
	}
	if !input.EnergyLevel.Valid() {
		return nil, "", apierr.New(400, "INVALID_CHECKIN", errors.New("energy_level must be low, medium, or high"))
	}
	if input.MoodScore < 1 || input.MoodScore > 10 {
		return nil, "", apierr.New(400, "INVALID_CHECKIN", errors.New("mood_score must be within [1, 10]"))
	}
	if input.FocusScore < 1 || input.FocusScore > 10 {
		return nil, "", apierr.New(400, "INVALID_CHECKIN", errors.New("focus_score must be within [1, 10]"))
	}

	checkin := &types.DailyCheckin{
		ID:          uuid.New(),
		UserID:      input.UserID,
		Date:        input.Date,
		EnergyLevel: input.EnergyLevel,
		MoodScore:   input.MoodScore,
		FocusScore:  input.FocusScore,
		Notes:       input.Notes,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.checkinRepo.Create(ctx, nil, checkin); err != nil {
		return nil, "", apierr.New(500, "CHECKIN_FAILED", err)
	}
	return checkin, "Check-in logged ✅", nil
}

// Summary computes the period rollup: block completion rate, per-category
// hours, goal pacing, habit streaks, and the burnout risk score. The AI
// insight is best-effort; a model failure degrades it to empty text.
func (s *ProgressService) Summary(ctx context.Context, userID uuid.UUID, period string) (*ProgressSummary, error) {
	var days int
	switch period {
	case "weekly":
		days = 7
	case "monthly":
		days = 30
	default:
		return nil, apierr.New(400, "INVALID_PERIOD", errors.New("period must be 'weekly' or 'monthly'"))
	}

	cacheKey := fmt.Sprintf("progress:summary:%s:%s", userID.String(), period)
	if raw, ok := s.cache.Get(ctx, cacheKey); ok {
		var cached ProgressSummary
		if err := json.Unmarshal(raw, &cached); err == nil {
			return &cached, nil
		}
	}

	today := time.Now()
	since := today.AddDate(0, 0, -days).Format("2006-01-02")

	schedules, err := s.scheduleRepo.ListByUserRange(ctx, nil, userID, since, today.Format("2006-01-02"))
	if err != nil {
		return nil, apierr.New(500, "SUMMARY_FAILED", err)
	}

	totalBlocks := 0
	completedBlocks := 0
	categoryHours := map[string]float64{}
	for _, sched := range schedules {
		for _, b := range decodeBlocks(sched.TimeBlocksJSON) {
			totalBlocks++
			if b.Status == types.TaskCompleted {
				completedBlocks++
			}
			cat := b.Category
			if cat == "" {
				cat = "other"
			}
			categoryHours[cat] += blockDurationHours(b)
		}
	}
	completionRate := 0.0
	if totalBlocks > 0 {
		completionRate = float64(completedBlocks) / float64(totalBlocks)
	}

	goals, err := s.goalRepo.ListByUser(ctx, nil, userID, "active")
	if err != nil {
		return nil, apierr.New(500, "SUMMARY_FAILED", err)
	}
	goalsOnTrack, goalsAtRisk := classifyGoals(goals, today, days)

	habits, err := s.habitRepo.ListByUser(ctx, nil, userID)
	if err != nil {
		return nil, apierr.New(500, "SUMMARY_FAILED", err)
	}
	habitStreaks := map[string]int{}
	for _, h := range habits {
		habitStreaks[h.Title] = h.StreakCount
	}

	checkins, err := s.checkinRepo.ListByUserSince(ctx, nil, userID, since)
	if err != nil {
		return nil, apierr.New(500, "SUMMARY_FAILED", err)
	}
	burnoutRisk := computeBurnoutRisk(checkins, categoryHours, days)

	summary := &ProgressSummary{
		UserID:            userID.String(),
		Period:            period,
		CompletionRate:    round3(completionRate),
		GoalsOnTrack:      goalsOnTrack,
		GoalsAtRisk:       goalsAtRisk,
		HabitStreaks:      habitStreaks,
		TimeAllocation:    categoryHours,
		ProductivityTrend: []float64{},
		BurnoutRiskScore:  burnoutRisk,
	}

	prompt := agent.BuildInsightsPrompt(
		period, completionRate, goalsOnTrack, goalsAtRisk,
		burnoutRisk, categoryHours, habitStreaks,
	)
	if insights, ierr := s.planner.RunPlanner(ctx, prompt); ierr == nil {
		summary.AIInsights = insights
	} else {
		s.log.Warn("insights generation failed, returning summary without them",
			"user_id", userID.String(), "error", ierr)
	}

	if raw, merr := json.Marshal(summary); merr == nil {
		s.cache.Set(ctx, cacheKey, raw, summaryCacheTTL)
	}
	return summary, nil
}

// classifyGoals splits active goals by pacing. Required progress is the share
// of total runway already consumed; a goal is on track when it sits at 85% of
// that required pace or better. Open-ended goals read as 999 days left.
func classifyGoals(goals []types.Goal, today time.Time, windowDays int) (onTrack, atRisk []string) {
	onTrack = []string{}
	atRisk = []string{}
	todayDate := today.Truncate(24 * time.Hour)
	for _, g := range goals {
		daysLeft := 999
		if g.TargetDate != "" {
			if target, err := time.Parse("2006-01-02", g.TargetDate); err == nil {
				daysLeft = int(target.Sub(todayDate).Hours() / 24)
			}
		}
		required := 100.0
		if daysLeft > 0 {
			required = float64(windowDays) / float64(windowDays+daysLeft) * 100
		}
		if g.ProgressPercent >= required*0.85 {
			onTrack = append(onTrack, g.Title)
		} else {
			atRisk = append(atRisk, g.Title)
		}
	}
	return onTrack, atRisk
}

// computeBurnoutRisk blends mood, focus, low-energy frequency, and sustained
// work load into [0, 1]. No check-ins means no signal, which reads as zero.
func computeBurnoutRisk(checkins []types.DailyCheckin, categoryHours map[string]float64, windowDays int) float64 {
	if len(checkins) == 0 {
		return 0
	}
	n := float64(len(checkins))
	var moodSum, focusSum, lowEnergy float64
	for _, c := range checkins {
		moodSum += float64(c.MoodScore)
		focusSum += float64(c.FocusScore)
		if c.EnergyLevel == types.EnergyLow {
			lowEnergy++
		}
	}
	avgMood := moodSum / n
	avgFocus := focusSum / n
	energyPenalty := lowEnergy / n

	if windowDays < 1 {
		windowDays = 1
	}
	workHrsAvg := (categoryHours["work"] + categoryHours["study"]) / float64(windowDays)

	risk := (1-avgMood/10)*0.35 +
		(1-avgFocus/10)*0.25 +
		energyPenalty*0.20 +
		math.Min(workHrsAvg/10, 1.0)*0.20
	return round3(math.Min(1.0, risk))
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
