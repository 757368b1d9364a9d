package services

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/yungbote/daypilot-backend/internal/agent"
	"github.com/yungbote/daypilot-backend/internal/platform/apierr"
	"github.com/yungbote/daypilot-backend/internal/platform/logger"
	"github.com/yungbote/daypilot-backend/internal/repos"
	"github.com/yungbote/daypilot-backend/internal/types"
)

type ChatMessageInput struct {
	UserID              uuid.UUID           `json:"user_id"`
	Message             string              `json:"message"`
	ContextDate         string              `json:"context_date"` // YYYY-MM-DD, defaults to today
	ConversationHistory []types.ChatMessage `json:"conversation_history"`
}

type ChatResponse struct {
	Reply            string   `json:"reply"`
	SuggestedActions []string `json:"suggested_actions"`
}

type ChatService struct {
	db           *gorm.DB
	log          *logger.Logger
	planner      *agent.Planner
	sessionRepo  repos.ChatSessionRepo
	goalRepo     repos.GoalRepo
	scheduleRepo repos.ScheduleRepo
	checkinRepo  repos.CheckinRepo
}

func NewChatService(
	db *gorm.DB,
	log *logger.Logger,
	planner *agent.Planner,
	sessionRepo repos.ChatSessionRepo,
	goalRepo repos.GoalRepo,
	scheduleRepo repos.ScheduleRepo,
	checkinRepo repos.CheckinRepo,
) *ChatService {
	return &ChatService{
		db:           db,
		log:          log.With("service", "ChatService"),
		planner:      planner,
		sessionRepo:  sessionRepo,
		goalRepo:     goalRepo,
		scheduleRepo: scheduleRepo,
		checkinRepo:  checkinRepo,
	}
}

// Message runs one coaching turn: load planning context, call the coach
// persona, then append both sides of the exchange to the user's session.
func (s *ChatService) Message(ctx context.Context, input ChatMessageInput) (*ChatResponse, error) {
	if strings.TrimSpace(input.Message) == "" {
		return nil, apierr.New(400, "INVALID_MESSAGE", errors.New("message is required"))
	}

	contextDate := input.ContextDate
	if contextDate == "" {
		contextDate = time.Now().Format("2006-01-02")
	} else if _, err := time.Parse("2006-01-02", contextDate); err != nil {
		return nil, apierr.New(400, "INVALID_DATE", errors.New("context_date must be YYYY-MM-DD"))
	}

	var (
		goals          []types.Goal
		todayBlocks    []types.TimeBlock
		recentCheckins []types.DailyCheckin
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		goals, err = s.goalRepo.ListByUser(gctx, nil, input.UserID, "active")
		return err
	})
	g.Go(func() error {
		sched, err := s.scheduleRepo.GetByUserDate(gctx, nil, input.UserID, contextDate)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				todayBlocks = []types.TimeBlock{}
				return nil
			}
			return err
		}
		todayBlocks = decodeBlocks(sched.TimeBlocksJSON)
		return nil
	})
	g.Go(func() error {
		var err error
		recentCheckins, err = s.checkinRepo.ListRecent(gctx, nil, input.UserID, 3)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, apierr.New(500, "CHAT_CONTEXT_FAILED", err)
	}

	goalContext := make([]map[string]interface{}, 0, len(goals))
	for _, goal := range goals {
		goalContext = append(goalContext, map[string]interface{}{
			"title":            goal.Title,
			"progress_percent": goal.ProgressPercent,
			"priority":         goal.Priority,
		})
	}
	checkinContext := make([]map[string]interface{}, 0, len(recentCheckins))
	for _, c := range recentCheckins {
		checkinContext = append(checkinContext, map[string]interface{}{
			"energy_level": c.EnergyLevel,
			"mood_score":   c.MoodScore,
			"focus_score":  c.FocusScore,
		})
	}

	session, history := s.loadSession(ctx, input.UserID)
	if len(input.ConversationHistory) > 0 {
		history = input.ConversationHistory
	}

	coachContext := map[string]interface{}{
		"goals":           goalContext,
		"today_schedule":  todayBlocks,
		"recent_checkins": checkinContext,
		"date":            contextDate,
	}

	reply, _, err := s.planner.RunCoach(ctx, agent.BuildCoachPrompt(input.Message, coachContext, history))
	if err != nil {
		return nil, apierr.New(502, "COACH_FAILED", err)
	}

	nowStr := time.Now().UTC().Format(time.RFC3339)
	newHistory := append(history,
		types.ChatMessage{Role: "user", Content: input.Message, Timestamp: nowStr},
		types.ChatMessage{Role: "assistant", Content: reply.Reply, Timestamp: nowStr},
	)
	if err := s.saveSession(ctx, input.UserID, session, newHistory); err != nil {
		s.log.Warn("chat session save failed", "user_id", input.UserID.String(), "error", err)
	}

	return &ChatResponse{Reply: reply.Reply, SuggestedActions: reply.SuggestedActions}, nil
}

func (s *ChatService) History(ctx context.Context, userID uuid.UUID) ([]types.ChatMessage, error) {
	session, err := s.sessionRepo.GetByUser(ctx, nil, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []types.ChatMessage{}, nil
		}
		return nil, apierr.New(500, "CHAT_HISTORY_FAILED", err)
	}
	return decodeHistory(session.History), nil
}

func (s *ChatService) ClearHistory(ctx context.Context, userID uuid.UUID) error {
	if err := s.sessionRepo.DeleteByUser(ctx, nil, userID); err != nil {
		return apierr.New(500, "CHAT_CLEAR_FAILED", err)
	}
	return nil
}

func (s *ChatService) loadSession(ctx context.Context, userID uuid.UUID) (*types.ChatSession, []types.ChatMessage) {
	session, err := s.sessionRepo.GetByUser(ctx, nil, userID)
	if err != nil {
		return nil, []types.ChatMessage{}
	}
	return session, decodeHistory(session.History)
}

func (s *ChatService) saveSession(ctx context.Context, userID uuid.UUID, session *types.ChatSession, history []types.ChatMessage) error {
	raw, err := json.Marshal(history)
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	if session == nil {
		return s.sessionRepo.Create(ctx, nil, &types.ChatSession{
			ID:        uuid.New(),
			UserID:    userID,
			History:   raw,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}
	session.History = raw
	session.UpdatedAt = now
	return s.sessionRepo.Update(ctx, nil, session)
}

func decodeHistory(raw []byte) []types.ChatMessage {
	if len(raw) == 0 {
		return []types.ChatMessage{}
	}
	var history []types.ChatMessage
	if err := json.Unmarshal(raw, &history); err != nil {
		return []types.ChatMessage{}
	}
	return history
}
