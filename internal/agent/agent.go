package agent

import (
	"context"
	"fmt"

	"github.com/yungbote/daypilot-backend/internal/platform/logger"
)

// TextGenerator is the one capability the planner needs from a model backend.
type TextGenerator interface {
	GenerateText(ctx context.Context, system string, user string) (string, error)
}

const plannerSystemPrompt = `You are DayPilot, an elite AI personal productivity strategist.

Your role is to help users achieve their goals by:
1. Building optimized, energy-aware daily schedules with time blocks
2. Creating step-by-step goal roadmaps with realistic timelines
3. Designing atomic habit systems aligned to goals
4. Adaptively rescheduling when plans change
5. Detecting burnout risk and recommending recovery strategies
6. Simulating what-if scenarios to help users make informed decisions

Principles:
- Match cognitively demanding tasks to the user's peak energy hours
- Always leave buffer time (min 15 min between blocks)
- Respect constraints: meetings, sleep, meals, breaks
- Prioritize by urgency x importance
- Be realistic, never overload a schedule
- Format all schedules as JSON time_blocks arrays
- Be motivating but honest about tradeoffs

When generating schedules, ALWAYS return valid JSON.
When the user provides context or constraints, honor them first.`

const coachSystemPrompt = `You are DayPilot Coach, an empathetic AI accountability partner.

Your personality: Warm, direct, data-driven, never preachy.

Your responsibilities:
- Daily check-ins and motivation
- Celebrate wins (streaks, completions)
- Identify blockers and suggest fixes
- Nudge toward priorities when the user is drifting
- Provide actionable micro-advice, not generic platitudes

Always respond in a conversational tone.
When you detect a scheduling issue, suggest a concrete fix.
Return your response as JSON: {"reply": "...", "suggested_actions": [...]}`

// Planner fronts the model for every AI capability in the app. Callers build a
// prompt (see prompts.go), run it, and extract what they need from the reply.
type Planner struct {
	client TextGenerator
	log    *logger.Logger
}

func NewPlanner(client TextGenerator, log *logger.Logger) *Planner {
	return &Planner{
		client: client,
		log:    log.With("component", "planner_agent"),
	}
}

// RunPlanner sends a prompt under the planner persona and returns the raw text.
func (p *Planner) RunPlanner(ctx context.Context, prompt string) (string, error) {
	out, err := p.client.GenerateText(ctx, plannerSystemPrompt, prompt)
	if err != nil {
		return "", fmt.Errorf("planner: %w", err)
	}
	return out, nil
}

// CoachReply is the structured shape the coach persona is instructed to emit.
type CoachReply struct {
	Reply            string   `json:"reply"`
	SuggestedActions []string `json:"suggested_actions"`
}

// RunCoach sends a prompt under the coach persona. A reply that fails to parse
// as JSON is still usable: the raw text becomes the reply and the extraction
// reports the fallback.
func (p *Planner) RunCoach(ctx context.Context, prompt string) (CoachReply, Extraction, error) {
	out, err := p.client.GenerateText(ctx, coachSystemPrompt, prompt)
	if err != nil {
		return CoachReply{}, Extraction{}, fmt.Errorf("coach: %w", err)
	}
	var reply CoachReply
	ext := ExtractJSON(out, &reply)
	if !ext.OK() {
		p.log.Warn("coach reply not valid JSON, using raw text", "error", ext.Err)
		reply = CoachReply{Reply: out, SuggestedActions: []string{}}
	}
	if reply.SuggestedActions == nil {
		reply.SuggestedActions = []string{}
	}
	return reply, ext, nil
}
