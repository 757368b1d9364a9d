package agent

import (
	"context"
	"strings"
	"testing"

	"github.com/yungbote/daypilot-backend/internal/platform/logger"
)

type stubGenerator struct {
	reply string
	err   error
}

func (s *stubGenerator) GenerateText(ctx context.Context, system, user string) (string, error) {
	return s.reply, s.err
}

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("dev")
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	return log
}

func TestRunCoachParsesStructuredReply(t *testing.T) {
	planner := NewPlanner(&stubGenerator{
		reply: "```json\n{\"reply\": \"Nice streak!\", \"suggested_actions\": [\"review goals\"]}\n```",
	}, testLogger(t))

	reply, ext, err := planner.RunCoach(context.Background(), "how am I doing?")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ext.OK() {
		t.Fatalf("expected clean extraction, got %v", ext.Status)
	}
	if reply.Reply != "Nice streak!" || len(reply.SuggestedActions) != 1 {
		t.Fatalf("unexpected reply: %+v", reply)
	}
}

func TestRunCoachFallsBackToRawText(t *testing.T) {
	raw := "You're doing great, keep the morning blocks."
	planner := NewPlanner(&stubGenerator{reply: raw}, testLogger(t))

	reply, ext, err := planner.RunCoach(context.Background(), "hi")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ext.OK() {
		t.Fatalf("expected fallback extraction")
	}
	if reply.Reply != raw {
		t.Fatalf("fallback must surface the raw text, got %q", reply.Reply)
	}
	if reply.SuggestedActions == nil || len(reply.SuggestedActions) != 0 {
		t.Fatalf("fallback must yield an empty action list, got %v", reply.SuggestedActions)
	}
}

func TestBuildSchedulePromptDefaultsContext(t *testing.T) {
	prompt := BuildSchedulePrompt("2026-08-29", map[string]interface{}{"name": "Ada"}, nil, "  ")
	if !strings.Contains(prompt, "2026-08-29") {
		t.Fatalf("prompt must carry the target date")
	}
	if !strings.Contains(prompt, "EXTRA CONTEXT:\nNone") {
		t.Fatalf("blank context must render as None")
	}
}
