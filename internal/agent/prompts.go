package agent

import (
	"encoding/json"
	"fmt"
	"strings"
)

// mustJSON renders v as indented JSON for prompt embedding. Marshal failures
// degrade to an empty object rather than aborting the prompt build.
func mustJSON(v interface{}) string {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "{}"
	}
	return string(b)
}

func mustJSONCompact(v interface{}) string {
	b, err := json.Marshal(v)
	if err != nil {
		return "{}"
	}
	return string(b)
}

// BuildSchedulePrompt asks for a full time-blocked day. The schema in the
// prompt is the contract the schedule service normalizes against.
func BuildSchedulePrompt(date string, profile interface{}, goals interface{}, context string) string {
	if strings.TrimSpace(context) == "" {
		context = "None"
	}
	return strings.TrimSpace(fmt.Sprintf(`
Generate a complete time-blocked daily schedule for %s.

USER PROFILE:
%s

ACTIVE GOALS:
%s

EXTRA CONTEXT:
%s

Return a JSON object with this exact schema:
{
  "time_blocks": [
    {
      "block_id": "<uuid>",
      "title": "<task name>",
      "description": "<brief description>",
      "start_time": "HH:MM",
      "end_time": "HH:MM",
      "category": "<work|study|fitness|meal|break|personal>",
      "goal_id": "<goal_id or null>",
      "priority": "<low|medium|high|urgent>",
      "energy_required": "<low|medium|high>",
      "status": "pending",
      "is_flexible": true
    }
  ],
  "total_work_hours": <float>,
  "ai_notes": "<scheduling rationale>"
}

Rules:
- Sort blocks chronologically
- Start from wake_time, end by sleep_time
- Include meals and breaks
- Cluster high-energy tasks in peak_energy_period
- Never schedule back-to-back focus blocks over 90 minutes without a break
- Assign block_id as a new UUID for each block`,
		date, mustJSON(profile), mustJSON(goals), context))
}

// BuildRoadmapPrompt asks for weekly milestones for a single goal.
func BuildRoadmapPrompt(goal interface{}, profile interface{}, dailyBudgetMinutes int) string {
	return strings.TrimSpace(fmt.Sprintf(`
Create a detailed step-by-step roadmap to achieve this goal:

GOAL:
%s

USER PROFILE:
%s

Return a JSON array of weekly milestones:
[
  {
    "week": 1,
    "theme": "<focus theme>",
    "target": "<specific measurable target>",
    "daily_actions": ["action1", "action2"],
    "success_metric": "<how to know this week is done>"
  }
]

Be specific, realistic, and motivating.
If target_date is set, work backwards to fit the timeline.
Daily time budget: %d minutes/day.`,
		mustJSON(goal), mustJSON(profile), dailyBudgetMinutes))
}

// BuildHabitSuggestPrompt asks for five cue-routine-reward habits.
func BuildHabitSuggestPrompt(goals interface{}, profile interface{}) string {
	return strings.TrimSpace(fmt.Sprintf(`
Suggest 5 atomic habits for this user based on their goals.

GOALS: %s
PROFILE: %s

Return a JSON array:
[
  {
    "title": "...",
    "description": "...",
    "cue": "<trigger>",
    "routine": "<exact action>",
    "reward": "<immediate reward>",
    "duration_minutes": <int>,
    "best_time": "HH:MM",
    "linked_goal": "<goal title>"
  }
]`,
		mustJSONCompact(goals), mustJSONCompact(profile)))
}

// BuildReschedulePrompt asks for a rebuild of the rest of the day after missed
// blocks. Block IDs must survive the round trip.
func BuildReschedulePrompt(now string, missed interface{}, missedCount int, remaining interface{}) string {
	return strings.TrimSpace(fmt.Sprintf(`
The user has missed %d scheduled blocks today.
Current time: %s

MISSED BLOCKS:
%s

REMAINING PENDING BLOCKS:
%s

Reorganize the remaining blocks into the rest of the day.
Keep high-priority items. Drop or defer low-priority ones if time is tight.
Return JSON: {"time_blocks": [...], "total_work_hours": float, "ai_notes": "..."}
Each block must keep its original block_id.`,
		missedCount, now, mustJSON(missed), mustJSON(remaining)))
}

// BuildSimulationPrompt asks for a what-if projection over a timeframe.
func BuildSimulationPrompt(scenario string, timeframeDays int, goals interface{}, profile interface{}) string {
	return strings.TrimSpace(fmt.Sprintf(`
Simulate this scenario for the user:

SCENARIO: %s
TIMEFRAME: %d days

CURRENT GOALS:
%s

USER PROFILE:
%s

Return JSON:
{
  "scenario": "...",
  "projected_goal_completion": {"goal_title": "projected_date"},
  "time_reallocation": {"category": "hours_per_week"},
  "tradeoffs": ["tradeoff1", "tradeoff2"],
  "recommendation": "..."
}`,
		scenario, timeframeDays, mustJSON(goals), mustJSON(profile)))
}

// BuildCoachPrompt wraps a chat turn with the user's planning context.
func BuildCoachPrompt(message string, context interface{}, history interface{}) string {
	return strings.TrimSpace(fmt.Sprintf(`
USER MESSAGE: %s

USER CONTEXT:
%s

CONVERSATION HISTORY:
%s

Respond as DayPilot Coach. Be concise, actionable, and empathetic.
Return JSON: {"reply": "...", "suggested_actions": ["action1", "action2"]}`,
		message, mustJSON(context), mustJSON(history)))
}

// BuildInsightsPrompt asks for a short plain-text readout of a period summary.
func BuildInsightsPrompt(
	period string,
	completionRate float64,
	goalsOnTrack []string,
	goalsAtRisk []string,
	burnoutRisk float64,
	timeAllocation map[string]float64,
	habitStreaks map[string]int,
) string {
	return strings.TrimSpace(fmt.Sprintf(`
Analyze this user's %s productivity data and provide 3 concise, actionable insights:

COMPLETION RATE: %.0f%%
GOALS ON TRACK: %s
GOALS AT RISK: %s
BURNOUT RISK SCORE: %.2f (0=none, 1=high)
TIME ALLOCATION: %s
HABIT STREAKS: %s

Be specific and encouraging. Under 150 words. Plain text only.`,
		period, completionRate*100,
		mustJSONCompact(goalsOnTrack), mustJSONCompact(goalsAtRisk),
		burnoutRisk,
		mustJSONCompact(timeAllocation), mustJSONCompact(habitStreaks)))
}
