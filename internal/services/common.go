package services

import (
	"encoding/json"
	"strconv"
	"strings"

	"gorm.io/datatypes"

	"github.com/yungbote/daypilot-backend/internal/types"
)

// profileForPrompt flattens a user row into the JSON shape prompts embed.
func profileForPrompt(u *types.User) map[string]interface{} {
	return map[string]interface{}{
		"user_id":                 u.ID.String(),
		"name":                    u.Name,
		"wake_time":               u.WakeTime,
		"sleep_time":              u.SleepTime,
		"peak_energy_period":      u.PeakEnergyPeriod,
		"available_hours_per_day": u.AvailableHoursPerDay,
		"work_start":              u.WorkStart,
		"work_end":                u.WorkEnd,
		"timezone":                u.Timezone,
		"deep_work_preference":    u.DeepWorkPreference,
		"break_frequency_minutes": u.BreakFrequencyMinutes,
	}
}

// goalForSchedulePrompt keeps the scheduling prompt small: only the fields the
// model needs to allocate time.
func goalForSchedulePrompt(g types.Goal) map[string]interface{} {
	target := interface{}(nil)
	if g.TargetDate != "" {
		target = g.TargetDate
	}
	return map[string]interface{}{
		"goal_id":               g.ID.String(),
		"title":                 g.Title,
		"category":              g.Category,
		"priority":              g.Priority,
		"target_date":           target,
		"daily_time_budget_min": g.DailyTimeBudgetMinutes,
		"progress_percent":      g.ProgressPercent,
	}
}

func decodeBlocks(raw datatypes.JSON) []types.TimeBlock {
	if len(raw) == 0 {
		return []types.TimeBlock{}
	}
	var blocks []types.TimeBlock
	if err := json.Unmarshal(raw, &blocks); err != nil {
		return []types.TimeBlock{}
	}
	return blocks
}

func encodeBlocks(blocks []types.TimeBlock) datatypes.JSON {
	if blocks == nil {
		blocks = []types.TimeBlock{}
	}
	b, err := json.Marshal(blocks)
	if err != nil {
		return datatypes.JSON([]byte("[]"))
	}
	return datatypes.JSON(b)
}

// minutesOfDay parses "HH:MM" into minutes since midnight. Malformed input
// reads as 0, matching the lenient handling of model output elsewhere.
func minutesOfDay(hhmm string) int {
	parts := strings.SplitN(strings.TrimSpace(hhmm), ":", 2)
	if len(parts) != 2 {
		return 0
	}
	h, err1 := strconv.Atoi(parts[0])
	m, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil {
		return 0
	}
	return h*60 + m
}

// blockDurationHours is the non-negative span of a block in hours.
func blockDurationHours(b types.TimeBlock) float64 {
	d := float64(minutesOfDay(b.EndTime)-minutesOfDay(b.StartTime)) / 60.0
	if d < 0 {
		return 0
	}
	return d
}
