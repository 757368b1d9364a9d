package agent

import (
	"regexp"

	"github.com/google/uuid"

	"github.com/yungbote/daypilot-backend/internal/types"
)

var hhmmRE = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// ValidHHMM reports whether s is a zero-padded 24h clock time.
func ValidHHMM(s string) bool {
	return hhmmRE.MatchString(s)
}

// NormalizeTimeBlocks repairs model-produced blocks in place of rejecting
// them: missing block IDs get fresh UUIDs, out-of-vocabulary enums clamp to
// safe defaults, and malformed clock times collapse to "00:00". Block order is
// preserved as the model emitted it.
func NormalizeTimeBlocks(blocks []types.TimeBlock) []types.TimeBlock {
	out := make([]types.TimeBlock, 0, len(blocks))
	for _, b := range blocks {
		if b.BlockID == "" {
			b.BlockID = uuid.NewString()
		}
		if !ValidHHMM(b.StartTime) {
			b.StartTime = "00:00"
		}
		if !ValidHHMM(b.EndTime) {
			b.EndTime = "00:00"
		}
		if b.Category == "" {
			b.Category = "other"
		}
		if !b.Priority.Valid() {
			b.Priority = types.PriorityMedium
		}
		if !b.EnergyRequired.Valid() {
			b.EnergyRequired = types.EnergyMedium
		}
		if !b.Status.Valid() {
			b.Status = types.TaskPending
		}
		out = append(out, b)
	}
	return out
}
