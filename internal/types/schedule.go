package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// TimeBlock is one scheduled interval of a day. Blocks live inside the
// schedule's time_blocks JSON blob, not in their own table.
type TimeBlock struct {
	BlockID               string      `json:"block_id"`
	Title                 string      `json:"title"`
	Description           string      `json:"description,omitempty"`
	StartTime             string      `json:"start_time"` // HH:MM
	EndTime               string      `json:"end_time"`   // HH:MM
	Category              string      `json:"category"`
	GoalID                string      `json:"goal_id,omitempty"`
	Priority              Priority    `json:"priority"`
	EnergyRequired        EnergyLevel `json:"energy_required"`
	Status                TaskStatus  `json:"status"`
	IsFlexible            bool        `json:"is_flexible"`
	CompletionNote        string      `json:"completion_note,omitempty"`
	ActualDurationMinutes int         `json:"actual_duration_minutes,omitempty"`
}

type Schedule struct {
	ID             uuid.UUID      `gorm:"type:uuid;primaryKey" json:"schedule_id"`
	UserID         uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:uniq_schedule_user_date" json:"user_id"`
	Date           string         `gorm:"column:date;not null;uniqueIndex:uniq_schedule_user_date" json:"date"` // YYYY-MM-DD
	TimeBlocksJSON datatypes.JSON `gorm:"type:jsonb;column:time_blocks" json:"-"`
	TotalWorkHours float64        `gorm:"column:total_work_hours;not null;default:0" json:"total_work_hours"`
	AINotes        string         `gorm:"column:ai_notes" json:"ai_notes,omitempty"`
	CreatedAt      time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt      time.Time      `gorm:"not null" json:"updated_at"`

	// Decoded view of TimeBlocksJSON, populated by the schedule service.
	TimeBlocks []TimeBlock `gorm:"-" json:"time_blocks"`
}

func (Schedule) TableName() string {
	return "schedules"
}
