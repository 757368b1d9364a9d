package types

import (
	"time"

	"github.com/google/uuid"
)

// Habit optionally references a goal; deleting the goal leaves the reference
// dangling (no cascade is defined for it).
type Habit struct {
	ID              uuid.UUID      `gorm:"type:uuid;primaryKey" json:"habit_id"`
	UserID          uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Title           string         `gorm:"not null;column:title" json:"title"`
	Description     string         `gorm:"column:description" json:"description"`
	GoalID          *uuid.UUID     `gorm:"type:uuid;column:goal_id" json:"goal_id,omitempty"`
	Frequency       HabitFrequency `gorm:"column:frequency;not null;default:'daily'" json:"frequency"`
	PreferredTime   string         `gorm:"column:preferred_time" json:"preferred_time,omitempty"`
	DurationMinutes int            `gorm:"column:duration_minutes;not null;default:15" json:"duration_minutes"`
	Reminder        bool           `gorm:"column:reminder;not null;default:true" json:"reminder"`
	Cue             string         `gorm:"column:cue" json:"cue,omitempty"`
	Reward          string         `gorm:"column:reward" json:"reward,omitempty"`
	StreakCount     int            `gorm:"column:streak_count;not null;default:0" json:"streak_count"`
	CompletionRate  float64        `gorm:"column:completion_rate;not null;default:0" json:"completion_rate"`
	LastCompleted   string         `gorm:"column:last_completed" json:"last_completed,omitempty"` // YYYY-MM-DD
	CreatedAt       time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt       time.Time      `gorm:"not null" json:"updated_at"`
}

func (Habit) TableName() string {
	return "habits"
}
