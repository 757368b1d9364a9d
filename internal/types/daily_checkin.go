package types

import (
	"time"

	"github.com/google/uuid"
)

type DailyCheckin struct {
	ID          uuid.UUID   `gorm:"type:uuid;primaryKey" json:"checkin_id"`
	UserID      uuid.UUID   `gorm:"type:uuid;not null;index" json:"user_id"`
	Date        string      `gorm:"column:date;not null;index" json:"date"` // YYYY-MM-DD
	EnergyLevel EnergyLevel `gorm:"column:energy_level;not null" json:"energy_level"`
	MoodScore   int         `gorm:"column:mood_score;not null" json:"mood_score"`   // 1-10
	FocusScore  int         `gorm:"column:focus_score;not null" json:"focus_score"` // 1-10
	Notes       string      `gorm:"column:notes" json:"notes,omitempty"`
	CreatedAt   time.Time   `gorm:"not null" json:"created_at"`
}

func (DailyCheckin) TableName() string {
	return "daily_checkins"
}
