package types

import (
	"time"

	"github.com/google/uuid"
)

type HabitLog struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"log_id"`
	HabitID   uuid.UUID `gorm:"type:uuid;not null;index" json:"habit_id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Date      string    `gorm:"column:date;not null" json:"date"` // YYYY-MM-DD
	Completed bool      `gorm:"column:completed;not null" json:"completed"`
	Note      string    `gorm:"column:note" json:"note,omitempty"`
	CreatedAt time.Time `gorm:"not null" json:"logged_at"`
}

func (HabitLog) TableName() string {
	return "habit_logs"
}
