package types

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID                    uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	Name                  string    `gorm:"not null;column:name" json:"name"`
	WakeTime              string    `gorm:"column:wake_time;not null;default:'06:30'" json:"wake_time"`
	SleepTime             string    `gorm:"column:sleep_time;not null;default:'22:30'" json:"sleep_time"`
	PeakEnergyPeriod      string    `gorm:"column:peak_energy_period;not null;default:'morning'" json:"peak_energy_period"`
	AvailableHoursPerDay  float64   `gorm:"column:available_hours_per_day;not null;default:8" json:"available_hours_per_day"`
	WorkStart             string    `gorm:"column:work_start;not null;default:'09:00'" json:"work_start"`
	WorkEnd               string    `gorm:"column:work_end;not null;default:'17:00'" json:"work_end"`
	Timezone              string    `gorm:"column:timezone;not null;default:'UTC'" json:"timezone"`
	DeepWorkPreference    bool      `gorm:"column:deep_work_preference;not null;default:true" json:"deep_work_preference"`
	BreakFrequencyMinutes int       `gorm:"column:break_frequency_minutes;not null;default:90" json:"break_frequency_minutes"`
	CreatedAt             time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt             time.Time `gorm:"not null" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
