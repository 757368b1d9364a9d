package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Goal struct {
	ID                     uuid.UUID      `gorm:"type:uuid;primaryKey" json:"goal_id"`
	UserID                 uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Title                  string         `gorm:"not null;column:title" json:"title"`
	Description            string         `gorm:"column:description" json:"description"`
	Category               GoalCategory   `gorm:"column:category;not null" json:"category"`
	Priority               Priority       `gorm:"column:priority;not null;default:'medium'" json:"priority"`
	TargetDate             string         `gorm:"column:target_date" json:"target_date,omitempty"` // YYYY-MM-DD, empty = open-ended
	DailyTimeBudgetMinutes int            `gorm:"column:daily_time_budget_minutes;not null;default:60" json:"daily_time_budget_minutes"`
	Milestones             datatypes.JSON `gorm:"type:jsonb;column:milestones" json:"milestones"` // []string
	Roadmap                datatypes.JSON `gorm:"type:jsonb;column:roadmap" json:"roadmap"`       // []RoadmapWeek
	ProgressPercent        float64        `gorm:"column:progress_percent;not null;default:0" json:"progress_percent"`
	Status                 string         `gorm:"column:status;not null;default:'active';index" json:"status"` // active|done|archived
	CreatedAt              time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt              time.Time      `gorm:"not null" json:"updated_at"`
}

func (Goal) TableName() string {
	return "goals"
}

// RoadmapWeek is one weekly milestone in an AI-generated goal roadmap.
type RoadmapWeek struct {
	Week          int      `json:"week"`
	Theme         string   `json:"theme"`
	Target        string   `json:"target"`
	DailyActions  []string `json:"daily_actions"`
	SuccessMetric string   `json:"success_metric"`
}
