package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/yungbote/daypilot-backend/internal/types"
)

type ScheduleRepo interface {
	Upsert(ctx context.Context, tx *gorm.DB, schedule *types.Schedule) error
	GetByUserDate(ctx context.Context, tx *gorm.DB, userID uuid.UUID, date string) (*types.Schedule, error)
	ListByUserRange(ctx context.Context, tx *gorm.DB, userID uuid.UUID, from, to string) ([]types.Schedule, error)
	Update(ctx context.Context, tx *gorm.DB, schedule *types.Schedule) error
}

type scheduleRepo struct {
	db *gorm.DB
}

func NewScheduleRepo(db *gorm.DB) ScheduleRepo {
	return &scheduleRepo{db: db}
}

func (r *scheduleRepo) conn(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

// Upsert replaces the existing schedule for (user_id, date) if one exists.
// Regenerating a day is a full overwrite, not a merge: the id is reassigned
// too, so the stored row always matches what the caller was handed back.
func (r *scheduleRepo) Upsert(ctx context.Context, tx *gorm.DB, schedule *types.Schedule) error {
	return r.conn(tx).WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"id", "time_blocks", "total_work_hours", "ai_notes", "created_at", "updated_at",
		}),
	}).Create(schedule).Error
}

func (r *scheduleRepo) GetByUserDate(ctx context.Context, tx *gorm.DB, userID uuid.UUID, date string) (*types.Schedule, error) {
	var schedule types.Schedule
	err := r.conn(tx).WithContext(ctx).
		First(&schedule, "user_id = ? AND date = ?", userID, date).Error
	if err != nil {
		return nil, err
	}
	return &schedule, nil
}

func (r *scheduleRepo) ListByUserRange(ctx context.Context, tx *gorm.DB, userID uuid.UUID, from, to string) ([]types.Schedule, error) {
	var schedules []types.Schedule
	err := r.conn(tx).WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date <= ?", userID, from, to).
		Order("date ASC").
		Find(&schedules).Error
	if err != nil {
		return nil, err
	}
	return schedules, nil
}

func (r *scheduleRepo) Update(ctx context.Context, tx *gorm.DB, schedule *types.Schedule) error {
	return r.conn(tx).WithContext(ctx).Save(schedule).Error
}
