package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/daypilot-backend/internal/types"
)

type HabitLogRepo interface {
	Create(ctx context.Context, tx *gorm.DB, log *types.HabitLog) error
	ListByUserSince(ctx context.Context, tx *gorm.DB, userID uuid.UUID, since string) ([]types.HabitLog, error)
	CountCompleted(ctx context.Context, tx *gorm.DB, habitID uuid.UUID) (int64, int64, error)
	DeleteByHabit(ctx context.Context, tx *gorm.DB, habitID uuid.UUID) error
}

type habitLogRepo struct {
	db *gorm.DB
}

func NewHabitLogRepo(db *gorm.DB) HabitLogRepo {
	return &habitLogRepo{db: db}
}

func (r *habitLogRepo) conn(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

func (r *habitLogRepo) Create(ctx context.Context, tx *gorm.DB, log *types.HabitLog) error {
	return r.conn(tx).WithContext(ctx).Create(log).Error
}

func (r *habitLogRepo) ListByUserSince(ctx context.Context, tx *gorm.DB, userID uuid.UUID, since string) ([]types.HabitLog, error) {
	var logs []types.HabitLog
	err := r.conn(tx).WithContext(ctx).
		Where("user_id = ? AND date >= ?", userID, since).
		Order("date ASC").
		Find(&logs).Error
	if err != nil {
		return nil, err
	}
	return logs, nil
}

// CountCompleted returns (completed, total) log counts for a habit.
func (r *habitLogRepo) CountCompleted(ctx context.Context, tx *gorm.DB, habitID uuid.UUID) (int64, int64, error) {
	var total, completed int64
	conn := r.conn(tx).WithContext(ctx).Model(&types.HabitLog{})
	if err := conn.Where("habit_id = ?", habitID).Count(&total).Error; err != nil {
		return 0, 0, err
	}
	conn = r.conn(tx).WithContext(ctx).Model(&types.HabitLog{})
	if err := conn.Where("habit_id = ? AND completed = ?", habitID, true).Count(&completed).Error; err != nil {
		return 0, 0, err
	}
	return completed, total, nil
}

func (r *habitLogRepo) DeleteByHabit(ctx context.Context, tx *gorm.DB, habitID uuid.UUID) error {
	return r.conn(tx).WithContext(ctx).Delete(&types.HabitLog{}, "habit_id = ?", habitID).Error
}
