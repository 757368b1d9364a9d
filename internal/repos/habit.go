package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/daypilot-backend/internal/types"
)

type HabitRepo interface {
	Create(ctx context.Context, tx *gorm.DB, habit *types.Habit) error
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Habit, error)
	ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]types.Habit, error)
	Update(ctx context.Context, tx *gorm.DB, habit *types.Habit) error
	Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
}

type habitRepo struct {
	db *gorm.DB
}

func NewHabitRepo(db *gorm.DB) HabitRepo {
	return &habitRepo{db: db}
}

func (r *habitRepo) conn(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

func (r *habitRepo) Create(ctx context.Context, tx *gorm.DB, habit *types.Habit) error {
	return r.conn(tx).WithContext(ctx).Create(habit).Error
}

func (r *habitRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Habit, error) {
	var habit types.Habit
	if err := r.conn(tx).WithContext(ctx).First(&habit, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &habit, nil
}

func (r *habitRepo) ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]types.Habit, error) {
	var habits []types.Habit
	err := r.conn(tx).WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&habits).Error
	if err != nil {
		return nil, err
	}
	return habits, nil
}

func (r *habitRepo) Update(ctx context.Context, tx *gorm.DB, habit *types.Habit) error {
	return r.conn(tx).WithContext(ctx).Save(habit).Error
}

func (r *habitRepo) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	return r.conn(tx).WithContext(ctx).Delete(&types.Habit{}, "id = ?", id).Error
}
