package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/daypilot-backend/internal/types"
)

type GoalRepo interface {
	Create(ctx context.Context, tx *gorm.DB, goal *types.Goal) error
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Goal, error)
	ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID, status string) ([]types.Goal, error)
	Update(ctx context.Context, tx *gorm.DB, goal *types.Goal) error
	Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
}

type goalRepo struct {
	db *gorm.DB
}

func NewGoalRepo(db *gorm.DB) GoalRepo {
	return &goalRepo{db: db}
}

func (r *goalRepo) conn(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

func (r *goalRepo) Create(ctx context.Context, tx *gorm.DB, goal *types.Goal) error {
	return r.conn(tx).WithContext(ctx).Create(goal).Error
}

func (r *goalRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Goal, error) {
	var goal types.Goal
	if err := r.conn(tx).WithContext(ctx).First(&goal, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &goal, nil
}

// ListByUser returns the user's goals newest-first. An empty status matches
// every status.
func (r *goalRepo) ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID, status string) ([]types.Goal, error) {
	q := r.conn(tx).WithContext(ctx).Where("user_id = ?", userID)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var goals []types.Goal
	if err := q.Order("created_at DESC").Find(&goals).Error; err != nil {
		return nil, err
	}
	return goals, nil
}

func (r *goalRepo) Update(ctx context.Context, tx *gorm.DB, goal *types.Goal) error {
	return r.conn(tx).WithContext(ctx).Save(goal).Error
}

func (r *goalRepo) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	return r.conn(tx).WithContext(ctx).Delete(&types.Goal{}, "id = ?", id).Error
}
