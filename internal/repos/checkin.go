package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/daypilot-backend/internal/types"
)

type CheckinRepo interface {
	Create(ctx context.Context, tx *gorm.DB, checkin *types.DailyCheckin) error
	ListByUserSince(ctx context.Context, tx *gorm.DB, userID uuid.UUID, since string) ([]types.DailyCheckin, error)
	ListRecent(ctx context.Context, tx *gorm.DB, userID uuid.UUID, limit int) ([]types.DailyCheckin, error)
}

type checkinRepo struct {
	db *gorm.DB
}

func NewCheckinRepo(db *gorm.DB) CheckinRepo {
	return &checkinRepo{db: db}
}

func (r *checkinRepo) conn(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

func (r *checkinRepo) Create(ctx context.Context, tx *gorm.DB, checkin *types.DailyCheckin) error {
	return r.conn(tx).WithContext(ctx).Create(checkin).Error
}

func (r *checkinRepo) ListByUserSince(ctx context.Context, tx *gorm.DB, userID uuid.UUID, since string) ([]types.DailyCheckin, error) {
	var checkins []types.DailyCheckin
	err := r.conn(tx).WithContext(ctx).
		Where("user_id = ? AND date >= ?", userID, since).
		Order("date ASC").
		Find(&checkins).Error
	if err != nil {
		return nil, err
	}
	return checkins, nil
}

func (r *checkinRepo) ListRecent(ctx context.Context, tx *gorm.DB, userID uuid.UUID, limit int) ([]types.DailyCheckin, error) {
	if limit <= 0 {
		limit = 3
	}
	var checkins []types.DailyCheckin
	err := r.conn(tx).WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC, created_at DESC").
		Limit(limit).
		Find(&checkins).Error
	if err != nil {
		return nil, err
	}
	return checkins, nil
}
