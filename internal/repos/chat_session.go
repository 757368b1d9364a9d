package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/daypilot-backend/internal/types"
)

type ChatSessionRepo interface {
	Create(ctx context.Context, tx *gorm.DB, session *types.ChatSession) error
	GetByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*types.ChatSession, error)
	Update(ctx context.Context, tx *gorm.DB, session *types.ChatSession) error
	DeleteByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) error
}

type chatSessionRepo struct {
	db *gorm.DB
}

func NewChatSessionRepo(db *gorm.DB) ChatSessionRepo {
	return &chatSessionRepo{db: db}
}

func (r *chatSessionRepo) conn(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

func (r *chatSessionRepo) Create(ctx context.Context, tx *gorm.DB, session *types.ChatSession) error {
	return r.conn(tx).WithContext(ctx).Create(session).Error
}

func (r *chatSessionRepo) GetByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*types.ChatSession, error) {
	var session types.ChatSession
	if err := r.conn(tx).WithContext(ctx).First(&session, "user_id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *chatSessionRepo) Update(ctx context.Context, tx *gorm.DB, session *types.ChatSession) error {
	return r.conn(tx).WithContext(ctx).Save(session).Error
}

func (r *chatSessionRepo) DeleteByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) error {
	return r.conn(tx).WithContext(ctx).Delete(&types.ChatSession{}, "user_id = ?", userID).Error
}
