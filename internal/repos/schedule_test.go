package repos

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/yungbote/daypilot-backend/internal/types"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := db.AutoMigrate(&types.Schedule{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

func testSchedule(userID uuid.UUID, date, notes string, hours float64) *types.Schedule {
	now := time.Now().UTC()
	return &types.Schedule{
		ID:             uuid.New(),
		UserID:         userID,
		Date:           date,
		TimeBlocksJSON: []byte(`[]`),
		TotalWorkHours: hours,
		AINotes:        notes,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func TestScheduleUpsertReplacesRowForUserDate(t *testing.T) {
	db := newTestDB(t)
	repo := NewScheduleRepo(db)
	ctx := context.Background()
	userID := uuid.New()

	first := testSchedule(userID, "2026-08-29", "v1", 2)
	if err := repo.Upsert(ctx, nil, first); err != nil {
		t.Fatalf("first upsert: %v", err)
	}
	second := testSchedule(userID, "2026-08-29", "v2", 5)
	if err := repo.Upsert(ctx, nil, second); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	var count int64
	if err := db.Model(&types.Schedule{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected one row per (user, date), got %d", count)
	}

	stored, err := repo.GetByUserDate(ctx, nil, userID, "2026-08-29")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if stored.ID != second.ID {
		t.Fatalf("stored id %s must match the id returned to the caller %s", stored.ID, second.ID)
	}
	if stored.AINotes != "v2" || stored.TotalWorkHours != 5 {
		t.Fatalf("regeneration must overwrite the row, got notes=%q hours=%v", stored.AINotes, stored.TotalWorkHours)
	}
}

func TestScheduleUpsertKeepsOtherDates(t *testing.T) {
	db := newTestDB(t)
	repo := NewScheduleRepo(db)
	ctx := context.Background()
	userID := uuid.New()

	if err := repo.Upsert(ctx, nil, testSchedule(userID, "2026-08-29", "a", 1)); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if err := repo.Upsert(ctx, nil, testSchedule(userID, "2026-08-30", "b", 2)); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	schedules, err := repo.ListByUserRange(ctx, nil, userID, "2026-08-29", "2026-08-30")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(schedules) != 2 {
		t.Fatalf("distinct dates must stay distinct rows, got %d", len(schedules))
	}
}
