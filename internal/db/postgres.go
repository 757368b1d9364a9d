package db

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/yungbote/daypilot-backend/internal/platform/envutil"
	"github.com/yungbote/daypilot-backend/internal/platform/logger"
	"github.com/yungbote/daypilot-backend/internal/types"
)

// PostgresService owns the gorm handle. DB_DRIVER=sqlite swaps in a local
// file-backed database for development and tests; the default is postgres.
type PostgresService struct {
	DB  *gorm.DB
	log *logger.Logger
}

func NewPostgresService(log *logger.Logger) (*PostgresService, error) {
	driver := envutil.Str("DB_DRIVER", "postgres")

	var dialector gorm.Dialector
	switch driver {
	case "sqlite":
		dialector = sqlite.Open(envutil.Str("DB_PATH", "daypilot.db"))
	case "postgres":
		dsn := envutil.Str("DATABASE_URL", "")
		if dsn == "" {
			dsn = fmt.Sprintf(
				"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
				envutil.Str("DB_HOST", "localhost"),
				envutil.Str("DB_PORT", "5432"),
				envutil.Str("DB_USER", "postgres"),
				envutil.Str("DB_PASSWORD", ""),
				envutil.Str("DB_NAME", "daypilot"),
				envutil.Str("DB_SSLMODE", "disable"),
			)
		}
		dialector = postgres.Open(dsn)
	default:
		return nil, fmt.Errorf("db: unknown DB_DRIVER %q", driver)
	}

	gdb, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("db: open %s: %w", driver, err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, fmt.Errorf("db: unwrap sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(envutil.Int("DB_MAX_OPEN_CONNS", 25))
	sqlDB.SetMaxIdleConns(envutil.Int("DB_MAX_IDLE_CONNS", 5))
	sqlDB.SetConnMaxLifetime(time.Duration(envutil.Int("DB_CONN_MAX_LIFETIME_MINUTES", 30)) * time.Minute)

	log.Info("database connected", "driver", driver)
	return &PostgresService{DB: gdb, log: log}, nil
}

// AutoMigrateAll creates or updates every table the app persists to.
func (s *PostgresService) AutoMigrateAll() error {
	if err := s.DB.AutoMigrate(
		&types.User{},
		&types.Goal{},
		&types.Schedule{},
		&types.Habit{},
		&types.HabitLog{},
		&types.DailyCheckin{},
		&types.ChatSession{},
	); err != nil {
		return fmt.Errorf("db: automigrate: %w", err)
	}
	s.log.Info("database migrated")
	return nil
}

func (s *PostgresService) Close() error {
	sqlDB, err := s.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
