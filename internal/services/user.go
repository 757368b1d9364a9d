package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/daypilot-backend/internal/platform/apierr"
	"github.com/yungbote/daypilot-backend/internal/platform/logger"
	"github.com/yungbote/daypilot-backend/internal/repos"
	"github.com/yungbote/daypilot-backend/internal/types"
)

// UserProfileInput carries the registration/update payload. Omitted fields
// fall back to sensible planning defaults; DeepWorkPreference is a pointer so
// an explicit false survives binding.
type UserProfileInput struct {
	Name                  string  `json:"name"`
	WakeTime              string  `json:"wake_time"`
	SleepTime             string  `json:"sleep_time"`
	PeakEnergyPeriod      string  `json:"peak_energy_period"`
	AvailableHoursPerDay  float64 `json:"available_hours_per_day"`
	WorkStart             string  `json:"work_start"`
	WorkEnd               string  `json:"work_end"`
	Timezone              string  `json:"timezone"`
	DeepWorkPreference    *bool   `json:"deep_work_preference"`
	BreakFrequencyMinutes int     `json:"break_frequency_minutes"`
}

type UserService struct {
	db       *gorm.DB
	log      *logger.Logger
	userRepo repos.UserRepo
}

func NewUserService(db *gorm.DB, log *logger.Logger, userRepo repos.UserRepo) *UserService {
	return &UserService{
		db:       db,
		log:      log.With("service", "UserService"),
		userRepo: userRepo,
	}
}

func (s *UserService) Register(ctx context.Context, input UserProfileInput) (*types.User, string, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, "", apierr.New(400, "INVALID_PROFILE", errors.New("name is required"))
	}

	now := time.Now().UTC()
	user := &types.User{
		ID:        uuid.New(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	applyProfile(user, input)

	if err := s.userRepo.Create(ctx, nil, user); err != nil {
		return nil, "", apierr.New(500, "USER_CREATE_FAILED", err)
	}

	s.log.Info("user registered", "user_id", user.ID.String())
	return user, fmt.Sprintf("Welcome to DayPilot, %s! 🚀", user.Name), nil
}

func (s *UserService) Get(ctx context.Context, userID uuid.UUID) (*types.User, error) {
	user, err := s.userRepo.GetByID(ctx, nil, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierr.NotFound("USER_NOT_FOUND", errors.New("user not found"))
		}
		return nil, apierr.New(500, "USER_FETCH_FAILED", err)
	}
	return user, nil
}

// Update replaces the full profile; omitted fields revert to their defaults.
func (s *UserService) Update(ctx context.Context, userID uuid.UUID, input UserProfileInput) (*types.User, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, apierr.New(400, "INVALID_PROFILE", errors.New("name is required"))
	}

	user, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	applyProfile(user, input)
	user.UpdatedAt = time.Now().UTC()

	if err := s.userRepo.Update(ctx, nil, user); err != nil {
		return nil, apierr.New(500, "USER_UPDATE_FAILED", err)
	}
	return user, nil
}

func applyProfile(user *types.User, input UserProfileInput) {
	user.Name = strings.TrimSpace(input.Name)
	user.WakeTime = strOr(input.WakeTime, "06:30")
	user.SleepTime = strOr(input.SleepTime, "22:30")
	user.PeakEnergyPeriod = strOr(input.PeakEnergyPeriod, "morning")
	user.WorkStart = strOr(input.WorkStart, "09:00")
	user.WorkEnd = strOr(input.WorkEnd, "17:00")
	user.Timezone = strOr(input.Timezone, "UTC")

	if input.AvailableHoursPerDay > 0 {
		user.AvailableHoursPerDay = input.AvailableHoursPerDay
	} else {
		user.AvailableHoursPerDay = 8
	}
	if input.BreakFrequencyMinutes > 0 {
		user.BreakFrequencyMinutes = input.BreakFrequencyMinutes
	} else {
		user.BreakFrequencyMinutes = 90
	}
	if input.DeepWorkPreference != nil {
		user.DeepWorkPreference = *input.DeepWorkPreference
	} else {
		user.DeepWorkPreference = true
	}
}

func strOr(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return strings.TrimSpace(v)
}
