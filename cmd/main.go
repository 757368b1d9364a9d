package main

import (
	"github.com/yungbote/daypilot-backend/internal/agent"
	"github.com/yungbote/daypilot-backend/internal/db"
	"github.com/yungbote/daypilot-backend/internal/handlers"
	"github.com/yungbote/daypilot-backend/internal/platform/cache"
	"github.com/yungbote/daypilot-backend/internal/platform/envutil"
	"github.com/yungbote/daypilot-backend/internal/platform/logger"
	"github.com/yungbote/daypilot-backend/internal/platform/openai"
	"github.com/yungbote/daypilot-backend/internal/repos"
	"github.com/yungbote/daypilot-backend/internal/server"
	"github.com/yungbote/daypilot-backend/internal/services"
)

func main() {
	log, err := logger.New(envutil.Str("APP_ENV", "dev"))
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	database, err := db.NewPostgresService(log)
	if err != nil {
		log.Fatal("database init failed", "error", err)
	}
	defer database.Close()
	if err := database.AutoMigrateAll(); err != nil {
		log.Fatal("database migration failed", "error", err)
	}

	aiClient, err := openai.NewClient(log)
	if err != nil {
		log.Fatal("openai client init failed", "error", err)
	}
	planner := agent.NewPlanner(aiClient, log)

	summaryCache, err := cache.NewRedisCache(log)
	if err != nil {
		log.Warn("redis unavailable, running without summary cache", "error", err)
		summaryCache = nil
	}
	if summaryCache != nil {
		defer summaryCache.Close()
	}

	userRepo := repos.NewUserRepo(database.DB)
	goalRepo := repos.NewGoalRepo(database.DB)
	scheduleRepo := repos.NewScheduleRepo(database.DB)
	habitRepo := repos.NewHabitRepo(database.DB)
	habitLogRepo := repos.NewHabitLogRepo(database.DB)
	checkinRepo := repos.NewCheckinRepo(database.DB)
	sessionRepo := repos.NewChatSessionRepo(database.DB)

	userService := services.NewUserService(database.DB, log, userRepo)
	goalService := services.NewGoalService(database.DB, log, planner, goalRepo, userRepo)
	scheduleService := services.NewScheduleService(database.DB, log, planner, scheduleRepo, goalRepo, userRepo)
	habitService := services.NewHabitService(database.DB, log, planner, habitRepo, habitLogRepo, goalRepo, userRepo)
	progressService := services.NewProgressService(database.DB, log, planner, summaryCache, checkinRepo, scheduleRepo, goalRepo, habitRepo)
	chatService := services.NewChatService(database.DB, log, planner, sessionRepo, goalRepo, scheduleRepo, checkinRepo)

	router := server.NewRouter(server.RouterConfig{
		UserHandler:     handlers.NewUserHandler(userService),
		GoalHandler:     handlers.NewGoalHandler(goalService),
		ScheduleHandler: handlers.NewScheduleHandler(scheduleService),
		HabitHandler:    handlers.NewHabitHandler(habitService),
		ProgressHandler: handlers.NewProgressHandler(progressService),
		ChatHandler:     handlers.NewChatHandler(chatService),
	})

	addr := ":" + envutil.Str("PORT", "8000")
	log.Info("daypilot api listening", "addr", addr)
	if err := router.Run(addr); err != nil {
		log.Fatal("server exited", "error", err)
	}
}
