package server

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/yungbote/daypilot-backend/internal/handlers"
	"github.com/yungbote/daypilot-backend/internal/platform/envutil"
)

type RouterConfig struct {
	UserHandler     *handlers.UserHandler
	GoalHandler     *handlers.GoalHandler
	ScheduleHandler *handlers.ScheduleHandler
	HabitHandler    *handlers.HabitHandler
	ProgressHandler *handlers.ProgressHandler
	ChatHandler     *handlers.ChatHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	if envutil.Str("GIN_MODE", "") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{envutil.Str("CORS_ALLOW_ORIGIN", "*")},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: envutil.Bool("CORS_ALLOW_CREDENTIALS", false),
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "DayPilot AI Planner API is running 🚀"})
	})
	r.GET("/health", handlers.Healthcheck)
	r.GET("/healthcheck", handlers.Healthcheck)

	api := r.Group("/api")

	users := api.Group("/users")
	{
		users.POST("/register", cfg.UserHandler.Register)
		users.GET("/:user_id", cfg.UserHandler.Get)
		users.PATCH("/:user_id", cfg.UserHandler.Update)
	}

	schedule := api.Group("/schedule")
	{
		schedule.POST("/generate", cfg.ScheduleHandler.Generate)
		schedule.GET("/:user_id/:date", cfg.ScheduleHandler.Get)
		schedule.PATCH("/:user_id/task", cfg.ScheduleHandler.UpdateTask)
		schedule.POST("/:user_id/reschedule", cfg.ScheduleHandler.Reschedule)
	}

	goals := api.Group("/goals")
	{
		goals.POST("/:user_id", cfg.GoalHandler.Create)
		goals.GET("/:user_id", cfg.GoalHandler.List)
		goals.GET("/:user_id/:goal_id", cfg.GoalHandler.Get)
		goals.PATCH("/:user_id/:goal_id/progress", cfg.GoalHandler.UpdateProgress)
		goals.DELETE("/:user_id/:goal_id", cfg.GoalHandler.Delete)
		goals.POST("/:user_id/simulate", cfg.GoalHandler.Simulate)
	}

	habits := api.Group("/habits")
	{
		habits.POST("/:user_id", cfg.HabitHandler.Create)
		habits.GET("/:user_id", cfg.HabitHandler.List)
		habits.POST("/:user_id/checkin", cfg.HabitHandler.CheckIn)
		habits.POST("/:user_id/ai-suggest", cfg.HabitHandler.Suggest)
		habits.DELETE("/:user_id/:habit_id", cfg.HabitHandler.Delete)
	}

	progress := api.Group("/progress")
	{
		progress.POST("/checkin", cfg.ProgressHandler.Checkin)
		progress.GET("/:user_id/summary/:period", cfg.ProgressHandler.Summary)
	}

	chat := api.Group("/chat")
	{
		chat.POST("/message", cfg.ChatHandler.Message)
		chat.GET("/:user_id/history", cfg.ChatHandler.History)
		chat.DELETE("/:user_id/history", cfg.ChatHandler.ClearHistory)
	}

	return r
}
