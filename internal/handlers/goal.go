package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/daypilot-backend/internal/services"
)

type GoalHandler struct {
	goalService *services.GoalService
}

func NewGoalHandler(goalService *services.GoalService) *GoalHandler {
	return &GoalHandler{goalService: goalService}
}

func (h *GoalHandler) Create(c *gin.Context) {
	userID, ok := parseIDParam(c, "user_id")
	if !ok {
		return
	}
	var input services.GoalCreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_BODY", err)
		return
	}
	goal, err := h.goalService.Create(c.Request.Context(), userID, input)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, goal)
}

func (h *GoalHandler) List(c *gin.Context) {
	userID, ok := parseIDParam(c, "user_id")
	if !ok {
		return
	}
	goals, err := h.goalService.List(c.Request.Context(), userID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, goals)
}

func (h *GoalHandler) Get(c *gin.Context) {
	userID, ok := parseIDParam(c, "user_id")
	if !ok {
		return
	}
	goalID, ok := parseIDParam(c, "goal_id")
	if !ok {
		return
	}
	goal, err := h.goalService.Get(c.Request.Context(), userID, goalID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, goal)
}

type goalProgressInput struct {
	ProgressPercent float64 `json:"progress_percent"`
}

func (h *GoalHandler) UpdateProgress(c *gin.Context) {
	userID, ok := parseIDParam(c, "user_id")
	if !ok {
		return
	}
	goalID, ok := parseIDParam(c, "goal_id")
	if !ok {
		return
	}
	var input goalProgressInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_BODY", err)
		return
	}
	goal, err := h.goalService.UpdateProgress(c.Request.Context(), userID, goalID, input.ProgressPercent)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, goal)
}

func (h *GoalHandler) Delete(c *gin.Context) {
	userID, ok := parseIDParam(c, "user_id")
	if !ok {
		return
	}
	goalID, ok := parseIDParam(c, "goal_id")
	if !ok {
		return
	}
	if err := h.goalService.Delete(c.Request.Context(), userID, goalID); err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"message": "Goal deleted."})
}

func (h *GoalHandler) Simulate(c *gin.Context) {
	userID, ok := parseIDParam(c, "user_id")
	if !ok {
		return
	}
	var input services.ScenarioInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_BODY", err)
		return
	}
	result, err := h.goalService.Simulate(c.Request.Context(), userID, input)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, result)
}
