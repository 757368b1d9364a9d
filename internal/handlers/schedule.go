package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/daypilot-backend/internal/services"
)

type ScheduleHandler struct {
	scheduleService *services.ScheduleService
}

func NewScheduleHandler(scheduleService *services.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{scheduleService: scheduleService}
}

func (h *ScheduleHandler) Generate(c *gin.Context) {
	var input services.ScheduleGenerateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_BODY", err)
		return
	}
	schedule, err := h.scheduleService.Generate(c.Request.Context(), input)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, schedule)
}

func (h *ScheduleHandler) Get(c *gin.Context) {
	userID, ok := parseIDParam(c, "user_id")
	if !ok {
		return
	}
	schedule, err := h.scheduleService.Get(c.Request.Context(), userID, c.Param("date"))
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, schedule)
}

func (h *ScheduleHandler) UpdateTask(c *gin.Context) {
	userID, ok := parseIDParam(c, "user_id")
	if !ok {
		return
	}
	var input services.TaskStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_BODY", err)
		return
	}
	block, err := h.scheduleService.UpdateTaskStatus(c.Request.Context(), userID, input)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"block_id": block.BlockID, "new_status": block.Status})
}

func (h *ScheduleHandler) Reschedule(c *gin.Context) {
	userID, ok := parseIDParam(c, "user_id")
	if !ok {
		return
	}
	schedule, err := h.scheduleService.Reschedule(c.Request.Context(), userID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, schedule)
}
