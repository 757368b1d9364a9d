package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/daypilot-backend/internal/services"
)

type ProgressHandler struct {
	progressService *services.ProgressService
}

func NewProgressHandler(progressService *services.ProgressService) *ProgressHandler {
	return &ProgressHandler{progressService: progressService}
}

func (h *ProgressHandler) Checkin(c *gin.Context) {
	var input services.CheckinInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_BODY", err)
		return
	}
	checkin, message, err := h.progressService.LogCheckin(c.Request.Context(), input)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"checkin_id": checkin.ID, "message": message})
}

func (h *ProgressHandler) Summary(c *gin.Context) {
	userID, ok := parseIDParam(c, "user_id")
	if !ok {
		return
	}
	summary, err := h.progressService.Summary(c.Request.Context(), userID, c.Param("period"))
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, summary)
}
