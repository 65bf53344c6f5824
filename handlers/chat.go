package handlers

import (
	"net/http"

	"slaycal/models"
	"slaycal/services/interpreter"
	"slaycal/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CoachHandler serves the conversational coach endpoint.
type CoachHandler struct {
	Coach interpreter.CoachService
}

func NewCoachHandler(coach interpreter.CoachService) *CoachHandler {
	return &CoachHandler{Coach: coach}
}

// Chat answers one conversation turn. A request without a session id mints
// a new session; the id is echoed back so the client can continue the
// conversation.
func (h *CoachHandler) Chat(c *gin.Context) {
	logger := utils.GetLogger()

	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid chat request", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}
	if req.SessionID == "" {
		req.SessionID = uuid.NewString()
	}

	resp, err := h.Coach.Interpret(c.Request.Context(), req.SessionID, req.Text)
	if err != nil {
		logger.Error("Failed to process chat turn",
			zap.Error(err), zap.String("sessionID", req.SessionID))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to process message", "")
		return
	}
	c.JSON(http.StatusOK, resp)
}
