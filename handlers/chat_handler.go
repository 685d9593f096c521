package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukti-cloud/gpu-advisor/dto"
	"github.com/yukti-cloud/gpu-advisor/llm"
	"github.com/yukti-cloud/gpu-advisor/response"
	"github.com/yukti-cloud/gpu-advisor/services"
)

type ChatHandler struct {
	svc *services.ChatService
}

func NewChatHandler(svc *services.ChatService) *ChatHandler {
	return &ChatHandler{svc: svc}
}

// Chat godoc
// @Summary Stream an assistant reply for a conversation
// @Tags chat
// @Security BearerAuth
// @Accept json
// @Produce text/event-stream
// @Param input body dto.ChatInput true "Conversation history"
// @Success 200 {string} string "streamed reply"
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 401 {object} response.ErrorResponse "Unauthorized"
// @Failure 503 {object} response.ErrorResponse "LLM unavailable"
// @Router /chat [post]
func (h *ChatHandler) Chat(c *gin.Context) {
	var input dto.ChatInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	history := make([]llm.Message, 0, len(input.Messages))
	for _, m := range input.Messages {
		history = append(history, llm.Message{Role: m.Role, Content: m.Content})
	}

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	wrote := false
	err := h.svc.Stream(c.Request.Context(), history, func(chunk string) error {
		if _, werr := c.Writer.WriteString(chunk); werr != nil {
			return werr
		}
		wrote = true
		c.Writer.Flush()
		return nil
	})

	// Once bytes are out the status line is gone; a mid-stream failure
	// just ends the body. Partial output is acceptable.
	if err != nil && !wrote {
		c.JSON(http.StatusServiceUnavailable, response.ErrorResponse{Error: "Service temporarily unavailable"})
	}
}
