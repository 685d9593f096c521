package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/yukti-cloud/gpu-advisor/dto"
	"github.com/yukti-cloud/gpu-advisor/llm"
	"github.com/yukti-cloud/gpu-advisor/logging"
	"github.com/yukti-cloud/gpu-advisor/response"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type wsFrame struct {
	Type string `json:"type"`
	Data string `json:"data,omitempty"`
}

// ChatWS is the websocket variant of the assistant: the client sends
// one JSON conversation history, the server streams chunk frames
// followed by a done frame, then closes.
func (h *ChatHandler) ChatWS(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "websocket upgrade failed"})
		return
	}
	defer conn.Close()

	var input dto.ChatInput
	if err := conn.ReadJSON(&input); err != nil || len(input.Messages) == 0 {
		_ = conn.WriteJSON(wsFrame{Type: "error", Data: "invalid conversation payload"})
		return
	}

	history := make([]llm.Message, 0, len(input.Messages))
	for _, m := range input.Messages {
		history = append(history, llm.Message{Role: m.Role, Content: m.Content})
	}

	err = h.svc.Stream(c.Request.Context(), history, func(chunk string) error {
		return conn.WriteJSON(wsFrame{Type: "chunk", Data: chunk})
	})
	if err != nil {
		// A dead peer ends the relay; anything else is upstream trouble.
		logging.Log.Warn("websocket chat ended early", zap.Error(err))
		return
	}

	_ = conn.WriteJSON(wsFrame{Type: "done"})
}
