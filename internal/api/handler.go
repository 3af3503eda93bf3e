package api

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"fashionshop-ai-gateway/internal/chat"
	"fashionshop-ai-gateway/internal/pkg/models"
)

// ChatHandler is the gin transport for the chat service.
type ChatHandler struct {
	svc   *chat.Service
	debug bool
}

func NewChatHandler(svc *chat.Service, debug bool) *ChatHandler {
	return &ChatHandler{svc: svc, debug: debug}
}

func (h *ChatHandler) HandleChat(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ChatResponse{Success: false, Error: errInvalidJSON})
		return
	}

	reply, err := h.svc.Reply(c.Request.Context(), req)
	if err != nil {
		status, resp := errorResponse(err, h.debug)
		if status == http.StatusInternalServerError {
			log.Printf("chat request %s failed: %v", c.GetString(requestIDKey), err)
		}
		c.JSON(status, resp)
		return
	}

	c.JSON(http.StatusOK, successResponse(reply, time.Now()))
}
