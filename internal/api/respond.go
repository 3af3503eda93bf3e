package api

import (
	"errors"
	"net/http"
	"time"

	"fashionshop-ai-gateway/internal/chat"
	"fashionshop-ai-gateway/internal/pkg/models"
)

// Apology shown to the customer when the model invocation fails.
const apologyMessage = "Xin lỗi, tôi đang gặp sự cố kỹ thuật. Vui lòng thử lại sau."

const (
	errMessageRequired = "Message is required"
	errMessageTooLong  = "Message too long (max 500 characters)"
	errInvalidJSON     = "Invalid JSON in request body"
)

func corsHeaders() map[string]string {
	return map[string]string{
		"Access-Control-Allow-Origin":  "*",
		"Access-Control-Allow-Headers": "Content-Type,X-Amz-Date,Authorization,X-Api-Key,X-Amz-Security-Token",
		"Access-Control-Allow-Methods": "POST,OPTIONS",
	}
}

func successResponse(reply string, now time.Time) models.ChatResponse {
	return models.ChatResponse{
		Success:   true,
		Response:  reply,
		Timestamp: now.UTC().Format(time.RFC3339),
	}
}

// errorResponse maps a chat service error to an HTTP status and envelope.
// Internal detail only leaks into 500 bodies when debug is set.
func errorResponse(err error, debug bool) (int, models.ChatResponse) {
	switch {
	case errors.Is(err, chat.ErrEmptyMessage):
		return http.StatusBadRequest, models.ChatResponse{Success: false, Error: errMessageRequired}
	case errors.Is(err, chat.ErrMessageTooLong):
		return http.StatusBadRequest, models.ChatResponse{Success: false, Error: errMessageTooLong}
	}

	resp := models.ChatResponse{Success: false, Response: apologyMessage}
	if debug {
		resp.Error = err.Error()
	}
	return http.StatusInternalServerError, resp
}
