package api

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/aws/aws-lambda-go/events"

	"fashionshop-ai-gateway/internal/chat"
	"fashionshop-ai-gateway/internal/pkg/models"
)

// LambdaHandler adapts the chat service to API Gateway proxy events. It
// returns the same envelopes and CORS headers as the gin transport.
type LambdaHandler struct {
	svc   *chat.Service
	debug bool
}

func NewLambdaHandler(svc *chat.Service, debug bool) *LambdaHandler {
	return &LambdaHandler{svc: svc, debug: debug}
}

func (h *LambdaHandler) Handle(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	if event.HTTPMethod == http.MethodOptions {
		return events.APIGatewayProxyResponse{
			StatusCode: http.StatusOK,
			Headers:    corsHeaders(),
			Body:       "",
		}, nil
	}

	var req models.ChatRequest
	if event.Body != "" {
		if err := json.Unmarshal([]byte(event.Body), &req); err != nil {
			return jsonResponse(http.StatusBadRequest, models.ChatResponse{Success: false, Error: errInvalidJSON}), nil
		}
	}

	reply, err := h.svc.Reply(ctx, req)
	if err != nil {
		status, resp := errorResponse(err, h.debug)
		if status == http.StatusInternalServerError {
			log.Printf("chat request %s failed: %v", event.RequestContext.RequestID, err)
		}
		return jsonResponse(status, resp), nil
	}

	return jsonResponse(http.StatusOK, successResponse(reply, time.Now())), nil
}

func jsonResponse(status int, resp models.ChatResponse) events.APIGatewayProxyResponse {
	headers := corsHeaders()
	headers["Content-Type"] = "application/json"

	body, err := json.Marshal(resp)
	if err != nil {
		return events.APIGatewayProxyResponse{StatusCode: http.StatusInternalServerError, Headers: headers}
	}
	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers:    headers,
		Body:       string(body),
	}
}
