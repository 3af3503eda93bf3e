package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"fashionshop-ai-gateway/internal/ai"
	"fashionshop-ai-gateway/internal/intent"
	"fashionshop-ai-gateway/internal/pkg/models"
)

var (
	ErrEmptyMessage    = errors.New("message is required")
	ErrMessageTooLong  = errors.New("message too long")
	ErrModelInvocation = errors.New("model invocation failed")
)

const (
	// MaxMessageLength is the longest accepted customer message, in runes.
	MaxMessageLength = 500

	suggestLimit = 5
)

// ProductFetcher looks up catalog suggestions for a search query. A nil or
// empty result means "no suggestions", never an error.
type ProductFetcher interface {
	Suggest(ctx context.Context, query string, limit int) []models.ProductSuggestion
}

// ModelInvoker sends one single-turn exchange to the inference endpoint.
type ModelInvoker interface {
	Invoke(ctx context.Context, systemPrompt, userMessage string) (string, error)
}

// Service runs one chat message through the full pipeline:
// validate -> detect intent -> extract query -> fetch suggestions ->
// compose prompt -> invoke model.
type Service struct {
	detector  *intent.Detector
	extractor *intent.Extractor
	products  ProductFetcher
	model     ModelInvoker
}

func NewService(detector *intent.Detector, extractor *intent.Extractor, products ProductFetcher, model ModelInvoker) *Service {
	return &Service{
		detector:  detector,
		extractor: extractor,
		products:  products,
		model:     model,
	}
}

// Reply returns the model's answer for one customer message. Validation
// failures return before any outbound call is made; a model failure is
// wrapped in ErrModelInvocation.
func (s *Service) Reply(ctx context.Context, req models.ChatRequest) (string, error) {
	msg := strings.TrimSpace(req.Message)
	if msg == "" {
		return "", ErrEmptyMessage
	}
	if utf8.RuneCountInString(msg) > MaxMessageLength {
		return "", ErrMessageTooLong
	}

	system := s.composeSystemPrompt(ctx, msg)

	reply, err := s.model.Invoke(ctx, system, msg)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrModelInvocation, err)
	}
	return reply, nil
}

func (s *Service) composeSystemPrompt(ctx context.Context, msg string) string {
	var suggestions []models.ProductSuggestion
	if s.detector.Detect(msg) {
		query := s.extractor.Extract(msg)
		suggestions = s.products.Suggest(ctx, query, suggestLimit)
	}
	return ai.ComposeSystemPrompt(suggestions)
}
