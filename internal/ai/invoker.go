package ai

import (
	"context"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"

	"fashionshop-ai-gateway/internal/config"
)

// Fixed sampling parameters for every model invocation.
const (
	temperature      = 0.7
	topP             = 0.9
	defaultMaxTokens = 500
)

// Invoker sends one single-turn chat exchange to a hosted generative-text
// endpoint and returns the reply text.
type Invoker interface {
	Invoke(ctx context.Context, systemPrompt, userMessage string) (string, error)
}

// NewInvoker builds the invoker selected by cfg.ModelProvider.
func NewInvoker(ctx context.Context, cfg *config.Config) (Invoker, error) {
	maxTokens := cfg.MaxTokens
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}

	switch cfg.ModelProvider {
	case "openai":
		return NewOpenAIInvoker(cfg.OpenAIKey, cfg.OpenAIBaseURL, cfg.OpenAIModel, maxTokens), nil
	case "", "bedrock":
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
		if err != nil {
			return nil, fmt.Errorf("load aws config: %w", err)
		}
		return NewBedrockInvoker(awsCfg, cfg.BedrockModelID, maxTokens), nil
	default:
		return nil, fmt.Errorf("unknown model provider %q", cfg.ModelProvider)
	}
}
