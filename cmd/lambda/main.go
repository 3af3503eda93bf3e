package main

import (
	"context"
	"log"

	"github.com/aws/aws-lambda-go/lambda"

	"fashionshop-ai-gateway/internal/ai"
	"fashionshop-ai-gateway/internal/api"
	"fashionshop-ai-gateway/internal/chat"
	"fashionshop-ai-gateway/internal/config"
	"fashionshop-ai-gateway/internal/intent"
	"fashionshop-ai-gateway/internal/products"
)

func main() {
	cfg := config.Load()

	invoker, err := ai.NewInvoker(context.Background(), cfg)
	if err != nil {
		log.Fatalf("model invoker: %v", err)
	}

	svc := chat.NewService(
		intent.NewDetector(intent.DefaultTriggers()),
		intent.NewExtractor(intent.DefaultStopWords(), intent.DefaultStylePhrases()),
		products.NewClient(cfg.BackendAPIBase),
		invoker,
	)

	lambda.Start(api.NewLambdaHandler(svc, cfg.Debug).Handle)
}
