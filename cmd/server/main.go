package main

import (
	"context"
	"log"

	"fashionshop-ai-gateway/internal/ai"
	"fashionshop-ai-gateway/internal/api"
	"fashionshop-ai-gateway/internal/chat"
	"fashionshop-ai-gateway/internal/config"
	"fashionshop-ai-gateway/internal/intent"
	"fashionshop-ai-gateway/internal/products"
	"fashionshop-ai-gateway/internal/server"
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

	s := server.New(cfg.Port)
	server.RegisterRoutes(s.Engine, api.NewChatHandler(svc, cfg.Debug))

	log.Printf("server starting on port %s", cfg.Port)
	if err := s.Start(); err != nil {
		log.Fatalf("server failed to start: %v", err)
	}
}
