package products

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"fashionshop-ai-gateway/internal/pkg/models"
)

const suggestPath = "/api/public/chatbot/suggest-products"

// Client calls the shop backend's product suggestion API. Failures of any
// kind degrade to an empty result; a broken backend must never break the
// chat reply.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 5 * time.Second},
	}
}

// Suggest returns up to limit products matching the query, or nil on any
// transport failure, non-200 status or malformed response.
func (c *Client) Suggest(ctx context.Context, query string, limit int) []models.ProductSuggestion {
	payload, err := json.Marshal(models.SuggestRequest{Query: query, Limit: limit})
	if err != nil {
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+suggestPath, bytes.NewReader(payload))
	if err != nil {
		log.Printf("product suggest: build request: %v", err)
		return nil
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		log.Printf("product suggest: %v", err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("product suggest: backend returned %d", resp.StatusCode)
		return nil
	}

	var out []models.ProductSuggestion
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		log.Printf("product suggest: decode response: %v", err)
		return nil
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
