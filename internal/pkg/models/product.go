package models

// SuggestRequest is the payload sent to the backend suggest-products API.
type SuggestRequest struct {
	Query string `json:"query"`
	Limit int    `json:"limit"`
}

// ProductSuggestion mirrors the backend's product suggestion record.
// The gateway holds a transient read-only copy per request.
type ProductSuggestion struct {
	ProductID    string   `json:"productId"`
	Name         string   `json:"name"`
	Description  string   `json:"description,omitempty"`
	Price        float64  `json:"price"`
	Colors       []string `json:"colors,omitempty"`
	Sizes        []string `json:"sizes,omitempty"`
	IsPreorder   bool     `json:"isPreorder,omitempty"`
	PreorderDays int      `json:"preorderDays,omitempty"`
}
