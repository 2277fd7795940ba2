package domain

import "errors"

var (
	ErrGeminiProcessingFailed = errors.New("gemini returned an empty or unusable response")
)

type (
	// ExtractedItem is one food mention pulled out of free-form entry text.
	ExtractedItem struct {
		FoodName   string  `json:"food_name"`
		Quantity   float64 `json:"quantity"`
		Unit       string  `json:"unit"`
		Confidence string  `json:"confidence"`
	}
)
