package domain

import (
	"errors"
	"mime/multipart"
	"time"

	"Fitlog-Backend/pkg/nutrition"
)

var (
	MessageSuccessLogEntry     = "entry logged successfully"
	MessageSuccessGetEntries   = "entries retrieved successfully"
	MessageSuccessGetEntry     = "entry retrieved successfully"
	MessageSuccessDeleteEntry  = "entry deleted successfully"
	MessageSuccessDailySummary = "daily summary retrieved successfully"
	MessageSuccessUploadMedia  = "media uploaded successfully"

	MessageFailedLogEntry     = "failed to log entry"
	MessageFailedGetEntries   = "failed to retrieve entries"
	MessageFailedGetEntry     = "failed to retrieve entry"
	MessageFailedDeleteEntry  = "failed to delete entry"
	MessageFailedDailySummary = "failed to retrieve daily summary"
	MessageFailedUploadMedia  = "failed to upload media"
	MessageFailedExtractItems = "failed to extract items from entry text"

	ErrEntryNotFound    = errors.New("entry not found")
	ErrEmptyEntryText   = errors.New("entry text is empty")
	ErrNoItemsExtracted = errors.New("no food items could be extracted")
	ErrInvalidLoggedAt  = errors.New("invalid logged_at timestamp")
)

type (
	LogEntryRequest struct {
		Text     string `json:"text" validate:"required"`
		Source   string `json:"source" validate:"omitempty,oneof=text voice photo"`
		LoggedAt string `json:"logged_at" validate:"omitempty"` // RFC 3339, defaults to now
	}

	UploadEntryMediaRequest struct {
		Media *multipart.FileHeader `json:"media" form:"media" validate:"required"`
	}

	LogPhotoEntryRequest struct {
		Photo    *multipart.FileHeader `json:"photo" form:"photo" validate:"required"`
		LoggedAt string                `json:"logged_at" form:"logged_at" validate:"omitempty"`
	}

	EntryItemResponse struct {
		FoodName         string   `json:"food_name"`
		Quantity         float64  `json:"quantity"`
		Unit             string   `json:"unit"`
		Grams            float64  `json:"grams"`
		ConversionMethod string   `json:"conversion_method"`
		AccuracyHint     string   `json:"accuracy_hint"`
		Matched          bool     `json:"matched"`
		Error            string   `json:"error,omitempty"`
		Calories         *float64 `json:"calories,omitempty"`
		ProteinG         *float64 `json:"protein_g,omitempty"`
		CarbsG           *float64 `json:"carbs_g,omitempty"`
		FatG             *float64 `json:"fat_g,omitempty"`
		FiberG           *float64 `json:"fiber_g,omitempty"`
		SugarG           *float64 `json:"sugar_g,omitempty"`
		SodiumMg         *float64 `json:"sodium_mg,omitempty"`
	}

	EntryResponse struct {
		ID        string               `json:"id"`
		RawText   string               `json:"raw_text"`
		EntryType string               `json:"entry_type"`
		Source    string               `json:"source"`
		MediaURL  string               `json:"media_url,omitempty"`
		LoggedAt  time.Time            `json:"logged_at"`
		Totals    nutrition.EntryTotal `json:"totals"`
		Items     []EntryItemResponse  `json:"items"`
		CreatedAt time.Time            `json:"created_at"`
	}

	DailySummaryResponse struct {
		Date          string  `json:"date"`
		TotalCalories float64 `json:"total_calories"`
		TotalProteinG float64 `json:"total_protein_g"`
		TotalCarbsG   float64 `json:"total_carbs_g"`
		TotalFatG     float64 `json:"total_fat_g"`
		EntryCount    int     `json:"entry_count"`
		AnyEstimated  bool    `json:"any_estimated"`
	}
)
