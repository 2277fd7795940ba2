package entities

import (
	"time"

	"github.com/google/uuid"
)

// QuickEntry is one free-text, voice or photo submission describing meals or
// activities. The entry-level totals are denormalized from its items at log
// time and never recomputed afterward.
type QuickEntry struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	RawText   string    `gorm:"type:text" json:"raw_text"`
	EntryType string    `json:"entry_type"` // "meal", "workout", "note", "measurement"
	Source    string    `json:"source"`     // "text", "voice", "photo"
	MediaURL  string    `json:"media_url,omitempty"`
	LoggedAt  time.Time `json:"logged_at"`

	TotalCalories float64 `json:"total_calories"`
	TotalProteinG float64 `json:"total_protein_g"`
	TotalCarbsG   float64 `json:"total_carbs_g"`
	TotalFatG     float64 `json:"total_fat_g"`
	TotalFiberG   float64 `json:"total_fiber_g"`
	TotalSugarG   float64 `json:"total_sugar_g"`
	TotalSodiumMg float64 `json:"total_sodium_mg"`
	Estimated     bool    `json:"estimated"`
	Caveats       string  `gorm:"type:text" json:"caveats,omitempty"` // newline separated

	User  *User        `gorm:"foreignKey:UserID"`
	Items []*EntryItem `gorm:"foreignKey:QuickEntryID"`
	Timestamp
}

// EntryItem is one parsed food line of a quick entry, kept with the exact
// conversion outcome so the UI can show per-item accuracy.
type EntryItem struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	QuickEntryID uuid.UUID  `json:"quick_entry_id"`
	FoodRecordID *uuid.UUID `json:"food_record_id,omitempty"`
	FoodName     string     `json:"food_name"`
	Quantity     float64    `json:"quantity"`
	Unit         string     `json:"unit"`

	Grams            float64 `json:"grams"`
	ConversionMethod string  `json:"conversion_method"`
	AccuracyHint     string  `json:"accuracy_hint"`
	ItemError        string  `json:"error,omitempty"` // set when the line failed validation and was excluded from totals

	Calories *float64 `json:"calories,omitempty"`
	ProteinG *float64 `json:"protein_g,omitempty"`
	CarbsG   *float64 `json:"carbs_g,omitempty"`
	FatG     *float64 `json:"fat_g,omitempty"`
	FiberG   *float64 `json:"fiber_g,omitempty"`
	SugarG   *float64 `json:"sugar_g,omitempty"`
	SodiumMg *float64 `json:"sodium_mg,omitempty"`

	QuickEntry *QuickEntry `gorm:"foreignKey:QuickEntryID"`
	FoodRecord *FoodRecord `gorm:"foreignKey:FoodRecordID"`
	Timestamp
}
