package entities

import (
	"time"

	"github.com/google/uuid"
)

type BodyMeasurement struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID     uuid.UUID `json:"user_id"`
	MeasuredAt time.Time `json:"measured_at"`
	WeightKg   float64   `json:"weight_kg"`
	BodyFatPct *float64  `json:"body_fat_pct,omitempty"`
	Notes      string    `json:"notes,omitempty"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
