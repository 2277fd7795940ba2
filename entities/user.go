package entities

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name       string    `json:"name"`
	Email      string    `gorm:"uniqueIndex" json:"email"`
	Password   string    `json:"-"`
	Role       string    `json:"role"`
	IsVerified bool      `json:"is_verified"`

	HeightCm    float64    `json:"height_cm,omitempty"`
	WeightKg    float64    `json:"weight_kg,omitempty"`
	BirthDate   *time.Time `json:"birth_date,omitempty"`
	DailyKcal   int        `json:"daily_kcal_goal,omitempty"`
	ProteinGoal float64    `json:"protein_goal_g,omitempty"`

	Timestamp
}
