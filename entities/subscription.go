package entities

import (
	"time"

	"github.com/google/uuid"
)

type Subscription struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID    uuid.UUID  `json:"user_id"`
	OrderID   string     `gorm:"uniqueIndex" json:"order_id"`
	Plan      string     `json:"plan"`   // "premium_monthly", "premium_yearly"
	Status    string     `json:"status"` // "pending", "active", "expired", "cancelled"
	Amount    int64      `json:"amount"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
