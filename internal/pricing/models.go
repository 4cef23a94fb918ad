package pricing

import (
	"time"

	"github.com/google/uuid"
)

// Pricing is a named price bucket (e.g. "Adult", "Child") referenced by id
// from session pricing overrides and limits.
type Pricing struct {
	ID        uuid.UUID `json:"id" gorm:"primaryKey;type:uuid;default:uuid_generate_v4()"`
	Name      string    `json:"name" gorm:"not null"`
	Price     float64   `json:"price" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreatePricingRequest struct {
	Name  string   `json:"name" binding:"required"`
	Price *float64 `json:"price" binding:"required"`
}

type UpdatePricingRequest struct {
	Name  *string  `json:"name"`
	Price *float64 `json:"price"`
}
