package rooms

import (
	"time"

	"github.com/google/uuid"

	"majestic/internal/seatmap"
)

// Room is a physical screening room: a named seating grid plus permanent
// overrides (blocked or staff seats) and default per-seat pricing
// assignments. Sessions reference rooms by name.
type Room struct {
	ID               uuid.UUID                 `json:"id" gorm:"primaryKey;type:uuid;default:uuid_generate_v4()"`
	Name             string                    `json:"name" gorm:"uniqueIndex;not null"`
	Capacity         int                       `json:"capacity" gorm:"not null"`
	Layout           []seatmap.Cell            `json:"layout" gorm:"type:jsonb;serializer:json"`
	Overrides        []seatmap.Override        `json:"overrides" gorm:"type:jsonb;serializer:json"`
	PricingOverrides []seatmap.PricingOverride `json:"pricingOverrides" gorm:"type:jsonb;serializer:json"`
	CreatedAt        time.Time                 `json:"created_at"`
	UpdatedAt        time.Time                 `json:"updated_at"`
}

type CreateRoomRequest struct {
	Name             string                    `json:"name" binding:"required"`
	Capacity         *int                      `json:"capacity"`
	Layout           []seatmap.Cell            `json:"layout" binding:"required"`
	Overrides        []seatmap.Override        `json:"overrides"`
	PricingOverrides []seatmap.PricingOverride `json:"pricingOverrides"`
}

type UpdateRoomRequest struct {
	Name             *string                    `json:"name"`
	Capacity         *int                       `json:"capacity"`
	Layout           *[]seatmap.Cell            `json:"layout"`
	Overrides        *[]seatmap.Override        `json:"overrides"`
	PricingOverrides *[]seatmap.PricingOverride `json:"pricingOverrides"`
}
