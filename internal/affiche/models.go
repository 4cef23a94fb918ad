package affiche

import (
	"time"

	"github.com/google/uuid"
)

// AfficheItem is a manually curated poster pinned to the "à l'affiche"
// wall, independent of the automatic session-driven listing.
type AfficheItem struct {
	ID        uuid.UUID `json:"id" gorm:"primaryKey;type:uuid;default:uuid_generate_v4()"`
	EventID   uuid.UUID `json:"eventId" gorm:"type:uuid;not null;uniqueIndex"`
	Poster    string    `json:"poster" gorm:"not null"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type CreateAfficheRequest struct {
	EventID uuid.UUID `json:"eventId" binding:"required"`
	Poster  string    `json:"poster" binding:"required"`
}

type UpdateAfficheRequest struct {
	Poster *string `json:"poster"`
}
