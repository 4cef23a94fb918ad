package homehero

import (
	"time"

	"github.com/google/uuid"
)

// HeroItem is one slide of the landing-page carousel. Order is unique among
// active slides; EventID optionally links the slide to a programmed event.
type HeroItem struct {
	ID        uuid.UUID  `json:"id" gorm:"primaryKey;type:uuid;default:uuid_generate_v4()"`
	Title     string     `json:"title"`
	Subtitle  string     `json:"subtitle"`
	Poster    string     `json:"poster" gorm:"not null"`
	EventID   *uuid.UUID `json:"eventId" gorm:"type:uuid"`
	Active    bool       `json:"active" gorm:"not null;default:true;index"`
	Order     int        `json:"order" gorm:"column:display_order;not null;default:0"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

type CreateHeroRequest struct {
	Title    string     `json:"title"`
	Subtitle string     `json:"subtitle"`
	Poster   string     `json:"poster" binding:"required"`
	EventID  *uuid.UUID `json:"eventId"`
	Active   *bool      `json:"active"`
	Order    *int       `json:"order" binding:"omitempty,min=0"`
}

type UpdateHeroRequest struct {
	Title    *string    `json:"title"`
	Subtitle *string    `json:"subtitle"`
	Poster   *string    `json:"poster"`
	EventID  *uuid.UUID `json:"eventId"`
	Active   *bool      `json:"active"`
	Order    *int       `json:"order" binding:"omitempty,min=0"`
}
