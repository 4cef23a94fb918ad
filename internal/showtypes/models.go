package showtypes

import (
	"time"

	"github.com/google/uuid"
)

// ShowType labels the kind of live show an event can be (theatre, concert...).
type ShowType struct {
	ID        uuid.UUID `json:"id" gorm:"primaryKey;type:uuid;default:uuid_generate_v4()"`
	Name      string    `json:"name" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreateShowTypeRequest struct {
	Name string `json:"name" binding:"required"`
}

type UpdateShowTypeRequest struct {
	Name *string `json:"name"`
}
