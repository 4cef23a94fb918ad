package languages

import (
	"time"

	"github.com/google/uuid"
)

// Language is a reference entry for the versions/cuts an event can declare.
type Language struct {
	ID        uuid.UUID `json:"id" gorm:"primaryKey;type:uuid;default:uuid_generate_v4()"`
	Name      string    `json:"name" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreateLanguageRequest struct {
	Name string `json:"name" binding:"required"`
}

type UpdateLanguageRequest struct {
	Name *string `json:"name"`
}
