package sessiontimes

import (
	"time"

	"github.com/google/uuid"
)

// SessionTime is a canonical time-of-day slot the scheduler offers when
// programming sessions.
type SessionTime struct {
	ID        uuid.UUID `json:"id" gorm:"primaryKey;type:uuid;default:uuid_generate_v4()"`
	Time      string    `json:"time" gorm:"not null"` // HH:MM, 24-hour
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreateSessionTimeRequest struct {
	Time string `json:"time" binding:"required,hhmm"`
}

type UpdateSessionTimeRequest struct {
	Time *string `json:"time" binding:"omitempty,hhmm"`
}
