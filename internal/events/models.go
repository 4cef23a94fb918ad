package events

import (
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	EventTypeMovie EventType = "movie"
	EventTypeShow  EventType = "show"
)

type EventStatus string

const (
	EventStatusActive   EventStatus = "active"
	EventStatusInactive EventStatus = "inactive"
	EventStatusArchived EventStatus = "archived"
)

// Event is a movie or live show in the programme. availableVersions lists
// the cuts a session may be scheduled with; an empty list means any version
// is accepted.
type Event struct {
	ID                uuid.UUID   `json:"id" gorm:"primaryKey;type:uuid;default:uuid_generate_v4()"`
	Type              EventType   `json:"type" gorm:"not null;index:idx_events_window"`
	Name              string      `json:"name" gorm:"not null"`
	Description       string      `json:"description"`
	Poster            string      `json:"poster"`
	TrailerLink       string      `json:"trailerLink"`
	Duration          int         `json:"duration"`
	AgeRestriction    string      `json:"ageRestriction"`
	Genres            []string    `json:"genres" gorm:"type:jsonb;serializer:json"`
	AvailableVersions []string    `json:"availableVersions" gorm:"type:jsonb;serializer:json"`
	ReleaseDate       *time.Time  `json:"releaseDate"`
	DirectedBy        string      `json:"directedBy"`
	Cast              []string    `json:"cast" gorm:"type:jsonb;serializer:json"`
	AvailableFrom     *time.Time  `json:"availableFrom" gorm:"index:idx_events_window"`
	AvailableTo       *time.Time  `json:"availableTo" gorm:"index:idx_events_window"`
	Status            EventStatus `json:"status" gorm:"not null;default:'active';index:idx_events_window"`
	CreatedBy         uuid.UUID   `json:"createdBy" gorm:"type:uuid;not null"`
	CreatedAt         time.Time   `json:"createdAt"`
	UpdatedAt         time.Time   `json:"updatedAt"`
}

type CreateEventRequest struct {
	Type              string     `json:"type" binding:"required,oneof=movie show"`
	Name              string     `json:"name" binding:"required"`
	Description       string     `json:"description"`
	Poster            string     `json:"poster"`
	TrailerLink       string     `json:"trailerLink"`
	Duration          int        `json:"duration" binding:"omitempty,min=0"`
	AgeRestriction    string     `json:"ageRestriction"`
	Genres            []string   `json:"genres"`
	AvailableVersions []string   `json:"availableVersions"`
	ReleaseDate       *time.Time `json:"releaseDate"`
	DirectedBy        string     `json:"directedBy"`
	Cast              []string   `json:"cast"`
	AvailableFrom     *time.Time `json:"availableFrom"`
	AvailableTo       *time.Time `json:"availableTo"`
	Status            string     `json:"status" binding:"omitempty,oneof=active inactive archived"`
}

type UpdateEventRequest struct {
	Type              *string    `json:"type" binding:"omitempty,oneof=movie show"`
	Name              *string    `json:"name"`
	Description       *string    `json:"description"`
	Poster            *string    `json:"poster"`
	TrailerLink       *string    `json:"trailerLink"`
	Duration          *int       `json:"duration" binding:"omitempty,min=0"`
	AgeRestriction    *string    `json:"ageRestriction"`
	Genres            *[]string  `json:"genres"`
	AvailableVersions *[]string  `json:"availableVersions"`
	ReleaseDate       *time.Time `json:"releaseDate"`
	DirectedBy        *string    `json:"directedBy"`
	Cast              *[]string  `json:"cast"`
	AvailableFrom     *time.Time `json:"availableFrom"`
	AvailableTo       *time.Time `json:"availableTo"`
	Status            *string    `json:"status" binding:"omitempty,oneof=active inactive archived"`
}

type EventListQuery struct {
	Name   string `form:"name"`
	Type   string `form:"type"`
	Status string `form:"status"`
	Page   int    `form:"page"`
	Limit  int    `form:"limit"`
}

type Pagination struct {
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Pages int   `json:"pages"`
}

type PaginatedEvents struct {
	Events     []Event    `json:"events"`
	Pagination Pagination `json:"pagination"`
}

// HomeContent is the aggregated landing-page payload. Slider entries come
// from the homehero module through a narrow interface, hence interface{}.
type HomeContent struct {
	ALaffiche     []Event     `json:"aLaffiche"`
	Spectacles    []Event     `json:"spectacles"`
	Prochainement []Event     `json:"prochainement"`
	HomeSlider    interface{} `json:"homeSlider"`
}

// Catalogue is the filtered public browsing view.
type Catalogue struct {
	Events        []Event     `json:"events"`
	Prochainement []Event     `json:"prochainement"`
	ALaffiche     interface{} `json:"aLaffiche"`
	ShowTypes     interface{} `json:"showTypes"`
}
