package sessions

import (
	"time"

	"github.com/google/uuid"

	"majestic/internal/seatmap"
)

type SessionStatus string

const (
	SessionStatusPending    SessionStatus = "pending"
	SessionStatusScheduled  SessionStatus = "scheduled"
	SessionStatusInProgress SessionStatus = "in_progress"
	SessionStatusCompleted  SessionStatus = "completed"
	SessionStatusCancelled  SessionStatus = "cancelled"
)

func IsValidStatus(status SessionStatus) bool {
	switch status {
	case SessionStatusPending, SessionStatusScheduled, SessionStatusInProgress,
		SessionStatusCompleted, SessionStatusCancelled:
		return true
	}
	return false
}

// Session is one screening or performance slot. Date is truncated to the
// UTC day; together with SessionTime it forms the venue-wide slot, enforced
// by a composite unique index. RoomID carries the room name so a session
// survives room edits.
type Session struct {
	ID               uuid.UUID                 `json:"id" gorm:"primaryKey;type:uuid;default:uuid_generate_v4()"`
	EventID          uuid.UUID                 `json:"eventId" gorm:"type:uuid;not null;index"`
	Date             time.Time                 `json:"date" gorm:"not null;uniqueIndex:idx_sessions_slot;index"`
	SessionTime      string                    `json:"sessionTime" gorm:"not null;uniqueIndex:idx_sessions_slot"`
	Version          string                    `json:"version" gorm:"not null"`
	RoomID           string                    `json:"roomId" gorm:"not null"`
	TotalSeats       int                       `json:"totalSeats" gorm:"not null"`
	AvailableSeats   int                       `json:"availableSeats" gorm:"not null"`
	Overrides        []seatmap.Override        `json:"overrides" gorm:"type:jsonb;serializer:json"`
	PricingOverrides []seatmap.PricingOverride `json:"pricingOverrides" gorm:"type:jsonb;serializer:json"`
	PricingLimits    []seatmap.PricingLimit    `json:"pricingLimits" gorm:"type:jsonb;serializer:json"`
	Status           SessionStatus             `json:"status" gorm:"not null;default:'pending'"`
	CreatedBy        uuid.UUID                 `json:"createdBy" gorm:"type:uuid;not null"`
	CreatedAt        time.Time                 `json:"createdAt"`
	UpdatedAt        time.Time                 `json:"updatedAt"`
}

type CreateSessionRequest struct {
	EventID          string                    `json:"eventId" binding:"required"`
	Date             string                    `json:"date" binding:"required"`
	SessionTime      string                    `json:"sessionTime" binding:"required,hhmm"`
	Version          string                    `json:"version" binding:"required"`
	RoomID           string                    `json:"roomId" binding:"required"`
	TotalSeats       *int                      `json:"totalSeats" binding:"required"`
	AvailableSeats   *int                      `json:"availableSeats"`
	Overrides        []seatmap.Override        `json:"overrides"`
	PricingOverrides []seatmap.PricingOverride `json:"pricingOverrides"`
	PricingLimits    []seatmap.PricingLimit    `json:"pricingLimits"`
	Status           string                    `json:"status" binding:"omitempty,oneof=pending scheduled in_progress completed cancelled"`
}

type UpdateSessionRequest struct {
	EventID          *string                    `json:"eventId"`
	Date             *string                    `json:"date"`
	SessionTime      *string                    `json:"sessionTime" binding:"omitempty,hhmm"`
	Version          *string                    `json:"version"`
	RoomID           *string                    `json:"roomId"`
	TotalSeats       *int                       `json:"totalSeats"`
	AvailableSeats   *int                       `json:"availableSeats"`
	Overrides        *[]seatmap.Override        `json:"overrides"`
	PricingOverrides *[]seatmap.PricingOverride `json:"pricingOverrides"`
	PricingLimits    *[]seatmap.PricingLimit    `json:"pricingLimits"`
	Status           *string                    `json:"status" binding:"omitempty,oneof=pending scheduled in_progress completed cancelled"`
}

type SessionListQuery struct {
	EventID string `form:"eventId"`
	From    string `form:"from"`
	To      string `form:"to"`
	Status  string `form:"status"`
	Sort    string `form:"sort" binding:"omitempty,oneof=schedule recent"`
	Page    int    `form:"page"`
	Limit   int    `form:"limit"`
}

type Pagination struct {
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Pages int   `json:"pages"`
}

type PaginatedSessions struct {
	Sessions   []Session  `json:"sessions"`
	Pagination Pagination `json:"pagination"`
}

// EventSummary carries the event display fields the front-end needs next to
// a session, resolved through the injected catalog.
type EventSummary struct {
	ID             uuid.UUID `json:"id"`
	Type           string    `json:"type"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	Poster         string    `json:"poster"`
	Genres         []string  `json:"genres"`
	Duration       int       `json:"duration"`
	AgeRestriction string    `json:"ageRestriction"`
	DirectedBy     string    `json:"directedBy"`
	TrailerLink    string    `json:"trailerLink"`
}

// SessionSlot is the trimmed session shape used by public schedule views.
type SessionSlot struct {
	ID             uuid.UUID     `json:"id"`
	Date           time.Time     `json:"date"`
	SessionTime    string        `json:"sessionTime"`
	Version        string        `json:"version"`
	RoomID         string        `json:"roomId"`
	TotalSeats     int           `json:"totalSeats"`
	AvailableSeats int           `json:"availableSeats"`
	Status         SessionStatus `json:"status"`
}

func (s *Session) slot() SessionSlot {
	return SessionSlot{
		ID:             s.ID,
		Date:           s.Date,
		SessionTime:    s.SessionTime,
		Version:        s.Version,
		RoomID:         s.RoomID,
		TotalSeats:     s.TotalSeats,
		AvailableSeats: s.AvailableSeats,
		Status:         s.Status,
	}
}

type EventSessionsView struct {
	Event    *EventSummary `json:"event"`
	Sessions []SessionSlot `json:"sessions"`
}

type SessionWithEvent struct {
	Session
	Event *EventSummary `json:"event"`
}

// DayProgram is one bucket of the grouped-by-date schedule.
type DayProgram struct {
	Date     string             `json:"date"`
	Sessions []SessionWithEvent `json:"sessions"`
}

// TicketRequest covers both selling and releasing seats. PricingID selects
// which per-tier counter to move; when nil only the global availability
// changes.
type TicketRequest struct {
	Count     int        `json:"count" binding:"required,min=1"`
	PricingID *uuid.UUID `json:"pricingId"`
}
