// Package seatmap models a room's seating grid and the sparse overrides
// layered on top of it. Rooms own the base layout; sessions stack their own
// per-showing exceptions over it. All validators are pure and fail fast on
// the first violation.
package seatmap

import (
	"fmt"

	"github.com/google/uuid"

	"majestic/internal/shared/apperror"
)

type CellType string

const (
	CellSeat  CellType = "chaise"  // bookable seat
	CellAisle CellType = "couloir" // aisle, never bookable
)

type OverrideStatus string

const (
	OverrideBlocked OverrideStatus = "blocked"
	OverrideStaff   OverrideStatus = "staff"
	OverrideSeat    OverrideStatus = "chaise" // seat handed back to regular use
)

// Scope selects which override statuses are legal. Room overrides are
// permanent exceptions; session overrides apply to one showing and may also
// reclassify a cell back to a seat.
type Scope int

const (
	ScopeRoom Scope = iota
	ScopeSession
)

type Cell struct {
	Row      string   `json:"row"`
	Col      int      `json:"col"`
	CellType CellType `json:"cellType"`
}

type Override struct {
	Row    string         `json:"row"`
	Col    int            `json:"col"`
	Status OverrideStatus `json:"status"`
}

type PricingOverride struct {
	Row       string    `json:"row"`
	Col       int       `json:"col"`
	PricingID uuid.UUID `json:"pricingId"`
}

type PricingLimit struct {
	PricingID  uuid.UUID `json:"pricingId"`
	MaxTickets int       `json:"maxTickets"`
	SoldCount  int       `json:"soldCount"`
}

// Index maps a "row:col" composite key to the cell's classification,
// giving O(1) membership checks across all validations in one request.
// An empty index means no reference layout is available and containment
// checks are skipped.
type Index map[string]CellType

func cellKey(row string, col int) string {
	return fmt.Sprintf("%s:%d", row, col)
}

// BuildIndex builds the coordinate index from a room layout.
func BuildIndex(layout []Cell) Index {
	idx := make(Index, len(layout))
	for _, cell := range layout {
		idx[cellKey(cell.Row, cell.Col)] = cell.CellType
	}
	return idx
}

// PricingSet is an optional set of known pricing tier ids. A nil set skips
// the existence check and only the structural id validation runs.
type PricingSet map[uuid.UUID]struct{}

func NewPricingSet(ids ...uuid.UUID) PricingSet {
	set := make(PricingSet, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

func (s PricingSet) Has(id uuid.UUID) bool {
	_, ok := s[id]
	return ok
}

// ValidateLayout checks the structural integrity of a room layout.
func ValidateLayout(layout []Cell) error {
	seen := make(map[string]struct{}, len(layout))
	for _, cell := range layout {
		if cell.Row == "" || cell.Col < 1 {
			return apperror.New(apperror.BadRequest, "layout cells require row and col")
		}
		if cell.CellType != CellSeat && cell.CellType != CellAisle {
			return apperror.Newf(apperror.BadRequest, "invalid cellType %q in layout", cell.CellType)
		}
		key := cellKey(cell.Row, cell.Col)
		if _, dup := seen[key]; dup {
			return apperror.Newf(apperror.BadRequest, "duplicate layout cell %s", key)
		}
		seen[key] = struct{}{}
	}
	return nil
}

// ValidateOverrides checks override entries against the allowed status set
// for the given scope. When idx is non-empty each override must target a
// coordinate present in the layout.
func ValidateOverrides(overrides []Override, scope Scope, idx Index) error {
	for _, item := range overrides {
		if item.Row == "" || item.Col < 1 || item.Status == "" {
			return apperror.New(apperror.BadRequest, "overrides requires row, col, and status")
		}
		if !statusAllowed(item.Status, scope) {
			return apperror.New(apperror.BadRequest, "invalid status in overrides")
		}
		if len(idx) > 0 {
			if _, ok := idx[cellKey(item.Row, item.Col)]; !ok {
				return apperror.New(apperror.BadRequest, "overrides row/col must exist in layout")
			}
		}
	}
	return nil
}

func statusAllowed(status OverrideStatus, scope Scope) bool {
	switch status {
	case OverrideBlocked, OverrideStaff:
		return true
	case OverrideSeat:
		return scope == ScopeSession
	default:
		return false
	}
}

// ValidatePricingOverrides checks per-seat pricing assignments. When idx is
// non-empty the targeted coordinate must exist and be a seat cell; pricing
// overrides on aisle cells are rejected. When known is non-nil the pricing
// id must be a member.
func ValidatePricingOverrides(overrides []PricingOverride, idx Index, known PricingSet) error {
	for _, item := range overrides {
		if item.Row == "" || item.Col < 1 || item.PricingID == uuid.Nil {
			return apperror.New(apperror.BadRequest, "pricingOverrides requires row, col, and pricingId")
		}
		if known != nil && !known.Has(item.PricingID) {
			return apperror.New(apperror.BadRequest, "unknown pricingId in pricingOverrides")
		}
		if len(idx) > 0 {
			cellType, ok := idx[cellKey(item.Row, item.Col)]
			if !ok {
				return apperror.New(apperror.BadRequest, "pricingOverrides row/col must exist in layout")
			}
			if cellType != CellSeat {
				return apperror.New(apperror.BadRequest, "pricingOverrides can only target chaise cells")
			}
		}
	}
	return nil
}

// ValidatePricingLimits checks per-tier sale caps. Capacity arithmetic
// against the room is left to the caller.
func ValidatePricingLimits(limits []PricingLimit, known PricingSet) error {
	for _, limit := range limits {
		if limit.PricingID == uuid.Nil {
			return apperror.New(apperror.BadRequest, "pricingLimits.pricingId is required")
		}
		if known != nil && !known.Has(limit.PricingID) {
			return apperror.New(apperror.BadRequest, "unknown pricingId in pricingLimits")
		}
		if limit.MaxTickets < 0 {
			return apperror.New(apperror.BadRequest, "pricingLimits.maxTickets cannot be negative")
		}
		if limit.SoldCount < 0 {
			return apperror.New(apperror.BadRequest, "pricingLimits.soldCount cannot be negative")
		}
	}
	return nil
}

// SeatCount returns the number of bookable seats in a layout.
func SeatCount(layout []Cell) int {
	count := 0
	for _, cell := range layout {
		if cell.CellType == CellSeat {
			count++
		}
	}
	return count
}
