package seatmap

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleLayout() []Cell {
	return []Cell{
		{Row: "A", Col: 1, CellType: CellSeat},
		{Row: "A", Col: 2, CellType: CellSeat},
		{Row: "A", Col: 3, CellType: CellSeat},
		{Row: "A", Col: 4, CellType: CellAisle},
		{Row: "B", Col: 1, CellType: CellSeat},
	}
}

func TestValidateLayout(t *testing.T) {
	assert.NoError(t, ValidateLayout(sampleLayout()))

	err := ValidateLayout([]Cell{{Row: "", Col: 1, CellType: CellSeat}})
	assert.Error(t, err)

	err = ValidateLayout([]Cell{{Row: "A", Col: 0, CellType: CellSeat}})
	assert.Error(t, err)

	err = ValidateLayout([]Cell{{Row: "A", Col: 1, CellType: "sofa"}})
	assert.Error(t, err)

	err = ValidateLayout([]Cell{
		{Row: "A", Col: 1, CellType: CellSeat},
		{Row: "A", Col: 1, CellType: CellAisle},
	})
	assert.Error(t, err)
}

func TestValidateOverridesScopes(t *testing.T) {
	idx := BuildIndex(sampleLayout())

	tests := []struct {
		name    string
		status  OverrideStatus
		scope   Scope
		wantErr bool
	}{
		{"blocked allowed for rooms", OverrideBlocked, ScopeRoom, false},
		{"staff allowed for rooms", OverrideStaff, ScopeRoom, false},
		{"chaise rejected for rooms", OverrideSeat, ScopeRoom, true},
		{"blocked allowed for sessions", OverrideBlocked, ScopeSession, false},
		{"chaise allowed for sessions", OverrideSeat, ScopeSession, false},
		{"unknown status rejected", OverrideStatus("vip"), ScopeSession, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOverrides([]Override{{Row: "A", Col: 1, Status: tt.status}}, tt.scope, idx)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateOverridesContainment(t *testing.T) {
	idx := BuildIndex(sampleLayout())

	err := ValidateOverrides([]Override{{Row: "Z", Col: 99, Status: OverrideBlocked}}, ScopeSession, idx)
	assert.Error(t, err)

	// no reference layout: containment is skipped
	err = ValidateOverrides([]Override{{Row: "Z", Col: 99, Status: OverrideBlocked}}, ScopeSession, nil)
	assert.NoError(t, err)

	err = ValidateOverrides([]Override{{Row: "A", Col: 1}}, ScopeSession, idx)
	assert.Error(t, err, "missing status must be rejected")
}

func TestValidatePricingOverrides(t *testing.T) {
	idx := BuildIndex(sampleLayout())
	pricingID := uuid.New()

	// seat cell succeeds
	err := ValidatePricingOverrides([]PricingOverride{{Row: "A", Col: 3, PricingID: pricingID}}, idx, nil)
	assert.NoError(t, err)

	// aisle cell rejected
	err = ValidatePricingOverrides([]PricingOverride{{Row: "A", Col: 4, PricingID: pricingID}}, idx, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "chaise")

	// absent coordinate rejected
	err = ValidatePricingOverrides([]PricingOverride{{Row: "Z", Col: 99, PricingID: pricingID}}, idx, nil)
	assert.Error(t, err)

	// missing pricing id rejected
	err = ValidatePricingOverrides([]PricingOverride{{Row: "A", Col: 3}}, idx, nil)
	assert.Error(t, err)

	// empty index skips containment
	err = ValidatePricingOverrides([]PricingOverride{{Row: "Z", Col: 99, PricingID: pricingID}}, nil, nil)
	assert.NoError(t, err)
}

func TestValidatePricingOverridesKnownSet(t *testing.T) {
	idx := BuildIndex(sampleLayout())
	valid := uuid.New()
	known := NewPricingSet(valid)

	err := ValidatePricingOverrides([]PricingOverride{{Row: "A", Col: 1, PricingID: valid}}, idx, known)
	assert.NoError(t, err)

	err = ValidatePricingOverrides([]PricingOverride{{Row: "A", Col: 1, PricingID: uuid.New()}}, idx, known)
	assert.Error(t, err)
}

func TestValidatePricingLimits(t *testing.T) {
	valid := uuid.New()
	known := NewPricingSet(valid)

	err := ValidatePricingLimits([]PricingLimit{{PricingID: valid, MaxTickets: 10}}, known)
	assert.NoError(t, err)

	err = ValidatePricingLimits([]PricingLimit{{MaxTickets: 10}}, nil)
	assert.Error(t, err, "missing pricing id")

	err = ValidatePricingLimits([]PricingLimit{{PricingID: valid, MaxTickets: -1}}, nil)
	assert.Error(t, err)

	err = ValidatePricingLimits([]PricingLimit{{PricingID: valid, SoldCount: -2}}, nil)
	assert.Error(t, err)

	err = ValidatePricingLimits([]PricingLimit{{PricingID: uuid.New()}}, known)
	assert.Error(t, err, "unknown pricing id")
}

func TestSeatCount(t *testing.T) {
	assert.Equal(t, 4, SeatCount(sampleLayout()))
	assert.Equal(t, 0, SeatCount(nil))
	assert.Equal(t, 0, SeatCount([]Cell{{Row: "A", Col: 1, CellType: CellAisle}}))
}
