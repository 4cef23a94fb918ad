package rooms

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"majestic/internal/seatmap"
	"majestic/internal/shared/apperror"
)

type Service interface {
	SetPricingCatalog(catalog PricingCatalog)
	CreateRoom(req CreateRoomRequest) (*Room, error)
	ListRooms() ([]Room, error)
	GetRoomByID(id uuid.UUID) (*Room, error)
	GetRoomByName(name string) (*Room, error)
	UpdateRoom(id uuid.UUID, req UpdateRoomRequest) (*Room, error)
	DeleteRoom(id uuid.UUID) error
}

// PricingCatalog supplies the set of known pricing tier ids so room-level
// pricing overrides can be checked for referential integrity. Optional; when
// absent only structural validation runs.
type PricingCatalog interface {
	ListPricingIDs() ([]uuid.UUID, error)
}

type service struct {
	repo    Repository
	catalog PricingCatalog
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) SetPricingCatalog(catalog PricingCatalog) {
	s.catalog = catalog
}

func (s *service) knownPricing() seatmap.PricingSet {
	if s.catalog == nil {
		return nil
	}
	ids, err := s.catalog.ListPricingIDs()
	if err != nil {
		// fall back to structural-only validation rather than failing the write
		return nil
	}
	return seatmap.NewPricingSet(ids...)
}

func (s *service) CreateRoom(req CreateRoomRequest) (*Room, error) {
	if len(req.Layout) == 0 {
		return nil, apperror.New(apperror.BadRequest, "layout is required")
	}
	if err := seatmap.ValidateLayout(req.Layout); err != nil {
		return nil, err
	}

	idx := seatmap.BuildIndex(req.Layout)
	if err := seatmap.ValidateOverrides(req.Overrides, seatmap.ScopeRoom, idx); err != nil {
		return nil, err
	}
	if err := seatmap.ValidatePricingOverrides(req.PricingOverrides, idx, s.knownPricing()); err != nil {
		return nil, err
	}

	capacity := seatmap.SeatCount(req.Layout)
	if req.Capacity != nil {
		if *req.Capacity < 0 {
			return nil, apperror.New(apperror.BadRequest, "Capacity must be a positive number")
		}
		capacity = *req.Capacity
	}

	room := &Room{
		Name:             req.Name,
		Capacity:         capacity,
		Layout:           req.Layout,
		Overrides:        req.Overrides,
		PricingOverrides: req.PricingOverrides,
	}
	if err := s.repo.Create(room); err != nil {
		return nil, apperror.Wrap(apperror.Internal, "failed to create room", err)
	}
	return room, nil
}

func (s *service) ListRooms() ([]Room, error) {
	items, err := s.repo.GetAll()
	if err != nil {
		return nil, apperror.Wrap(apperror.Internal, "failed to list rooms", err)
	}
	return items, nil
}

func (s *service) GetRoomByID(id uuid.UUID) (*Room, error) {
	room, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.New(apperror.NotFound, "Room not found")
		}
		return nil, apperror.Wrap(apperror.Internal, "failed to load room", err)
	}
	return room, nil
}

func (s *service) GetRoomByName(name string) (*Room, error) {
	room, err := s.repo.GetByName(name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.New(apperror.NotFound, "Room not found")
		}
		return nil, apperror.Wrap(apperror.Internal, "failed to load room", err)
	}
	return room, nil
}

func (s *service) UpdateRoom(id uuid.UUID, req UpdateRoomRequest) (*Room, error) {
	existing, err := s.GetRoomByID(id)
	if err != nil {
		return nil, err
	}

	// overrides are validated against the layout they will live with
	layoutForValidation := existing.Layout
	if req.Layout != nil {
		if err := seatmap.ValidateLayout(*req.Layout); err != nil {
			return nil, err
		}
		layoutForValidation = *req.Layout
	}
	idx := seatmap.BuildIndex(layoutForValidation)

	updates := make(map[string]interface{})
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Layout != nil {
		updates["layout"] = *req.Layout
	}
	if req.Overrides != nil {
		if err := seatmap.ValidateOverrides(*req.Overrides, seatmap.ScopeRoom, idx); err != nil {
			return nil, err
		}
		updates["overrides"] = *req.Overrides
	}
	if req.PricingOverrides != nil {
		if err := seatmap.ValidatePricingOverrides(*req.PricingOverrides, idx, s.knownPricing()); err != nil {
			return nil, err
		}
		updates["pricing_overrides"] = *req.PricingOverrides
	}

	switch {
	case req.Capacity != nil:
		if *req.Capacity < 0 {
			return nil, apperror.New(apperror.BadRequest, "Capacity must be a positive number")
		}
		updates["capacity"] = *req.Capacity
	case req.Layout != nil:
		// layout changed without an explicit capacity: re-derive from seats
		updates["capacity"] = seatmap.SeatCount(*req.Layout)
	}

	if len(updates) == 0 {
		return nil, apperror.New(apperror.BadRequest, "No valid fields provided for update")
	}

	room, err := s.repo.Update(id, updates)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.New(apperror.NotFound, "Room not found")
		}
		return nil, apperror.Wrap(apperror.Internal, "failed to update room", err)
	}
	return room, nil
}

func (s *service) DeleteRoom(id uuid.UUID) error {
	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.New(apperror.NotFound, "Room not found")
		}
		return apperror.Wrap(apperror.Internal, "failed to delete room", err)
	}
	return nil
}
