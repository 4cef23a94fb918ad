package pricing

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"majestic/internal/shared/apperror"
)

type Service interface {
	CreatePricing(req CreatePricingRequest) (*Pricing, error)
	ListPricing() ([]Pricing, error)
	GetPricingByID(id uuid.UUID) (*Pricing, error)
	ListPricingIDs() ([]uuid.UUID, error)
	UpdatePricing(id uuid.UUID, req UpdatePricingRequest) (*Pricing, error)
	DeletePricing(id uuid.UUID) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) CreatePricing(req CreatePricingRequest) (*Pricing, error) {
	if *req.Price < 0 {
		return nil, apperror.New(apperror.BadRequest, "price cannot be negative")
	}

	pricing := &Pricing{
		Name:  req.Name,
		Price: *req.Price,
	}
	if err := s.repo.Create(pricing); err != nil {
		return nil, apperror.Wrap(apperror.Internal, "failed to create pricing", err)
	}
	return pricing, nil
}

func (s *service) ListPricing() ([]Pricing, error) {
	tiers, err := s.repo.GetAll()
	if err != nil {
		return nil, apperror.Wrap(apperror.Internal, "failed to list pricing", err)
	}
	return tiers, nil
}

func (s *service) GetPricingByID(id uuid.UUID) (*Pricing, error) {
	pricing, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.New(apperror.NotFound, "Pricing not found")
		}
		return nil, apperror.Wrap(apperror.Internal, "failed to load pricing", err)
	}
	return pricing, nil
}

func (s *service) ListPricingIDs() ([]uuid.UUID, error) {
	return s.repo.GetAllIDs()
}

func (s *service) UpdatePricing(id uuid.UUID, req UpdatePricingRequest) (*Pricing, error) {
	updates := make(map[string]interface{})
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Price != nil {
		if *req.Price < 0 {
			return nil, apperror.New(apperror.BadRequest, "price cannot be negative")
		}
		updates["price"] = *req.Price
	}

	if len(updates) == 0 {
		return nil, apperror.New(apperror.BadRequest, "No valid fields provided for update")
	}

	pricing, err := s.repo.Update(id, updates)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.New(apperror.NotFound, "Pricing not found")
		}
		return nil, apperror.Wrap(apperror.Internal, "failed to update pricing", err)
	}
	return pricing, nil
}

func (s *service) DeletePricing(id uuid.UUID) error {
	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.New(apperror.NotFound, "Pricing not found")
		}
		return apperror.Wrap(apperror.Internal, "failed to delete pricing", err)
	}
	return nil
}
