package showtypes

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"majestic/internal/shared/apperror"
)

type Service interface {
	CreateShowType(req CreateShowTypeRequest) (*ShowType, error)
	ListShowTypes() ([]ShowType, error)
	GetShowTypeByID(id uuid.UUID) (*ShowType, error)
	UpdateShowType(id uuid.UUID, req UpdateShowTypeRequest) (*ShowType, error)
	DeleteShowType(id uuid.UUID) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) CreateShowType(req CreateShowTypeRequest) (*ShowType, error) {
	showType := &ShowType{Name: req.Name}
	if err := s.repo.Create(showType); err != nil {
		return nil, apperror.Wrap(apperror.Internal, "failed to create show type", err)
	}
	return showType, nil
}

func (s *service) ListShowTypes() ([]ShowType, error) {
	items, err := s.repo.GetAll()
	if err != nil {
		return nil, apperror.Wrap(apperror.Internal, "failed to list show types", err)
	}
	return items, nil
}

func (s *service) GetShowTypeByID(id uuid.UUID) (*ShowType, error) {
	showType, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.New(apperror.NotFound, "Show type not found")
		}
		return nil, apperror.Wrap(apperror.Internal, "failed to load show type", err)
	}
	return showType, nil
}

func (s *service) UpdateShowType(id uuid.UUID, req UpdateShowTypeRequest) (*ShowType, error) {
	updates := make(map[string]interface{})
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if len(updates) == 0 {
		return nil, apperror.New(apperror.BadRequest, "No valid fields provided for update")
	}

	showType, err := s.repo.Update(id, updates)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.New(apperror.NotFound, "Show type not found")
		}
		return nil, apperror.Wrap(apperror.Internal, "failed to update show type", err)
	}
	return showType, nil
}

func (s *service) DeleteShowType(id uuid.UUID) error {
	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.New(apperror.NotFound, "Show type not found")
		}
		return apperror.Wrap(apperror.Internal, "failed to delete show type", err)
	}
	return nil
}
