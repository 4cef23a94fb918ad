package affiche

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"majestic/internal/shared/apperror"
)

type Service interface {
	SetEventChecker(checker EventChecker)
	CreateAffiche(req CreateAfficheRequest) (*AfficheItem, error)
	ListAffiches() ([]AfficheItem, error)
	GetAfficheByID(id uuid.UUID) (*AfficheItem, error)
	UpdateAffiche(id uuid.UUID, req UpdateAfficheRequest) (*AfficheItem, error)
	DeleteAffiche(id uuid.UUID) error
	DeleteByEventID(eventID uuid.UUID) error
}

// EventChecker verifies the referenced event exists before pinning it.
type EventChecker interface {
	GetAvailableVersions(id uuid.UUID) ([]string, error)
}

type service struct {
	repo         Repository
	eventChecker EventChecker
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) SetEventChecker(checker EventChecker) {
	s.eventChecker = checker
}

func (s *service) CreateAffiche(req CreateAfficheRequest) (*AfficheItem, error) {
	if s.eventChecker != nil {
		if _, err := s.eventChecker.GetAvailableVersions(req.EventID); err != nil {
			return nil, err
		}
	}

	item := &AfficheItem{
		EventID: req.EventID,
		Poster:  req.Poster,
	}
	if err := s.repo.Create(item); err != nil {
		return nil, apperror.Wrap(apperror.Internal, "failed to create affiche item", err)
	}
	return item, nil
}

func (s *service) ListAffiches() ([]AfficheItem, error) {
	items, err := s.repo.GetAll()
	if err != nil {
		return nil, apperror.Wrap(apperror.Internal, "failed to list affiche items", err)
	}
	return items, nil
}

func (s *service) GetAfficheByID(id uuid.UUID) (*AfficheItem, error) {
	item, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.New(apperror.NotFound, "Affiche item not found")
		}
		return nil, apperror.Wrap(apperror.Internal, "failed to load affiche item", err)
	}
	return item, nil
}

func (s *service) UpdateAffiche(id uuid.UUID, req UpdateAfficheRequest) (*AfficheItem, error) {
	updates := make(map[string]interface{})
	if req.Poster != nil {
		updates["poster"] = *req.Poster
	}
	if len(updates) == 0 {
		return nil, apperror.New(apperror.BadRequest, "No valid fields provided for update")
	}

	item, err := s.repo.Update(id, updates)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.New(apperror.NotFound, "Affiche item not found")
		}
		return nil, apperror.Wrap(apperror.Internal, "failed to update affiche item", err)
	}
	return item, nil
}

func (s *service) DeleteAffiche(id uuid.UUID) error {
	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.New(apperror.NotFound, "Affiche item not found")
		}
		return apperror.Wrap(apperror.Internal, "failed to delete affiche item", err)
	}
	return nil
}

func (s *service) DeleteByEventID(eventID uuid.UUID) error {
	if err := s.repo.DeleteByEventID(eventID); err != nil {
		return apperror.Wrap(apperror.Internal, "failed to delete affiche items", err)
	}
	return nil
}
