package languages

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"majestic/internal/shared/apperror"
)

type Service interface {
	CreateLanguage(req CreateLanguageRequest) (*Language, error)
	ListLanguages() ([]Language, error)
	GetLanguageByID(id uuid.UUID) (*Language, error)
	UpdateLanguage(id uuid.UUID, req UpdateLanguageRequest) (*Language, error)
	DeleteLanguage(id uuid.UUID) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) CreateLanguage(req CreateLanguageRequest) (*Language, error) {
	language := &Language{Name: req.Name}
	if err := s.repo.Create(language); err != nil {
		return nil, apperror.Wrap(apperror.Internal, "failed to create language", err)
	}
	return language, nil
}

func (s *service) ListLanguages() ([]Language, error) {
	items, err := s.repo.GetAll()
	if err != nil {
		return nil, apperror.Wrap(apperror.Internal, "failed to list languages", err)
	}
	return items, nil
}

func (s *service) GetLanguageByID(id uuid.UUID) (*Language, error) {
	language, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.New(apperror.NotFound, "Language not found")
		}
		return nil, apperror.Wrap(apperror.Internal, "failed to load language", err)
	}
	return language, nil
}

func (s *service) UpdateLanguage(id uuid.UUID, req UpdateLanguageRequest) (*Language, error) {
	updates := make(map[string]interface{})
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if len(updates) == 0 {
		return nil, apperror.New(apperror.BadRequest, "No valid fields provided for update")
	}

	language, err := s.repo.Update(id, updates)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.New(apperror.NotFound, "Language not found")
		}
		return nil, apperror.Wrap(apperror.Internal, "failed to update language", err)
	}
	return language, nil
}

func (s *service) DeleteLanguage(id uuid.UUID) error {
	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.New(apperror.NotFound, "Language not found")
		}
		return apperror.Wrap(apperror.Internal, "failed to delete language", err)
	}
	return nil
}
