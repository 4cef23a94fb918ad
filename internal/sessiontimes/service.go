package sessiontimes

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"majestic/internal/shared/apperror"
)

type Service interface {
	CreateSessionTime(req CreateSessionTimeRequest) (*SessionTime, error)
	ListSessionTimes() ([]SessionTime, error)
	GetSessionTimeByID(id uuid.UUID) (*SessionTime, error)
	UpdateSessionTime(id uuid.UUID, req UpdateSessionTimeRequest) (*SessionTime, error)
	DeleteSessionTime(id uuid.UUID) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) CreateSessionTime(req CreateSessionTimeRequest) (*SessionTime, error) {
	sessionTime := &SessionTime{Time: req.Time}
	if err := s.repo.Create(sessionTime); err != nil {
		return nil, apperror.Wrap(apperror.Internal, "failed to create session time", err)
	}
	return sessionTime, nil
}

func (s *service) ListSessionTimes() ([]SessionTime, error) {
	items, err := s.repo.GetAll()
	if err != nil {
		return nil, apperror.Wrap(apperror.Internal, "failed to list session times", err)
	}
	return items, nil
}

func (s *service) GetSessionTimeByID(id uuid.UUID) (*SessionTime, error) {
	sessionTime, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.New(apperror.NotFound, "Session time not found")
		}
		return nil, apperror.Wrap(apperror.Internal, "failed to load session time", err)
	}
	return sessionTime, nil
}

func (s *service) UpdateSessionTime(id uuid.UUID, req UpdateSessionTimeRequest) (*SessionTime, error) {
	updates := make(map[string]interface{})
	if req.Time != nil {
		updates["time"] = *req.Time
	}
	if len(updates) == 0 {
		return nil, apperror.New(apperror.BadRequest, "No valid fields provided for update")
	}

	sessionTime, err := s.repo.Update(id, updates)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.New(apperror.NotFound, "Session time not found")
		}
		return nil, apperror.Wrap(apperror.Internal, "failed to update session time", err)
	}
	return sessionTime, nil
}

func (s *service) DeleteSessionTime(id uuid.UUID) error {
	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.New(apperror.NotFound, "Session time not found")
		}
		return apperror.Wrap(apperror.Internal, "failed to delete session time", err)
	}
	return nil
}
