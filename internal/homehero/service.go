package homehero

import (
	"errors"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"majestic/internal/shared/apperror"
)

type Service interface {
	CreateHero(req CreateHeroRequest) (*HeroItem, error)
	ListHeroes() ([]HeroItem, error)
	GetHeroByID(id uuid.UUID) (*HeroItem, error)
	UpdateHero(id uuid.UUID, req UpdateHeroRequest) (*HeroItem, error)
	DeleteHero(id uuid.UUID) error
	Reorder(id uuid.UUID, newOrder int) error

	// HeroProvider surface consumed by the events module.
	ListActiveSlides() (interface{}, error)
	FeaturedSlide() (interface{}, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) CreateHero(req CreateHeroRequest) (*HeroItem, error) {
	active := true
	if req.Active != nil {
		active = *req.Active
	}
	order := 0
	if req.Order != nil {
		order = *req.Order
	}

	item := &HeroItem{
		Title:    req.Title,
		Subtitle: req.Subtitle,
		Poster:   req.Poster,
		EventID:  req.EventID,
		Active:   active,
		Order:    order,
	}

	if err := s.repo.Create(item); err != nil {
		return nil, apperror.Wrap(apperror.Internal, "failed to create hero item", err)
	}
	return item, nil
}

func (s *service) ListHeroes() ([]HeroItem, error) {
	items, err := s.repo.GetAll()
	if err != nil {
		return nil, apperror.Wrap(apperror.Internal, "failed to list hero items", err)
	}
	return items, nil
}

func (s *service) GetHeroByID(id uuid.UUID) (*HeroItem, error) {
	item, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.New(apperror.NotFound, "Hero item not found")
		}
		return nil, apperror.Wrap(apperror.Internal, "failed to load hero item", err)
	}
	return item, nil
}

func (s *service) UpdateHero(id uuid.UUID, req UpdateHeroRequest) (*HeroItem, error) {
	updates := make(map[string]interface{})
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Subtitle != nil {
		updates["subtitle"] = *req.Subtitle
	}
	if req.Poster != nil {
		updates["poster"] = *req.Poster
	}
	if req.EventID != nil {
		updates["event_id"] = *req.EventID
	}
	if req.Active != nil {
		updates["active"] = *req.Active
	}
	if req.Order != nil {
		updates["display_order"] = *req.Order
	}

	if len(updates) == 0 {
		return nil, apperror.New(apperror.BadRequest, "No valid fields provided for update")
	}

	item, err := s.repo.Update(id, updates)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.New(apperror.NotFound, "Hero item not found")
		}
		return nil, apperror.Wrap(apperror.Internal, "failed to update hero item", err)
	}
	return item, nil
}

func (s *service) DeleteHero(id uuid.UUID) error {
	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.New(apperror.NotFound, "Hero item not found")
		}
		return apperror.Wrap(apperror.Internal, "failed to delete hero item", err)
	}
	return nil
}

// Reorder moves a slide to newOrder, swapping with whichever active slide
// currently holds that position. Both lookups run concurrently.
func (s *service) Reorder(id uuid.UUID, newOrder int) error {
	var moving, occupant *HeroItem

	var g errgroup.Group
	g.Go(func() error {
		item, err := s.repo.GetByID(id)
		if err != nil {
			return err
		}
		moving = item
		return nil
	})
	g.Go(func() error {
		item, err := s.repo.GetByOrder(newOrder)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		occupant = item
		return nil
	})

	if err := g.Wait(); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.New(apperror.NotFound, "Hero item not found")
		}
		return apperror.Wrap(apperror.Internal, "failed to load hero items", err)
	}

	if occupant != nil && occupant.ID != moving.ID {
		if _, err := s.repo.Update(occupant.ID, map[string]interface{}{
			"display_order": moving.Order,
		}); err != nil {
			return apperror.Wrap(apperror.Internal, "failed to reorder hero items", err)
		}
	}

	if _, err := s.repo.Update(moving.ID, map[string]interface{}{
		"display_order": newOrder,
	}); err != nil {
		return apperror.Wrap(apperror.Internal, "failed to reorder hero items", err)
	}
	return nil
}

func (s *service) ListActiveSlides() (interface{}, error) {
	items, err := s.repo.GetActive()
	if err != nil {
		return nil, err
	}
	return items, nil
}

// FeaturedSlide returns the first active slide, the one highlighted on the
// catalogue view, or nil when the carousel is empty.
func (s *service) FeaturedSlide() (interface{}, error) {
	items, err := s.repo.GetActive()
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, nil
	}
	return items[0], nil
}
