package events

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"majestic/internal/shared/apperror"
	"majestic/internal/shared/constants"
	"majestic/pkg/cache"
	"majestic/pkg/logger"
)

type Service interface {
	// Dependency injection (wired at startup, avoids package cycles)
	SetSessionStore(store SessionStore)
	SetHeroProvider(provider HeroProvider)
	SetShowTypeSource(source ShowTypeSource)
	SetCacheService(cacheService cache.Service)

	CreateEvent(adminID uuid.UUID, req CreateEventRequest) (*Event, error)
	GetEventByID(id uuid.UUID) (*Event, error)
	GetAvailableVersions(id uuid.UUID) ([]string, error)
	ListEvents(query EventListQuery) (*PaginatedEvents, error)
	UpdateEvent(id uuid.UUID, req UpdateEventRequest) (*Event, error)
	UpdatePoster(id uuid.UUID, posterURL string) (*Event, error)
	DeleteEvent(id uuid.UUID) error

	GetHomeContent(ctx context.Context) (*HomeContent, error)
	GetCatalogue(ctx context.Context, eventType, genre string) (*Catalogue, error)
}

// SessionStore is the slice of the sessions module the events module needs:
// cascade deletion and "which events have sessions from today on".
type SessionStore interface {
	DeleteByEventID(eventID uuid.UUID) error
	DistinctEventIDs(from time.Time) ([]uuid.UUID, error)
}

// HeroProvider supplies home slider entries. interface{} payloads keep the
// dependency direction homehero -> events.
type HeroProvider interface {
	ListActiveSlides() (interface{}, error)
	FeaturedSlide() (interface{}, error)
}

// ShowTypeSource lists show types for the catalogue view.
type ShowTypeSource interface {
	ListShowTypes() (interface{}, error)
}

type service struct {
	repo           Repository
	sessionStore   SessionStore
	heroProvider   HeroProvider
	showTypeSource ShowTypeSource
	cacheService   cache.Service
	log            *logger.Logger
}

func NewService(repo Repository) Service {
	return &service{
		repo: repo,
		log:  logger.GetDefault(),
	}
}

func (s *service) SetSessionStore(store SessionStore) { s.sessionStore = store }

func (s *service) SetHeroProvider(provider HeroProvider) { s.heroProvider = provider }

func (s *service) SetShowTypeSource(source ShowTypeSource) { s.showTypeSource = source }

func (s *service) SetCacheService(cacheService cache.Service) { s.cacheService = cacheService }

func (s *service) invalidateCaches(ctx context.Context) {
	if s.cacheService == nil {
		return
	}
	if err := s.cacheService.DeletePattern(ctx, constants.CACHE_PATTERN_EVENTS); err != nil {
		s.log.Warn("failed to invalidate event caches", "error", err)
	}
	// schedule views denormalize event display fields
	if err := s.cacheService.DeletePattern(ctx, constants.CACHE_PATTERN_SESSIONS); err != nil {
		s.log.Warn("failed to invalidate session caches", "error", err)
	}
}

func (s *service) CreateEvent(adminID uuid.UUID, req CreateEventRequest) (*Event, error) {
	if adminID == uuid.Nil {
		return nil, apperror.New(apperror.Unauthorized, "Missing admin user id")
	}

	status := EventStatusActive
	if req.Status != "" {
		status = EventStatus(strings.ToLower(req.Status))
	}

	event := &Event{
		Type:              EventType(strings.ToLower(req.Type)),
		Name:              req.Name,
		Description:       req.Description,
		Poster:            req.Poster,
		TrailerLink:       req.TrailerLink,
		Duration:          req.Duration,
		AgeRestriction:    req.AgeRestriction,
		Genres:            req.Genres,
		AvailableVersions: req.AvailableVersions,
		ReleaseDate:       req.ReleaseDate,
		DirectedBy:        req.DirectedBy,
		Cast:              req.Cast,
		AvailableFrom:     req.AvailableFrom,
		AvailableTo:       req.AvailableTo,
		Status:            status,
		CreatedBy:         adminID,
	}

	if err := s.repo.Create(event); err != nil {
		return nil, apperror.Wrap(apperror.Internal, "failed to create event", err)
	}

	s.invalidateCaches(context.Background())
	return event, nil
}

func (s *service) GetEventByID(id uuid.UUID) (*Event, error) {
	event, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.New(apperror.NotFound, "Event not found")
		}
		return nil, apperror.Wrap(apperror.Internal, "failed to load event", err)
	}
	return event, nil
}

func (s *service) GetAvailableVersions(id uuid.UUID) ([]string, error) {
	event, err := s.GetEventByID(id)
	if err != nil {
		return nil, err
	}
	return event.AvailableVersions, nil
}

func (s *service) ListEvents(query EventListQuery) (*PaginatedEvents, error) {
	items, total, err := s.repo.GetAll(query)
	if err != nil {
		return nil, apperror.Wrap(apperror.Internal, "failed to list events", err)
	}

	if query.Page == 0 {
		query.Page = 1
	}
	if query.Limit == 0 {
		query.Limit = 20
	}

	return &PaginatedEvents{
		Events: items,
		Pagination: Pagination{
			Total: total,
			Page:  query.Page,
			Limit: query.Limit,
			Pages: int(math.Ceil(float64(total) / float64(query.Limit))),
		},
	}, nil
}

func (s *service) UpdateEvent(id uuid.UUID, req UpdateEventRequest) (*Event, error) {
	updates := make(map[string]interface{})
	if req.Type != nil {
		updates["type"] = strings.ToLower(*req.Type)
	}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Poster != nil {
		updates["poster"] = *req.Poster
	}
	if req.TrailerLink != nil {
		updates["trailer_link"] = *req.TrailerLink
	}
	if req.Duration != nil {
		updates["duration"] = *req.Duration
	}
	if req.AgeRestriction != nil {
		updates["age_restriction"] = *req.AgeRestriction
	}
	if req.Genres != nil {
		updates["genres"] = *req.Genres
	}
	if req.AvailableVersions != nil {
		updates["available_versions"] = *req.AvailableVersions
	}
	if req.ReleaseDate != nil {
		updates["release_date"] = *req.ReleaseDate
	}
	if req.DirectedBy != nil {
		updates["directed_by"] = *req.DirectedBy
	}
	if req.Cast != nil {
		updates["cast"] = *req.Cast
	}
	if req.AvailableFrom != nil {
		updates["available_from"] = *req.AvailableFrom
	}
	if req.AvailableTo != nil {
		updates["available_to"] = *req.AvailableTo
	}
	if req.Status != nil {
		updates["status"] = strings.ToLower(*req.Status)
	}

	if len(updates) == 0 {
		return nil, apperror.New(apperror.BadRequest, "No valid fields provided for update")
	}

	event, err := s.repo.Update(id, updates)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.New(apperror.NotFound, "Event not found")
		}
		return nil, apperror.Wrap(apperror.Internal, "failed to update event", err)
	}

	s.invalidateCaches(context.Background())
	return event, nil
}

func (s *service) UpdatePoster(id uuid.UUID, posterURL string) (*Event, error) {
	if posterURL == "" {
		return nil, apperror.New(apperror.BadRequest, "Poster image is required")
	}
	poster := posterURL
	return s.UpdateEvent(id, UpdateEventRequest{Poster: &poster})
}

// DeleteEvent removes the event and cascades to its sessions.
func (s *service) DeleteEvent(id uuid.UUID) error {
	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.New(apperror.NotFound, "Event not found")
		}
		return apperror.Wrap(apperror.Internal, "failed to delete event", err)
	}

	if s.sessionStore != nil {
		if err := s.sessionStore.DeleteByEventID(id); err != nil {
			return apperror.Wrap(apperror.Internal, "failed to delete event sessions", err)
		}
	}

	s.invalidateCaches(context.Background())
	return nil
}

func startOfToday(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

// GetHomeContent aggregates the landing page: events with sessions from
// today on (split movies/shows), upcoming events, and the hero slider. The
// four reads run concurrently; the result is cached.
func (s *service) GetHomeContent(ctx context.Context) (*HomeContent, error) {
	var content HomeContent

	fetch := func() (interface{}, error) {
		now := time.Now().UTC()

		var scheduledIDs []uuid.UUID
		if s.sessionStore != nil {
			ids, err := s.sessionStore.DistinctEventIDs(startOfToday(now))
			if err != nil {
				return nil, err
			}
			scheduledIDs = ids
			if scheduledIDs == nil {
				scheduledIDs = []uuid.UUID{}
			}
		}

		var result HomeContent
		g, _ := errgroup.WithContext(ctx)

		g.Go(func() error {
			movies, err := s.repo.GetActiveInWindow(now, EventTypeMovie, scheduledIDs)
			result.ALaffiche = movies
			return err
		})
		g.Go(func() error {
			shows, err := s.repo.GetActiveInWindow(now, EventTypeShow, scheduledIDs)
			result.Spectacles = shows
			return err
		})
		g.Go(func() error {
			upcoming, err := s.repo.GetUpcoming(now, "")
			result.Prochainement = upcoming
			return err
		})
		g.Go(func() error {
			if s.heroProvider == nil {
				return nil
			}
			slides, err := s.heroProvider.ListActiveSlides()
			result.HomeSlider = slides
			return err
		})

		if err := g.Wait(); err != nil {
			return nil, err
		}
		return &result, nil
	}

	if s.cacheService != nil {
		err := s.cacheService.GetOrSet(ctx, constants.CACHE_KEY_HOME_CONTENT,
			constants.TTL_SEMI_STATIC_SHORT, fetch, &content)
		if err == nil {
			return &content, nil
		}
		s.log.Warn("home content cache path failed, serving direct", "error", err)
	}

	result, err := fetch()
	if err != nil {
		return nil, apperror.Wrap(apperror.Internal, "failed to build home content", err)
	}
	return result.(*HomeContent), nil
}

// GetCatalogue builds the filtered public browsing view.
func (s *service) GetCatalogue(ctx context.Context, eventType, genre string) (*Catalogue, error) {
	eventType = strings.ToLower(strings.TrimSpace(eventType))
	genre = strings.TrimSpace(genre)

	var catalogue Catalogue

	fetch := func() (interface{}, error) {
		now := time.Now().UTC()

		var scheduledIDs []uuid.UUID
		if s.sessionStore != nil {
			ids, err := s.sessionStore.DistinctEventIDs(startOfToday(now))
			if err != nil {
				return nil, err
			}
			scheduledIDs = ids
			if scheduledIDs == nil {
				scheduledIDs = []uuid.UUID{}
			}
		}

		var result Catalogue
		g, _ := errgroup.WithContext(ctx)

		g.Go(func() error {
			items, err := s.repo.GetActiveInWindow(now, EventType(eventType), scheduledIDs)
			result.Events = filterByGenre(items, genre)
			return err
		})
		g.Go(func() error {
			upcoming, err := s.repo.GetUpcoming(now, EventType(eventType))
			result.Prochainement = filterByGenre(upcoming, genre)
			return err
		})
		g.Go(func() error {
			if s.heroProvider == nil {
				return nil
			}
			featured, err := s.heroProvider.FeaturedSlide()
			result.ALaffiche = featured
			return err
		})
		g.Go(func() error {
			if eventType != string(EventTypeShow) || s.showTypeSource == nil {
				return nil
			}
			showTypes, err := s.showTypeSource.ListShowTypes()
			result.ShowTypes = showTypes
			return err
		})

		if err := g.Wait(); err != nil {
			return nil, err
		}
		return &result, nil
	}

	if s.cacheService != nil {
		err := s.cacheService.GetOrSet(ctx, constants.CatalogueKey(eventType, genre),
			constants.TTL_SEMI_STATIC_SHORT, fetch, &catalogue)
		if err == nil {
			return &catalogue, nil
		}
		s.log.Warn("catalogue cache path failed, serving direct", "error", err)
	}

	result, err := fetch()
	if err != nil {
		return nil, apperror.Wrap(apperror.Internal, "failed to build catalogue", err)
	}
	return result.(*Catalogue), nil
}

func filterByGenre(items []Event, genre string) []Event {
	if genre == "" {
		return items
	}
	filtered := make([]Event, 0, len(items))
	for _, event := range items {
		for _, g := range event.Genres {
			if strings.EqualFold(g, genre) {
				filtered = append(filtered, event)
				break
			}
		}
	}
	return filtered
}
