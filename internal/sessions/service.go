package sessions

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"majestic/internal/seatmap"
	"majestic/internal/shared/apperror"
	"majestic/internal/shared/constants"
	"majestic/pkg/cache"
	"majestic/pkg/logger"
)

const slotConflictMessage = "Une séance est déjà programmée à cette date et cette heure"

type Service interface {
	// Dependency injection (wired at startup, avoids package cycles)
	SetEventCatalog(catalog EventCatalog)
	SetRoomSource(source RoomSource)
	SetPricingCatalog(catalog PricingCatalog)
	SetPublisher(publisher Publisher)
	SetCacheService(cacheService cache.Service)

	CreateSession(userID uuid.UUID, req CreateSessionRequest) (*Session, error)
	GetSessionByID(id uuid.UUID) (*Session, error)
	ListSessions(query SessionListQuery) (*PaginatedSessions, error)
	GetSessionsByDay(ctx context.Context, day string) ([]EventSessionsView, error)
	GetProgram(ctx context.Context, from string, days int) ([]DayProgram, error)
	GetSessionsByEvent(eventID uuid.UUID) (*EventSessionsView, error)
	UpdateSession(id uuid.UUID, req UpdateSessionRequest) (*Session, error)
	DeleteSession(id uuid.UUID) error

	SellTickets(id uuid.UUID, req TicketRequest) (*Session, error)
	ReleaseTickets(id uuid.UUID, req TicketRequest) (*Session, error)
}

// EventCatalog exposes the event reads sessions need: the versions a session
// may be scheduled with (an empty list means any version) and display fields
// for schedule views.
type EventCatalog interface {
	GetAvailableVersions(id uuid.UUID) ([]string, error)
	GetEventSummary(id uuid.UUID) (*EventSummary, error)
}

// RoomSource resolves a room name to its seat layout for override
// containment checks.
type RoomSource interface {
	GetRoomLayout(name string) ([]seatmap.Cell, error)
}

// PricingCatalog lists the pricing tier ids considered valid references.
type PricingCatalog interface {
	ListPricingIDs() ([]uuid.UUID, error)
}

// Publisher emits session lifecycle events. A nil publisher is a no-op.
type Publisher interface {
	Publish(event string, payload interface{}) error
}

type service struct {
	repo           Repository
	eventCatalog   EventCatalog
	roomSource     RoomSource
	pricingCatalog PricingCatalog
	publisher      Publisher
	cacheService   cache.Service
	log            *logger.Logger
}

func NewService(repo Repository) Service {
	return &service{
		repo: repo,
		log:  logger.GetDefault(),
	}
}

func (s *service) SetEventCatalog(catalog EventCatalog) { s.eventCatalog = catalog }

func (s *service) SetRoomSource(source RoomSource) { s.roomSource = source }

func (s *service) SetPricingCatalog(catalog PricingCatalog) { s.pricingCatalog = catalog }

func (s *service) SetPublisher(publisher Publisher) { s.publisher = publisher }

func (s *service) SetCacheService(cacheService cache.Service) { s.cacheService = cacheService }

// parseDay accepts a date-only string or a full timestamp and truncates to
// the UTC day, the granularity at which slots are compared.
func parseDay(value string) (time.Time, error) {
	var parsed time.Time
	var err error
	if parsed, err = time.Parse("2006-01-02", value); err != nil {
		if parsed, err = time.Parse(time.RFC3339, value); err != nil {
			return time.Time{}, err
		}
	}
	parsed = parsed.UTC()
	return time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, time.UTC), nil
}

func (s *service) knownPricing() seatmap.PricingSet {
	if s.pricingCatalog == nil {
		return nil
	}
	ids, err := s.pricingCatalog.ListPricingIDs()
	if err != nil {
		s.log.Warn("pricing catalog unavailable, skipping membership checks", "error", err)
		return nil
	}
	return seatmap.NewPricingSet(ids...)
}

// layoutIndex resolves the room's layout. An unknown room degrades to
// structural-only validation rather than blocking the write.
func (s *service) layoutIndex(roomName string) seatmap.Index {
	if s.roomSource == nil {
		return nil
	}
	layout, err := s.roomSource.GetRoomLayout(roomName)
	if err != nil {
		s.log.Warn("room layout unavailable, skipping containment checks",
			"room", roomName, "error", err)
		return nil
	}
	return seatmap.BuildIndex(layout)
}

// ensureEventVersion checks the session's version against the event's
// available versions. An event with no versions accepts anything.
func (s *service) ensureEventVersion(eventID uuid.UUID, version string) error {
	if s.eventCatalog == nil {
		return nil
	}
	versions, err := s.eventCatalog.GetAvailableVersions(eventID)
	if err != nil {
		return err
	}
	if len(versions) == 0 {
		return nil
	}
	for _, v := range versions {
		if v == version {
			return nil
		}
	}
	return apperror.New(apperror.BadRequest, "Version not available for this event")
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func (s *service) invalidateCaches(ctx context.Context) {
	if s.cacheService == nil {
		return
	}
	if err := s.cacheService.DeletePattern(ctx, constants.CACHE_PATTERN_SESSIONS); err != nil {
		s.log.Warn("failed to invalidate session caches", "error", err)
	}
	// Home and catalogue views embed session-derived data.
	if err := s.cacheService.DeletePattern(ctx, constants.CACHE_PATTERN_EVENTS); err != nil {
		s.log.Warn("failed to invalidate event caches", "error", err)
	}
}

func (s *service) publish(event string, session *Session) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(event, session); err != nil {
		s.log.Warn("failed to publish session event", "event", event, "error", err)
	}
}

func (s *service) CreateSession(userID uuid.UUID, req CreateSessionRequest) (*Session, error) {
	if userID == uuid.Nil {
		return nil, apperror.New(apperror.Unauthorized, "Missing user id")
	}

	eventID, err := uuid.Parse(req.EventID)
	if err != nil {
		return nil, apperror.New(apperror.BadRequest, "Invalid event ID")
	}

	day, err := parseDay(req.Date)
	if err != nil {
		return nil, apperror.New(apperror.BadRequest, "Invalid date format")
	}

	totalSeats := *req.TotalSeats
	if totalSeats < 0 {
		return nil, apperror.New(apperror.BadRequest, "totalSeats must be a positive number")
	}

	availableSeats := totalSeats
	if req.AvailableSeats != nil {
		availableSeats = *req.AvailableSeats
	}
	if availableSeats > totalSeats {
		return nil, apperror.New(apperror.BadRequest, "availableSeats cannot exceed totalSeats")
	}
	if availableSeats < 0 {
		return nil, apperror.New(apperror.BadRequest, "availableSeats must be a positive number")
	}

	known := s.knownPricing()
	if err := seatmap.ValidatePricingLimits(req.PricingLimits, known); err != nil {
		return nil, err
	}

	idx := s.layoutIndex(req.RoomID)
	if err := seatmap.ValidateOverrides(req.Overrides, seatmap.ScopeSession, idx); err != nil {
		return nil, err
	}
	if err := seatmap.ValidatePricingOverrides(req.PricingOverrides, idx, known); err != nil {
		return nil, err
	}

	taken, err := s.repo.SlotTaken(day, req.SessionTime, nil)
	if err != nil {
		return nil, apperror.Wrap(apperror.Internal, "failed to check schedule", err)
	}
	if taken {
		return nil, apperror.New(apperror.Conflict, slotConflictMessage)
	}

	if err := s.ensureEventVersion(eventID, req.Version); err != nil {
		return nil, err
	}

	status := SessionStatusPending
	if req.Status != "" {
		status = SessionStatus(strings.ToLower(req.Status))
	}

	session := &Session{
		EventID:          eventID,
		Date:             day,
		SessionTime:      req.SessionTime,
		Version:          req.Version,
		RoomID:           req.RoomID,
		TotalSeats:       totalSeats,
		AvailableSeats:   availableSeats,
		Overrides:        req.Overrides,
		PricingOverrides: req.PricingOverrides,
		PricingLimits:    req.PricingLimits,
		Status:           status,
		CreatedBy:        userID,
	}

	if err := s.repo.Create(session); err != nil {
		if isUniqueViolation(err) {
			return nil, apperror.New(apperror.Conflict, slotConflictMessage)
		}
		return nil, apperror.Wrap(apperror.Internal, "failed to create session", err)
	}

	s.invalidateCaches(context.Background())
	s.publish("session.created", session)
	s.log.LogSessionCreated(context.Background(), session.ID.String(), eventID.String(), userID.String())

	return session, nil
}

func (s *service) GetSessionByID(id uuid.UUID) (*Session, error) {
	session, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.New(apperror.NotFound, "Session not found")
		}
		return nil, apperror.Wrap(apperror.Internal, "failed to load session", err)
	}
	return session, nil
}

func (s *service) ListSessions(query SessionListQuery) (*PaginatedSessions, error) {
	items, total, err := s.repo.GetAll(query)
	if err != nil {
		return nil, apperror.Wrap(apperror.Internal, "failed to list sessions", err)
	}

	if query.Page == 0 {
		query.Page = 1
	}
	if query.Limit == 0 {
		query.Limit = 20
	}

	return &PaginatedSessions{
		Sessions: items,
		Pagination: Pagination{
			Total: total,
			Page:  query.Page,
			Limit: query.Limit,
			Pages: int(math.Ceil(float64(total) / float64(query.Limit))),
		},
	}, nil
}

// eventSummary resolves display fields through the catalog, memoized per
// request in seen. A missing catalog or lookup failure leaves the summary
// nil so schedule reads keep working.
func (s *service) eventSummary(id uuid.UUID, seen map[uuid.UUID]*EventSummary) *EventSummary {
	if summary, ok := seen[id]; ok {
		return summary
	}
	var summary *EventSummary
	if s.eventCatalog != nil {
		loaded, err := s.eventCatalog.GetEventSummary(id)
		if err != nil {
			s.log.Warn("event summary lookup failed", "eventId", id, "error", err)
		} else {
			summary = loaded
		}
	}
	seen[id] = summary
	return summary
}

func (s *service) withEvents(items []Session) []SessionWithEvent {
	seen := make(map[uuid.UUID]*EventSummary)
	decorated := make([]SessionWithEvent, 0, len(items))
	for _, item := range items {
		decorated = append(decorated, SessionWithEvent{
			Session: item,
			Event:   s.eventSummary(item.EventID, seen),
		})
	}
	return decorated
}

// groupByEvent buckets one day's sessions per event, first appearance
// (earliest session time) first, each bucket carrying the event display
// projection and the trimmed slots.
func (s *service) groupByEvent(items []Session) []EventSessionsView {
	seen := make(map[uuid.UUID]*EventSummary)
	position := make(map[uuid.UUID]int)
	buckets := make([]EventSessionsView, 0)
	for i := range items {
		eventID := items[i].EventID
		at, ok := position[eventID]
		if !ok {
			at = len(buckets)
			position[eventID] = at
			buckets = append(buckets, EventSessionsView{
				Event: s.eventSummary(eventID, seen),
			})
		}
		buckets[at].Sessions = append(buckets[at].Sessions, items[i].slot())
	}
	return buckets
}

func (s *service) GetSessionsByDay(ctx context.Context, day string) ([]EventSessionsView, error) {
	parsed, err := parseDay(day)
	if err != nil {
		return nil, apperror.New(apperror.BadRequest, "Invalid date format")
	}

	fetch := func() (interface{}, error) {
		items, err := s.repo.GetByDay(parsed)
		if err != nil {
			return nil, err
		}
		return s.groupByEvent(items), nil
	}

	if s.cacheService != nil {
		var buckets []EventSessionsView
		key := constants.SessionsByDateKey(parsed.Format("2006-01-02"))
		err := s.cacheService.GetOrSet(ctx, key, constants.TTL_DYNAMIC_SHORT, fetch, &buckets)
		if err == nil {
			return buckets, nil
		}
		s.log.Warn("sessions-by-day cache path failed, serving direct", "error", err)
	}

	items, err := s.repo.GetByDay(parsed)
	if err != nil {
		return nil, apperror.Wrap(apperror.Internal, "failed to load sessions", err)
	}
	return s.groupByEvent(items), nil
}

func (s *service) GetProgram(ctx context.Context, from string, days int) ([]DayProgram, error) {
	start, err := parseDay(from)
	if err != nil {
		return nil, apperror.New(apperror.BadRequest, "Invalid date format")
	}
	if days < 1 {
		days = 1
	}
	if days > 31 {
		days = 31
	}

	items, err := s.repo.GetByRange(start, start.Add(time.Duration(days)*24*time.Hour))
	if err != nil {
		return nil, apperror.Wrap(apperror.Internal, "failed to load sessions", err)
	}

	decorated := s.withEvents(items)
	program := make([]DayProgram, 0)
	for _, item := range decorated {
		date := item.Date.Format("2006-01-02")
		if len(program) == 0 || program[len(program)-1].Date != date {
			program = append(program, DayProgram{Date: date})
		}
		bucket := &program[len(program)-1]
		bucket.Sessions = append(bucket.Sessions, item)
	}
	return program, nil
}

func (s *service) GetSessionsByEvent(eventID uuid.UUID) (*EventSessionsView, error) {
	items, err := s.repo.GetByEventID(eventID)
	if err != nil {
		return nil, apperror.Wrap(apperror.Internal, "failed to load sessions", err)
	}

	view := &EventSessionsView{Sessions: make([]SessionSlot, 0, len(items))}
	for i := range items {
		view.Sessions = append(view.Sessions, items[i].slot())
	}
	view.Event = s.eventSummary(eventID, make(map[uuid.UUID]*EventSummary))
	return view, nil
}

func (s *service) UpdateSession(id uuid.UUID, req UpdateSessionRequest) (*Session, error) {
	existing, err := s.GetSessionByID(id)
	if err != nil {
		return nil, err
	}

	known := s.knownPricing()
	if req.PricingLimits != nil {
		if err := seatmap.ValidatePricingLimits(*req.PricingLimits, known); err != nil {
			return nil, err
		}
	}

	if req.Overrides != nil || req.PricingOverrides != nil {
		roomName := existing.RoomID
		if req.RoomID != nil {
			roomName = *req.RoomID
		}
		idx := s.layoutIndex(roomName)
		if req.Overrides != nil {
			if err := seatmap.ValidateOverrides(*req.Overrides, seatmap.ScopeSession, idx); err != nil {
				return nil, err
			}
		}
		if req.PricingOverrides != nil {
			if err := seatmap.ValidatePricingOverrides(*req.PricingOverrides, idx, known); err != nil {
				return nil, err
			}
		}
	}

	// Version membership only matters when the event or version changes.
	if req.EventID != nil || req.Version != nil {
		eventID := existing.EventID
		if req.EventID != nil {
			eventID, err = uuid.Parse(*req.EventID)
			if err != nil {
				return nil, apperror.New(apperror.BadRequest, "Invalid event ID")
			}
		}
		version := existing.Version
		if req.Version != nil {
			version = *req.Version
		}
		if err := s.ensureEventVersion(eventID, version); err != nil {
			return nil, err
		}
	}

	// The slot only needs rechecking when the date or time moves.
	day := existing.Date
	if req.Date != nil {
		day, err = parseDay(*req.Date)
		if err != nil {
			return nil, apperror.New(apperror.BadRequest, "Invalid date format")
		}
	}
	if req.Date != nil || req.SessionTime != nil {
		sessionTime := existing.SessionTime
		if req.SessionTime != nil {
			sessionTime = *req.SessionTime
		}
		taken, err := s.repo.SlotTaken(day, sessionTime, &id)
		if err != nil {
			return nil, apperror.Wrap(apperror.Internal, "failed to check schedule", err)
		}
		if taken {
			return nil, apperror.New(apperror.Conflict, slotConflictMessage)
		}
	}

	updates := make(map[string]interface{})
	if req.EventID != nil {
		eventID, err := uuid.Parse(*req.EventID)
		if err != nil {
			return nil, apperror.New(apperror.BadRequest, "Invalid event ID")
		}
		updates["event_id"] = eventID
	}
	if req.Date != nil {
		updates["date"] = day
	}
	if req.SessionTime != nil {
		updates["session_time"] = *req.SessionTime
	}
	if req.Version != nil {
		updates["version"] = *req.Version
	}
	if req.RoomID != nil {
		updates["room_id"] = *req.RoomID
	}

	totalSeats := existing.TotalSeats
	if req.TotalSeats != nil {
		if *req.TotalSeats < 0 {
			return nil, apperror.New(apperror.BadRequest, "totalSeats must be a positive number")
		}
		totalSeats = *req.TotalSeats
		updates["total_seats"] = totalSeats
		if req.AvailableSeats == nil {
			// Changing capacity without an explicit count resets availability.
			updates["available_seats"] = totalSeats
		}
	}
	if req.AvailableSeats != nil {
		if *req.AvailableSeats > totalSeats {
			return nil, apperror.New(apperror.BadRequest, "availableSeats cannot exceed totalSeats")
		}
		if *req.AvailableSeats < 0 {
			return nil, apperror.New(apperror.BadRequest, "availableSeats must be a positive number")
		}
		updates["available_seats"] = *req.AvailableSeats
	}

	if req.Overrides != nil {
		updates["overrides"] = *req.Overrides
	}
	if req.PricingOverrides != nil {
		updates["pricing_overrides"] = *req.PricingOverrides
	}
	if req.PricingLimits != nil {
		updates["pricing_limits"] = *req.PricingLimits
	}
	if req.Status != nil {
		updates["status"] = strings.ToLower(*req.Status)
	}

	if len(updates) == 0 {
		return nil, apperror.New(apperror.BadRequest, "No valid fields provided for update")
	}

	session, err := s.repo.Update(id, updates)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, apperror.New(apperror.Conflict, slotConflictMessage)
		}
		return nil, apperror.Wrap(apperror.Internal, "failed to update session", err)
	}

	s.invalidateCaches(context.Background())
	s.publish("session.updated", session)

	fields := make([]string, 0, len(updates))
	for field := range updates {
		fields = append(fields, field)
	}
	s.log.LogSessionUpdated(context.Background(), session.ID.String(), fields)

	return session, nil
}

func (s *service) DeleteSession(id uuid.UUID) error {
	session, err := s.GetSessionByID(id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.New(apperror.NotFound, "Session not found")
		}
		return apperror.Wrap(apperror.Internal, "failed to delete session", err)
	}

	s.invalidateCaches(context.Background())
	s.publish("session.deleted", session)
	return nil
}

func (s *service) SellTickets(id uuid.UUID, req TicketRequest) (*Session, error) {
	session, err := s.repo.SellTickets(id, req.PricingID, req.Count)
	if err != nil {
		return nil, s.mapTicketError(err)
	}

	s.invalidateCaches(context.Background())
	s.log.LogTicketsSold(context.Background(), session.ID.String(), req.Count)
	return session, nil
}

func (s *service) ReleaseTickets(id uuid.UUID, req TicketRequest) (*Session, error) {
	session, err := s.repo.ReleaseTickets(id, req.PricingID, req.Count)
	if err != nil {
		return nil, s.mapTicketError(err)
	}

	s.invalidateCaches(context.Background())
	return session, nil
}

func (s *service) mapTicketError(err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apperror.New(apperror.NotFound, "Session not found")
	case errors.Is(err, ErrInsufficientSeats):
		return apperror.New(apperror.Conflict, "Not enough available seats")
	case errors.Is(err, ErrPricingLimitFull):
		return apperror.New(apperror.Conflict, "Ticket limit reached for this pricing")
	case errors.Is(err, ErrPricingLimitMissing):
		return apperror.New(apperror.BadRequest, "No pricing limit configured for this pricing")
	case errors.Is(err, ErrNothingToRelease):
		return apperror.New(apperror.BadRequest, "Release exceeds sold tickets")
	default:
		return apperror.Wrap(apperror.Internal, "failed to update seat inventory", err)
	}
}
