package sessions

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"majestic/internal/seatmap"
	"majestic/internal/shared/apperror"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) Create(session *Session) error {
	args := m.Called(session)
	return args.Error(0)
}

func (m *mockRepository) GetByID(id uuid.UUID) (*Session, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Session), args.Error(1)
}

func (m *mockRepository) GetAll(query SessionListQuery) ([]Session, int64, error) {
	args := m.Called(query)
	return args.Get(0).([]Session), args.Get(1).(int64), args.Error(2)
}

func (m *mockRepository) GetByDay(day time.Time) ([]Session, error) {
	args := m.Called(day)
	return args.Get(0).([]Session), args.Error(1)
}

func (m *mockRepository) GetByRange(from, to time.Time) ([]Session, error) {
	args := m.Called(from, to)
	return args.Get(0).([]Session), args.Error(1)
}

func (m *mockRepository) GetByEventID(eventID uuid.UUID) ([]Session, error) {
	args := m.Called(eventID)
	return args.Get(0).([]Session), args.Error(1)
}

func (m *mockRepository) Update(id uuid.UUID, updates map[string]interface{}) (*Session, error) {
	args := m.Called(id, updates)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Session), args.Error(1)
}

func (m *mockRepository) Delete(id uuid.UUID) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *mockRepository) DeleteByEventID(eventID uuid.UUID) error {
	args := m.Called(eventID)
	return args.Error(0)
}

func (m *mockRepository) SlotTaken(day time.Time, sessionTime string, excludeID *uuid.UUID) (bool, error) {
	args := m.Called(day, sessionTime, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *mockRepository) DistinctEventIDs(from time.Time) ([]uuid.UUID, error) {
	args := m.Called(from)
	return args.Get(0).([]uuid.UUID), args.Error(1)
}

func (m *mockRepository) SellTickets(id uuid.UUID, pricingID *uuid.UUID, count int) (*Session, error) {
	args := m.Called(id, pricingID, count)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Session), args.Error(1)
}

func (m *mockRepository) ReleaseTickets(id uuid.UUID, pricingID *uuid.UUID, count int) (*Session, error) {
	args := m.Called(id, pricingID, count)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Session), args.Error(1)
}

type mockEventCatalog struct {
	mock.Mock
}

func (m *mockEventCatalog) GetAvailableVersions(id uuid.UUID) ([]string, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *mockEventCatalog) GetEventSummary(id uuid.UUID) (*EventSummary, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*EventSummary), args.Error(1)
}

type mockRoomSource struct {
	mock.Mock
}

func (m *mockRoomSource) GetRoomLayout(name string) ([]seatmap.Cell, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]seatmap.Cell), args.Error(1)
}

func testLayout() []seatmap.Cell {
	return []seatmap.Cell{
		{Row: "A", Col: 1, CellType: seatmap.CellSeat},
		{Row: "A", Col: 2, CellType: seatmap.CellSeat},
		{Row: "A", Col: 3, CellType: seatmap.CellAisle},
		{Row: "B", Col: 1, CellType: seatmap.CellSeat},
	}
}

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

func validCreateRequest(eventID uuid.UUID) CreateSessionRequest {
	return CreateSessionRequest{
		EventID:     eventID.String(),
		Date:        "2026-10-15",
		SessionTime: "20:30",
		Version:     "VF",
		RoomID:      "Salle 1",
		TotalSeats:  intPtr(120),
	}
}

func kindOf(t *testing.T, err error) apperror.Kind {
	t.Helper()
	appErr, ok := apperror.From(err)
	require.True(t, ok, "expected an application error, got %v", err)
	return appErr.Kind
}

func TestCreateSessionDefaultsAvailableSeats(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo)
	eventID := uuid.New()
	userID := uuid.New()

	repo.On("SlotTaken", mock.AnythingOfType("time.Time"), "20:30", (*uuid.UUID)(nil)).
		Return(false, nil)
	repo.On("Create", mock.AnythingOfType("*sessions.Session")).Return(nil)

	session, err := svc.CreateSession(userID, validCreateRequest(eventID))
	require.NoError(t, err)

	assert.Equal(t, 120, session.TotalSeats)
	assert.Equal(t, 120, session.AvailableSeats, "availableSeats defaults to totalSeats")
	assert.Equal(t, SessionStatusPending, session.Status)
	assert.Equal(t, userID, session.CreatedBy)
	repo.AssertExpectations(t)
}

func TestCreateSessionTruncatesDateToDay(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo)

	expectedDay := time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)
	repo.On("SlotTaken", expectedDay, "20:30", (*uuid.UUID)(nil)).Return(false, nil)
	repo.On("Create", mock.AnythingOfType("*sessions.Session")).Return(nil)

	req := validCreateRequest(uuid.New())
	req.Date = "2026-10-15T18:45:12Z"

	session, err := svc.CreateSession(uuid.New(), req)
	require.NoError(t, err)
	assert.Equal(t, expectedDay, session.Date)
	repo.AssertExpectations(t)
}

func TestCreateSessionRejectsAvailableOverTotal(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo)

	req := validCreateRequest(uuid.New())
	req.AvailableSeats = intPtr(200)

	_, err := svc.CreateSession(uuid.New(), req)
	require.Error(t, err)
	assert.Equal(t, apperror.BadRequest, kindOf(t, err))
	repo.AssertNotCalled(t, "Create")
}

func TestCreateSessionMissingUser(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo)

	_, err := svc.CreateSession(uuid.Nil, validCreateRequest(uuid.New()))
	require.Error(t, err)
	assert.Equal(t, apperror.Unauthorized, kindOf(t, err))
}

func TestCreateSessionSlotConflict(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo)

	repo.On("SlotTaken", mock.AnythingOfType("time.Time"), "20:30", (*uuid.UUID)(nil)).
		Return(true, nil)

	_, err := svc.CreateSession(uuid.New(), validCreateRequest(uuid.New()))
	require.Error(t, err)
	assert.Equal(t, apperror.Conflict, kindOf(t, err))
	assert.Contains(t, err.Error(), "déjà programmée")
	repo.AssertNotCalled(t, "Create")
}

func TestCreateSessionVersionNotAvailable(t *testing.T) {
	repo := new(mockRepository)
	catalog := new(mockEventCatalog)
	svc := NewService(repo)
	svc.SetEventCatalog(catalog)
	eventID := uuid.New()

	repo.On("SlotTaken", mock.AnythingOfType("time.Time"), "20:30", (*uuid.UUID)(nil)).
		Return(false, nil)
	catalog.On("GetAvailableVersions", eventID).Return([]string{"VO", "VOST"}, nil)

	_, err := svc.CreateSession(uuid.New(), validCreateRequest(eventID))
	require.Error(t, err)
	assert.Equal(t, apperror.BadRequest, kindOf(t, err))
	repo.AssertNotCalled(t, "Create")
}

func TestCreateSessionEmptyVersionListAcceptsAnything(t *testing.T) {
	repo := new(mockRepository)
	catalog := new(mockEventCatalog)
	svc := NewService(repo)
	svc.SetEventCatalog(catalog)
	eventID := uuid.New()

	repo.On("SlotTaken", mock.AnythingOfType("time.Time"), "20:30", (*uuid.UUID)(nil)).
		Return(false, nil)
	catalog.On("GetAvailableVersions", eventID).Return([]string{}, nil)
	repo.On("Create", mock.AnythingOfType("*sessions.Session")).Return(nil)

	_, err := svc.CreateSession(uuid.New(), validCreateRequest(eventID))
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestCreateSessionEventNotFound(t *testing.T) {
	repo := new(mockRepository)
	catalog := new(mockEventCatalog)
	svc := NewService(repo)
	svc.SetEventCatalog(catalog)
	eventID := uuid.New()

	repo.On("SlotTaken", mock.AnythingOfType("time.Time"), "20:30", (*uuid.UUID)(nil)).
		Return(false, nil)
	catalog.On("GetAvailableVersions", eventID).
		Return(nil, apperror.New(apperror.NotFound, "Event not found"))

	_, err := svc.CreateSession(uuid.New(), validCreateRequest(eventID))
	require.Error(t, err)
	assert.Equal(t, apperror.NotFound, kindOf(t, err))
}

func TestCreateSessionValidatesOverridesAgainstRoomLayout(t *testing.T) {
	repo := new(mockRepository)
	roomSource := new(mockRoomSource)
	svc := NewService(repo)
	svc.SetRoomSource(roomSource)

	roomSource.On("GetRoomLayout", "Salle 1").Return(testLayout(), nil)

	req := validCreateRequest(uuid.New())
	req.Overrides = []seatmap.Override{
		{Row: "Z", Col: 9, Status: seatmap.OverrideBlocked},
	}

	_, err := svc.CreateSession(uuid.New(), req)
	require.Error(t, err)
	assert.Equal(t, apperror.BadRequest, kindOf(t, err))
	repo.AssertNotCalled(t, "Create")
}

func TestCreateSessionAllowsChaiseOverride(t *testing.T) {
	repo := new(mockRepository)
	roomSource := new(mockRoomSource)
	svc := NewService(repo)
	svc.SetRoomSource(roomSource)

	roomSource.On("GetRoomLayout", "Salle 1").Return(testLayout(), nil)
	repo.On("SlotTaken", mock.AnythingOfType("time.Time"), "20:30", (*uuid.UUID)(nil)).
		Return(false, nil)
	repo.On("Create", mock.AnythingOfType("*sessions.Session")).Return(nil)

	req := validCreateRequest(uuid.New())
	req.Overrides = []seatmap.Override{
		{Row: "A", Col: 3, Status: seatmap.OverrideSeat},
	}

	_, err := svc.CreateSession(uuid.New(), req)
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestUpdateSessionEmptyPayload(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo)
	sessionID := uuid.New()

	repo.On("GetByID", sessionID).Return(&Session{ID: sessionID}, nil)

	_, err := svc.UpdateSession(sessionID, UpdateSessionRequest{})
	require.Error(t, err)
	assert.Equal(t, apperror.BadRequest, kindOf(t, err))
	assert.Contains(t, err.Error(), "No valid fields")
}

func TestUpdateSessionNotFound(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo)
	sessionID := uuid.New()

	repo.On("GetByID", sessionID).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.UpdateSession(sessionID, UpdateSessionRequest{Version: strPtr("VO")})
	require.Error(t, err)
	assert.Equal(t, apperror.NotFound, kindOf(t, err))
}

func TestUpdateSessionSkipsVersionCheckWhenUntouched(t *testing.T) {
	repo := new(mockRepository)
	catalog := new(mockEventCatalog)
	svc := NewService(repo)
	svc.SetEventCatalog(catalog)
	sessionID := uuid.New()

	existing := &Session{ID: sessionID, EventID: uuid.New(), Version: "VF", TotalSeats: 100}
	repo.On("GetByID", sessionID).Return(existing, nil)
	repo.On("Update", sessionID, mock.Anything).Return(existing, nil)

	_, err := svc.UpdateSession(sessionID, UpdateSessionRequest{Status: strPtr("scheduled")})
	require.NoError(t, err)
	catalog.AssertNotCalled(t, "GetAvailableVersions")
	repo.AssertNotCalled(t, "SlotTaken")
}

func TestUpdateSessionChecksVersionWhenSupplied(t *testing.T) {
	repo := new(mockRepository)
	catalog := new(mockEventCatalog)
	svc := NewService(repo)
	svc.SetEventCatalog(catalog)
	sessionID := uuid.New()
	eventID := uuid.New()

	existing := &Session{ID: sessionID, EventID: eventID, Version: "VF", TotalSeats: 100}
	repo.On("GetByID", sessionID).Return(existing, nil)
	catalog.On("GetAvailableVersions", eventID).Return([]string{"VF"}, nil)

	_, err := svc.UpdateSession(sessionID, UpdateSessionRequest{Version: strPtr("IMAX")})
	require.Error(t, err)
	assert.Equal(t, apperror.BadRequest, kindOf(t, err))
	repo.AssertNotCalled(t, "Update")
}

func TestUpdateSessionConflictExcludesSelf(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo)
	sessionID := uuid.New()
	day := time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)

	existing := &Session{
		ID:          sessionID,
		EventID:     uuid.New(),
		Date:        day,
		SessionTime: "20:30",
		TotalSeats:  100,
	}
	repo.On("GetByID", sessionID).Return(existing, nil)
	repo.On("SlotTaken", day, "21:00", &sessionID).Return(false, nil)
	repo.On("Update", sessionID, mock.MatchedBy(func(updates map[string]interface{}) bool {
		return updates["session_time"] == "21:00"
	})).Return(existing, nil)

	_, err := svc.UpdateSession(sessionID, UpdateSessionRequest{SessionTime: strPtr("21:00")})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestUpdateSessionMovedSlotTaken(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo)
	sessionID := uuid.New()
	day := time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)

	existing := &Session{
		ID:          sessionID,
		EventID:     uuid.New(),
		Date:        day,
		SessionTime: "20:30",
		TotalSeats:  100,
	}
	repo.On("GetByID", sessionID).Return(existing, nil)
	repo.On("SlotTaken", day, "21:00", &sessionID).Return(true, nil)

	_, err := svc.UpdateSession(sessionID, UpdateSessionRequest{SessionTime: strPtr("21:00")})
	require.Error(t, err)
	assert.Equal(t, apperror.Conflict, kindOf(t, err))
	repo.AssertNotCalled(t, "Update")
}

func TestUpdateSessionTotalSeatsResetsAvailable(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo)
	sessionID := uuid.New()

	existing := &Session{ID: sessionID, EventID: uuid.New(), TotalSeats: 100, AvailableSeats: 42}
	repo.On("GetByID", sessionID).Return(existing, nil)
	repo.On("Update", sessionID, mock.MatchedBy(func(updates map[string]interface{}) bool {
		return updates["total_seats"] == 150 && updates["available_seats"] == 150
	})).Return(existing, nil)

	_, err := svc.UpdateSession(sessionID, UpdateSessionRequest{TotalSeats: intPtr(150)})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestUpdateSessionAvailableOverNewTotal(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo)
	sessionID := uuid.New()

	existing := &Session{ID: sessionID, EventID: uuid.New(), TotalSeats: 100}
	repo.On("GetByID", sessionID).Return(existing, nil)

	_, err := svc.UpdateSession(sessionID, UpdateSessionRequest{
		TotalSeats:     intPtr(50),
		AvailableSeats: intPtr(80),
	})
	require.Error(t, err)
	assert.Equal(t, apperror.BadRequest, kindOf(t, err))
	repo.AssertNotCalled(t, "Update")
}

func TestUpdateSessionPricingLimitUnknownPricing(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo)
	sessionID := uuid.New()

	pricingID := uuid.New()
	limits := []seatmap.PricingLimit{{PricingID: pricingID, MaxTickets: 10}}

	existing := &Session{ID: sessionID, EventID: uuid.New(), TotalSeats: 100}
	repo.On("GetByID", sessionID).Return(existing, nil)

	catalog := new(mockPricingCatalog)
	catalog.On("ListPricingIDs").Return([]uuid.UUID{uuid.New()}, nil)
	svc.SetPricingCatalog(catalog)

	_, err := svc.UpdateSession(sessionID, UpdateSessionRequest{PricingLimits: &limits})
	require.Error(t, err)
	assert.Equal(t, apperror.BadRequest, kindOf(t, err))
	repo.AssertNotCalled(t, "Update")
}

type mockPricingCatalog struct {
	mock.Mock
}

func (m *mockPricingCatalog) ListPricingIDs() ([]uuid.UUID, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uuid.UUID), args.Error(1)
}

func TestSellTicketsMapsInsufficientSeats(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo)
	sessionID := uuid.New()

	repo.On("SellTickets", sessionID, (*uuid.UUID)(nil), 5).
		Return(nil, ErrInsufficientSeats)

	_, err := svc.SellTickets(sessionID, TicketRequest{Count: 5})
	require.Error(t, err)
	assert.Equal(t, apperror.Conflict, kindOf(t, err))
}

func TestSellTicketsSuccess(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo)
	sessionID := uuid.New()

	updated := &Session{ID: sessionID, TotalSeats: 100, AvailableSeats: 95}
	repo.On("SellTickets", sessionID, (*uuid.UUID)(nil), 5).Return(updated, nil)

	session, err := svc.SellTickets(sessionID, TicketRequest{Count: 5})
	require.NoError(t, err)
	assert.Equal(t, 95, session.AvailableSeats)
}

func TestGetProgramGroupsByDate(t *testing.T) {
	repo := new(mockRepository)
	catalog := new(mockEventCatalog)
	svc := NewService(repo)
	svc.SetEventCatalog(catalog)

	eventID := uuid.New()
	day1 := time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)
	day2 := day1.Add(24 * time.Hour)

	repo.On("GetByRange", day1, day1.Add(3*24*time.Hour)).Return([]Session{
		{ID: uuid.New(), EventID: eventID, Date: day1, SessionTime: "18:00"},
		{ID: uuid.New(), EventID: eventID, Date: day1, SessionTime: "21:00"},
		{ID: uuid.New(), EventID: eventID, Date: day2, SessionTime: "20:30"},
	}, nil)
	catalog.On("GetEventSummary", eventID).
		Return(&EventSummary{ID: eventID, Name: "Le Grand Voyage", Type: "movie"}, nil)

	program, err := svc.GetProgram(context.Background(), "2026-10-15", 3)
	require.NoError(t, err)
	require.Len(t, program, 2)
	assert.Equal(t, "2026-10-15", program[0].Date)
	assert.Len(t, program[0].Sessions, 2)
	assert.Equal(t, "2026-10-16", program[1].Date)
	require.NotNil(t, program[1].Sessions[0].Event)
	assert.Equal(t, "Le Grand Voyage", program[1].Sessions[0].Event.Name)
	// one lookup per distinct event, memoized across the range
	catalog.AssertNumberOfCalls(t, "GetEventSummary", 1)
}

func TestGetSessionsByEventBuildsView(t *testing.T) {
	repo := new(mockRepository)
	catalog := new(mockEventCatalog)
	svc := NewService(repo)
	svc.SetEventCatalog(catalog)

	eventID := uuid.New()
	repo.On("GetByEventID", eventID).Return([]Session{
		{ID: uuid.New(), EventID: eventID, SessionTime: "20:30", Version: "VF", AvailableSeats: 36},
	}, nil)
	catalog.On("GetEventSummary", eventID).
		Return(&EventSummary{ID: eventID, Name: "Concert symphonique", Type: "show"}, nil)

	view, err := svc.GetSessionsByEvent(eventID)
	require.NoError(t, err)
	require.NotNil(t, view.Event)
	assert.Equal(t, "Concert symphonique", view.Event.Name)
	require.Len(t, view.Sessions, 1)
	assert.Equal(t, "20:30", view.Sessions[0].SessionTime)
	assert.Equal(t, 36, view.Sessions[0].AvailableSeats)
}

func TestGetSessionsByEventToleratesMissingCatalog(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo)

	eventID := uuid.New()
	repo.On("GetByEventID", eventID).Return([]Session{
		{ID: uuid.New(), EventID: eventID, SessionTime: "18:00"},
	}, nil)

	view, err := svc.GetSessionsByEvent(eventID)
	require.NoError(t, err)
	assert.Nil(t, view.Event)
	assert.Len(t, view.Sessions, 1)
}

func TestGetSessionsByDayGroupsByEvent(t *testing.T) {
	repo := new(mockRepository)
	catalog := new(mockEventCatalog)
	svc := NewService(repo)
	svc.SetEventCatalog(catalog)

	movieID := uuid.New()
	showID := uuid.New()
	day := time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)

	repo.On("GetByDay", day).Return([]Session{
		{ID: uuid.New(), EventID: movieID, Date: day, SessionTime: "14:00"},
		{ID: uuid.New(), EventID: showID, Date: day, SessionTime: "18:00"},
		{ID: uuid.New(), EventID: movieID, Date: day, SessionTime: "21:00"},
	}, nil)
	catalog.On("GetEventSummary", movieID).Return(&EventSummary{
		ID:             movieID,
		Type:           "movie",
		Name:           "Le Grand Voyage",
		Description:    "Un road movie",
		Genres:         []string{"aventure"},
		AgeRestriction: "10",
		DirectedBy:     "J. Dupont",
		TrailerLink:    "https://example.com/t",
	}, nil)
	catalog.On("GetEventSummary", showID).
		Return(&EventSummary{ID: showID, Type: "show", Name: "Concert symphonique"}, nil)

	buckets, err := svc.GetSessionsByDay(context.Background(), "2026-10-15")
	require.NoError(t, err)
	require.Len(t, buckets, 2)

	// earliest session time decides bucket order, sessions stay together per event
	require.NotNil(t, buckets[0].Event)
	assert.Equal(t, "Le Grand Voyage", buckets[0].Event.Name)
	assert.Equal(t, []string{"aventure"}, buckets[0].Event.Genres)
	assert.Equal(t, "J. Dupont", buckets[0].Event.DirectedBy)
	require.Len(t, buckets[0].Sessions, 2)
	assert.Equal(t, "14:00", buckets[0].Sessions[0].SessionTime)
	assert.Equal(t, "21:00", buckets[0].Sessions[1].SessionTime)

	assert.Equal(t, "Concert symphonique", buckets[1].Event.Name)
	require.Len(t, buckets[1].Sessions, 1)

	catalog.AssertNumberOfCalls(t, "GetEventSummary", 2)
}

func TestFindLimitMatchesPricing(t *testing.T) {
	first, second := uuid.New(), uuid.New()
	limits := []seatmap.PricingLimit{
		{PricingID: first, MaxTickets: 10, SoldCount: 2},
		{PricingID: second, MaxTickets: 5},
	}

	idx, limit := findLimit(limits, second)
	require.NotNil(t, limit)
	assert.Equal(t, 1, idx)
	assert.Equal(t, 5, limit.MaxTickets)

	idx, limit = findLimit(limits, uuid.New())
	assert.Equal(t, -1, idx)
	assert.Nil(t, limit)
}

func TestParseDayFormats(t *testing.T) {
	expected := time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)

	day, err := parseDay("2026-10-15")
	require.NoError(t, err)
	assert.Equal(t, expected, day)

	day, err = parseDay("2026-10-15T23:59:59Z")
	require.NoError(t, err)
	assert.Equal(t, expected, day)

	_, err = parseDay("15/10/2026")
	require.Error(t, err)
}
