package events

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"majestic/internal/shared/apperror"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) Create(event *Event) error {
	args := m.Called(event)
	return args.Error(0)
}

func (m *mockRepository) GetByID(id uuid.UUID) (*Event, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Event), args.Error(1)
}

func (m *mockRepository) GetAll(query EventListQuery) ([]Event, int64, error) {
	args := m.Called(query)
	return args.Get(0).([]Event), args.Get(1).(int64), args.Error(2)
}

func (m *mockRepository) Update(id uuid.UUID, updates map[string]interface{}) (*Event, error) {
	args := m.Called(id, updates)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Event), args.Error(1)
}

func (m *mockRepository) Delete(id uuid.UUID) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *mockRepository) GetActiveInWindow(now time.Time, eventType EventType, ids []uuid.UUID) ([]Event, error) {
	args := m.Called(now, eventType, ids)
	return args.Get(0).([]Event), args.Error(1)
}

func (m *mockRepository) GetUpcoming(now time.Time, eventType EventType) ([]Event, error) {
	args := m.Called(now, eventType)
	return args.Get(0).([]Event), args.Error(1)
}

type mockSessionStore struct {
	mock.Mock
}

func (m *mockSessionStore) DeleteByEventID(eventID uuid.UUID) error {
	args := m.Called(eventID)
	return args.Error(0)
}

func (m *mockSessionStore) DistinctEventIDs(from time.Time) ([]uuid.UUID, error) {
	args := m.Called(from)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uuid.UUID), args.Error(1)
}

func TestCreateEventRequiresAdmin(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo)

	_, err := svc.CreateEvent(uuid.Nil, CreateEventRequest{Type: "movie", Name: "Film"})
	require.Error(t, err)

	appErr, ok := apperror.From(err)
	require.True(t, ok)
	assert.Equal(t, apperror.Unauthorized, appErr.Kind)
	repo.AssertNotCalled(t, "Create")
}

func TestCreateEventDefaultsToActive(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo)
	adminID := uuid.New()

	repo.On("Create", mock.MatchedBy(func(event *Event) bool {
		return event.Status == EventStatusActive && event.CreatedBy == adminID
	})).Return(nil)

	event, err := svc.CreateEvent(adminID, CreateEventRequest{Type: "movie", Name: "Film"})
	require.NoError(t, err)
	assert.Equal(t, EventTypeMovie, event.Type)
	repo.AssertExpectations(t)
}

func TestUpdateEventEmptyPayload(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo)

	_, err := svc.UpdateEvent(uuid.New(), UpdateEventRequest{})
	require.Error(t, err)

	appErr, ok := apperror.From(err)
	require.True(t, ok)
	assert.Equal(t, apperror.BadRequest, appErr.Kind)
}

func TestDeleteEventCascadesSessions(t *testing.T) {
	repo := new(mockRepository)
	store := new(mockSessionStore)
	svc := NewService(repo)
	svc.SetSessionStore(store)
	eventID := uuid.New()

	repo.On("Delete", eventID).Return(nil)
	store.On("DeleteByEventID", eventID).Return(nil)

	require.NoError(t, svc.DeleteEvent(eventID))
	store.AssertExpectations(t)
}

func TestDeleteEventNotFound(t *testing.T) {
	repo := new(mockRepository)
	store := new(mockSessionStore)
	svc := NewService(repo)
	svc.SetSessionStore(store)
	eventID := uuid.New()

	repo.On("Delete", eventID).Return(gorm.ErrRecordNotFound)

	err := svc.DeleteEvent(eventID)
	require.Error(t, err)

	appErr, ok := apperror.From(err)
	require.True(t, ok)
	assert.Equal(t, apperror.NotFound, appErr.Kind)
	store.AssertNotCalled(t, "DeleteByEventID")
}

func TestGetAvailableVersions(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo)
	eventID := uuid.New()

	repo.On("GetByID", eventID).Return(&Event{
		ID:                eventID,
		AvailableVersions: []string{"VF", "VOST"},
	}, nil)

	versions, err := svc.GetAvailableVersions(eventID)
	require.NoError(t, err)
	assert.Equal(t, []string{"VF", "VOST"}, versions)
}

func TestGetHomeContentRestrictsToScheduledEvents(t *testing.T) {
	repo := new(mockRepository)
	store := new(mockSessionStore)
	svc := NewService(repo)
	svc.SetSessionStore(store)

	scheduledID := uuid.New()
	store.On("DistinctEventIDs", mock.AnythingOfType("time.Time")).
		Return([]uuid.UUID{scheduledID}, nil)

	movies := []Event{{ID: scheduledID, Type: EventTypeMovie, Name: "Film"}}
	repo.On("GetActiveInWindow", mock.AnythingOfType("time.Time"), EventTypeMovie, []uuid.UUID{scheduledID}).
		Return(movies, nil)
	repo.On("GetActiveInWindow", mock.AnythingOfType("time.Time"), EventTypeShow, []uuid.UUID{scheduledID}).
		Return([]Event{}, nil)
	repo.On("GetUpcoming", mock.AnythingOfType("time.Time"), EventType("")).
		Return([]Event{}, nil)

	content, err := svc.GetHomeContent(context.Background())
	require.NoError(t, err)
	assert.Equal(t, movies, content.ALaffiche)
	assert.Empty(t, content.Spectacles)
	repo.AssertExpectations(t)
}

func TestGetCatalogueFiltersByGenre(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo)

	items := []Event{
		{Name: "Drame alpin", Type: EventTypeMovie, Genres: []string{"Drame"}},
		{Name: "Comédie urbaine", Type: EventTypeMovie, Genres: []string{"Comédie"}},
	}
	repo.On("GetActiveInWindow", mock.AnythingOfType("time.Time"), EventTypeMovie, []uuid.UUID(nil)).
		Return(items, nil)
	repo.On("GetUpcoming", mock.AnythingOfType("time.Time"), EventTypeMovie).
		Return([]Event{}, nil)

	catalogue, err := svc.GetCatalogue(context.Background(), "movie", "Drame")
	require.NoError(t, err)
	require.Len(t, catalogue.Events, 1)
	assert.Equal(t, "Drame alpin", catalogue.Events[0].Name)
}
