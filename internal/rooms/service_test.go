package rooms

import (
	"testing"

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

func (m *mockRepository) Create(room *Room) error {
	args := m.Called(room)
	return args.Error(0)
}

func (m *mockRepository) GetAll() ([]Room, error) {
	args := m.Called()
	return args.Get(0).([]Room), args.Error(1)
}

func (m *mockRepository) GetByID(id uuid.UUID) (*Room, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Room), args.Error(1)
}

func (m *mockRepository) GetByName(name string) (*Room, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Room), args.Error(1)
}

func (m *mockRepository) Update(id uuid.UUID, updates map[string]interface{}) (*Room, error) {
	args := m.Called(id, updates)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Room), args.Error(1)
}

func (m *mockRepository) Delete(id uuid.UUID) error {
	args := m.Called(id)
	return args.Error(0)
}

func testLayout() []seatmap.Cell {
	return []seatmap.Cell{
		{Row: "A", Col: 1, CellType: seatmap.CellSeat},
		{Row: "A", Col: 2, CellType: seatmap.CellAisle},
		{Row: "B", Col: 1, CellType: seatmap.CellSeat},
		{Row: "B", Col: 2, CellType: seatmap.CellSeat},
	}
}

func TestCreateRoomDerivesCapacityFromLayout(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo)

	repo.On("Create", mock.AnythingOfType("*rooms.Room")).Return(nil)

	room, err := svc.CreateRoom(CreateRoomRequest{
		Name:   "Salle 1",
		Layout: testLayout(),
	})

	require.NoError(t, err)
	assert.Equal(t, 3, room.Capacity, "capacity defaults to the number of chaise cells")
	repo.AssertExpectations(t)
}

func TestCreateRoomExplicitCapacityWins(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo)

	repo.On("Create", mock.AnythingOfType("*rooms.Room")).Return(nil)

	capacity := 10
	room, err := svc.CreateRoom(CreateRoomRequest{
		Name:     "Salle 2",
		Capacity: &capacity,
		Layout:   testLayout(),
	})

	require.NoError(t, err)
	assert.Equal(t, 10, room.Capacity)
}

func TestCreateRoomRequiresLayout(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo)

	_, err := svc.CreateRoom(CreateRoomRequest{Name: "Salle 3"})
	require.Error(t, err)

	appErr, ok := apperror.From(err)
	require.True(t, ok)
	assert.Equal(t, apperror.BadRequest, appErr.Kind)
	repo.AssertNotCalled(t, "Create")
}

func TestCreateRoomRejectsSessionOnlyOverrideStatus(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo)

	_, err := svc.CreateRoom(CreateRoomRequest{
		Name:   "Salle 4",
		Layout: testLayout(),
		Overrides: []seatmap.Override{
			{Row: "A", Col: 1, Status: seatmap.OverrideSeat},
		},
	})

	require.Error(t, err)
	repo.AssertNotCalled(t, "Create")
}

func TestCreateRoomRejectsPricingOverrideOnAisle(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo)

	_, err := svc.CreateRoom(CreateRoomRequest{
		Name:   "Salle 5",
		Layout: testLayout(),
		PricingOverrides: []seatmap.PricingOverride{
			{Row: "A", Col: 2, PricingID: uuid.New()},
		},
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "chaise")
}

func TestUpdateRoomLayoutRecomputesCapacity(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo)
	roomID := uuid.New()

	existing := &Room{ID: roomID, Name: "Salle 1", Capacity: 3, Layout: testLayout()}
	repo.On("GetByID", roomID).Return(existing, nil)

	newLayout := []seatmap.Cell{
		{Row: "A", Col: 1, CellType: seatmap.CellSeat},
		{Row: "A", Col: 2, CellType: seatmap.CellSeat},
	}
	repo.On("Update", roomID, mock.MatchedBy(func(updates map[string]interface{}) bool {
		return updates["capacity"] == 2
	})).Return(&Room{ID: roomID, Capacity: 2, Layout: newLayout}, nil)

	room, err := svc.UpdateRoom(roomID, UpdateRoomRequest{Layout: &newLayout})
	require.NoError(t, err)
	assert.Equal(t, 2, room.Capacity)
	repo.AssertExpectations(t)
}

func TestUpdateRoomEmptyPayload(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo)
	roomID := uuid.New()

	repo.On("GetByID", roomID).Return(&Room{ID: roomID, Layout: testLayout()}, nil)

	_, err := svc.UpdateRoom(roomID, UpdateRoomRequest{})
	require.Error(t, err)

	appErr, ok := apperror.From(err)
	require.True(t, ok)
	assert.Equal(t, apperror.BadRequest, appErr.Kind)
}

func TestGetRoomByNameNotFound(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo)

	repo.On("GetByName", "Salle X").Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.GetRoomByName("Salle X")
	require.Error(t, err)

	appErr, ok := apperror.From(err)
	require.True(t, ok)
	assert.Equal(t, apperror.NotFound, appErr.Kind)
}
