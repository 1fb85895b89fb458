package room

import (
	"context"
	"testing"

	"kosku/internal/domain"
	"kosku/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockRoomRepository struct {
	mock.Mock
}

func (m *MockRoomRepository) Create(ctx context.Context, room *domain.Room) error {
	args := m.Called(ctx, room)
	if room != nil {
		room.ID = 42 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockRoomRepository) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}

func (m *MockRoomRepository) List(ctx context.Context) ([]domain.Room, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Room), args.Error(1)
}

func (m *MockRoomRepository) Update(ctx context.Context, room *domain.Room) error {
	args := m.Called(ctx, room)
	return args.Error(0)
}

func (m *MockRoomRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func validCreateRequest() CreateRoomRequest {
	return CreateRoomRequest{
		Name: "Kamar A1",
		Type: "Standard",
		Pricing: PricingRequest{
			Weekly:   decimal.NewFromInt(400000),
			Monthly:  decimal.NewFromInt(1500000),
			Semester: decimal.NewFromInt(8000000),
			Yearly:   decimal.NewFromInt(15000000),
		},
		Facilities: []string{"AC", "WiFi"},
	}
}

func TestCreateRoom_DefaultsToAvailable(t *testing.T) {
	repo := new(MockRoomRepository)
	svc := NewService(repo)

	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	room, err := svc.Create(context.Background(), validCreateRequest())

	assert.NoError(t, err)
	assert.Equal(t, int64(42), room.ID)
	assert.Equal(t, domain.RoomAvailable, room.Status)
	repo.AssertExpectations(t)
}

func TestCreateRoom_RejectsUnknownType(t *testing.T) {
	repo := new(MockRoomRepository)
	svc := NewService(repo)

	req := validCreateRequest()
	req.Type = "Penthouse"

	_, err := svc.Create(context.Background(), req)

	assert.ErrorIs(t, err, ErrValidation)
	repo.AssertNotCalled(t, "Create")
}

func TestCreateRoom_RejectsBlankName(t *testing.T) {
	repo := new(MockRoomRepository)
	svc := NewService(repo)

	req := validCreateRequest()
	req.Name = "   "

	_, err := svc.Create(context.Background(), req)

	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreateRoom_RejectsNonPositiveMonthlyPrice(t *testing.T) {
	repo := new(MockRoomRepository)
	svc := NewService(repo)

	req := validCreateRequest()
	req.Pricing.Monthly = decimal.Zero

	_, err := svc.Create(context.Background(), req)

	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreateRoom_ValidationErrorNamesTheFields(t *testing.T) {
	repo := new(MockRoomRepository)
	svc := NewService(repo)

	req := validCreateRequest()
	req.Type = "penthouse"
	req.Pricing.Monthly = decimal.Zero

	_, err := svc.Create(context.Background(), req)

	var vErr *ValidationError
	assert.ErrorAs(t, err, &vErr)
	assert.Equal(t, "unknown room type", vErr.Fields["type"])
	assert.Equal(t, "must be positive", vErr.Fields["pricing.monthly"])
}

func TestGetRoom_NotFound(t *testing.T) {
	repo := new(MockRoomRepository)
	svc := NewService(repo)

	repo.On("GetByID", mock.Anything, int64(7)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Get(context.Background(), 7)

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateRoom_VersionConflict(t *testing.T) {
	repo := new(MockRoomRepository)
	svc := NewService(repo)

	existing := &domain.Room{
		ID:      5,
		Name:    "Kamar B2",
		Type:    domain.RoomDeluxe,
		Status:  domain.RoomAvailable,
		Pricing: domain.RoomPricing{Monthly: decimal.NewFromInt(2000000)},
		Version: 3,
	}
	repo.On("GetByID", mock.Anything, int64(5)).Return(existing, nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(repository.ErrVersionConflict)

	req := UpdateRoomRequest{
		Name:    "Kamar B2",
		Type:    "Deluxe",
		Status:  "Available",
		Pricing: PricingRequest{Monthly: decimal.NewFromInt(2100000)},
		Version: 2, // stale
	}

	_, err := svc.Update(context.Background(), 5, req)

	assert.ErrorIs(t, err, ErrConflict)
}

func TestDeleteRoom_RefusesBookedRoom(t *testing.T) {
	repo := new(MockRoomRepository)
	svc := NewService(repo)

	repo.On("GetByID", mock.Anything, int64(9)).Return(&domain.Room{
		ID:     9,
		Status: domain.RoomBooked,
	}, nil)

	err := svc.Delete(context.Background(), 9)

	assert.ErrorIs(t, err, ErrRoomBooked)
	repo.AssertNotCalled(t, "Delete")
}

func TestDeleteRoom_AllowsAvailableRoom(t *testing.T) {
	repo := new(MockRoomRepository)
	svc := NewService(repo)

	repo.On("GetByID", mock.Anything, int64(9)).Return(&domain.Room{
		ID:     9,
		Status: domain.RoomAvailable,
	}, nil)
	repo.On("Delete", mock.Anything, int64(9)).Return(nil)

	err := svc.Delete(context.Background(), 9)

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}
