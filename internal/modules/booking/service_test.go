package booking

import (
	"context"
	"testing"
	"time"

	"kosku/internal/domain"
	"kosku/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	if b != nil {
		b.ID = 999 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) List(ctx context.Context) ([]domain.Booking, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Booking, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) HasActiveForRoom(ctx context.Context, roomID, excludeBookingID int64) (bool, error) {
	args := m.Called(ctx, roomID, excludeBookingID)
	return args.Bool(0), args.Error(1)
}

func (m *MockBookingRepository) UpdateStatus(ctx context.Context, id int64, version int64, status domain.RentalStatus) error {
	args := m.Called(ctx, id, version, status)
	return args.Error(0)
}

func (m *MockBookingRepository) UpdatePricing(ctx context.Context, id int64, version int64, pricing domain.BookingPricing) error {
	args := m.Called(ctx, id, version, pricing)
	return args.Error(0)
}

func (m *MockBookingRepository) AddDocument(ctx context.Context, doc *domain.BookingDocument) error {
	args := m.Called(ctx, doc)
	return args.Error(0)
}

func (m *MockBookingRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockRoomRepository struct {
	mock.Mock
}

func (m *MockRoomRepository) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}

func (m *MockRoomRepository) UpdateStatus(ctx context.Context, id int64, status domain.RoomStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func pendingBooking(id, roomID int64, version int64) *domain.Booking {
	return &domain.Booking{
		ID:           id,
		UserID:       10,
		Room:         domain.RoomSnapshot{RoomID: roomID, RoomNumber: "A1"},
		RentalStatus: domain.BookingPending,
		RentalPeriod: domain.RentalPeriod{
			StartDate:    time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
			EndDate:      time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
			DurationType: domain.DurationMonthly,
		},
		Version: version,
	}
}

func validBookingRequest() CreateBookingRequest {
	return CreateBookingRequest{
		RoomID:       3,
		StartDate:    "2026-09-01",
		DurationType: "MONTHLY",
		Contact: ContactRequest{
			Name:  "Budi",
			Email: "budi@example.com",
			Phone: "+628123456789",
		},
	}
}

func TestCreateBooking_SnapshotsRoomAndStartsPending(t *testing.T) {
	bookings := new(MockBookingRepository)
	rooms := new(MockRoomRepository)
	svc := NewService(bookings, rooms, nil)

	rooms.On("GetByID", mock.Anything, int64(3)).Return(&domain.Room{
		ID:         3,
		Name:       "A1",
		Type:       domain.RoomStandard,
		Facilities: []string{"AC"},
	}, nil)
	bookings.On("Create", mock.Anything, mock.Anything).Return(nil)

	b, err := svc.Create(context.Background(), 10, validBookingRequest())

	assert.NoError(t, err)
	assert.Equal(t, domain.BookingPending, b.RentalStatus)
	assert.Equal(t, int64(3), b.Room.RoomID)
	assert.Equal(t, "A1", b.Room.RoomNumber)
	assert.Equal(t, []string{"AC"}, b.Room.Facilities)
	assert.Equal(t, time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC), b.RentalPeriod.EndDate)
}

func TestCreateBooking_UnknownDuration(t *testing.T) {
	bookings := new(MockBookingRepository)
	rooms := new(MockRoomRepository)
	svc := NewService(bookings, rooms, nil)

	req := validBookingRequest()
	req.DurationType = "DAILY"

	_, err := svc.Create(context.Background(), 10, req)

	assert.ErrorIs(t, err, ErrValidation)
	rooms.AssertNotCalled(t, "GetByID")
}

func TestCreateBooking_MissingRoom(t *testing.T) {
	bookings := new(MockBookingRepository)
	rooms := new(MockRoomRepository)
	svc := NewService(bookings, rooms, nil)

	rooms.On("GetByID", mock.Anything, int64(3)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Create(context.Background(), 10, validBookingRequest())

	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestApprove_MarksRoomBooked(t *testing.T) {
	bookings := new(MockBookingRepository)
	rooms := new(MockRoomRepository)
	svc := NewService(bookings, rooms, nil)

	b := pendingBooking(1, 3, 1)
	approved := pendingBooking(1, 3, 2)
	approved.RentalStatus = domain.BookingApproved

	bookings.On("GetByID", mock.Anything, int64(1)).Return(b, nil).Once()
	bookings.On("UpdateStatus", mock.Anything, int64(1), int64(1), domain.BookingApproved).Return(nil)
	rooms.On("UpdateStatus", mock.Anything, int64(3), domain.RoomBooked).Return(nil)
	bookings.On("GetByID", mock.Anything, int64(1)).Return(approved, nil)

	got, err := svc.Approve(context.Background(), 1)

	assert.NoError(t, err)
	assert.Equal(t, domain.BookingApproved, got.RentalStatus)
	rooms.AssertExpectations(t)
}

func TestApprove_RefusesDecidedBooking(t *testing.T) {
	bookings := new(MockBookingRepository)
	rooms := new(MockRoomRepository)
	svc := NewService(bookings, rooms, nil)

	b := pendingBooking(1, 3, 1)
	b.RentalStatus = domain.BookingApproved
	bookings.On("GetByID", mock.Anything, int64(1)).Return(b, nil)

	_, err := svc.Approve(context.Background(), 1)

	assert.ErrorIs(t, err, ErrNotPending)
	bookings.AssertNotCalled(t, "UpdateStatus")
}

func TestApprove_VersionConflict(t *testing.T) {
	bookings := new(MockBookingRepository)
	rooms := new(MockRoomRepository)
	svc := NewService(bookings, rooms, nil)

	bookings.On("GetByID", mock.Anything, int64(1)).Return(pendingBooking(1, 3, 1), nil)
	bookings.On("UpdateStatus", mock.Anything, int64(1), int64(1), domain.BookingApproved).
		Return(repository.ErrVersionConflict)

	_, err := svc.Approve(context.Background(), 1)

	assert.ErrorIs(t, err, ErrConflict)
}

func TestCancel_FreesRoomWhenNoOtherActiveBooking(t *testing.T) {
	bookings := new(MockBookingRepository)
	rooms := new(MockRoomRepository)
	svc := NewService(bookings, rooms, nil)

	b := pendingBooking(1, 3, 1)
	cancelled := pendingBooking(1, 3, 2)
	cancelled.RentalStatus = domain.BookingCancel

	bookings.On("GetByID", mock.Anything, int64(1)).Return(b, nil).Once()
	bookings.On("UpdateStatus", mock.Anything, int64(1), int64(1), domain.BookingCancel).Return(nil)
	rooms.On("GetByID", mock.Anything, int64(3)).Return(&domain.Room{ID: 3, Status: domain.RoomBooked}, nil)
	bookings.On("HasActiveForRoom", mock.Anything, int64(3), int64(1)).Return(false, nil)
	rooms.On("UpdateStatus", mock.Anything, int64(3), domain.RoomAvailable).Return(nil)
	bookings.On("GetByID", mock.Anything, int64(1)).Return(cancelled, nil)

	got, err := svc.Cancel(context.Background(), 1)

	assert.NoError(t, err)
	assert.Equal(t, domain.BookingCancel, got.RentalStatus)
	rooms.AssertExpectations(t)
}

func TestCancel_RefusesDecidedBooking(t *testing.T) {
	bookings := new(MockBookingRepository)
	rooms := new(MockRoomRepository)
	svc := NewService(bookings, rooms, nil)

	b := pendingBooking(1, 3, 1)
	b.RentalStatus = domain.BookingApproved
	bookings.On("GetByID", mock.Anything, int64(1)).Return(b, nil)

	_, err := svc.Cancel(context.Background(), 1)

	assert.ErrorIs(t, err, ErrNotPending)
	bookings.AssertNotCalled(t, "UpdateStatus")
}

func TestCancel_KeepsRoomBookedWhenAnotherBookingIsActive(t *testing.T) {
	bookings := new(MockBookingRepository)
	rooms := new(MockRoomRepository)
	svc := NewService(bookings, rooms, nil)

	b := pendingBooking(1, 3, 1)
	cancelled := pendingBooking(1, 3, 2)
	cancelled.RentalStatus = domain.BookingCancel

	bookings.On("GetByID", mock.Anything, int64(1)).Return(b, nil).Once()
	bookings.On("UpdateStatus", mock.Anything, int64(1), int64(1), domain.BookingCancel).Return(nil)
	rooms.On("GetByID", mock.Anything, int64(3)).Return(&domain.Room{ID: 3, Status: domain.RoomBooked}, nil)
	bookings.On("HasActiveForRoom", mock.Anything, int64(3), int64(1)).Return(true, nil)
	bookings.On("GetByID", mock.Anything, int64(1)).Return(cancelled, nil)

	_, err := svc.Cancel(context.Background(), 1)

	assert.NoError(t, err)
	rooms.AssertNotCalled(t, "UpdateStatus")
}

func TestCancel_LeavesMaintenanceRoomUntouched(t *testing.T) {
	bookings := new(MockBookingRepository)
	rooms := new(MockRoomRepository)
	svc := NewService(bookings, rooms, nil)

	b := pendingBooking(1, 3, 1)
	cancelled := pendingBooking(1, 3, 2)
	cancelled.RentalStatus = domain.BookingCancel

	bookings.On("GetByID", mock.Anything, int64(1)).Return(b, nil).Once()
	bookings.On("UpdateStatus", mock.Anything, int64(1), int64(1), domain.BookingCancel).Return(nil)
	rooms.On("GetByID", mock.Anything, int64(3)).Return(&domain.Room{ID: 3, Status: domain.RoomMaintenance}, nil)
	bookings.On("GetByID", mock.Anything, int64(1)).Return(cancelled, nil)

	_, err := svc.Cancel(context.Background(), 1)

	assert.NoError(t, err)
	rooms.AssertNotCalled(t, "UpdateStatus")
	bookings.AssertNotCalled(t, "HasActiveForRoom")
}

func TestGet_CustomerCannotReadOthersBooking(t *testing.T) {
	bookings := new(MockBookingRepository)
	rooms := new(MockRoomRepository)
	svc := NewService(bookings, rooms, nil)

	bookings.On("GetByID", mock.Anything, int64(1)).Return(pendingBooking(1, 3, 1), nil)

	_, err := svc.Get(context.Background(), 1, 77, false)
	assert.ErrorIs(t, err, ErrForbidden)

	got, err := svc.Get(context.Background(), 1, 77, true)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), got.ID)
}

func TestAttachDocument_RejectsUnknownType(t *testing.T) {
	bookings := new(MockBookingRepository)
	rooms := new(MockRoomRepository)
	svc := NewService(bookings, rooms, nil)

	_, err := svc.AttachDocument(context.Background(), 1, AttachDocumentRequest{
		Type:     "CONTRACT",
		FileName: "contract.pdf",
		FileURL:  "/static/uploads/contract.pdf",
	})

	assert.ErrorIs(t, err, ErrInvalidDocument)
}

func TestUpdatePricing_RejectsNonPositiveAmount(t *testing.T) {
	bookings := new(MockBookingRepository)
	rooms := new(MockRoomRepository)
	svc := NewService(bookings, rooms, nil)

	_, err := svc.UpdatePricing(context.Background(), 1, UpdatePricingRequest{
		Amount: decimal.Zero,
	})

	assert.ErrorIs(t, err, ErrValidation)
	bookings.AssertNotCalled(t, "UpdatePricing")
}
