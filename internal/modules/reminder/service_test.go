package reminder

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"testing"
	"time"

	"kosku/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) ListByStatus(ctx context.Context, status domain.RentalStatus) ([]domain.Booking, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

type MockLogRepository struct {
	mock.Mock
}

func (m *MockLogRepository) Exists(ctx context.Context, bookingID int64, leadDays int) (bool, error) {
	args := m.Called(ctx, bookingID, leadDays)
	return args.Bool(0), args.Error(1)
}

func (m *MockLogRepository) Create(ctx context.Context, l *domain.ReminderLog) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

type MockSender struct {
	mock.Mock
}

func (m *MockSender) Send(ctx context.Context, phoneNumber, message string) error {
	args := m.Called(ctx, phoneNumber, message)
	return args.Error(0)
}

var testNow = time.Date(2026, 9, 1, 10, 30, 0, 0, time.UTC)

func bookingEndingIn(id int64, days int) domain.Booking {
	return domain.Booking{
		ID:           id,
		RentalStatus: domain.BookingApproved,
		ContactInfo: domain.ContactInfo{
			Name:     "Budi",
			Phone:    "+628123456789",
			WhatsApp: "+628123456789",
		},
		Room: domain.RoomSnapshot{RoomNumber: "A1"},
		RentalPeriod: domain.RentalPeriod{
			EndDate: testNow.AddDate(0, 0, days),
		},
	}
}

func newTestService(bookings *MockBookingRepository, logs *MockLogRepository, wa *MockSender) *Service {
	return NewService(bookings, logs, wa).
		WithRand(rand.New(rand.NewSource(1))).
		WithClock(func() time.Time { return testNow })
}

func TestRun_ExactBoundaryDaysOnly(t *testing.T) {
	bookings := new(MockBookingRepository)
	logs := new(MockLogRepository)
	wa := new(MockSender)
	svc := newTestService(bookings, logs, wa)

	bookings.On("ListByStatus", mock.Anything, domain.BookingApproved).Return([]domain.Booking{
		bookingEndingIn(1, 7), // h7
		bookingEndingIn(2, 6), // no bucket
		bookingEndingIn(3, 8), // no bucket
	}, nil)
	logs.On("Exists", mock.Anything, int64(1), 7).Return(false, nil)
	logs.On("Create", mock.Anything, mock.Anything).Return(nil)
	wa.On("Send", mock.Anything, "+628123456789", mock.Anything).Return(nil)

	summary, err := svc.Run(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 1, summary.H7)
	assert.Equal(t, 1, summary.Total)
	wa.AssertNumberOfCalls(t, "Send", 1)
}

func TestRun_AllFourBuckets(t *testing.T) {
	bookings := new(MockBookingRepository)
	logs := new(MockLogRepository)
	wa := new(MockSender)
	svc := newTestService(bookings, logs, wa)

	bookings.On("ListByStatus", mock.Anything, domain.BookingApproved).Return([]domain.Booking{
		bookingEndingIn(1, 1),
		bookingEndingIn(2, 7),
		bookingEndingIn(3, 15),
		bookingEndingIn(4, 30),
	}, nil)
	logs.On("Exists", mock.Anything, mock.Anything, mock.Anything).Return(false, nil)
	logs.On("Create", mock.Anything, mock.Anything).Return(nil)
	wa.On("Send", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	summary, err := svc.Run(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 1, summary.H1)
	assert.Equal(t, 1, summary.H7)
	assert.Equal(t, 1, summary.H15)
	assert.Equal(t, 1, summary.H30)
	assert.Equal(t, 4, summary.Total)
}

func TestRun_SkipsAlreadyLoggedBooking(t *testing.T) {
	bookings := new(MockBookingRepository)
	logs := new(MockLogRepository)
	wa := new(MockSender)
	svc := newTestService(bookings, logs, wa)

	bookings.On("ListByStatus", mock.Anything, domain.BookingApproved).
		Return([]domain.Booking{bookingEndingIn(1, 7)}, nil)
	logs.On("Exists", mock.Anything, int64(1), 7).Return(true, nil)

	summary, err := svc.Run(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 0, summary.Total)
	wa.AssertNotCalled(t, "Send")
}

func TestRun_OneFailureDoesNotAbortTheRest(t *testing.T) {
	bookings := new(MockBookingRepository)
	logs := new(MockLogRepository)
	wa := new(MockSender)
	svc := newTestService(bookings, logs, wa)

	broken := bookingEndingIn(1, 7)
	broken.ContactInfo.WhatsApp = "+62800000000"
	broken.ContactInfo.Phone = "+62800000000"
	fine := bookingEndingIn(2, 7)

	bookings.On("ListByStatus", mock.Anything, domain.BookingApproved).
		Return([]domain.Booking{broken, fine}, nil)
	logs.On("Exists", mock.Anything, mock.Anything, 7).Return(false, nil)
	logs.On("Create", mock.Anything, mock.Anything).Return(nil)
	wa.On("Send", mock.Anything, "+62800000000", mock.Anything).Return(errors.New("gateway down"))
	wa.On("Send", mock.Anything, "+628123456789", mock.Anything).Return(nil)

	summary, err := svc.Run(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 1, summary.Total)
	assert.Equal(t, 1, summary.Failed)
}

func TestRun_MessageMentionsTenantAndRoom(t *testing.T) {
	bookings := new(MockBookingRepository)
	logs := new(MockLogRepository)
	wa := new(MockSender)
	svc := newTestService(bookings, logs, wa)

	bookings.On("ListByStatus", mock.Anything, domain.BookingApproved).
		Return([]domain.Booking{bookingEndingIn(1, 1)}, nil)
	logs.On("Exists", mock.Anything, int64(1), 1).Return(false, nil)
	logs.On("Create", mock.Anything, mock.Anything).Return(nil)

	var got string
	wa.On("Send", mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { got = args.String(2) }).
		Return(nil)

	_, err := svc.Run(context.Background())

	assert.NoError(t, err)
	assert.True(t, strings.Contains(got, "Budi"))
	assert.True(t, strings.Contains(got, "A1"))
}

func TestRun_MessageIncludesOutstandingBalance(t *testing.T) {
	bookings := new(MockBookingRepository)
	logs := new(MockLogRepository)
	wa := new(MockSender)
	svc := newTestService(bookings, logs, wa)

	b := bookingEndingIn(1, 7)
	b.Pricing = &domain.BookingPricing{
		Amount:     decimal.NewFromInt(1500000),
		PaidAmount: decimal.NewFromInt(500000),
	}

	bookings.On("ListByStatus", mock.Anything, domain.BookingApproved).
		Return([]domain.Booking{b}, nil)
	logs.On("Exists", mock.Anything, int64(1), 7).Return(false, nil)
	logs.On("Create", mock.Anything, mock.Anything).Return(nil)

	var got string
	wa.On("Send", mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { got = args.String(2) }).
		Return(nil)

	_, err := svc.Run(context.Background())

	assert.NoError(t, err)
	assert.True(t, strings.Contains(got, "Rp1.000.000"))
}

func TestRun_TimeOfDayDoesNotChangeTheBucket(t *testing.T) {
	bookings := new(MockBookingRepository)
	logs := new(MockLogRepository)
	wa := new(MockSender)
	svc := newTestService(bookings, logs, wa)

	// End date at 23:59, run at 10:30. Calendar distance is still 7 days.
	b := bookingEndingIn(1, 7)
	b.RentalPeriod.EndDate = time.Date(2026, 9, 8, 23, 59, 0, 0, time.UTC)

	bookings.On("ListByStatus", mock.Anything, domain.BookingApproved).
		Return([]domain.Booking{b}, nil)
	logs.On("Exists", mock.Anything, int64(1), 7).Return(false, nil)
	logs.On("Create", mock.Anything, mock.Anything).Return(nil)
	wa.On("Send", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	summary, err := svc.Run(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 1, summary.H7)
}

func TestRun_SummaryCarriesBucketDescriptions(t *testing.T) {
	bookings := new(MockBookingRepository)
	logs := new(MockLogRepository)
	wa := new(MockSender)
	svc := newTestService(bookings, logs, wa)

	bookings.On("ListByStatus", mock.Anything, domain.BookingApproved).Return([]domain.Booking{}, nil)

	summary, err := svc.Run(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, "Berakhir besok", summary.Descriptions["h1"])
	assert.Equal(t, "Berakhir dalam 7 hari", summary.Descriptions["h7"])
	assert.Equal(t, "Berakhir dalam 15 hari", summary.Descriptions["h15"])
	assert.Equal(t, "Berakhir dalam 30 hari", summary.Descriptions["h30"])
}
