package booking

import (
	"context"

	"kosku/internal/domain"
)

type Repository interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	List(ctx context.Context) ([]domain.Booking, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Booking, error)
	HasActiveForRoom(ctx context.Context, roomID, excludeBookingID int64) (bool, error)
	UpdateStatus(ctx context.Context, id int64, version int64, status domain.RentalStatus) error
	UpdatePricing(ctx context.Context, id int64, version int64, pricing domain.BookingPricing) error
	AddDocument(ctx context.Context, doc *domain.BookingDocument) error
	Delete(ctx context.Context, id int64) error
}

type RoomRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
	UpdateStatus(ctx context.Context, id int64, status domain.RoomStatus) error
}

// EventPublisher feeds the admin dashboard. A nil publisher is allowed; the
// service drops events in that case.
type EventPublisher interface {
	Publish(event string, payload any)
}
