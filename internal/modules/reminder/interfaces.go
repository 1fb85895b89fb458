package reminder

import (
	"context"

	"kosku/internal/domain"
)

type BookingRepository interface {
	ListByStatus(ctx context.Context, status domain.RentalStatus) ([]domain.Booking, error)
}

type LogRepository interface {
	Exists(ctx context.Context, bookingID int64, leadDays int) (bool, error)
	Create(ctx context.Context, l *domain.ReminderLog) error
}
