package cashflow

import (
	"context"

	"kosku/internal/domain"

	"github.com/shopspring/decimal"
)

// BookingRepository is the read-only slice of the booking store this module
// needs.
type BookingRepository interface {
	ListByStatus(ctx context.Context, status domain.RentalStatus) ([]domain.Booking, error)
}

// Summary aggregates the derived entries.
type Summary struct {
	Entries     []domain.CashflowEntry `json:"entries"`
	Income      decimal.Decimal        `json:"income"`
	Pending     decimal.Decimal        `json:"pending"`
	Outstanding decimal.Decimal        `json:"outstanding"`
}

type Service struct {
	bookings BookingRepository
}

func NewService(bookings BookingRepository) *Service {
	return &Service{bookings: bookings}
}

// Report derives the cashflow ledger from APPROVED bookings. Bookings without
// pricing are skipped; nothing here is persisted.
func (s *Service) Report(ctx context.Context) (*Summary, error) {
	approved, err := s.bookings.ListByStatus(ctx, domain.BookingApproved)
	if err != nil {
		return nil, err
	}

	summary := &Summary{Entries: []domain.CashflowEntry{}}
	for i := range approved {
		entry := domain.DeriveCashflow(&approved[i])
		if entry == nil {
			continue
		}
		summary.Entries = append(summary.Entries, *entry)

		summary.Income = summary.Income.Add(entry.Dibayar)
		if entry.Status == domain.CashflowPending {
			summary.Pending = summary.Pending.Add(entry.Harga)
		}
		if entry.Sisa.Sign() > 0 {
			summary.Outstanding = summary.Outstanding.Add(entry.Sisa)
		}
	}

	return summary, nil
}
