package domain

import "github.com/shopspring/decimal"

type PaymentStatus string

const (
	PaymentNotPaid PaymentStatus = "Not Paid"
	PaymentPartial PaymentStatus = "Partial"
	PaymentPaid    PaymentStatus = "Paid"
)

type CashflowStatus string

const (
	CashflowIncome  CashflowStatus = "Income"
	CashflowPending CashflowStatus = "Pending"
)

// CashflowEntry is derived per APPROVED booking from its pricing; it is never
// persisted.
type CashflowEntry struct {
	BookingID     int64           `json:"booking_id"`
	Tenant        string          `json:"tenant"`
	RoomNumber    string          `json:"room_number"`
	Harga         decimal.Decimal `json:"harga"`
	Dibayar       decimal.Decimal `json:"dibayar"`
	Sisa          decimal.Decimal `json:"sisa"`
	PaymentStatus PaymentStatus   `json:"payment_status"`
	Status        CashflowStatus  `json:"status"`
}

// DeriveCashflow computes the cashflow line for an approved booking.
func DeriveCashflow(b *Booking) *CashflowEntry {
	if b.RentalStatus != BookingApproved || b.Pricing == nil {
		return nil
	}

	harga := b.Pricing.Amount
	dibayar := b.Pricing.PaidAmount
	sisa := harga.Sub(dibayar)

	payment := PaymentNotPaid
	switch {
	case dibayar.IsZero():
		payment = PaymentNotPaid
	case sisa.Sign() <= 0:
		payment = PaymentPaid
	default:
		payment = PaymentPartial
	}

	status := CashflowPending
	if payment == PaymentPaid {
		status = CashflowIncome
	}

	return &CashflowEntry{
		BookingID:     b.ID,
		Tenant:        b.ContactInfo.Name,
		RoomNumber:    b.Room.RoomNumber,
		Harga:         harga,
		Dibayar:       dibayar,
		Sisa:          sisa,
		PaymentStatus: payment,
		Status:        status,
	}
}
