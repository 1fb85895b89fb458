package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type RentalStatus string

const (
	// PENDING bookings await an admin decision; APPROVED and CANCEL are terminal.
	BookingPending  RentalStatus = "PENDING"
	BookingApproved RentalStatus = "APPROVED"
	BookingCancel   RentalStatus = "CANCEL"
)

type DurationType string

const (
	DurationWeekly   DurationType = "WEEKLY"
	DurationMonthly  DurationType = "MONTHLY"
	DurationSemester DurationType = "SEMESTER"
	DurationYearly   DurationType = "YEARLY"
)

type DocumentType string

const (
	DocBookingSlip DocumentType = "BOOKING_SLIP"
	DocReceipt     DocumentType = "RECEIPT"
	DocSOP         DocumentType = "SOP"
	DocInvoice     DocumentType = "INVOICE"
)

// RoomSnapshot is the denormalized copy of the room taken when the booking is
// created, so the booking keeps rendering even if the room is edited later.
type RoomSnapshot struct {
	RoomID      int64    `json:"room_id"`
	RoomNumber  string   `json:"room_number"`
	Type        RoomType `json:"type"`
	Size        string   `json:"size,omitempty"`
	Description string   `json:"description,omitempty"`
	Facilities  []string `json:"facilities,omitempty"`
	Images      []string `json:"images,omitempty"`
}

type RentalPeriod struct {
	StartDate    time.Time    `json:"start_date"`
	EndDate      time.Time    `json:"end_date"`
	DurationType DurationType `json:"duration_type"`
}

type ContactInfo struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	WhatsApp string `json:"whatsapp"`
}

type BookingDocument struct {
	ID        string       `json:"id"`
	BookingID int64        `json:"booking_id"`
	Type      DocumentType `json:"type"`
	FileName  string       `json:"file_name"`
	FileURL   string       `json:"file_url"`
	CreatedAt time.Time    `json:"created_at"`
}

type BookingPricing struct {
	Amount     decimal.Decimal `json:"amount"`
	PaidAmount decimal.Decimal `json:"paid_amount"`
}

type Booking struct {
	ID           int64             `json:"id"`
	UserID       int64             `json:"user_id"`
	Room         RoomSnapshot      `json:"room"`
	RentalStatus RentalStatus      `json:"rental_status"`
	RentalPeriod RentalPeriod      `json:"rental_period"`
	ContactInfo  ContactInfo       `json:"contact_info"`
	Documents    []BookingDocument `json:"documents,omitempty"`
	Pricing      *BookingPricing   `json:"pricing,omitempty"`
	Notes        string            `json:"notes,omitempty"`
	Version      int64             `json:"version"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

// DaysRemaining returns the whole days between today and the rental end date,
// both truncated to midnight. Negative once the contract has expired.
func (b *Booking) DaysRemaining(now time.Time) int {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	end := b.RentalPeriod.EndDate
	endDay := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, now.Location())
	return int(endDay.Sub(today).Hours() / 24)
}

func ValidDurationType(d DurationType) bool {
	switch d {
	case DurationWeekly, DurationMonthly, DurationSemester, DurationYearly:
		return true
	}
	return false
}

func ValidDocumentType(t DocumentType) bool {
	switch t {
	case DocBookingSlip, DocReceipt, DocSOP, DocInvoice:
		return true
	}
	return false
}
