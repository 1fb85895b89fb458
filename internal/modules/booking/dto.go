package booking

import "github.com/shopspring/decimal"

type ContactRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone" binding:"required"`
	WhatsApp string `json:"whatsapp"`
}

type CreateBookingRequest struct {
	RoomID       int64               `json:"room_id" binding:"required"`
	StartDate    string              `json:"start_date" binding:"required"` // 2006-01-02
	DurationType string              `json:"duration_type" binding:"required"`
	Contact      ContactRequest      `json:"contact" binding:"required"`
	Pricing      *PricingRequest     `json:"pricing"`
	Notes        string              `json:"notes"`
}

type PricingRequest struct {
	Amount     decimal.Decimal `json:"amount"`
	PaidAmount decimal.Decimal `json:"paid_amount"`
}

type UpdatePricingRequest struct {
	Amount     decimal.Decimal `json:"amount" binding:"required"`
	PaidAmount decimal.Decimal `json:"paid_amount"`
	Version    int64           `json:"version"`
}

type AttachDocumentRequest struct {
	Type     string `json:"type" binding:"required"`
	FileName string `json:"file_name" binding:"required"`
	FileURL  string `json:"file_url" binding:"required"`
}
