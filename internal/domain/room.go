package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type RoomType string

const (
	RoomStandard RoomType = "Standard"
	RoomDeluxe   RoomType = "Deluxe"
	RoomPremium  RoomType = "Premium"
)

type RoomStatus string

const (
	RoomAvailable   RoomStatus = "Available"
	RoomBooked      RoomStatus = "Booked"
	RoomMaintenance RoomStatus = "Maintenance"
)

// RoomPricing holds the rate per rental duration, in rupiah.
type RoomPricing struct {
	Weekly   decimal.Decimal `json:"weekly"`
	Monthly  decimal.Decimal `json:"monthly"`
	Semester decimal.Decimal `json:"semester"`
	Yearly   decimal.Decimal `json:"yearly"`
}

type Room struct {
	ID           int64       `json:"id"`
	Name         string      `json:"name" validate:"required"`
	Type         RoomType    `json:"type" validate:"required"`
	Pricing      RoomPricing `json:"pricing"`
	Status       RoomStatus  `json:"status"`
	Description  string      `json:"description,omitempty"`
	Facilities   []string    `json:"facilities,omitempty"`
	Images       []string    `json:"images,omitempty"`
	MaxOccupancy int         `json:"max_occupancy"`
	Size         string      `json:"size,omitempty"`
	Version      int64       `json:"version"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

func ValidRoomType(t RoomType) bool {
	switch t {
	case RoomStandard, RoomDeluxe, RoomPremium:
		return true
	}
	return false
}

func ValidRoomStatus(s RoomStatus) bool {
	switch s {
	case RoomAvailable, RoomBooked, RoomMaintenance:
		return true
	}
	return false
}
