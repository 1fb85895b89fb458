package room

import "github.com/shopspring/decimal"

type PricingRequest struct {
	Weekly   decimal.Decimal `json:"weekly"`
	Monthly  decimal.Decimal `json:"monthly" binding:"required"`
	Semester decimal.Decimal `json:"semester"`
	Yearly   decimal.Decimal `json:"yearly"`
}

type CreateRoomRequest struct {
	Name         string         `json:"name" binding:"required"`
	Type         string         `json:"type" binding:"required"`
	Pricing      PricingRequest `json:"pricing" binding:"required"`
	Status       string         `json:"status"`
	Description  string         `json:"description"`
	Facilities   []string       `json:"facilities"`
	Images       []string       `json:"images"`
	MaxOccupancy int            `json:"max_occupancy"`
	Size         string         `json:"size"`
}

type UpdateRoomRequest struct {
	Name         string         `json:"name" binding:"required"`
	Type         string         `json:"type" binding:"required"`
	Pricing      PricingRequest `json:"pricing" binding:"required"`
	Status       string         `json:"status" binding:"required"`
	Description  string         `json:"description"`
	Facilities   []string       `json:"facilities"`
	Images       []string       `json:"images"`
	MaxOccupancy int            `json:"max_occupancy"`
	Size         string         `json:"size"`
	Version      int64          `json:"version"`
}
