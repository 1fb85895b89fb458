package cost

import "github.com/shopspring/decimal"

type ReceiptRequest struct {
	URL      string `json:"url" binding:"required"`
	FileName string `json:"file_name" binding:"required"`
}

type CreateCostRequest struct {
	Caption string          `json:"caption" binding:"required"`
	Harga   decimal.Decimal `json:"harga" binding:"required"`
	Tanggal string          `json:"tanggal" binding:"required"` // 2006-01-02
	Status  string          `json:"status"`
	Receipt *ReceiptRequest `json:"receipt_file"`
}

type UpdateCostRequest struct {
	Caption string          `json:"caption" binding:"required"`
	Harga   decimal.Decimal `json:"harga" binding:"required"`
	Tanggal string          `json:"tanggal" binding:"required"`
	Status  string          `json:"status" binding:"required"`
	Receipt *ReceiptRequest `json:"receipt_file"`
	Version int64           `json:"version"`
}
