package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type CostKind string

const (
	CostFixed    CostKind = "fixed"
	CostVariable CostKind = "variable"
	CostSupport  CostKind = "support"
)

type CostStatus string

const (
	CostPaid    CostStatus = "Paid"
	CostPending CostStatus = "Pending"
	CostOverdue CostStatus = "Overdue"
)

type CostReceipt struct {
	URL      string `json:"url"`
	FileName string `json:"file_name"`
}

// CostRecord is a single expense line in the admin cost ledger. Fixed,
// variable, and support costs share the same shape and differ only by kind.
type CostRecord struct {
	ID        string          `json:"id"`
	Kind      CostKind        `json:"kind"`
	Status    CostStatus      `json:"status"`
	Caption   string          `json:"caption"`
	Harga     decimal.Decimal `json:"harga"`
	Tanggal   string          `json:"tanggal"`
	Receipt   *CostReceipt    `json:"receipt_file,omitempty"`
	Version   int64           `json:"version"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func ValidCostKind(k CostKind) bool {
	switch k {
	case CostFixed, CostVariable, CostSupport:
		return true
	}
	return false
}

func ValidCostStatus(s CostStatus) bool {
	switch s {
	case CostPaid, CostPending, CostOverdue:
		return true
	}
	return false
}
