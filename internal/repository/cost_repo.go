package repository

import (
	"context"
	"time"

	"kosku/internal/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CostRepository struct {
	db *gorm.DB
}

func NewCostRepository(db *gorm.DB) *CostRepository {
	return &CostRepository{db: db}
}

type costRow struct {
	ID              string          `gorm:"column:id;primaryKey"`
	Kind            string          `gorm:"column:kind;index"`
	Status          string          `gorm:"column:status"`
	Caption         string          `gorm:"column:caption"`
	Harga           decimal.Decimal `gorm:"column:harga;type:decimal(18,2)"`
	Tanggal         string          `gorm:"column:tanggal"`
	ReceiptURL      *string         `gorm:"column:receipt_url"`
	ReceiptFileName *string         `gorm:"column:receipt_file_name"`
	Version         int64           `gorm:"column:version"`
	CreatedAt       time.Time       `gorm:"column:created_at"`
	UpdatedAt       time.Time       `gorm:"column:updated_at"`
}

func (costRow) TableName() string { return "cost_records" }

func toDomainCost(m costRow) *domain.CostRecord {
	c := &domain.CostRecord{
		ID:        m.ID,
		Kind:      domain.CostKind(m.Kind),
		Status:    domain.CostStatus(m.Status),
		Caption:   m.Caption,
		Harga:     m.Harga,
		Tanggal:   m.Tanggal,
		Version:   m.Version,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	if m.ReceiptURL != nil {
		c.Receipt = &domain.CostReceipt{URL: *m.ReceiptURL}
		if m.ReceiptFileName != nil {
			c.Receipt.FileName = *m.ReceiptFileName
		}
	}
	return c
}

func toCostRow(c *domain.CostRecord) costRow {
	m := costRow{
		ID:        c.ID,
		Kind:      string(c.Kind),
		Status:    string(c.Status),
		Caption:   c.Caption,
		Harga:     c.Harga,
		Tanggal:   c.Tanggal,
		Version:   c.Version,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
	if c.Receipt != nil {
		url := c.Receipt.URL
		name := c.Receipt.FileName
		m.ReceiptURL = &url
		m.ReceiptFileName = &name
	}
	return m
}

func (r *CostRepository) Create(ctx context.Context, c *domain.CostRecord) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	m := toCostRow(c)
	m.Version = 1
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*c = *toDomainCost(m)
	return nil
}

func (r *CostRepository) GetByID(ctx context.Context, kind domain.CostKind, id string) (*domain.CostRecord, error) {
	var m costRow
	tx := r.db.WithContext(ctx).
		Where("id = ? AND kind = ?", id, string(kind)).
		First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainCost(m), nil
}

func (r *CostRepository) ListByKind(ctx context.Context, kind domain.CostKind) ([]domain.CostRecord, error) {
	var rows []costRow
	tx := r.db.WithContext(ctx).
		Where("kind = ?", string(kind)).
		Order("tanggal DESC, created_at DESC").
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.CostRecord, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainCost(m))
	}
	return out, nil
}

func (r *CostRepository) Update(ctx context.Context, c *domain.CostRecord) error {
	m := toCostRow(c)
	tx := r.db.WithContext(ctx).Model(&costRow{}).
		Where("id = ? AND kind = ? AND version = ?", c.ID, string(c.Kind), c.Version).
		Updates(map[string]any{
			"status":            m.Status,
			"caption":           m.Caption,
			"harga":             m.Harga,
			"tanggal":           m.Tanggal,
			"receipt_url":       m.ReceiptURL,
			"receipt_file_name": m.ReceiptFileName,
			"version":           c.Version + 1,
		})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrVersionConflict
	}
	c.Version++
	return nil
}

func (r *CostRepository) Delete(ctx context.Context, kind domain.CostKind, id string) error {
	tx := r.db.WithContext(ctx).
		Where("id = ? AND kind = ?", id, string(kind)).
		Delete(&costRow{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
