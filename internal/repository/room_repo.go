package repository

import (
	"context"
	"encoding/json"
	"time"

	"kosku/internal/domain"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type RoomRepository struct {
	db *gorm.DB
}

func NewRoomRepository(db *gorm.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

type roomRow struct {
	ID            int64           `gorm:"column:id;primaryKey"`
	Name          string          `gorm:"column:name"`
	Type          string          `gorm:"column:type"`
	PriceWeekly   decimal.Decimal `gorm:"column:price_weekly;type:decimal(18,2)"`
	PriceMonthly  decimal.Decimal `gorm:"column:price_monthly;type:decimal(18,2)"`
	PriceSemester decimal.Decimal `gorm:"column:price_semester;type:decimal(18,2)"`
	PriceYearly   decimal.Decimal `gorm:"column:price_yearly;type:decimal(18,2)"`
	Status        string          `gorm:"column:status"`
	Description   string          `gorm:"column:description;type:text"`
	Facilities    string          `gorm:"column:facilities;type:text"`
	Images        string          `gorm:"column:images;type:text"`
	MaxOccupancy  int             `gorm:"column:max_occupancy"`
	Size          string          `gorm:"column:size"`
	Version       int64           `gorm:"column:version"`
	CreatedAt     time.Time       `gorm:"column:created_at"`
	UpdatedAt     time.Time       `gorm:"column:updated_at"`
}

func (roomRow) TableName() string { return "rooms" }

func marshalStrings(v []string) string {
	if len(v) == 0 {
		return "[]"
	}
	b, err := json.Marshal(v)
	if err != nil {
		return "[]"
	}
	return string(b)
}

func unmarshalStrings(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	if err := json.Unmarshal([]byte(s), &out); err != nil {
		return nil
	}
	return out
}

func toDomainRoom(m roomRow) *domain.Room {
	return &domain.Room{
		ID:   m.ID,
		Name: m.Name,
		Type: domain.RoomType(m.Type),
		Pricing: domain.RoomPricing{
			Weekly:   m.PriceWeekly,
			Monthly:  m.PriceMonthly,
			Semester: m.PriceSemester,
			Yearly:   m.PriceYearly,
		},
		Status:       domain.RoomStatus(m.Status),
		Description:  m.Description,
		Facilities:   unmarshalStrings(m.Facilities),
		Images:       unmarshalStrings(m.Images),
		MaxOccupancy: m.MaxOccupancy,
		Size:         m.Size,
		Version:      m.Version,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func toRoomRow(r *domain.Room) roomRow {
	return roomRow{
		ID:            r.ID,
		Name:          r.Name,
		Type:          string(r.Type),
		PriceWeekly:   r.Pricing.Weekly,
		PriceMonthly:  r.Pricing.Monthly,
		PriceSemester: r.Pricing.Semester,
		PriceYearly:   r.Pricing.Yearly,
		Status:        string(r.Status),
		Description:   r.Description,
		Facilities:    marshalStrings(r.Facilities),
		Images:        marshalStrings(r.Images),
		MaxOccupancy:  r.MaxOccupancy,
		Size:          r.Size,
		Version:       r.Version,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

func (r *RoomRepository) Create(ctx context.Context, room *domain.Room) error {
	m := toRoomRow(room)
	m.Version = 1
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*room = *toDomainRoom(m)
	return nil
}

func (r *RoomRepository) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	var m roomRow
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainRoom(m), nil
}

func (r *RoomRepository) List(ctx context.Context) ([]domain.Room, error) {
	var rows []roomRow
	tx := r.db.WithContext(ctx).Order("name ASC").Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Room, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainRoom(m))
	}
	return out, nil
}

// Update writes the room through an optimistic-version check; a concurrent
// edit since the caller's read surfaces as ErrVersionConflict.
func (r *RoomRepository) Update(ctx context.Context, room *domain.Room) error {
	m := toRoomRow(room)
	tx := r.db.WithContext(ctx).Model(&roomRow{}).
		Where("id = ? AND version = ?", room.ID, room.Version).
		Updates(map[string]any{
			"name":           m.Name,
			"type":           m.Type,
			"price_weekly":   m.PriceWeekly,
			"price_monthly":  m.PriceMonthly,
			"price_semester": m.PriceSemester,
			"price_yearly":   m.PriceYearly,
			"status":         m.Status,
			"description":    m.Description,
			"facilities":     m.Facilities,
			"images":         m.Images,
			"max_occupancy":  m.MaxOccupancy,
			"size":           m.Size,
			"version":        room.Version + 1,
		})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrVersionConflict
	}
	room.Version++
	return nil
}

func (r *RoomRepository) UpdateStatus(ctx context.Context, id int64, status domain.RoomStatus) error {
	tx := r.db.WithContext(ctx).Model(&roomRow{}).Where("id = ?", id).
		Updates(map[string]any{
			"status":  string(status),
			"version": gorm.Expr("version + 1"),
		})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *RoomRepository) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&roomRow{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
