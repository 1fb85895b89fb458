package repository

import (
	"context"
	"time"

	"kosku/internal/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingRow struct {
	ID     int64 `gorm:"column:id;primaryKey"`
	UserID int64 `gorm:"column:user_id;index"`

	RoomID          int64  `gorm:"column:room_id"`
	RoomNumber      string `gorm:"column:room_number"`
	RoomType        string `gorm:"column:room_type"`
	RoomSize        string `gorm:"column:room_size"`
	RoomDescription string `gorm:"column:room_description;type:text"`
	RoomFacilities  string `gorm:"column:room_facilities;type:text"`
	RoomImages      string `gorm:"column:room_images;type:text"`

	RentalStatus string    `gorm:"column:rental_status;index"`
	StartDate    time.Time `gorm:"column:start_date"`
	EndDate      time.Time `gorm:"column:end_date;index"`
	DurationType string    `gorm:"column:duration_type"`

	ContactName     string `gorm:"column:contact_name"`
	ContactEmail    string `gorm:"column:contact_email"`
	ContactPhone    string `gorm:"column:contact_phone"`
	ContactWhatsApp string `gorm:"column:contact_whatsapp"`

	Amount     decimal.NullDecimal `gorm:"column:amount;type:decimal(18,2)"`
	PaidAmount decimal.NullDecimal `gorm:"column:paid_amount;type:decimal(18,2)"`

	Notes     string    `gorm:"column:notes;type:text"`
	Version   int64     `gorm:"column:version"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (bookingRow) TableName() string { return "bookings" }

type bookingDocumentRow struct {
	ID        string    `gorm:"column:id;primaryKey"`
	BookingID int64     `gorm:"column:booking_id;index"`
	Type      string    `gorm:"column:type"`
	FileName  string    `gorm:"column:file_name"`
	FileURL   string    `gorm:"column:file_url"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (bookingDocumentRow) TableName() string { return "booking_documents" }

func toDomainBooking(m bookingRow, docs []bookingDocumentRow) *domain.Booking {
	b := &domain.Booking{
		ID:     m.ID,
		UserID: m.UserID,
		Room: domain.RoomSnapshot{
			RoomID:      m.RoomID,
			RoomNumber:  m.RoomNumber,
			Type:        domain.RoomType(m.RoomType),
			Size:        m.RoomSize,
			Description: m.RoomDescription,
			Facilities:  unmarshalStrings(m.RoomFacilities),
			Images:      unmarshalStrings(m.RoomImages),
		},
		RentalStatus: domain.RentalStatus(m.RentalStatus),
		RentalPeriod: domain.RentalPeriod{
			StartDate:    m.StartDate,
			EndDate:      m.EndDate,
			DurationType: domain.DurationType(m.DurationType),
		},
		ContactInfo: domain.ContactInfo{
			Name:     m.ContactName,
			Email:    m.ContactEmail,
			Phone:    m.ContactPhone,
			WhatsApp: m.ContactWhatsApp,
		},
		Notes:     m.Notes,
		Version:   m.Version,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}

	if m.Amount.Valid {
		pricing := &domain.BookingPricing{Amount: m.Amount.Decimal}
		if m.PaidAmount.Valid {
			pricing.PaidAmount = m.PaidAmount.Decimal
		}
		b.Pricing = pricing
	}

	for _, d := range docs {
		b.Documents = append(b.Documents, domain.BookingDocument{
			ID:        d.ID,
			BookingID: d.BookingID,
			Type:      domain.DocumentType(d.Type),
			FileName:  d.FileName,
			FileURL:   d.FileURL,
			CreatedAt: d.CreatedAt,
		})
	}

	return b
}

func toBookingRow(b *domain.Booking) bookingRow {
	m := bookingRow{
		ID:              b.ID,
		UserID:          b.UserID,
		RoomID:          b.Room.RoomID,
		RoomNumber:      b.Room.RoomNumber,
		RoomType:        string(b.Room.Type),
		RoomSize:        b.Room.Size,
		RoomDescription: b.Room.Description,
		RoomFacilities:  marshalStrings(b.Room.Facilities),
		RoomImages:      marshalStrings(b.Room.Images),
		RentalStatus:    string(b.RentalStatus),
		StartDate:       b.RentalPeriod.StartDate,
		EndDate:         b.RentalPeriod.EndDate,
		DurationType:    string(b.RentalPeriod.DurationType),
		ContactName:     b.ContactInfo.Name,
		ContactEmail:    b.ContactInfo.Email,
		ContactPhone:    b.ContactInfo.Phone,
		ContactWhatsApp: b.ContactInfo.WhatsApp,
		Notes:           b.Notes,
		Version:         b.Version,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}

	if b.Pricing != nil {
		m.Amount = decimal.NewNullDecimal(b.Pricing.Amount)
		m.PaidAmount = decimal.NewNullDecimal(b.Pricing.PaidAmount)
	}

	return m
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	m := toBookingRow(b)
	m.Version = 1
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*b = *toDomainBooking(m, nil)
	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var m bookingRow
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}

	docs, err := r.documentsFor(ctx, id)
	if err != nil {
		return nil, err
	}
	return toDomainBooking(m, docs), nil
}

func (r *BookingRepository) documentsFor(ctx context.Context, bookingID int64) ([]bookingDocumentRow, error) {
	var docs []bookingDocumentRow
	tx := r.db.WithContext(ctx).
		Where("booking_id = ?", bookingID).
		Order("created_at ASC").
		Find(&docs)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return docs, nil
}

func (r *BookingRepository) List(ctx context.Context) ([]domain.Booking, error) {
	var rows []bookingRow
	tx := r.db.WithContext(ctx).Order("created_at DESC").Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return r.withDocuments(ctx, rows)
}

func (r *BookingRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Booking, error) {
	var rows []bookingRow
	tx := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return r.withDocuments(ctx, rows)
}

func (r *BookingRepository) ListByStatus(ctx context.Context, status domain.RentalStatus) ([]domain.Booking, error) {
	var rows []bookingRow
	tx := r.db.WithContext(ctx).
		Where("rental_status = ?", string(status)).
		Order("end_date ASC").
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return r.withDocuments(ctx, rows)
}

func (r *BookingRepository) withDocuments(ctx context.Context, rows []bookingRow) ([]domain.Booking, error) {
	out := make([]domain.Booking, 0, len(rows))
	for _, m := range rows {
		docs, err := r.documentsFor(ctx, m.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, *toDomainBooking(m, docs))
	}
	return out, nil
}

// HasActiveForRoom reports whether another non-cancelled booking still holds
// the room.
func (r *BookingRepository) HasActiveForRoom(ctx context.Context, roomID, excludeBookingID int64) (bool, error) {
	var count int64
	tx := r.db.WithContext(ctx).Model(&bookingRow{}).
		Where("room_id = ? AND id <> ? AND rental_status = ?", roomID, excludeBookingID, string(domain.BookingApproved)).
		Count(&count)
	if tx.Error != nil {
		return false, tx.Error
	}
	return count > 0, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id int64, version int64, status domain.RentalStatus) error {
	tx := r.db.WithContext(ctx).Model(&bookingRow{}).
		Where("id = ? AND version = ?", id, version).
		Updates(map[string]any{
			"rental_status": string(status),
			"version":       version + 1,
		})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrVersionConflict
	}
	return nil
}

func (r *BookingRepository) UpdatePricing(ctx context.Context, id int64, version int64, pricing domain.BookingPricing) error {
	tx := r.db.WithContext(ctx).Model(&bookingRow{}).
		Where("id = ? AND version = ?", id, version).
		Updates(map[string]any{
			"amount":      decimal.NewNullDecimal(pricing.Amount),
			"paid_amount": decimal.NewNullDecimal(pricing.PaidAmount),
			"version":     version + 1,
		})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrVersionConflict
	}
	return nil
}

func (r *BookingRepository) AddDocument(ctx context.Context, doc *domain.BookingDocument) error {
	if doc.ID == "" {
		doc.ID = uuid.NewString()
	}
	m := bookingDocumentRow{
		ID:        doc.ID,
		BookingID: doc.BookingID,
		Type:      string(doc.Type),
		FileName:  doc.FileName,
		FileURL:   doc.FileURL,
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	doc.CreatedAt = m.CreatedAt
	return nil
}

func (r *BookingRepository) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&bookingRow{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return r.db.WithContext(ctx).Where("booking_id = ?", id).Delete(&bookingDocumentRow{}).Error
}
