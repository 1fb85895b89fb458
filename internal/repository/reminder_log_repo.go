package repository

import (
	"context"
	"time"

	"kosku/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReminderLogRepository struct {
	db *gorm.DB
}

func NewReminderLogRepository(db *gorm.DB) *ReminderLogRepository {
	return &ReminderLogRepository{db: db}
}

type reminderLogRow struct {
	ID        string    `gorm:"column:id;primaryKey"`
	BookingID int64     `gorm:"column:booking_id;uniqueIndex:idx_booking_lead"`
	LeadDays  int       `gorm:"column:lead_days;uniqueIndex:idx_booking_lead"`
	SentAt    time.Time `gorm:"column:sent_at"`
}

func (reminderLogRow) TableName() string { return "reminder_logs" }

func (r *ReminderLogRepository) Exists(ctx context.Context, bookingID int64, leadDays int) (bool, error) {
	var count int64
	tx := r.db.WithContext(ctx).Model(&reminderLogRow{}).
		Where("booking_id = ? AND lead_days = ?", bookingID, leadDays).
		Count(&count)
	if tx.Error != nil {
		return false, tx.Error
	}
	return count > 0, nil
}

func (r *ReminderLogRepository) Create(ctx context.Context, l *domain.ReminderLog) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	if l.SentAt.IsZero() {
		l.SentAt = time.Now()
	}
	m := reminderLogRow{
		ID:        l.ID,
		BookingID: l.BookingID,
		LeadDays:  l.LeadDays,
		SentAt:    l.SentAt,
	}
	return r.db.WithContext(ctx).Create(&m).Error
}
