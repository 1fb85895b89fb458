package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// UploadRecord is a stored file reference; bookings and cost records point at
// it by URL.
type UploadRecord struct {
	ID           string
	UserID       int64
	Category     string
	OriginalName string
	FilePath     string
	FileURL      string
	MimeType     string
	Size         int64
	CreatedAt    time.Time
}

type UploadRepository struct {
	db *gorm.DB
}

func NewUploadRepository(db *gorm.DB) *UploadRepository {
	return &UploadRepository{db: db}
}

type uploadRow struct {
	ID           string    `gorm:"column:id;primaryKey"`
	UserID       int64     `gorm:"column:user_id;index"`
	Category     string    `gorm:"column:category"`
	OriginalName string    `gorm:"column:original_name"`
	FilePath     string    `gorm:"column:file_path"`
	FileURL      string    `gorm:"column:file_url"`
	MimeType     string    `gorm:"column:mime_type"`
	Size         int64     `gorm:"column:size"`
	CreatedAt    time.Time `gorm:"column:created_at"`
}

func (uploadRow) TableName() string { return "uploads" }

func (r *UploadRepository) Create(ctx context.Context, u *UploadRecord) error {
	m := uploadRow{
		ID:           u.ID,
		UserID:       u.UserID,
		Category:     u.Category,
		OriginalName: u.OriginalName,
		FilePath:     u.FilePath,
		FileURL:      u.FileURL,
		MimeType:     u.MimeType,
		Size:         u.Size,
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	u.CreatedAt = m.CreatedAt
	return nil
}

