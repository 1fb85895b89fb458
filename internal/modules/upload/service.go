package upload

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"kosku/internal/repository"

	"github.com/google/uuid"
)

const (
	CategoryDocument  = "document"
	CategoryRoomImage = "room-image"

	maxDocumentSize  = 10 * 1024 * 1024
	maxRoomImageSize = 5 * 1024 * 1024
)

// category rules: what each upload slot accepts and how big it may be. The
// MIME type is always sniffed from the content, never taken from the client.
var categories = map[string]struct {
	maxSize int64
	mimes   map[string]bool
}{
	CategoryDocument: {
		maxSize: maxDocumentSize,
		mimes: map[string]bool{
			"application/pdf": true,
			"image/jpeg":      true,
			"image/png":       true,
		},
	},
	CategoryRoomImage: {
		maxSize: maxRoomImageSize,
		mimes: map[string]bool{
			"image/jpeg": true,
			"image/png":  true,
			"image/webp": true,
		},
	},
}

type Result struct {
	ID       string `json:"id"`
	URL      string `json:"url"`
	FileName string `json:"fileName"`
	Size     int64  `json:"size"`
	Type     string `json:"type"`
}

type Service struct {
	repo       *repository.UploadRepository
	baseDir    string
	staticBase string
}

func NewService(repo *repository.UploadRepository, baseDir, staticBase string) *Service {
	if baseDir == "" {
		baseDir = "./uploads"
	}
	if staticBase == "" {
		staticBase = "/static/uploads"
	}
	return &Service{repo: repo, baseDir: baseDir, staticBase: staticBase}
}

// Save stores a multipart file on disk under a dated directory, records it in
// the database, and returns the public URL.
func (s *Service) Save(ctx context.Context, userID int64, category string, fileHeader *multipart.FileHeader) (*Result, error) {
	rules, ok := categories[category]
	if !ok {
		return nil, ErrBadCategory
	}

	if fileHeader.Size == 0 {
		return nil, ErrEmptyFile
	}
	if fileHeader.Size > rules.maxSize {
		return nil, ErrFileTooLarge
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	// Sniff the MIME type from the first 512 bytes.
	buf := make([]byte, 512)
	n, _ := file.Read(buf)
	mimeType := strings.Split(http.DetectContentType(buf[:n]), ";")[0]
	if !rules.mimes[mimeType] {
		return nil, ErrInvalidMimeType
	}

	if seeker, ok := file.(io.Seeker); ok {
		_, _ = seeker.Seek(0, io.SeekStart)
	}

	now := time.Now()
	relDir := fmt.Sprintf("%d/%02d/%02d", now.Year(), now.Month(), now.Day())
	absDir := filepath.Join(s.baseDir, relDir)
	if err := os.MkdirAll(absDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}

	id := uuid.New().String()
	ext := filepath.Ext(fileHeader.Filename)
	if ext == "" {
		ext = mimeToExt(mimeType)
	}
	filename := fmt.Sprintf("%s_%s%s", id, sanitizeName(fileHeader.Filename), ext)

	absPath := filepath.Join(absDir, filename)
	dst, err := os.Create(absPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		_ = os.Remove(absPath)
		return nil, fmt.Errorf("failed to write file: %w", err)
	}

	relPath := filepath.Join(relDir, filename)
	fileURL := s.staticBase + "/" + strings.ReplaceAll(relPath, "\\", "/")

	record := &repository.UploadRecord{
		ID:           id,
		UserID:       userID,
		Category:     category,
		OriginalName: fileHeader.Filename,
		FilePath:     relPath,
		FileURL:      fileURL,
		MimeType:     mimeType,
		Size:         fileHeader.Size,
	}
	if err := s.repo.Create(ctx, record); err != nil {
		_ = os.Remove(absPath)
		return nil, fmt.Errorf("failed to record upload: %w", err)
	}

	return &Result{
		ID:       id,
		URL:      fileURL,
		FileName: fileHeader.Filename,
		Size:     fileHeader.Size,
		Type:     mimeType,
	}, nil
}

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9._-]`)

// sanitizeName strips the extension and anything outside [a-zA-Z0-9._-],
// keeping at most 40 characters of the original name for readability.
func sanitizeName(name string) string {
	base := strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	base = unsafeChars.ReplaceAllString(base, "_")
	if len(base) > 40 {
		base = base[:40]
	}
	if base == "" {
		base = "file"
	}
	return base
}

func mimeToExt(mimeType string) string {
	switch mimeType {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/webp":
		return ".webp"
	case "application/pdf":
		return ".pdf"
	}
	return ""
}
