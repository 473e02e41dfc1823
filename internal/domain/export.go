package domain

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"
)

// ExportRecord tracks a generated PDF plan. ObjectPath is set when the file
// was archived to object storage, nil when archiving is disabled.
type ExportRecord struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"userId"`
	Filename   string    `json:"filename"`
	SizeBytes  int64     `json:"sizeBytes"`
	ObjectPath *string   `json:"-"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ExportRepository defines the interface for export record persistence
type ExportRepository interface {
	Create(record *ExportRecord) (*ExportRecord, error)
	ListByUserID(userID uuid.UUID) ([]*ExportRecord, error)
}

// ExportArchive stores generated export files in object storage and hands out
// short-lived download links
type ExportArchive interface {
	Upload(ctx context.Context, objectPath string, data io.Reader, contentType string, size int64) (string, error)
	GeneratePresignedURL(ctx context.Context, objectPath string, expiry time.Duration) (string, error)
	Delete(ctx context.Context, objectPath string) error
}
