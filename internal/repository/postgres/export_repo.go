package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nestworth/nestworth-backend/internal/domain"
)

// ExportRepository implements domain.ExportRepository using PostgreSQL
type ExportRepository struct {
	pool *pgxpool.Pool
}

// NewExportRepository creates a new ExportRepository
func NewExportRepository(pool *pgxpool.Pool) *ExportRepository {
	return &ExportRepository{pool: pool}
}

const exportColumns = `id, user_id, filename, size_bytes, object_path, created_at`

// Create records a generated export
func (r *ExportRepository) Create(record *domain.ExportRecord) (*domain.ExportRecord, error) {
	row := r.pool.QueryRow(context.Background(),
		`INSERT INTO exports (user_id, filename, size_bytes, object_path)
		 VALUES ($1, $2, $3, $4)
		 RETURNING `+exportColumns,
		uuidToPg(record.UserID), record.Filename, record.SizeBytes, stringPtrToPgText(record.ObjectPath))
	return scanExport(row)
}

// ListByUserID returns a user's export records, newest first
func (r *ExportRepository) ListByUserID(userID uuid.UUID) ([]*domain.ExportRecord, error) {
	rows, err := r.pool.Query(context.Background(),
		`SELECT `+exportColumns+` FROM exports WHERE user_id = $1 ORDER BY created_at DESC`,
		uuidToPg(userID))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]*domain.ExportRecord, 0)
	for rows.Next() {
		record, err := scanExport(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

func scanExport(row pgx.Row) (*domain.ExportRecord, error) {
	var (
		id         pgtype.UUID
		userID     pgtype.UUID
		objectPath pgtype.Text
		createdAt  pgtype.Timestamptz
		record     domain.ExportRecord
	)
	if err := row.Scan(&id, &userID, &record.Filename, &record.SizeBytes, &objectPath, &createdAt); err != nil {
		return nil, err
	}
	record.ID = pgToUUID(id)
	record.UserID = pgToUUID(userID)
	record.ObjectPath = pgTextToStringPtr(objectPath)
	record.CreatedAt = createdAt.Time
	return &record, nil
}
