package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nestworth/nestworth-backend/internal/domain"
)

// ProjectionRepository implements domain.ProjectionRepository using
// PostgreSQL. The envelope is stored whole as a JSONB payload; only the keys
// needed for lookup and retention get their own columns.
type ProjectionRepository struct {
	pool *pgxpool.Pool
}

// NewProjectionRepository creates a new ProjectionRepository
func NewProjectionRepository(pool *pgxpool.Pool) *ProjectionRepository {
	return &ProjectionRepository{pool: pool}
}

// GetByUserID retrieves the cached projection for a user
func (r *ProjectionRepository) GetByUserID(userID uuid.UUID) (*domain.Projection, error) {
	var (
		payload   []byte
		createdAt pgtype.Timestamptz
	)
	err := r.pool.QueryRow(context.Background(),
		`SELECT payload, created_at FROM projections WHERE user_id = $1`,
		uuidToPg(userID)).Scan(&payload, &createdAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProjectionNotFound
		}
		return nil, err
	}

	var projection domain.Projection
	if err := json.Unmarshal(payload, &projection); err != nil {
		return nil, fmt.Errorf("failed to decode stored projection: %w", err)
	}
	projection.CreatedAt = createdAt.Time
	return &projection, nil
}

// Save stores the projection as the user's single cached copy, replacing any
// previous one
func (r *ProjectionRepository) Save(projection *domain.Projection) (*domain.Projection, error) {
	payload, err := json.Marshal(projection)
	if err != nil {
		return nil, fmt.Errorf("failed to encode projection: %w", err)
	}

	var createdAt pgtype.Timestamptz
	err = r.pool.QueryRow(context.Background(),
		`INSERT INTO projections (id, user_id, payload)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (user_id) DO UPDATE SET
			id = EXCLUDED.id,
			payload = EXCLUDED.payload,
			created_at = now()
		 RETURNING created_at`,
		uuidToPg(projection.ID), uuidToPg(projection.UserID), payload).Scan(&createdAt)
	if err != nil {
		return nil, err
	}

	saved := *projection
	saved.CreatedAt = createdAt.Time
	return &saved, nil
}

// DeleteOlderThan removes cached projections stored before the cutoff
func (r *ProjectionRepository) DeleteOlderThan(cutoff time.Time) (int64, error) {
	tag, err := r.pool.Exec(context.Background(),
		`DELETE FROM projections WHERE created_at < $1`, cutoff)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
