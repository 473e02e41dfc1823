package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nestworth/nestworth-backend/internal/domain"
)

// ResetTokenRepository implements domain.PasswordResetRepository using PostgreSQL
type ResetTokenRepository struct {
	pool *pgxpool.Pool
}

// NewResetTokenRepository creates a new ResetTokenRepository
func NewResetTokenRepository(pool *pgxpool.Pool) *ResetTokenRepository {
	return &ResetTokenRepository{pool: pool}
}

// Create stores a reset token
func (r *ResetTokenRepository) Create(token *domain.PasswordResetToken) error {
	_, err := r.pool.Exec(context.Background(),
		`INSERT INTO password_reset_tokens (token, user_id, expires_at)
		 VALUES ($1, $2, $3)`,
		token.Token, uuidToPg(token.UserID), token.ExpiresAt)
	return err
}

// GetByToken retrieves a reset token
func (r *ResetTokenRepository) GetByToken(tokenValue string) (*domain.PasswordResetToken, error) {
	var (
		userID    pgtype.UUID
		expiresAt pgtype.Timestamptz
		usedAt    pgtype.Timestamptz
		createdAt pgtype.Timestamptz
		token     domain.PasswordResetToken
	)
	err := r.pool.QueryRow(context.Background(),
		`SELECT token, user_id, expires_at, used_at, created_at
		 FROM password_reset_tokens WHERE token = $1`,
		tokenValue).Scan(&token.Token, &userID, &expiresAt, &usedAt, &createdAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTokenNotFound
		}
		return nil, err
	}

	token.UserID = pgToUUID(userID)
	token.ExpiresAt = expiresAt.Time
	if usedAt.Valid {
		token.UsedAt = &usedAt.Time
	}
	token.CreatedAt = createdAt.Time
	return &token, nil
}

// MarkUsed marks a reset token as consumed
func (r *ResetTokenRepository) MarkUsed(tokenValue string) error {
	tag, err := r.pool.Exec(context.Background(),
		`UPDATE password_reset_tokens SET used_at = now() WHERE token = $1`,
		tokenValue)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTokenNotFound
	}
	return nil
}

// DeleteExpired removes tokens that expired before now
func (r *ResetTokenRepository) DeleteExpired(now time.Time) (int64, error) {
	tag, err := r.pool.Exec(context.Background(),
		`DELETE FROM password_reset_tokens WHERE expires_at < $1`, now)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
