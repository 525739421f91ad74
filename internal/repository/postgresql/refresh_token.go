package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/horaria-hr/horaria-backend-go/internal/domain/auth"
	"github.com/horaria-hr/horaria-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

// RefreshTokenRepository persists refresh tokens so sessions survive restarts
// and can be revoked server-side.
type RefreshTokenRepository interface {
	Create(ctx context.Context, userID string, token string, expiresAt int64, track auth.SessionTrackingRequest) error
	GetUserID(ctx context.Context, token string) (string, error)
	Revoke(ctx context.Context, token string) error
}

type refreshTokenRepository struct {
	db *database.DB
}

func NewRefreshTokenRepository(db *database.DB) RefreshTokenRepository {
	return &refreshTokenRepository{db: db}
}

// Create implements RefreshTokenRepository.
func (r *refreshTokenRepository) Create(ctx context.Context, userID string, token string, expiresAt int64, track auth.SessionTrackingRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO refresh_tokens (token, user_id, expires_at, user_agent, ip_address)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := q.Exec(ctx, query, token, userID, time.Unix(expiresAt, 0), track.UserAgent, track.IPAddress)
	if err != nil {
		return fmt.Errorf("failed to store refresh token: %w", err)
	}

	return nil
}

// GetUserID implements RefreshTokenRepository. Revoked or expired tokens are
// treated as absent.
func (r *refreshTokenRepository) GetUserID(ctx context.Context, token string) (string, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT user_id
		FROM refresh_tokens
		WHERE token = $1 AND revoked_at IS NULL AND expires_at > NOW()
	`

	var userID string
	err := q.QueryRow(ctx, query, token).Scan(&userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", auth.ErrRefreshTokenRevoked
		}
		return "", fmt.Errorf("failed to look up refresh token: %w", err)
	}

	return userID, nil
}

// Revoke implements RefreshTokenRepository.
func (r *refreshTokenRepository) Revoke(ctx context.Context, token string) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE refresh_tokens SET revoked_at = NOW() WHERE token = $1 AND revoked_at IS NULL`

	if _, err := q.Exec(ctx, query, token); err != nil {
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}

	return nil
}
