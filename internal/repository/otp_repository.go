package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"foodzy/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// otpRepository implements the OTPRepository interface using PostgreSQL.
type otpRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewOTPRepository creates a new PostgreSQL-backed OTP repository.
func NewOTPRepository(pool *pgxpool.Pool, logger zerolog.Logger) OTPRepository {
	return &otpRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "otp").Logger(),
	}
}

// Replace deletes any passcodes for the email and stores the new one.
// Prior codes become invalid the moment a new one is requested.
func (r *otpRepository) Replace(ctx context.Context, otp *model.OTP) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to begin transaction")
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	if _, err := tx.Exec(ctx, `DELETE FROM otps WHERE email = $1`, otp.Email); err != nil {
		r.logger.Error().Err(err).Str("email", otp.Email).Msg("failed to delete prior otps")
		return fmt.Errorf("failed to delete prior otps: %w", err)
	}

	query := `
		INSERT INTO otps (id, email, otp, expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	if _, err := tx.Exec(ctx, query, otp.ID, otp.Email, otp.Code, otp.ExpiresAt, otp.CreatedAt); err != nil {
		r.logger.Error().Err(err).Str("email", otp.Email).Msg("failed to insert otp")
		return fmt.Errorf("failed to insert otp: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		r.logger.Error().Err(err).Str("email", otp.Email).Msg("failed to commit otp replacement")
		return fmt.Errorf("failed to commit otp replacement: %w", err)
	}

	return nil
}

// FindValid retrieves the newest unexpired passcode matching both email
// and code.
func (r *otpRepository) FindValid(ctx context.Context, email, code string, now time.Time) (*model.OTP, error) {
	query := `
		SELECT id, email, otp, expires_at, created_at
		FROM otps
		WHERE email = $1 AND otp = $2 AND expires_at > $3
		ORDER BY created_at DESC
		LIMIT 1
	`

	var o model.OTP
	err := r.pool.QueryRow(ctx, query, email, code, now).Scan(
		&o.ID, &o.Email, &o.Code, &o.ExpiresAt, &o.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Str("email", email).Msg("no valid otp found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("email", email).Msg("failed to query otp")
		return nil, fmt.Errorf("failed to query otp: %w", err)
	}

	return &o, nil
}

// DeleteForEmail removes all passcodes for the email.
func (r *otpRepository) DeleteForEmail(ctx context.Context, email string) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM otps WHERE email = $1`, email); err != nil {
		r.logger.Error().Err(err).Str("email", email).Msg("failed to delete otps")
		return fmt.Errorf("failed to delete otps: %w", err)
	}
	return nil
}
