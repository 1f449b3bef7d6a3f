package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"strconv"
	"time"

	"foodzy/internal/auth"
	"foodzy/internal/mail"
	"foodzy/internal/model"
	"foodzy/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// OTPTTL is how long an issued passcode stays valid.
const OTPTTL = 10 * time.Minute

// authService implements AuthService.
type authService struct {
	otpRepo  repository.OTPRepository
	userRepo repository.UserRepository
	mailer   mail.Sender
	tokens   *auth.TokenManager
	logger   zerolog.Logger
}

// NewAuthService creates a new auth service.
func NewAuthService(
	otpRepo repository.OTPRepository,
	userRepo repository.UserRepository,
	mailer mail.Sender,
	tokens *auth.TokenManager,
	logger zerolog.Logger,
) AuthService {
	return &authService{
		otpRepo:  otpRepo,
		userRepo: userRepo,
		mailer:   mailer,
		tokens:   tokens,
		logger:   logger.With().Str("service", "auth").Logger(),
	}
}

// SendOTP issues a fresh passcode for the email and delivers it.
// Replacing happens before delivery, so a failed send leaves the email
// with no valid code until the next request.
func (s *authService) SendOTP(ctx context.Context, email string) error {
	code, err := generateCode()
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to generate otp code")
		return model.NewInfrastructureError("failed to send OTP", err)
	}

	now := time.Now()
	otp := &model.OTP{
		ID:        uuid.New(),
		Email:     email,
		Code:      code,
		ExpiresAt: now.Add(OTPTTL),
		CreatedAt: now,
	}

	if err := s.otpRepo.Replace(ctx, otp); err != nil {
		s.logger.Error().Err(err).Str("email", email).Msg("failed to store otp")
		return model.NewInfrastructureError("failed to send OTP", err)
	}

	if err := s.mailer.SendOTP(ctx, email, code); err != nil {
		s.logger.Error().Err(err).Str("email", email).Msg("failed to deliver otp email")
		return model.NewInfrastructureError("failed to send OTP", err)
	}

	s.logger.Info().Str("email", email).Msg("otp issued")

	return nil
}

// VerifyOTP checks the passcode, consumes it, resolves the user and
// returns a signed session token. A consumed, expired or never-issued
// code all yield the same invalid-OTP error.
func (s *authService) VerifyOTP(ctx context.Context, email, code string) (*model.VerifyOTPResponse, error) {
	otp, err := s.otpRepo.FindValid(ctx, email, code, time.Now())
	if err != nil {
		s.logger.Error().Err(err).Str("email", email).Msg("failed to look up otp")
		return nil, model.NewInfrastructureError("failed to verify OTP", err)
	}

	if otp == nil {
		s.logger.Debug().Str("email", email).Msg("otp verification rejected")
		return nil, model.ErrInvalidOTP
	}

	// Single use: all codes for the email go away on success.
	if err := s.otpRepo.DeleteForEmail(ctx, email); err != nil {
		s.logger.Error().Err(err).Str("email", email).Msg("failed to consume otp")
		return nil, model.NewInfrastructureError("failed to verify OTP", err)
	}

	user, err := s.userRepo.CreateOrGet(ctx, email)
	if err != nil {
		s.logger.Error().Err(err).Str("email", email).Msg("failed to resolve user")
		return nil, model.NewInfrastructureError("failed to verify OTP", err)
	}

	token, err := s.tokens.Mint(user)
	if err != nil {
		s.logger.Error().Err(err).Str("email", email).Msg("failed to mint session token")
		return nil, model.NewInfrastructureError("failed to verify OTP", err)
	}

	s.logger.Info().Str("email", email).Str("user_id", user.ID.String()).Msg("otp verified")

	return &model.VerifyOTPResponse{
		Message: "OTP verified successfully",
		Token:   token,
		User:    user.Projection(),
	}, nil
}

// generateCode produces a 6-digit numeric passcode.
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", fmt.Errorf("failed to read random source: %w", err)
	}
	return strconv.FormatInt(n.Int64()+100000, 10), nil
}
