package model

import (
	"time"

	"github.com/google/uuid"
)

// OTP represents a one-time passcode issued for an email address.
// At most one row per email is expected to be live: issuing a new code
// replaces any prior rows, and a successful verification deletes them.
type OTP struct {
	ID        uuid.UUID `db:"id"`
	Email     string    `db:"email"`
	Code      string    `db:"otp"`
	ExpiresAt time.Time `db:"expires_at"`
	CreatedAt time.Time `db:"created_at"`
}

// SendOTPRequest is the payload for POST /api/auth/send-otp.
type SendOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// VerifyOTPRequest is the payload for POST /api/auth/verify-otp.
type VerifyOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
	OTP   string `json:"otp" validate:"required,numeric,min=4,max=6"`
}

// VerifyOTPResponse is the success payload for OTP verification.
type VerifyOTPResponse struct {
	Message string         `json:"message"`
	Token   string         `json:"token"`
	User    UserProjection `json:"user"`
}
