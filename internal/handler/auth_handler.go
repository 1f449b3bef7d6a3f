package handler

import (
	"net/http"

	"foodzy/internal/model"
	"foodzy/internal/service"

	"github.com/rs/zerolog"
)

// AuthHandler handles OTP authentication HTTP requests.
type AuthHandler struct {
	service service.AuthService
	logger  zerolog.Logger
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(service service.AuthService, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		logger:  logger.With().Str("handler", "auth").Logger(),
	}
}

// SendOTP handles POST /api/auth/send-otp requests.
func (h *AuthHandler) SendOTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, ErrorResponse{Error: model.ErrCodeValidationFailed, Message: "method not allowed"})
		return
	}

	var req model.SendOTPRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err, h.logger)
		return
	}

	if err := h.service.SendOTP(r.Context(), req.Email); err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Message: "OTP sent successfully"})
}

// VerifyOTP handles POST /api/auth/verify-otp requests.
func (h *AuthHandler) VerifyOTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, ErrorResponse{Error: model.ErrCodeValidationFailed, Message: "method not allowed"})
		return
	}

	var req model.VerifyOTPRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err, h.logger)
		return
	}

	resp, err := h.service.VerifyOTP(r.Context(), req.Email, req.OTP)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
