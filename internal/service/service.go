package service

import (
	"context"

	"foodzy/internal/model"

	"github.com/google/uuid"
)

// ProductService defines read operations over the catalogue.
type ProductService interface {
	// List retrieves all products, newest first.
	List(ctx context.Context) ([]model.Product, error)

	// GetByID retrieves a single product by ID.
	GetByID(ctx context.Context, id string) (*model.Product, error)

	// ListByCategory retrieves products in a category, newest first.
	ListByCategory(ctx context.Context, category string) ([]model.Product, error)
}

// OrderService defines operations for order placement and retrieval.
type OrderService interface {
	// Create computes totals, persists the order with its item
	// snapshots in one transaction and returns the re-read projection.
	// A non-nil userID associates the order with that user.
	Create(ctx context.Context, req *model.OrderRequest, userID *uuid.UUID) (*model.OrderResponse, error)

	// GetByID retrieves an order projection by its ID.
	GetByID(ctx context.Context, id uuid.UUID) (*model.OrderResponse, error)
}

// AuthService defines the email OTP authentication flow.
type AuthService interface {
	// SendOTP issues a fresh passcode for the email and delivers it.
	SendOTP(ctx context.Context, email string) error

	// VerifyOTP checks the passcode, consumes it, resolves the user and
	// returns a signed session token.
	VerifyOTP(ctx context.Context, email, code string) (*model.VerifyOTPResponse, error)
}
