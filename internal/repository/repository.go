package repository

import (
	"context"
	"time"

	"foodzy/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ProductRepository defines the interface for catalogue data access.
type ProductRepository interface {
	// List retrieves all products, newest first.
	List(ctx context.Context) ([]model.Product, error)

	// GetByID retrieves a single product by its ID. Returns nil when no
	// product matches.
	GetByID(ctx context.Context, id string) (*model.Product, error)

	// ListByCategory retrieves products with an exact category match,
	// newest first.
	ListByCategory(ctx context.Context, category string) ([]model.Product, error)
}

// OrderRepository defines the interface for order data access.
type OrderRepository interface {
	// BeginTx starts a new database transaction.
	BeginTx(ctx context.Context) (pgx.Tx, error)

	// CreateOrder inserts a new order within the provided transaction.
	CreateOrder(ctx context.Context, tx pgx.Tx, order *model.Order) error

	// CreateOrderItems inserts the item snapshots within the provided
	// transaction.
	CreateOrderItems(ctx context.Context, tx pgx.Tx, items []model.OrderItem) error

	// GetByID retrieves an order by its ID along with its items.
	// Returns a nil order when no row matches.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Order, []model.OrderItem, error)
}

// UserRepository defines the interface for user data access.
type UserRepository interface {
	// GetByID retrieves a user by id. Returns nil when no user matches.
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)

	// CreateOrGet inserts a user for the email or returns the existing
	// row. The unique constraint on email makes this safe under
	// concurrent first-time verification.
	CreateOrGet(ctx context.Context, email string) (*model.User, error)
}

// OTPRepository defines the interface for one-time passcode storage.
type OTPRepository interface {
	// Replace deletes any passcodes for the email and stores the new one.
	Replace(ctx context.Context, otp *model.OTP) error

	// FindValid retrieves the newest unexpired passcode matching both
	// email and code. Returns nil when none matches.
	FindValid(ctx context.Context, email, code string, now time.Time) (*model.OTP, error)

	// DeleteForEmail removes all passcodes for the email.
	DeleteForEmail(ctx context.Context, email string) error
}
