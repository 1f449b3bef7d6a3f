package model

import (
	"time"

	"github.com/google/uuid"
)

// Delivery methods accepted on order creation.
const (
	DeliveryFree = "free"
	DeliveryFlat = "flat"
)

// FlatDeliveryCharge is the fixed surcharge for flat-rate delivery.
const FlatDeliveryCharge = 5.0

// Order represents a customer order. The user association is optional;
// anonymous checkouts leave UserID nil.
type Order struct {
	ID              uuid.UUID  `db:"id"`
	UserID          *uuid.UUID `db:"user_id"`
	Subtotal        float64    `db:"subtotal"`
	DeliveryCharges float64    `db:"delivery_charges"`
	Total           float64    `db:"total"`
	DeliveryMethod  string     `db:"delivery_method"`
	PaymentMethod   string     `db:"payment_method"`
	Status          string     `db:"status"`
	FirstName       string     `db:"first_name"`
	LastName        string     `db:"last_name"`
	Address         *string    `db:"address"`
	City            string     `db:"city"`
	PostCode        *string    `db:"post_code"`
	Country         string     `db:"country"`
	RegionState     *string    `db:"region_state"`
	CreatedAt       time.Time  `db:"created_at"`
	UpdatedAt       time.Time  `db:"updated_at"`
}

// OrderItem is a line item snapshot. Product name, image and unit price
// are copied at purchase time so later catalogue edits never alter
// historical orders.
type OrderItem struct {
	ID             uuid.UUID `json:"id" db:"id"`
	OrderID        uuid.UUID `json:"-" db:"order_id"`
	ProductID      string    `json:"productId" db:"product_id"`
	ProductName    string    `json:"name" db:"product_name"`
	ProductImage   *string   `json:"image,omitempty" db:"product_image"`
	Price          float64   `json:"price" db:"price"`
	Quantity       int       `json:"quantity" db:"quantity"`
	SelectedWeight *string   `json:"selectedWeight,omitempty" db:"selected_weight"`
}

// BillingAddress carries checkout billing details. First name, last
// name, city and country are required; the email, when present, is used
// only for the confirmation email on anonymous orders.
type BillingAddress struct {
	FirstName   string  `json:"firstName" validate:"required"`
	LastName    string  `json:"lastName" validate:"required"`
	Email       string  `json:"email,omitempty" validate:"omitempty,email"`
	Address     *string `json:"address,omitempty"`
	City        string  `json:"city" validate:"required"`
	PostCode    *string `json:"postCode,omitempty"`
	Country     string  `json:"country" validate:"required"`
	RegionState *string `json:"regionState,omitempty"`
}

// OrderRequest is the payload for POST /api/orders. Item prices are
// taken as submitted and snapshotted; they are not re-priced from the
// catalogue.
type OrderRequest struct {
	Items          []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
	DeliveryMethod string             `json:"deliveryMethod" validate:"required,oneof=free flat"`
	PaymentMethod  string             `json:"paymentMethod" validate:"required"`
	BillingAddress BillingAddress     `json:"billingAddress"`
}

// OrderItemRequest is a single cart line in an order request.
type OrderItemRequest struct {
	ProductID      string  `json:"id" validate:"required"`
	Name           string  `json:"name" validate:"required"`
	Image          *string `json:"image,omitempty"`
	Price          float64 `json:"price" validate:"gte=0"`
	Quantity       int     `json:"quantity" validate:"gte=1"`
	SelectedWeight *string `json:"selectedWeight,omitempty"`
}

// OrderResponse is the normalized order projection returned to clients.
// It is always built from a re-read of the persisted rows, so it
// reflects exactly what was stored.
type OrderResponse struct {
	ID              uuid.UUID      `json:"id"`
	UserID          *uuid.UUID     `json:"userId"`
	Items           []OrderItem    `json:"items"`
	Subtotal        float64        `json:"subtotal"`
	DeliveryCharges float64        `json:"deliveryCharges"`
	Total           float64        `json:"total"`
	DeliveryMethod  string         `json:"deliveryMethod"`
	PaymentMethod   string         `json:"paymentMethod"`
	BillingAddress  BillingAddress `json:"billingAddress"`
	Status          string         `json:"status"`
	CreatedAt       time.Time      `json:"createdAt"`
}
