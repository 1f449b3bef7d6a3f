package service

import (
	"context"
	"time"

	"foodzy/internal/mail"
	"foodzy/internal/model"
	"foodzy/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// orderService implements OrderService.
type orderService struct {
	orderRepo repository.OrderRepository
	userRepo  repository.UserRepository
	mailer    mail.Sender
	logger    zerolog.Logger
}

// NewOrderService creates a new order service.
func NewOrderService(
	orderRepo repository.OrderRepository,
	userRepo repository.UserRepository,
	mailer mail.Sender,
	logger zerolog.Logger,
) OrderService {
	return &orderService{
		orderRepo: orderRepo,
		userRepo:  userRepo,
		mailer:    mailer,
		logger:    logger.With().Str("service", "order").Logger(),
	}
}

// Create computes totals, persists the order and item snapshots in one
// transaction, re-reads the committed rows and attempts a best-effort
// confirmation email. Item prices are taken as submitted; they are
// snapshotted, not re-priced from the catalogue.
//
// There is no idempotency key: a client retry after a timeout places a
// second order. That matches the storefront's historical behaviour.
func (s *orderService) Create(ctx context.Context, req *model.OrderRequest, userID *uuid.UUID) (*model.OrderResponse, error) {
	if err := validateOrderRequest(req); err != nil {
		return nil, err
	}

	subtotal := 0.0
	for _, item := range req.Items {
		subtotal += item.Price * float64(item.Quantity)
	}

	deliveryCharges := 0.0
	if req.DeliveryMethod == model.DeliveryFlat {
		deliveryCharges = model.FlatDeliveryCharge
	}
	total := subtotal + deliveryCharges

	tx, err := s.orderRepo.BeginTx(ctx)
	if err != nil {
		return nil, model.NewInfrastructureError("failed to create order", err)
	}

	// Roll the whole write back on any failure so an order never
	// commits with a partial item list.
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				s.logger.Error().Err(rbErr).Msg("failed to rollback transaction")
			}
		}
	}()

	now := time.Now()
	order := &model.Order{
		ID:              uuid.New(),
		UserID:          userID,
		Subtotal:        subtotal,
		DeliveryCharges: deliveryCharges,
		Total:           total,
		DeliveryMethod:  req.DeliveryMethod,
		PaymentMethod:   req.PaymentMethod,
		Status:          "confirmed",
		FirstName:       req.BillingAddress.FirstName,
		LastName:        req.BillingAddress.LastName,
		Address:         req.BillingAddress.Address,
		City:            req.BillingAddress.City,
		PostCode:        req.BillingAddress.PostCode,
		Country:         req.BillingAddress.Country,
		RegionState:     req.BillingAddress.RegionState,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err = s.orderRepo.CreateOrder(ctx, tx, order); err != nil {
		return nil, model.NewInfrastructureError("failed to create order", err)
	}

	items := make([]model.OrderItem, len(req.Items))
	for i, item := range req.Items {
		items[i] = model.OrderItem{
			ID:             uuid.New(),
			OrderID:        order.ID,
			ProductID:      item.ProductID,
			ProductName:    item.Name,
			ProductImage:   item.Image,
			Price:          item.Price,
			Quantity:       item.Quantity,
			SelectedWeight: item.SelectedWeight,
		}
	}

	if err = s.orderRepo.CreateOrderItems(ctx, tx, items); err != nil {
		return nil, model.NewInfrastructureError("failed to create order items", err)
	}

	if err = tx.Commit(ctx); err != nil {
		s.logger.Error().Err(err).Str("order_id", order.ID.String()).Msg("failed to commit transaction")
		return nil, model.NewInfrastructureError("failed to create order", err)
	}

	// The response is built from a re-read of the committed rows, not
	// from the request, so it reflects exactly what was persisted.
	response, err := s.GetByID(ctx, order.ID)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("order_id", order.ID.String()).
		Int("item_count", len(items)).
		Float64("total", total).
		Msg("order created")

	s.sendConfirmation(ctx, req, userID, response)

	return response, nil
}

// GetByID retrieves an order projection by its ID.
func (s *orderService) GetByID(ctx context.Context, id uuid.UUID) (*model.OrderResponse, error) {
	order, items, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("order_id", id.String()).Msg("failed to get order")
		return nil, model.NewInfrastructureError("failed to fetch order", err)
	}

	if order == nil {
		return nil, model.ErrOrderNotFound
	}

	return toOrderResponse(order, items), nil
}

// sendConfirmation attempts the confirmation email. The order is
// already committed, so delivery failure is logged and swallowed.
func (s *orderService) sendConfirmation(ctx context.Context, req *model.OrderRequest, userID *uuid.UUID, order *model.OrderResponse) {
	recipient := req.BillingAddress.Email
	if userID != nil {
		user, err := s.userRepo.GetByID(ctx, *userID)
		if err != nil {
			s.logger.Warn().Err(err).Str("order_id", order.ID.String()).Msg("order created, but failed to resolve user email")
			return
		}
		if user != nil {
			recipient = user.Email
		}
	}

	if recipient == "" {
		return
	}

	if err := s.mailer.SendOrderConfirmation(ctx, recipient, order); err != nil {
		s.logger.Warn().
			Err(err).
			Str("order_id", order.ID.String()).
			Msg("order created, but failed to send confirmation email")
	}
}

func validateOrderRequest(req *model.OrderRequest) error {
	if req == nil || len(req.Items) == 0 {
		return model.ErrEmptyOrder
	}

	for _, item := range req.Items {
		if item.ProductID == "" || item.Name == "" {
			return model.NewValidationError(model.ErrCodeValidationFailed, "item product id and name are required")
		}
		if item.Quantity < 1 {
			return model.ErrInvalidQuantity
		}
		if item.Price < 0 {
			return model.NewValidationError(model.ErrCodeValidationFailed, "item price cannot be negative")
		}
	}

	if req.DeliveryMethod != model.DeliveryFree && req.DeliveryMethod != model.DeliveryFlat {
		return model.NewValidationError(model.ErrCodeValidationFailed, "delivery method must be free or flat")
	}

	if req.PaymentMethod == "" {
		return model.NewValidationError(model.ErrCodeValidationFailed, "payment method is required")
	}

	addr := req.BillingAddress
	if addr.FirstName == "" || addr.LastName == "" || addr.City == "" || addr.Country == "" {
		return model.NewValidationError(model.ErrCodeValidationFailed, "billing first name, last name, city and country are required")
	}

	return nil
}

func toOrderResponse(order *model.Order, items []model.OrderItem) *model.OrderResponse {
	if items == nil {
		items = []model.OrderItem{}
	}
	return &model.OrderResponse{
		ID:              order.ID,
		UserID:          order.UserID,
		Items:           items,
		Subtotal:        order.Subtotal,
		DeliveryCharges: order.DeliveryCharges,
		Total:           order.Total,
		DeliveryMethod:  order.DeliveryMethod,
		PaymentMethod:   order.PaymentMethod,
		BillingAddress: model.BillingAddress{
			FirstName:   order.FirstName,
			LastName:    order.LastName,
			Address:     order.Address,
			City:        order.City,
			PostCode:    order.PostCode,
			Country:     order.Country,
			RegionState: order.RegionState,
		},
		Status:    order.Status,
		CreatedAt: order.CreatedAt,
	}
}
