package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"foodzy/internal/auth"
	"foodzy/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const orderBody = `{
	"items": [
		{"id": "1", "name": "Fresh organic villa farm lemon 500gm pack", "price": 28.85, "quantity": 2}
	],
	"deliveryMethod": "free",
	"paymentMethod": "cash-on-delivery",
	"billingAddress": {
		"firstName": "Ada",
		"lastName": "Lovelace",
		"city": "London",
		"country": "UK"
	}
}`

func orderResponse(id uuid.UUID, userID *uuid.UUID) *model.OrderResponse {
	return &model.OrderResponse{
		ID:              id,
		UserID:          userID,
		Items:           []model.OrderItem{{ID: uuid.New(), OrderID: id, ProductID: "1", ProductName: "Fresh organic villa farm lemon 500gm pack", Price: 28.85, Quantity: 2}},
		Subtotal:        57.70,
		DeliveryCharges: 0,
		Total:           57.70,
		DeliveryMethod:  model.DeliveryFree,
		PaymentMethod:   "cash-on-delivery",
		Status:          "confirmed",
		CreatedAt:       time.Now(),
	}
}

func TestOrderHandler_Create(t *testing.T) {
	logger := zerolog.Nop()
	tokens := auth.NewTokenManager("test-secret")

	t.Run("anonymous order returns 201", func(t *testing.T) {
		svc := new(MockOrderService)
		id := uuid.New()
		svc.On("Create", mock.Anything, mock.AnythingOfType("*model.OrderRequest"), (*uuid.UUID)(nil)).
			Return(orderResponse(id, nil), nil)

		h := NewOrderHandler(svc, tokens, logger)

		req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(orderBody))
		rec := httptest.NewRecorder()

		h.Create(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)

		var resp model.OrderResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, id, resp.ID)
		assert.Nil(t, resp.UserID)
		assert.Equal(t, 57.70, resp.Total)
		svc.AssertExpectations(t)
	})

	t.Run("valid bearer token attributes the order", func(t *testing.T) {
		userID := uuid.New()
		token, err := tokens.Mint(&model.User{ID: userID, Email: "ada@example.com"})
		require.NoError(t, err)

		svc := new(MockOrderService)
		id := uuid.New()
		svc.On("Create", mock.Anything, mock.AnythingOfType("*model.OrderRequest"), mock.MatchedBy(func(uid *uuid.UUID) bool {
			return uid != nil && *uid == userID
		})).Return(orderResponse(id, &userID), nil)

		h := NewOrderHandler(svc, tokens, logger)

		req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(orderBody))
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()

		h.Create(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)
		svc.AssertExpectations(t)
	})

	t.Run("garbage bearer token falls back to anonymous", func(t *testing.T) {
		svc := new(MockOrderService)
		svc.On("Create", mock.Anything, mock.AnythingOfType("*model.OrderRequest"), (*uuid.UUID)(nil)).
			Return(orderResponse(uuid.New(), nil), nil)

		h := NewOrderHandler(svc, tokens, logger)

		req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(orderBody))
		req.Header.Set("Authorization", "Bearer not-a-token")
		rec := httptest.NewRecorder()

		h.Create(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)
		svc.AssertExpectations(t)
	})

	t.Run("token signed with another secret falls back to anonymous", func(t *testing.T) {
		otherToken, err := auth.NewTokenManager("other-secret").Mint(&model.User{ID: uuid.New(), Email: "eve@example.com"})
		require.NoError(t, err)

		svc := new(MockOrderService)
		svc.On("Create", mock.Anything, mock.AnythingOfType("*model.OrderRequest"), (*uuid.UUID)(nil)).
			Return(orderResponse(uuid.New(), nil), nil)

		h := NewOrderHandler(svc, tokens, logger)

		req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(orderBody))
		req.Header.Set("Authorization", "Bearer "+otherToken)
		rec := httptest.NewRecorder()

		h.Create(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)
		svc.AssertExpectations(t)
	})

	t.Run("missing items rejected before the service", func(t *testing.T) {
		svc := new(MockOrderService)
		h := NewOrderHandler(svc, tokens, logger)

		body := `{"items": [], "deliveryMethod": "free", "paymentMethod": "cash-on-delivery", "billingAddress": {"firstName": "Ada", "lastName": "Lovelace", "city": "London", "country": "UK"}}`
		req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(body))
		rec := httptest.NewRecorder()

		h.Create(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("malformed json", func(t *testing.T) {
		svc := new(MockOrderService)
		h := NewOrderHandler(svc, tokens, logger)

		req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(`{"items": [`))
		rec := httptest.NewRecorder()

		h.Create(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)

		var resp ErrorResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, model.ErrCodeInvalidJSON, resp.Error)
	})
}

func TestOrderHandler_GetByID(t *testing.T) {
	logger := zerolog.Nop()
	tokens := auth.NewTokenManager("test-secret")

	t.Run("found", func(t *testing.T) {
		svc := new(MockOrderService)
		id := uuid.New()
		svc.On("GetByID", mock.Anything, id).Return(orderResponse(id, nil), nil)

		h := NewOrderHandler(svc, tokens, logger)

		req := httptest.NewRequest(http.MethodGet, "/api/orders/"+id.String(), nil)
		rec := httptest.NewRecorder()

		h.GetByID(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp model.OrderResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, id, resp.ID)
	})

	t.Run("missing order maps to 404", func(t *testing.T) {
		svc := new(MockOrderService)
		id := uuid.New()
		svc.On("GetByID", mock.Anything, id).Return(nil, model.ErrOrderNotFound)

		h := NewOrderHandler(svc, tokens, logger)

		req := httptest.NewRequest(http.MethodGet, "/api/orders/"+id.String(), nil)
		rec := httptest.NewRecorder()

		h.GetByID(rec, req)

		require.Equal(t, http.StatusNotFound, rec.Code)

		var resp ErrorResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, model.ErrCodeOrderNotFound, resp.Error)
	})

	t.Run("malformed id maps to 400", func(t *testing.T) {
		svc := new(MockOrderService)
		h := NewOrderHandler(svc, tokens, logger)

		req := httptest.NewRequest(http.MethodGet, "/api/orders/not-a-uuid", nil)
		rec := httptest.NewRecorder()

		h.GetByID(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		svc.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})
}
