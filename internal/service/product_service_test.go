package service

import (
	"context"
	"errors"
	"testing"

	"foodzy/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProductService_List(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		repo := new(MockProductRepository)
		repo.On("List", mock.Anything).Return([]model.Product{
			{ID: "1", Name: "Fresh organic villa farm lemon 500gm pack", Price: 28.85, Category: "Fruits"},
			{ID: "2", Name: "Best snakes with hazel nut pack 200gm", Price: 52.85, Category: "Snacks"},
		}, nil)

		svc := NewProductService(repo, logger)

		products, err := svc.List(ctx)
		require.NoError(t, err)
		assert.Len(t, products, 2)
		repo.AssertExpectations(t)
	})

	t.Run("repository failure", func(t *testing.T) {
		repo := new(MockProductRepository)
		repo.On("List", mock.Anything).Return(nil, errors.New("connection lost"))

		svc := NewProductService(repo, logger)

		products, err := svc.List(ctx)
		require.Error(t, err)
		assert.Nil(t, products)

		var domainErr *model.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, model.KindInfrastructure, domainErr.Kind)
	})
}

func TestProductService_GetByID(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		repo := new(MockProductRepository)
		repo.On("GetByID", mock.Anything, "1").Return(&model.Product{ID: "1", Name: "Fresh organic villa farm lemon 500gm pack", Price: 28.85}, nil)

		svc := NewProductService(repo, logger)

		product, err := svc.GetByID(ctx, "1")
		require.NoError(t, err)
		assert.Equal(t, "1", product.ID)
	})

	t.Run("not found", func(t *testing.T) {
		repo := new(MockProductRepository)
		repo.On("GetByID", mock.Anything, "999").Return(nil, nil)

		svc := NewProductService(repo, logger)

		product, err := svc.GetByID(ctx, "999")
		require.Error(t, err)
		assert.Nil(t, product)
		assert.ErrorIs(t, err, model.ErrProductNotFound)
	})

	t.Run("empty id short-circuits", func(t *testing.T) {
		repo := new(MockProductRepository)

		svc := NewProductService(repo, logger)

		_, err := svc.GetByID(ctx, "")
		assert.ErrorIs(t, err, model.ErrProductNotFound)
		repo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})
}

func TestProductService_ListByCategory(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		repo := new(MockProductRepository)
		repo.On("ListByCategory", mock.Anything, "Fruits").Return([]model.Product{
			{ID: "1", Name: "Fresh organic villa farm lemon 500gm pack", Price: 28.85, Category: "Fruits"},
		}, nil)

		svc := NewProductService(repo, logger)

		products, err := svc.ListByCategory(ctx, "Fruits")
		require.NoError(t, err)
		assert.Len(t, products, 1)
		assert.Equal(t, "Fruits", products[0].Category)
	})

	t.Run("unknown category is empty, not an error", func(t *testing.T) {
		repo := new(MockProductRepository)
		repo.On("ListByCategory", mock.Anything, "gadgets").Return([]model.Product{}, nil)

		svc := NewProductService(repo, logger)

		products, err := svc.ListByCategory(ctx, "gadgets")
		require.NoError(t, err)
		assert.Empty(t, products)
	})

	t.Run("repository failure", func(t *testing.T) {
		repo := new(MockProductRepository)
		repo.On("ListByCategory", mock.Anything, "Fruits").Return(nil, errors.New("connection lost"))

		svc := NewProductService(repo, logger)

		_, err := svc.ListByCategory(ctx, "Fruits")
		require.Error(t, err)

		var domainErr *model.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, model.KindInfrastructure, domainErr.Kind)
	})
}
