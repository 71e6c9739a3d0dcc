package service_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/CoorayNTL/ead-backend/internal/entities"
	"github.com/CoorayNTL/ead-backend/internal/service"
	mocks "github.com/CoorayNTL/ead-backend/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProductService_CreateProduct(t *testing.T) {
	type MockBehavior func(repo *mocks.MockCatalogRepo)

	vendor := entities.User{ID: "vendor-1", Name: "Shop"}
	category := entities.Category{ID: "cat-1", Name: "Electronics"}

	draft := service.ProductDraft{
		VendorID:      "vendor-1",
		Name:          "Widget",
		CategoryID:    "cat-1",
		Price:         9.99,
		StockQuantity: 3,
	}

	testCases := []struct {
		name         string
		draft        service.ProductDraft
		mockBehavior MockBehavior
		wantErr      error
	}{
		{
			name:  "OK",
			draft: draft,
			mockBehavior: func(repo *mocks.MockCatalogRepo) {
				repo.EXPECT().GetUserByID(mock.Anything, "vendor-1").Return(vendor, nil)
				repo.EXPECT().GetCategoryByID(mock.Anything, "cat-1").Return(category, nil)
				repo.EXPECT().CreateProduct(mock.Anything, mock.Anything).
					Run(func(_ context.Context, p entities.Product) {
						assert.NotEmpty(t, p.ID)
						assert.Equal(t, "Widget", p.Name)
						assert.Equal(t, "vendor-1", p.VendorID)
					}).
					Return(nil)
			},
		},
		{
			name:  "vendor not found",
			draft: draft,
			mockBehavior: func(repo *mocks.MockCatalogRepo) {
				repo.EXPECT().GetUserByID(mock.Anything, "vendor-1").
					Return(entities.User{}, entities.ErrUserNotFound)
			},
			wantErr: entities.ErrVendorNotFound,
		},
		{
			name:  "category not found",
			draft: draft,
			mockBehavior: func(repo *mocks.MockCatalogRepo) {
				repo.EXPECT().GetUserByID(mock.Anything, "vendor-1").Return(vendor, nil)
				repo.EXPECT().GetCategoryByID(mock.Anything, "cat-1").
					Return(entities.Category{}, entities.ErrCategoryNotFound)
			},
			wantErr: entities.ErrCategoryNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockCatalogRepo(t)
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))

			tc.mockBehavior(repo)

			svc := service.NewProductService(logger, repo)

			got, err := svc.CreateProduct(context.Background(), tc.draft)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, got.ID)
		})
	}
}

func TestProductService_GetProduct(t *testing.T) {
	repo := mocks.NewMockCatalogRepo(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	product := entities.Product{ID: "p-1", VendorID: "vendor-1", CategoryID: "cat-1", Name: "Widget", Price: 9.99}

	repo.EXPECT().GetProductByID(mock.Anything, "p-1").Return(product, nil).Once()
	repo.EXPECT().GetUserByID(mock.Anything, "vendor-1").
		Return(entities.User{ID: "vendor-1", Name: "Shop"}, nil).Once()
	repo.EXPECT().GetCategoryByID(mock.Anything, "cat-1").
		Return(entities.Category{ID: "cat-1", Name: "Electronics"}, nil).Once()

	svc := service.NewProductService(logger, repo)

	got, err := svc.GetProduct(context.Background(), "p-1")
	require.NoError(t, err)
	assert.Equal(t, "Widget", got.Name)
	assert.Equal(t, "Shop", got.Vendor.Name)
	assert.Equal(t, "Electronics", got.Category.Name)
}

func TestProductService_GetProduct_NotFound(t *testing.T) {
	repo := mocks.NewMockCatalogRepo(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	repo.EXPECT().GetProductByID(mock.Anything, "p-404").
		Return(entities.Product{}, entities.ErrProductNotFound).Once()

	svc := service.NewProductService(logger, repo)

	_, err := svc.GetProduct(context.Background(), "p-404")
	assert.ErrorIs(t, err, entities.ErrProductNotFound)
}

func TestProductService_ListProducts(t *testing.T) {
	repo := mocks.NewMockCatalogRepo(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	products := []entities.Product{
		{ID: "p-1", VendorID: "vendor-1", CategoryID: "cat-1", Name: "Widget"},
	}

	// некорректные значения страницы нормализуются
	repo.EXPECT().ListProducts(mock.Anything, 1, 10, "wid").Return(products, nil).Once()
	repo.EXPECT().GetUserByID(mock.Anything, "vendor-1").
		Return(entities.User{ID: "vendor-1"}, nil).Once()
	repo.EXPECT().GetCategoryByID(mock.Anything, "cat-1").
		Return(entities.Category{ID: "cat-1"}, nil).Once()
	repo.EXPECT().CountProducts(mock.Anything, "wid").Return(int64(42), nil).Once()

	svc := service.NewProductService(logger, repo)

	got, total, err := svc.ListProducts(context.Background(), 0, -5, "wid")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(42), total)
}

func TestProductService_UpdateProduct(t *testing.T) {
	repo := mocks.NewMockCatalogRepo(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	existing := entities.Product{ID: "p-1", VendorID: "vendor-1", CategoryID: "cat-1", Name: "Widget", Price: 9.99}

	repo.EXPECT().GetProductByID(mock.Anything, "p-1").Return(existing, nil).Once()
	repo.EXPECT().GetUserByID(mock.Anything, "vendor-1").
		Return(entities.User{ID: "vendor-1"}, nil).Once()
	repo.EXPECT().GetCategoryByID(mock.Anything, "cat-1").
		Return(entities.Category{ID: "cat-1"}, nil).Once()
	repo.EXPECT().UpdateProduct(mock.Anything, mock.Anything).
		Run(func(_ context.Context, p entities.Product) {
			// идентификатор сохраняется, остальное перезаписывается
			assert.Equal(t, "p-1", p.ID)
			assert.Equal(t, "Gadget", p.Name)
			assert.Equal(t, 19.99, p.Price)
		}).
		Return(nil).Once()

	svc := service.NewProductService(logger, repo)

	err := svc.UpdateProduct(context.Background(), "p-1", service.ProductDraft{
		VendorID:   "vendor-1",
		Name:       "Gadget",
		CategoryID: "cat-1",
		Price:      19.99,
	})
	assert.NoError(t, err)
}

func TestProductService_DeleteProduct(t *testing.T) {
	repo := mocks.NewMockCatalogRepo(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	repo.EXPECT().DeleteProduct(mock.Anything, "p-404").
		Return(entities.ErrProductNotFound).Once()

	svc := service.NewProductService(logger, repo)

	err := svc.DeleteProduct(context.Background(), "p-404")
	assert.ErrorIs(t, err, entities.ErrProductNotFound)
}
