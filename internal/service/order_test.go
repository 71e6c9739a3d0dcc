package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/CoorayNTL/ead-backend/internal/entities"
	"github.com/CoorayNTL/ead-backend/internal/service"
	mocks "github.com/CoorayNTL/ead-backend/internal/service/mocks"
	txMocks "github.com/CoorayNTL/ead-backend/pkg/trm/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func passthroughTx(tx *txMocks.MockManager) {
	tx.EXPECT().
		Do(mock.Anything, mock.Anything).
		RunAndReturn(
			func(ctx context.Context, cb func(ctx context.Context) error) error {
				return cb(ctx)
			}).Maybe()
}

func TestOrderService_CreateOrder(t *testing.T) {
	type MockBehavior func(repo *mocks.MockOrderRepo, catalog *mocks.MockCatalog)

	customer := entities.User{ID: "cust-1", Name: "Alice"}
	vendor := entities.User{ID: "vendor-1", Name: "Shop"}

	draft := entities.OrderDraft{
		DeliveryAddress: "Baker st. 221b",
		Items: []entities.OrderDraftItem{
			{ProductID: "p-1", Quantity: 2, Price: 10},
			{ProductID: "p-2", Quantity: 1, Price: 5},
		},
	}

	testCases := []struct {
		name         string
		customerID   string
		draft        entities.OrderDraft
		mockBehavior MockBehavior
		wantErr      error
	}{
		{
			name:       "OK",
			customerID: "cust-1",
			draft:      draft,
			mockBehavior: func(repo *mocks.MockOrderRepo, catalog *mocks.MockCatalog) {
				catalog.EXPECT().GetUserByID(mock.Anything, "cust-1").Return(customer, nil)
				catalog.EXPECT().GetProductByID(mock.Anything, "p-1").
					Return(entities.Product{ID: "p-1", VendorID: "vendor-1"}, nil)
				catalog.EXPECT().GetProductByID(mock.Anything, "p-2").
					Return(entities.Product{ID: "p-2", VendorID: "vendor-1"}, nil)
				catalog.EXPECT().GetUserByID(mock.Anything, "vendor-1").Return(vendor, nil)
				repo.EXPECT().CreateOrder(mock.Anything, mock.Anything).
					Run(func(_ context.Context, o entities.Order) {
						assert.NotEmpty(t, o.ID)
						assert.Equal(t, "cust-1", o.CustomerID)
						assert.Equal(t, entities.StatusProcessing, o.Status)
						assert.Equal(t, entities.DeliveryStatusPending, o.DeliveryStatus)
						assert.Equal(t, int64(1), o.Version)
						// 2*10 + 1*5
						assert.Equal(t, 25.0, o.TotalAmount)
						require.Len(t, o.Items, 2)
						assert.Equal(t, "vendor-1", o.Items[0].VendorID)
						assert.Equal(t, entities.StatusProcessing, o.Items[0].Status)
					}).
					Return(nil)
			},
			wantErr: nil,
		},
		{
			name:         "empty order",
			customerID:   "cust-1",
			draft:        entities.OrderDraft{DeliveryAddress: "somewhere"},
			mockBehavior: func(repo *mocks.MockOrderRepo, catalog *mocks.MockCatalog) {},
			wantErr:      entities.ErrEmptyOrder,
		},
		{
			name:       "customer not found",
			customerID: "ghost",
			draft:      draft,
			mockBehavior: func(repo *mocks.MockOrderRepo, catalog *mocks.MockCatalog) {
				catalog.EXPECT().GetUserByID(mock.Anything, "ghost").
					Return(entities.User{}, entities.ErrUserNotFound)
			},
			wantErr: entities.ErrCustomerNotFound,
		},
		{
			name:       "product not found",
			customerID: "cust-1",
			draft:      draft,
			mockBehavior: func(repo *mocks.MockOrderRepo, catalog *mocks.MockCatalog) {
				catalog.EXPECT().GetUserByID(mock.Anything, "cust-1").Return(customer, nil)
				catalog.EXPECT().GetProductByID(mock.Anything, "p-1").
					Return(entities.Product{}, entities.ErrProductNotFound)
			},
			wantErr: entities.ErrProductNotFound,
		},
		{
			name:       "vendor not found",
			customerID: "cust-1",
			draft:      draft,
			mockBehavior: func(repo *mocks.MockOrderRepo, catalog *mocks.MockCatalog) {
				catalog.EXPECT().GetUserByID(mock.Anything, "cust-1").Return(customer, nil)
				catalog.EXPECT().GetProductByID(mock.Anything, "p-1").
					Return(entities.Product{ID: "p-1", VendorID: "vendor-1"}, nil)
				catalog.EXPECT().GetUserByID(mock.Anything, "vendor-1").
					Return(entities.User{}, entities.ErrUserNotFound)
			},
			wantErr: entities.ErrVendorNotFound,
		},
		{
			name:       "retry works (first attempt fails, second succeeds)",
			customerID: "cust-1",
			draft:      draft,
			mockBehavior: func(repo *mocks.MockOrderRepo, catalog *mocks.MockCatalog) {
				catalog.EXPECT().GetUserByID(mock.Anything, "cust-1").Return(customer, nil)
				catalog.EXPECT().GetProductByID(mock.Anything, "p-1").
					Return(entities.Product{ID: "p-1", VendorID: "vendor-1"}, nil)
				catalog.EXPECT().GetProductByID(mock.Anything, "p-2").
					Return(entities.Product{ID: "p-2", VendorID: "vendor-1"}, nil)
				catalog.EXPECT().GetUserByID(mock.Anything, "vendor-1").Return(vendor, nil)
				// первая попытка падает
				repo.EXPECT().CreateOrder(mock.Anything, mock.Anything).
					Once().Return(errors.New("temporary error"))
				// вторая проходит
				repo.EXPECT().CreateOrder(mock.Anything, mock.Anything).
					Once().Return(nil)
			},
			wantErr: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockOrderRepo(t)
			catalog := mocks.NewMockCatalog(t)
			cache := mocks.NewMockCache(t)
			tx := txMocks.NewMockManager(t)
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))

			passthroughTx(tx)
			tc.mockBehavior(repo, catalog)

			svc := service.NewOrderService(logger, tx, repo, catalog, cache)

			orderID, err := svc.CreateOrder(context.Background(), tc.customerID, tc.draft)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, orderID)
		})
	}
}

func TestOrderService_GetOrder(t *testing.T) {
	type MockBehavior func(repo *mocks.MockOrderRepo, catalog *mocks.MockCatalog, cache *mocks.MockCache)

	customer := entities.User{ID: "cust-1", Name: "Alice"}
	validOrder := entities.Order{ID: "123", CustomerID: "cust-1", TotalAmount: 25, Version: 1}
	validData, err := validOrder.Marshal()
	require.NoError(t, err)

	wantDetails := entities.OrderDetails{
		OrderID:     "123",
		Customer:    customer,
		TotalAmount: 25,
		Items:       []entities.OrderItemDetails{},
	}

	testCases := []struct {
		name         string
		orderID      string
		mockBehavior MockBehavior
		wantErr      error
		want         entities.OrderDetails
	}{
		{
			name:    "success from cache",
			orderID: "123",
			mockBehavior: func(_ *mocks.MockOrderRepo, catalog *mocks.MockCatalog, cache *mocks.MockCache) {
				cache.EXPECT().Get("123").Return(validData, true).Once()
				catalog.EXPECT().GetUserByID(mock.Anything, "cust-1").Return(customer, nil)
			},
			want: wantDetails,
		},
		{
			name:    "cache hit but unmarshal fails",
			orderID: "123",
			mockBehavior: func(_ *mocks.MockOrderRepo, _ *mocks.MockCatalog, cache *mocks.MockCache) {
				cache.EXPECT().Get("123").Return([]byte("broken"), true).Once()
			},
			wantErr: entities.ErrInvalidOrder,
		},
		{
			name:    "success from repo and set to cache",
			orderID: "123",
			mockBehavior: func(repo *mocks.MockOrderRepo, catalog *mocks.MockCatalog, cache *mocks.MockCache) {
				cache.EXPECT().Get("123").Return(nil, false).Once()
				repo.EXPECT().GetOrderByID(mock.Anything, "123").Return(validOrder, nil).Once()
				cache.EXPECT().Set("123", validData).Return().Once()
				catalog.EXPECT().GetUserByID(mock.Anything, "cust-1").Return(customer, nil)
			},
			want: wantDetails,
		},
		{
			name:    "not found in repo",
			orderID: "not-exist",
			mockBehavior: func(repo *mocks.MockOrderRepo, _ *mocks.MockCatalog, cache *mocks.MockCache) {
				cache.EXPECT().Get("not-exist").Return(nil, false).Once()
				repo.EXPECT().GetOrderByID(mock.Anything, "not-exist").
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantErr: entities.ErrOrderNotFound,
		},
		{
			name:    "second attempt from repo",
			orderID: "123",
			mockBehavior: func(repo *mocks.MockOrderRepo, catalog *mocks.MockCatalog, cache *mocks.MockCache) {
				cache.EXPECT().Get("123").Return(nil, false).Once()
				repo.EXPECT().GetOrderByID(mock.Anything, "123").
					Return(entities.Order{}, errors.New("some error")).Once()
				repo.EXPECT().GetOrderByID(mock.Anything, "123").
					Return(validOrder, nil).Once()
				cache.EXPECT().Set("123", validData).Return().Once()
				catalog.EXPECT().GetUserByID(mock.Anything, "cust-1").Return(customer, nil)
			},
			want: wantDetails,
		},
		{
			name:    "customer missing from catalog",
			orderID: "123",
			mockBehavior: func(_ *mocks.MockOrderRepo, catalog *mocks.MockCatalog, cache *mocks.MockCache) {
				cache.EXPECT().Get("123").Return(validData, true).Once()
				catalog.EXPECT().GetUserByID(mock.Anything, "cust-1").
					Return(entities.User{}, entities.ErrUserNotFound)
			},
			wantErr: entities.ErrCustomerNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockOrderRepo(t)
			catalog := mocks.NewMockCatalog(t)
			cache := mocks.NewMockCache(t)
			tx := txMocks.NewMockManager(t)
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))

			tc.mockBehavior(repo, catalog, cache)

			svc := service.NewOrderService(logger, tx, repo, catalog, cache)

			got, err := svc.GetOrder(context.Background(), tc.orderID)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestOrderService_GetOrder_Projection(t *testing.T) {
	repo := mocks.NewMockOrderRepo(t)
	catalog := mocks.NewMockCatalog(t)
	cache := mocks.NewMockCache(t)
	tx := txMocks.NewMockManager(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	order := entities.Order{
		ID:         "123",
		CustomerID: "cust-1",
		Items: []entities.OrderItem{
			{ProductID: "p-1", VendorID: "vendor-1", Quantity: 2, Price: 10, Status: entities.StatusProcessing},
		},
		TotalAmount: 20,
	}
	data, err := order.Marshal()
	require.NoError(t, err)

	cache.EXPECT().Get("123").Return(data, true).Once()
	catalog.EXPECT().GetUserByID(mock.Anything, "cust-1").
		Return(entities.User{ID: "cust-1", Name: "Alice"}, nil)
	catalog.EXPECT().GetProductByID(mock.Anything, "p-1").
		Return(entities.Product{ID: "p-1", VendorID: "vendor-1", Name: "Widget", ImageURL: "http://img"}, nil)
	catalog.EXPECT().GetUserByID(mock.Anything, "vendor-1").
		Return(entities.User{ID: "vendor-1", Name: "Shop"}, nil)

	svc := service.NewOrderService(logger, tx, repo, catalog, cache)

	got, err := svc.GetOrder(context.Background(), "123")
	require.NoError(t, err)

	require.Len(t, got.Items, 1)
	item := got.Items[0]
	assert.Equal(t, "Widget", item.ProductName)
	assert.Equal(t, "http://img", item.ProductImageURL)
	assert.Equal(t, "Shop", item.Vendor.Name)
	assert.Equal(t, 20.0, item.TotalPrice)
}

func TestOrderService_SetOrderStatus(t *testing.T) {
	type MockBehavior func(repo *mocks.MockOrderRepo, cache *mocks.MockCache)

	stored := entities.Order{ID: "123", CustomerID: "cust-1", Status: entities.StatusProcessing, Version: 3}

	testCases := []struct {
		name         string
		status       entities.Status
		mockBehavior MockBehavior
		wantErr      error
	}{
		{
			name:   "shipped sets dispatched date",
			status: entities.StatusShipped,
			mockBehavior: func(repo *mocks.MockOrderRepo, cache *mocks.MockCache) {
				repo.EXPECT().GetOrderByID(mock.Anything, "123").Return(stored, nil).Once()
				repo.EXPECT().UpdateOrder(mock.Anything, mock.Anything).
					Run(func(_ context.Context, o entities.Order) {
						assert.Equal(t, entities.StatusShipped, o.Status)
						require.NotNil(t, o.DispatchedDate)
						assert.Equal(t, int64(3), o.Version)
					}).
					Return(nil).Once()
				cache.EXPECT().Delete("123").Return().Once()
			},
		},
		{
			name:   "delivered leaves dispatched date empty",
			status: entities.StatusDelivered,
			mockBehavior: func(repo *mocks.MockOrderRepo, cache *mocks.MockCache) {
				repo.EXPECT().GetOrderByID(mock.Anything, "123").Return(stored, nil).Once()
				repo.EXPECT().UpdateOrder(mock.Anything, mock.Anything).
					Run(func(_ context.Context, o entities.Order) {
						assert.Equal(t, entities.StatusDelivered, o.Status)
						assert.Nil(t, o.DispatchedDate)
					}).
					Return(nil).Once()
				cache.EXPECT().Delete("123").Return().Once()
			},
		},
		{
			name:         "unknown status rejected",
			status:       entities.Status("Teleported"),
			mockBehavior: func(repo *mocks.MockOrderRepo, cache *mocks.MockCache) {},
			wantErr:      entities.ErrInvalidStatus,
		},
		{
			name:         "returned not valid for whole order",
			status:       entities.StatusReturned,
			mockBehavior: func(repo *mocks.MockOrderRepo, cache *mocks.MockCache) {},
			wantErr:      entities.ErrInvalidStatus,
		},
		{
			name:   "order not found",
			status: entities.StatusShipped,
			mockBehavior: func(repo *mocks.MockOrderRepo, cache *mocks.MockCache) {
				repo.EXPECT().GetOrderByID(mock.Anything, "123").
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantErr: entities.ErrOrderNotFound,
		},
		{
			name:   "concurrent modification",
			status: entities.StatusShipped,
			mockBehavior: func(repo *mocks.MockOrderRepo, cache *mocks.MockCache) {
				repo.EXPECT().GetOrderByID(mock.Anything, "123").Return(stored, nil).Once()
				repo.EXPECT().UpdateOrder(mock.Anything, mock.Anything).
					Return(entities.ErrOrderConflict).Once()
			},
			wantErr: entities.ErrOrderConflict,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockOrderRepo(t)
			catalog := mocks.NewMockCatalog(t)
			cache := mocks.NewMockCache(t)
			tx := txMocks.NewMockManager(t)
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))

			passthroughTx(tx)
			tc.mockBehavior(repo, cache)

			svc := service.NewOrderService(logger, tx, repo, catalog, cache)

			err := svc.SetOrderStatus(context.Background(), "123", tc.status)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestOrderService_SetItemStatus(t *testing.T) {
	type MockBehavior func(repo *mocks.MockOrderRepo, cache *mocks.MockCache)

	stored := entities.Order{
		ID:         "123",
		CustomerID: "cust-1",
		Items: []entities.OrderItem{
			{ProductID: "p-1", VendorID: "vendor-1", Quantity: 1, Price: 10, Status: entities.StatusProcessing},
		},
	}

	testCases := []struct {
		name         string
		productID    string
		status       entities.Status
		mockBehavior MockBehavior
		wantErr      error
	}{
		{
			name:      "OK",
			productID: "p-1",
			status:    entities.StatusReturned,
			mockBehavior: func(repo *mocks.MockOrderRepo, cache *mocks.MockCache) {
				repo.EXPECT().GetOrderByID(mock.Anything, "123").Return(stored, nil).Once()
				repo.EXPECT().UpdateOrder(mock.Anything, mock.Anything).
					Run(func(_ context.Context, o entities.Order) {
						require.Len(t, o.Items, 1)
						assert.Equal(t, entities.StatusReturned, o.Items[0].Status)
					}).
					Return(nil).Once()
				cache.EXPECT().Delete("123").Return().Once()
			},
		},
		{
			name:      "item not found",
			productID: "p-404",
			status:    entities.StatusShipped,
			mockBehavior: func(repo *mocks.MockOrderRepo, cache *mocks.MockCache) {
				repo.EXPECT().GetOrderByID(mock.Anything, "123").Return(stored, nil).Once()
			},
			wantErr: entities.ErrOrderItemNotFound,
		},
		{
			name:         "unknown status rejected",
			productID:    "p-1",
			status:       entities.Status("Lost"),
			mockBehavior: func(repo *mocks.MockOrderRepo, cache *mocks.MockCache) {},
			wantErr:      entities.ErrInvalidStatus,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockOrderRepo(t)
			catalog := mocks.NewMockCatalog(t)
			cache := mocks.NewMockCache(t)
			tx := txMocks.NewMockManager(t)
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))

			passthroughTx(tx)
			tc.mockBehavior(repo, cache)

			svc := service.NewOrderService(logger, tx, repo, catalog, cache)

			err := svc.SetItemStatus(context.Background(), "123", tc.productID, tc.status)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestOrderService_UpdateOrder(t *testing.T) {
	type MockBehavior func(repo *mocks.MockOrderRepo, catalog *mocks.MockCatalog, cache *mocks.MockCache)

	stored := entities.Order{
		ID:         "123",
		CustomerID: "cust-1",
		Items: []entities.OrderItem{
			{ProductID: "p-1", VendorID: "vendor-1", Quantity: 2, Price: 10, Status: entities.StatusProcessing},
		},
		TotalAmount: 20,
		Version:     2,
	}

	testCases := []struct {
		name         string
		upd          entities.OrderUpdate
		mockBehavior MockBehavior
		wantErr      error
	}{
		{
			name: "quantity change recomputes total",
			upd: entities.OrderUpdate{
				Items: []entities.OrderDraftItem{{ProductID: "p-1", Quantity: 5, Price: 10}},
			},
			mockBehavior: func(repo *mocks.MockOrderRepo, catalog *mocks.MockCatalog, cache *mocks.MockCache) {
				repo.EXPECT().GetOrderByID(mock.Anything, "123").Return(stored, nil).Once()
				catalog.EXPECT().GetProductByID(mock.Anything, "p-1").
					Return(entities.Product{ID: "p-1", VendorID: "vendor-1"}, nil)
				repo.EXPECT().UpdateOrder(mock.Anything, mock.Anything).
					Run(func(_ context.Context, o entities.Order) {
						assert.Equal(t, 5, o.Items[0].Quantity)
						assert.Equal(t, 50.0, o.TotalAmount)
					}).
					Return(nil).Once()
				cache.EXPECT().Delete("123").Return().Once()
			},
		},
		{
			name: "new item appended with vendor from catalog",
			upd: entities.OrderUpdate{
				Items: []entities.OrderDraftItem{{ProductID: "p-2", Quantity: 1, Price: 5}},
			},
			mockBehavior: func(repo *mocks.MockOrderRepo, catalog *mocks.MockCatalog, cache *mocks.MockCache) {
				repo.EXPECT().GetOrderByID(mock.Anything, "123").Return(stored, nil).Once()
				catalog.EXPECT().GetProductByID(mock.Anything, "p-2").
					Return(entities.Product{ID: "p-2", VendorID: "vendor-2"}, nil)
				repo.EXPECT().UpdateOrder(mock.Anything, mock.Anything).
					Run(func(_ context.Context, o entities.Order) {
						require.Len(t, o.Items, 2)
						assert.Equal(t, "vendor-2", o.Items[1].VendorID)
						assert.Equal(t, entities.StatusProcessing, o.Items[1].Status)
						assert.Equal(t, 25.0, o.TotalAmount)
					}).
					Return(nil).Once()
				cache.EXPECT().Delete("123").Return().Once()
			},
		},
		{
			name: "address updated without touching items",
			upd:  entities.OrderUpdate{DeliveryAddress: "new address"},
			mockBehavior: func(repo *mocks.MockOrderRepo, catalog *mocks.MockCatalog, cache *mocks.MockCache) {
				repo.EXPECT().GetOrderByID(mock.Anything, "123").Return(stored, nil).Once()
				repo.EXPECT().UpdateOrder(mock.Anything, mock.Anything).
					Run(func(_ context.Context, o entities.Order) {
						assert.Equal(t, "new address", o.DeliveryAddress)
						assert.Equal(t, 20.0, o.TotalAmount)
					}).
					Return(nil).Once()
				cache.EXPECT().Delete("123").Return().Once()
			},
		},
		{
			name: "shipped item is not updatable",
			upd: entities.OrderUpdate{
				Items: []entities.OrderDraftItem{{ProductID: "p-1", Quantity: 1, Price: 10}},
			},
			mockBehavior: func(repo *mocks.MockOrderRepo, catalog *mocks.MockCatalog, cache *mocks.MockCache) {
				shipped := stored
				shipped.Items = []entities.OrderItem{
					{ProductID: "p-1", VendorID: "vendor-1", Quantity: 2, Price: 10, Status: entities.StatusShipped},
				}
				repo.EXPECT().GetOrderByID(mock.Anything, "123").Return(shipped, nil).Once()
				catalog.EXPECT().GetProductByID(mock.Anything, "p-1").
					Return(entities.Product{ID: "p-1", VendorID: "vendor-1"}, nil)
			},
			wantErr: entities.ErrItemNotUpdatable,
		},
		{
			name: "unknown product rejected",
			upd: entities.OrderUpdate{
				Items: []entities.OrderDraftItem{{ProductID: "p-404", Quantity: 1, Price: 5}},
			},
			mockBehavior: func(repo *mocks.MockOrderRepo, catalog *mocks.MockCatalog, cache *mocks.MockCache) {
				repo.EXPECT().GetOrderByID(mock.Anything, "123").Return(stored, nil).Once()
				catalog.EXPECT().GetProductByID(mock.Anything, "p-404").
					Return(entities.Product{}, entities.ErrProductNotFound)
			},
			wantErr: entities.ErrProductNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockOrderRepo(t)
			catalog := mocks.NewMockCatalog(t)
			cache := mocks.NewMockCache(t)
			tx := txMocks.NewMockManager(t)
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))

			passthroughTx(tx)
			tc.mockBehavior(repo, catalog, cache)

			svc := service.NewOrderService(logger, tx, repo, catalog, cache)

			err := svc.UpdateOrder(context.Background(), "123", tc.upd)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestOrderService_RequestCancellation(t *testing.T) {
	type MockBehavior func(repo *mocks.MockOrderRepo, cache *mocks.MockCache)

	testCases := []struct {
		name         string
		reason       string
		mockBehavior MockBehavior
	}{
		{
			name:   "first request creates cancellation",
			reason: "changed my mind",
			mockBehavior: func(repo *mocks.MockOrderRepo, cache *mocks.MockCache) {
				repo.EXPECT().GetOrderByID(mock.Anything, "123").
					Return(entities.Order{ID: "123"}, nil).Once()
				repo.EXPECT().UpdateOrder(mock.Anything, mock.Anything).
					Run(func(_ context.Context, o entities.Order) {
						require.NotNil(t, o.Cancellation)
						assert.True(t, o.Cancellation.Requested)
						assert.Equal(t, "changed my mind", o.Cancellation.Reason)
						assert.Equal(t, entities.CancellationRequested, o.Cancellation.Status)
						assert.False(t, o.Cancellation.RequestedAt.IsZero())
					}).
					Return(nil).Once()
				cache.EXPECT().Delete("123").Return().Once()
			},
		},
		{
			name:   "empty reason keeps previous one",
			reason: "",
			mockBehavior: func(repo *mocks.MockOrderRepo, cache *mocks.MockCache) {
				stored := entities.Order{
					ID:           "123",
					Cancellation: &entities.Cancellation{Requested: true, Reason: "old reason", Status: entities.CancellationRequested},
				}
				repo.EXPECT().GetOrderByID(mock.Anything, "123").Return(stored, nil).Once()
				repo.EXPECT().UpdateOrder(mock.Anything, mock.Anything).
					Run(func(_ context.Context, o entities.Order) {
						assert.Equal(t, "old reason", o.Cancellation.Reason)
						assert.True(t, o.Cancellation.Requested)
					}).
					Return(nil).Once()
				cache.EXPECT().Delete("123").Return().Once()
			},
		},
		{
			name:   "second reason replaces the first",
			reason: "found it cheaper",
			mockBehavior: func(repo *mocks.MockOrderRepo, cache *mocks.MockCache) {
				stored := entities.Order{
					ID:           "123",
					Cancellation: &entities.Cancellation{Requested: true, Reason: "old reason", Status: entities.CancellationRequested},
				}
				repo.EXPECT().GetOrderByID(mock.Anything, "123").Return(stored, nil).Once()
				repo.EXPECT().UpdateOrder(mock.Anything, mock.Anything).
					Run(func(_ context.Context, o entities.Order) {
						assert.Equal(t, "found it cheaper", o.Cancellation.Reason)
					}).
					Return(nil).Once()
				cache.EXPECT().Delete("123").Return().Once()
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockOrderRepo(t)
			catalog := mocks.NewMockCatalog(t)
			cache := mocks.NewMockCache(t)
			tx := txMocks.NewMockManager(t)
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))

			passthroughTx(tx)
			tc.mockBehavior(repo, cache)

			svc := service.NewOrderService(logger, tx, repo, catalog, cache)

			err := svc.RequestCancellation(context.Background(), "123", tc.reason)
			assert.NoError(t, err)
		})
	}
}

func TestOrderService_SetDeliveryStatus(t *testing.T) {
	repo := mocks.NewMockOrderRepo(t)
	catalog := mocks.NewMockCatalog(t)
	cache := mocks.NewMockCache(t)
	tx := txMocks.NewMockManager(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	passthroughTx(tx)
	repo.EXPECT().GetOrderByID(mock.Anything, "123").
		Return(entities.Order{ID: "123", DeliveryStatus: entities.DeliveryStatusPending}, nil).Once()
	repo.EXPECT().UpdateOrder(mock.Anything, mock.Anything).
		Run(func(_ context.Context, o entities.Order) {
			assert.Equal(t, "InTransit", o.DeliveryStatus)
		}).
		Return(nil).Once()
	cache.EXPECT().Delete("123").Return().Once()

	svc := service.NewOrderService(logger, tx, repo, catalog, cache)

	err := svc.SetDeliveryStatus(context.Background(), "123", "InTransit")
	assert.NoError(t, err)
}

func TestOrderService_ListOrdersForVendor(t *testing.T) {
	repo := mocks.NewMockOrderRepo(t)
	catalog := mocks.NewMockCatalog(t)
	cache := mocks.NewMockCache(t)
	tx := txMocks.NewMockManager(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	orders := []entities.Order{
		{
			ID:         "o-1",
			CustomerID: "cust-1",
			Items: []entities.OrderItem{
				{ProductID: "p-1", VendorID: "vendor-1", Quantity: 2, Price: 10, Status: entities.StatusProcessing},
				{ProductID: "p-2", VendorID: "vendor-2", Quantity: 1, Price: 5, Status: entities.StatusProcessing},
			},
		},
		{
			ID:         "o-2",
			CustomerID: "cust-1",
			Items: []entities.OrderItem{
				{ProductID: "p-3", VendorID: "vendor-2", Quantity: 1, Price: 7, Status: entities.StatusProcessing},
			},
		},
	}

	repo.EXPECT().ListOrdersByVendor(mock.Anything, "vendor-1").Return(orders, nil).Once()
	// покупатель резолвится один раз на все заказы
	catalog.EXPECT().GetUserByID(mock.Anything, "cust-1").
		Return(entities.User{ID: "cust-1", Name: "Alice"}, nil).Once()

	svc := service.NewOrderService(logger, tx, repo, catalog, cache)

	got, err := svc.ListOrdersForVendor(context.Background(), "vendor-1")
	require.NoError(t, err)

	// заказ без позиций этого продавца выпадает, чужие позиции отфильтрованы
	require.Len(t, got, 1)
	assert.Equal(t, "o-1", got[0].OrderID)
	assert.Equal(t, "Alice", got[0].CustomerName)
	require.Len(t, got[0].Items, 1)
	assert.Equal(t, "p-1", got[0].Items[0].ProductID)
	assert.Equal(t, 20.0, got[0].Items[0].TotalPrice)
}

func TestOrderService_ListOrders(t *testing.T) {
	repo := mocks.NewMockOrderRepo(t)
	catalog := mocks.NewMockCatalog(t)
	cache := mocks.NewMockCache(t)
	tx := txMocks.NewMockManager(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	// некорректная страница нормализуется
	repo.EXPECT().ListOrders(mock.Anything, 1, 10, "").
		Return([]entities.Order{}, 0, nil).Once()

	svc := service.NewOrderService(logger, tx, repo, catalog, cache)

	got, total, err := svc.ListOrders(context.Background(), -1, 0, "")
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Zero(t, total)
}

func TestOrderService_WarmUpCache(t *testing.T) {
	repo := mocks.NewMockOrderRepo(t)
	catalog := mocks.NewMockCatalog(t)
	cache := mocks.NewMockCache(t)
	tx := txMocks.NewMockManager(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	order := entities.Order{ID: "o-1", CustomerID: "cust-1"}
	data, err := order.Marshal()
	require.NoError(t, err)

	repo.EXPECT().LatestOrders(mock.Anything, 100).
		Return([]entities.Order{order}, nil).Once()
	cache.EXPECT().Set("o-1", data).Return().Once()

	svc := service.NewOrderService(logger, tx, repo, catalog, cache)

	require.NoError(t, svc.WarmUpCache(context.Background(), 100))
}
