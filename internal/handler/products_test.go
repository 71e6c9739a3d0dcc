package handler_test

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/CoorayNTL/ead-backend/internal/entities"
	"github.com/CoorayNTL/ead-backend/internal/handler"
	mocks "github.com/CoorayNTL/ead-backend/internal/handler/mocks"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newProductsRouter(t *testing.T, svc *mocks.MockProductService) chi.Router {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := handler.NewProductsHandler(logger, svc)
	r := chi.NewRouter()
	h.Init(r)
	return r
}

func TestProductsHandler_ListProducts(t *testing.T) {
	svc := mocks.NewMockProductService(t)
	svc.EXPECT().
		ListProducts(mock.Anything, 1, 10, "wid").
		Return([]entities.ProductDetails{
			{ID: "p-1", Name: "Widget", Vendor: entities.User{Name: "Shop"}},
		}, 1, nil).Once()

	r := newProductsRouter(t, svc)

	req := httptest.NewRequest(http.MethodGet, "/api/products/?search=wid", nil)
	rr := httptest.NewRecorder()

	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"product_name":"Widget"`)
	assert.Contains(t, rr.Body.String(), `"total_products":1`)
}

func TestProductsHandler_GetProduct(t *testing.T) {
	testCases := []struct {
		name         string
		productID    string
		mockBehavior func(svc *mocks.MockProductService)
		wantStatus   int
		wantBody     string
	}{
		{
			name:      "success",
			productID: "p-1",
			mockBehavior: func(svc *mocks.MockProductService) {
				svc.EXPECT().
					GetProduct(mock.Anything, "p-1").
					Return(entities.ProductDetails{ID: "p-1", Name: "Widget"}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"product_name":"Widget"`,
		},
		{
			name:      "not found",
			productID: "p-404",
			mockBehavior: func(svc *mocks.MockProductService) {
				svc.EXPECT().
					GetProduct(mock.Anything, "p-404").
					Return(entities.ProductDetails{}, entities.ErrProductNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `product not found`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockProductService(t)
			tc.mockBehavior(svc)

			r := newProductsRouter(t, svc)

			req := httptest.NewRequest(http.MethodGet, "/api/products/"+tc.productID, nil)
			rr := httptest.NewRecorder()

			r.ServeHTTP(rr, req)

			res := rr.Result()
			defer res.Body.Close()

			body, err := io.ReadAll(res.Body)
			require.NoError(t, err)

			assert.Equal(t, tc.wantStatus, res.StatusCode)
			assert.Contains(t, string(body), tc.wantBody)
		})
	}
}

func TestProductsHandler_CreateProduct(t *testing.T) {
	testCases := []struct {
		name         string
		body         string
		mockBehavior func(svc *mocks.MockProductService)
		wantStatus   int
	}{
		{
			name: "success",
			body: `{"vendor_id":"vendor-1","product_name":"Widget","category_id":"cat-1","price":9.99}`,
			mockBehavior: func(svc *mocks.MockProductService) {
				svc.EXPECT().
					CreateProduct(mock.Anything, mock.Anything).
					Return(entities.Product{ID: "p-1"}, nil).Once()
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:         "missing name",
			body:         `{"vendor_id":"vendor-1","category_id":"cat-1","price":9.99}`,
			mockBehavior: func(svc *mocks.MockProductService) {},
			wantStatus:   http.StatusBadRequest,
		},
		{
			name: "vendor not found",
			body: `{"vendor_id":"ghost","product_name":"Widget","category_id":"cat-1","price":9.99}`,
			mockBehavior: func(svc *mocks.MockProductService) {
				svc.EXPECT().
					CreateProduct(mock.Anything, mock.Anything).
					Return(entities.Product{}, entities.ErrVendorNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockProductService(t)
			tc.mockBehavior(svc)

			r := newProductsRouter(t, svc)

			req := httptest.NewRequest(http.MethodPost, "/api/products/", strings.NewReader(tc.body))
			rr := httptest.NewRecorder()

			r.ServeHTTP(rr, req)

			assert.Equal(t, tc.wantStatus, rr.Code)
		})
	}
}

func TestProductsHandler_DeleteProduct(t *testing.T) {
	svc := mocks.NewMockProductService(t)
	svc.EXPECT().
		DeleteProduct(mock.Anything, "p-1").
		Return(nil).Once()

	r := newProductsRouter(t, svc)

	req := httptest.NewRequest(http.MethodDelete, "/api/products/p-1", nil)
	rr := httptest.NewRecorder()

	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Product deleted successfully")
}
