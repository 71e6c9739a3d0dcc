package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/CoorayNTL/ead-backend/internal/entities"
	"github.com/CoorayNTL/ead-backend/internal/service"
	"github.com/CoorayNTL/ead-backend/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type ProductService interface {
	ListProducts(ctx context.Context, page, size int, search string) ([]entities.ProductDetails, int64, error)
	GetProduct(ctx context.Context, productID string) (entities.ProductDetails, error)
	CreateProduct(ctx context.Context, draft service.ProductDraft) (entities.Product, error)
	UpdateProduct(ctx context.Context, productID string, draft service.ProductDraft) error
	DeleteProduct(ctx context.Context, productID string) error
}

type ProductsHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      ProductService
}

func NewProductsHandler(logger *slog.Logger, svc ProductService) *ProductsHandler {
	return &ProductsHandler{
		logger:   logger.With(slog.String("handler", "products")),
		validate: validator.New(),
		svc:      svc,
	}
}

func (h *ProductsHandler) Init(r chi.Router) {
	r.Route("/api/products", func(r chi.Router) {
		r.Get("/", h.ListProducts)
		r.Get("/{productId}", h.GetProduct)
		r.Post("/", h.CreateProduct)
		r.Put("/{productId}", h.UpdateProduct)
		r.Delete("/{productId}", h.DeleteProduct)
	})
}

// ListProducts возвращает страницу каталога с поиском по названию.
// @Summary      Список товаров
// @Tags         products
// @Param        pageNumber  query  int     false  "Номер страницы"
// @Param        pageSize    query  int     false  "Размер страницы"
// @Param        search      query  string  false  "Поиск по названию"
// @Success      200  {object}  ProductsList
// @Router       /products [get]
func (h *ProductsHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	page := queryInt(r, "pageNumber", 1)
	size := queryInt(r, "pageSize", 10)
	search := r.URL.Query().Get("search")

	products, total, err := h.svc.ListProducts(ctx, page, size, search)
	if err != nil {
		writeServiceError(ctx, h.logger, w, err)
		return
	}

	list := ProductsList{
		TotalProducts: total,
		Products:      make([]Product, 0, len(products)),
	}
	for _, product := range products {
		list.Products = append(list.Products, ProductDetailsToJSON(product))
	}

	utils.WriteJSON(w, list, http.StatusOK)
}

// GetProduct возвращает товар с данными продавца и категории.
// @Summary      Получить товар
// @Tags         products
// @Param        productId  path  string  true  "Идентификатор товара"
// @Success      200  {object}  Product
// @Failure      404  {object}  utils.ErrorResponse
// @Router       /products/{productId} [get]
func (h *ProductsHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	productID := chi.URLParam(r, "productId")

	product, err := h.svc.GetProduct(ctx, productID)
	if err != nil {
		writeServiceError(ctx, h.logger, w, err)
		return
	}

	utils.WriteJSON(w, ProductDetailsToJSON(product), http.StatusOK)
}

// CreateProduct добавляет товар в каталог.
// @Summary      Создать товар
// @Tags         products
// @Param        request  body  ProductRequest  true  "Данные товара"
// @Success      201  {object}  utils.MessageResponse
// @Failure      400  {object}  utils.ValidationErrorResponse
// @Router       /products [post]
func (h *ProductsHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req ProductRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	if _, err := h.svc.CreateProduct(ctx, req.ToDraft()); err != nil {
		writeServiceError(ctx, h.logger, w, err)
		return
	}

	utils.WriteMessage(w, "Product created successfully", http.StatusCreated)
}

// UpdateProduct обновляет данные товара.
// @Summary      Обновить товар
// @Tags         products
// @Param        productId  path  string          true  "Идентификатор товара"
// @Param        request    body  ProductRequest  true  "Данные товара"
// @Success      200  {object}  utils.MessageResponse
// @Failure      404  {object}  utils.ErrorResponse
// @Router       /products/{productId} [put]
func (h *ProductsHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	productID := chi.URLParam(r, "productId")

	var req ProductRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	if err := h.svc.UpdateProduct(ctx, productID, req.ToDraft()); err != nil {
		writeServiceError(ctx, h.logger, w, err)
		return
	}

	utils.WriteMessage(w, "Product updated successfully", http.StatusOK)
}

// DeleteProduct удаляет товар из каталога.
// @Summary      Удалить товар
// @Tags         products
// @Param        productId  path  string  true  "Идентификатор товара"
// @Success      200  {object}  utils.MessageResponse
// @Failure      404  {object}  utils.ErrorResponse
// @Router       /products/{productId} [delete]
func (h *ProductsHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	productID := chi.URLParam(r, "productId")

	if err := h.svc.DeleteProduct(ctx, productID); err != nil {
		writeServiceError(ctx, h.logger, w, err)
		return
	}

	utils.WriteMessage(w, "Product deleted successfully", http.StatusOK)
}
