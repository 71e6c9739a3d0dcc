package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/CoorayNTL/ead-backend/internal/entities"
	"github.com/CoorayNTL/ead-backend/internal/middleware"
	"github.com/CoorayNTL/ead-backend/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type OrderService interface {
	CreateOrder(ctx context.Context, customerID string, draft entities.OrderDraft) (string, error)
	GetOrder(ctx context.Context, orderID string) (entities.OrderDetails, error)
	ListOrders(ctx context.Context, page, size int, customerID string) ([]entities.OrderDetails, int64, error)
	UpdateOrder(ctx context.Context, orderID string, upd entities.OrderUpdate) error
	SetOrderStatus(ctx context.Context, orderID string, status entities.Status) error
	SetItemStatus(ctx context.Context, orderID, productID string, status entities.Status) error
	RequestCancellation(ctx context.Context, orderID, reason string) error
	ListOrdersForVendor(ctx context.Context, vendorID string) ([]entities.VendorOrder, error)
}

type OrdersHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      OrderService
	auth     func(next http.Handler) http.Handler
}

func NewOrdersHandler(logger *slog.Logger, svc OrderService, auth func(next http.Handler) http.Handler) *OrdersHandler {
	return &OrdersHandler{
		logger:   logger.With(slog.String("handler", "orders")),
		validate: validator.New(),
		svc:      svc,
		auth:     auth,
	}
}

func (h *OrdersHandler) Init(r chi.Router) {
	r.Route("/api/orders", func(r chi.Router) {
		r.With(h.auth).Post("/create", h.CreateOrder)
		r.Get("/", h.ListOrders)
		r.Get("/view/{orderId}", h.GetOrder)
		r.Get("/vendor/{vendorId}", h.ListVendorOrders)
		r.Put("/update/{orderId}", h.UpdateOrder)
		r.Put("/update-status/{orderId}", h.UpdateOrderStatus)
		r.Put("/update-item-status/{orderId}/{productId}", h.UpdateOrderItemStatus)
		r.Put("/request-cancel/{orderId}", h.RequestCancel)
	})
}

// CreateOrder создаёт заказ от имени аутентифицированного покупателя.
// @Summary      Создать заказ
// @Tags         orders
// @Security     BearerAuth
// @Param        request  body  CreateOrderRequest  true  "Состав заказа"
// @Success      201  {object}  CreateOrderResponse
// @Failure      400  {object}  utils.ValidationErrorResponse
// @Failure      404  {object}  utils.ErrorResponse
// @Router       /orders/create [post]
func (h *OrdersHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	customerID, ok := middleware.CustomerID(ctx)
	if !ok {
		utils.WriteError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req CreateOrderRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	orderID, err := h.svc.CreateOrder(ctx, customerID, req.ToDraft())
	if err != nil {
		h.writeServiceError(ctx, w, err)
		return
	}

	utils.WriteJSON(w, CreateOrderResponse{
		Message: "Order created successfully",
		OrderID: orderID,
	}, http.StatusCreated)
}

// GetOrder возвращает заказ с данными покупателя, товаров и продавцов.
// @Summary      Получить заказ
// @Tags         orders
// @Param        orderId  path  string  true  "Идентификатор заказа"
// @Success      200  {object}  Order
// @Failure      404  {object}  utils.ErrorResponse
// @Router       /orders/view/{orderId} [get]
func (h *OrdersHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderID := chi.URLParam(r, "orderId")

	orderRequestsInProgress.Inc()
	defer orderRequestsInProgress.Dec()
	start := time.Now()

	if err := h.validate.Var(orderID, "required"); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.svc.GetOrder(ctx, orderID)
	orderRequestDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		orderRequestTotal.WithLabelValues("error").Inc()
		h.writeServiceError(ctx, w, err)
		return
	}

	orderRequestTotal.WithLabelValues("ok").Inc()
	utils.WriteJSON(w, OrderDetailsToJSON(order), http.StatusOK)
}

// ListOrders возвращает страницу заказов, опционально по одному покупателю.
// @Summary      Список заказов
// @Tags         orders
// @Param        pageNumber  query  int     false  "Номер страницы"
// @Param        pageSize    query  int     false  "Размер страницы"
// @Param        customerId  query  string  false  "Фильтр по покупателю"
// @Success      200  {object}  OrdersList
// @Router       /orders [get]
func (h *OrdersHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	page := queryInt(r, "pageNumber", 1)
	size := queryInt(r, "pageSize", 10)
	customerID := r.URL.Query().Get("customerId")

	orders, total, err := h.svc.ListOrders(ctx, page, size, customerID)
	if err != nil {
		h.writeServiceError(ctx, w, err)
		return
	}

	list := OrdersList{
		TotalOrders: total,
		Orders:      make([]Order, 0, len(orders)),
	}
	for _, order := range orders {
		list.Orders = append(list.Orders, OrderDetailsToJSON(order))
	}

	utils.WriteJSON(w, list, http.StatusOK)
}

// UpdateOrder меняет корзину заказа, пока позиции в статусе Processing.
// @Summary      Обновить заказ
// @Tags         orders
// @Param        orderId  path  string              true  "Идентификатор заказа"
// @Param        request  body  UpdateOrderRequest  true  "Изменения"
// @Success      200  {object}  utils.MessageResponse
// @Failure      404  {object}  utils.ErrorResponse
// @Failure      409  {object}  utils.ErrorResponse
// @Router       /orders/update/{orderId} [put]
func (h *OrdersHandler) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderID := chi.URLParam(r, "orderId")

	var req UpdateOrderRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	if err := h.svc.UpdateOrder(ctx, orderID, req.ToUpdate()); err != nil {
		h.writeServiceError(ctx, w, err)
		return
	}

	utils.WriteMessage(w, "Order updated successfully", http.StatusOK)
}

// UpdateOrderStatus переводит заказ в новый статус.
// @Summary      Обновить статус заказа
// @Tags         orders
// @Param        orderId  path  string               true  "Идентификатор заказа"
// @Param        request  body  StatusUpdateRequest  true  "Новый статус"
// @Success      200  {object}  utils.MessageResponse
// @Failure      404  {object}  utils.ErrorResponse
// @Router       /orders/update-status/{orderId} [put]
func (h *OrdersHandler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderID := chi.URLParam(r, "orderId")

	var req StatusUpdateRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	if err := h.svc.SetOrderStatus(ctx, orderID, entities.Status(req.Status)); err != nil {
		h.writeServiceError(ctx, w, err)
		return
	}

	utils.WriteMessage(w, "Order status updated successfully", http.StatusOK)
}

// UpdateOrderItemStatus переводит позицию заказа в новый статус.
// @Summary      Обновить статус позиции
// @Tags         orders
// @Param        orderId    path  string               true  "Идентификатор заказа"
// @Param        productId  path  string               true  "Идентификатор товара"
// @Param        request    body  StatusUpdateRequest  true  "Новый статус"
// @Success      200  {object}  utils.MessageResponse
// @Failure      404  {object}  utils.ErrorResponse
// @Router       /orders/update-item-status/{orderId}/{productId} [put]
func (h *OrdersHandler) UpdateOrderItemStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderID := chi.URLParam(r, "orderId")
	productID := chi.URLParam(r, "productId")

	var req StatusUpdateRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	if err := h.svc.SetItemStatus(ctx, orderID, productID, entities.Status(req.Status)); err != nil {
		h.writeServiceError(ctx, w, err)
		return
	}

	utils.WriteMessage(w, "Order item status updated successfully", http.StatusOK)
}

// RequestCancel регистрирует запрос на отмену заказа.
// @Summary      Запросить отмену заказа
// @Tags         orders
// @Param        orderId  path  string              true  "Идентификатор заказа"
// @Param        request  body  CancelOrderRequest  true  "Причина отмены"
// @Success      200  {object}  utils.MessageResponse
// @Failure      404  {object}  utils.ErrorResponse
// @Router       /orders/request-cancel/{orderId} [put]
func (h *OrdersHandler) RequestCancel(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderID := chi.URLParam(r, "orderId")

	var req CancelOrderRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.svc.RequestCancellation(ctx, orderID, req.Reason); err != nil {
		h.writeServiceError(ctx, w, err)
		return
	}

	utils.WriteMessage(w, "Order cancellation requested successfully", http.StatusOK)
}

// ListVendorOrders возвращает заказы, в которых есть позиции продавца.
// @Summary      Заказы продавца
// @Tags         orders
// @Param        vendorId  path  string  true  "Идентификатор продавца"
// @Success      200  {array}  VendorOrder
// @Router       /orders/vendor/{vendorId} [get]
func (h *OrdersHandler) ListVendorOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	vendorID := chi.URLParam(r, "vendorId")

	orders, err := h.svc.ListOrdersForVendor(ctx, vendorID)
	if err != nil {
		h.writeServiceError(ctx, w, err)
		return
	}

	result := make([]VendorOrder, 0, len(orders))
	for _, order := range orders {
		result = append(result, VendorOrderToJSON(order))
	}

	utils.WriteJSON(w, result, http.StatusOK)
}

func (h *OrdersHandler) writeServiceError(ctx context.Context, w http.ResponseWriter, err error) {
	writeServiceError(ctx, h.logger, w, err)
}

// writeServiceError транслирует ошибки сервисов в HTTP-коды.
func writeServiceError(ctx context.Context, logger *slog.Logger, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, entities.ErrOrderNotFound),
		errors.Is(err, entities.ErrOrderItemNotFound),
		errors.Is(err, entities.ErrCustomerNotFound),
		errors.Is(err, entities.ErrProductNotFound),
		errors.Is(err, entities.ErrVendorNotFound),
		errors.Is(err, entities.ErrCategoryNotFound):
		utils.WriteError(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, entities.ErrEmptyOrder),
		errors.Is(err, entities.ErrInvalidStatus):
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, entities.ErrItemNotUpdatable),
		errors.Is(err, entities.ErrOrderConflict):
		utils.WriteError(w, err.Error(), http.StatusConflict)
	default:
		logger.ErrorContext(ctx, "request failed", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
	}
}

func queryInt(r *http.Request, key string, fallback int) int {
	value := r.URL.Query().Get(key)
	if value == "" {
		return fallback
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return i
}
