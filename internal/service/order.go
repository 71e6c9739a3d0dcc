package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/CoorayNTL/ead-backend/internal/entities"
	"github.com/CoorayNTL/ead-backend/pkg/trm"
	"github.com/CoorayNTL/ead-backend/pkg/utils"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

type OrderRepo interface {
	CreateOrder(ctx context.Context, o entities.Order) error
	GetOrderByID(ctx context.Context, orderID string) (entities.Order, error)
	ListOrders(ctx context.Context, page, size int, customerID string) ([]entities.Order, int64, error)
	ListOrdersByVendor(ctx context.Context, vendorID string) ([]entities.Order, error)
	LatestOrders(ctx context.Context, count int) ([]entities.Order, error)

	// Перезапись агрегата целиком, защищена проверкой version
	UpdateOrder(ctx context.Context, o entities.Order) error
}

type Catalog interface {
	GetUserByID(ctx context.Context, userID string) (entities.User, error)
	GetProductByID(ctx context.Context, productID string) (entities.Product, error)
}

type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
	Delete(key string)
}

// Количество одновременных запросов к каталогу при сборке проекции
const projectionConcurrency = 4

type orderService struct {
	logger    *slog.Logger
	txManager trm.Manager
	repo      OrderRepo
	catalog   Catalog
	cache     Cache
}

func NewOrderService(logger *slog.Logger, txManager trm.Manager, repo OrderRepo, catalog Catalog, cache Cache) *orderService {
	return &orderService{
		logger:    logger.With(slog.String("service", "order")),
		txManager: txManager,
		repo:      repo,
		catalog:   catalog,
		cache:     cache,
	}
}

// CreateOrder собирает заказ из черновика: проверяет покупателя, каждый товар
// и его продавца, фиксирует vendor_id на позиции и считает сумму.
// Цена берётся из запроса как снапшот на момент заказа, из каталога не пересчитывается.
// Либо все ссылки валидны и заказ записан целиком, либо записи не происходит вовсе.
func (s *orderService) CreateOrder(ctx context.Context, customerID string, draft entities.OrderDraft) (string, error) {
	if len(draft.Items) == 0 {
		return "", entities.ErrEmptyOrder
	}

	if _, err := s.catalog.GetUserByID(ctx, customerID); err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			return "", fmt.Errorf("%w: %s", entities.ErrCustomerNotFound, customerID)
		}
		return "", fmt.Errorf("failed to resolve customer: %w", err)
	}

	items := make([]entities.OrderItem, 0, len(draft.Items))
	for _, item := range draft.Items {
		product, err := s.catalog.GetProductByID(ctx, item.ProductID)
		if err != nil {
			if errors.Is(err, entities.ErrProductNotFound) {
				return "", fmt.Errorf("%w: %s", entities.ErrProductNotFound, item.ProductID)
			}
			return "", fmt.Errorf("failed to resolve product: %w", err)
		}

		if _, err := s.catalog.GetUserByID(ctx, product.VendorID); err != nil {
			if errors.Is(err, entities.ErrUserNotFound) {
				return "", fmt.Errorf("%w: %s", entities.ErrVendorNotFound, product.VendorID)
			}
			return "", fmt.Errorf("failed to resolve vendor: %w", err)
		}

		items = append(items, entities.OrderItem{
			ProductID: item.ProductID,
			VendorID:  product.VendorID,
			Quantity:  item.Quantity,
			Price:     item.Price,
			Status:    entities.StatusProcessing,
		})
	}

	order := entities.Order{
		ID:              uuid.NewString(),
		CustomerID:      customerID,
		Items:           items,
		DeliveryAddress: draft.DeliveryAddress,
		Status:          entities.StatusProcessing,
		OrderDate:       time.Now().UTC(),
		DeliveryStatus:  entities.DeliveryStatusPending,
		Version:         1,
	}
	order.TotalAmount = order.ComputeTotal()

	fn := func() error {
		return s.txManager.Do(ctx, func(ctx context.Context) error {
			return s.repo.CreateOrder(ctx, order)
		})
	}

	cfg := utils.RetryConfig{
		InitialDelay: 100 * time.Millisecond,
		MaxAttempts:  5,
		Multiplier:   2,
	}
	if err := utils.Retry(cfg, fn); err != nil {
		return "", fmt.Errorf("failed to create order: %w", err)
	}

	s.logger.Debug("order created",
		"order_id", order.ID,
		"customer_id", customerID,
		"total_amount", order.TotalAmount,
	)
	return order.ID, nil
}

func (s *orderService) GetOrder(ctx context.Context, orderID string) (entities.OrderDetails, error) {
	order, err := s.orderByID(ctx, orderID)
	if err != nil {
		return entities.OrderDetails{}, err
	}
	return s.project(ctx, order)
}

func (s *orderService) ListOrders(ctx context.Context, page, size int, customerID string) ([]entities.OrderDetails, int64, error) {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = 10
	}

	orders, total, err := s.repo.ListOrders(ctx, page, size, customerID)
	if err != nil {
		return nil, 0, err
	}

	result := make([]entities.OrderDetails, 0, len(orders))
	for _, order := range orders {
		details, err := s.project(ctx, order)
		if err != nil {
			return nil, 0, err
		}
		result = append(result, details)
	}
	return result, total, nil
}

// UpdateOrder меняет корзину: количество у позиций в статусе Processing,
// новые позиции добавляются с продавцом из каталога, сумма пересчитывается.
func (s *orderService) UpdateOrder(ctx context.Context, orderID string, upd entities.OrderUpdate) error {
	order, err := s.freshOrder(ctx, orderID)
	if err != nil {
		return err
	}

	if upd.DeliveryAddress != "" {
		order.DeliveryAddress = upd.DeliveryAddress
	}

	for _, item := range upd.Items {
		product, err := s.catalog.GetProductByID(ctx, item.ProductID)
		if err != nil {
			if errors.Is(err, entities.ErrProductNotFound) {
				return fmt.Errorf("%w: %s", entities.ErrProductNotFound, item.ProductID)
			}
			return fmt.Errorf("failed to resolve product: %w", err)
		}

		existing := order.Item(item.ProductID)
		if existing != nil {
			if existing.Status != entities.StatusProcessing {
				return fmt.Errorf("%w: %s", entities.ErrItemNotUpdatable, item.ProductID)
			}
			existing.Quantity = item.Quantity
			continue
		}

		order.Items = append(order.Items, entities.OrderItem{
			ProductID: item.ProductID,
			VendorID:  product.VendorID,
			Quantity:  item.Quantity,
			Price:     item.Price,
			Status:    entities.StatusProcessing,
		})
	}

	order.TotalAmount = order.ComputeTotal()
	return s.persist(ctx, order)
}

func (s *orderService) SetOrderStatus(ctx context.Context, orderID string, status entities.Status) error {
	if !status.ValidForOrder() {
		return fmt.Errorf("%w: %s", entities.ErrInvalidStatus, status)
	}

	order, err := s.freshOrder(ctx, orderID)
	if err != nil {
		return err
	}

	order.Status = status
	if status == entities.StatusShipped {
		now := time.Now().UTC()
		order.DispatchedDate = &now
	}

	return s.persist(ctx, order)
}

func (s *orderService) SetItemStatus(ctx context.Context, orderID, productID string, status entities.Status) error {
	if !status.ValidForItem() {
		return fmt.Errorf("%w: %s", entities.ErrInvalidStatus, status)
	}

	order, err := s.freshOrder(ctx, orderID)
	if err != nil {
		return err
	}

	item := order.Item(productID)
	if item == nil {
		return fmt.Errorf("%w: %s", entities.ErrOrderItemNotFound, productID)
	}
	item.Status = status

	return s.persist(ctx, order)
}

// SetDeliveryStatus обновляет трекинг доставки, приходит из событий перевозчика.
func (s *orderService) SetDeliveryStatus(ctx context.Context, orderID, status string) error {
	order, err := s.freshOrder(ctx, orderID)
	if err != nil {
		return err
	}

	order.DeliveryStatus = status
	return s.persist(ctx, order)
}

// RequestCancellation помечает заказ как запрошенный к отмене.
// Повторный запрос двигает requested_at вперёд, пустая причина старую не затирает.
func (s *orderService) RequestCancellation(ctx context.Context, orderID, reason string) error {
	order, err := s.freshOrder(ctx, orderID)
	if err != nil {
		return err
	}

	if order.Cancellation == nil {
		order.Cancellation = &entities.Cancellation{}
	}
	if reason != "" {
		order.Cancellation.Reason = reason
	}

	order.Cancellation.Requested = true
	order.Cancellation.Status = entities.CancellationRequested
	order.Cancellation.RequestedAt = time.Now().UTC()

	return s.persist(ctx, order)
}

// ListOrdersForVendor отдаёт заказы глазами продавца: чужие позиции отфильтрованы,
// заказы без позиций этого продавца в выдачу не попадают.
func (s *orderService) ListOrdersForVendor(ctx context.Context, vendorID string) ([]entities.VendorOrder, error) {
	orders, err := s.repo.ListOrdersByVendor(ctx, vendorID)
	if err != nil {
		return nil, err
	}

	customers := make(map[string]entities.User)

	result := make([]entities.VendorOrder, 0, len(orders))
	for _, order := range orders {
		items := make([]entities.VendorOrderItem, 0, len(order.Items))
		for _, item := range order.Items {
			if item.VendorID != vendorID {
				continue
			}
			items = append(items, entities.VendorOrderItem{
				ProductID:  item.ProductID,
				Quantity:   item.Quantity,
				TotalPrice: item.TotalPrice(),
				Status:     item.Status,
			})
		}
		if len(items) == 0 {
			continue
		}

		customer, ok := customers[order.CustomerID]
		if !ok {
			customer, err = s.catalog.GetUserByID(ctx, order.CustomerID)
			if err != nil {
				if errors.Is(err, entities.ErrUserNotFound) {
					return nil, fmt.Errorf("%w: %s", entities.ErrCustomerNotFound, order.CustomerID)
				}
				return nil, fmt.Errorf("failed to resolve customer: %w", err)
			}
			customers[order.CustomerID] = customer
		}

		result = append(result, entities.VendorOrder{
			OrderID:      order.ID,
			CustomerName: customer.Name,
			OrderDate:    order.OrderDate,
			Items:        items,
		})
	}

	return result, nil
}

// WarmUpCache прогревает кэш последними заказами при старте.
func (s *orderService) WarmUpCache(ctx context.Context, count int) error {
	orders, err := s.repo.LatestOrders(ctx, count)
	if err != nil {
		return fmt.Errorf("failed to warm up cache: %w", err)
	}
	for _, order := range orders {
		s.cacheOrder(order)
	}
	s.logger.Info("cache warmed up", slog.Int("orders", len(orders)))
	return nil
}

// orderByID читает заказ через кэш, промах уходит в репозиторий с ретраем.
func (s *orderService) orderByID(ctx context.Context, orderID string) (entities.Order, error) {
	if data, ok := s.cache.Get(orderID); ok {
		var order entities.Order
		if err := order.Unmarshal(data); err != nil {
			s.logger.Error("failed to unmarshal order", slog.String("order_id", orderID), slog.Any("error", err))
			return entities.Order{}, err
		}
		return order, nil
	}

	var order entities.Order
	fn := func() error {
		var err error
		order, err = s.repo.GetOrderByID(ctx, orderID)
		return err
	}
	cfg := utils.RetryConfig{
		InitialDelay: 100 * time.Millisecond,
		MaxAttempts:  5,
		Multiplier:   2,
	}
	if err := utils.Retry(cfg, fn, entities.ErrOrderNotFound); err != nil {
		if errors.Is(err, entities.ErrOrderNotFound) {
			return entities.Order{}, fmt.Errorf("%w: %s", entities.ErrOrderNotFound, orderID)
		}
		return entities.Order{}, err
	}

	s.cacheOrder(order)
	return order, nil
}

// freshOrder читает заказ мимо кэша: мутациям нужна актуальная version.
func (s *orderService) freshOrder(ctx context.Context, orderID string) (entities.Order, error) {
	order, err := s.repo.GetOrderByID(ctx, orderID)
	if errors.Is(err, entities.ErrOrderNotFound) {
		return entities.Order{}, fmt.Errorf("%w: %s", entities.ErrOrderNotFound, orderID)
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}
	return order, nil
}

func (s *orderService) persist(ctx context.Context, order entities.Order) error {
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		return s.repo.UpdateOrder(ctx, order)
	})
	if err != nil {
		return err
	}

	s.cache.Delete(order.ID)
	s.logger.Debug("order updated", "order_id", order.ID)
	return nil
}

func (s *orderService) cacheOrder(order entities.Order) {
	data, err := order.Marshal()
	if err != nil {
		s.logger.Error("failed to marshal order", slog.String("order_id", order.ID), slog.Any("error", err))
		return
	}
	s.cache.Set(order.ID, data)
}

// project дособирает заказ данными покупателя, товаров и продавцов.
// Любая битая ссылка валит операцию целиком, позиции молча не выбрасываются.
func (s *orderService) project(ctx context.Context, order entities.Order) (entities.OrderDetails, error) {
	customer, err := s.catalog.GetUserByID(ctx, order.CustomerID)
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			return entities.OrderDetails{}, fmt.Errorf("%w: %s", entities.ErrCustomerNotFound, order.CustomerID)
		}
		return entities.OrderDetails{}, fmt.Errorf("failed to resolve customer: %w", err)
	}

	items := make([]entities.OrderItemDetails, len(order.Items))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(projectionConcurrency)
	for i, item := range order.Items {
		i, item := i, item
		eg.Go(func() error {
			product, err := s.catalog.GetProductByID(ctx, item.ProductID)
			if err != nil {
				if errors.Is(err, entities.ErrProductNotFound) {
					return fmt.Errorf("%w: %s", entities.ErrProductNotFound, item.ProductID)
				}
				return fmt.Errorf("failed to resolve product: %w", err)
			}

			vendor, err := s.catalog.GetUserByID(ctx, product.VendorID)
			if err != nil {
				if errors.Is(err, entities.ErrUserNotFound) {
					return fmt.Errorf("%w: %s", entities.ErrVendorNotFound, product.VendorID)
				}
				return fmt.Errorf("failed to resolve vendor: %w", err)
			}

			items[i] = entities.OrderItemDetails{
				ProductID:       item.ProductID,
				ProductName:     product.Name,
				ProductImageURL: product.ImageURL,
				Vendor:          vendor,
				Quantity:        item.Quantity,
				Price:           item.Price,
				TotalPrice:      item.TotalPrice(),
				Status:          item.Status,
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return entities.OrderDetails{}, err
	}

	return entities.OrderDetails{
		OrderID:         order.ID,
		Customer:        customer,
		DeliveryAddress: order.DeliveryAddress,
		TotalAmount:     order.TotalAmount,
		Status:          order.Status,
		Items:           items,
		OrderDate:       order.OrderDate,
		DeliveryStatus:  order.DeliveryStatus,
		DispatchedDate:  order.DispatchedDate,
		Cancellation:    order.Cancellation,
	}, nil
}
