package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/CoorayNTL/ead-backend/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

var orderColumns = []string{
	"id", "customer_id", "delivery_address", "total_amount", "status",
	"order_date", "dispatched_date", "delivery_status", "version",
}

var itemColumns = []string{
	"order_id", "product_id", "vendor_id", "quantity", "price", "status",
}

var cancellationColumns = []string{
	"order_id", "requested", "reason", "status", "requested_at",
}

type ordersRepo struct {
	txRunner
	qb sq.StatementBuilderType
}

func NewOrdersRepo(db *sqlx.DB) *ordersRepo {
	return &ordersRepo{
		txRunner: txRunner{db: db},
		qb:       sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *ordersRepo) CreateOrder(ctx context.Context, o entities.Order) error {
	query, args := r.qb.Insert("orders").
		Columns(orderColumns...).
		Values(
			o.ID, o.CustomerID, o.DeliveryAddress, o.TotalAmount, string(o.Status),
			o.OrderDate, nullTime(o.DispatchedDate), o.DeliveryStatus, o.Version,
		).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}

	if err := r.insertItems(ctx, o.ID, o.Items); err != nil {
		return err
	}
	return nil
}

func (r *ordersRepo) GetOrderByID(ctx context.Context, orderID string) (entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"id": orderID}).
		MustSql()

	var order Order
	err := r.getContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}

	orders, err := r.assemble(ctx, []Order{order})
	if err != nil {
		return entities.Order{}, err
	}
	return orders[0], nil
}

func (r *ordersRepo) ListOrders(ctx context.Context, page, size int, customerID string) ([]entities.Order, int64, error) {
	countQ := r.qb.Select("COUNT(*)").From("orders")
	pageQ := r.qb.Select(orderColumns...).From("orders")

	if customerID != "" {
		countQ = countQ.Where(sq.Eq{"customer_id": customerID})
		pageQ = pageQ.Where(sq.Eq{"customer_id": customerID})
	}

	query, args := countQ.MustSql()
	var total int64
	if err := r.getContext(ctx, &total, query, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to count orders: %w", err)
	}

	query, args = pageQ.
		OrderBy("order_date DESC").
		Limit(uint64(size)).
		Offset(uint64((page - 1) * size)).
		MustSql()

	var orders []Order
	if err := r.selectContext(ctx, &orders, query, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to select orders: %w", err)
	}

	result, err := r.assemble(ctx, orders)
	if err != nil {
		return nil, 0, err
	}
	return result, total, nil
}

// LatestOrders отдаёт свежие заказы для прогрева кэша.
func (r *ordersRepo) LatestOrders(ctx context.Context, count int) ([]entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		OrderBy("order_date DESC").
		Limit(uint64(count)).
		MustSql()

	var orders []Order
	if err := r.selectContext(ctx, &orders, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select latest orders: %w", err)
	}

	return r.assemble(ctx, orders)
}

func (r *ordersRepo) ListOrdersByVendor(ctx context.Context, vendorID string) ([]entities.Order, error) {
	// Заказы, в которых есть хотя бы одна позиция этого продавца
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Expr(
			"id IN (SELECT DISTINCT order_id FROM order_items WHERE vendor_id = ?)",
			vendorID,
		)).
		OrderBy("order_date DESC").
		MustSql()

	var orders []Order
	if err := r.selectContext(ctx, &orders, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select vendor orders: %w", err)
	}

	return r.assemble(ctx, orders)
}

// UpdateOrder перезаписывает агрегат целиком.
// Условие по version защищает от параллельных изменений.
func (r *ordersRepo) UpdateOrder(ctx context.Context, o entities.Order) error {
	query, args := r.qb.Update("orders").
		Set("delivery_address", o.DeliveryAddress).
		Set("total_amount", o.TotalAmount).
		Set("status", string(o.Status)).
		Set("dispatched_date", nullTime(o.DispatchedDate)).
		Set("delivery_status", o.DeliveryStatus).
		Set("version", o.Version+1).
		Where(sq.Eq{"id": o.ID, "version": o.Version}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update order: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return entities.ErrOrderConflict
	}

	query, args = r.qb.Delete("order_items").
		Where(sq.Eq{"order_id": o.ID}).
		MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to delete order items: %w", err)
	}

	if err := r.insertItems(ctx, o.ID, o.Items); err != nil {
		return err
	}

	if o.Cancellation != nil {
		if err := r.upsertCancellation(ctx, o.ID, *o.Cancellation); err != nil {
			return err
		}
	}
	return nil
}

func (r *ordersRepo) insertItems(ctx context.Context, orderID string, items []entities.OrderItem) error {
	if len(items) == 0 {
		return nil
	}

	q := r.qb.Insert("order_items").Columns(itemColumns...)
	for _, it := range items {
		q = q.Values(orderID, it.ProductID, it.VendorID, it.Quantity, it.Price, string(it.Status))
	}

	query, args := q.MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert order items: %w", err)
	}
	return nil
}

func (r *ordersRepo) upsertCancellation(ctx context.Context, orderID string, c entities.Cancellation) error {
	query, args := r.qb.Insert("order_cancellations").
		Columns(cancellationColumns...).
		Values(orderID, c.Requested, nullString(c.Reason), c.Status, c.RequestedAt).
		Suffix(`ON CONFLICT (order_id) DO UPDATE SET
			requested = EXCLUDED.requested,
			reason = EXCLUDED.reason,
			status = EXCLUDED.status,
			requested_at = EXCLUDED.requested_at`).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to upsert cancellation: %w", err)
	}
	return nil
}

// assemble дособирает позиции и запросы на отмену для выбранных заказов.
func (r *ordersRepo) assemble(ctx context.Context, orders []Order) ([]entities.Order, error) {
	if len(orders) == 0 {
		return []entities.Order{}, nil
	}

	ids := make([]string, len(orders))
	for i, order := range orders {
		ids[i] = order.ID
	}

	query, args := r.qb.Select(itemColumns...).
		From("order_items").
		Where(sq.Eq{"order_id": ids}).
		OrderBy("product_id").
		MustSql()

	var items []OrderItem
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select order items: %w", err)
	}
	itemsMap := make(map[string][]OrderItem, len(ids))
	for _, item := range items {
		itemsMap[item.OrderID] = append(itemsMap[item.OrderID], item)
	}

	query, args = r.qb.Select(cancellationColumns...).
		From("order_cancellations").
		Where(sq.Eq{"order_id": ids}).
		MustSql()

	var cancellations []Cancellation
	if err := r.selectContext(ctx, &cancellations, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select cancellations: %w", err)
	}
	cancellationMap := make(map[string]Cancellation, len(cancellations))
	for _, c := range cancellations {
		cancellationMap[c.OrderID] = c
	}

	result := make([]entities.Order, 0, len(orders))
	for _, order := range orders {
		var cancellation *Cancellation
		if c, ok := cancellationMap[order.ID]; ok {
			cancellation = &c
		}
		result = append(result, OrderToEntity(order, itemsMap[order.ID], cancellation))
	}

	return result, nil
}
