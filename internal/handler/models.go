package handler

import (
	"time"

	"github.com/CoorayNTL/ead-backend/internal/entities"
	"github.com/CoorayNTL/ead-backend/internal/service"
)

// CreateOrderRequest запрос на создание заказа
type CreateOrderRequest struct {
	Items           []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
	DeliveryAddress string             `json:"delivery_address" validate:"required"`
}

// OrderItemRequest позиция в запросе, цена фиксируется на момент заказа
type OrderItemRequest struct {
	ProductID string  `json:"product_id" validate:"required"`
	Quantity  int     `json:"quantity" validate:"required,gt=0"`
	Price     float64 `json:"price" validate:"gte=0"`
}

// UpdateOrderRequest изменение корзины и адреса доставки
type UpdateOrderRequest struct {
	DeliveryAddress string             `json:"delivery_address,omitempty"`
	Items           []OrderItemRequest `json:"items,omitempty" validate:"omitempty,dive"`
}

// StatusUpdateRequest новый статус заказа или позиции
type StatusUpdateRequest struct {
	Status string `json:"status" validate:"required"`
}

// CancelOrderRequest запрос на отмену, причина опциональна
type CancelOrderRequest struct {
	Reason string `json:"reason,omitempty"`
}

// CreateOrderResponse ответ на успешное создание заказа
type CreateOrderResponse struct {
	Message string `json:"message"`
	OrderID string `json:"order_id"`
}

// User данные пользователя в ответах
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
}

// OrderItem позиция заказа с данными товара и продавца
type OrderItem struct {
	ProductID       string  `json:"product_id"`
	ProductName     string  `json:"product_name"`
	ProductImageURL string  `json:"product_image_url,omitempty"`
	Vendor          User    `json:"vendor"`
	Quantity        int     `json:"quantity"`
	Price           float64 `json:"price"`
	TotalPrice      float64 `json:"total_price"`
	Status          string  `json:"status"`
}

// Order развёрнутый заказ
type Order struct {
	OrderID         string      `json:"order_id"`
	Customer        User        `json:"customer"`
	DeliveryAddress string      `json:"delivery_address"`
	TotalAmount     float64     `json:"total_amount"`
	Status          string      `json:"status"`
	Items           []OrderItem `json:"items"`
	OrderDate       time.Time   `json:"order_date"`
	DeliveryStatus  string      `json:"delivery_status"`
	DispatchedDate  *time.Time  `json:"dispatched_date,omitempty"`

	CancellationRequested bool   `json:"cancellation_requested"`
	CancellationReason    string `json:"cancellation_reason,omitempty"`
	CancellationStatus    string `json:"cancellation_status,omitempty"`
}

// OrdersList страница заказов
type OrdersList struct {
	TotalOrders int64   `json:"total_orders"`
	Orders      []Order `json:"orders"`
}

// VendorOrderItem позиция заказа глазами продавца
type VendorOrderItem struct {
	ProductID  string  `json:"product_id"`
	Quantity   int     `json:"quantity"`
	TotalPrice float64 `json:"total_price"`
	Status     string  `json:"status"`
}

// VendorOrder заказ в выдаче продавца
type VendorOrder struct {
	OrderID      string            `json:"order_id"`
	CustomerName string            `json:"customer_name"`
	OrderDate    time.Time         `json:"order_date"`
	Items        []VendorOrderItem `json:"items"`
}

// ProductRequest создание или полное обновление товара
type ProductRequest struct {
	VendorID      string  `json:"vendor_id" validate:"required"`
	ProductName   string  `json:"product_name" validate:"required"`
	Description   string  `json:"product_description,omitempty"`
	CategoryID    string  `json:"category_id" validate:"required"`
	Price         float64 `json:"price" validate:"gte=0"`
	StockQuantity int     `json:"stock_quantity" validate:"gte=0"`
	Status        string  `json:"product_status,omitempty"`
	ImageURL      string  `json:"product_image_url,omitempty"`
}

// Category категория товара
type Category struct {
	ID       string `json:"id"`
	Name     string `json:"category_name"`
	Status   string `json:"category_status,omitempty"`
	ImageURL string `json:"category_image_url,omitempty"`
}

// Product товар с продавцом и категорией
type Product struct {
	ID            string   `json:"id"`
	Vendor        User     `json:"vendor"`
	Category      Category `json:"category"`
	ProductName   string   `json:"product_name"`
	Description   string   `json:"product_description,omitempty"`
	Price         float64  `json:"price"`
	StockQuantity int      `json:"stock_quantity"`
	Status        string   `json:"product_status,omitempty"`
	ImageURL      string   `json:"product_image_url,omitempty"`
}

// ProductsList страница каталога
type ProductsList struct {
	TotalProducts int64     `json:"total_products"`
	Products      []Product `json:"products"`
}

func UserEntityToJSON(u entities.User) User {
	return User{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
	}
}

func OrderDetailsToJSON(o entities.OrderDetails) Order {
	items := make([]OrderItem, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderItem{
			ProductID:       it.ProductID,
			ProductName:     it.ProductName,
			ProductImageURL: it.ProductImageURL,
			Vendor:          UserEntityToJSON(it.Vendor),
			Quantity:        it.Quantity,
			Price:           it.Price,
			TotalPrice:      it.TotalPrice,
			Status:          string(it.Status),
		})
	}

	order := Order{
		OrderID:         o.OrderID,
		Customer:        UserEntityToJSON(o.Customer),
		DeliveryAddress: o.DeliveryAddress,
		TotalAmount:     o.TotalAmount,
		Status:          string(o.Status),
		Items:           items,
		OrderDate:       o.OrderDate,
		DeliveryStatus:  o.DeliveryStatus,
		DispatchedDate:  o.DispatchedDate,
	}
	if o.Cancellation != nil {
		order.CancellationRequested = o.Cancellation.Requested
		order.CancellationReason = o.Cancellation.Reason
		order.CancellationStatus = o.Cancellation.Status
	}
	return order
}

func VendorOrderToJSON(o entities.VendorOrder) VendorOrder {
	items := make([]VendorOrderItem, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, VendorOrderItem{
			ProductID:  it.ProductID,
			Quantity:   it.Quantity,
			TotalPrice: it.TotalPrice,
			Status:     string(it.Status),
		})
	}

	return VendorOrder{
		OrderID:      o.OrderID,
		CustomerName: o.CustomerName,
		OrderDate:    o.OrderDate,
		Items:        items,
	}
}

func ProductDetailsToJSON(p entities.ProductDetails) Product {
	return Product{
		ID:            p.ID,
		Vendor:        UserEntityToJSON(p.Vendor),
		Category:      CategoryEntityToJSON(p.Category),
		ProductName:   p.Name,
		Description:   p.Description,
		Price:         p.Price,
		StockQuantity: p.StockQuantity,
		Status:        p.Status,
		ImageURL:      p.ImageURL,
	}
}

func CategoryEntityToJSON(c entities.Category) Category {
	return Category{
		ID:       c.ID,
		Name:     c.Name,
		Status:   c.Status,
		ImageURL: c.ImageURL,
	}
}

func (r CreateOrderRequest) ToDraft() entities.OrderDraft {
	items := make([]entities.OrderDraftItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, entities.OrderDraftItem{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			Price:     it.Price,
		})
	}
	return entities.OrderDraft{
		DeliveryAddress: r.DeliveryAddress,
		Items:           items,
	}
}

func (r UpdateOrderRequest) ToUpdate() entities.OrderUpdate {
	items := make([]entities.OrderDraftItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, entities.OrderDraftItem{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			Price:     it.Price,
		})
	}
	return entities.OrderUpdate{
		DeliveryAddress: r.DeliveryAddress,
		Items:           items,
	}
}

func (r ProductRequest) ToDraft() service.ProductDraft {
	return service.ProductDraft{
		VendorID:      r.VendorID,
		Name:          r.ProductName,
		Description:   r.Description,
		CategoryID:    r.CategoryID,
		Price:         r.Price,
		StockQuantity: r.StockQuantity,
		Status:        r.Status,
		ImageURL:      r.ImageURL,
	}
}
