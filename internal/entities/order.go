package entities

import (
	"bytes"
	"encoding/gob"
	"errors"
	"fmt"
	"time"
)

// Status жизненный цикл заказа и отдельных позиций.
// Переходы между известными статусами не ограничены, неизвестные значения отклоняются.
type Status string

const (
	StatusProcessing Status = "Processing"
	StatusShipped    Status = "Shipped"
	StatusDelivered  Status = "Delivered"
	StatusCancelled  Status = "Cancelled"
	StatusReturned   Status = "Returned"
)

const (
	CancellationRequested = "requested"

	DeliveryStatusPending = "Pending"
)

func (s Status) ValidForOrder() bool {
	switch s {
	case StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

func (s Status) ValidForItem() bool {
	return s == StatusReturned || s.ValidForOrder()
}

type OrderItem struct {
	ProductID string
	// VendorID снимается с товара в момент создания заказа
	VendorID string
	Quantity int
	Price    float64
	Status   Status
}

// TotalPrice вычисляется, не хранится.
func (i OrderItem) TotalPrice() float64 {
	return float64(i.Quantity) * i.Price
}

type Cancellation struct {
	Requested   bool
	Reason      string
	Status      string
	RequestedAt time.Time
}

type Order struct {
	ID              string
	CustomerID      string
	Items           []OrderItem
	DeliveryAddress string
	TotalAmount     float64
	Status          Status
	OrderDate       time.Time
	DispatchedDate  *time.Time
	DeliveryStatus  string
	Cancellation    *Cancellation

	// Version токен оптимистичной блокировки, инкрементируется при каждом обновлении
	Version int64
}

func (o Order) ComputeTotal() float64 {
	var total float64
	for _, item := range o.Items {
		total += item.TotalPrice()
	}
	return total
}

func (o *Order) Item(productID string) *OrderItem {
	for i := range o.Items {
		if o.Items[i].ProductID == productID {
			return &o.Items[i]
		}
	}
	return nil
}

// OrderDraft запрос на создание заказа, идентификатор покупателя передаётся отдельно.
type OrderDraft struct {
	DeliveryAddress string
	Items           []OrderDraftItem
}

type OrderDraftItem struct {
	ProductID string
	Quantity  int
	// Price фиксируется на момент заказа, не пересчитывается из каталога
	Price float64
}

// OrderUpdate изменения корзины; позиции вне статуса Processing менять нельзя.
type OrderUpdate struct {
	DeliveryAddress string
	Items           []OrderDraftItem
}

// OrderDetails развёрнутое представление заказа для выдачи клиенту.
type OrderDetails struct {
	OrderID         string
	Customer        User
	DeliveryAddress string
	TotalAmount     float64
	Status          Status
	Items           []OrderItemDetails
	OrderDate       time.Time
	DeliveryStatus  string
	DispatchedDate  *time.Time
	Cancellation    *Cancellation
}

type OrderItemDetails struct {
	ProductID       string
	ProductName     string
	ProductImageURL string
	Vendor          User
	Quantity        int
	Price           float64
	TotalPrice      float64
	Status          Status
}

// VendorOrder заказ глазами продавца: только его позиции.
type VendorOrder struct {
	OrderID      string
	CustomerName string
	OrderDate    time.Time
	Items        []VendorOrderItem
}

type VendorOrderItem struct {
	ProductID  string
	Quantity   int
	TotalPrice float64
	Status     Status
}

var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrOrderItemNotFound = errors.New("order item not found")
	ErrOrderConflict     = errors.New("order was modified concurrently")
	ErrEmptyOrder        = errors.New("order must contain at least one item")
	ErrInvalidStatus     = errors.New("invalid status")
	ErrItemNotUpdatable  = errors.New("item is not in Processing status")
	ErrInvalidOrder      = errors.New("invalid order")
)

func (o *Order) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)
	if err := enc.Encode(o); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (o *Order) Unmarshal(data []byte) error {
	buf := bytes.NewBuffer(data)
	dec := gob.NewDecoder(buf)
	if err := dec.Decode(o); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidOrder, err)
	}
	return nil
}

func init() {
	gob.Register(Order{})
	gob.Register(OrderItem{})
	gob.Register(Cancellation{})
}
