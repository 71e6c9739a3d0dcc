package repo

import (
	"database/sql"
	"time"

	"github.com/CoorayNTL/ead-backend/internal/entities"
)

type Order struct {
	ID              string       `db:"id"`
	CustomerID      string       `db:"customer_id"`
	DeliveryAddress string       `db:"delivery_address"`
	TotalAmount     float64      `db:"total_amount"`
	Status          string       `db:"status"`
	OrderDate       time.Time    `db:"order_date"`
	DispatchedDate  sql.NullTime `db:"dispatched_date"`
	DeliveryStatus  string       `db:"delivery_status"`
	Version         int64        `db:"version"`
}

type OrderItem struct {
	OrderID   string  `db:"order_id"`
	ProductID string  `db:"product_id"`
	VendorID  string  `db:"vendor_id"`
	Quantity  int     `db:"quantity"`
	Price     float64 `db:"price"`
	Status    string  `db:"status"`
}

type Cancellation struct {
	OrderID     string         `db:"order_id"`
	Requested   bool           `db:"requested"`
	Reason      sql.NullString `db:"reason"`
	Status      string         `db:"status"`
	RequestedAt time.Time      `db:"requested_at"`
}

type User struct {
	ID      string         `db:"id"`
	Name    string         `db:"name"`
	Email   string         `db:"email"`
	Role    string         `db:"role"`
	Address sql.NullString `db:"address"`
	Phone   sql.NullString `db:"phone"`
}

type Product struct {
	ID            string         `db:"id"`
	VendorID      string         `db:"vendor_id"`
	Name          string         `db:"product_name"`
	Description   sql.NullString `db:"product_description"`
	CategoryID    string         `db:"category_id"`
	Price         float64        `db:"price"`
	StockQuantity int            `db:"stock_quantity"`
	Status        string         `db:"product_status"`
	ImageURL      sql.NullString `db:"product_image_url"`
}

type Category struct {
	ID       string         `db:"id"`
	Name     string         `db:"category_name"`
	Status   string         `db:"category_status"`
	ImageURL sql.NullString `db:"category_image_url"`
}

func ItemToEntity(i OrderItem) entities.OrderItem {
	return entities.OrderItem{
		ProductID: i.ProductID,
		VendorID:  i.VendorID,
		Quantity:  i.Quantity,
		Price:     i.Price,
		Status:    entities.Status(i.Status),
	}
}

func CancellationToEntity(c Cancellation) *entities.Cancellation {
	return &entities.Cancellation{
		Requested:   c.Requested,
		Reason:      nullStringToString(c.Reason),
		Status:      c.Status,
		RequestedAt: c.RequestedAt,
	}
}

func OrderToEntity(o Order, items []OrderItem, cancellation *Cancellation) entities.Order {
	order := entities.Order{
		ID:              o.ID,
		CustomerID:      o.CustomerID,
		DeliveryAddress: o.DeliveryAddress,
		TotalAmount:     o.TotalAmount,
		Status:          entities.Status(o.Status),
		OrderDate:       o.OrderDate,
		DispatchedDate:  nullTimeToPtr(o.DispatchedDate),
		DeliveryStatus:  o.DeliveryStatus,
		Version:         o.Version,
	}

	if len(items) > 0 {
		order.Items = make([]entities.OrderItem, 0, len(items))
		for _, it := range items {
			order.Items = append(order.Items, ItemToEntity(it))
		}
	}

	if cancellation != nil {
		order.Cancellation = CancellationToEntity(*cancellation)
	}

	return order
}

func UserToEntity(u User) entities.User {
	return entities.User{
		ID:      u.ID,
		Name:    u.Name,
		Email:   u.Email,
		Role:    u.Role,
		Address: nullStringToString(u.Address),
		Phone:   nullStringToString(u.Phone),
	}
}

func ProductToEntity(p Product) entities.Product {
	return entities.Product{
		ID:            p.ID,
		VendorID:      p.VendorID,
		Name:          p.Name,
		Description:   nullStringToString(p.Description),
		CategoryID:    p.CategoryID,
		Price:         p.Price,
		StockQuantity: p.StockQuantity,
		Status:        p.Status,
		ImageURL:      nullStringToString(p.ImageURL),
	}
}

func CategoryToEntity(c Category) entities.Category {
	return entities.Category{
		ID:       c.ID,
		Name:     c.Name,
		Status:   c.Status,
		ImageURL: nullStringToString(c.ImageURL),
	}
}
