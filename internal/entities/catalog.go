package entities

import "errors"

// User покупатель или продавец, различаются полем Role.
type User struct {
	ID      string
	Name    string
	Email   string
	Role    string
	Address string
	Phone   string
}

type Product struct {
	ID            string
	VendorID      string
	Name          string
	Description   string
	CategoryID    string
	Price         float64
	StockQuantity int
	Status        string
	ImageURL      string
}

type Category struct {
	ID       string
	Name     string
	Status   string
	ImageURL string
}

// ProductDetails товар с подтянутыми продавцом и категорией.
type ProductDetails struct {
	ID            string
	Vendor        User
	Category      Category
	Name          string
	Description   string
	Price         float64
	StockQuantity int
	Status        string
	ImageURL      string
}

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrCustomerNotFound = errors.New("customer not found")
	ErrVendorNotFound   = errors.New("vendor not found")
	ErrProductNotFound  = errors.New("product not found")
	ErrCategoryNotFound = errors.New("category not found")
)
