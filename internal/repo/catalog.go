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

var userColumns = []string{"id", "name", "email", "role", "address", "phone"}

var productColumns = []string{
	"id", "vendor_id", "product_name", "product_description", "category_id",
	"price", "stock_quantity", "product_status", "product_image_url",
}

var categoryColumns = []string{"id", "category_name", "category_status", "category_image_url"}

type catalogRepo struct {
	txRunner
	qb sq.StatementBuilderType
}

func NewCatalogRepo(db *sqlx.DB) *catalogRepo {
	return &catalogRepo{
		txRunner: txRunner{db: db},
		qb:       sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *catalogRepo) GetUserByID(ctx context.Context, userID string) (entities.User, error) {
	query, args := r.qb.Select(userColumns...).
		From("users").
		Where(sq.Eq{"id": userID}).
		MustSql()

	var user User
	err := r.getContext(ctx, &user, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.User{}, entities.ErrUserNotFound
	}
	if err != nil {
		return entities.User{}, fmt.Errorf("failed to get user: %w", err)
	}
	return UserToEntity(user), nil
}

func (r *catalogRepo) GetProductByID(ctx context.Context, productID string) (entities.Product, error) {
	query, args := r.qb.Select(productColumns...).
		From("products").
		Where(sq.Eq{"id": productID}).
		MustSql()

	var product Product
	err := r.getContext(ctx, &product, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Product{}, entities.ErrProductNotFound
	}
	if err != nil {
		return entities.Product{}, fmt.Errorf("failed to get product: %w", err)
	}
	return ProductToEntity(product), nil
}

func (r *catalogRepo) GetCategoryByID(ctx context.Context, categoryID string) (entities.Category, error) {
	query, args := r.qb.Select(categoryColumns...).
		From("categories").
		Where(sq.Eq{"id": categoryID}).
		MustSql()

	var category Category
	err := r.getContext(ctx, &category, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Category{}, entities.ErrCategoryNotFound
	}
	if err != nil {
		return entities.Category{}, fmt.Errorf("failed to get category: %w", err)
	}
	return CategoryToEntity(category), nil
}

func (r *catalogRepo) ListProducts(ctx context.Context, page, size int, search string) ([]entities.Product, error) {
	q := r.qb.Select(productColumns...).From("products")
	if search != "" {
		q = q.Where(sq.ILike{"product_name": "%" + search + "%"})
	}

	query, args := q.
		OrderBy("product_name").
		Limit(uint64(size)).
		Offset(uint64((page - 1) * size)).
		MustSql()

	var products []Product
	if err := r.selectContext(ctx, &products, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select products: %w", err)
	}

	result := make([]entities.Product, 0, len(products))
	for _, p := range products {
		result = append(result, ProductToEntity(p))
	}
	return result, nil
}

func (r *catalogRepo) CountProducts(ctx context.Context, search string) (int64, error) {
	q := r.qb.Select("COUNT(*)").From("products")
	if search != "" {
		q = q.Where(sq.ILike{"product_name": "%" + search + "%"})
	}

	query, args := q.MustSql()
	var total int64
	if err := r.getContext(ctx, &total, query, args...); err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}
	return total, nil
}

func (r *catalogRepo) CreateProduct(ctx context.Context, p entities.Product) error {
	query, args := r.qb.Insert("products").
		Columns(productColumns...).
		Values(
			p.ID, p.VendorID, p.Name, nullString(p.Description), p.CategoryID,
			p.Price, p.StockQuantity, p.Status, nullString(p.ImageURL),
		).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert product: %w", err)
	}
	return nil
}

func (r *catalogRepo) UpdateProduct(ctx context.Context, p entities.Product) error {
	query, args := r.qb.Update("products").
		Set("vendor_id", p.VendorID).
		Set("product_name", p.Name).
		Set("product_description", nullString(p.Description)).
		Set("category_id", p.CategoryID).
		Set("price", p.Price).
		Set("stock_quantity", p.StockQuantity).
		Set("product_status", p.Status).
		Set("product_image_url", nullString(p.ImageURL)).
		Where(sq.Eq{"id": p.ID}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return entities.ErrProductNotFound
	}
	return nil
}

func (r *catalogRepo) DeleteProduct(ctx context.Context, productID string) error {
	query, args := r.qb.Delete("products").
		Where(sq.Eq{"id": productID}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return entities.ErrProductNotFound
	}
	return nil
}
