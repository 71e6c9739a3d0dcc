package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/CoorayNTL/ead-backend/internal/entities"

	"github.com/google/uuid"
)

type CatalogRepo interface {
	GetUserByID(ctx context.Context, userID string) (entities.User, error)
	GetProductByID(ctx context.Context, productID string) (entities.Product, error)
	GetCategoryByID(ctx context.Context, categoryID string) (entities.Category, error)

	ListProducts(ctx context.Context, page, size int, search string) ([]entities.Product, error)
	CountProducts(ctx context.Context, search string) (int64, error)
	CreateProduct(ctx context.Context, p entities.Product) error
	UpdateProduct(ctx context.Context, p entities.Product) error
	DeleteProduct(ctx context.Context, productID string) error
}

// ProductDraft данные для создания или полного обновления товара.
type ProductDraft struct {
	VendorID      string
	Name          string
	Description   string
	CategoryID    string
	Price         float64
	StockQuantity int
	Status        string
	ImageURL      string
}

type productService struct {
	logger *slog.Logger
	repo   CatalogRepo
}

func NewProductService(logger *slog.Logger, repo CatalogRepo) *productService {
	return &productService{
		logger: logger.With(slog.String("service", "product")),
		repo:   repo,
	}
}

// ListProducts отдаёт страницу каталога с подтянутыми продавцами и категориями.
func (s *productService) ListProducts(ctx context.Context, page, size int, search string) ([]entities.ProductDetails, int64, error) {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = 10
	}

	products, err := s.repo.ListProducts(ctx, page, size, search)
	if err != nil {
		return nil, 0, err
	}

	result := make([]entities.ProductDetails, 0, len(products))
	for _, product := range products {
		details, err := s.expand(ctx, product)
		if err != nil {
			return nil, 0, err
		}
		result = append(result, details)
	}

	total, err := s.repo.CountProducts(ctx, search)
	if err != nil {
		return nil, 0, err
	}
	return result, total, nil
}

func (s *productService) GetProduct(ctx context.Context, productID string) (entities.ProductDetails, error) {
	product, err := s.repo.GetProductByID(ctx, productID)
	if err != nil {
		if errors.Is(err, entities.ErrProductNotFound) {
			return entities.ProductDetails{}, fmt.Errorf("%w: %s", entities.ErrProductNotFound, productID)
		}
		return entities.ProductDetails{}, err
	}
	return s.expand(ctx, product)
}

func (s *productService) CreateProduct(ctx context.Context, draft ProductDraft) (entities.Product, error) {
	if err := s.validateRefs(ctx, draft); err != nil {
		return entities.Product{}, err
	}

	product := entities.Product{
		ID:            uuid.NewString(),
		VendorID:      draft.VendorID,
		Name:          draft.Name,
		Description:   draft.Description,
		CategoryID:    draft.CategoryID,
		Price:         draft.Price,
		StockQuantity: draft.StockQuantity,
		Status:        draft.Status,
		ImageURL:      draft.ImageURL,
	}

	if err := s.repo.CreateProduct(ctx, product); err != nil {
		return entities.Product{}, fmt.Errorf("failed to create product: %w", err)
	}

	s.logger.Debug("product created", "product_id", product.ID, "vendor_id", product.VendorID)
	return product, nil
}

func (s *productService) UpdateProduct(ctx context.Context, productID string, draft ProductDraft) error {
	existing, err := s.repo.GetProductByID(ctx, productID)
	if err != nil {
		if errors.Is(err, entities.ErrProductNotFound) {
			return fmt.Errorf("%w: %s", entities.ErrProductNotFound, productID)
		}
		return err
	}

	if err := s.validateRefs(ctx, draft); err != nil {
		return err
	}

	existing.VendorID = draft.VendorID
	existing.Name = draft.Name
	existing.Description = draft.Description
	existing.CategoryID = draft.CategoryID
	existing.Price = draft.Price
	existing.StockQuantity = draft.StockQuantity
	existing.Status = draft.Status
	existing.ImageURL = draft.ImageURL

	if err := s.repo.UpdateProduct(ctx, existing); err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}
	return nil
}

func (s *productService) DeleteProduct(ctx context.Context, productID string) error {
	err := s.repo.DeleteProduct(ctx, productID)
	if errors.Is(err, entities.ErrProductNotFound) {
		return fmt.Errorf("%w: %s", entities.ErrProductNotFound, productID)
	}
	return err
}

func (s *productService) validateRefs(ctx context.Context, draft ProductDraft) error {
	if _, err := s.repo.GetUserByID(ctx, draft.VendorID); err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			return fmt.Errorf("%w: %s", entities.ErrVendorNotFound, draft.VendorID)
		}
		return fmt.Errorf("failed to resolve vendor: %w", err)
	}
	if _, err := s.repo.GetCategoryByID(ctx, draft.CategoryID); err != nil {
		if errors.Is(err, entities.ErrCategoryNotFound) {
			return fmt.Errorf("%w: %s", entities.ErrCategoryNotFound, draft.CategoryID)
		}
		return fmt.Errorf("failed to resolve category: %w", err)
	}
	return nil
}

func (s *productService) expand(ctx context.Context, product entities.Product) (entities.ProductDetails, error) {
	vendor, err := s.repo.GetUserByID(ctx, product.VendorID)
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			return entities.ProductDetails{}, fmt.Errorf("%w: %s", entities.ErrVendorNotFound, product.VendorID)
		}
		return entities.ProductDetails{}, fmt.Errorf("failed to resolve vendor: %w", err)
	}

	category, err := s.repo.GetCategoryByID(ctx, product.CategoryID)
	if err != nil {
		if errors.Is(err, entities.ErrCategoryNotFound) {
			return entities.ProductDetails{}, fmt.Errorf("%w: %s", entities.ErrCategoryNotFound, product.CategoryID)
		}
		return entities.ProductDetails{}, fmt.Errorf("failed to resolve category: %w", err)
	}

	return entities.ProductDetails{
		ID:            product.ID,
		Vendor:        vendor,
		Category:      category,
		Name:          product.Name,
		Description:   product.Description,
		Price:         product.Price,
		StockQuantity: product.StockQuantity,
		Status:        product.Status,
		ImageURL:      product.ImageURL,
	}, nil
}
