package usecase

import (
	"context"
	"fmt"
	"strings"

	"shopbot/internal/domain/model"
	repo "shopbot/internal/repository"
)

// CatalogUsecase は商品カタログの業務ロジックです。
type CatalogUsecase struct {
	productRepo repo.ProductRepository
}

// DI
func NewCatalogUsecase(productRepo repo.ProductRepository) *CatalogUsecase {
	return &CatalogUsecase{productRepo: productRepo}
}

type AddProductInput struct {
	Name        string
	Price       int64
	Description string
	PhotoFileID string
}

// ListProducts は新しい順の商品一覧。
func (u *CatalogUsecase) ListProducts(ctx context.Context) ([]model.Product, error) {
	return u.productRepo.List(ctx)
}

// GetProduct はIDで1件取得。無ければ repo.ErrNotFound。
func (u *CatalogUsecase) GetProduct(ctx context.Context, productID int64) (model.Product, error) {
	if productID <= 0 {
		return model.Product{}, fmt.Errorf("%w: invalid product id", ErrValidation)
	}
	return u.productRepo.FindByID(ctx, productID)
}

// AddProduct は商品を登録する。
func (u *CatalogUsecase) AddProduct(ctx context.Context, in AddProductInput) (model.Product, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return model.Product{}, fmt.Errorf("%w: name required", ErrValidation)
	}
	if in.Price < 0 {
		return model.Product{}, fmt.Errorf("%w: price must be >= 0", ErrValidation)
	}

	return u.productRepo.Create(ctx, model.Product{
		Name:        name,
		Price:       in.Price,
		Description: strings.TrimSpace(in.Description),
		PhotoFileID: in.PhotoFileID,
	})
}

// DeleteProduct は商品を削除する。無ければ repo.ErrNotFound。
func (u *CatalogUsecase) DeleteProduct(ctx context.Context, productID int64) error {
	if productID <= 0 {
		return fmt.Errorf("%w: invalid product id", ErrValidation)
	}
	return u.productRepo.Delete(ctx, productID)
}
