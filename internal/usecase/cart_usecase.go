package usecase

import (
	"context"
	"fmt"

	repo "shopbot/internal/repository"
)

// CartUsecase はカートの業務ロジックです。
// 表示価格は常に現在のカタログ価格（確定時にだけスナップショットする）。
type CartUsecase struct {
	cartRepo    repo.CartRepository
	productRepo repo.ProductRepository
}

// DI
func NewCartUsecase(cartRepo repo.CartRepository, productRepo repo.ProductRepository) *CartUsecase {
	return &CartUsecase{cartRepo: cartRepo, productRepo: productRepo}
}

type CartLine struct {
	ProductID int64  `json:"product_id"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Quantity  int64  `json:"quantity"`
}

type CartView struct {
	Lines []CartLine `json:"lines"`
	Total int64      `json:"total"`
}

func (v CartView) Empty() bool {
	return len(v.Lines) == 0
}

// AddToCart はカートに追加（同一商品は数量加算）。
// 存在しない商品は repo.ErrNotFound。
func (u *CartUsecase) AddToCart(ctx context.Context, userID int64, productID int64, qty int64) (CartView, error) {
	if productID <= 0 {
		return CartView{}, fmt.Errorf("%w: invalid product id", ErrValidation)
	}
	if qty < 1 {
		return CartView{}, fmt.Errorf("%w: invalid quantity", ErrValidation)
	}

	// 商品チェック
	if _, err := u.productRepo.FindByID(ctx, productID); err != nil {
		return CartView{}, err
	}

	if err := u.cartRepo.UpsertByUserAndProduct(ctx, userID, productID, qty); err != nil {
		return CartView{}, err
	}

	return u.GetCart(ctx, userID)
}

// GetCart は現在のカタログとJOINしたカートを返す。
// 削除済み商品の明細は表示から外す。
func (u *CartUsecase) GetCart(ctx context.Context, userID int64) (CartView, error) {
	items, err := u.cartRepo.ListByUserID(ctx, userID)
	if err != nil {
		return CartView{}, err
	}

	lines := make([]CartLine, 0, len(items))
	var total int64 = 0

	for _, it := range items {
		p, err := u.productRepo.FindByID(ctx, it.ProductID)
		if err == repo.ErrNotFound {
			continue
		}
		if err != nil {
			return CartView{}, err
		}

		lines = append(lines, CartLine{
			ProductID: it.ProductID,
			Name:      p.Name,
			Price:     p.Price,
			Quantity:  it.Quantity,
		})

		total += p.Price * it.Quantity
	}

	return CartView{Lines: lines, Total: total}, nil
}

// ClearCart は明細を全削除（空でも成功）。
func (u *CartUsecase) ClearCart(ctx context.Context, userID int64) error {
	return u.cartRepo.Clear(ctx, userID)
}
