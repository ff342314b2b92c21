package repository

import (
	"context"

	"shopbot/internal/domain/model"
)

type CartRepository interface {
	ListByUserID(ctx context.Context, userID int64) ([]model.CartItem, error)
	// 同一商品は数量加算
	UpsertByUserAndProduct(ctx context.Context, userID int64, productID int64, addQty int64) error
	Clear(ctx context.Context, userID int64) error
}
