package repository

import (
	"context"

	"shopbot/internal/domain/model"
)

type OrderRepository interface {
	FindByID(ctx context.Context, orderID int64) (model.Order, error)
	Create(ctx context.Context, order model.Order) (int64, error)
	UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error
	AttachReceipt(ctx context.Context, orderID int64, receiptFileID string) error
	SetAddress(ctx context.Context, orderID int64, address string) error

	// 検索（同じキーなら同じ結果を返す）
	FindByIdempotencyKey(ctx context.Context, userID int64, key string) (model.Order, bool, error)
}

type OrderItemRepository interface {
	ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderItem, error)
	CreateBulk(ctx context.Context, orderID int64, items []model.OrderItem) error
}
