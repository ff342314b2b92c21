package model

import "time"

type OrderStatus string

const (
	// 電子決済：レシート待ち
	OrderStatusPendingReceipt OrderStatus = "PENDING_RECEIPT"
	// 電子決済：レシート受領済み
	OrderStatusPaid OrderStatus = "PAID"
	// 代引き：確定（終端）
	OrderStatusPlaced OrderStatus = "PLACED"
)

type PaymentMethod string

const (
	PaymentMethodElectronic PaymentMethod = "ELECTRONIC"
	PaymentMethodCOD        PaymentMethod = "COD"
)

// 注文。Totalは作成時に確定し、以後再計算しない。
type Order struct {
	ID             int64         `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID         int64         `gorm:"not null;index" json:"user_id"`
	Status         OrderStatus   `gorm:"type:varchar(20);not null;index" json:"status"`
	Method         PaymentMethod `gorm:"type:varchar(20);not null" json:"method"`
	Total          int64         `gorm:"not null" json:"total"`
	IdempotencyKey string        `gorm:"type:varchar(255);not null;uniqueIndex" json:"-"`
	ReceiptFileID  string        `gorm:"type:varchar(255)" json:"receipt_file_id"`
	Address        string        `gorm:"type:text" json:"address"`
	CreatedAt      time.Time     `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time     `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
