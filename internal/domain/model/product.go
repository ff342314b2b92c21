package model

import "time"

// 商品は作成後に更新しない（削除→再登録のみ）
type Product struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Price       int64     `gorm:"not null" json:"price"`
	Description string    `gorm:"type:text" json:"description"`
	PhotoFileID string    `gorm:"type:varchar(255)" json:"photo_file_id"`
	CreatedAt   time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}
