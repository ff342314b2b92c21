package usecase

import "errors"

var (
	// 入力不正
	ErrValidation = errors.New("validation error")
	// カートが空
	ErrEmptyCart = errors.New("cart empty")
	// レシート待ちではない注文への操作
	ErrOrderState = errors.New("order not awaiting receipt")
)
