package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"shopbot/internal/domain/model"
	repo "shopbot/internal/repository"
)

// チェックアウトキーの発行
type IDGenerator interface {
	NewID() string
}

type Clock interface {
	Now() time.Time
}

// CheckoutUsecase は注文確定とレシート受領の業務ロジックです。
// 注文作成・明細スナップショット・カート削除は1トランザクションで行う。
type CheckoutUsecase struct {
	tx          repo.TransactionManager
	cartRepo    repo.CartRepository
	productRepo repo.ProductRepository
	idGen       IDGenerator
	clock       Clock
}

// DI
func NewCheckoutUsecase(
	tx repo.TransactionManager,
	cartRepo repo.CartRepository,
	productRepo repo.ProductRepository,
	idGen IDGenerator,
	clock Clock,
) *CheckoutUsecase {
	return &CheckoutUsecase{
		tx:          tx,
		cartRepo:    cartRepo,
		productRepo: productRepo,
		idGen:       idGen,
		clock:       clock,
	}
}

type OrderItemOutput struct {
	ProductID int64  `json:"product_id"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Quantity  int64  `json:"quantity"`
}

type OrderOutput struct {
	ID        int64             `json:"id"`
	UserID    int64             `json:"user_id"`
	Status    string            `json:"status"`
	Method    string            `json:"method"`
	Total     int64             `json:"total"`
	Address   string            `json:"address"`
	CreatedAt time.Time         `json:"created_at"`
	Items     []OrderItemOutput `json:"items"`
}

// BeginCheckout はカートを確認し、支払い方法プロンプト用のキーを発行する。
// 空カートは ErrEmptyCart。状態は何も変えない。
func (u *CheckoutUsecase) BeginCheckout(ctx context.Context, userID int64) (CartView, string, error) {
	view, err := NewCartUsecase(u.cartRepo, u.productRepo).GetCart(ctx, userID)
	if err != nil {
		return CartView{}, "", err
	}
	if view.Empty() {
		return CartView{}, "", ErrEmptyCart
	}
	return view, u.idGen.NewID(), nil
}

// Checkout は注文を確定する。
// 同じキーの二重押しは作成済みの注文をそのまま返す。
// 代引きは PLACED で作成してカートを空にする。
// 電子決済は PENDING_RECEIPT で作成し、カートはレシート受領まで残す。
func (u *CheckoutUsecase) Checkout(ctx context.Context, userID int64, method model.PaymentMethod, key string) (OrderOutput, error) {
	key = strings.TrimSpace(key)
	if key == "" || len(key) > 255 {
		return OrderOutput{}, fmt.Errorf("%w: invalid checkout key", ErrValidation)
	}
	if method != model.PaymentMethodElectronic && method != model.PaymentMethodCOD {
		return OrderOutput{}, fmt.Errorf("%w: invalid payment method", ErrValidation)
	}

	var out OrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		// 同じキーなら同じ結果
		existing, found, err := r.Orders().FindByIdempotencyKey(ctx, userID, key)
		if err != nil {
			return err
		}
		if found {
			items, err := r.OrderItems().ListByOrderID(ctx, existing.ID)
			if err != nil {
				return err
			}
			out = toOrderOutput(existing, items)
			return nil
		}

		cartItems, err := r.Carts().ListByUserID(ctx, userID)
		if err != nil {
			return err
		}

		// スナップショット作成（消えた商品は落とす）
		now := u.clock.Now()
		orderItems := make([]model.OrderItem, 0, len(cartItems))
		var total int64 = 0

		for _, ci := range cartItems {
			p, err := r.Products().FindByID(ctx, ci.ProductID)
			if err == repo.ErrNotFound {
				continue
			}
			if err != nil {
				return err
			}

			orderItems = append(orderItems, model.OrderItem{
				ProductID:           ci.ProductID,
				ProductNameSnapshot: p.Name,
				UnitPriceSnapshot:   p.Price,
				Quantity:            ci.Quantity,
				CreatedAt:           now,
			})

			total += p.Price * ci.Quantity
		}

		if len(orderItems) == 0 {
			return ErrEmptyCart
		}

		status := model.OrderStatusPendingReceipt
		if method == model.PaymentMethodCOD {
			status = model.OrderStatusPlaced
		}

		orderID, err := r.Orders().Create(ctx, model.Order{
			UserID:         userID,
			Status:         status,
			Method:         method,
			Total:          total,
			IdempotencyKey: key,
			CreatedAt:      now,
			UpdatedAt:      now,
		})
		if err != nil {
			// 競合（同時に同じキーが入った等）はもう一回検索して同じ結果を返す
			ex2, found2, err2 := r.Orders().FindByIdempotencyKey(ctx, userID, key)
			if err2 == nil && found2 {
				items2, err3 := r.OrderItems().ListByOrderID(ctx, ex2.ID)
				if err3 != nil {
					return err3
				}
				out = toOrderOutput(ex2, items2)
				return nil
			}
			return err
		}

		if err := r.OrderItems().CreateBulk(ctx, orderID, orderItems); err != nil {
			return err
		}

		// 代引きは即確定なのでカートを空にする
		if method == model.PaymentMethodCOD {
			if err := r.Carts().Clear(ctx, userID); err != nil {
				return err
			}
		}

		created := model.Order{
			ID:        orderID,
			UserID:    userID,
			Status:    status,
			Method:    method,
			Total:     total,
			CreatedAt: now,
		}
		out = toOrderOutput(created, orderItems)
		return nil
	})

	if err != nil {
		return OrderOutput{}, err
	}
	return out, nil
}

// AttachReceipt はレシート画像で PENDING_RECEIPT → PAID に進める。
// 画像の参照とキャプション（住所）を保存し、カートを空にする。
// 他人の注文は「存在しない扱い」にする。
func (u *CheckoutUsecase) AttachReceipt(ctx context.Context, userID int64, orderID int64, receiptFileID string, caption string) (OrderOutput, error) {
	if orderID <= 0 {
		return OrderOutput{}, fmt.Errorf("%w: invalid order id", ErrValidation)
	}
	if strings.TrimSpace(receiptFileID) == "" {
		return OrderOutput{}, fmt.Errorf("%w: receipt file id required", ErrValidation)
	}

	var out OrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindByID(ctx, orderID)
		if err != nil {
			return err
		}
		if o.UserID != userID {
			return repo.ErrNotFound
		}
		if o.Status != model.OrderStatusPendingReceipt {
			return ErrOrderState
		}

		if err := r.Orders().UpdateStatus(ctx, orderID, model.OrderStatusPaid); err != nil {
			return err
		}
		if err := r.Orders().AttachReceipt(ctx, orderID, receiptFileID); err != nil {
			return err
		}

		caption = strings.TrimSpace(caption)
		if caption != "" {
			if err := r.Orders().SetAddress(ctx, orderID, caption); err != nil {
				return err
			}
			o.Address = caption
		}

		if err := r.Carts().Clear(ctx, userID); err != nil {
			return err
		}

		items, err := r.OrderItems().ListByOrderID(ctx, orderID)
		if err != nil {
			return err
		}

		o.Status = model.OrderStatusPaid
		o.ReceiptFileID = receiptFileID
		out = toOrderOutput(o, items)
		return nil
	})

	if err != nil {
		return OrderOutput{}, err
	}
	return out, nil
}

// SetAddress は注文の住所・連絡先テキストを更新する。
func (u *CheckoutUsecase) SetAddress(ctx context.Context, userID int64, orderID int64, address string) error {
	if orderID <= 0 {
		return fmt.Errorf("%w: invalid order id", ErrValidation)
	}
	address = strings.TrimSpace(address)
	if address == "" {
		return fmt.Errorf("%w: address required", ErrValidation)
	}

	return u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindByID(ctx, orderID)
		if err != nil {
			return err
		}
		if o.UserID != userID {
			return repo.ErrNotFound
		}
		return r.Orders().SetAddress(ctx, orderID, address)
	})
}

func toOrderOutput(o model.Order, items []model.OrderItem) OrderOutput {
	outItems := make([]OrderItemOutput, 0, len(items))
	for _, it := range items {
		outItems = append(outItems, OrderItemOutput{
			ProductID: it.ProductID,
			Name:      it.ProductNameSnapshot,
			Price:     it.UnitPriceSnapshot,
			Quantity:  it.Quantity,
		})
	}

	return OrderOutput{
		ID:        o.ID,
		UserID:    o.UserID,
		Status:    string(o.Status),
		Method:    string(o.Method),
		Total:     o.Total,
		Address:   o.Address,
		CreatedAt: o.CreatedAt,
		Items:     outItems,
	}
}
