package usecase_test

import (
	"context"
	"testing"
	"time"

	"shopbot/internal/domain/model"
	repo "shopbot/internal/repository"
	"shopbot/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// =====================
// Mocks
// =====================

type CoOrderRepoMock struct{ mock.Mock }

func (m *CoOrderRepoMock) FindByID(ctx context.Context, orderID int64) (model.Order, error) {
	args := m.Called(ctx, orderID)
	o, _ := args.Get(0).(model.Order)
	return o, args.Error(1)
}

func (m *CoOrderRepoMock) Create(ctx context.Context, order model.Order) (int64, error) {
	args := m.Called(ctx, order)
	return args.Get(0).(int64), args.Error(1)
}

func (m *CoOrderRepoMock) UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error {
	args := m.Called(ctx, orderID, status)
	return args.Error(0)
}

func (m *CoOrderRepoMock) AttachReceipt(ctx context.Context, orderID int64, receiptFileID string) error {
	args := m.Called(ctx, orderID, receiptFileID)
	return args.Error(0)
}

func (m *CoOrderRepoMock) SetAddress(ctx context.Context, orderID int64, address string) error {
	args := m.Called(ctx, orderID, address)
	return args.Error(0)
}

func (m *CoOrderRepoMock) FindByIdempotencyKey(ctx context.Context, userID int64, key string) (model.Order, bool, error) {
	args := m.Called(ctx, userID, key)
	o, _ := args.Get(0).(model.Order)
	return o, args.Bool(1), args.Error(2)
}

type CoOrderItemRepoMock struct{ mock.Mock }

func (m *CoOrderItemRepoMock) ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderItem, error) {
	args := m.Called(ctx, orderID)
	items, _ := args.Get(0).([]model.OrderItem)
	return items, args.Error(1)
}

func (m *CoOrderItemRepoMock) CreateBulk(ctx context.Context, orderID int64, items []model.OrderItem) error {
	args := m.Called(ctx, orderID, items)
	return args.Error(0)
}

// txは素通しにしてrepoモックで検証する
type txReposStub struct {
	orders     *CoOrderRepoMock
	orderItems *CoOrderItemRepoMock
	carts      *CartRepoMock
	products   *CatProductRepoMock
}

func (r *txReposStub) Orders() repo.OrderRepository         { return r.orders }
func (r *txReposStub) OrderItems() repo.OrderItemRepository { return r.orderItems }
func (r *txReposStub) Carts() repo.CartRepository           { return r.carts }
func (r *txReposStub) Products() repo.ProductRepository     { return r.products }

type txManagerStub struct{ repos *txReposStub }

func (m *txManagerStub) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return fn(m.repos)
}

type fixedIDGen struct{ id string }

func (g *fixedIDGen) NewID() string { return g.id }

type fixedClock struct{ t time.Time }

func (c *fixedClock) Now() time.Time { return c.t }

func newCheckoutFixture() (*usecase.CheckoutUsecase, *txReposStub) {
	repos := &txReposStub{
		orders:     new(CoOrderRepoMock),
		orderItems: new(CoOrderItemRepoMock),
		carts:      new(CartRepoMock),
		products:   new(CatProductRepoMock),
	}
	uc := usecase.NewCheckoutUsecase(
		&txManagerStub{repos: repos},
		repos.carts,
		repos.products,
		&fixedIDGen{id: "key-1"},
		&fixedClock{t: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)},
	)
	return uc, repos
}

// =====================
// BeginCheckout
// =====================

func TestCheckoutUsecase_BeginCheckout_EmptyCart(t *testing.T) {
	uc, repos := newCheckoutFixture()

	repos.carts.On("ListByUserID", mock.Anything, int64(1)).Return([]model.CartItem{}, nil)

	_, _, err := uc.BeginCheckout(context.Background(), 1)
	assert.ErrorIs(t, err, usecase.ErrEmptyCart)
}

func TestCheckoutUsecase_BeginCheckout_ReturnsViewAndKey(t *testing.T) {
	uc, repos := newCheckoutFixture()

	repos.carts.On("ListByUserID", mock.Anything, int64(1)).Return([]model.CartItem{
		{UserID: 1, ProductID: 10, Quantity: 2},
	}, nil)
	repos.products.On("FindByID", mock.Anything, int64(10)).Return(model.Product{ID: 10, Name: "A", Price: 750}, nil)

	view, key, err := uc.BeginCheckout(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, "key-1", key)
	assert.Equal(t, int64(1500), view.Total)
}

// =====================
// Checkout
// =====================

func TestCheckoutUsecase_Checkout_EmptyCart_CreatesNothing(t *testing.T) {
	uc, repos := newCheckoutFixture()

	repos.orders.On("FindByIdempotencyKey", mock.Anything, int64(1), "k").Return(model.Order{}, false, nil)
	repos.carts.On("ListByUserID", mock.Anything, int64(1)).Return([]model.CartItem{}, nil)

	_, err := uc.Checkout(context.Background(), 1, model.PaymentMethodCOD, "k")
	assert.ErrorIs(t, err, usecase.ErrEmptyCart)

	repos.orders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	repos.carts.AssertNotCalled(t, "Clear", mock.Anything, mock.Anything)
}

func TestCheckoutUsecase_Checkout_COD_PlacesOrderAndClearsCart(t *testing.T) {
	uc, repos := newCheckoutFixture()

	repos.orders.On("FindByIdempotencyKey", mock.Anything, int64(1), "k").Return(model.Order{}, false, nil)
	repos.carts.On("ListByUserID", mock.Anything, int64(1)).Return([]model.CartItem{
		{UserID: 1, ProductID: 10, Quantity: 2},
		{UserID: 1, ProductID: 11, Quantity: 1},
	}, nil)
	repos.products.On("FindByID", mock.Anything, int64(10)).Return(model.Product{ID: 10, Name: "A", Price: 500}, nil)
	repos.products.On("FindByID", mock.Anything, int64(11)).Return(model.Product{ID: 11, Name: "B", Price: 250}, nil)

	repos.orders.On("Create", mock.Anything, mock.MatchedBy(func(o model.Order) bool {
		return o.UserID == 1 &&
			o.Status == model.OrderStatusPlaced &&
			o.Method == model.PaymentMethodCOD &&
			o.Total == 1250 &&
			o.IdempotencyKey == "k"
	})).Return(int64(77), nil)
	repos.orderItems.On("CreateBulk", mock.Anything, int64(77), mock.MatchedBy(func(items []model.OrderItem) bool {
		return len(items) == 2 &&
			items[0].ProductNameSnapshot == "A" && items[0].UnitPriceSnapshot == 500 &&
			items[1].ProductNameSnapshot == "B" && items[1].UnitPriceSnapshot == 250
	})).Return(nil)
	repos.carts.On("Clear", mock.Anything, int64(1)).Return(nil)

	out, err := uc.Checkout(context.Background(), 1, model.PaymentMethodCOD, "k")
	assert.NoError(t, err)
	assert.Equal(t, int64(77), out.ID)
	assert.Equal(t, "PLACED", out.Status)
	assert.Equal(t, int64(1250), out.Total)
	assert.Equal(t, 2, len(out.Items))

	repos.orders.AssertExpectations(t)
	repos.orderItems.AssertExpectations(t)
	repos.carts.AssertExpectations(t)
}

func TestCheckoutUsecase_Checkout_Electronic_KeepsCart(t *testing.T) {
	uc, repos := newCheckoutFixture()

	repos.orders.On("FindByIdempotencyKey", mock.Anything, int64(1), "k").Return(model.Order{}, false, nil)
	repos.carts.On("ListByUserID", mock.Anything, int64(1)).Return([]model.CartItem{
		{UserID: 1, ProductID: 10, Quantity: 1},
	}, nil)
	repos.products.On("FindByID", mock.Anything, int64(10)).Return(model.Product{ID: 10, Name: "A", Price: 900}, nil)

	repos.orders.On("Create", mock.Anything, mock.MatchedBy(func(o model.Order) bool {
		return o.Status == model.OrderStatusPendingReceipt && o.Method == model.PaymentMethodElectronic
	})).Return(int64(78), nil)
	repos.orderItems.On("CreateBulk", mock.Anything, int64(78), mock.Anything).Return(nil)

	out, err := uc.Checkout(context.Background(), 1, model.PaymentMethodElectronic, "k")
	assert.NoError(t, err)
	assert.Equal(t, "PENDING_RECEIPT", out.Status)

	// レシート受領までカートは残す
	repos.carts.AssertNotCalled(t, "Clear", mock.Anything, mock.Anything)
}

// 同じキーの二重押しは同じ注文を返す
func TestCheckoutUsecase_Checkout_IdempotentReplay(t *testing.T) {
	uc, repos := newCheckoutFixture()

	existing := model.Order{
		ID:     77,
		UserID: 1,
		Status: model.OrderStatusPlaced,
		Method: model.PaymentMethodCOD,
		Total:  1250,
	}
	repos.orders.On("FindByIdempotencyKey", mock.Anything, int64(1), "k").Return(existing, true, nil)
	repos.orderItems.On("ListByOrderID", mock.Anything, int64(77)).Return([]model.OrderItem{
		{OrderID: 77, ProductNameSnapshot: "A", UnitPriceSnapshot: 500, Quantity: 2},
	}, nil)

	out, err := uc.Checkout(context.Background(), 1, model.PaymentMethodCOD, "k")
	assert.NoError(t, err)
	assert.Equal(t, int64(77), out.ID)
	assert.Equal(t, int64(1250), out.Total)

	repos.orders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	repos.carts.AssertNotCalled(t, "Clear", mock.Anything, mock.Anything)
}

func TestCheckoutUsecase_Checkout_InvalidInput(t *testing.T) {
	uc, _ := newCheckoutFixture()

	_, err := uc.Checkout(context.Background(), 1, model.PaymentMethodCOD, "  ")
	assert.ErrorIs(t, err, usecase.ErrValidation)

	_, err = uc.Checkout(context.Background(), 1, model.PaymentMethod("CARD"), "k")
	assert.ErrorIs(t, err, usecase.ErrValidation)
}

// =====================
// AttachReceipt
// =====================

func TestCheckoutUsecase_AttachReceipt_Success(t *testing.T) {
	uc, repos := newCheckoutFixture()

	repos.orders.On("FindByID", mock.Anything, int64(78)).Return(model.Order{
		ID:     78,
		UserID: 1,
		Status: model.OrderStatusPendingReceipt,
		Method: model.PaymentMethodElectronic,
		Total:  900,
	}, nil)
	repos.orders.On("UpdateStatus", mock.Anything, int64(78), model.OrderStatusPaid).Return(nil)
	repos.orders.On("AttachReceipt", mock.Anything, int64(78), "file-1").Return(nil)
	repos.orders.On("SetAddress", mock.Anything, int64(78), "Baghdad 0770").Return(nil)
	repos.carts.On("Clear", mock.Anything, int64(1)).Return(nil)
	repos.orderItems.On("ListByOrderID", mock.Anything, int64(78)).Return([]model.OrderItem{
		{OrderID: 78, ProductNameSnapshot: "A", UnitPriceSnapshot: 900, Quantity: 1},
	}, nil)

	out, err := uc.AttachReceipt(context.Background(), 1, 78, "file-1", "Baghdad 0770")
	assert.NoError(t, err)
	assert.Equal(t, "PAID", out.Status)
	assert.Equal(t, "Baghdad 0770", out.Address)

	repos.orders.AssertExpectations(t)
	repos.carts.AssertExpectations(t)
}

func TestCheckoutUsecase_AttachReceipt_NoCaption_SkipsAddress(t *testing.T) {
	uc, repos := newCheckoutFixture()

	repos.orders.On("FindByID", mock.Anything, int64(78)).Return(model.Order{
		ID: 78, UserID: 1, Status: model.OrderStatusPendingReceipt,
	}, nil)
	repos.orders.On("UpdateStatus", mock.Anything, int64(78), model.OrderStatusPaid).Return(nil)
	repos.orders.On("AttachReceipt", mock.Anything, int64(78), "file-1").Return(nil)
	repos.carts.On("Clear", mock.Anything, int64(1)).Return(nil)
	repos.orderItems.On("ListByOrderID", mock.Anything, int64(78)).Return([]model.OrderItem{}, nil)

	_, err := uc.AttachReceipt(context.Background(), 1, 78, "file-1", "  ")
	assert.NoError(t, err)

	repos.orders.AssertNotCalled(t, "SetAddress", mock.Anything, mock.Anything, mock.Anything)
}

// 既にPAIDの注文には何もしない
func TestCheckoutUsecase_AttachReceipt_AlreadyPaid(t *testing.T) {
	uc, repos := newCheckoutFixture()

	repos.orders.On("FindByID", mock.Anything, int64(78)).Return(model.Order{
		ID: 78, UserID: 1, Status: model.OrderStatusPaid,
	}, nil)

	_, err := uc.AttachReceipt(context.Background(), 1, 78, "file-2", "")
	assert.ErrorIs(t, err, usecase.ErrOrderState)

	repos.orders.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	repos.carts.AssertNotCalled(t, "Clear", mock.Anything, mock.Anything)
}

// 他人の注文は「存在しない扱い」
func TestCheckoutUsecase_AttachReceipt_ForeignOrder(t *testing.T) {
	uc, repos := newCheckoutFixture()

	repos.orders.On("FindByID", mock.Anything, int64(78)).Return(model.Order{
		ID: 78, UserID: 2, Status: model.OrderStatusPendingReceipt,
	}, nil)

	_, err := uc.AttachReceipt(context.Background(), 1, 78, "file-1", "")
	assert.ErrorIs(t, err, repo.ErrNotFound)
}

// =====================
// SetAddress
// =====================

func TestCheckoutUsecase_SetAddress_Success(t *testing.T) {
	uc, repos := newCheckoutFixture()

	repos.orders.On("FindByID", mock.Anything, int64(77)).Return(model.Order{ID: 77, UserID: 1}, nil)
	repos.orders.On("SetAddress", mock.Anything, int64(77), "Basra 0780").Return(nil)

	assert.NoError(t, uc.SetAddress(context.Background(), 1, 77, " Basra 0780 "))
	repos.orders.AssertExpectations(t)
}

func TestCheckoutUsecase_SetAddress_ForeignOrder(t *testing.T) {
	uc, repos := newCheckoutFixture()

	repos.orders.On("FindByID", mock.Anything, int64(77)).Return(model.Order{ID: 77, UserID: 2}, nil)

	err := uc.SetAddress(context.Background(), 1, 77, "X")
	assert.ErrorIs(t, err, repo.ErrNotFound)
}

func TestCheckoutUsecase_SetAddress_Empty(t *testing.T) {
	uc, _ := newCheckoutFixture()

	err := uc.SetAddress(context.Background(), 1, 77, "   ")
	assert.ErrorIs(t, err, usecase.ErrValidation)
}
