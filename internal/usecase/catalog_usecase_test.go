package usecase_test

import (
	"context"
	"testing"

	"shopbot/internal/domain/model"
	repo "shopbot/internal/repository"
	"shopbot/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// =====================
// Mocks（衝突回避の命名）
// =====================

type CatProductRepoMock struct{ mock.Mock }

func (m *CatProductRepoMock) List(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Error(1)
}

func (m *CatProductRepoMock) FindByID(ctx context.Context, id int64) (model.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *CatProductRepoMock) Create(ctx context.Context, p model.Product) (model.Product, error) {
	args := m.Called(ctx, p)
	created, _ := args.Get(0).(model.Product)
	return created, args.Error(1)
}

func (m *CatProductRepoMock) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestCatalogUsecase_ListProducts(t *testing.T) {
	ctx := context.Background()

	pRepo := new(CatProductRepoMock)
	uc := usecase.NewCatalogUsecase(pRepo)

	items := []model.Product{
		{ID: 2, Name: "B", Price: 200},
		{ID: 1, Name: "A", Price: 100},
	}
	pRepo.On("List", mock.Anything).Return(items, nil)

	out, err := uc.ListProducts(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 2, len(out))
	// 新しい順のまま返す
	assert.Equal(t, int64(2), out[0].ID)

	pRepo.AssertExpectations(t)
}

func TestCatalogUsecase_GetProduct_NotFound(t *testing.T) {
	ctx := context.Background()

	pRepo := new(CatProductRepoMock)
	uc := usecase.NewCatalogUsecase(pRepo)

	pRepo.On("FindByID", mock.Anything, int64(99)).Return(model.Product{}, repo.ErrNotFound)

	_, err := uc.GetProduct(ctx, 99)
	assert.ErrorIs(t, err, repo.ErrNotFound)
}

func TestCatalogUsecase_AddProduct_Validation(t *testing.T) {
	uc := usecase.NewCatalogUsecase(new(CatProductRepoMock))

	_, err := uc.AddProduct(context.Background(), usecase.AddProductInput{Name: "  ", Price: 100})
	assert.ErrorIs(t, err, usecase.ErrValidation)

	_, err = uc.AddProduct(context.Background(), usecase.AddProductInput{Name: "X", Price: -1})
	assert.ErrorIs(t, err, usecase.ErrValidation)
}

func TestCatalogUsecase_AddProduct_Success(t *testing.T) {
	ctx := context.Background()

	pRepo := new(CatProductRepoMock)
	uc := usecase.NewCatalogUsecase(pRepo)

	pRepo.On("Create", mock.Anything, mock.MatchedBy(func(p model.Product) bool {
		return p.Name == "Widget" && p.Price == 1500 && p.Description == "blue"
	})).Return(model.Product{ID: 7, Name: "Widget", Price: 1500, Description: "blue"}, nil)

	p, err := uc.AddProduct(ctx, usecase.AddProductInput{
		Name:        " Widget ",
		Price:       1500,
		Description: "blue",
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(7), p.ID)

	pRepo.AssertExpectations(t)
}

func TestCatalogUsecase_DeleteProduct_NotFound(t *testing.T) {
	ctx := context.Background()

	pRepo := new(CatProductRepoMock)
	uc := usecase.NewCatalogUsecase(pRepo)

	pRepo.On("Delete", mock.Anything, int64(99)).Return(repo.ErrNotFound)

	err := uc.DeleteProduct(ctx, 99)
	assert.ErrorIs(t, err, repo.ErrNotFound)
}

func TestCatalogUsecase_DeleteProduct_Success(t *testing.T) {
	ctx := context.Background()

	pRepo := new(CatProductRepoMock)
	uc := usecase.NewCatalogUsecase(pRepo)

	pRepo.On("Delete", mock.Anything, int64(1)).Return(nil)

	assert.NoError(t, uc.DeleteProduct(ctx, 1))
	pRepo.AssertExpectations(t)
}
