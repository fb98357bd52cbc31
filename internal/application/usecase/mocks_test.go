package usecase_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

// mockFactsRepo implementa repository.SalesFactRepository.
type mockFactsRepo struct{ mock.Mock }

func (m *mockFactsRepo) ListLineItems(ctx context.Context, start, end time.Time) ([]entity.LineItemFact, error) {
	args := m.Called(ctx, start, end)
	items, _ := args.Get(0).([]entity.LineItemFact)
	return items, args.Error(1)
}

// mockCatalogRepo implementa repository.CatalogRepository.
type mockCatalogRepo struct{ mock.Mock }

func (m *mockCatalogRepo) GetProduct(ctx context.Context, id string) (*entity.CandidateProduct, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*entity.CandidateProduct)
	return p, args.Error(1)
}

func (m *mockCatalogRepo) ListProducts(ctx context.Context) ([]entity.CandidateProduct, error) {
	args := m.Called(ctx)
	ps, _ := args.Get(0).([]entity.CandidateProduct)
	return ps, args.Error(1)
}

// mockModel implementa ports.RecommenderModel.
type mockModel struct{ mock.Mock }

func (m *mockModel) RecommendVariants(ctx context.Context, userID string, n int) ([]string, error) {
	args := m.Called(ctx, userID, n)
	ids, _ := args.Get(0).([]string)
	return ids, args.Error(1)
}
