package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/application/usecase"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

var fixedNow = time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

func fact(product, variant string, qty int, price, cost string, at time.Time) entity.LineItemFact {
	return entity.LineItemFact{
		VariantID:      variant,
		ProductID:      product,
		ProductName:    "Producto " + product,
		Size:           "M",
		Color:          "azul",
		Quantity:       qty,
		UnitPricePaid:  decimal.RequireFromString(price),
		UnitCost:       decimal.RequireFromString(cost),
		OrderCreatedAt: at,
	}
}

func salesFacts() []entity.LineItemFact {
	return []entity.LineItemFact{
		fact("p1", "v1", 2, "10", "4", time.Date(2025, 5, 2, 0, 0, 0, 0, time.UTC)),
		fact("p1", "v2", 1, "20", "8", time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)),
		fact("p2", "v3", 5, "3", "1", time.Date(2025, 5, 20, 0, 0, 0, 0, time.UTC)),
	}
}

func TestAnalyticsUseCase_GetProductSalesStats_UsaPeriodoResuelto(t *testing.T) {
	repo := new(mockFactsRepo)
	repo.On("ListLineItems", mock.Anything,
		time.Date(2025, 5, 15, 0, 0, 0, 0, time.UTC), fixedNow,
	).Return(salesFacts(), nil).Once()

	uc := usecase.NewAnalyticsUseCaseWithClock(repo, clock)
	out, err := uc.GetProductSalesStats(context.Background(), "p1", "month")

	require.NoError(t, err)
	assert.Equal(t, 3, out.UnitsSold)
	assert.True(t, decimal.NewFromInt(40).Equal(out.TotalRevenue))
	require.Len(t, out.TopVariants, 2)
	assert.Equal(t, "v1", out.TopVariants[0].VariantID)
	assert.Equal(t, "2025-05-15T00:00:00Z", out.Period.StartDate)
	assert.Equal(t, "2025-06-15T00:00:00Z", out.Period.EndDate)
	repo.AssertExpectations(t)
}

func TestAnalyticsUseCase_GetProductSalesStats_ErrorRepositorio(t *testing.T) {
	repo := new(mockFactsRepo)
	boom := errors.New("conexión perdida")
	repo.On("ListLineItems", mock.Anything, mock.Anything, mock.Anything).Return(nil, boom)

	uc := usecase.NewAnalyticsUseCaseWithClock(repo, clock)
	out, err := uc.GetProductSalesStats(context.Background(), "p1", "")

	assert.Nil(t, out)
	assert.ErrorIs(t, err, boom)
}

func TestAnalyticsUseCase_GetTopSellingProducts_NPorDefectoYTope(t *testing.T) {
	repo := new(mockFactsRepo)
	repo.On("ListLineItems", mock.Anything, mock.Anything, mock.Anything).Return(salesFacts(), nil)
	uc := usecase.NewAnalyticsUseCaseWithClock(repo, clock)

	tests := []struct {
		name string
		n    int
		want []string
	}{
		{"n cero usa default", 0, []string{"p2", "p1"}},
		{"n negativo usa default", -3, []string{"p2", "p1"}},
		{"n=1", 1, []string{"p2"}},
		{"n enorme se limita", 10_000, []string{"p2", "p1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := uc.GetTopSellingProducts(context.Background(), "year", tt.n)
			require.NoError(t, err)
			got := make([]string, 0, len(out))
			for _, p := range out {
				got = append(got, p.ProductID)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAnalyticsUseCase_GetMonthlyRevenue(t *testing.T) {
	repo := new(mockFactsRepo)
	repo.On("ListLineItems", mock.Anything, mock.Anything, mock.Anything).Return(salesFacts(), nil)
	uc := usecase.NewAnalyticsUseCaseWithClock(repo, clock)

	out, err := uc.GetMonthlyRevenue(context.Background(), "year")

	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, 5, out[0].Month)
	assert.True(t, decimal.NewFromInt(35).Equal(out[0].Revenue)) // 2*10 + 5*3
	assert.Equal(t, 6, out[1].Month)
	assert.True(t, decimal.NewFromInt(20).Equal(out[1].Revenue))
}

func TestAnalyticsUseCase_GetMonthlyGrossProfit(t *testing.T) {
	repo := new(mockFactsRepo)
	repo.On("ListLineItems", mock.Anything, mock.Anything, mock.Anything).Return(salesFacts(), nil)
	uc := usecase.NewAnalyticsUseCaseWithClock(repo, clock)

	out, err := uc.GetMonthlyGrossProfit(context.Background(), "")

	require.NoError(t, err)
	require.Len(t, out, 2)
	may := out[0]
	assert.True(t, decimal.NewFromInt(35).Equal(may.Revenue))
	assert.True(t, decimal.NewFromInt(13).Equal(may.Cost)) // 2*4 + 5*1
	assert.True(t, decimal.NewFromInt(22).Equal(may.GrossProfit))
}

func TestAnalyticsUseCase_GetProductAnalytics(t *testing.T) {
	repo := new(mockFactsRepo)
	repo.On("ListLineItems", mock.Anything,
		time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC),
	).Return(salesFacts(), nil)
	uc := usecase.NewAnalyticsUseCaseWithClock(repo, clock)

	out, err := uc.GetProductAnalytics(context.Background(), dto.ProductAnalyticsRequest{
		ProductIDs: []string{"p1"},
		Period:     "2025-01-01_to_2025-12-31",
	})

	require.NoError(t, err)
	require.Len(t, out, 1)
	g := out[0]
	assert.Equal(t, "p1", g.ProductID)
	assert.True(t, decimal.NewFromInt(40).Equal(g.TotalRevenue))
	assert.True(t, decimal.NewFromInt(16).Equal(g.TotalCost))
	assert.True(t, decimal.NewFromInt(24).Equal(g.GrossProfit))
	require.Len(t, g.VariantBreakdown, 2)
	assert.True(t, decimal.NewFromInt(8).Equal(g.VariantBreakdown[0].Price))
	assert.True(t, decimal.NewFromInt(12).Equal(g.VariantBreakdown[0].Profit))
	require.Len(t, g.MonthlyBreakdown, 2)
	assert.True(t, decimal.NewFromInt(12).Equal(g.MonthlyBreakdown[0].GrossProfit))
	repo.AssertExpectations(t)
}

func TestAnalyticsUseCase_GetProductAnalytics_SinIDsNoConsulta(t *testing.T) {
	repo := new(mockFactsRepo)
	uc := usecase.NewAnalyticsUseCaseWithClock(repo, clock)

	out, err := uc.GetProductAnalytics(context.Background(), dto.ProductAnalyticsRequest{})

	require.NoError(t, err)
	assert.NotNil(t, out)
	assert.Empty(t, out)
	repo.AssertNotCalled(t, "ListLineItems", mock.Anything, mock.Anything, mock.Anything)
}

func TestAnalyticsUseCase_GetProductAnalytics_DemasiadosProductos(t *testing.T) {
	repo := new(mockFactsRepo)
	uc := usecase.NewAnalyticsUseCaseWithClock(repo, clock)

	ids := make([]string, 101)
	for i := range ids {
		ids[i] = "p"
	}
	_, err := uc.GetProductAnalytics(context.Background(), dto.ProductAnalyticsRequest{ProductIDs: ids})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	repo.AssertNotCalled(t, "ListLineItems", mock.Anything, mock.Anything, mock.Anything)
}
