package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/analytics"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

const (
	defaultTopN          = 10
	maxTopN              = 200
	maxAnalyticsProducts = 100
)

// AnalyticsUseCase orquesta los reportes de ventas:
//   - resuelve el período con el reloj inyectado.
//   - carga las líneas de pedido del rango desde el repositorio.
//   - delega la agregación al dominio (analytics) y arma los DTOs.
type AnalyticsUseCase struct {
	factsRepo repository.SalesFactRepository
	now       func() time.Time
}

// NewAnalyticsUseCase construye el caso de uso con el reloj del sistema (UTC).
func NewAnalyticsUseCase(factsRepo repository.SalesFactRepository) *AnalyticsUseCase {
	return NewAnalyticsUseCaseWithClock(factsRepo, func() time.Time { return time.Now().UTC() })
}

// NewAnalyticsUseCaseWithClock permite fijar el reloj (tests).
func NewAnalyticsUseCaseWithClock(factsRepo repository.SalesFactRepository, now func() time.Time) *AnalyticsUseCase {
	return &AnalyticsUseCase{factsRepo: factsRepo, now: now}
}

// GetProductSalesStats unidades, ingresos y ranking de variantes de un producto.
func (uc *AnalyticsUseCase) GetProductSalesStats(
	ctx context.Context,
	productID, period string,
) (*dto.ProductSalesStatsDTO, error) {
	rng, items, err := uc.load(ctx, period)
	if err != nil {
		return nil, fmt.Errorf("analytics: ventas de producto: %w", err)
	}

	stats := analytics.ProductSalesStatsFor(items, productID)
	return &dto.ProductSalesStatsDTO{
		Period:       toPeriodDTO(rng),
		UnitsSold:    stats.UnitsSold,
		TotalRevenue: stats.TotalRevenue,
		TopVariants:  toVariantSalesDTOs(stats.TopVariants),
	}, nil
}

// GetTopSellingProducts ranking de productos (no archivados) por unidades vendidas.
// n <= 0 usa el default; se limita a maxTopN.
func (uc *AnalyticsUseCase) GetTopSellingProducts(
	ctx context.Context,
	period string,
	n int,
) ([]dto.TopProductDTO, error) {
	if n <= 0 {
		n = defaultTopN
	}
	if n > maxTopN {
		n = maxTopN
	}

	_, items, err := uc.load(ctx, period)
	if err != nil {
		return nil, fmt.Errorf("analytics: top productos: %w", err)
	}

	top := analytics.TopSellingProducts(items, n)
	out := make([]dto.TopProductDTO, 0, len(top))
	for _, p := range top {
		out = append(out, dto.TopProductDTO{
			ProductID:    p.ProductID,
			ProductName:  p.ProductName,
			UnitsSold:    p.UnitsSold,
			TotalRevenue: p.TotalRevenue,
		})
	}
	return out, nil
}

// GetMonthlyRevenue serie mensual de ingresos.
func (uc *AnalyticsUseCase) GetMonthlyRevenue(ctx context.Context, period string) ([]dto.MonthlyRevenueDTO, error) {
	_, items, err := uc.load(ctx, period)
	if err != nil {
		return nil, fmt.Errorf("analytics: ingresos mensuales: %w", err)
	}

	series := analytics.MonthlyRevenueSeries(items)
	out := make([]dto.MonthlyRevenueDTO, 0, len(series))
	for _, m := range series {
		out = append(out, dto.MonthlyRevenueDTO{Year: m.Year, Month: m.Month, Revenue: m.Revenue})
	}
	return out, nil
}

// GetMonthlyGrossProfit serie mensual de ingresos, costo y utilidad bruta.
func (uc *AnalyticsUseCase) GetMonthlyGrossProfit(ctx context.Context, period string) ([]dto.MonthlyGrossProfitDTO, error) {
	_, items, err := uc.load(ctx, period)
	if err != nil {
		return nil, fmt.Errorf("analytics: utilidad bruta mensual: %w", err)
	}

	series := analytics.MonthlyGrossProfitSeries(items)
	out := make([]dto.MonthlyGrossProfitDTO, 0, len(series))
	for _, m := range series {
		out = append(out, dto.MonthlyGrossProfitDTO{
			Year:        m.Year,
			Month:       m.Month,
			Revenue:     m.Revenue,
			Cost:        m.Cost,
			GrossProfit: m.GrossProfit(),
		})
	}
	return out, nil
}

// GetProductAnalytics desglose por variante y por mes de varios productos (máx. maxAnalyticsProducts).
func (uc *AnalyticsUseCase) GetProductAnalytics(
	ctx context.Context,
	req dto.ProductAnalyticsRequest,
) ([]dto.ProductAnalyticsGroupDTO, error) {
	if len(req.ProductIDs) == 0 {
		return []dto.ProductAnalyticsGroupDTO{}, nil
	}
	if len(req.ProductIDs) > maxAnalyticsProducts {
		return nil, fmt.Errorf("analytics: %w: máximo %d productos por consulta", domain.ErrInvalidInput, maxAnalyticsProducts)
	}

	_, items, err := uc.load(ctx, req.Period)
	if err != nil {
		return nil, fmt.Errorf("analytics: análisis de productos: %w", err)
	}

	groups := analytics.ProductAnalyticsGroups(items, req.ProductIDs)
	out := make([]dto.ProductAnalyticsGroupDTO, 0, len(groups))
	for _, g := range groups {
		monthly := make([]dto.MonthlyBreakdownDTO, 0, len(g.MonthlyBreakdown))
		for _, m := range g.MonthlyBreakdown {
			monthly = append(monthly, dto.MonthlyBreakdownDTO{
				Year:        m.Year,
				Month:       m.Month,
				Revenue:     m.Revenue,
				GrossProfit: m.GrossProfit,
			})
		}
		out = append(out, dto.ProductAnalyticsGroupDTO{
			ProductID:        g.ProductID,
			ProductName:      g.ProductName,
			UnitsSold:        g.UnitsSold,
			TotalRevenue:     g.TotalRevenue,
			TotalCost:        g.TotalCost,
			GrossProfit:      g.GrossProfit(),
			VariantBreakdown: toVariantSalesDTOs(g.VariantBreakdown),
			MonthlyBreakdown: monthly,
		})
	}
	return out, nil
}

// load resuelve el período y trae las líneas del rango.
func (uc *AnalyticsUseCase) load(ctx context.Context, period string) (analytics.PeriodRange, []entity.LineItemFact, error) {
	rng := analytics.ResolvePeriod(period, uc.now())
	items, err := uc.factsRepo.ListLineItems(ctx, rng.Start, rng.End)
	if err != nil {
		return rng, nil, err
	}
	return rng, items, nil
}

func toPeriodDTO(r analytics.PeriodRange) dto.PeriodDTO {
	return dto.PeriodDTO{
		StartDate: r.Start.Format(time.RFC3339),
		EndDate:   r.End.Format(time.RFC3339),
	}
}

func toVariantSalesDTOs(in []analytics.VariantSales) []dto.VariantSalesDTO {
	out := make([]dto.VariantSalesDTO, 0, len(in))
	for _, v := range in {
		out = append(out, dto.VariantSalesDTO{
			VariantID: v.VariantID,
			Size:      v.Size,
			Color:     v.Color,
			UnitsSold: v.UnitsSold,
			Revenue:   v.Revenue,
			Price:     v.Price,
			Profit:    v.Profit(),
		})
	}
	return out
}
