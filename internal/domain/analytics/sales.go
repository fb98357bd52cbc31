package analytics

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

// VariantSales ventas de una variante dentro de un producto.
// Price conserva la suma qty*costo del cálculo histórico (ver ProductAnalyticsGroups);
// en ProductSalesStats queda en cero.
type VariantSales struct {
	VariantID string
	Size      string
	Color     string
	UnitsSold int
	Revenue   decimal.Decimal
	Price     decimal.Decimal
}

// Profit Revenue - Price.
func (v VariantSales) Profit() decimal.Decimal {
	return v.Revenue.Sub(v.Price)
}

// ProductSalesStats resumen de ventas de un producto.
type ProductSalesStats struct {
	UnitsSold    int
	TotalRevenue decimal.Decimal
	TopVariants  []VariantSales
}

// TopProduct fila del ranking de productos más vendidos.
type TopProduct struct {
	ProductID    string
	ProductName  string
	UnitsSold    int
	TotalRevenue decimal.Decimal
}

// MonthBucket clave de agrupación mensual.
type MonthBucket struct {
	Year  int
	Month int // 1..12
}

// Before orden cronológico.
func (b MonthBucket) Before(o MonthBucket) bool {
	if b.Year != o.Year {
		return b.Year < o.Year
	}
	return b.Month < o.Month
}

// MonthlyRevenue ingresos de un mes.
type MonthlyRevenue struct {
	Year    int
	Month   int
	Revenue decimal.Decimal
}

// MonthlyGrossProfit ingresos y costo de un mes. La utilidad bruta se deriva, no se guarda.
type MonthlyGrossProfit struct {
	Year    int
	Month   int
	Revenue decimal.Decimal
	Cost    decimal.Decimal
}

// GrossProfit Revenue - Cost.
func (m MonthlyGrossProfit) GrossProfit() decimal.Decimal {
	return m.Revenue.Sub(m.Cost)
}

// MonthlyBreakdown fila mensual del análisis multi-producto; aquí sí se guarda GrossProfit.
type MonthlyBreakdown struct {
	Year        int
	Month       int
	Revenue     decimal.Decimal
	GrossProfit decimal.Decimal
}

// ProductAnalyticsGroup análisis completo de un producto.
type ProductAnalyticsGroup struct {
	ProductID        string
	ProductName      string
	UnitsSold        int
	TotalRevenue     decimal.Decimal
	TotalCost        decimal.Decimal
	VariantBreakdown []VariantSales
	MonthlyBreakdown []MonthlyBreakdown
}

// GrossProfit TotalRevenue - TotalCost.
func (g ProductAnalyticsGroup) GrossProfit() decimal.Decimal {
	return g.TotalRevenue.Sub(g.TotalCost)
}

// ProductSalesStatsFor filtra las líneas del producto y calcula totales y ranking de variantes.
// Un producto sin ventas devuelve un resumen en cero con TopVariants vacío.
func ProductSalesStatsFor(items []entity.LineItemFact, productID string) ProductSalesStats {
	productItems := filterByProduct(items, func(id string) bool { return id == productID })

	stats := ProductSalesStats{TotalRevenue: decimal.Zero}
	for _, it := range productItems {
		stats.UnitsSold += it.Quantity
		stats.TotalRevenue = stats.TotalRevenue.Add(it.Revenue())
	}
	stats.TopVariants = variantBreakdown(productItems, false)
	return stats
}

// TopSellingProducts agrupa por producto (excluyendo archivados), ordena por unidades
// descendente y devuelve los primeros n. Empates conservan el orden de aparición.
func TopSellingProducts(items []entity.LineItemFact, n int) []TopProduct {
	if n <= 0 {
		return []TopProduct{}
	}

	type key struct{ id, name string }
	index := make(map[key]int)
	var out []TopProduct
	for _, it := range items {
		if it.ProductArchived {
			continue
		}
		k := key{it.ProductID, it.ProductName}
		i, ok := index[k]
		if !ok {
			i = len(out)
			index[k] = i
			out = append(out, TopProduct{ProductID: it.ProductID, ProductName: it.ProductName, TotalRevenue: decimal.Zero})
		}
		out[i].UnitsSold += it.Quantity
		out[i].TotalRevenue = out[i].TotalRevenue.Add(it.Revenue())
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].UnitsSold > out[j].UnitsSold })
	if len(out) > n {
		out = out[:n]
	}
	if out == nil {
		return []TopProduct{}
	}
	return out
}

// MonthlyRevenueSeries ingresos por mes en orden cronológico.
func MonthlyRevenueSeries(items []entity.LineItemFact) []MonthlyRevenue {
	totals := groupByMonth(items)
	out := make([]MonthlyRevenue, 0, len(totals))
	for _, t := range totals {
		out = append(out, MonthlyRevenue{Year: t.bucket.Year, Month: t.bucket.Month, Revenue: t.revenue})
	}
	return out
}

// MonthlyGrossProfitSeries ingresos y costo por mes en orden cronológico.
func MonthlyGrossProfitSeries(items []entity.LineItemFact) []MonthlyGrossProfit {
	totals := groupByMonth(items)
	out := make([]MonthlyGrossProfit, 0, len(totals))
	for _, t := range totals {
		out = append(out, MonthlyGrossProfit{Year: t.bucket.Year, Month: t.bucket.Month, Revenue: t.revenue, Cost: t.cost})
	}
	return out
}

// ProductAnalyticsGroups arma un grupo por cada producto solicitado que tenga ventas,
// en el orden en que aparece por primera vez en items.
func ProductAnalyticsGroups(items []entity.LineItemFact, productIDs []string) []ProductAnalyticsGroup {
	wanted := make(map[string]struct{}, len(productIDs))
	for _, id := range productIDs {
		wanted[id] = struct{}{}
	}
	relevant := filterByProduct(items, func(id string) bool {
		_, ok := wanted[id]
		return ok
	})

	index := make(map[string]int)
	var byProduct [][]entity.LineItemFact
	for _, it := range relevant {
		i, ok := index[it.ProductID]
		if !ok {
			i = len(byProduct)
			index[it.ProductID] = i
			byProduct = append(byProduct, nil)
		}
		byProduct[i] = append(byProduct[i], it)
	}

	out := make([]ProductAnalyticsGroup, 0, len(byProduct))
	for _, group := range byProduct {
		g := ProductAnalyticsGroup{
			ProductID:    group[0].ProductID,
			ProductName:  group[0].ProductName,
			TotalRevenue: decimal.Zero,
			TotalCost:    decimal.Zero,
		}
		for _, it := range group {
			g.UnitsSold += it.Quantity
			g.TotalRevenue = g.TotalRevenue.Add(it.Revenue())
			g.TotalCost = g.TotalCost.Add(it.Cost())
		}
		g.VariantBreakdown = variantBreakdown(group, true)

		months := groupByMonth(group)
		g.MonthlyBreakdown = make([]MonthlyBreakdown, 0, len(months))
		for _, m := range months {
			g.MonthlyBreakdown = append(g.MonthlyBreakdown, MonthlyBreakdown{
				Year:        m.bucket.Year,
				Month:       m.bucket.Month,
				Revenue:     m.revenue,
				GrossProfit: m.revenue.Sub(m.cost),
			})
		}
		out = append(out, g)
	}
	return out
}

func filterByProduct(items []entity.LineItemFact, keep func(productID string) bool) []entity.LineItemFact {
	var out []entity.LineItemFact
	for _, it := range items {
		if keep(it.ProductID) {
			out = append(out, it)
		}
	}
	return out
}

// variantBreakdown agrupa por variante y ordena por unidades descendente (estable).
// withCostAsPrice llena Price con la suma qty*costo.
func variantBreakdown(items []entity.LineItemFact, withCostAsPrice bool) []VariantSales {
	index := make(map[string]int)
	out := make([]VariantSales, 0)
	for _, it := range items {
		i, ok := index[it.VariantID]
		if !ok {
			i = len(out)
			index[it.VariantID] = i
			out = append(out, VariantSales{
				VariantID: it.VariantID,
				Size:      it.Size,
				Color:     it.Color,
				Revenue:   decimal.Zero,
				Price:     decimal.Zero,
			})
		}
		out[i].UnitsSold += it.Quantity
		out[i].Revenue = out[i].Revenue.Add(it.Revenue())
		if withCostAsPrice {
			out[i].Price = out[i].Price.Add(it.Cost())
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].UnitsSold > out[j].UnitsSold })
	return out
}

type monthTotals struct {
	bucket  MonthBucket
	revenue decimal.Decimal
	cost    decimal.Decimal
}

// groupByMonth suma ingresos y costo por (año, mes) UTC y devuelve los meses en orden cronológico.
func groupByMonth(items []entity.LineItemFact) []monthTotals {
	index := make(map[MonthBucket]int)
	var out []monthTotals
	for _, it := range items {
		ts := it.OrderCreatedAt.UTC()
		b := MonthBucket{Year: ts.Year(), Month: int(ts.Month())}
		i, ok := index[b]
		if !ok {
			i = len(out)
			index[b] = i
			out = append(out, monthTotals{bucket: b, revenue: decimal.Zero, cost: decimal.Zero})
		}
		out[i].revenue = out[i].revenue.Add(it.Revenue())
		out[i].cost = out[i].cost.Add(it.Cost())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].bucket.Before(out[j].bucket) })
	return out
}
