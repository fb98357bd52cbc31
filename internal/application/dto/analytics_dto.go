package dto

import "github.com/shopspring/decimal"

// ── Query parameters ──────────────────────────────────────────────────────────

// TopProductsRequest parámetros para GET /api/analytics/top-products.
type TopProductsRequest struct {
	Period string `query:"period"` // "month" | "year" | "<fecha>_to_<fecha>"; por defecto "year"
	N      int    `query:"n"` // default 10, max 200
}

// ProductAnalyticsRequest cuerpo de POST /api/analytics/product-analytics.
type ProductAnalyticsRequest struct {
	ProductIDs []string `json:"product_ids"`
	Period     string   `json:"period"`
}

// ── Respuestas ────────────────────────────────────────────────────────────────

// PeriodDTO rango de fechas efectivamente usado por el reporte (RFC3339, UTC).
type PeriodDTO struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// VariantSalesDTO ventas por variante.
// En product-analytics, Price es la suma qty*costo de la variante (nombre heredado).
type VariantSalesDTO struct {
	VariantID string          `json:"variant_id"`
	Size      string          `json:"size"`
	Color     string          `json:"color"`
	UnitsSold int             `json:"units_sold"`
	Revenue   decimal.Decimal `json:"revenue"`
	Price     decimal.Decimal `json:"price"`
	Profit    decimal.Decimal `json:"profit"` // Revenue - Price
}

// ProductSalesStatsDTO respuesta de GET /api/analytics/product-sales/:productId.
type ProductSalesStatsDTO struct {
	Period       PeriodDTO         `json:"period"`
	UnitsSold    int               `json:"units_sold"`
	TotalRevenue decimal.Decimal   `json:"total_revenue"`
	TopVariants  []VariantSalesDTO `json:"top_variants"`
}

// TopProductDTO fila del ranking de productos más vendidos.
type TopProductDTO struct {
	ProductID    string          `json:"product_id"`
	ProductName  string          `json:"product_name"`
	UnitsSold    int             `json:"units_sold"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
}

// MonthlyRevenueDTO ingresos de un mes.
type MonthlyRevenueDTO struct {
	Year    int             `json:"year"`
	Month   int             `json:"month"`
	Revenue decimal.Decimal `json:"revenue"`
}

// MonthlyGrossProfitDTO ingresos y costo de un mes; GrossProfit = Revenue - Cost.
type MonthlyGrossProfitDTO struct {
	Year        int             `json:"year"`
	Month       int             `json:"month"`
	Revenue     decimal.Decimal `json:"revenue"`
	Cost        decimal.Decimal `json:"cost"`
	GrossProfit decimal.Decimal `json:"gross_profit"`
}

// MonthlyBreakdownDTO fila mensual del análisis multi-producto.
type MonthlyBreakdownDTO struct {
	Year        int             `json:"year"`
	Month       int             `json:"month"`
	Revenue     decimal.Decimal `json:"revenue"`
	GrossProfit decimal.Decimal `json:"gross_profit"`
}

// ProductAnalyticsGroupDTO análisis de un producto en POST /api/analytics/product-analytics.
type ProductAnalyticsGroupDTO struct {
	ProductID        string                `json:"product_id"`
	ProductName      string                `json:"product_name"`
	UnitsSold        int                   `json:"units_sold"`
	TotalRevenue     decimal.Decimal       `json:"total_revenue"`
	TotalCost        decimal.Decimal       `json:"total_cost"`
	GrossProfit      decimal.Decimal       `json:"gross_profit"` // TotalRevenue - TotalCost
	VariantBreakdown []VariantSalesDTO     `json:"variant_breakdown"`
	MonthlyBreakdown []MonthlyBreakdownDTO `json:"monthly_breakdown"`
}
