package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/application/usecase"
)

const defaultPeriod = "year"

// AnalyticsHandler maneja los reportes de ventas (solo admin).
type AnalyticsHandler struct {
	uc *usecase.AnalyticsUseCase
}

// NewAnalyticsHandler construye el handler.
func NewAnalyticsHandler(uc *usecase.AnalyticsUseCase) *AnalyticsHandler {
	return &AnalyticsHandler{uc: uc}
}

// GetProductSales godoc
// @Summary      Ventas de un producto
// @Description  Unidades, ingresos y ranking de variantes del producto en el período.
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Param        productId  path   string  true   "UUID del producto"
// @Param        period     query  string  false  "month | year | YYYY-MM-DD_to_YYYY-MM-DD (default year)"
// @Success      200  {object}  dto.ProductSalesStatsDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/analytics/product-sales/{productId} [get]
func (h *AnalyticsHandler) GetProductSales(c *fiber.Ctx) error {
	productID, ok := parseUUIDParam(c, "productId")
	if !ok {
		return invalidID(c, "productId")
	}
	out, err := h.uc.GetProductSalesStats(c.Context(), productID, c.Query("period", defaultPeriod))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetTopProducts godoc
// @Summary      Productos más vendidos
// @Description  Ranking por unidades vendidas; excluye productos archivados.
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Param        period  query  string  false  "month | year | rango (default year)"
// @Param        n       query  int     false  "Tamaño del ranking (default 10, max 200)"
// @Success      200  {array}   dto.TopProductDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/analytics/top-products [get]
func (h *AnalyticsHandler) GetTopProducts(c *fiber.Ctx) error {
	var req dto.TopProductsRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PARAMS", Message: "parámetros de consulta inválidos"})
	}
	if req.Period == "" {
		req.Period = defaultPeriod
	}
	out, err := h.uc.GetTopSellingProducts(c.Context(), req.Period, req.N)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetMonthlyRevenue godoc
// @Summary      Ingresos mensuales
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Param        period  query  string  false  "month | year | rango (default year)"
// @Success      200  {array}   dto.MonthlyRevenueDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/analytics/monthly-revenue [get]
func (h *AnalyticsHandler) GetMonthlyRevenue(c *fiber.Ctx) error {
	out, err := h.uc.GetMonthlyRevenue(c.Context(), c.Query("period", defaultPeriod))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetMonthlyGrossProfit godoc
// @Summary      Utilidad bruta mensual
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Param        period  query  string  false  "month | year | rango (default year)"
// @Success      200  {array}   dto.MonthlyGrossProfitDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/analytics/monthly-gp [get]
func (h *AnalyticsHandler) GetMonthlyGrossProfit(c *fiber.Ctx) error {
	out, err := h.uc.GetMonthlyGrossProfit(c.Context(), c.Query("period", defaultPeriod))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetProductAnalytics godoc
// @Summary      Análisis de varios productos
// @Description  Desglose por variante y por mes de cada producto pedido.
// @Tags         analytics
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ProductAnalyticsRequest  true  "Productos y período"
// @Success      200  {array}   dto.ProductAnalyticsGroupDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/analytics/product-analytics [post]
func (h *AnalyticsHandler) GetProductAnalytics(c *fiber.Ctx) error {
	var req dto.ProductAnalyticsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo JSON inválido"})
	}
	for i, id := range req.ProductIDs {
		parsed, err := uuid.Parse(id)
		if err != nil {
			return invalidID(c, "product_ids")
		}
		req.ProductIDs[i] = parsed.String()
	}
	if req.Period == "" {
		req.Period = defaultPeriod
	}
	out, err := h.uc.GetProductAnalytics(c.Context(), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
