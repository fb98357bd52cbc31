package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-api/internal/application/usecase"
	"github.com/jhoicas/tienda-api/pkg/jwt"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AnalyticsUC      *usecase.AnalyticsUseCase
	RecommendationUC *usecase.RecommendationUseCase
	JWTSecret        string
	JWTIssuer        string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Analítica (Bearer Token + rol admin)
	analytics := api.Group("/analytics", AuthMiddleware(deps.JWTSecret, deps.JWTIssuer), RequireRole(jwt.RoleAdmin))
	analyticsHandler := NewAnalyticsHandler(deps.AnalyticsUC)
	analytics.Get("/product-sales/:productId", analyticsHandler.GetProductSales)
	analytics.Get("/top-products", analyticsHandler.GetTopProducts)
	analytics.Get("/monthly-revenue", analyticsHandler.GetMonthlyRevenue)
	analytics.Get("/monthly-gp", analyticsHandler.GetMonthlyGrossProfit)
	analytics.Post("/product-analytics", analyticsHandler.GetProductAnalytics)

	// Recomendaciones (público); /base antes de /:userId
	recommend := api.Group("/recommend")
	recommendationHandler := NewRecommendationHandler(deps.RecommendationUC)
	recommend.Get("/base/:productId", recommendationHandler.GetBaseRecommendations)
	recommend.Get("/:userId", recommendationHandler.GetRecommendations)
}
