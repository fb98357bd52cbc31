package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/application/usecase"
)

// RecommendationHandler expone las recomendaciones (públicas).
type RecommendationHandler struct {
	uc *usecase.RecommendationUseCase
}

// NewRecommendationHandler construye el handler.
func NewRecommendationHandler(uc *usecase.RecommendationUseCase) *RecommendationHandler {
	return &RecommendationHandler{uc: uc}
}

// GetRecommendations godoc
// @Summary      Recomendaciones personalizadas
// @Description  Productos a partir de las variantes que sugiere el modelo para el usuario.
// @Description  Si el modelo no responde devuelve una lista vacía.
// @Tags         recommendations
// @Produce      json
// @Param        userId  path   string  true   "UUID del usuario"
// @Param        n       query  int     false  "Cantidad (default 10)"
// @Success      200  {array}   dto.ProductDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/recommend/{userId} [get]
func (h *RecommendationHandler) GetRecommendations(c *fiber.Ctx) error {
	userID, ok := parseUUIDParam(c, "userId")
	if !ok {
		return invalidID(c, "userId")
	}
	var req dto.RecommendationRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PARAMS", Message: "n debe ser un entero"})
	}
	out, err := h.uc.GetRecommendations(c.Context(), userID, req.N)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetBaseRecommendations godoc
// @Summary      Productos similares
// @Description  Productos parecidos por categoría, talla y color. Producto inexistente o archivado: lista vacía.
// @Tags         recommendations
// @Produce      json
// @Param        productId  path   string  true   "UUID del producto"
// @Param        n          query  int     false  "Cantidad (default 10)"
// @Success      200  {array}   dto.ProductDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/recommend/base/{productId} [get]
func (h *RecommendationHandler) GetBaseRecommendations(c *fiber.Ctx) error {
	productID, ok := parseUUIDParam(c, "productId")
	if !ok {
		return invalidID(c, "productId")
	}
	var req dto.RecommendationRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PARAMS", Message: "n debe ser un entero"})
	}
	out, err := h.uc.GetBaseRecommendations(c.Context(), productID, req.N)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
