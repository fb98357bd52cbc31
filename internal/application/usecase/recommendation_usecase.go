package usecase

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/application/ports"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/recommend"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

const (
	defaultRecommendations = 10
	modelTimeout           = 10 * time.Second
)

// RecommendationUseCase expone las recomendaciones basadas en reglas (producto similar)
// y las del modelo externo (por usuario), ambas sobre el catálogo vivo.
type RecommendationUseCase struct {
	catalogRepo repository.CatalogRepository
	model       ports.RecommenderModel
	newRand     func() *rand.Rand // nil: el dominio crea una fuente por llamada
}

// NewRecommendationUseCase construye el caso de uso.
func NewRecommendationUseCase(catalogRepo repository.CatalogRepository, model ports.RecommenderModel) *RecommendationUseCase {
	return &RecommendationUseCase{catalogRepo: catalogRepo, model: model}
}

// WithRandSource fija la fuente aleatoria de los rellenos (tests reproducibles).
func (uc *RecommendationUseCase) WithRandSource(newRand func() *rand.Rand) *RecommendationUseCase {
	uc.newRand = newRand
	return uc
}

// GetBaseRecommendations devuelve hasta n productos similares a productID.
// Producto inexistente o archivado → lista vacía.
//
// El producto objetivo y el catálogo se consultan en paralelo.
func (uc *RecommendationUseCase) GetBaseRecommendations(
	ctx context.Context,
	productID string,
	n int,
) ([]dto.ProductDTO, error) {
	if n <= 0 {
		n = defaultRecommendations
	}

	type targetResult struct {
		product *entity.CandidateProduct
		err     error
	}
	type catalogResult struct {
		products []entity.CandidateProduct
		err      error
	}

	targetCh := make(chan targetResult, 1)
	catalogCh := make(chan catalogResult, 1)

	go func() {
		p, err := uc.catalogRepo.GetProduct(ctx, productID)
		targetCh <- targetResult{p, err}
	}()
	go func() {
		ps, err := uc.catalogRepo.ListProducts(ctx)
		catalogCh <- catalogResult{ps, err}
	}()

	target := <-targetCh
	catalog := <-catalogCh

	if target.err != nil {
		return nil, fmt.Errorf("recomendaciones: producto objetivo: %w", target.err)
	}
	if catalog.err != nil {
		return nil, fmt.Errorf("recomendaciones: catálogo: %w", catalog.err)
	}
	if target.product == nil || target.product.Archived {
		return []dto.ProductDTO{}, nil
	}

	return toProductDTOs(recommend.ScoreSimilarProducts(*target.product, catalog.products, n)), nil
}

// GetRecommendations pide al modelo externo variantes para el usuario y las convierte en
// productos distintos, completando con rellenos de categorías afines.
// Si el modelo falla o no devuelve nada, responde lista vacía (el fallo queda en el log).
func (uc *RecommendationUseCase) GetRecommendations(
	ctx context.Context,
	userID string,
	n int,
) ([]dto.ProductDTO, error) {
	if n <= 0 {
		n = defaultRecommendations
	}

	modelCtx, cancel := context.WithTimeout(ctx, modelTimeout)
	defer cancel()

	variantIDs, err := uc.model.RecommendVariants(modelCtx, userID, n)
	if err != nil {
		log.Warn().Err(err).Str("user_id", userID).Msg("modelo de recomendaciones no disponible")
		return []dto.ProductDTO{}, nil
	}
	if len(variantIDs) == 0 {
		return []dto.ProductDTO{}, nil
	}

	catalog, err := uc.catalogRepo.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("recomendaciones: catálogo: %w", err)
	}

	var rng *rand.Rand
	if uc.newRand != nil {
		rng = uc.newRand()
	}
	return toProductDTOs(recommend.ExpandVariantsToProducts(variantIDs, catalog, rng)), nil
}

func toProductDTOs(products []entity.CandidateProduct) []dto.ProductDTO {
	out := make([]dto.ProductDTO, 0, len(products))
	for _, p := range products {
		variants := make([]dto.VariantDTO, 0, len(p.Variants))
		for _, v := range p.Variants {
			variants = append(variants, dto.VariantDTO{
				VariantID: v.ID,
				Size:      v.Size,
				Color:     v.Color,
				Stock:     v.Stock,
				Price:     v.Price,
			})
		}
		categories := p.CategoryIDs
		if categories == nil {
			categories = []string{}
		}
		out = append(out, dto.ProductDTO{
			ProductID:   p.ID,
			Name:        p.Name,
			Description: p.Description,
			CategoryIDs: categories,
			Variants:    variants,
		})
	}
	return out
}
