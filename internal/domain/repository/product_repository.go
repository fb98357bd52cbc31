package repository

import (
	"context"

	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

// CatalogRepository define el puerto de lectura del catálogo para recomendaciones (DIP).
type CatalogRepository interface {
	// GetProduct obtiene un producto con categorías y variantes. Devuelve (nil, nil) si no existe.
	GetProduct(ctx context.Context, id string) (*entity.CandidateProduct, error)
	// ListProducts devuelve todo el catálogo (incluye archivados; el motor los filtra).
	ListProducts(ctx context.Context) ([]entity.CandidateProduct, error)
}
