package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

var _ repository.CatalogRepository = (*CatalogRepo)(nil)

// CatalogRepo lectura del catálogo (productos, categorías y variantes) para el motor de recomendaciones.
type CatalogRepo struct {
	q Querier
}

// NewCatalogRepository construye el adaptador del catálogo. Pasar pool o tx (Querier).
func NewCatalogRepository(q Querier) *CatalogRepo {
	return &CatalogRepo{q: q}
}

// GetProduct obtiene un producto con sus categorías y variantes. Devuelve (nil, nil) si no existe.
func (r *CatalogRepo) GetProduct(ctx context.Context, id string) (*entity.CandidateProduct, error) {
	query := `
		SELECT product_id::TEXT, name, COALESCE(description, ''), is_archived
		FROM products WHERE product_id = $1`
	var p entity.CandidateProduct
	err := r.q.QueryRow(ctx, query, id).Scan(&p.ID, &p.Name, &p.Description, &p.Archived)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}

	byID := map[string]*entity.CandidateProduct{p.ID: &p}
	if err := r.loadCategories(ctx, byID, "WHERE product_id = $1", id); err != nil {
		return nil, err
	}
	if err := r.loadVariants(ctx, byID, "WHERE product_id = $1", id); err != nil {
		return nil, err
	}
	return &p, nil
}

// ListProducts devuelve todo el catálogo (incluidos los archivados; el dominio decide qué excluir).
func (r *CatalogRepo) ListProducts(ctx context.Context) ([]entity.CandidateProduct, error) {
	query := `
		SELECT product_id::TEXT, name, COALESCE(description, ''), is_archived
		FROM products ORDER BY created_at, product_id`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	var products []*entity.CandidateProduct
	byID := make(map[string]*entity.CandidateProduct)
	for rows.Next() {
		p := &entity.CandidateProduct{}
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Archived); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, p)
		byID[p.ID] = p
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	if err := r.loadCategories(ctx, byID, ""); err != nil {
		return nil, err
	}
	if err := r.loadVariants(ctx, byID, ""); err != nil {
		return nil, err
	}

	out := make([]entity.CandidateProduct, 0, len(products))
	for _, p := range products {
		out = append(out, *p)
	}
	return out, nil
}

// loadCategories completa CategoryIDs de los productos en byID. where/args filtran la tabla puente.
func (r *CatalogRepo) loadCategories(ctx context.Context, byID map[string]*entity.CandidateProduct, where string, args ...any) error {
	query := `SELECT product_id::TEXT, category_id::TEXT FROM product_categories ` + where + ` ORDER BY category_id`
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("list product categories: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var productID, categoryID string
		if err := rows.Scan(&productID, &categoryID); err != nil {
			return fmt.Errorf("scan product category: %w", err)
		}
		if p, ok := byID[productID]; ok {
			p.CategoryIDs = append(p.CategoryIDs, categoryID)
		}
	}
	return rows.Err()
}

// loadVariants completa Variants de los productos en byID.
func (r *CatalogRepo) loadVariants(ctx context.Context, byID map[string]*entity.CandidateProduct, where string, args ...any) error {
	query := `
		SELECT variant_id::TEXT, product_id::TEXT, size, color, stock, price
		FROM product_variants ` + where + ` ORDER BY product_id, variant_id`
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("list variants: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var v entity.CandidateVariant
		var productID string
		if err := rows.Scan(&v.ID, &productID, &v.Size, &v.Color, &v.Stock, &v.Price); err != nil {
			return fmt.Errorf("scan variant: %w", err)
		}
		if p, ok := byID[productID]; ok {
			p.Variants = append(p.Variants, v)
		}
	}
	return rows.Err()
}
