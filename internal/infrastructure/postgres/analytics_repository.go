package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

var _ repository.SalesFactRepository = (*SalesFactRepo)(nil)

// SalesFactRepo consultas de solo lectura sobre pedidos para la analítica de ventas.
type SalesFactRepo struct {
	q Querier
}

// NewSalesFactRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSalesFactRepository(q Querier) *SalesFactRepo {
	return &SalesFactRepo{q: q}
}

// ListLineItems devuelve una fila por línea de pedido cuyo pedido se creó entre start y end
// (ambos inclusive), con los datos de variante y producto ya resueltos.
// El costo unitario es el bought_at actual de la variante.
func (r *SalesFactRepo) ListLineItems(ctx context.Context, start, end time.Time) ([]entity.LineItemFact, error) {
	const query = `
	SELECT
	    o.order_id::TEXT,
	    oi.variant_id::TEXT,
	    p.product_id::TEXT,
	    p.name,
	    v.size,
	    v.color,
	    oi.quantity,
	    oi.price_at_purchase,
	    v.bought_at,
	    o.created_at,
	    p.is_archived
	FROM orders o
	JOIN order_items      oi ON oi.order_id  = o.order_id
	JOIN product_variants v  ON v.variant_id = oi.variant_id
	JOIN products         p  ON p.product_id = v.product_id
	WHERE o.created_at BETWEEN $1 AND $2
	ORDER BY o.created_at, oi.order_item_id`

	rows, err := r.q.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("analytics.ListLineItems: %w", err)
	}
	defer rows.Close()

	items := make([]entity.LineItemFact, 0)
	for rows.Next() {
		var it entity.LineItemFact
		if err := rows.Scan(
			&it.OrderID,
			&it.VariantID,
			&it.ProductID,
			&it.ProductName,
			&it.Size,
			&it.Color,
			&it.Quantity,
			&it.UnitPricePaid,
			&it.UnitCost,
			&it.OrderCreatedAt,
			&it.ProductArchived,
		); err != nil {
			return nil, fmt.Errorf("analytics.ListLineItems scan: %w", err)
		}
		it.OrderCreatedAt = it.OrderCreatedAt.UTC()
		items = append(items, it)
	}
	return items, rows.Err()
}
