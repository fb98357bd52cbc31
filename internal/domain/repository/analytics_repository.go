package repository

import (
	"context"
	"time"

	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

// SalesFactRepository define las consultas de lectura de líneas de pedido para analítica.
// Las implementaciones son read-only (no modifican datos).
type SalesFactRepository interface {
	// ListLineItems devuelve las líneas de los pedidos creados en [start, end] (inclusive),
	// con el producto, la variante y la marca de archivado ya resueltos.
	ListLineItems(ctx context.Context, start, end time.Time) ([]entity.LineItemFact, error)
}
