package ports

import "context"

// RecommenderModel define el puerto de salida hacia el servidor del modelo de recomendaciones.
// El modelo es una caja negra: recibe un usuario y devuelve IDs de variantes ordenados.
type RecommenderModel interface {
	// RecommendVariants devuelve hasta n IDs de variantes para el usuario.
	// Un usuario sin recomendaciones devuelve una lista vacía sin error.
	// El contexto debe llevar un timeout para evitar bloqueos en llamadas externas.
	RecommendVariants(ctx context.Context, userID string, n int) ([]string, error)
}
