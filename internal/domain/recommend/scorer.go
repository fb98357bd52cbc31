// Package recommend implementa el motor de recomendaciones basado en reglas
// (servicio de dominio puro, sin I/O):
//   - similitud por categorías y talla/color de variantes con stock.
//   - expansión de variantes recomendadas a productos, con relleno aleatorio por categoría.
package recommend

import (
	"math/rand"
	"sort"
	"strings"
	"time"

	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

const (
	categoryWeight  = 10 // cada categoría compartida pesa más que el máximo por variante (2)
	maxVariantScore = 2
)

// ScoredCandidate producto candidato con su puntaje de similitud.
type ScoredCandidate struct {
	Product entity.CandidateProduct
	Score   int
}

// ScoreCandidates puntúa los candidatos contra el producto objetivo y devuelve solo los
// de puntaje > 0, ordenados de mayor a menor (estable, sin desempate secundario).
//
// Puntaje = categorías compartidas * 10 + mejor coincidencia de talla/color (0..2)
// entre las variantes con stock del candidato.
func ScoreCandidates(target entity.CandidateProduct, candidates []entity.CandidateProduct) []ScoredCandidate {
	if target.Archived {
		return []ScoredCandidate{}
	}

	targetCategories := toSet(target.CategoryIDs)
	targetSizes := make(map[string]struct{})
	targetColors := make(map[string]struct{})
	for _, v := range target.Variants {
		targetSizes[strings.ToLower(v.Size)] = struct{}{}
		targetColors[strings.ToLower(v.Color)] = struct{}{}
	}

	scored := make([]ScoredCandidate, 0)
	for _, c := range candidates {
		if c.ID == target.ID || c.Archived {
			continue
		}

		categoryScore := 0
		for _, id := range c.CategoryIDs {
			if _, ok := targetCategories[id]; ok {
				categoryScore++
			}
		}

		variantScore := 0
		for _, v := range c.Variants {
			if v.Stock <= 0 {
				continue
			}
			match := 0
			if _, ok := targetSizes[strings.ToLower(v.Size)]; ok {
				match++
			}
			if _, ok := targetColors[strings.ToLower(v.Color)]; ok {
				match++
			}
			if match > variantScore {
				variantScore = match
			}
			if variantScore == maxVariantScore {
				break
			}
		}

		total := categoryScore*categoryWeight + variantScore
		if total == 0 {
			continue
		}
		scored = append(scored, ScoredCandidate{Product: c, Score: total})
	}

	sort.SliceStable(scored, func(i, j int) bool { return scored[i].Score > scored[j].Score })
	return scored
}

// ScoreSimilarProducts devuelve hasta n productos similares al objetivo, de mayor a menor puntaje.
func ScoreSimilarProducts(target entity.CandidateProduct, candidates []entity.CandidateProduct, n int) []entity.CandidateProduct {
	scored := ScoreCandidates(target, candidates)
	if n < 0 {
		n = 0
	}
	if len(scored) > n {
		scored = scored[:n]
	}
	out := make([]entity.CandidateProduct, 0, len(scored))
	for _, s := range scored {
		out = append(out, s.Product)
	}
	return out
}

// ExpandVariantsToProducts convierte una lista de variantes recomendadas en productos distintos
// (en el orden en que aparecen) y completa con productos de relleno hasta len(variantIDs).
//
// Los rellenos se eligen al azar, sin reemplazo, entre los productos del pool no archivados,
// no incluidos aún y que comparten al menos una categoría con los productos encontrados.
// rng permite reproducir la selección; si es nil se usa una fuente propia de la llamada.
func ExpandVariantsToProducts(variantIDs []string, pool []entity.CandidateProduct, rng *rand.Rand) []entity.CandidateProduct {
	if len(variantIDs) == 0 {
		return []entity.CandidateProduct{}
	}

	owner := make(map[string]int) // variantID → índice en pool
	for i, p := range pool {
		for _, v := range p.Variants {
			if _, seen := owner[v.ID]; !seen {
				owner[v.ID] = i
			}
		}
	}

	included := make(map[string]struct{})
	unique := make([]entity.CandidateProduct, 0)
	for _, vid := range variantIDs {
		i, ok := owner[vid]
		if !ok {
			continue
		}
		p := pool[i]
		if _, dup := included[p.ID]; dup {
			continue
		}
		included[p.ID] = struct{}{}
		unique = append(unique, p)
	}

	fillersNeeded := len(variantIDs) - len(unique)
	if fillersNeeded <= 0 {
		return unique
	}

	commonCategories := make(map[string]struct{})
	for _, p := range unique {
		for _, id := range p.CategoryIDs {
			commonCategories[id] = struct{}{}
		}
	}

	var eligible []entity.CandidateProduct
	for _, p := range pool {
		if p.Archived {
			continue
		}
		if _, ok := included[p.ID]; ok {
			continue
		}
		if !sharesAny(p.CategoryIDs, commonCategories) {
			continue
		}
		// el pool puede repetir un producto; se toma una sola vez
		included[p.ID] = struct{}{}
		eligible = append(eligible, p)
	}

	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	// Fisher-Yates parcial: solo se barajan las primeras fillersNeeded posiciones.
	take := fillersNeeded
	if take > len(eligible) {
		take = len(eligible)
	}
	for i := 0; i < take; i++ {
		j := i + rng.Intn(len(eligible)-i)
		eligible[i], eligible[j] = eligible[j], eligible[i]
	}

	return append(unique, eligible[:take]...)
}

func toSet(ids []string) map[string]struct{} {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

func sharesAny(ids []string, set map[string]struct{}) bool {
	for _, id := range ids {
		if _, ok := set[id]; ok {
			return true
		}
	}
	return false
}
