package entity

import "github.com/shopspring/decimal"

// CandidateProduct representa un producto del catálogo con sus categorías y variantes,
// tal como lo necesita el motor de recomendaciones.
type CandidateProduct struct {
	ID          string
	Name        string
	Description string
	Archived    bool
	CategoryIDs []string
	Variants    []CandidateVariant
}

// CandidateVariant variante concreta (talla/color) con su stock vivo.
type CandidateVariant struct {
	ID    string
	Size  string
	Color string
	Stock int
	Price decimal.Decimal
}
