package dto

import "github.com/shopspring/decimal"

// RecommendationRequest parámetros de GET /api/recommend/...
type RecommendationRequest struct {
	N int `query:"n"` // default 10
}

// VariantDTO variante dentro de un producto recomendado.
type VariantDTO struct {
	VariantID string          `json:"variant_id"`
	Size      string          `json:"size"`
	Color     string          `json:"color"`
	Stock     int             `json:"stock"`
	Price     decimal.Decimal `json:"price"`
}

// ProductDTO producto recomendado.
type ProductDTO struct {
	ProductID   string       `json:"product_id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	CategoryIDs []string     `json:"category_ids"`
	Variants    []VariantDTO `json:"variants"`
}
