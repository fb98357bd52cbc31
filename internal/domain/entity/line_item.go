package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// LineItemFact es la foto inmutable de una línea de pedido lista para agregarse.
// El repositorio la construye uniendo orders, order_items, product_variants y products.
type LineItemFact struct {
	OrderID         string
	VariantID       string
	ProductID       string
	ProductName     string
	Size            string
	Color           string
	Quantity        int
	UnitPricePaid   decimal.Decimal // precio unitario pagado al momento de la compra
	UnitCost        decimal.Decimal // costo unitario de la variante (bought_at)
	OrderCreatedAt  time.Time       // UTC
	ProductArchived bool
}

// Revenue devuelve Quantity * UnitPricePaid.
func (f LineItemFact) Revenue() decimal.Decimal {
	return f.UnitPricePaid.Mul(decimal.NewFromInt(int64(f.Quantity)))
}

// Cost devuelve Quantity * UnitCost.
func (f LineItemFact) Cost() decimal.Decimal {
	return f.UnitCost.Mul(decimal.NewFromInt(int64(f.Quantity)))
}
