package entity

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Variant es la combinación talla/color/cantidad dentro de un producto.
// El SKU se deriva como "{reference}-{size}-{color}" al crear el variant
// desde los flujos de alta; no se valida su unicidad.
type Variant struct {
	Size     string
	Color    string
	Quantity int
	SKU      string
}

// NewVariant construye un variant con el SKU derivado de la referencia.
func NewVariant(reference, size, color string, quantity int) Variant {
	return Variant{
		Size:     size,
		Color:    color,
		Quantity: quantity,
		SKU:      fmt.Sprintf("%s-%s-%s", reference, size, color),
	}
}

// Product representa un producto del inventario.
// El stock total nunca se almacena: se recalcula siempre como la suma de
// las cantidades de sus variants (ver TotalQuantity).
// Reference no está garantizada como única; Barcode se conserva pero la
// generación de códigos de barras parte siempre de Reference.
type Product struct {
	ID          int
	Reference   string
	Name        string
	CategoryID  int
	SupplierID  int
	Price       decimal.Decimal
	Variants    []Variant
	Photos      []string
	Barcode     string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TotalQuantity suma las cantidades de todos los variants.
func (p *Product) TotalQuantity() int {
	total := 0
	for _, v := range p.Variants {
		total += v.Quantity
	}
	return total
}

// StockValue devuelve precio × cantidad total.
func (p *Product) StockValue() decimal.Decimal {
	return p.Price.Mul(decimal.NewFromInt(int64(p.TotalQuantity())))
}
