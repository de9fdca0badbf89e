// Package pdf genera la hoja de etiquetas de productos: una rejilla de
// etiquetas en página carta, cada una con referencia, nombre, precio y una
// tira Code 128 derivada de la referencia.
//
//	┌────────────────┐ ┌────────────────┐ ┌────────────────┐
//	│ Ref:  TSH-001  │ │ Ref:  PAN-002  │ │ ...            │
//	│ Nom:  T-shirt  │ │ Nom:  Pantalon │ │                │
//	│ Prix: 19.99 €  │ │ Prix: 39.90 €  │ │                │
//	│ ║║│║║║│║║║│║║  │ │ ║║│║║║│║║║│║║  │ │                │
//	└────────────────┘ └────────────────┘ └────────────────┘
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/border"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/tu-usuario/stock-erp/internal/domain"
	"github.com/tu-usuario/stock-erp/internal/domain/entity"
)

const labelsPerRow = 3

var colorGray = &props.Color{Red: 100, Green: 100, Blue: 100}

// currencySymbols traduce el código de devise de los réglages al símbolo
// impreso en la etiqueta.
var currencySymbols = map[string]string{
	"EUR": "€",
	"USD": "$",
	"GBP": "£",
	"CAD": "$",
}

// LabelGenerator construye la hoja de etiquetas con Maroto v2.
type LabelGenerator struct{}

// NewLabelGenerator construye el generador.
func NewLabelGenerator() *LabelGenerator { return &LabelGenerator{} }

// Generate devuelve los bytes del PDF con una etiqueta por producto.
// currency es el código de devise de los réglages (EUR por defecto).
func (g *LabelGenerator) Generate(products []entity.Product, currency string) ([]byte, error) {
	if len(products) == 0 {
		return nil, domain.ErrNoProducts
	}
	symbol, ok := currencySymbols[currency]
	if !ok {
		symbol = currencySymbols["EUR"]
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.Letter).
		WithLeftMargin(12).WithRightMargin(12).
		WithTopMargin(12).WithBottomMargin(12).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		Build()

	m := maroto.New(cfg)

	for start := 0; start < len(products); start += labelsPerRow {
		end := start + labelsPerRow
		if end > len(products) {
			end = len(products)
		}
		m.AddRows(labelRow(products[start:end], symbol))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar hoja de etiquetas: %w", err)
	}
	return doc.GetBytes(), nil
}

// labelRow pinta hasta tres etiquetas lado a lado.
func labelRow(products []entity.Product, symbol string) core.Row {
	cols := make([]core.Col, 0, labelsPerRow)
	for _, p := range products {
		cols = append(cols, labelCol(p, symbol))
	}
	// Columnas vacías para completar la rejilla de la última fila
	for len(cols) < labelsPerRow {
		cols = append(cols, col.New(4))
	}
	return row.New(28).Add(cols...)
}

func labelCol(p entity.Product, symbol string) core.Col {
	return col.New(4).Add(
		text.New("Ref: "+p.Reference, props.Text{
			Style: fontstyle.Bold, Size: 9, Top: 1, Left: 2,
		}),
		text.New("Nom: "+p.Name, props.Text{
			Size: 9, Top: 5, Left: 2,
		}),
		text.New(fmt.Sprintf("Prix: %s %s", p.Price.StringFixed(2), symbol), props.Text{
			Size: 9, Top: 9, Left: 2, Color: colorGray,
		}),
		code.NewBar(p.Reference, props.Barcode{
			Top: 14, Left: 2, Percent: 90, Proportion: props.Proportion{Width: 16, Height: 3},
		}),
	).WithStyle(&props.Cell{
		BorderType:      border.Full,
		BorderThickness: 0.2,
	})
}
