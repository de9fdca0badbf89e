// Package analytics contiene las proyecciones de solo lectura sobre el
// estado actual del store: tarjetas resumen, agregaciones para los gráficos
// del dashboard, alertas de stock bajo y el filtrado de la tabla de
// productos. Todo se recalcula bajo demanda, nada se cachea ni se muta.
package analytics

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/stock-erp/internal/domain/entity"
	"github.com/tu-usuario/stock-erp/internal/store"
)

// FallbackBucket agrupa las referencias colgantes: un producto cuya
// categoría o proveedor ya no existe cuenta bajo esta etiqueta en lugar de
// fallar la lectura.
const FallbackBucket = "Autre"

// Dashboard calcula las vistas derivadas. Consume el store por referencia y
// nunca lo muta.
type Dashboard struct {
	store *store.Store
}

// NewDashboard construye el caso de uso.
func NewDashboard(st *store.Store) *Dashboard {
	return &Dashboard{store: st}
}

// Bucket es un par etiqueta/cantidad listo para pintar en un gráfico.
type Bucket struct {
	Label    string
	Quantity int
}

// TotalStockValue es la suma de precio × cantidad total de cada producto.
func (d *Dashboard) TotalStockValue() decimal.Decimal {
	total := decimal.Zero
	for _, p := range d.store.Products() {
		total = total.Add(p.StockValue())
	}
	return total
}

// ProductCount devuelve el número de productos.
func (d *Dashboard) ProductCount() int {
	return len(d.store.Products())
}

// LowStockProduct es un producto bajo el umbral junto a su cantidad total.
type LowStockProduct struct {
	Product       entity.Product
	TotalQuantity int
}

// LowStock devuelve los productos cuya cantidad total es menor o IGUAL al
// umbral (la frontera es inclusiva), en orden de inserción.
func (d *Dashboard) LowStock(threshold int) []LowStockProduct {
	var out []LowStockProduct
	for _, p := range d.store.Products() {
		if qty := p.TotalQuantity(); qty <= threshold {
			out = append(out, LowStockProduct{Product: p, TotalQuantity: qty})
		}
	}
	return out
}

// LowStockCount cuenta los productos bajo el umbral.
func (d *Dashboard) LowStockCount(threshold int) int {
	return len(d.LowStock(threshold))
}

// StockByCategory agrupa la cantidad total por nombre de categoría resuelto.
// Las referencias colgantes caen en FallbackBucket. El orden de los buckets
// es el de primer encuentro.
func (d *Dashboard) StockByCategory() []Bucket {
	categories := d.store.Categories()
	resolve := func(id int) string {
		for _, c := range categories {
			if c.ID == id {
				return c.Name
			}
		}
		return FallbackBucket
	}
	return d.groupProducts(func(p entity.Product) string { return resolve(p.CategoryID) })
}

// StockBySupplier agrupa la cantidad total por nombre de proveedor resuelto.
func (d *Dashboard) StockBySupplier() []Bucket {
	suppliers := d.store.Suppliers()
	resolve := func(id int) string {
		for _, s := range suppliers {
			if s.ID == id {
				return s.Name
			}
		}
		return FallbackBucket
	}
	return d.groupProducts(func(p entity.Product) string { return resolve(p.SupplierID) })
}

func (d *Dashboard) groupProducts(key func(entity.Product) string) []Bucket {
	index := map[string]int{}
	var out []Bucket
	for _, p := range d.store.Products() {
		label := key(p)
		qty := p.TotalQuantity()
		if i, ok := index[label]; ok {
			out[i].Quantity += qty
		} else {
			index[label] = len(out)
			out = append(out, Bucket{Label: label, Quantity: qty})
		}
	}
	return out
}

// StockByColorTop agrupa la cantidad por color a través de todos los
// variants, ordena descendente y trunca a n. Los empates conservan el orden
// de primer encuentro (orden estable).
func (d *Dashboard) StockByColorTop(n int) []Bucket {
	index := map[string]int{}
	var buckets []Bucket
	for _, p := range d.store.Products() {
		for _, v := range p.Variants {
			if i, ok := index[v.Color]; ok {
				buckets[i].Quantity += v.Quantity
			} else {
				index[v.Color] = len(buckets)
				buckets = append(buckets, Bucket{Label: v.Color, Quantity: v.Quantity})
			}
		}
	}
	sort.SliceStable(buckets, func(i, j int) bool {
		return buckets[i].Quantity > buckets[j].Quantity
	})
	if len(buckets) > n {
		buckets = buckets[:n]
	}
	return buckets
}

// TopProducts devuelve los n productos con más stock total, descendente,
// empates en orden de inserción.
func (d *Dashboard) TopProducts(n int) []Bucket {
	var buckets []Bucket
	for _, p := range d.store.Products() {
		buckets = append(buckets, Bucket{Label: p.Name, Quantity: p.TotalQuantity()})
	}
	sort.SliceStable(buckets, func(i, j int) bool {
		return buckets[i].Quantity > buckets[j].Quantity
	})
	if len(buckets) > n {
		buckets = buckets[:n]
	}
	return buckets
}

// Matrix es la rejilla densa talla × color: Sizes y Colors son los valores
// distintos observados, ordenados; Cells[i][j] es la cantidad acumulada de
// la talla i en el color j, cero cuando la combinación no existe.
type Matrix struct {
	Sizes  []string
	Colors []string
	Cells  [][]int
}

// SizeColorMatrix construye la rejilla para el heatmap.
func (d *Dashboard) SizeColorMatrix() Matrix {
	sizeSet := map[string]bool{}
	colorSet := map[string]bool{}
	products := d.store.Products()
	for _, p := range products {
		for _, v := range p.Variants {
			sizeSet[v.Size] = true
			colorSet[v.Color] = true
		}
	}

	m := Matrix{
		Sizes:  sortedKeys(sizeSet),
		Colors: sortedKeys(colorSet),
	}
	sizeIdx := indexOf(m.Sizes)
	colorIdx := indexOf(m.Colors)

	m.Cells = make([][]int, len(m.Sizes))
	for i := range m.Cells {
		m.Cells[i] = make([]int, len(m.Colors))
	}
	for _, p := range products {
		for _, v := range p.Variants {
			m.Cells[sizeIdx[v.Size]][colorIdx[v.Color]] += v.Quantity
		}
	}
	return m
}

func sortedKeys(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func indexOf(keys []string) map[string]int {
	idx := make(map[string]int, len(keys))
	for i, k := range keys {
		idx[k] = i
	}
	return idx
}

// TimelinePoint es un punto de la evolución acumulada del stock.
type TimelinePoint struct {
	Date  time.Time
	Total int
}

// StockTimeline ordena los movimientos por fecha ascendente y acumula un
// total: las entradas suman, las salidas restan. Los movimientos de tipo
// adjustment generan su punto pero NO alteran el acumulado; es el
// comportamiento documentado de la aplicación, no un descuido de esta capa.
func (d *Dashboard) StockTimeline() []TimelinePoint {
	movements := d.store.Movements()
	sort.SliceStable(movements, func(i, j int) bool {
		return movements[i].Date.Before(movements[j].Date)
	})

	out := make([]TimelinePoint, 0, len(movements))
	total := 0
	for _, m := range movements {
		switch m.Type {
		case entity.MovementTypeIn:
			total += m.Quantity
		case entity.MovementTypeOut:
			total -= m.Quantity
		}
		out = append(out, TimelinePoint{Date: m.Date, Total: total})
	}
	return out
}

// MovementPoint es un movimiento reciente con su cantidad con signo.
type MovementPoint struct {
	Date     time.Time
	Quantity int
}

// RecentMovements devuelve los últimos n movimientos en orden cronológico.
// La cantidad lleva signo: positiva para entradas, negativa para todo lo
// demás (las salidas y también los ajustes, tal y como lo pinta el gráfico).
func (d *Dashboard) RecentMovements(n int) []MovementPoint {
	movements := d.store.Movements()
	sort.SliceStable(movements, func(i, j int) bool {
		return movements[i].Date.After(movements[j].Date)
	})
	if len(movements) > n {
		movements = movements[:n]
	}

	out := make([]MovementPoint, 0, len(movements))
	for i := len(movements) - 1; i >= 0; i-- {
		m := movements[i]
		qty := m.Quantity
		if m.Type != entity.MovementTypeIn {
			qty = -qty
		}
		out = append(out, MovementPoint{Date: m.Date, Quantity: qty})
	}
	return out
}
