package analytics_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/stock-erp/internal/application/analytics"
	"github.com/tu-usuario/stock-erp/internal/domain/entity"
	"github.com/tu-usuario/stock-erp/internal/store"
)

func TestTotalStockValue(t *testing.T) {
	st := store.New()
	st.AddProduct(entity.Product{
		ID: 1, Reference: "TSH-001", Name: "T-shirt",
		Price: decimal.NewFromFloat(19.99),
		Variants: []entity.Variant{
			{Size: "S", Color: "Rouge", Quantity: 3},
			{Size: "M", Color: "Rouge", Quantity: 5},
		},
	})
	d := analytics.NewDashboard(st)

	// 19.99 × (3+5) = 159.92
	assert.True(t, d.TotalStockValue().Equal(decimal.RequireFromString("159.92")),
		"valor total esperado 159.92, obtenido %s", d.TotalStockValue())
}

// La frontera del stock bajo es inclusiva: cantidad == umbral entra, una
// unidad por encima queda fuera.
func TestLowStock_FronteraInclusiva(t *testing.T) {
	st := store.New()
	st.AddProduct(entity.Product{
		ID: 1, Reference: "A", Name: "En el umbral",
		Variants: []entity.Variant{{Size: "M", Color: "Bleu", Quantity: 10}},
	})
	st.AddProduct(entity.Product{
		ID: 2, Reference: "B", Name: "Justo encima",
		Variants: []entity.Variant{{Size: "M", Color: "Bleu", Quantity: 11}},
	})
	d := analytics.NewDashboard(st)

	low := d.LowStock(10)
	require.Len(t, low, 1)
	assert.Equal(t, "En el umbral", low[0].Product.Name)
	assert.Equal(t, 10, low[0].TotalQuantity)
	assert.Equal(t, 1, d.LowStockCount(10))
}

func TestStockByCategory_ReferenciaColganteCaeEnAutre(t *testing.T) {
	st := store.New()
	st.AddCategory(entity.Category{ID: 1, Name: "Vêtements"})
	st.AddProduct(entity.Product{
		ID: 1, Reference: "A", Name: "Con categoría", CategoryID: 1,
		Variants: []entity.Variant{{Quantity: 4}},
	})
	// CategoryID 99 no resuelve: la categoría fue borrada.
	st.AddProduct(entity.Product{
		ID: 2, Reference: "B", Name: "Huérfano", CategoryID: 99,
		Variants: []entity.Variant{{Quantity: 6}},
	})
	d := analytics.NewDashboard(st)

	buckets := d.StockByCategory()
	require.Len(t, buckets, 2)
	assert.Equal(t, analytics.Bucket{Label: "Vêtements", Quantity: 4}, buckets[0])
	assert.Equal(t, analytics.Bucket{Label: analytics.FallbackBucket, Quantity: 6}, buckets[1])
}

func TestStockBySupplier_AgrupaPorNombreResuelto(t *testing.T) {
	st := store.New()
	st.AddSupplier(entity.Supplier{ID: 1, Name: "Textiles SA"})
	st.AddProduct(entity.Product{
		ID: 1, Reference: "A", Name: "Uno", SupplierID: 1,
		Variants: []entity.Variant{{Quantity: 3}},
	})
	st.AddProduct(entity.Product{
		ID: 2, Reference: "B", Name: "Dos", SupplierID: 1,
		Variants: []entity.Variant{{Quantity: 2}},
	})
	d := analytics.NewDashboard(st)

	buckets := d.StockBySupplier()
	require.Len(t, buckets, 1)
	assert.Equal(t, analytics.Bucket{Label: "Textiles SA", Quantity: 5}, buckets[0])
}

// Con 15 colores distintos la agregación devuelve exactamente 10, ordenados
// descendente; un empate conserva el orden de primer encuentro.
func TestStockByColorTop_TruncaYRespetaEmpates(t *testing.T) {
	st := store.New()
	for i := 0; i < 15; i++ {
		st.AddProduct(entity.Product{
			ID: i + 1, Reference: fmt.Sprintf("R-%d", i), Name: fmt.Sprintf("P-%d", i),
			Variants: []entity.Variant{{Size: "U", Color: fmt.Sprintf("Couleur-%02d", i), Quantity: 20 - i}},
		})
	}
	// Empate: Couleur-03 y Couleur-04 pasan ambas a cantidad 17.
	st.AddProduct(entity.Product{
		ID: 100, Reference: "R-X", Name: "Extra",
		Variants: []entity.Variant{{Size: "U", Color: "Couleur-04", Quantity: 1}},
	})
	d := analytics.NewDashboard(st)

	top := d.StockByColorTop(10)
	require.Len(t, top, 10, "exactamente 10 entradas")
	for i := 1; i < len(top); i++ {
		assert.GreaterOrEqual(t, top[i-1].Quantity, top[i].Quantity, "orden descendente")
	}
	// Couleur-03 (17) se encontró antes que Couleur-04 (16+1=17): el empate
	// mantiene ese orden relativo.
	idx3, idx4 := -1, -1
	for i, b := range top {
		switch b.Label {
		case "Couleur-03":
			idx3 = i
		case "Couleur-04":
			idx4 = i
		}
	}
	require.NotEqual(t, -1, idx3)
	require.NotEqual(t, -1, idx4)
	assert.Less(t, idx3, idx4, "el empate conserva el orden de primer encuentro")
}

func TestSizeColorMatrix_RejillaDensa(t *testing.T) {
	st := store.New()
	st.AddProduct(entity.Product{
		ID: 1, Reference: "A", Name: "Uno",
		Variants: []entity.Variant{
			{Size: "M", Color: "Rouge", Quantity: 3},
			{Size: "S", Color: "Bleu", Quantity: 2},
		},
	})
	st.AddProduct(entity.Product{
		ID: 2, Reference: "B", Name: "Dos",
		Variants: []entity.Variant{{Size: "M", Color: "Rouge", Quantity: 4}},
	})
	d := analytics.NewDashboard(st)

	m := d.SizeColorMatrix()
	assert.Equal(t, []string{"M", "S"}, m.Sizes, "tallas distintas ordenadas")
	assert.Equal(t, []string{"Bleu", "Rouge"}, m.Colors, "colores distintos ordenados")
	require.Len(t, m.Cells, 2)
	assert.Equal(t, [][]int{
		{0, 7}, // M: Bleu ausente = 0, Rouge 3+4
		{2, 0}, // S: Bleu 2, Rouge ausente = 0
	}, m.Cells, "las combinaciones ausentes son cero, no se omiten")
}

// Los movimientos adjustment generan su punto pero no alteran el acumulado:
// [in 10, out 4, adjustment 100] produce [10, 6, 6].
func TestStockTimeline_IgnoraAjustes(t *testing.T) {
	st := store.New()
	day := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	// Insertados en desorden para comprobar la ordenación por fecha.
	st.AddMovement(entity.Movement{ID: 3, ProductID: 1, Type: entity.MovementTypeAdjustment, Quantity: 100, Date: day.AddDate(0, 0, 2)})
	st.AddMovement(entity.Movement{ID: 1, ProductID: 1, Type: entity.MovementTypeIn, Quantity: 10, Date: day})
	st.AddMovement(entity.Movement{ID: 2, ProductID: 1, Type: entity.MovementTypeOut, Quantity: 4, Date: day.AddDate(0, 0, 1)})
	d := analytics.NewDashboard(st)

	points := d.StockTimeline()
	require.Len(t, points, 3)
	totals := []int{points[0].Total, points[1].Total, points[2].Total}
	assert.Equal(t, []int{10, 6, 6}, totals,
		"el adjustment no debe cambiar el total acumulado")
}

func TestTopProducts_DescendenteConEmpatesEstables(t *testing.T) {
	st := store.New()
	st.AddProduct(entity.Product{ID: 1, Reference: "A", Name: "Primero", Variants: []entity.Variant{{Quantity: 5}}})
	st.AddProduct(entity.Product{ID: 2, Reference: "B", Name: "Segundo", Variants: []entity.Variant{{Quantity: 9}}})
	st.AddProduct(entity.Product{ID: 3, Reference: "C", Name: "Empatado", Variants: []entity.Variant{{Quantity: 5}}})
	d := analytics.NewDashboard(st)

	top := d.TopProducts(10)
	require.Len(t, top, 3)
	assert.Equal(t, "Segundo", top[0].Label)
	assert.Equal(t, "Primero", top[1].Label, "el empate conserva el orden de inserción")
	assert.Equal(t, "Empatado", top[2].Label)
}

func TestRecentMovements_CronologicoYConSigno(t *testing.T) {
	st := store.New()
	day := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 25; i++ {
		typ := entity.MovementTypeIn
		if i%2 == 1 {
			typ = entity.MovementTypeOut
		}
		st.AddMovement(entity.Movement{ID: i + 1, ProductID: 1, Type: typ, Quantity: i + 1, Date: day.AddDate(0, 0, i)})
	}
	d := analytics.NewDashboard(st)

	points := d.RecentMovements(20)
	require.Len(t, points, 20, "solo los 20 más recientes")
	assert.True(t, points[0].Date.Before(points[len(points)-1].Date),
		"los puntos vuelven en orden cronológico")
	// El movimiento 25 (in) es el último: positivo. El 24 (out): negativo.
	assert.Equal(t, 25, points[len(points)-1].Quantity)
	assert.Equal(t, -24, points[len(points)-2].Quantity)
}
