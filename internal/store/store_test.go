package store_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/stock-erp/internal/domain/entity"
	"github.com/tu-usuario/stock-erp/internal/store"
)

func TestNextCategoryID_Secuencial(t *testing.T) {
	st := store.New()

	assert.Equal(t, 1, st.NextCategoryID())
	st.AddCategory(entity.Category{ID: 1, Name: "Vêtements"})
	assert.Equal(t, 2, st.NextCategoryID())
}

// Los ids nunca se reutilizan dentro de la vida del proceso, ni siquiera
// tras borrar el id máximo.
func TestNextCategoryID_NoReutilizaTrasBorrado(t *testing.T) {
	st := store.New()

	st.AddCategory(entity.Category{ID: st.NextCategoryID(), Name: "A"})
	id2 := st.NextCategoryID()
	st.AddCategory(entity.Category{ID: id2, Name: "B"})
	require.Equal(t, 2, id2)

	require.True(t, st.RemoveCategory(2))
	assert.Equal(t, 3, st.NextCategoryID(),
		"el id 2 no debe reasignarse tras borrarlo")
}

func TestNextProductID_SiembraDesdeCarga(t *testing.T) {
	st := store.New()
	st.ReplaceProducts([]entity.Product{
		{ID: 7, Reference: "REF-7", Name: "Siete"},
		{ID: 3, Reference: "REF-3", Name: "Tres"},
	})

	assert.Equal(t, 8, st.NextProductID(),
		"el siguiente id debe superar el máximo cargado")
}

func TestAddRemoveFind_Producto(t *testing.T) {
	st := store.New()
	p := entity.Product{
		ID:        st.NextProductID(),
		Reference: "TSH-001",
		Name:      "T-shirt",
		Price:     decimal.NewFromFloat(19.99),
		Variants:  []entity.Variant{entity.NewVariant("TSH-001", "M", "Rouge", 5)},
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	st.AddProduct(p)

	found, ok := st.FindProductByID(p.ID)
	require.True(t, ok)
	assert.Equal(t, "TSH-001", found.Reference)
	assert.Equal(t, "TSH-001-M-Rouge", found.Variants[0].SKU)

	byRef, ok := st.FindProductByReference("TSH-001")
	require.True(t, ok)
	assert.Equal(t, p.ID, byRef.ID)

	require.True(t, st.RemoveProduct(p.ID))
	_, ok = st.FindProductByID(p.ID)
	assert.False(t, ok)
	assert.False(t, st.RemoveProduct(p.ID), "borrar dos veces no debe encontrar nada")
}

// Borrar una categoría referenciada no toca el producto: la referencia
// queda colgando y los lectores la toleran.
func TestRemoveCategory_SinCascada(t *testing.T) {
	st := store.New()
	st.AddCategory(entity.Category{ID: 1, Name: "Chaussures"})
	st.AddProduct(entity.Product{ID: 1, Reference: "CHS-001", Name: "Basket", CategoryID: 1})

	require.True(t, st.RemoveCategory(1))

	p, ok := st.FindProductByID(1)
	require.True(t, ok)
	assert.Equal(t, 1, p.CategoryID, "el id colgante se conserva tal cual")
	_, ok = st.FindCategoryByID(1)
	assert.False(t, ok)
}

func TestCollections_DevuelvenCopias(t *testing.T) {
	st := store.New()
	st.AddProduct(entity.Product{
		ID: 1, Reference: "R", Name: "N",
		Variants: []entity.Variant{{Size: "M", Color: "Bleu", Quantity: 4}},
	})

	list := st.Products()
	list[0].Name = "mutado"
	list[0].Variants[0].Quantity = 999

	original, _ := st.FindProductByID(1)
	assert.Equal(t, "N", original.Name, "mutar la copia no debe tocar el store")
	assert.Equal(t, 4, original.Variants[0].Quantity)
}

func TestReplace_SustituyeNoFusiona(t *testing.T) {
	st := store.New()
	st.AddSupplier(entity.Supplier{ID: 1, Name: "Textiles SA"})

	st.ReplaceSuppliers([]entity.Supplier{{ID: 9, Name: "Nuevo"}})

	sups := st.Suppliers()
	require.Len(t, sups, 1)
	assert.Equal(t, 9, sups[0].ID)
	assert.Equal(t, 10, st.NextSupplierID())
}

func TestSnapshot_Consistente(t *testing.T) {
	st := store.New()
	st.AddCategory(entity.Category{ID: 1, Name: "Accessoires"})
	st.AddMovement(entity.Movement{ID: 1, ProductID: 1, Type: entity.MovementTypeIn, Quantity: 10, Date: time.Now()})

	snap := st.Snapshot()
	assert.Len(t, snap.Categories, 1)
	assert.Len(t, snap.Movements, 1)
	assert.Empty(t, snap.Products)
	assert.Empty(t, snap.Suppliers)
}
