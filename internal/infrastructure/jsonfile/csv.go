package jsonfile

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/stock-erp/internal/domain"
	"github.com/tu-usuario/stock-erp/internal/domain/entity"
	"github.com/tu-usuario/stock-erp/internal/store"
)

// Nombres de colección aceptados por el import/export CSV.
const (
	CollectionCategories = "categories"
	CollectionSuppliers  = "suppliers"
	CollectionProducts   = "products"
	CollectionMovements  = "movements"
)

var productCSVHeader = []string{
	"id", "reference", "name", "category_id", "supplier_id",
	"price", "variants", "photos", "barcode", "description",
}

// ExportCSV vuelca una colección a un fichero CSV en la ruta indicada.
// Para productos, las secuencias variants y photos se embeben como celdas
// con JSON anidado; el resto de colecciones se aplanan campo a campo.
func (s *Storage) ExportCSV(path, collection string, st *store.Store) error {
	snap := st.Snapshot()

	var header []string
	var rows [][]string
	switch collection {
	case CollectionProducts:
		header = productCSVHeader
		for _, p := range snap.Products {
			row, err := productCSVRow(p)
			if err != nil {
				return fmt.Errorf("exportar producto %d: %w", p.ID, err)
			}
			rows = append(rows, row)
		}
	case CollectionCategories:
		header = []string{"id", "name", "parent_id"}
		for _, c := range snap.Categories {
			parent := ""
			if c.ParentID != 0 {
				parent = strconv.Itoa(c.ParentID)
			}
			rows = append(rows, []string{strconv.Itoa(c.ID), c.Name, parent})
		}
	case CollectionSuppliers:
		header = []string{"id", "name", "contact", "email", "phone"}
		for _, p := range snap.Suppliers {
			rows = append(rows, []string{strconv.Itoa(p.ID), p.Name, p.Contact, p.Email, p.Phone})
		}
	case CollectionMovements:
		header = []string{"id", "product_id", "type", "quantity", "reason", "user", "date"}
		for _, m := range snap.Movements {
			rows = append(rows, []string{
				strconv.Itoa(m.ID), strconv.Itoa(m.ProductID), m.Type,
				strconv.Itoa(m.Quantity), m.Reason, m.User, formatISO(m.Date),
			})
		}
	default:
		return fmt.Errorf("colección %q: %w", collection, domain.ErrInvalidInput)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("crear %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("escribir cabecera: %w", err)
	}
	if err := w.WriteAll(rows); err != nil {
		return fmt.Errorf("escribir filas: %w", err)
	}
	w.Flush()
	return w.Error()
}

func productCSVRow(p entity.Product) ([]string, error) {
	variants, err := json.Marshal(variantRecords(p.Variants))
	if err != nil {
		return nil, err
	}
	photos, err := json.Marshal(p.Photos)
	if err != nil {
		return nil, err
	}
	return []string{
		strconv.Itoa(p.ID),
		p.Reference,
		p.Name,
		strconv.Itoa(p.CategoryID),
		strconv.Itoa(p.SupplierID),
		p.Price.String(),
		string(variants),
		string(photos),
		p.Barcode,
		p.Description,
	}, nil
}

// ImportCSV lee un CSV exportado y APPENDEA sus filas a la colección: no
// deduplica ni reemplaza por referencia o id, de modo que importar dos veces
// el mismo fichero duplica los productos (ids incluidos). Solo la colección
// de productos está soportada. Si una fila falla a mitad, las filas ya
// importadas permanecen en el store.
func (s *Storage) ImportCSV(path, collection string, st *store.Store) error {
	if collection != CollectionProducts {
		return fmt.Errorf("colección %q: %w", collection, domain.ErrInvalidInput)
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("abrir %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	rows, err := r.ReadAll()
	if err != nil {
		return fmt.Errorf("leer %s: %w", path, err)
	}
	if len(rows) == 0 {
		return fmt.Errorf("%s: fichero vacío: %w", path, domain.ErrInvalidInput)
	}

	col := map[string]int{}
	for i, name := range rows[0] {
		col[name] = i
	}
	for _, name := range productCSVHeader {
		if _, ok := col[name]; !ok {
			return fmt.Errorf("columna %q ausente: %w", name, domain.ErrInvalidInput)
		}
	}

	imported := 0
	for _, row := range rows[1:] {
		p, err := productFromCSVRow(row, col)
		if err != nil {
			return fmt.Errorf("fila %d: %w", imported+1, err)
		}
		st.AddProduct(p)
		imported++
	}
	s.log.Info().Int("products", imported).Str("path", path).Msg("import CSV completado")
	return nil
}

func productFromCSVRow(row []string, col map[string]int) (entity.Product, error) {
	id, err := strconv.Atoi(row[col["id"]])
	if err != nil {
		return entity.Product{}, fmt.Errorf("id: %w", err)
	}
	categoryID, err := strconv.Atoi(row[col["category_id"]])
	if err != nil {
		return entity.Product{}, fmt.Errorf("category_id: %w", err)
	}
	supplierID, err := strconv.Atoi(row[col["supplier_id"]])
	if err != nil {
		return entity.Product{}, fmt.Errorf("supplier_id: %w", err)
	}
	price, err := decimal.NewFromString(row[col["price"]])
	if err != nil {
		return entity.Product{}, fmt.Errorf("price: %w", err)
	}

	var variants []variantRecord
	if cell := row[col["variants"]]; cell != "" {
		if err := json.Unmarshal([]byte(cell), &variants); err != nil {
			return entity.Product{}, fmt.Errorf("variants: %w", err)
		}
	}
	var photos []string
	if cell := row[col["photos"]]; cell != "" {
		if err := json.Unmarshal([]byte(cell), &photos); err != nil {
			return entity.Product{}, fmt.Errorf("photos: %w", err)
		}
	}

	entityVariants := make([]entity.Variant, len(variants))
	for i, v := range variants {
		entityVariants[i] = v.toEntity()
	}

	now := time.Now()
	return entity.Product{
		ID:          id,
		Reference:   row[col["reference"]],
		Name:        row[col["name"]],
		CategoryID:  categoryID,
		SupplierID:  supplierID,
		Price:       price,
		Variants:    entityVariants,
		Photos:      photos,
		Barcode:     row[col["barcode"]],
		Description: row[col["description"]],
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// ExportProductsJSON vuelca solo la colección de productos a la ruta
// indicada, con el mismo esquema de records que products.json.
func (s *Storage) ExportProductsJSON(path string, st *store.Store) error {
	snap := st.Snapshot()
	payload, err := json.MarshalIndent(productRecords(snap.Products), "", "    ")
	if err != nil {
		return fmt.Errorf("serializar productos: %w", err)
	}
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return fmt.Errorf("escribir %s: %w", path, err)
	}
	return nil
}
