package jsonfile

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/stock-erp/internal/domain/entity"
	"github.com/tu-usuario/stock-erp/internal/store"
)

// Este fichero es el único punto de verdad del esquema serializado: cada
// entidad tiene su record con los nombres de campo del formato en disco.
// Añadir o quitar un campo se hace aquí, no implícitamente en la entidad.

func init() {
	// Los ficheros guardan los precios como números JSON planos, no como
	// strings entre comillas.
	decimal.MarshalJSONWithoutQuotes = true
}

// Las fechas se escriben en ISO-8601. Al leer se aceptan también los
// formatos sin zona horaria que producía la versión anterior de la
// aplicación.
var isoLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
}

func formatISO(t time.Time) string {
	return t.Format(time.RFC3339Nano)
}

func parseISO(s string) (time.Time, error) {
	var lastErr error
	for _, layout := range isoLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, fmt.Errorf("fecha %q: %w", s, lastErr)
}

// ── Records por entidad ───────────────────────────────────────────────────────

type categoryRecord struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	ParentID *int   `json:"parent_id"`
}

type supplierRecord struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Contact string `json:"contact"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
}

type variantRecord struct {
	Size     string `json:"size"`
	Color    string `json:"color"`
	Quantity int    `json:"quantity"`
	SKU      string `json:"sku"`
}

type productRecord struct {
	ID          int             `json:"id"`
	Reference   string          `json:"reference"`
	Name        string          `json:"name"`
	CategoryID  int             `json:"category_id"`
	SupplierID  int             `json:"supplier_id"`
	Price       decimal.Decimal `json:"price"`
	Variants    []variantRecord `json:"variants"`
	Photos      []string        `json:"photos"`
	Barcode     string          `json:"barcode"`
	Description string          `json:"description"`
	CreatedAt   string          `json:"created_at"`
	UpdatedAt   string          `json:"updated_at"`
}

type movementRecord struct {
	ID        int    `json:"id"`
	ProductID int    `json:"product_id"`
	Type      string `json:"type"`
	Quantity  int    `json:"quantity"`
	Reason    string `json:"reason"`
	User      string `json:"user"`
	Date      string `json:"date"`
}

// Dataset es la carga completa tal y como viaja al mirror remoto: las cuatro
// colecciones ya aplanadas a records.
type Dataset struct {
	Categories []categoryRecord `json:"categories"`
	Suppliers  []supplierRecord `json:"suppliers"`
	Products   []productRecord  `json:"products"`
	Movements  []movementRecord `json:"movements"`
}

// NewDataset aplana un snapshot del store al esquema serializado.
func NewDataset(snap store.Snapshot) Dataset {
	return Dataset{
		Categories: categoryRecords(snap.Categories),
		Suppliers:  supplierRecords(snap.Suppliers),
		Products:   productRecords(snap.Products),
		Movements:  movementRecords(snap.Movements),
	}
}

// ── Entidad → record ──────────────────────────────────────────────────────────

func categoryRecords(cats []entity.Category) []categoryRecord {
	out := make([]categoryRecord, len(cats))
	for i, c := range cats {
		rec := categoryRecord{ID: c.ID, Name: c.Name}
		if c.ParentID != 0 {
			parent := c.ParentID
			rec.ParentID = &parent
		}
		out[i] = rec
	}
	return out
}

func supplierRecords(sups []entity.Supplier) []supplierRecord {
	out := make([]supplierRecord, len(sups))
	for i, s := range sups {
		out[i] = supplierRecord{ID: s.ID, Name: s.Name, Contact: s.Contact, Email: s.Email, Phone: s.Phone}
	}
	return out
}

func variantRecords(vars []entity.Variant) []variantRecord {
	out := make([]variantRecord, len(vars))
	for i, v := range vars {
		out[i] = variantRecord{Size: v.Size, Color: v.Color, Quantity: v.Quantity, SKU: v.SKU}
	}
	return out
}

func productRecords(prods []entity.Product) []productRecord {
	out := make([]productRecord, len(prods))
	for i, p := range prods {
		out[i] = productRecord{
			ID:          p.ID,
			Reference:   p.Reference,
			Name:        p.Name,
			CategoryID:  p.CategoryID,
			SupplierID:  p.SupplierID,
			Price:       p.Price,
			Variants:    variantRecords(p.Variants),
			Photos:      append([]string{}, p.Photos...),
			Barcode:     p.Barcode,
			Description: p.Description,
			CreatedAt:   formatISO(p.CreatedAt),
			UpdatedAt:   formatISO(p.UpdatedAt),
		}
	}
	return out
}

func movementRecords(movs []entity.Movement) []movementRecord {
	out := make([]movementRecord, len(movs))
	for i, m := range movs {
		out[i] = movementRecord{
			ID:        m.ID,
			ProductID: m.ProductID,
			Type:      m.Type,
			Quantity:  m.Quantity,
			Reason:    m.Reason,
			User:      m.User,
			Date:      formatISO(m.Date),
		}
	}
	return out
}

// ── Record → entidad ──────────────────────────────────────────────────────────

func categoriesToEntities(recs []categoryRecord) []entity.Category {
	out := make([]entity.Category, len(recs))
	for i, r := range recs {
		out[i] = r.toEntity()
	}
	return out
}

func suppliersToEntities(recs []supplierRecord) []entity.Supplier {
	out := make([]entity.Supplier, len(recs))
	for i, r := range recs {
		out[i] = r.toEntity()
	}
	return out
}

func productsToEntities(recs []productRecord) ([]entity.Product, error) {
	out := make([]entity.Product, len(recs))
	for i, r := range recs {
		p, err := r.toEntity()
		if err != nil {
			return nil, err
		}
		out[i] = p
	}
	return out, nil
}

func movementsToEntities(recs []movementRecord) ([]entity.Movement, error) {
	out := make([]entity.Movement, len(recs))
	for i, r := range recs {
		m, err := r.toEntity()
		if err != nil {
			return nil, err
		}
		out[i] = m
	}
	return out, nil
}

func (r categoryRecord) toEntity() entity.Category {
	c := entity.Category{ID: r.ID, Name: r.Name}
	if r.ParentID != nil {
		c.ParentID = *r.ParentID
	}
	return c
}

func (r supplierRecord) toEntity() entity.Supplier {
	return entity.Supplier{ID: r.ID, Name: r.Name, Contact: r.Contact, Email: r.Email, Phone: r.Phone}
}

func (r variantRecord) toEntity() entity.Variant {
	return entity.Variant{Size: r.Size, Color: r.Color, Quantity: r.Quantity, SKU: r.SKU}
}

func (r productRecord) toEntity() (entity.Product, error) {
	createdAt, err := parseISO(r.CreatedAt)
	if err != nil {
		return entity.Product{}, fmt.Errorf("producto %d created_at: %w", r.ID, err)
	}
	updatedAt, err := parseISO(r.UpdatedAt)
	if err != nil {
		return entity.Product{}, fmt.Errorf("producto %d updated_at: %w", r.ID, err)
	}
	variants := make([]entity.Variant, len(r.Variants))
	for i, v := range r.Variants {
		variants[i] = v.toEntity()
	}
	return entity.Product{
		ID:          r.ID,
		Reference:   r.Reference,
		Name:        r.Name,
		CategoryID:  r.CategoryID,
		SupplierID:  r.SupplierID,
		Price:       r.Price,
		Variants:    variants,
		Photos:      append([]string{}, r.Photos...),
		Barcode:     r.Barcode,
		Description: r.Description,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}, nil
}

func (r movementRecord) toEntity() (entity.Movement, error) {
	date, err := parseISO(r.Date)
	if err != nil {
		return entity.Movement{}, fmt.Errorf("movimiento %d date: %w", r.ID, err)
	}
	return entity.Movement{
		ID:        r.ID,
		ProductID: r.ProductID,
		Type:      r.Type,
		Quantity:  r.Quantity,
		Reason:    r.Reason,
		User:      r.User,
		Date:      date,
	}, nil
}
