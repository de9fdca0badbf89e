// Package store mantiene las cuatro colecciones en memoria (categorías,
// proveedores, productos, movimientos) como única fuente de verdad del
// proceso. El Store se construye una sola vez al arrancar y se pasa por
// referencia a cada colaborador; no hay estado ambiental a nivel de paquete.
//
// Las colecciones preservan el orden de inserción. El Store no valida
// referencias cruzadas: borrar una categoría referenciada por un producto
// deja el id colgando y los lectores lo toleran. La persistencia es un paso
// explícito aparte que el llamador debe invocar.
package store

import (
	"sync"

	"github.com/tu-usuario/stock-erp/internal/domain/entity"
)

// Store es el repositorio en memoria. Todas las operaciones son seguras para
// uso concurrente: el guardado periódico en segundo plano toma snapshots
// mientras las mutaciones interactivas siguen llegando.
type Store struct {
	mu sync.RWMutex

	categories []entity.Category
	suppliers  []entity.Supplier
	products   []entity.Product
	movements  []entity.Movement

	// Marcas de agua por colección: los ids asignados nunca se reutilizan
	// dentro de la vida del proceso, ni siquiera tras borrar el máximo.
	lastCategoryID int
	lastSupplierID int
	lastProductID  int
	lastMovementID int
}

// New construye un Store vacío.
func New() *Store {
	return &Store{}
}

// Snapshot es una copia consistente de las cuatro colecciones, tomada bajo
// el lock para que la serialización no corra contra mutaciones.
type Snapshot struct {
	Categories []entity.Category
	Suppliers  []entity.Supplier
	Products   []entity.Product
	Movements  []entity.Movement
}

// Snapshot copia las cuatro colecciones. Los slices anidados de los
// productos (variants, photos) se copian también.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		Categories: append([]entity.Category(nil), s.categories...),
		Suppliers:  append([]entity.Supplier(nil), s.suppliers...),
		Products:   copyProducts(s.products),
		Movements:  append([]entity.Movement(nil), s.movements...),
	}
}

func copyProducts(src []entity.Product) []entity.Product {
	out := make([]entity.Product, len(src))
	for i, p := range src {
		p.Variants = append([]entity.Variant(nil), p.Variants...)
		p.Photos = append([]string(nil), p.Photos...)
		out[i] = p
	}
	return out
}

// ── Categorías ────────────────────────────────────────────────────────────────

// Categories devuelve una copia de la colección de categorías.
func (s *Store) Categories() []entity.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]entity.Category(nil), s.categories...)
}

// NextCategoryID asigna el siguiente id: max(ids existentes, marca de agua)+1.
func (s *Store) NextCategoryID() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.categories {
		if c.ID > s.lastCategoryID {
			s.lastCategoryID = c.ID
		}
	}
	s.lastCategoryID++
	return s.lastCategoryID
}

// AddCategory añade al final. El llamador debe haber asignado un id único.
func (s *Store) AddCategory(c entity.Category) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.categories = append(s.categories, c)
	if c.ID > s.lastCategoryID {
		s.lastCategoryID = c.ID
	}
}

// UpdateCategory reemplaza la categoría con el mismo id. Devuelve false si
// no existe.
func (s *Store) UpdateCategory(c entity.Category) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.categories {
		if s.categories[i].ID == c.ID {
			s.categories[i] = c
			return true
		}
	}
	return false
}

// RemoveCategory elimina por id. No hay borrado en cascada: los productos
// que la referencien quedan con el id colgando.
func (s *Store) RemoveCategory(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.categories {
		if s.categories[i].ID == id {
			s.categories = append(s.categories[:i], s.categories[i+1:]...)
			return true
		}
	}
	return false
}

// FindCategoryByID devuelve la primera coincidencia (escaneo O(n)).
func (s *Store) FindCategoryByID(id int) (entity.Category, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.categories {
		if c.ID == id {
			return c, true
		}
	}
	return entity.Category{}, false
}

// ReplaceCategories sustituye la colección completa (carga desde disco) y
// re-siembra la marca de agua con el máximo id cargado.
func (s *Store) ReplaceCategories(cats []entity.Category) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.categories = append([]entity.Category(nil), cats...)
	for _, c := range s.categories {
		if c.ID > s.lastCategoryID {
			s.lastCategoryID = c.ID
		}
	}
}

// ── Proveedores ───────────────────────────────────────────────────────────────

// Suppliers devuelve una copia de la colección de proveedores.
func (s *Store) Suppliers() []entity.Supplier {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]entity.Supplier(nil), s.suppliers...)
}

// NextSupplierID asigna el siguiente id de proveedor.
func (s *Store) NextSupplierID() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.suppliers {
		if p.ID > s.lastSupplierID {
			s.lastSupplierID = p.ID
		}
	}
	s.lastSupplierID++
	return s.lastSupplierID
}

// AddSupplier añade al final.
func (s *Store) AddSupplier(p entity.Supplier) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.suppliers = append(s.suppliers, p)
	if p.ID > s.lastSupplierID {
		s.lastSupplierID = p.ID
	}
}

// UpdateSupplier reemplaza el proveedor con el mismo id.
func (s *Store) UpdateSupplier(p entity.Supplier) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.suppliers {
		if s.suppliers[i].ID == p.ID {
			s.suppliers[i] = p
			return true
		}
	}
	return false
}

// RemoveSupplier elimina por id, sin cascada.
func (s *Store) RemoveSupplier(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.suppliers {
		if s.suppliers[i].ID == id {
			s.suppliers = append(s.suppliers[:i], s.suppliers[i+1:]...)
			return true
		}
	}
	return false
}

// FindSupplierByID devuelve la primera coincidencia.
func (s *Store) FindSupplierByID(id int) (entity.Supplier, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.suppliers {
		if p.ID == id {
			return p, true
		}
	}
	return entity.Supplier{}, false
}

// ReplaceSuppliers sustituye la colección completa.
func (s *Store) ReplaceSuppliers(sups []entity.Supplier) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.suppliers = append([]entity.Supplier(nil), sups...)
	for _, p := range s.suppliers {
		if p.ID > s.lastSupplierID {
			s.lastSupplierID = p.ID
		}
	}
}

// ── Productos ─────────────────────────────────────────────────────────────────

// Products devuelve una copia de la colección de productos.
func (s *Store) Products() []entity.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyProducts(s.products)
}

// NextProductID asigna el siguiente id de producto.
func (s *Store) NextProductID() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.products {
		if p.ID > s.lastProductID {
			s.lastProductID = p.ID
		}
	}
	s.lastProductID++
	return s.lastProductID
}

// AddProduct añade al final. El import CSV conserva los ids del fichero, por
// lo que aquí pueden entrar ids duplicados; el Store no los rechaza.
func (s *Store) AddProduct(p entity.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = append(s.products, p)
	if p.ID > s.lastProductID {
		s.lastProductID = p.ID
	}
}

// UpdateProduct reemplaza el producto con el mismo id.
func (s *Store) UpdateProduct(p entity.Product) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID == p.ID {
			s.products[i] = p
			return true
		}
	}
	return false
}

// RemoveProduct elimina por id, sin cascada sobre los movimientos.
func (s *Store) RemoveProduct(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return true
		}
	}
	return false
}

// FindProductByID devuelve la primera coincidencia.
func (s *Store) FindProductByID(id int) (entity.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.products {
		if p.ID == id {
			cp := p
			cp.Variants = append([]entity.Variant(nil), p.Variants...)
			cp.Photos = append([]string(nil), p.Photos...)
			return cp, true
		}
	}
	return entity.Product{}, false
}

// FindProductByReference devuelve el primer producto con esa referencia.
// Reference no es única; el primero en orden de inserción gana.
func (s *Store) FindProductByReference(ref string) (entity.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.products {
		if p.Reference == ref {
			cp := p
			cp.Variants = append([]entity.Variant(nil), p.Variants...)
			cp.Photos = append([]string(nil), p.Photos...)
			return cp, true
		}
	}
	return entity.Product{}, false
}

// ReplaceProducts sustituye la colección completa.
func (s *Store) ReplaceProducts(prods []entity.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = copyProducts(prods)
	for _, p := range s.products {
		if p.ID > s.lastProductID {
			s.lastProductID = p.ID
		}
	}
}

// ── Movimientos ───────────────────────────────────────────────────────────────

// Movements devuelve una copia de la colección de movimientos.
func (s *Store) Movements() []entity.Movement {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]entity.Movement(nil), s.movements...)
}

// NextMovementID asigna el siguiente id de movimiento.
func (s *Store) NextMovementID() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range s.movements {
		if m.ID > s.lastMovementID {
			s.lastMovementID = m.ID
		}
	}
	s.lastMovementID++
	return s.lastMovementID
}

// AddMovement añade al final.
func (s *Store) AddMovement(m entity.Movement) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.movements = append(s.movements, m)
	if m.ID > s.lastMovementID {
		s.lastMovementID = m.ID
	}
}

// ReplaceMovements sustituye la colección completa.
func (s *Store) ReplaceMovements(movs []entity.Movement) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.movements = append([]entity.Movement(nil), movs...)
	for _, m := range s.movements {
		if m.ID > s.lastMovementID {
			s.lastMovementID = m.ID
		}
	}
}
