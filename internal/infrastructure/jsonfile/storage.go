// Package jsonfile implementa la persistencia plana de las cuatro
// colecciones: un fichero JSON por colección dentro de un directorio de
// datos, más import/export CSV y el volcado JSON de productos.
//
// El guardado reescribe cada fichero completo; no hay append incremental ni
// rename atómico, un corte a mitad de escritura puede dejar el fichero
// corrupto (riesgo asumido y documentado). La carga reemplaza cada colección
// al completo; un fichero ausente deja su colección intacta.
package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/tu-usuario/stock-erp/internal/application/inventory"
	"github.com/tu-usuario/stock-erp/internal/store"
	"github.com/tu-usuario/stock-erp/pkg/logger"
)

// Nombres fijos de los ficheros de datos.
const (
	categoriesFile = "categories.json"
	suppliersFile  = "suppliers.json"
	productsFile   = "products.json"
	movementsFile  = "movements.json"
)

// Mirror es el puerto de salida hacia el espejo remoto. La implementación
// concreta vive en infrastructure/mirror; para tests se inyecta un fake.
type Mirror interface {
	Push(ctx context.Context, data Dataset) error
}

// Storage persiste el store en el directorio de datos.
type Storage struct {
	dir    string
	mirror Mirror // opcional; nil desactiva el espejo
	log    *logger.Logger
}

// New construye el Storage. mirror puede ser nil.
func New(dir string, mirror Mirror, log *logger.Logger) *Storage {
	return &Storage{dir: dir, mirror: mirror, log: log}
}

// Save serializa las cuatro colecciones, cada una a su fichero, y después
// intenta el push al espejo remoto. Los errores se registran y quedan en el
// resultado (inventory.SaveResult, el puerto que este Storage implementa);
// un fallo en un fichero no impide escribir los demás y un fallo del espejo
// jamás bloquea las escrituras locales. Save nunca propaga error.
func (s *Storage) Save(ctx context.Context, st *store.Store) inventory.SaveResult {
	snap := st.Snapshot()
	data := NewDataset(snap)

	result := inventory.SaveResult{FileErrs: map[string]error{}}
	s.writeFile(categoriesFile, data.Categories, &result)
	s.writeFile(suppliersFile, data.Suppliers, &result)
	s.writeFile(productsFile, data.Products, &result)
	s.writeFile(movementsFile, data.Movements, &result)

	if s.mirror != nil {
		if err := s.mirror.Push(ctx, data); err != nil {
			result.MirrorErr = err
			s.log.Warn().Err(err).Msg("push al espejo remoto fallido")
		}
	}
	return result
}

func (s *Storage) writeFile(name string, records any, result *inventory.SaveResult) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		result.FileErrs[name] = err
		s.log.Error().Err(err).Str("file", name).Msg("crear directorio de datos")
		return
	}
	payload, err := json.MarshalIndent(records, "", "    ")
	if err != nil {
		result.FileErrs[name] = err
		s.log.Error().Err(err).Str("file", name).Msg("serializar colección")
		return
	}
	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		result.FileErrs[name] = err
		s.log.Error().Err(err).Str("file", name).Msg("escribir fichero de datos")
	}
}

// Load puebla el store desde el directorio de datos. Es idempotente: cada
// llamada reemplaza, nunca fusiona. Un fichero ausente deja su colección
// como esté (el primer arranque parte con todo vacío). Un fichero malformado
// devuelve error nombrándolo; las colecciones ya reemplazadas conservan su
// contenido nuevo.
func (s *Storage) Load(st *store.Store) error {
	var cats []categoryRecord
	ok, err := s.readFile(categoriesFile, &cats)
	if err != nil {
		return err
	}
	if ok {
		st.ReplaceCategories(categoriesToEntities(cats))
	}

	var sups []supplierRecord
	ok, err = s.readFile(suppliersFile, &sups)
	if err != nil {
		return err
	}
	if ok {
		st.ReplaceSuppliers(suppliersToEntities(sups))
	}

	var prods []productRecord
	ok, err = s.readFile(productsFile, &prods)
	if err != nil {
		return err
	}
	if ok {
		entities, err := productsToEntities(prods)
		if err != nil {
			return fmt.Errorf("%s: %w", productsFile, err)
		}
		st.ReplaceProducts(entities)
	}

	var movs []movementRecord
	ok, err = s.readFile(movementsFile, &movs)
	if err != nil {
		return err
	}
	if ok {
		entities, err := movementsToEntities(movs)
		if err != nil {
			return fmt.Errorf("%s: %w", movementsFile, err)
		}
		st.ReplaceMovements(entities)
	}
	return nil
}

// readFile devuelve (false, nil) si el fichero no existe.
func (s *Storage) readFile(name string, dst any) (bool, error) {
	path := filepath.Join(s.dir, name)
	payload, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("leer %s: %w", name, err)
	}
	if err := json.Unmarshal(payload, dst); err != nil {
		return false, fmt.Errorf("parsear %s: %w", name, err)
	}
	return true, nil
}
