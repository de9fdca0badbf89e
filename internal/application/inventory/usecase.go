// Package inventory contiene los casos de uso de mutación: CRUD de
// categorías, proveedores y productos, y el ajuste de stock. La validación
// vive aquí, no en las entidades; cada mutación termina disparando un
// guardado completo a través del puerto Saver.
package inventory

import (
	"github.com/tu-usuario/stock-erp/internal/store"
	"github.com/tu-usuario/stock-erp/pkg/logger"
)

// UseCase agrupa las mutaciones sobre el store.
type UseCase struct {
	store *store.Store
	saver Saver
	log   *logger.Logger
}

// New construye el caso de uso.
func New(st *store.Store, saver Saver, log *logger.Logger) *UseCase {
	return &UseCase{store: st, saver: saver, log: log}
}
