package inventory

import (
	"context"

	"github.com/tu-usuario/stock-erp/internal/store"
)

// SaveResult reporta cómo terminó un guardado completo. Los errores locales
// y el del espejo remoto quedan aquí como dato observable; ninguno
// interrumpe la acción del usuario que disparó el guardado.
type SaveResult struct {
	FileErrs  map[string]error // fichero -> error de escritura local
	MirrorErr error            // nil si el espejo no está configurado o tuvo éxito
}

// LocalOK indica si las cuatro escrituras locales terminaron bien.
func (r SaveResult) LocalOK() bool {
	return len(r.FileErrs) == 0
}

// Saver es el puerto hacia la capa de persistencia: guardado completo de las
// cuatro colecciones tras cada mutación. La implementación concreta vive en
// infrastructure/jsonfile; para tests se inyecta un fake.
type Saver interface {
	Save(ctx context.Context, st *store.Store) SaveResult
}
