package analytics

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/tu-usuario/stock-erp/internal/domain/entity"
)

// Filter son los criterios de la tabla de productos. Query se compara por
// subcadena sin distinguir mayúsculas ni acentos contra referencia y nombre;
// CategoryID y SupplierID son coincidencia exacta, 0 desactiva el criterio.
// Los criterios se intersectan.
type Filter struct {
	Query      string
	CategoryID int
	SupplierID int
}

// FilterProducts recalcula la selección en cada llamada, nunca la cachea.
func (d *Dashboard) FilterProducts(f Filter) []entity.Product {
	query := searchFold(f.Query)

	var out []entity.Product
	for _, p := range d.store.Products() {
		if query != "" &&
			!strings.Contains(searchFold(p.Reference), query) &&
			!strings.Contains(searchFold(p.Name), query) {
			continue
		}
		if f.CategoryID != 0 && p.CategoryID != f.CategoryID {
			continue
		}
		if f.SupplierID != 0 && p.SupplierID != f.SupplierID {
			continue
		}
		out = append(out, p)
	}
	return out
}

// searchFold normaliza para búsqueda: minúsculas y sin marcas diacríticas,
// de modo que "reference" encuentre "Référence". Los datos de producto
// vienen en francés y un ToLower a secas no basta.
func searchFold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(folded)
}
