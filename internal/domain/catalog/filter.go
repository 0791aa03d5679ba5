package catalog

import (
	"slices"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/catalogo-api/internal/domain/entity"
)

// Criteria estado de filtrado activo. Un slice vacío significa "sin restricción",
// no "excluir todo": con cero categorías seleccionadas pasan todos los productos.
type Criteria struct {
	SearchText string
	Categories []string
	Brands     []string
}

// foldTransformer descompone y elimina marcas diacríticas (NFD → quitar Mn → NFC)
// para que "cafe" encuentre "Café". Los títulos del catálogo vienen en español.
var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold normaliza un texto para búsqueda: minúsculas y sin tildes.
func Fold(s string) string {
	out, _, err := transform.String(foldTransformer, s)
	if err != nil {
		return strings.ToLower(s)
	}
	return strings.ToLower(out)
}

// ApplyFilters deriva el subconjunto visible. Función pura: las tres condiciones
// (búsqueda en título, categorías, marcas) son conjuntivas y el orden de entrada
// se preserva. Es segura de invocar en cada pulsación o toggle.
func ApplyFilters(products []entity.Product, c Criteria) []entity.Product {
	q := Fold(strings.TrimSpace(c.SearchText))
	out := make([]entity.Product, 0, len(products))
	for _, p := range products {
		if q != "" && !strings.Contains(Fold(p.Title), q) {
			continue
		}
		if len(c.Categories) > 0 && !slices.Contains(c.Categories, p.Category) {
			continue
		}
		if len(c.Brands) > 0 && !slices.Contains(c.Brands, p.Brand) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// ToggleValue agrega el valor si no está seleccionado y lo quita si ya lo está.
func ToggleValue(selected []string, value string) []string {
	if i := slices.Index(selected, value); i >= 0 {
		return slices.Delete(slices.Clone(selected), i, i+1)
	}
	return append(slices.Clone(selected), value)
}

// DistinctCategories devuelve las categorías distintas en orden de primera aparición.
// Se recalcula siempre desde la colección viva (nunca se cachea).
func DistinctCategories(products []entity.Product) []string {
	return distinct(products, func(p entity.Product) string { return p.Category })
}

// DistinctBrands devuelve las marcas distintas en orden de primera aparición.
func DistinctBrands(products []entity.Product) []string {
	return distinct(products, func(p entity.Product) string { return p.Brand })
}

func distinct(products []entity.Product, key func(entity.Product) string) []string {
	seen := make(map[string]struct{}, len(products))
	out := make([]string, 0, len(products))
	for _, p := range products {
		k := key(p)
		if k == "" {
			continue
		}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}
