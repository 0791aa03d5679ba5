package catalog

import "github.com/jhoicas/catalogo-api/internal/domain/entity"

// PageState posición de paginación actual. CurrentPage es 1-indexed y el caller
// debe re-clamparlo (vía Paginate) cada vez que cambia el tamaño del filtrado.
type PageState struct {
	PageSize    int
	CurrentPage int
}

// Page resultado de paginar el subconjunto filtrado.
type Page struct {
	Items       []entity.Product
	TotalPages  int
	CurrentPage int
}

// TotalPages calcula max(1, ceil(n/pageSize)); con colección vacía siempre hay
// una página (vacía).
func TotalPages(n, pageSize int) int {
	if pageSize <= 0 {
		return 1
	}
	total := (n + pageSize - 1) / pageSize
	if total < 1 {
		return 1
	}
	return total
}

// ClampPage ajusta page al rango [1, total]. Nunca confiar en un número de
// página viejo: tras un filtro o un delete puede apuntar más allá del final.
func ClampPage(page, total int) int {
	if page < 1 {
		return 1
	}
	if page > total {
		return total
	}
	return page
}

// Paginate corta el filtrado en la página vigente. Función pura; la última
// página puede quedar corta y con entrada vacía devuelve items=[] y página 1/1.
func Paginate(filtered []entity.Product, ps PageState) Page {
	total := TotalPages(len(filtered), ps.PageSize)
	current := ClampPage(ps.CurrentPage, total)

	start := (current - 1) * ps.PageSize
	end := start + ps.PageSize
	if start > len(filtered) {
		start = len(filtered)
	}
	if end > len(filtered) {
		end = len(filtered)
	}
	items := make([]entity.Product, end-start)
	copy(items, filtered[start:end])

	return Page{Items: items, TotalPages: total, CurrentPage: current}
}
