package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/catalogo-api/internal/domain/entity"
)

func sampleProducts() []entity.Product {
	return []entity.Product{
		{ID: 1, Title: "Café Premium", Brand: "Juan Valdez", Category: "bebidas", Price: decimal.NewFromInt(35), Stock: 10},
		{ID: 2, Title: "Teclado mecánico", Brand: "Logitech", Category: "tecnologia", Price: decimal.NewFromInt(250), Stock: 5},
		{ID: 3, Title: "Cafetera italiana", Brand: "Oster", Category: "hogar", Price: decimal.NewFromInt(120), Stock: 0},
		{ID: 4, Title: "Mouse inalámbrico", Brand: "Logitech", Category: "tecnologia", Price: decimal.NewFromInt(80), Stock: 3},
	}
}

func TestFold_QuitaTildesYMayusculas(t *testing.T) {
	assert.Equal(t, "cafe premium", Fold("Café Premium"))
	assert.Equal(t, "teclado mecanico", Fold("Teclado MECÁNICO"))
	assert.Equal(t, "nino", Fold("Niño"))
}

// La búsqueda es substring sobre el título, sin distinguir mayúsculas ni tildes.
func TestApplyFilters_BusquedaIgnoraTildes(t *testing.T) {
	got := ApplyFilters(sampleProducts(), Criteria{SearchText: "cafe"})

	ids := make([]int, 0, len(got))
	for _, p := range got {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []int{1, 3}, ids, "cafe debe encontrar Café y Cafetera en orden de entrada")
}

func TestApplyFilters_EspaciosAlrededorNoAfectan(t *testing.T) {
	got := ApplyFilters(sampleProducts(), Criteria{SearchText: "  teclado  "})
	assert.Len(t, got, 1)
	assert.Equal(t, 2, got[0].ID)
}

// Criterios vacíos significan "sin restricción": pasan todos los productos.
func TestApplyFilters_SinCriteriosDevuelveTodo(t *testing.T) {
	in := sampleProducts()
	got := ApplyFilters(in, Criteria{})
	assert.Equal(t, in, got)
}

// Las tres condiciones son conjuntivas.
func TestApplyFilters_Conjuntivo(t *testing.T) {
	got := ApplyFilters(sampleProducts(), Criteria{
		SearchText: "o",
		Categories: []string{"tecnologia"},
		Brands:     []string{"Logitech"},
	})

	ids := make([]int, 0, len(got))
	for _, p := range got {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []int{2, 4}, ids)
}

func TestApplyFilters_CategoriaSinCoincidencias(t *testing.T) {
	got := ApplyFilters(sampleProducts(), Criteria{Categories: []string{"juguetes"}})
	assert.Empty(t, got)
}

func TestToggleValue_AgregaYQuita(t *testing.T) {
	sel := ToggleValue(nil, "bebidas")
	assert.Equal(t, []string{"bebidas"}, sel)

	sel = ToggleValue(sel, "hogar")
	assert.Equal(t, []string{"bebidas", "hogar"}, sel)

	sel = ToggleValue(sel, "bebidas")
	assert.Equal(t, []string{"hogar"}, sel)
}

// ToggleValue no debe mutar el slice de entrada: el criterio anterior puede
// seguir referenciado por una vista ya derivada.
func TestToggleValue_NoMutaLaEntrada(t *testing.T) {
	orig := []string{"a", "b", "c"}
	_ = ToggleValue(orig, "b")
	assert.Equal(t, []string{"a", "b", "c"}, orig)
}

func TestDistinct_OrdenDePrimeraAparicionYSinVacios(t *testing.T) {
	products := sampleProducts()
	products = append(products, entity.Product{ID: 5, Title: "Genérico", Brand: "", Category: "bebidas"})

	assert.Equal(t, []string{"bebidas", "tecnologia", "hogar"}, DistinctCategories(products))
	assert.Equal(t, []string{"Juan Valdez", "Logitech", "Oster"}, DistinctBrands(products),
		"la marca vacía no debe aparecer como opción de filtro")
}
