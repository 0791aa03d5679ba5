package catalog

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalogo-api/internal/domain/entity"
)

func seqProducts(n int) []entity.Product {
	out := make([]entity.Product, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, entity.Product{ID: i, Title: fmt.Sprintf("Producto %d", i)})
	}
	return out
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 1, TotalPages(0, 12), "colección vacía sigue teniendo una página")
	assert.Equal(t, 1, TotalPages(12, 12))
	assert.Equal(t, 2, TotalPages(13, 12))
	assert.Equal(t, 3, TotalPages(30, 12))
	assert.Equal(t, 1, TotalPages(30, 0), "pageSize inválido degrada a una sola página")
}

func TestClampPage(t *testing.T) {
	assert.Equal(t, 1, ClampPage(0, 3))
	assert.Equal(t, 1, ClampPage(-5, 3))
	assert.Equal(t, 2, ClampPage(2, 3))
	assert.Equal(t, 3, ClampPage(99, 3))
}

// Con entrada vacía la página es [] y la posición queda en 1/1.
func TestPaginate_Vacio(t *testing.T) {
	page := Paginate(nil, PageState{PageSize: 12, CurrentPage: 4})

	assert.Empty(t, page.Items)
	assert.Equal(t, 1, page.TotalPages)
	assert.Equal(t, 1, page.CurrentPage)
}

// 30 productos con página de 12: la tercera página queda corta (6 items).
func TestPaginate_UltimaPaginaCorta(t *testing.T) {
	page := Paginate(seqProducts(30), PageState{PageSize: 12, CurrentPage: 3})

	require.Len(t, page.Items, 6)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, 3, page.CurrentPage)
	assert.Equal(t, 25, page.Items[0].ID)
	assert.Equal(t, 30, page.Items[5].ID)
}

// Una página fuera de rango se clampa al total antes de cortar.
func TestPaginate_ClampaPaginaFueraDeRango(t *testing.T) {
	page := Paginate(seqProducts(30), PageState{PageSize: 12, CurrentPage: 99})

	assert.Equal(t, 3, page.CurrentPage)
	assert.Len(t, page.Items, 6)
}

// El corte es una copia: mutar el resultado no toca el slice de entrada.
func TestPaginate_CopiaDefensiva(t *testing.T) {
	in := seqProducts(5)
	page := Paginate(in, PageState{PageSize: 3, CurrentPage: 1})

	page.Items[0].Title = "mutado"
	assert.Equal(t, "Producto 1", in[0].Title)
}
