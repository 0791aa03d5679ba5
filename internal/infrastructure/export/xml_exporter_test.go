package export

import (
	"testing"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalogo-api/internal/domain/entity"
)

func TestExportCatalogXML(t *testing.T) {
	products := []entity.Product{
		{ID: 3, Title: "Café Premium", Brand: "Juan Valdez", Category: "bebidas",
			Price: decimal.RequireFromString("35.50"), Stock: 10, Thumbnail: "https://cdn.example/3.jpg",
			Description: "Café de origen"},
		{ID: 1, Title: "Sin descripción", Brand: "Oster", Category: "hogar",
			Price: decimal.NewFromInt(120), Stock: 0},
	}

	out, err := NewXMLExporter().ExportCatalogXML(products)
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(out))

	root := doc.SelectElement("catalog")
	require.NotNil(t, root)
	assert.Equal(t, "2", root.SelectAttrValue("count", ""))

	nodes := root.SelectElements("product")
	require.Len(t, nodes, 2)

	// El orden de la colección se respeta (3 antes que 1).
	assert.Equal(t, "3", nodes[0].SelectAttrValue("id", ""))
	assert.Equal(t, "Café Premium", nodes[0].SelectElement("title").Text())
	assert.Equal(t, "35.50", nodes[0].SelectElement("price").Text())
	assert.Equal(t, "Café de origen", nodes[0].SelectElement("description").Text())

	assert.Equal(t, "1", nodes[1].SelectAttrValue("id", ""))
	assert.Equal(t, "0", nodes[1].SelectElement("stock").Text())
	assert.Nil(t, nodes[1].SelectElement("description"), "descripción vacía no genera nodo")
}

func TestExportCatalogXML_Vacio(t *testing.T) {
	out, err := NewXMLExporter().ExportCatalogXML(nil)
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(out))

	root := doc.SelectElement("catalog")
	require.NotNil(t, root)
	assert.Equal(t, "0", root.SelectAttrValue("count", ""))
	assert.Empty(t, root.SelectElements("product"))
}
