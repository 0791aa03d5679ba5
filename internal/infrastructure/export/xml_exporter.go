// Package export serializa el snapshot del catálogo a formatos descargables.
package export

import (
	"fmt"
	"strconv"

	"github.com/beevik/etree"

	"github.com/jhoicas/catalogo-api/internal/application/ports"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
)

var _ ports.CatalogXMLExporter = (*XMLExporter)(nil)

// XMLExporter construye el documento <catalog> con un <product> por registro.
// El documento va sin firmar; el orden de la colección se respeta.
type XMLExporter struct{}

// NewXMLExporter crea el exportador.
func NewXMLExporter() *XMLExporter {
	return &XMLExporter{}
}

// ExportCatalogXML serializa la colección completa con sangría de dos espacios.
func (e *XMLExporter) ExportCatalogXML(products []entity.Product) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("catalog")
	root.CreateAttr("count", strconv.Itoa(len(products)))

	for _, p := range products {
		node := root.CreateElement("product")
		node.CreateAttr("id", strconv.Itoa(p.ID))
		node.CreateElement("title").SetText(p.Title)
		node.CreateElement("brand").SetText(p.Brand)
		node.CreateElement("category").SetText(p.Category)
		node.CreateElement("price").SetText(p.Price.String())
		node.CreateElement("stock").SetText(strconv.Itoa(p.Stock))
		node.CreateElement("thumbnail").SetText(p.Thumbnail)
		if p.Description != "" {
			node.CreateElement("description").SetText(p.Description)
		}
	}

	doc.Indent(2)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("export: serializar XML: %w", err)
	}
	return out, nil
}
