package ports

import (
	"context"

	"github.com/jhoicas/catalogo-api/internal/domain/entity"
)

// CatalogXMLExporter puerto para serializar el snapshot del catálogo a XML.
type CatalogXMLExporter interface {
	ExportCatalogXML(products []entity.Product) ([]byte, error)
}

// CatalogPDFGenerator puerto para la representación gráfica del catálogo.
type CatalogPDFGenerator interface {
	GenerateCatalogPDF(ctx context.Context, products []entity.Product) ([]byte, error)
}
