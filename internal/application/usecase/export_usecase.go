package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/application/ports"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

// ExportUseCase exporta el snapshot completo del catálogo. Lecturas puras: no
// hay semántica de merge ni efecto alguno sobre el store.
type ExportUseCase struct {
	store repository.ProductStore
	xml   ports.CatalogXMLExporter
	pdf   ports.CatalogPDFGenerator
}

// NewExportUseCase construye el caso de uso de exportación.
func NewExportUseCase(store repository.ProductStore, xml ports.CatalogXMLExporter, pdf ports.CatalogPDFGenerator) *ExportUseCase {
	return &ExportUseCase{store: store, xml: xml, pdf: pdf}
}

// JSON serializa la colección completa en orden, con sangría (mismo formato
// que el export del panel de administración).
func (uc *ExportUseCase) JSON() ([]byte, error) {
	products := uc.store.Snapshot()
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}
	b, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("export: serializar JSON: %w", err)
	}
	return b, nil
}

// XML serializa la colección completa vía el exportador etree.
func (uc *ExportUseCase) XML() ([]byte, error) {
	return uc.xml.ExportCatalogXML(uc.store.Snapshot())
}

// PDF genera la representación gráfica del catálogo (tabla de productos).
func (uc *ExportUseCase) PDF(ctx context.Context) ([]byte, error) {
	return uc.pdf.GenerateCatalogPDF(ctx, uc.store.Snapshot())
}
