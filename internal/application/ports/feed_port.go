package ports

import (
	"context"

	"github.com/jhoicas/catalogo-api/internal/domain/entity"
)

// CatalogFeed puerto de la fuente remota de catálogo. Puede ser lenta, puede
// repetir ids entre llamadas y no garantiza orden estable: el dedup es
// responsabilidad del ProductStore, no del feed.
type CatalogFeed interface {
	FetchPage(ctx context.Context, skip, limit int) ([]entity.Product, error)
}
