package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/application/ports"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/catalog"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
	"github.com/jhoicas/catalogo-api/pkg/logger"
)

// CatalogUseCase gestor de estado del catálogo: reconcilia el store contra la
// fuente remota, mantiene los criterios de filtrado y la posición de página, y
// deriva la vista visible tras cada comando.
//
// El mutex solo protege criteria, page y loading. La llamada de red del fetch
// ocurre FUERA del lock: las mutaciones (add/edit/delete) emitidas mientras hay
// un fetch en vuelo se aplican de inmediato contra el store y el merge
// posterior solo agrega ids nunca vistos, así que no puede pisarlas.
type CatalogUseCase struct {
	store      repository.ProductStore
	feed       ports.CatalogFeed
	log        *logger.Logger
	pageSize   int
	fetchLimit int

	mu       sync.Mutex
	criteria catalog.Criteria
	page     catalog.PageState
	loading  bool
}

// NewCatalogUseCase construye el gestor. pageSize es el tamaño fijo de página
// visible (ej. 12) y fetchLimit el tamaño de página remota (ej. 30).
func NewCatalogUseCase(
	store repository.ProductStore,
	feed ports.CatalogFeed,
	log *logger.Logger,
	pageSize, fetchLimit int,
) *CatalogUseCase {
	return &CatalogUseCase{
		store:      store,
		feed:       feed,
		log:        log,
		pageSize:   pageSize,
		fetchLimit: fetchLimit,
		page:       catalog.PageState{PageSize: pageSize, CurrentPage: 1},
	}
}

// View deriva la vista actual sin mutar nada más que el re-clamp de página.
func (uc *CatalogUseCase) View() dto.CatalogViewResponse {
	products := uc.store.Snapshot()
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.viewLocked(products)
}

// viewLocked recalcula filtrado y paginación desde los insumos actuales y
// re-clampa CurrentPage: tras un filtro, un delete o un merge la página vigente
// no puede quedar apuntando más allá del final.
func (uc *CatalogUseCase) viewLocked(products []entity.Product) dto.CatalogViewResponse {
	filtered := catalog.ApplyFilters(products, uc.criteria)
	page := catalog.Paginate(filtered, uc.page)
	uc.page.CurrentPage = page.CurrentPage

	items := make([]dto.ProductResponse, 0, len(page.Items))
	for _, p := range page.Items {
		items = append(items, toProductResponse(p))
	}
	return dto.CatalogViewResponse{
		Items:              items,
		TotalPages:         page.TotalPages,
		CurrentPage:        page.CurrentPage,
		PageSize:           uc.pageSize,
		FilteredCount:      len(filtered),
		LoadedCount:        len(products),
		Loading:            uc.loading,
		SearchText:         uc.criteria.SearchText,
		Categories:         catalog.DistinctCategories(products),
		Brands:             catalog.DistinctBrands(products),
		SelectedCategories: uc.criteria.Categories,
		SelectedBrands:     uc.criteria.Brands,
	}
}

// ── Comandos de filtrado y navegación (síncronos e inmediatos) ───────────────

// SetSearchText fija el texto de búsqueda (substring del título, sin
// distinguir mayúsculas ni tildes).
func (uc *CatalogUseCase) SetSearchText(text string) dto.CatalogViewResponse {
	products := uc.store.Snapshot()
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.criteria.SearchText = text
	return uc.viewLocked(products)
}

// ToggleCategory agrega o quita la categoría del conjunto seleccionado.
func (uc *CatalogUseCase) ToggleCategory(value string) dto.CatalogViewResponse {
	products := uc.store.Snapshot()
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.criteria.Categories = catalog.ToggleValue(uc.criteria.Categories, value)
	return uc.viewLocked(products)
}

// ToggleBrand agrega o quita la marca del conjunto seleccionado.
func (uc *CatalogUseCase) ToggleBrand(value string) dto.CatalogViewResponse {
	products := uc.store.Snapshot()
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.criteria.Brands = catalog.ToggleValue(uc.criteria.Brands, value)
	return uc.viewLocked(products)
}

// ResetFilters limpia búsqueda y selecciones y vuelve a la página 1.
func (uc *CatalogUseCase) ResetFilters() dto.CatalogViewResponse {
	products := uc.store.Snapshot()
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.criteria = catalog.Criteria{}
	uc.page.CurrentPage = 1
	return uc.viewLocked(products)
}

// SetPage navega a la página n (se clampa contra el total vigente).
func (uc *CatalogUseCase) SetPage(n int) dto.CatalogViewResponse {
	products := uc.store.Snapshot()
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.page.CurrentPage = n
	return uc.viewLocked(products)
}

// NextPage avanza una página; en la última es no-op.
func (uc *CatalogUseCase) NextPage() dto.CatalogViewResponse {
	products := uc.store.Snapshot()
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.page.CurrentPage++
	return uc.viewLocked(products)
}

// PrevPage retrocede una página; en la primera es no-op.
func (uc *CatalogUseCase) PrevPage() dto.CatalogViewResponse {
	products := uc.store.Snapshot()
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if uc.page.CurrentPage > 1 {
		uc.page.CurrentPage--
	}
	return uc.viewLocked(products)
}

// ── Fetch incremental ────────────────────────────────────────────────────────

// LoadInitial siembra el store con la primera página remota.
func (uc *CatalogUseCase) LoadInitial(ctx context.Context) (dto.CatalogViewResponse, error) {
	return uc.fetch(ctx, true)
}

// RequestLoadMore trae la siguiente página remota con skip = tamaño actual del
// store. Si ya hay un fetch en vuelo la petición se ignora (ni cola ni
// requests duplicados): se devuelve la vista vigente sin error.
func (uc *CatalogUseCase) RequestLoadMore(ctx context.Context) (dto.CatalogViewResponse, error) {
	return uc.fetch(ctx, false)
}

func (uc *CatalogUseCase) fetch(ctx context.Context, initial bool) (dto.CatalogViewResponse, error) {
	uc.mu.Lock()
	if uc.loading {
		view := uc.viewLocked(uc.store.Snapshot())
		uc.mu.Unlock()
		uc.log.Debug().Bool("initial", initial).Msg("fetch ignorado: ya hay uno en vuelo")
		return view, nil
	}
	uc.loading = true
	uc.mu.Unlock()

	skip := 0
	if !initial {
		skip = uc.store.Size()
	}

	items, err := uc.feed.FetchPage(ctx, skip, uc.fetchLimit)
	if err == nil {
		// El dedup contra ids existentes es del store; el solapamiento entre
		// páginas remotas se tolera en silencio.
		inserted := uc.store.UpsertMany(items)
		uc.log.Info().
			Int("skip", skip).
			Int("recibidos", len(items)).
			Int("insertados", inserted).
			Msg("página remota mezclada")
	}

	uc.mu.Lock()
	uc.loading = false
	view := uc.viewLocked(uc.store.Snapshot())
	uc.mu.Unlock()

	if err != nil {
		uc.log.Error().Err(err).Int("skip", skip).Msg("fetch remoto fallido")
		return view, fmt.Errorf("%w: %v", domain.ErrFetch, err)
	}
	return view, nil
}

// ── Mutaciones locales (síncronas, todo-o-nada en el store) ──────────────────

// AddProduct crea un producto local; la nueva alta queda de primera en el snapshot.
func (uc *CatalogUseCase) AddProduct(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	p, err := uc.store.Add(entity.Product{
		Title:       in.Title,
		Brand:       in.Brand,
		Category:    in.Category,
		Price:       in.Price,
		Stock:       in.Stock,
		Thumbnail:   in.Thumbnail,
		Description: in.Description,
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Int("id", p.ID).Str("title", p.Title).Msg("producto creado")
	resp := toProductResponse(p)
	return &resp, nil
}

// EditProduct sobreescribe los campos presentes; ID y posición se conservan.
func (uc *CatalogUseCase) EditProduct(id int, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	p, err := uc.store.Edit(id, entity.ProductPatch{
		Title:       in.Title,
		Brand:       in.Brand,
		Category:    in.Category,
		Price:       in.Price,
		Stock:       in.Stock,
		Thumbnail:   in.Thumbnail,
		Description: in.Description,
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Int("id", id).Msg("producto actualizado")
	resp := toProductResponse(p)
	return &resp, nil
}

// DeleteProduct elimina el producto. El borrado es un override de esta sesión:
// si una página remota posterior trae el mismo id, se re-inserta.
func (uc *CatalogUseCase) DeleteProduct(id int) error {
	if err := uc.store.Delete(id); err != nil {
		return err
	}
	uc.log.Info().Int("id", id).Msg("producto eliminado")
	return nil
}

// Dashboard conteos del catálogo y las altas más recientes.
func (uc *CatalogUseCase) Dashboard() dto.DashboardResponse {
	products := uc.store.Snapshot()
	recent := make([]dto.ProductResponse, 0, 6)
	for _, p := range products {
		if len(recent) == 6 {
			break
		}
		recent = append(recent, toProductResponse(p))
	}
	return dto.DashboardResponse{
		TotalProducts:   len(products),
		TotalCategories: len(catalog.DistinctCategories(products)),
		TotalBrands:     len(catalog.DistinctBrands(products)),
		Recent:          recent,
	}
}

func toProductResponse(p entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:          p.ID,
		Title:       p.Title,
		Brand:       p.Brand,
		Category:    p.Category,
		Price:       p.Price,
		Stock:       p.Stock,
		Available:   p.Available(),
		Thumbnail:   p.Thumbnail,
		Description: p.Description,
	}
}
