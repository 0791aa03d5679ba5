// Package feed implementa el cliente HTTP de la fuente remota de catálogo
// (API estilo dummyjson: GET /products?limit=N&skip=M).
package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/catalogo-api/internal/application/ports"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
)

// Verificar en tiempo de compilación que Client implementa CatalogFeed.
var _ ports.CatalogFeed = (*Client)(nil)

// Client adaptador del puerto CatalogFeed usando net/http de la librería
// estándar; no requiere SDK.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient construye el cliente. baseURL sin slash final, ej. "https://dummyjson.com".
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			// Timeout de red de 15 s; el use case puede imponer además un
			// context.WithTimeout más corto.
			Timeout: 15 * time.Second,
		},
	}
}

// ── Estructuras del wire format de la fuente ──────────────────────────────────

// feedProduct registro con forma de Product. Campos extra se ignoran y los
// opcionales ausentes quedan en su valor cero.
type feedProduct struct {
	ID          int             `json:"id"`
	Title       string          `json:"title"`
	Brand       string          `json:"brand"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	Thumbnail   string          `json:"thumbnail"`
	Description string          `json:"description"`
}

type feedPageResponse struct {
	Products []feedProduct `json:"products"`
	Total    int           `json:"total"`
	Skip     int           `json:"skip"`
	Limit    int           `json:"limit"`
}

// FetchPage consulta una página de productos: GET {base}/products?limit=&skip=.
func (c *Client) FetchPage(ctx context.Context, skip, limit int) ([]entity.Product, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("feed: limit debe ser positivo, recibido %d", limit)
	}
	if skip < 0 {
		return nil, fmt.Errorf("feed: skip no puede ser negativo, recibido %d", skip)
	}

	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))
	q.Set("skip", strconv.Itoa(skip))
	endpoint := c.baseURL + "/products?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("feed: crear HTTP request: %w", err)
	}
	req.Header.Set("accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("feed: timeout o cancelación: %w", ctx.Err())
		}
		return nil, fmt.Errorf("feed: llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil, fmt.Errorf("feed: leer respuesta: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("feed: HTTP %d: %s", resp.StatusCode, string(rawBody))
	}

	var page feedPageResponse
	if err := json.Unmarshal(rawBody, &page); err != nil {
		return nil, fmt.Errorf("feed: deserializar página: %w", err)
	}

	items := make([]entity.Product, 0, len(page.Products))
	for _, fp := range page.Products {
		items = append(items, entity.Product{
			ID:          fp.ID,
			Title:       fp.Title,
			Brand:       fp.Brand,
			Category:    fp.Category,
			Price:       fp.Price,
			Stock:       fp.Stock,
			Thumbnail:   fp.Thumbnail,
			Description: fp.Description,
		})
	}
	return items, nil
}
