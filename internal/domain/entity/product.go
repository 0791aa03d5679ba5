package entity

import "github.com/shopspring/decimal"

// Product representa un artículo del catálogo.
// ID es único e inmutable: lo asigna la fuente remota o, para altas locales,
// el store con max(ids)+1. Stock en 0 significa no disponible.
type Product struct {
	ID          int
	Title       string
	Brand       string
	Category    string
	Price       decimal.Decimal // precio de venta (no negativo)
	Stock       int
	Thumbnail   string // URI de la imagen
	Description string
}

// Available indica si el producto tiene existencias.
func (p Product) Available() bool {
	return p.Stock > 0
}
