package entity

import "github.com/shopspring/decimal"

// ProductPatch actualización parcial de un producto: solo los campos no nil se
// sobreescriben. ID nunca se modifica.
type ProductPatch struct {
	Title       *string
	Brand       *string
	Category    *string
	Price       *decimal.Decimal
	Stock       *int
	Thumbnail   *string
	Description *string
}
