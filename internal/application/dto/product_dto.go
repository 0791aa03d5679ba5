package dto

import "github.com/shopspring/decimal"

// CreateProductRequest entrada para crear un producto local. El id lo asigna
// el store (max(ids)+1), nunca el cliente.
type CreateProductRequest struct {
	Title       string          `json:"title" validate:"required,min=1,max=200"`
	Brand       string          `json:"brand" validate:"max=100"`
	Category    string          `json:"category" validate:"max=100"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock" validate:"min=0"`
	Thumbnail   string          `json:"thumbnail" validate:"omitempty,uri"`
	Description string          `json:"description"`
}

// UpdateProductRequest entrada para actualización parcial: solo los campos
// presentes se sobreescriben.
type UpdateProductRequest struct {
	Title       *string          `json:"title" validate:"omitempty,min=1,max=200"`
	Brand       *string          `json:"brand"`
	Category    *string          `json:"category"`
	Price       *decimal.Decimal `json:"price"`
	Stock       *int             `json:"stock" validate:"omitempty,min=0"`
	Thumbnail   *string          `json:"thumbnail"`
	Description *string          `json:"description"`
}

// ProductResponse salida de un producto del catálogo.
type ProductResponse struct {
	ID          int             `json:"id"`
	Title       string          `json:"title"`
	Brand       string          `json:"brand"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	Available   bool            `json:"available"` // stock > 0
	Thumbnail   string          `json:"thumbnail"`
	Description string          `json:"description,omitempty"`
}
