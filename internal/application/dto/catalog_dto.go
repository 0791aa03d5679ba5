package dto

// SearchRequest comando setSearchText.
type SearchRequest struct {
	Text string `json:"text"`
}

// ToggleFilterRequest comando toggleCategory / toggleBrand.
type ToggleFilterRequest struct {
	Value string `json:"value" validate:"required"`
}

// SetPageRequest comando setPage (1-indexed; se clampa contra el total).
type SetPageRequest struct {
	Page int `json:"page" validate:"min=1"`
}

// CatalogViewResponse vista derivada que recibe la capa de presentación tras
// cada comando: la página visible más los metadatos de filtrado y carga.
type CatalogViewResponse struct {
	Items              []ProductResponse `json:"items"`
	TotalPages         int               `json:"total_pages"`
	CurrentPage        int               `json:"current_page"`
	PageSize           int               `json:"page_size"`
	FilteredCount      int               `json:"filtered_count"` // "Showing X of Y"
	LoadedCount        int               `json:"loaded_count"`   // productos cargados en el store
	Loading            bool              `json:"loading"`
	SearchText         string            `json:"search_text"`
	Categories         []string          `json:"categories"` // distintas, en orden de aparición
	Brands             []string          `json:"brands"`
	SelectedCategories []string          `json:"selected_categories"`
	SelectedBrands     []string          `json:"selected_brands"`
}
