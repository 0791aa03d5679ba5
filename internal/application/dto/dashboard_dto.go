package dto

// DashboardResponse respuesta de GET /api/admin/dashboard: conteos del catálogo
// cargado y los productos más recientes (las altas locales van primero).
type DashboardResponse struct {
	TotalProducts   int               `json:"total_products"`
	TotalCategories int               `json:"total_categories"`
	TotalBrands     int               `json:"total_brands"`
	Recent          []ProductResponse `json:"recent"`
}
