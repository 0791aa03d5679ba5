package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/application/usecase"
)

// CatalogHandler expone los comandos públicos del navegador de catálogo.
// Cada comando responde con la vista derivada actualizada.
type CatalogHandler struct {
	uc *usecase.CatalogUseCase
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(uc *usecase.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// View godoc
// @Summary      Vista actual del catálogo
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  dto.CatalogViewResponse
// @Router       /api/catalog [get]
func (h *CatalogHandler) View(c *fiber.Ctx) error {
	return c.JSON(h.uc.View())
}

// SetSearch godoc
// @Summary      Fijar texto de búsqueda
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SearchRequest  true  "texto"
// @Success      200   {object}  dto.CatalogViewResponse
// @Router       /api/catalog/search [put]
func (h *CatalogHandler) SetSearch(c *fiber.Ctx) error {
	var in dto.SearchRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	return c.JSON(h.uc.SetSearchText(in.Text))
}

// ToggleCategory godoc
// @Summary      Alternar categoría seleccionada
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ToggleFilterRequest  true  "valor"
// @Success      200   {object}  dto.CatalogViewResponse
// @Router       /api/catalog/filters/category [post]
func (h *CatalogHandler) ToggleCategory(c *fiber.Ctx) error {
	var in dto.ToggleFilterRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Value == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "value es requerido"})
	}
	return c.JSON(h.uc.ToggleCategory(in.Value))
}

// ToggleBrand godoc
// @Summary      Alternar marca seleccionada
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ToggleFilterRequest  true  "valor"
// @Success      200   {object}  dto.CatalogViewResponse
// @Router       /api/catalog/filters/brand [post]
func (h *CatalogHandler) ToggleBrand(c *fiber.Ctx) error {
	var in dto.ToggleFilterRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Value == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "value es requerido"})
	}
	return c.JSON(h.uc.ToggleBrand(in.Value))
}

// ResetFilters godoc
// @Summary      Limpiar búsqueda y filtros
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  dto.CatalogViewResponse
// @Router       /api/catalog/filters [delete]
func (h *CatalogHandler) ResetFilters(c *fiber.Ctx) error {
	return c.JSON(h.uc.ResetFilters())
}

// SetPage godoc
// @Summary      Ir a una página
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SetPageRequest  true  "página (1-indexed)"
// @Success      200   {object}  dto.CatalogViewResponse
// @Router       /api/catalog/page [put]
func (h *CatalogHandler) SetPage(c *fiber.Ctx) error {
	var in dto.SetPageRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	return c.JSON(h.uc.SetPage(in.Page))
}

// NextPage godoc
// @Summary      Página siguiente (no-op en la última)
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  dto.CatalogViewResponse
// @Router       /api/catalog/page/next [post]
func (h *CatalogHandler) NextPage(c *fiber.Ctx) error {
	return c.JSON(h.uc.NextPage())
}

// PrevPage godoc
// @Summary      Página anterior (no-op en la primera)
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  dto.CatalogViewResponse
// @Router       /api/catalog/page/prev [post]
func (h *CatalogHandler) PrevPage(c *fiber.Ctx) error {
	return c.JSON(h.uc.PrevPage())
}

// LoadMore godoc
// @Summary      Cargar la siguiente página remota
// @Description  Si ya hay un fetch en vuelo la petición se ignora y se devuelve la vista vigente.
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  dto.CatalogViewResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/catalog/load-more [post]
func (h *CatalogHandler) LoadMore(c *fiber.Ctx) error {
	view, err := h.uc.RequestLoadMore(c.Context())
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "FETCH_FAILED", Message: err.Error()})
	}
	return c.JSON(view)
}
