package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/application/usecase"
	"github.com/jhoicas/catalogo-api/internal/domain"
)

// AdminHandler maneja las mutaciones del catálogo y las vistas del panel
// (protegido: requiere sesión de administración vigente).
type AdminHandler struct {
	catalogUC *usecase.CatalogUseCase
	exportUC  *usecase.ExportUseCase
}

// NewAdminHandler construye el handler del panel.
func NewAdminHandler(catalogUC *usecase.CatalogUseCase, exportUC *usecase.ExportUseCase) *AdminHandler {
	return &AdminHandler{catalogUC: catalogUC, exportUC: exportUC}
}

// mapDomainError traduce los errores de dominio a respuesta HTTP.
func mapDomainError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	case errors.Is(err, domain.ErrFetch):
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "FETCH_FAILED", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

// Create godoc
// @Summary      Crear producto
// @Tags         admin
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "Datos del producto (sin id)"
// @Success      201   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/admin/products [post]
func (h *AdminHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.catalogUC.AddProduct(in)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar producto (parcial)
// @Tags         admin
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del producto"
// @Param        body  body  dto.UpdateProductRequest  true  "Campos a sobreescribir"
// @Success      200   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/admin/products/{id} [put]
func (h *AdminHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id debe ser un entero positivo"})
	}
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.catalogUC.EditProduct(id, in)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar producto
// @Tags         admin
// @Security     Bearer
// @Param        id  path  int  true  "ID del producto"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/products/{id} [delete]
func (h *AdminHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id debe ser un entero positivo"})
	}
	if err := h.catalogUC.DeleteProduct(id); err != nil {
		return mapDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Dashboard godoc
// @Summary      Conteos y productos recientes
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardResponse
// @Router       /api/admin/dashboard [get]
func (h *AdminHandler) Dashboard(c *fiber.Ctx) error {
	return c.JSON(h.catalogUC.Dashboard())
}

// Export godoc
// @Summary      Exportar el snapshot completo del catálogo
// @Description  Lectura pura, sin semántica de merge. format: json (default), xml o pdf.
// @Tags         admin
// @Security     Bearer
// @Param        format  query  string  false  "json | xml | pdf"  default(json)
// @Success      200
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/admin/export [get]
func (h *AdminHandler) Export(c *fiber.Ctx) error {
	switch c.Query("format", "json") {
	case "json":
		b, err := h.exportUC.JSON()
		if err != nil {
			return mapDomainError(c, err)
		}
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="products.json"`)
		return c.Send(b)
	case "xml":
		b, err := h.exportUC.XML()
		if err != nil {
			return mapDomainError(c, err)
		}
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationXML)
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="products.xml"`)
		return c.Send(b)
	case "pdf":
		b, err := h.exportUC.PDF(c.Context())
		if err != nil {
			return mapDomainError(c, err)
		}
		c.Set(fiber.HeaderContentType, "application/pdf")
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="products.pdf"`)
		return c.Send(b)
	default:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FORMAT", Message: "format debe ser json, xml o pdf"})
	}
}
