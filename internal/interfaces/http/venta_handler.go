package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Taller-console/internal/application/dto"
	"github.com/jhoicas/Taller-console/internal/application/usecase"
	"github.com/jhoicas/Taller-console/internal/domain/entity"
	"github.com/jhoicas/Taller-console/internal/domain/rbac"
)

// VentaHandler maneja la página y las acciones de ventas.
type VentaHandler struct {
	uc    *usecase.VentaUseCase
	pdfUC *usecase.VentaPDFUseCase
}

// NewVentaHandler construye el handler.
func NewVentaHandler(uc *usecase.VentaUseCase, pdfUC *usecase.VentaPDFUseCase) *VentaHandler {
	return &VentaHandler{uc: uc, pdfUC: pdfUC}
}

// Pagina GET /api/ventas
func (h *VentaHandler) Pagina(c *fiber.Ctx) error {
	lista, err := h.uc.List(c.UserContext())
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.PaginaVentas{
		Ventas:   lista,
		Permisos: rbac.PermisosDe(GetRole(c), rbac.RecursoVenta),
	})
}

// Get GET /api/ventas/:id
func (h *VentaHandler) Get(c *fiber.Ctx) error {
	venta, err := h.uc.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(venta)
}

// Cotizar POST /api/ventas/cotizar — total de exhibición del formulario
// antes de enviar; no toca la red ni el caché.
func (h *VentaHandler) Cotizar(c *fiber.Ctx) error {
	var in struct {
		Productos []entity.ProductoVenta `json:"productos"`
	}
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	return c.JSON(fiber.Map{"total": h.uc.CotizarTotal(in.Productos)})
}

// Create POST /api/ventas
func (h *VentaHandler) Create(c *fiber.Ctx) error {
	var in dto.VentaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	venta, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(venta)
}

// Delete DELETE /api/ventas/:id
func (h *VentaHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return responderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ComprobantePDF GET /api/ventas/:id/pdf
func (h *VentaHandler) ComprobantePDF(c *fiber.Ctx) error {
	pdfBytes, filename, err := h.pdfUC.DescargarComprobante(c.UserContext(), c.Params("id"))
	if err != nil {
		return responderError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}
