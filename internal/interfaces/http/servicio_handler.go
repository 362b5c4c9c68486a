package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Taller-console/internal/application/dto"
	"github.com/jhoicas/Taller-console/internal/application/usecase"
	"github.com/jhoicas/Taller-console/internal/domain/rbac"
)

// ServicioHandler maneja la página y las acciones de servicios.
type ServicioHandler struct {
	uc *usecase.ServicioUseCase
}

// NewServicioHandler construye el handler.
func NewServicioHandler(uc *usecase.ServicioUseCase) *ServicioHandler {
	return &ServicioHandler{uc: uc}
}

// Pagina GET /api/servicios?vehiculoId=
func (h *ServicioHandler) Pagina(c *fiber.Ctx) error {
	vehiculoID := c.Query("vehiculoId")
	lista, err := h.uc.List(c.UserContext(), vehiculoID)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.PaginaServicios{
		Servicios:  lista,
		VehiculoID: vehiculoID,
		Permisos:   rbac.PermisosDe(GetRole(c), rbac.RecursoServicio),
	})
}

// Get GET /api/servicios/:id
func (h *ServicioHandler) Get(c *fiber.Ctx) error {
	servicio, err := h.uc.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(servicio)
}

// Create POST /api/servicios
func (h *ServicioHandler) Create(c *fiber.Ctx) error {
	var in dto.ServicioRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	servicio, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(servicio)
}

// Update PATCH /api/servicios/:id
func (h *ServicioHandler) Update(c *fiber.Ctx) error {
	var in dto.ServicioRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	servicio, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(servicio)
}

// Delete DELETE /api/servicios/:id
func (h *ServicioHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return responderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
