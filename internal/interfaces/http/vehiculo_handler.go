package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Taller-console/internal/application/dto"
	"github.com/jhoicas/Taller-console/internal/application/usecase"
	"github.com/jhoicas/Taller-console/internal/domain/rbac"
)

// VehiculoHandler maneja la página y las acciones de vehículos.
type VehiculoHandler struct {
	uc *usecase.VehiculoUseCase
}

// NewVehiculoHandler construye el handler.
func NewVehiculoHandler(uc *usecase.VehiculoUseCase) *VehiculoHandler {
	return &VehiculoHandler{uc: uc}
}

// Pagina GET /api/vehiculos?clienteId=&q=
func (h *VehiculoHandler) Pagina(c *fiber.Ctx) error {
	clienteID := c.Query("clienteId")
	lista, err := h.uc.List(c.UserContext(), clienteID, c.Query("q"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.PaginaVehiculos{
		Vehiculos: lista,
		ClienteID: clienteID,
		Permisos:  rbac.PermisosDe(GetRole(c), rbac.RecursoVehiculo),
	})
}

// Get GET /api/vehiculos/:id
func (h *VehiculoHandler) Get(c *fiber.Ctx) error {
	vehiculo, err := h.uc.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(vehiculo)
}

// Create POST /api/vehiculos
func (h *VehiculoHandler) Create(c *fiber.Ctx) error {
	var in dto.VehiculoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	vehiculo, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(vehiculo)
}

// Update PATCH /api/vehiculos/:id
func (h *VehiculoHandler) Update(c *fiber.Ctx) error {
	var in dto.VehiculoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	vehiculo, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(vehiculo)
}

// Delete DELETE /api/vehiculos/:id
func (h *VehiculoHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return responderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
