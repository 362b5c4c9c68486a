package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Taller-console/internal/application/dto"
	"github.com/jhoicas/Taller-console/internal/application/usecase"
	"github.com/jhoicas/Taller-console/internal/domain/rbac"
	"github.com/jhoicas/Taller-console/internal/recurso"
)

// ClienteHandler maneja la página y las acciones de clientes.
type ClienteHandler struct {
	uc *usecase.ClienteUseCase
}

// NewClienteHandler construye el handler.
func NewClienteHandler(uc *usecase.ClienteUseCase) *ClienteHandler {
	return &ClienteHandler{uc: uc}
}

// Pagina GET /api/clientes?q=
func (h *ClienteHandler) Pagina(c *fiber.Ctx) error {
	lista, err := h.uc.List(c.UserContext(), c.Query("q"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.PaginaClientes{
		Clientes: lista,
		Permisos: rbac.PermisosDe(GetRole(c), rbac.RecursoCliente),
	})
}

// Get GET /api/clientes/:id
func (h *ClienteHandler) Get(c *fiber.Ctx) error {
	cliente, err := h.uc.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(cliente)
}

// Create POST /api/clientes
func (h *ClienteHandler) Create(c *fiber.Ctx) error {
	var in recurso.ClienteDatos
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	cliente, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(cliente)
}

// Update PATCH /api/clientes/:id
func (h *ClienteHandler) Update(c *fiber.Ctx) error {
	var in recurso.ClienteDatos
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	cliente, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(cliente)
}

// Delete DELETE /api/clientes/:id
func (h *ClienteHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return responderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
