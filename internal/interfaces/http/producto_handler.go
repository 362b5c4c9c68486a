package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Taller-console/internal/application/dto"
	"github.com/jhoicas/Taller-console/internal/application/usecase"
	"github.com/jhoicas/Taller-console/internal/domain/rbac"
)

// ProductoHandler maneja la página y las acciones de inventario.
type ProductoHandler struct {
	uc *usecase.ProductoUseCase
}

// NewProductoHandler construye el handler.
func NewProductoHandler(uc *usecase.ProductoUseCase) *ProductoHandler {
	return &ProductoHandler{uc: uc}
}

// Pagina GET /api/productos?q=
func (h *ProductoHandler) Pagina(c *fiber.Ctx) error {
	lista, err := h.uc.List(c.UserContext(), c.Query("q"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.PaginaProductos{
		Productos: lista,
		Permisos:  rbac.PermisosDe(GetRole(c), rbac.RecursoProducto),
	})
}

// Get GET /api/productos/:id
func (h *ProductoHandler) Get(c *fiber.Ctx) error {
	producto, err := h.uc.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(producto)
}

// Create POST /api/productos
func (h *ProductoHandler) Create(c *fiber.Ctx) error {
	var in dto.ProductoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	producto, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(producto)
}

// Update PATCH /api/productos/:id
func (h *ProductoHandler) Update(c *fiber.Ctx) error {
	var in dto.ProductoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	producto, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(producto)
}

// Delete DELETE /api/productos/:id
func (h *ProductoHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return responderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
