package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Taller-console/internal/application/dto"
	"github.com/jhoicas/Taller-console/internal/application/usecase"
)

// DashboardHandler maneja la página de inicio de la consola.
type DashboardHandler struct {
	uc *usecase.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *usecase.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Pagina GET /api/dashboard — bienvenida y conteos. Abierta a todo rol
// autenticado: el guard es su única verja.
func (h *DashboardHandler) Pagina(c *fiber.Ctx) error {
	totales, err := h.uc.Totales(c.UserContext())
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.PaginaDashboard{
		Usuario: GetUser(c),
		Totales: totales,
	})
}
