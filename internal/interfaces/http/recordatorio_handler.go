package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Taller-console/internal/application/dto"
	"github.com/jhoicas/Taller-console/internal/application/usecase"
	"github.com/jhoicas/Taller-console/internal/domain/rbac"
)

// RecordatorioHandler maneja la página de recordatorios y el envío de
// notificaciones.
type RecordatorioHandler struct {
	uc *usecase.RecordatorioUseCase
}

// NewRecordatorioHandler construye el handler.
func NewRecordatorioHandler(uc *usecase.RecordatorioUseCase) *RecordatorioHandler {
	return &RecordatorioHandler{uc: uc}
}

// Pagina GET /api/recordatorios — ordenados por próxima fecha, con urgencia
// derivada recalculada en cada petición.
func (h *RecordatorioHandler) Pagina(c *fiber.Ctx) error {
	lista, err := h.uc.List(c.UserContext())
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.PaginaRecordatorios{
		Recordatorios: lista,
		Permisos:      rbac.PermisosDe(GetRole(c), rbac.RecursoRecordatorio),
	})
}

// SendWhatsApp POST /api/recordatorios/:id/send-whatsapp
func (h *RecordatorioHandler) SendWhatsApp(c *fiber.Ctx) error {
	var in struct {
		ClienteID string `json:"clienteId"`
	}
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.SendWhatsApp(c.UserContext(), c.Params("id"), in.ClienteID); err != nil {
		return responderError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}
