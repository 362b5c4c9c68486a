package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Taller-console/internal/application/dto"
	"github.com/jhoicas/Taller-console/internal/domain/rbac"
)

// RequireView corta el renderizado de la página cuando el rol no puede verla:
// la respuesta es el placeholder fijo de "no autorizado", jamás una página
// parcial. Corre después del guard.
func RequireView(recurso rbac.Recurso) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := GetUser(c)
		if user == nil {
			return unauthorized(c)
		}
		if !rbac.Can(user.Role, recurso, rbac.AccionVer) {
			return c.Status(fiber.StatusForbidden).JSON(dto.NoAutorizado)
		}
		return c.Next()
	}
}

// RequireAction rechaza la mutación cuando el rol no tiene la acción sobre el
// recurso. En la página la affordance ya viene omitida; esto cierra el caso
// de quien llama al endpoint directo.
func RequireAction(recurso rbac.Recurso, accion rbac.Accion) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := GetUser(c)
		if user == nil {
			return unauthorized(c)
		}
		if !rbac.Can(user.Role, recurso, accion) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "FORBIDDEN",
				Message: "tu rol no permite esta acción",
			})
		}
		return c.Next()
	}
}
