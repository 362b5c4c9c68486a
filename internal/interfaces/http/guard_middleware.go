package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Taller-console/internal/application/auth"
	"github.com/jhoicas/Taller-console/internal/application/dto"
	"github.com/jhoicas/Taller-console/internal/domain/entity"
)

// LocalUser clave de Locals para el usuario autenticado.
const LocalUser = "user"

// LoginPath frontera de login a la que se redirige toda sesión inválida.
const LoginPath = "/login"

// GuardMiddleware verja de ruta de toda página protegida.
//
// La resolución de identidad corre en línea con la petición: mientras no
// resuelve, no se responde nada. Resuelta sin sesión válida, la respuesta es
// la redirección a login; con sesión, el usuario queda en Locals para la
// página. Idempotente
// ante montajes repetidos y sin bucles: CurrentUser reintenta a lo sumo una
// vez y su fallo termina aquí, en redirección, nunca en otro intento.
func GuardMiddleware(authUC *auth.UseCase) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := authUC.CurrentUser(c.UserContext())
		if err != nil {
			return redirigirALogin(c)
		}
		c.Locals(LocalUser, user)
		return c.Next()
	}
}

// redirigirALogin responde según el tipo de cliente: navegación de página
// recibe 302 a /login; llamadas del frontend reciben 401 con la ruta de
// redirección para que el cliente navegue.
func redirigirALogin(c *fiber.Ctx) error {
	if c.Accepts("text/html", "application/json") == "text/html" {
		return c.Redirect(LoginPath, fiber.StatusFound)
	}
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"code":     "UNAUTHORIZED",
		"message":  "sesión inválida o expirada",
		"redirect": LoginPath,
	})
}

// GetUser devuelve el usuario del contexto (después del guard).
func GetUser(c *fiber.Ctx) *entity.User {
	v := c.Locals(LocalUser)
	if v == nil {
		return nil
	}
	u, _ := v.(*entity.User)
	return u
}

// GetRole devuelve el rol del usuario del contexto, o vacío.
func GetRole(c *fiber.Ctx) string {
	if u := GetUser(c); u != nil {
		return u.Role
	}
	return ""
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "sesión requerida"})
}
